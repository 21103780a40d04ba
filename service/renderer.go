package service

import (
	"fmt"
	"strings"

	"github.com/finsight-app/finsight/domain"
)

// ReportRenderer maps a Report onto the view model. Rendering is pure:
// the same report and options always produce the same view, and nothing
// in the input is mutated.
type ReportRenderer struct{}

// NewReportRenderer creates a report renderer
func NewReportRenderer() *ReportRenderer {
	return &ReportRenderer{}
}

// Render resolves banding, trend glyphs, sentinel suppression, and section
// ordering into a ReportView. The theme selects palette tokens only.
func (r *ReportRenderer) Render(report *domain.Report, opts domain.RenderOptions) *domain.ReportView {
	if report == nil {
		return nil
	}

	view := &domain.ReportView{
		Company:  companyTitle(report),
		Subtitle: subtitle(report),
		Currency: report.Currency.String(),
		Summary:  report.ExecutiveSummary.String(),
		Verdict:  report.InvestorVerdict.String(),
		Score:    r.scoreView(report),
		Metrics:  r.metricViews(report.KeyMetrics),
		Palette:  opts.Theme.Palette(),
	}

	if opts.ShowBreakdown && report.ScoreBreakdown != nil {
		view.Breakdown = r.componentViews(report.ScoreBreakdown.Components)
	}
	if opts.ShowSections {
		view.Sections = r.sectionViews(report)
		view.Segments = r.segmentViews(report.Segments)
	}
	if opts.ShowLists {
		view.Lists = r.listViews(report)
	}
	return view
}

func companyTitle(report *domain.Report) string {
	if report.CompanyName.Present() {
		return report.CompanyName.String()
	}
	return "Financial Analysis"
}

func subtitle(report *domain.Report) string {
	parts := make([]string, 0, 2)
	if report.StatementType.Present() {
		parts = append(parts, report.StatementType.String())
	}
	if report.Period.Present() {
		parts = append(parts, report.Period.String())
	}
	return strings.Join(parts, " · ")
}

func (r *ReportRenderer) scoreView(report *domain.Report) domain.ScoreView {
	band := domain.BandForScore(report.HealthScore)
	return domain.ScoreView{
		Value:      report.HealthScore,
		Label:      report.HealthLabel.String(),
		Band:       band,
		Color:      band.Color(),
		Derivation: report.HealthScoreDerivation.String(),
	}
}

// componentViews keeps the server's ordering and drops components without
// a usable scale.
func (r *ReportRenderer) componentViews(components []domain.ScoreComponent) []domain.ComponentView {
	views := make([]domain.ComponentView, 0, len(components))
	for _, c := range components {
		if !c.Renderable() {
			continue
		}
		views = append(views, domain.ComponentView{
			Category:  c.Category.String(),
			Score:     c.Score,
			Max:       c.Max,
			BarWidth:  c.BarWidth(),
			Rating:    string(c.Rating),
			Color:     c.Rating.Color(),
			Reasoning: c.Reasoning.String(),
		})
	}
	return views
}

// metricViews keeps the server's row order and drops rows without a
// current value. Absent previous/change/comment fields stay empty and are
// simply not laid out.
func (r *ReportRenderer) metricViews(metrics []domain.KeyMetric) []domain.MetricView {
	views := make([]domain.MetricView, 0, len(metrics))
	for _, m := range metrics {
		if !m.Renderable() {
			continue
		}
		views = append(views, domain.MetricView{
			Label:      m.Label.String(),
			Current:    m.Current.String(),
			Previous:   m.Previous.String(),
			Change:     m.Change.String(),
			Comment:    m.Comment.String(),
			TrendGlyph: m.Trend.Glyph(),
			TrendColor: m.Trend.Color(),
		})
	}
	return views
}

// sectionViews renders the analytical sections in their fixed order:
// profitability, growth, liquidity, debt, management commentary.
func (r *ReportRenderer) sectionViews(report *domain.Report) []domain.SectionView {
	sections := make([]domain.SectionView, 0, 5)
	if s := r.profitabilitySection(report.Profitability); s != nil {
		sections = append(sections, *s)
	}
	if s := r.growthSection(report.Growth); s != nil {
		sections = append(sections, *s)
	}
	if s := r.liquiditySection(report.Liquidity); s != nil {
		sections = append(sections, *s)
	}
	if s := r.debtSection(report.Debt); s != nil {
		sections = append(sections, *s)
	}
	if s := r.commentarySection(report.ManagementCommentary); s != nil {
		sections = append(sections, *s)
	}
	return sections
}

// stat builds a section stat, returning a zero StatView when the value is
// absent so callers can filter uniformly.
func stat(label string, value, previous domain.Text, color string) (domain.StatView, bool) {
	if !value.Present() {
		return domain.StatView{}, false
	}
	return domain.StatView{
		Label:    label,
		Value:    value.String(),
		Previous: previous.String(),
		Color:    color,
	}, true
}

func collectStats(candidates []func() (domain.StatView, bool)) []domain.StatView {
	stats := make([]domain.StatView, 0, len(candidates))
	for _, candidate := range candidates {
		if s, ok := candidate(); ok {
			stats = append(stats, s)
		}
	}
	return stats
}

func (r *ReportRenderer) profitabilitySection(p *domain.Profitability) *domain.SectionView {
	if p == nil {
		return nil
	}
	section := &domain.SectionView{
		Title: "Profitability",
		Body:  p.Analysis.String(),
		Stats: collectStats([]func() (domain.StatView, bool){
			func() (domain.StatView, bool) { return stat("Gross Margin", p.GrossMarginCurrent, p.GrossMarginPrevious, "") },
			func() (domain.StatView, bool) { return stat("EBITDA Margin", p.EBITDAMarginCurrent, p.EBITDAMarginPrevious, "") },
			func() (domain.StatView, bool) { return stat("Net Margin", p.NetMarginCurrent, p.NetMarginPrevious, "") },
			func() (domain.StatView, bool) { return stat("ROE", p.ROE, "", domain.ColorGreen) },
			func() (domain.StatView, bool) { return stat("ROA", p.ROA, "", domain.ColorGreen) },
		}),
	}
	if len(p.KeyCostDrivers) > 0 {
		section.Notes = append(section.Notes, domain.NoteView{
			Title: "Key Cost Drivers",
			Items: p.KeyCostDrivers,
		})
	}
	return section
}

func (r *ReportRenderer) growthSection(g *domain.Growth) *domain.SectionView {
	if g == nil {
		return nil
	}
	section := &domain.SectionView{
		Title: "Growth",
		Body:  g.Analysis.String(),
		Stats: collectStats([]func() (domain.StatView, bool){
			func() (domain.StatView, bool) {
				return stat("Revenue Growth YoY", g.RevenueGrowthYoY, "", domain.ColorGreen)
			},
			func() (domain.StatView, bool) {
				return stat("Profit Growth YoY", g.ProfitGrowthYoY, "", domain.ColorGreen)
			},
		}),
	}
	if g.Guidance.Present() {
		section.Notes = append(section.Notes, domain.NoteView{
			Title: "Management Guidance",
			Body:  g.Guidance.String(),
		})
	}
	return section
}

func (r *ReportRenderer) liquiditySection(l *domain.Liquidity) *domain.SectionView {
	if l == nil {
		return nil
	}
	return &domain.SectionView{
		Title: "Liquidity & Cash Position",
		Body:  l.Analysis.String(),
		Stats: collectStats([]func() (domain.StatView, bool){
			func() (domain.StatView, bool) { return stat("Current Ratio", l.CurrentRatio, "", "") },
			func() (domain.StatView, bool) { return stat("Quick Ratio", l.QuickRatio, "", "") },
			func() (domain.StatView, bool) { return stat("Cash Position", l.CashPosition, "", "") },
			func() (domain.StatView, bool) { return stat("Operating Cash Flow", l.OperatingCashFlow, "", "") },
			func() (domain.StatView, bool) { return stat("Free Cash Flow", l.FreeCashFlow, "", "") },
		}),
	}
}

func (r *ReportRenderer) debtSection(d *domain.Debt) *domain.SectionView {
	if d == nil {
		return nil
	}
	section := &domain.SectionView{
		Title: "Debt & Leverage",
		Body:  d.Analysis.String(),
		Stats: collectStats([]func() (domain.StatView, bool){
			func() (domain.StatView, bool) { return stat("Total Debt", d.TotalDebt, "", "") },
			func() (domain.StatView, bool) { return stat("Net Debt", d.NetDebt, "", "") },
			func() (domain.StatView, bool) { return stat("Debt/Equity", d.DebtToEquity, "", "") },
			func() (domain.StatView, bool) { return stat("Interest Coverage", d.InterestCoverage, "", "") },
		}),
	}
	if d.DebtTrend.Present() {
		section.Badge = &domain.BadgeView{
			Label: "Debt Trend",
			Value: d.DebtTrend.String(),
			Color: domain.DebtTrendColor(d.DebtTrend),
		}
	}
	return section
}

func (r *ReportRenderer) commentarySection(m *domain.ManagementCommentary) *domain.SectionView {
	if m == nil {
		return nil
	}
	section := &domain.SectionView{Title: "Management Commentary"}
	if m.OverallTone.Present() {
		section.Badge = &domain.BadgeView{
			Label: "Overall Tone",
			Value: m.OverallTone.String(),
			Color: domain.ToneColor(m.OverallTone),
		}
	}
	if len(m.KeyPoints) > 0 {
		section.Notes = append(section.Notes, domain.NoteView{
			Title: "Key Points",
			Items: m.KeyPoints,
		})
	}
	if m.OutlookStatement.Present() {
		section.Notes = append(section.Notes, domain.NoteView{
			Title: "Outlook",
			Body:  m.OutlookStatement.String(),
		})
	}
	if len(m.ConcernsRaised) > 0 {
		section.Notes = append(section.Notes, domain.NoteView{
			Title: "Concerns Acknowledged",
			Items: m.ConcernsRaised,
			Color: domain.ColorRed,
		})
	}
	return section
}

func (r *ReportRenderer) segmentViews(segments []domain.Segment) []domain.SegmentView {
	views := make([]domain.SegmentView, 0, len(segments))
	for _, seg := range segments {
		if !seg.Name.Present() {
			continue
		}
		view := domain.SegmentView{
			Name:    seg.Name.String(),
			Comment: seg.Comment.String(),
			Stats: collectStats([]func() (domain.StatView, bool){
				func() (domain.StatView, bool) { return stat("Revenue", seg.Revenue, "", "") },
				func() (domain.StatView, bool) { return stat("Growth", seg.Growth, "", "") },
				func() (domain.StatView, bool) { return stat("Margin", seg.Margin, "", "") },
			}),
		}
		views = append(views, view)
	}
	return views
}

// listViews renders the three string lists in their fixed order with their
// fixed markers.
func (r *ReportRenderer) listViews(report *domain.Report) []domain.ListView {
	lists := make([]domain.ListView, 0, 3)
	if len(report.Highlights) > 0 {
		lists = append(lists, domain.ListView{
			Title:  "Key Strengths",
			Marker: "✓",
			Color:  domain.ColorGreen,
			Items:  report.Highlights,
		})
	}
	if len(report.Risks) > 0 {
		lists = append(lists, domain.ListView{
			Title:  "Key Risks",
			Marker: "!",
			Color:  domain.ColorRed,
			Items:  report.Risks,
		})
	}
	if len(report.WhatToWatch) > 0 {
		lists = append(lists, domain.ListView{
			Title:  "What to Watch Next",
			Marker: "→",
			Color:  domain.ColorNeutral,
			Items:  report.WhatToWatch,
		})
	}
	return lists
}

// FormatScoreFraction renders "s/max" for breakdown rows, trimming
// trailing zeros so integral scores read naturally.
func FormatScoreFraction(score, max float64) string {
	return fmt.Sprintf("%s/%s", trimFloat(score), trimFloat(max))
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	s = strings.TrimSuffix(s, ".0")
	return s
}
