package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// naSentinel is the literal the backend emits when a value could not be
// determined. It is normalized to an absent value at decode time so nothing
// downstream ever compares against the string.
const naSentinel = "N/A"

// Text is a string field whose "N/A" sentinel and null are treated as absent.
type Text string

// UnmarshalJSON decodes a JSON string, folding null, empty, and the "N/A"
// sentinel into the zero value.
func (t *Text) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if strings.EqualFold(strings.TrimSpace(s), naSentinel) {
		s = ""
	}
	*t = Text(s)
	return nil
}

// Present reports whether the field carries a value
func (t Text) Present() bool { return t != "" }

func (t Text) String() string { return string(t) }

// Timestamp accepts both RFC 3339 and the backend's bare ISO-8601 form
// (no timezone suffix).
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		ts.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		ts.Time = time.Time{}
		return nil
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			ts.Time = t
			return nil
		}
		lastErr = err
	}
	return lastErr
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ts.Format(time.RFC3339))
}

// Trend is the direction marker attached to a key metric
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// Rating is the qualitative grade of a score breakdown component
type Rating string

const (
	RatingStrong   Rating = "Strong"
	RatingModerate Rating = "Moderate"
	RatingWeak     Rating = "Weak"
)

// Report is the structured AI analysis attached to a completed Analysis.
// It is fetched whole and immutable from the client's perspective.
type Report struct {
	CompanyName      Text `json:"company_name,omitempty"`
	StatementType    Text `json:"statement_type,omitempty"`
	Period           Text `json:"period,omitempty"`
	Currency         Text `json:"currency,omitempty"`
	ExecutiveSummary Text `json:"executive_summary,omitempty"`
	InvestorVerdict  Text `json:"investor_verdict,omitempty"`

	HealthScore           int             `json:"health_score"`
	HealthLabel           Text            `json:"health_label,omitempty"`
	HealthScoreDerivation Text            `json:"health_score_derivation,omitempty"`
	ScoreBreakdown        *ScoreBreakdown `json:"health_score_breakdown,omitempty"`

	KeyMetrics []KeyMetric `json:"key_metrics,omitempty"`

	Profitability        *Profitability        `json:"profitability,omitempty"`
	Growth               *Growth               `json:"growth,omitempty"`
	Liquidity            *Liquidity            `json:"liquidity,omitempty"`
	Debt                 *Debt                 `json:"debt,omitempty"`
	ManagementCommentary *ManagementCommentary `json:"management_commentary,omitempty"`
	Segments             []Segment             `json:"segments,omitempty"`

	Highlights  []string `json:"highlights,omitempty"`
	Risks       []string `json:"risks,omitempty"`
	WhatToWatch []string `json:"what_to_watch,omitempty"`
}

// ScoreBreakdown decomposes the health score into weighted components
type ScoreBreakdown struct {
	Components []ScoreComponent `json:"components,omitempty"`
}

// ScoreComponent is a single weighted contribution to the health score
type ScoreComponent struct {
	Category  Text    `json:"category,omitempty"`
	Score     float64 `json:"score"`
	Max       float64 `json:"max"`
	Rating    Rating  `json:"rating,omitempty"`
	Reasoning Text    `json:"reasoning,omitempty"`
}

// Renderable reports whether the component carries a usable scale.
// Components with a non-positive max are omitted from output.
func (c ScoreComponent) Renderable() bool { return c.Max > 0 }

// BarWidth returns the progress-bar width percentage, clamped to [0, 100]
func (c ScoreComponent) BarWidth() float64 {
	if c.Max <= 0 {
		return 0
	}
	pct := c.Score / c.Max * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// KeyMetric is one row of the key-metrics table
type KeyMetric struct {
	Label    Text  `json:"label,omitempty"`
	Current  Text  `json:"current,omitempty"`
	Previous Text  `json:"previous,omitempty"`
	Change   Text  `json:"change,omitempty"`
	Trend    Trend `json:"trend,omitempty"`
	Comment  Text  `json:"comment,omitempty"`
}

// UnmarshalJSON accepts both the canonical "current" field and the older
// backend's "value" field for the metric value.
func (m *KeyMetric) UnmarshalJSON(data []byte) error {
	type alias KeyMetric
	aux := struct {
		*alias
		Value Text `json:"value"`
	}{alias: (*alias)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if !m.Current.Present() && aux.Value.Present() {
		m.Current = aux.Value
	}
	return nil
}

// Renderable reports whether the metric row should appear at all.
// Rows without a current value are suppressed.
func (m KeyMetric) Renderable() bool { return m.Current.Present() }

// Profitability covers margins and returns
type Profitability struct {
	Analysis              Text     `json:"analysis,omitempty"`
	GrossMarginCurrent    Text     `json:"gross_margin_current,omitempty"`
	GrossMarginPrevious   Text     `json:"gross_margin_previous,omitempty"`
	EBITDAMarginCurrent   Text     `json:"ebitda_margin_current,omitempty"`
	EBITDAMarginPrevious  Text     `json:"ebitda_margin_previous,omitempty"`
	NetMarginCurrent      Text     `json:"net_margin_current,omitempty"`
	NetMarginPrevious     Text     `json:"net_margin_previous,omitempty"`
	ROE                   Text     `json:"roe,omitempty"`
	ROA                   Text     `json:"roa,omitempty"`
	KeyCostDrivers        []string `json:"key_cost_drivers,omitempty"`
}

// Growth covers year-over-year trajectory and management guidance
type Growth struct {
	Analysis         Text `json:"analysis,omitempty"`
	RevenueGrowthYoY Text `json:"revenue_growth_yoy,omitempty"`
	ProfitGrowthYoY  Text `json:"profit_growth_yoy,omitempty"`
	Guidance         Text `json:"guidance,omitempty"`
}

// UnmarshalJSON accepts the older backend's "revenue_growth" field name
// alongside the canonical "revenue_growth_yoy".
func (g *Growth) UnmarshalJSON(data []byte) error {
	type alias Growth
	aux := struct {
		*alias
		RevenueGrowth Text `json:"revenue_growth"`
	}{alias: (*alias)(g)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if !g.RevenueGrowthYoY.Present() && aux.RevenueGrowth.Present() {
		g.RevenueGrowthYoY = aux.RevenueGrowth
	}
	return nil
}

// Liquidity covers cash position and short-term solvency
type Liquidity struct {
	Analysis          Text `json:"analysis,omitempty"`
	CurrentRatio      Text `json:"current_ratio,omitempty"`
	QuickRatio        Text `json:"quick_ratio,omitempty"`
	CashPosition      Text `json:"cash_position,omitempty"`
	OperatingCashFlow Text `json:"operating_cash_flow,omitempty"`
	FreeCashFlow      Text `json:"free_cash_flow,omitempty"`
}

// Debt covers leverage and debt servicing
type Debt struct {
	Analysis         Text `json:"analysis,omitempty"`
	TotalDebt        Text `json:"total_debt,omitempty"`
	NetDebt          Text `json:"net_debt,omitempty"`
	DebtToEquity     Text `json:"debt_to_equity,omitempty"`
	InterestCoverage Text `json:"interest_coverage,omitempty"`
	DebtTrend        Text `json:"debt_trend,omitempty"`
}

// ManagementCommentary summarizes tone and forward-looking statements
type ManagementCommentary struct {
	OverallTone      Text     `json:"overall_tone,omitempty"`
	KeyPoints        []string `json:"key_points,omitempty"`
	OutlookStatement Text     `json:"outlook_statement,omitempty"`
	ConcernsRaised   []string `json:"concerns_raised,omitempty"`
}

// Segment is one reported business segment
type Segment struct {
	Name    Text `json:"name,omitempty"`
	Revenue Text `json:"revenue,omitempty"`
	Growth  Text `json:"growth,omitempty"`
	Margin  Text `json:"margin,omitempty"`
	Comment Text `json:"comment,omitempty"`
}
