package service

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/finsight-app/finsight/domain"
	"gopkg.in/yaml.v3"
)

// ReportFormatterImpl implements domain.ReportFormatter. Text and HTML
// render through the view model; JSON and YAML emit the normalized data.
type ReportFormatterImpl struct {
	renderer *ReportRenderer
	html     *HTMLFormatter
}

// NewReportFormatter creates a report formatter
func NewReportFormatter() *ReportFormatterImpl {
	return &ReportFormatterImpl{
		renderer: NewReportRenderer(),
		html:     NewHTMLFormatter(),
	}
}

// Format formats the analysis according to the specified format
func (f *ReportFormatterImpl) Format(a *domain.Analysis, opts domain.RenderOptions, format domain.OutputFormat) (string, error) {
	switch format {
	case domain.OutputFormatText:
		return f.formatText(a, opts)
	case domain.OutputFormatJSON:
		return f.formatJSON(a)
	case domain.OutputFormatYAML:
		return f.formatYAML(a)
	case domain.OutputFormatHTML:
		return f.html.Format(a, opts)
	default:
		return "", domain.NewUnsupportedFormatError(string(format))
	}
}

// Write writes the formatted output to the writer
func (f *ReportFormatterImpl) Write(a *domain.Analysis, opts domain.RenderOptions, format domain.OutputFormat, writer io.Writer) error {
	output, err := f.Format(a, opts, format)
	if err != nil {
		return err
	}
	if _, err := writer.Write([]byte(output)); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}
	return nil
}

func (f *ReportFormatterImpl) formatJSON(a *domain.Analysis) (string, error) {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return "", domain.NewOutputError("failed to encode JSON", err)
	}
	return string(data) + "\n", nil
}

// formatYAML goes through a JSON round-trip so the JSON field names and the
// sentinel normalization carry over without a second set of struct tags.
func (f *ReportFormatterImpl) formatYAML(a *domain.Analysis) (string, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return "", domain.NewOutputError("failed to encode analysis", err)
	}
	var generic map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		return "", domain.NewOutputError("failed to decode analysis", err)
	}
	out, err := yaml.Marshal(generic)
	if err != nil {
		return "", domain.NewOutputError("failed to encode YAML", err)
	}
	return string(out), nil
}

func (f *ReportFormatterImpl) formatText(a *domain.Analysis, opts domain.RenderOptions) (string, error) {
	if a.Result == nil {
		return "", domain.NewNotFoundError("analysis has no result", nil)
	}
	view := f.renderer.Render(a.Result, opts)

	var b strings.Builder
	writeHeader(&b, view.Company)
	if view.Subtitle != "" {
		fmt.Fprintf(&b, "%s\n", view.Subtitle)
	}
	if view.Currency != "" {
		fmt.Fprintf(&b, "Currency: %s\n", view.Currency)
	}
	b.WriteString("\n")

	// Health score banner
	fmt.Fprintf(&b, "Financial Health Score: %d/100", view.Score.Value)
	if view.Score.Label != "" {
		fmt.Fprintf(&b, " (%s)", view.Score.Label)
	}
	fmt.Fprintf(&b, " [%s]\n", view.Score.Band)
	if view.Score.Derivation != "" {
		fmt.Fprintf(&b, "  %s\n", view.Score.Derivation)
	}

	if len(view.Breakdown) > 0 {
		b.WriteString("\nScore Breakdown\n")
		for _, c := range view.Breakdown {
			fmt.Fprintf(&b, "  %-24s %8s  %-8s %s\n",
				c.Category, FormatScoreFraction(c.Score, c.Max), c.Rating, progressBar(c.BarWidth))
			if c.Reasoning != "" {
				fmt.Fprintf(&b, "    %s\n", c.Reasoning)
			}
		}
	}

	if view.Summary != "" {
		writeSubHeader(&b, "Executive Summary")
		fmt.Fprintf(&b, "%s\n", view.Summary)
	}
	if view.Verdict != "" {
		writeSubHeader(&b, "Plain English Verdict")
		fmt.Fprintf(&b, "%s\n", view.Verdict)
	}

	if len(view.Metrics) > 0 {
		writeSubHeader(&b, "Key Financial Metrics")
		for _, m := range view.Metrics {
			fmt.Fprintf(&b, "  %-28s %s", m.Label, m.Current)
			if m.Previous != "" {
				fmt.Fprintf(&b, "  (vs %s)", m.Previous)
			}
			if m.Change != "" {
				fmt.Fprintf(&b, "  %s %s", m.TrendGlyph, m.Change)
			}
			b.WriteString("\n")
			if m.Comment != "" {
				fmt.Fprintf(&b, "    %s\n", m.Comment)
			}
		}
	}

	for _, section := range view.Sections {
		writeSubHeader(&b, section.Title)
		if section.Badge != nil {
			fmt.Fprintf(&b, "%s: %s\n", section.Badge.Label, section.Badge.Value)
		}
		if section.Body != "" {
			fmt.Fprintf(&b, "%s\n", section.Body)
		}
		for _, s := range section.Stats {
			fmt.Fprintf(&b, "  %-28s %s", s.Label, s.Value)
			if s.Previous != "" {
				fmt.Fprintf(&b, "  (vs %s)", s.Previous)
			}
			b.WriteString("\n")
		}
		for _, note := range section.Notes {
			fmt.Fprintf(&b, "  %s:\n", note.Title)
			if note.Body != "" {
				fmt.Fprintf(&b, "    %s\n", note.Body)
			}
			for _, item := range note.Items {
				fmt.Fprintf(&b, "    • %s\n", item)
			}
		}
	}

	if len(view.Segments) > 0 {
		writeSubHeader(&b, "Business Segments")
		for _, seg := range view.Segments {
			fmt.Fprintf(&b, "  %s\n", seg.Name)
			for _, s := range seg.Stats {
				fmt.Fprintf(&b, "    %s: %s\n", s.Label, s.Value)
			}
			if seg.Comment != "" {
				fmt.Fprintf(&b, "    %s\n", seg.Comment)
			}
		}
	}

	for _, list := range view.Lists {
		writeSubHeader(&b, list.Title)
		for _, item := range list.Items {
			fmt.Fprintf(&b, "  %s %s\n", list.Marker, item)
		}
	}

	return b.String(), nil
}

func writeHeader(b *strings.Builder, title string) {
	fmt.Fprintf(b, "%s\n%s\n", title, strings.Repeat("=", len([]rune(title))))
}

func writeSubHeader(b *strings.Builder, title string) {
	fmt.Fprintf(b, "\n%s\n%s\n", title, strings.Repeat("-", len([]rune(title))))
}

// progressBar renders a 20-cell bar for a 0-100 width percentage
func progressBar(pct float64) string {
	filled := int(pct / 5)
	if filled > 20 {
		filled = 20
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", 20-filled) + "]"
}
