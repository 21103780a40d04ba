package domain

// Theme selects the palette used by renderers. It is purely a presentation
// parameter: banding thresholds and suppression rules never depend on it.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether the theme is one of the known palettes
func (t Theme) Valid() bool { return t == ThemeLight || t == ThemeDark }

// Palette holds the chrome color tokens for one theme
type Palette struct {
	Background    string
	Card          string
	CardAlt       string
	Text          string
	TextSecondary string
	Border        string
	Accent        string
	AccentLight   string
}

var (
	lightPalette = Palette{
		Background:    "#F0F4FF",
		Card:          "#FFFFFF",
		CardAlt:       "#F8FAFF",
		Text:          "#0A0E1A",
		TextSecondary: "#6B7280",
		Border:        "#E5E7EB",
		Accent:        "#0052FF",
		AccentLight:   "#EEF4FF",
	}
	darkPalette = Palette{
		Background:    "#0A0E1A",
		Card:          "#141826",
		CardAlt:       "#1C2233",
		Text:          "#F1F5F9",
		TextSecondary: "#94A3B8",
		Border:        "#2D3748",
		Accent:        "#4F8AFF",
		AccentLight:   "#1A2540",
	}
)

// Palette returns the color tokens for the theme, defaulting to light
func (t Theme) Palette() Palette {
	if t == ThemeDark {
		return darkPalette
	}
	return lightPalette
}

// RenderOptions parameterizes a single render pass. The feature flags
// replace the historical parallel screen variants with one renderer.
type RenderOptions struct {
	Theme         Theme
	ShowBreakdown bool
	ShowSections  bool
	ShowLists     bool
}

// DefaultRenderOptions returns the full-featured light rendering
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Theme:         ThemeLight,
		ShowBreakdown: true,
		ShowSections:  true,
		ShowLists:     true,
	}
}

// ReportView is the fully resolved view model for one report. Every value
// has already passed sentinel suppression and color banding; consumers only
// lay it out.
type ReportView struct {
	Company  string
	Subtitle string
	Currency string

	Score     ScoreView
	Breakdown []ComponentView

	Summary string
	Verdict string

	Metrics  []MetricView
	Sections []SectionView
	Segments []SegmentView
	Lists    []ListView

	Palette Palette
}

// ScoreView is the banner health score with its resolved band
type ScoreView struct {
	Value      int
	Label      string
	Band       ScoreBand
	Color      string
	Derivation string
}

// ComponentView is one rendered score breakdown row
type ComponentView struct {
	Category  string
	Score     float64
	Max       float64
	BarWidth  float64
	Rating    string
	Color     string
	Reasoning string
}

// MetricView is one rendered key-metric row. Absent previous/change values
// are empty strings and are not shown.
type MetricView struct {
	Label      string
	Current    string
	Previous   string
	Change     string
	Comment    string
	TrendGlyph string
	TrendColor string
}

// StatView is a single labeled figure inside a section grid
type StatView struct {
	Label    string
	Value    string
	Previous string
	Color    string
}

// BadgeView is a colored inline tag (commentary tone, debt trend)
type BadgeView struct {
	Label string
	Value string
	Color string
}

// NoteView is a titled callout or bullet group within a section
type NoteView struct {
	Title string
	Body  string
	Items []string
	Color string
}

// SectionView is one analytical section (profitability, growth, ...)
type SectionView struct {
	Title string
	Body  string
	Stats []StatView
	Badge *BadgeView
	Notes []NoteView
}

// SegmentView is one rendered business segment
type SegmentView struct {
	Name    string
	Stats   []StatView
	Comment string
}

// ListView is one annotated string list (strengths, risks, watch items)
type ListView struct {
	Title  string
	Marker string
	Color  string
	Items  []string
}
