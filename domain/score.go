package domain

// ScoreBand is the display color band derived from a health score
type ScoreBand string

const (
	BandGreen   ScoreBand = "green"
	BandAmber   ScoreBand = "amber"
	BandRed     ScoreBand = "red"
	BandDarkRed ScoreBand = "dark-red"
)

// Score band thresholds. Bands are strict lower bounds evaluated in
// descending order: a score of exactly 80 maps to the top band.
const (
	BandGreenThreshold = 80
	BandAmberThreshold = 60
	BandRedThreshold   = 40
)

// Color values shared across the interactive and export renderings.
// Theme palettes change surrounding chrome only, never these.
const (
	ColorGreen   = "#22c55e"
	ColorAmber   = "#f59e0b"
	ColorRed     = "#ef4444"
	ColorDarkRed = "#7f1d1d"
	ColorNeutral = "#888888"
)

// BandForScore maps a 0-100 health score to its display band
func BandForScore(score int) ScoreBand {
	switch {
	case score >= BandGreenThreshold:
		return BandGreen
	case score >= BandAmberThreshold:
		return BandAmber
	case score >= BandRedThreshold:
		return BandRed
	default:
		return BandDarkRed
	}
}

// Color returns the hex color token for the band
func (b ScoreBand) Color() string {
	switch b {
	case BandGreen:
		return ColorGreen
	case BandAmber:
		return ColorAmber
	case BandRed:
		return ColorRed
	default:
		return ColorDarkRed
	}
}

// Glyph returns the direction marker for a trend. Anything that is not
// explicitly up or down renders as neutral.
func (t Trend) Glyph() string {
	switch t {
	case TrendUp:
		return "▲"
	case TrendDown:
		return "▼"
	default:
		return "—"
	}
}

// Color returns the hex color token for a trend
func (t Trend) Color() string {
	switch t {
	case TrendUp:
		return ColorGreen
	case TrendDown:
		return ColorRed
	default:
		return ColorNeutral
	}
}

// Color returns the hex color token for a component rating
func (r Rating) Color() string {
	switch r {
	case RatingStrong:
		return ColorGreen
	case RatingModerate:
		return ColorAmber
	case RatingWeak:
		return ColorRed
	default:
		return ColorNeutral
	}
}

// ToneColor maps a management-commentary tone to its badge color
func ToneColor(tone Text) string {
	switch tone {
	case "Positive":
		return ColorGreen
	case "Concerned":
		return ColorRed
	default:
		return ColorAmber
	}
}

// DebtTrendColor maps a debt trend direction to its display color
func DebtTrendColor(trend Text) string {
	switch trend {
	case "Decreasing":
		return ColorGreen
	case "Increasing":
		return ColorRed
	default:
		return ColorNeutral
	}
}
