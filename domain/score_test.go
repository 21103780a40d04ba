package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandForScore(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  ScoreBand
	}{
		{"exactly at green threshold", 80, BandGreen},
		{"just below green threshold", 79, BandAmber},
		{"exactly at amber threshold", 60, BandAmber},
		{"just below amber threshold", 59, BandRed},
		{"exactly at red threshold", 40, BandRed},
		{"just below red threshold", 39, BandDarkRed},
		{"perfect score", 100, BandGreen},
		{"zero score", 0, BandDarkRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BandForScore(tt.score))
		})
	}
}

func TestBandForScoreMonotonic(t *testing.T) {
	// Walking down from 100, the band can only degrade, never recover
	order := map[ScoreBand]int{BandGreen: 0, BandAmber: 1, BandRed: 2, BandDarkRed: 3}
	prev := BandForScore(100)
	for s := 99; s >= 0; s-- {
		band := BandForScore(s)
		assert.GreaterOrEqual(t, order[band], order[prev], "band improved at score %d", s)
		prev = band
	}
}

func TestScoreBandColor(t *testing.T) {
	assert.Equal(t, ColorGreen, BandGreen.Color())
	assert.Equal(t, ColorAmber, BandAmber.Color())
	assert.Equal(t, ColorRed, BandRed.Color())
	assert.Equal(t, ColorDarkRed, BandDarkRed.Color())
}

func TestTrendGlyphAndColor(t *testing.T) {
	assert.Equal(t, "▲", TrendUp.Glyph())
	assert.Equal(t, ColorGreen, TrendUp.Color())
	assert.Equal(t, "▼", TrendDown.Glyph())
	assert.Equal(t, ColorRed, TrendDown.Color())

	// Anything else is neutral
	for _, tr := range []Trend{TrendNeutral, "", "flat", "sideways"} {
		assert.Equal(t, "—", tr.Glyph())
		assert.Equal(t, ColorNeutral, tr.Color())
	}
}

func TestRatingColor(t *testing.T) {
	assert.Equal(t, ColorGreen, RatingStrong.Color())
	assert.Equal(t, ColorAmber, RatingModerate.Color())
	assert.Equal(t, ColorRed, RatingWeak.Color())
	assert.Equal(t, ColorNeutral, Rating("Unrated").Color())
}

func TestToneColor(t *testing.T) {
	assert.Equal(t, ColorGreen, ToneColor("Positive"))
	assert.Equal(t, ColorRed, ToneColor("Concerned"))
	assert.Equal(t, ColorAmber, ToneColor("Cautious"))
}

func TestDebtTrendColor(t *testing.T) {
	assert.Equal(t, ColorGreen, DebtTrendColor("Decreasing"))
	assert.Equal(t, ColorRed, DebtTrendColor("Increasing"))
	assert.Equal(t, ColorNeutral, DebtTrendColor("Stable"))
}

func TestScoreComponentBarWidth(t *testing.T) {
	tests := []struct {
		name      string
		component ScoreComponent
		want      float64
	}{
		{"half full", ScoreComponent{Score: 10, Max: 20}, 50},
		{"full", ScoreComponent{Score: 25, Max: 25}, 100},
		{"overflow clamps to 100", ScoreComponent{Score: 30, Max: 25}, 100},
		{"negative clamps to 0", ScoreComponent{Score: -5, Max: 25}, 0},
		{"zero max yields 0", ScoreComponent{Score: 10, Max: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.component.BarWidth(), 0.0001)
		})
	}
}

func TestScoreComponentRenderable(t *testing.T) {
	assert.True(t, ScoreComponent{Score: 10, Max: 25}.Renderable())
	assert.False(t, ScoreComponent{Score: 10, Max: 0}.Renderable())
	assert.False(t, ScoreComponent{Score: 10, Max: -1}.Renderable())
}
