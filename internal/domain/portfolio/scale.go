package portfolio

import (
	"math"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/domain/theme"
)

// ScoreToServer converts a 0..1 assessment score into the 0..100 stored form
// rounded to two decimals.
func ScoreToServer(score float64) float64 {
	return RoundScore(score * 100)
}

func RoundScore(v float64) float64 {
	return math.Round(v*100) / 100
}

// ServerThemeFor maps a client theme key onto the stored theme vocabulary.
// The most playful band of the creative theme is recorded as playful.
func ServerThemeFor(key theme.Key, score float64) string {
	switch key {
	case theme.Minimal:
		return ThemeMinimalist
	case theme.Dark:
		return ThemeCorporate
	case theme.Creative:
		if theme.BandFor(score) == theme.BandCount-1 {
			return ThemePlayful
		}
		return ThemeCreative
	default:
		return ThemeProfessional
	}
}
