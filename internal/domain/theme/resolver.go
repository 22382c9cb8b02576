package theme

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// Band is one of the five personality bands, 0 (most serious) to 4 (most playful).
// Theme recommendation and content selection share these boundaries.
type Band int

const BandCount = 5

// Upper bounds are inclusive: 0.2 falls in band 0, 0.2001 in band 1.
var bandUpperBounds = [BandCount - 1]float64{0.2, 0.4, 0.6, 0.8}

var bandThemes = [BandCount]Key{Professional, Minimal, Dark, Creative, Creative}

func BandFor(score float64) Band {
	for i, upper := range bandUpperBounds {
		if score <= upper {
			return Band(i)
		}
	}
	return Band(BandCount - 1)
}

// RecommendTheme maps a personality score in [0, 1] to its default theme.
func RecommendTheme(score float64) Key {
	return bandThemes[BandFor(score)]
}

//go:embed content.yaml
var contentYAML []byte

type HeroCopy struct {
	Title        string `yaml:"title" json:"title"`
	Subtitle     string `yaml:"subtitle" json:"subtitle"`
	Description  string `yaml:"description" json:"description"`
	PrimaryCTA   string `yaml:"primary_cta" json:"primary_cta"`
	SecondaryCTA string `yaml:"secondary_cta" json:"secondary_cta"`
}

// Copy is the display text chosen for a band.
type Copy struct {
	Label string   `yaml:"label" json:"label"`
	Hero  HeroCopy `yaml:"hero" json:"hero"`
}

var loadContent = sync.OnceValues(func() ([BandCount]Copy, error) {
	var out [BandCount]Copy
	var doc struct {
		Bands []Copy `yaml:"bands"`
	}
	if err := yaml.Unmarshal(contentYAML, &doc); err != nil {
		return out, fmt.Errorf("decode content: %w", err)
	}
	if len(doc.Bands) != BandCount {
		return out, fmt.Errorf("content defines %d bands, want %d", len(doc.Bands), BandCount)
	}
	copy(out[:], doc.Bands)
	return out, nil
})

// CopyFor returns the display copy for the band a score falls in.
func CopyFor(score float64) Copy {
	bands, err := loadContent()
	if err != nil {
		panic(err)
	}
	return bands[BandFor(score)]
}

// Label is the short personality label shown next to the active theme.
func Label(score float64) string {
	return CopyFor(score).Label
}
