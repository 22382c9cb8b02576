// Package theme owns the fixed set of visual themes and the rules that map a
// personality score onto a theme and onto band specific display copy.
package theme

import (
	"strconv"
	"strings"
)

// Key identifies a theme. The set is closed; see Keys.
type Key string

const (
	Professional Key = "professional"
	Minimal      Key = "minimal"
	Dark         Key = "dark"
	Creative     Key = "creative"
	Assessment   Key = "assessment"
)

// DefaultKey is the theme of a first run, before any assessment.
const DefaultKey = Professional

// Keys lists the user selectable themes. The assessment theme is only used by
// the quiz flow itself.
func Keys() []Key {
	return []Key{Professional, Creative, Minimal, Dark}
}

// ParseKey accepts any user selectable key, ignoring case and surrounding space.
func ParseKey(raw string) (Key, bool) {
	k := Key(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Keys() {
		if k == known {
			return k, true
		}
	}
	return "", false
}

func (k Key) Valid() bool {
	for _, known := range Keys() {
		if k == known {
			return true
		}
	}
	return false
}

type TextColors struct {
	Primary   string `yaml:"primary" json:"primary"`
	Secondary string `yaml:"secondary" json:"secondary"`
	Light     string `yaml:"light" json:"light"`
}

type Colors struct {
	Primary    string     `yaml:"primary" json:"primary"`
	Secondary  string     `yaml:"secondary" json:"secondary"`
	Accent     string     `yaml:"accent" json:"accent"`
	Background string     `yaml:"background" json:"background"`
	Surface    string     `yaml:"surface" json:"surface"`
	Text       TextColors `yaml:"text" json:"text"`
	Border     string     `yaml:"border" json:"border"`
	Glow       string     `yaml:"glow,omitempty" json:"glow,omitempty"`
}

type Fonts struct {
	Primary string `yaml:"primary" json:"primary"`
	Heading string `yaml:"heading" json:"heading"`
	Accent  string `yaml:"accent" json:"accent"`
}

// Animations.Scale is the animation intensity in (0, 1].
type Animations struct {
	Duration string  `yaml:"duration" json:"duration"`
	Easing   string  `yaml:"easing" json:"easing"`
	Scale    float64 `yaml:"scale" json:"scale"`
}

type Layout struct {
	BorderRadius string `yaml:"border_radius" json:"border_radius"`
	Spacing      string `yaml:"spacing" json:"spacing"`
	MaxWidth     string `yaml:"max_width" json:"max_width"`
}

// Theme is an immutable named configuration. Rendering code switches on Key;
// every theme carries the full capability set.
type Theme struct {
	Key        Key        `yaml:"key" json:"key"`
	Name       string     `yaml:"name" json:"name"`
	Colors     Colors     `yaml:"colors" json:"colors"`
	Fonts      Fonts      `yaml:"fonts" json:"fonts"`
	Animations Animations `yaml:"animations" json:"animations"`
	Layout     Layout     `yaml:"layout" json:"layout"`
}

// TransitionSeconds is the base duration scaled by the animation intensity.
func (t Theme) TransitionSeconds() float64 {
	raw := strings.TrimSuffix(strings.TrimSpace(t.Animations.Duration), "s")
	d, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return d * t.Animations.Scale
}

// StaggerSeconds is the delay between sibling entrance animations.
func (t Theme) StaggerSeconds() float64 {
	return 0.1 * t.Animations.Scale
}
