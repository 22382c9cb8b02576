package theme

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed themes.yaml
var themesYAML []byte

type catalogFile struct {
	Themes     []Theme `yaml:"themes"`
	Assessment Theme   `yaml:"assessment"`
}

// Catalog is the closed set of themes known at build time.
type Catalog struct {
	byKey      map[Key]Theme
	order      []Key
	assessment Theme
}

var ErrInvalidCatalog = errors.New("invalid theme catalog")

// ParseCatalog decodes and validates a catalog document.
func ParseCatalog(raw []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	c := &Catalog{byKey: make(map[Key]Theme, len(f.Themes))}
	for _, t := range f.Themes {
		if err := checkCapabilities(t); err != nil {
			return nil, err
		}
		if _, dup := c.byKey[t.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate theme %q", ErrInvalidCatalog, t.Key)
		}
		c.byKey[t.Key] = t
		c.order = append(c.order, t.Key)
	}
	for _, k := range Keys() {
		if _, ok := c.byKey[k]; !ok {
			return nil, fmt.Errorf("%w: missing theme %q", ErrInvalidCatalog, k)
		}
	}
	if f.Assessment.Key != Assessment {
		return nil, fmt.Errorf("%w: assessment theme must use key %q", ErrInvalidCatalog, Assessment)
	}
	if err := checkCapabilities(f.Assessment); err != nil {
		return nil, err
	}
	c.assessment = f.Assessment
	return c, nil
}

func checkCapabilities(t Theme) error {
	missing := ""
	switch {
	case t.Key == "":
		missing = "key"
	case t.Name == "":
		missing = "name"
	case t.Colors.Primary == "" || t.Colors.Background == "" || t.Colors.Text.Primary == "":
		missing = "colors"
	case t.Fonts.Primary == "" || t.Fonts.Heading == "":
		missing = "fonts"
	case t.Layout.MaxWidth == "" || t.Layout.BorderRadius == "":
		missing = "layout"
	case t.Animations.Scale <= 0 || t.Animations.Scale > 1 || t.Animations.Duration == "":
		missing = "animations"
	}
	if missing != "" {
		return fmt.Errorf("%w: theme %q lacks %s", ErrInvalidCatalog, t.Key, missing)
	}
	return nil
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return ParseCatalog(themesYAML)
})

// Default returns the embedded catalog. The embedded document is validated by
// tests, so a failure here is a build defect.
func Default() *Catalog {
	c, err := loadDefault()
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Get(k Key) (Theme, bool) {
	t, ok := c.byKey[k]
	return t, ok
}

// Lookup resolves k, falling back to the default theme for unknown keys.
func (c *Catalog) Lookup(k Key) Theme {
	if t, ok := c.byKey[k]; ok {
		return t
	}
	return c.byKey[DefaultKey]
}

func (c *Catalog) All() []Theme {
	out := make([]Theme, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.byKey[k])
	}
	return out
}

func (c *Catalog) Assessment() Theme { return c.assessment }
