package theme

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lilypad-editor/core/internal/block"
)

// Severity is a diagnostic's urgency, used to pick a marker color
// independent of the block category it's attached to.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// Theme is a named palette mapping block categories and diagnostic
// severities to colors, plus a background used as the fade target for
// Faded.
type Theme struct {
	Name       string
	Background colorful.Color
	Categories map[block.Category]colorful.Color
	Severities map[Severity]colorful.Color
}

// Registry holds the built-in themes by name.
type Registry struct {
	themes map[string]Theme
}

// NewRegistry returns a Registry pre-populated with the built-in themes.
func NewRegistry() *Registry {
	r := &Registry{themes: map[string]Theme{}}
	for _, t := range builtins() {
		r.themes[t.Name] = t
	}
	return r
}

// Lookup returns the named theme, or the registry's default if name
// is unknown or empty.
func (r *Registry) Lookup(name string) Theme {
	if t, ok := r.themes[name]; ok {
		return t
	}
	return r.themes["lilypad-dark"]
}

// Category returns the color for a block category, falling back to
// the Generic entry if the category has no dedicated color.
func (t Theme) Category(cat block.Category) colorful.Color {
	if c, ok := t.Categories[cat]; ok {
		return c
	}
	return t.Categories[block.Generic]
}

// Severity returns the marker color for a diagnostic severity.
func (t Theme) Severity(sev Severity) colorful.Color {
	return t.Severities[sev]
}

// Faded blends c toward the theme's background by fraction (0 keeps
// c unchanged, 1 returns the background), used to dim a block's
// category color while a drag session previews its drop elsewhere.
func (t Theme) Faded(c colorful.Color, fraction float64) colorful.Color {
	if fraction == 0 {
		return c
	}
	if fraction == 1 {
		return t.Background
	}
	return c.BlendLab(t.Background, fraction)
}

// Hex parses a "#rrggbb" string, used when loading theme overrides
// from configuration.
func Hex(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("theme: invalid color %q: %w", s, err)
	}
	return c, nil
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func builtins() []Theme {
	dark := Theme{
		Name:       "lilypad-dark",
		Background: mustHex("#1e1e2e"),
		Categories: map[block.Category]colorful.Color{
			block.Object:      mustHex("#89b4fa"),
			block.FunctionDef: mustHex("#a6e3a1"),
			block.While:       mustHex("#f9e2af"),
			block.If:          mustHex("#f9e2af"),
			block.For:         mustHex("#f9e2af"),
			block.Try:         mustHex("#fab387"),
			block.Switch:      mustHex("#f9e2af"),
			block.Generic:     mustHex("#cdd6f4"),
			block.Comment:     mustHex("#6c7086"),
			block.Error:       mustHex("#f38ba8"),
		},
		Severities: map[Severity]colorful.Color{
			SeverityInfo:    mustHex("#89b4fa"),
			SeverityWarning: mustHex("#f9e2af"),
			SeverityError:   mustHex("#f38ba8"),
		},
	}

	light := Theme{
		Name:       "lilypad-light",
		Background: mustHex("#eff1f5"),
		Categories: map[block.Category]colorful.Color{
			block.Object:      mustHex("#1e66f5"),
			block.FunctionDef: mustHex("#40a02b"),
			block.While:       mustHex("#df8e1d"),
			block.If:          mustHex("#df8e1d"),
			block.For:         mustHex("#df8e1d"),
			block.Try:         mustHex("#fe640b"),
			block.Switch:      mustHex("#df8e1d"),
			block.Generic:     mustHex("#4c4f69"),
			block.Comment:     mustHex("#9ca0b0"),
			block.Error:       mustHex("#d20f39"),
		},
		Severities: map[Severity]colorful.Color{
			SeverityInfo:    mustHex("#1e66f5"),
			SeverityWarning: mustHex("#df8e1d"),
			SeverityError:   mustHex("#d20f39"),
		},
	}

	return []Theme{dark, light}
}
