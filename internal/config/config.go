package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// IndentStyle selects whether the default auto-indent step indents
// with spaces or with tabs.
type IndentStyle string

const (
	IndentStyleSpaces IndentStyle = "spaces"
	IndentStyleTabs   IndentStyle = "tabs"
)

// Config holds the editor preferences a Source reads at construction
// and after a live reload: theme selection, font metrics for layout,
// and indentation defaults. Mirrors the shape of the teacher's
// config.Config but with Lilypad's much smaller settings surface.
type Config struct {
	Theme  ThemeConfig  `toml:"theme"`
	Font   FontConfig   `toml:"font"`
	Editor EditorConfig `toml:"editor"`
}

// ThemeConfig selects the active color theme by name (internal/theme).
type ThemeConfig struct {
	Name string `toml:"name"`
}

// FontConfig gives the renderer the metrics it needs to convert
// character columns to pixel offsets; Lilypad assumes a monospace
// font, so only advance width and line height are needed.
type FontConfig struct {
	Family       string  `toml:"family"`
	Size         float64 `toml:"size"`
	AdvanceWidth float64 `toml:"advance_width"`
	LineHeight   float64 `toml:"line_height"`
}

// EditorConfig holds per-document editing defaults.
type EditorConfig struct {
	TabWidth    int         `toml:"tab_width"`
	IndentStyle IndentStyle `toml:"indent_style"`
}

// Default returns the built-in configuration used when no file is
// present or a loaded file omits a section.
func Default() Config {
	return Config{
		Theme: ThemeConfig{Name: "lilypad-dark"},
		Font: FontConfig{
			Family:       "monospace",
			Size:         13,
			AdvanceWidth: 8,
			LineHeight:   18,
		},
		Editor: EditorConfig{
			TabWidth:    4,
			IndentStyle: IndentStyleSpaces,
		},
	}
}

// Load reads a TOML configuration file at path and merges it over
// Default, per field group. A missing file is not an error: Load
// returns the defaults unchanged, matching the teacher loader's
// "file doesn't exist is not an error" convention.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}
