package config

import (
	"fmt"
	"os"

	renderui "github.com/kk-code-lab/twopane/internal/ui/render"
	"gopkg.in/yaml.v3"
)

// Config holds the optional presentation settings read by the launcher.
type Config struct {
	Theme renderui.Palette `yaml:"theme"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{Theme: renderui.DefaultPalette()}
}

// Load reads a YAML theme file. An empty path yields the defaults; fields
// missing from the file keep their default value.
func Load(path string) (*Config, error) {
	if path == "" {
		return New(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.Theme = cfg.Theme.Merge(renderui.DefaultPalette())

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks that every theme color is usable by both painters.
func (c *Config) Validate() error {
	colors := []struct {
		key   string
		value string
	}{
		{"theme.header", c.Theme.HeaderFg},
		{"theme.selection_bg", c.Theme.SelectionBg},
		{"theme.selection_fg", c.Theme.SelectionFg},
		{"theme.directory", c.Theme.DirectoryFg},
		{"theme.dim", c.Theme.DimFg},
		{"theme.notice", c.Theme.NoticeFg},
	}
	for _, color := range colors {
		if !renderui.ValidColor(color.value) {
			return fmt.Errorf("%s: unsupported color %q (use 0-255 or #rrggbb)", color.key, color.value)
		}
	}
	return nil
}
