package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultKind   = "auto"
	DefaultStyle  = "climplot"
	DefaultLegend = "lines"
	DefaultOut    = "figure.png"
)

// Config is one render job: which variable to draw, how, and where the
// result goes. YAML files overlay the defaults field by field.
type Config struct {
	Kind      string   `yaml:"kind"` // auto, timeseries, gridmap, stripes, heatmap, scattermap, violin
	Var       string   `yaml:"var"`
	Out       string   `yaml:"out"`
	Style     []string `yaml:"style"`
	Legend    string   `yaml:"legend"`
	Locale    string   `yaml:"locale"`
	Cmap      string   `yaml:"cmap"`
	Divergent bool     `yaml:"divergent"`
	Center    float64  `yaml:"center"`
	Levels    int      `yaml:"levels"`

	Coastlines bool    `yaml:"coastlines"`
	ShowTime   string  `yaml:"show_time"`
	Annot      bool    `yaml:"annot"`
	Divide     float64 `yaml:"divide"`

	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Attrs map[string]string `yaml:"attrs"` // use-attrs overrides

	Logo LogoConfig `yaml:"logo"`
}

// LogoConfig places a logo from the store onto the saved figure.
type LogoConfig struct {
	Name  string  `yaml:"name"` // store entry; "default" works once one is installed
	Loc   string  `yaml:"loc"`
	Scale float64 `yaml:"scale"`
}

var kinds = map[string]bool{
	"auto":       true,
	"timeseries": true,
	"gridmap":    true,
	"stripes":    true,
	"heatmap":    true,
	"scattermap": true,
	"violin":     true,
}

func DefaultConfig() *Config {
	return &Config{
		Kind:   DefaultKind,
		Out:    DefaultOut,
		Style:  []string{DefaultStyle},
		Legend: DefaultLegend,
		Logo:   LogoConfig{Loc: "lower right", Scale: 0.08},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects unknown figure kinds early, before any data is read.
func (c *Config) Validate() error {
	if !kinds[c.Kind] {
		return fmt.Errorf("config: unknown figure kind %q", c.Kind)
	}
	return nil
}
