// Package style manages the stylesheets applied to figures: fonts, figure
// size, line widths and the color cycle. Styles are YAML documents; the
// named ones ship embedded (climplot, paper, poster) and any path ending in
// .yaml is loaded from disk. Sheets overlay the current style field by
// field, so "paper" on top of "climplot" only overrides what it declares.
package style

import (
	"embed"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var styleFS embed.FS

// Style is one resolved stylesheet. Sizes are in points, figure size in
// inches.
type Style struct {
	Font       string   `yaml:"font"`
	FontSize   float64  `yaml:"font_size"`
	TitleSize  float64  `yaml:"title_size"`
	LabelSize  float64  `yaml:"label_size"`
	TickSize   float64  `yaml:"tick_size"`
	LegendSize float64  `yaml:"legend_size"`
	FigWidth   float64  `yaml:"fig_width"`
	FigHeight  float64  `yaml:"fig_height"`
	LineWidth  float64  `yaml:"line_width"`
	Grid       bool     `yaml:"grid"`
	GridColor  string   `yaml:"grid_color"`
	Background string   `yaml:"background"`
	ColorCycle []string `yaml:"color_cycle"`
}

var (
	mu      sync.RWMutex
	current = defaultStyle()
)

func defaultStyle() Style {
	var s Style
	raw, err := styleFS.ReadFile("data/climplot.yaml")
	if err != nil {
		panic(fmt.Sprintf("style: missing embedded default sheet: %v", err))
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		panic(fmt.Sprintf("style: bad embedded default sheet: %v", err))
	}
	return s
}

// List returns the names of the embedded stylesheets.
func List() []string {
	entries, err := styleFS.ReadDir("data")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(out)
	return out
}

// Set overlays one or more stylesheets, by embedded name or .yaml path,
// onto the current style. Unknown names are skipped with a warning.
func Set(names ...string) error {
	mu.Lock()
	defer mu.Unlock()
	for _, name := range names {
		var raw []byte
		var err error
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			raw, err = os.ReadFile(name)
		} else {
			raw, err = styleFS.ReadFile("data/" + name + ".yaml")
		}
		if err != nil {
			slog.Warn("style not found", "name", name)
			continue
		}
		if err := yaml.Unmarshal(raw, &current); err != nil {
			return fmt.Errorf("style %q: %w", name, err)
		}
	}
	return nil
}

// Reset restores the default style before optionally applying sheets.
func Reset(names ...string) error {
	mu.Lock()
	current = defaultStyle()
	mu.Unlock()
	if len(names) > 0 {
		return Set(names...)
	}
	return nil
}

// Current returns a copy of the active style.
func Current() Style {
	mu.RLock()
	defer mu.RUnlock()
	s := current
	s.ColorCycle = append([]string(nil), current.ColorCycle...)
	return s
}

// CycleColor returns the i-th color of the active cycle, wrapping around.
func CycleColor(i int) color.Color {
	s := Current()
	return s.Cycle(i)
}

// Cycle returns the i-th color of this style's cycle, wrapping around.
func (s Style) Cycle(i int) color.Color {
	if len(s.ColorCycle) == 0 {
		return color.Black
	}
	if i < 0 {
		i = 0
	}
	c, err := colorful.Hex(s.ColorCycle[i%len(s.ColorCycle)])
	if err != nil {
		return color.Black
	}
	return c
}

// GridRGBA returns the grid color, defaulting to a light gray.
func (s Style) GridRGBA() color.Color {
	if s.GridColor == "" {
		return color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
	}
	c, err := colorful.Hex(s.GridColor)
	if err != nil {
		return color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
	}
	return c
}
