// Package cmaps builds the colormaps used by the figure functions and
// infers which one fits a variable. Colormaps follow the IPCC AR6 visual
// style: one sequential and one divergent map per variable group (temp,
// prec, wind, cryo, slev, misc), expressed as anchor color stops blended in
// Lab space. Names follow the <group>_seq / <group>_div convention, with a
// trailing _r reversing the ramp.
package cmaps

import (
	_ "embed"
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed data/colormaps.yaml
var colormapsYAML []byte

// catalogue maps colormap name to its hex anchor stops, evenly spaced.
var catalogue = func() map[string][]string {
	var m map[string][]string
	if err := yaml.Unmarshal(colormapsYAML, &m); err != nil {
		panic(fmt.Sprintf("cmaps: bad embedded colormap table: %v", err))
	}
	return m
}()

type stop struct {
	col colorful.Color
	pos float64
}

// Colormap is a continuous color ramp over [0, 1].
type Colormap struct {
	name     string
	stops    []stop
	reversed bool
}

// Named returns the colormap of the given catalogue name. A trailing "_r"
// (or ".txt", kept for compatibility with the IPCC file names) is handled.
func Named(name string) (*Colormap, error) {
	clean := strings.TrimSuffix(name, ".txt")
	reversed := false
	if strings.HasSuffix(clean, "_r") {
		reversed = true
		clean = strings.TrimSuffix(clean, "_r")
	}
	hexes, ok := catalogue[clean]
	if !ok {
		return nil, fmt.Errorf("cmaps: unknown colormap %q", name)
	}
	cm, err := fromHexes(clean, hexes)
	if err != nil {
		return nil, err
	}
	cm.reversed = reversed
	return cm, nil
}

// New builds the colormap for a variable group, choosing the sequential or
// divergent ramp. Group naming quirks of the IPCC scheme are preserved:
// misc gets the batlow-like misc_seq_3, misc2 (freezing rain) misc_seq_2.
func New(group string, divergent bool) (*Colormap, error) {
	var name string
	if divergent {
		if group == "misc2" {
			group = "misc"
		}
		name = group + "_div"
	} else {
		switch group {
		case "misc":
			name = "misc_seq_3"
		case "misc2":
			name = "misc_seq_2"
		default:
			name = group + "_seq"
		}
	}
	return Named(name)
}

func fromHexes(name string, hexes []string) (*Colormap, error) {
	if len(hexes) < 2 {
		return nil, fmt.Errorf("cmaps: colormap %q needs at least two stops", name)
	}
	stops := make([]stop, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("cmaps: colormap %q stop %d: %w", name, i, err)
		}
		stops[i] = stop{col: c, pos: float64(i) / float64(len(hexes)-1)}
	}
	return &Colormap{name: name, stops: stops}, nil
}

// FromHex builds an ad hoc colormap from evenly spaced hex stops.
func FromHex(name string, hexes ...string) (*Colormap, error) {
	return fromHexes(name, hexes)
}

// Name returns the catalogue name, with "_r" appended when reversed.
func (c *Colormap) Name() string {
	if c.reversed {
		return c.name + "_r"
	}
	return c.name
}

// Reversed returns the mirror-image colormap.
func (c *Colormap) Reversed() *Colormap {
	return &Colormap{name: c.name, stops: c.stops, reversed: !c.reversed}
}

// At returns the ramp color for t in [0, 1]; t is clamped. Neighbouring
// stops are blended in Lab space and clamped to the RGB gamut.
func (c *Colormap) At(t float64) color.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	if c.reversed {
		t = 1 - t
	}
	for i := 0; i < len(c.stops)-1; i++ {
		s1, s2 := c.stops[i], c.stops[i+1]
		if s1.pos <= t && t <= s2.pos {
			f := (t - s1.pos) / (s2.pos - s1.pos)
			return s1.col.BlendLab(s2.col, f).Clamped()
		}
	}
	return c.stops[len(c.stops)-1].col
}

// Colors samples n evenly spaced colors from the ramp.
func (c *Colormap) Colors(n int) []color.Color {
	if n < 1 {
		return nil
	}
	out := make([]color.Color, n)
	if n == 1 {
		out[0] = c.At(0.5)
		return out
	}
	for i := range out {
		out[i] = c.At(float64(i) / float64(n-1))
	}
	return out
}

// Names lists the catalogue colormap names, sorted.
func Names() []string {
	out := make([]string, 0, len(catalogue))
	for name := range catalogue {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
