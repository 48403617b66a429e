package figure

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Loc is an anchor position in axes-fraction coordinates, with the text
// alignment that keeps the content inside the plot area.
type Loc struct {
	Name   string
	X, Y   float64
	XAlign draw.XAlignment
	YAlign draw.YAlignment
}

var locTable = []Loc{
	{"upper right", 0.95, 0.95, draw.XRight, draw.YTop},
	{"upper left", 0.05, 0.95, draw.XLeft, draw.YTop},
	{"lower left", 0.05, 0.05, draw.XLeft, draw.YBottom},
	{"lower right", 0.95, 0.05, draw.XRight, draw.YBottom},
	{"right", 0.95, 0.5, draw.XRight, draw.YCenter},
	{"center left", 0.05, 0.5, draw.XLeft, draw.YCenter},
	{"center right", 0.95, 0.5, draw.XRight, draw.YCenter},
	{"lower center", 0.5, 0.05, draw.XCenter, draw.YBottom},
	{"upper center", 0.5, 0.95, draw.XCenter, draw.YTop},
	{"center", 0.5, 0.5, draw.XCenter, draw.YCenter},
}

// ParseLoc resolves an anchor name ("upper left", "lower right", ...) or
// its numeric code 1-10 to a location.
func ParseLoc(s string) (Loc, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > len(locTable) {
			return Loc{}, fmt.Errorf("location code %d out of range 1-%d", n, len(locTable))
		}
		return locTable[n-1], nil
	}
	for _, l := range locTable {
		if l.Name == s {
			return l, nil
		}
	}
	return Loc{}, fmt.Errorf("unknown location %q", s)
}

// anchoredText draws a string at an axes-fraction anchor, independent of
// the data coordinates.
type anchoredText struct {
	Loc   Loc
	Text  string
	Style draw.TextStyle
}

func newAnchoredText(loc Loc, s string, size vg.Length) *anchoredText {
	fnt := plot.DefaultFont
	fnt.Size = size
	return &anchoredText{
		Loc:  loc,
		Text: s,
		Style: draw.TextStyle{
			Color:   color.Black,
			Font:    fnt,
			XAlign:  loc.XAlign,
			YAlign:  loc.YAlign,
			Handler: plot.DefaultTextHandler,
		},
	}
}

// Plot implements plot.Plotter.
func (at *anchoredText) Plot(c draw.Canvas, _ *plot.Plot) {
	x := c.Min.X + vg.Length(at.Loc.X)*(c.Max.X-c.Min.X)
	y := c.Min.Y + vg.Length(at.Loc.Y)*(c.Max.Y-c.Min.Y)
	c.FillText(at.Style, vg.Point{X: x, Y: y}, at.Text)
}
