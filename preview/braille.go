package preview

// Braille patterns pack 2x4 dots per character cell, unicode offset
// 0x2800:
//   1 4
//   2 5
//   3 6
//   7 8

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/mbeaupre/climplot/array"
	"github.com/mbeaupre/climplot/cmaps"
)

var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// fillOrder lights the dots of one cell bottom-up as the shade deepens.
var fillOrder = [8][2]int{
	{3, 0}, {3, 1}, {2, 0}, {2, 1}, {1, 0}, {1, 1}, {0, 0}, {0, 1},
}

// Canvas is a braille dot grid, (Width*2) x (Height*4) dots across
// Width x Height character cells.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set lights the dot at sub-pixel coordinates (x, y).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets every cell to the empty braille character.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// FieldBraille renders a 2-D field as a braille shade map, w x h
// character cells: denser dots and warmer colormap colors for higher
// values. The row order puts the first field row at the bottom, matching
// a map's orientation.
func FieldBraille(da *array.DataArray, w, h int, theme Theme) (string, error) {
	if da == nil {
		return "", fmt.Errorf("preview: no data")
	}
	da = da.Squeeze()
	if err := da.RequireDims(2); err != nil {
		return "", err
	}
	if w <= 0 {
		w = 40
	}
	if h <= 0 {
		h = 15
	}

	cm, err := cmaps.New(cmaps.VarGroupOf(da), false)
	if err != nil {
		return "", err
	}
	vmin, vmax := da.MinMax()
	span := vmax - vmin
	if span == 0 {
		span = 1
	}

	ny, nx := da.Shape[0], da.Shape[1]
	canvas := NewCanvas(w, h)
	colors := make([][]string, h)
	for row := 0; row < h; row++ {
		colors[row] = make([]string, w)
		for col := 0; col < w; col++ {
			// nearest field sample, first field row at the bottom
			iy := (h - 1 - row) * ny / h
			ix := col * nx / w
			v := da.At(iy, ix)
			if math.IsNaN(v) {
				continue
			}
			t := (v - vmin) / span
			dots := int(t*8 + 0.5)
			for d := 0; d < dots; d++ {
				canvas.Set(col*2+fillOrder[d][1], row*4+fillOrder[d][0])
			}
			c, ok := colorful.MakeColor(cm.At(t))
			if ok {
				colors[row][col] = c.Hex()
			}
		}
	}

	mutedStyle := lipgloss.NewStyle().Foreground(theme.Muted)
	var b strings.Builder
	if long, ok := da.Attr("long_name"); ok {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.Header).Render(long) + "\n")
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			r := string(canvas.Grid[row][col])
			if hex := colors[row][col]; hex != "" {
				r = lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(r)
			}
			b.WriteString(r)
		}
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%s  [%.4g, %.4g]", da.Name, vmin, vmax)) + "\n")
	return b.String(), nil
}
