// Package preview renders quick terminal views of labeled arrays: an
// asciigraph sparkline for series and a braille shade map for 2-D fields.
package preview

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/mbeaupre/climplot/array"
)

// SparkOpts configures Sparkline.
type SparkOpts struct {
	Width   int // graph columns; default 80
	Height  int // graph rows; default 10
	Caption string
	Theme   Theme
}

// Sparkline renders a 1-D series as an ascii chart with a styled header
// and a min/max/last footer.
func Sparkline(da *array.DataArray, opts SparkOpts) (string, error) {
	if da == nil {
		return "", fmt.Errorf("preview: no data")
	}
	da = da.Squeeze()
	if err := da.RequireDims(1); err != nil {
		return "", err
	}
	data := fillNaN(da.Values)
	if len(data) < 2 {
		return "", fmt.Errorf("preview: %s: need at least two points", da.Name)
	}

	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 10
	}
	theme := opts.Theme
	if theme.Name == "" {
		theme = ThemeDefault
	}
	caption := opts.Caption
	if caption == "" {
		caption = da.Name
		if units, ok := da.Attr("units"); ok && units != "" && units != "1" {
			caption += " (" + units + ")"
		}
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Caption(caption),
	)

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Header)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Value)
	mutedStyle := lipgloss.NewStyle().Foreground(theme.Muted)

	lo, hi := da.MinMax()
	var b strings.Builder
	if long, ok := da.Attr("long_name"); ok {
		b.WriteString(headerStyle.Render(long) + "\n")
	}
	b.WriteString(graph + "\n")
	b.WriteString(mutedStyle.Render("min ") + valueStyle.Render(fmt.Sprintf("%.4g", lo)))
	b.WriteString(mutedStyle.Render("  max ") + valueStyle.Render(fmt.Sprintf("%.4g", hi)))
	b.WriteString(mutedStyle.Render("  last ") + valueStyle.Render(fmt.Sprintf("%.4g", data[len(data)-1])))
	b.WriteString("\n")
	return b.String(), nil
}

// fillNaN carries the previous valid value through gaps, since the ascii
// plotter cannot skip points.
func fillNaN(vs []float64) []float64 {
	out := make([]float64, len(vs))
	prev := 0.0
	seeded := false
	for i, v := range vs {
		if math.IsNaN(v) {
			out[i] = prev
			continue
		}
		if !seeded {
			// backfill anything before the first valid value
			for j := 0; j < i; j++ {
				out[j] = v
			}
			seeded = true
		}
		out[i] = v
		prev = v
	}
	return out
}
