package figure

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mbeaupre/climplot/array"
	"github.com/mbeaupre/climplot/cmaps"
	"github.com/mbeaupre/climplot/internal/locale"
	"github.com/mbeaupre/climplot/style"
)

// StripesOpts configures Stripes.
type StripesOpts struct {
	UseAttrs UseAttrs
	Cmap     string  // colormap name; empty picks a divergent one from the variable group
	Center   float64 // center of the divergent scale, usually 0
	Divide   float64 // year where a vertical divider is drawn; 0 draws none
	Width    float64
	Height   float64
}

// Stripes draws climate stripes: one row of year-colored cells per entry,
// all rows sharing one color scale. A divider year separates, say, the
// historical period from projections.
func Stripes(data map[string]array.Obj, opts StripesOpts) (*Figure, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("figure: no data to plot")
	}
	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)

	var xs []float64
	vals := make([][]float64, len(names))
	vmin, vmax := 0.0, 0.0
	for i, name := range names {
		da := firstArray(data[name])
		if da == nil {
			return nil, fmt.Errorf("figure: %s: no data", name)
		}
		da = da.Squeeze()
		x, err := seriesX(da)
		if err != nil {
			return nil, err
		}
		if xs == nil {
			xs = x
			vmin, vmax = da.MinMax()
		} else {
			if len(x) != len(xs) {
				return nil, fmt.Errorf("figure: %s: stripes need a common time axis (%d steps, want %d)", name, len(x), len(xs))
			}
			lo, hi := da.MinMax()
			if lo < vmin {
				vmin = lo
			}
			if hi > vmax {
				vmax = hi
			}
		}
		vals[i] = da.Values
	}

	var cm *cmaps.Colormap
	var err error
	if opts.Cmap != "" {
		cm, err = cmaps.Named(opts.Cmap)
	} else {
		cm, err = cmaps.New(cmaps.VarGroupOf(data[names[0]]), true)
	}
	if err != nil {
		return nil, err
	}
	norm, err := cmaps.Make(vmin, vmax, cmaps.NormSpec{Divergent: true, Center: opts.Center})
	if err != nil {
		return nil, err
	}

	st := style.Current()
	fig := newFigure(st, opts.Width, opts.Height)
	p := newPlot(st)
	p.Add(newFieldPlotter(cellEdges(xs), unitCenters(len(names)), vals, cm, norm))

	if len(names) > 1 {
		p.NominalY(names...)
	} else {
		p.HideY()
	}
	p.X.Label.Text = locale.Term("time")

	if opts.Divide != 0 {
		div, err := plotter.NewLine(plotter.XYs{
			{X: opts.Divide, Y: -0.5},
			{X: opts.Divide, Y: float64(len(names)) - 0.5},
		})
		if err != nil {
			return nil, err
		}
		div.LineStyle.Color = color.Black
		div.LineStyle.Width = vg.Points(1.5)
		p.Add(div)
	}

	ua := defaultMapAttrs().merge(opts.UseAttrs)
	applyAttrs(p, data[names[0]], ua)

	fig.cbar = colorBarPlot(cm, norm, cbarLabel(data[names[0]], ua), st)
	fig.setPlot(p)
	return fig, nil
}
