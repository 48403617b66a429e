package figure

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mbeaupre/climplot/array"
	"github.com/mbeaupre/climplot/internal/locale"
	"github.com/mbeaupre/climplot/style"
)

// ScatterMapOpts configures ScatterMap.
type ScatterMapOpts struct {
	MapOpts
	SizeVar string  // dataset variable that scales the glyph radius
	Radius  float64 // base glyph radius in points; 0 means 3
}

// ScatterMap draws station data as points at their lat/lon coordinates,
// colored by value. A second dataset variable can drive the point size.
func ScatterMap(obj array.Obj, opts ScatterMapOpts) (*Figure, error) {
	da := firstArray(obj)
	if da == nil {
		return nil, fmt.Errorf("figure: no data to plot")
	}
	da = da.Squeeze()
	if err := da.RequireDims(1); err != nil {
		return nil, err
	}
	lats, lons := da.Coord("lat"), da.Coord("lon")
	if len(lats) != da.Len() || len(lons) != da.Len() {
		return nil, fmt.Errorf("figure: %s: point data needs lat and lon coordinates along %s", da.Name, da.Dims[0])
	}

	var sizes []float64
	if opts.SizeVar != "" {
		ds, ok := obj.(*array.Dataset)
		if !ok || ds.Var(opts.SizeVar) == nil {
			return nil, fmt.Errorf("figure: size variable %q not in dataset", opts.SizeVar)
		}
		sizes = ds.Var(opts.SizeVar).Values
	}

	// drop NaN stations, keeping the parallel slices aligned
	pts := make(plotter.XYs, 0, da.Len())
	vals := make([]float64, 0, da.Len())
	szs := make([]float64, 0, da.Len())
	for i, v := range da.Values {
		if math.IsNaN(v) {
			continue
		}
		pts = append(pts, plotter.XY{X: lons[i], Y: lats[i]})
		vals = append(vals, v)
		if sizes != nil {
			szs = append(szs, sizes[i])
		}
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("figure: %s: all stations are NaN", da.Name)
	}

	vmin, vmax := da.MinMax()
	cm, norm, err := resolveScale(obj, vmin, vmax, opts.MapOpts)
	if err != nil {
		return nil, err
	}

	base := opts.Radius
	if base <= 0 {
		base = 3
	}
	szMin, szMax := minMax(szs)

	st := style.Current()
	fig := newFigure(st, opts.Width, opts.Height)
	p := newPlot(st)

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		r := base
		if len(szs) > 0 && szMax > szMin {
			r = base * (0.6 + 1.4*(szs[i]-szMin)/(szMax-szMin))
		}
		return draw.GlyphStyle{
			Color:  cm.At(norm.Normalize(vals[i])),
			Radius: vg.Points(r),
			Shape:  draw.CircleGlyph{},
		}
	}
	p.Add(sc)

	if len(szs) > 0 && szMax > szMin {
		for _, end := range []struct {
			v float64
			r float64
		}{{szMin, 0.6 * base}, {szMax, 2 * base}} {
			sw, err := plotter.NewScatter(plotter.XYs{})
			if err != nil {
				return nil, err
			}
			sw.GlyphStyle = draw.GlyphStyle{
				Color:  color.Gray{Y: 0x60},
				Radius: vg.Points(end.r),
				Shape:  draw.CircleGlyph{},
			}
			p.Legend.Add(fmt.Sprintf("%s = %.3g", opts.SizeVar, end.v), sw)
		}
	}

	ua := defaultMapAttrs().merge(opts.UseAttrs)
	applyAttrs(p, obj, ua)
	if p.X.Label.Text == "" {
		p.X.Label.Text = locale.Term("longitude")
	}
	if p.Y.Label.Text == "" {
		p.Y.Label.Text = locale.Term("latitude")
	}

	fig.cbar = colorBarPlot(cm, norm, cbarLabel(obj, ua), st)
	fig.setPlot(p)
	return fig, nil
}

func minMax(vs []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		if math.IsNaN(v) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
