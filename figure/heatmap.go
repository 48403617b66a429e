package figure

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mbeaupre/climplot/array"
	"github.com/mbeaupre/climplot/style"
)

// HeatmapOpts configures Heatmap.
type HeatmapOpts struct {
	MapOpts
	Annot bool // write the value in each cell
}

// Heatmap draws a 2-D array against its labeled axes, one colored cell
// per value. Axis labels come from the array's string labels when set,
// from coordinates otherwise.
func Heatmap(obj array.Obj, opts HeatmapOpts) (*Figure, error) {
	da := firstArray(obj)
	if da == nil {
		return nil, fmt.Errorf("figure: no data to plot")
	}
	da = da.Squeeze()
	if err := da.RequireDims(2); err != nil {
		return nil, err
	}

	ydim, xdim := da.Dims[0], da.Dims[1]
	ny, nx := da.DimLen(ydim), da.DimLen(xdim)
	vals := make([][]float64, ny)
	for i := 0; i < ny; i++ {
		vals[i] = make([]float64, nx)
		for j := 0; j < nx; j++ {
			vals[i][j] = da.At(i, j)
		}
	}

	vmin, vmax := da.MinMax()
	cm, norm, err := resolveScale(obj, vmin, vmax, opts.MapOpts)
	if err != nil {
		return nil, err
	}

	st := style.Current()
	fig := newFigure(st, opts.Width, opts.Height)
	p := newPlot(st)
	// cells centered on integer positions so nominal ticks line up
	p.Add(newFieldPlotter(unitCenters(nx), unitCenters(ny), vals, cm, norm))
	p.NominalX(axisLabels(da, xdim)...)
	p.NominalY(axisLabels(da, ydim)...)

	if opts.Annot {
		var ann plotter.XYLabels
		for i := 0; i < ny; i++ {
			for j := 0; j < nx; j++ {
				if math.IsNaN(vals[i][j]) {
					continue
				}
				ann.XYs = append(ann.XYs, plotter.XY{X: float64(j), Y: float64(i)})
				ann.Labels = append(ann.Labels, strconv.FormatFloat(vals[i][j], 'g', 3, 64))
			}
		}
		labels, err := plotter.NewLabels(ann)
		if err != nil {
			return nil, err
		}
		for i := range labels.TextStyle {
			labels.TextStyle[i].XAlign = draw.XCenter
			labels.TextStyle[i].YAlign = draw.YCenter
			labels.TextStyle[i].Font.Size = vg.Points(st.TickSize)
		}
		p.Add(labels)
	}

	ua := defaultMapAttrs().merge(opts.UseAttrs)
	applyAttrs(p, obj, ua)

	fig.cbar = colorBarPlot(cm, norm, cbarLabel(obj, ua), st)
	fig.setPlot(p)
	return fig, nil
}

// unitCenters returns cell edges so that cell i is centered on i.
func unitCenters(n int) []float64 {
	edges := make([]float64, n+1)
	for i := range edges {
		edges[i] = float64(i) - 0.5
	}
	return edges
}

// axisLabels resolves tick labels for a dimension: string labels, then
// formatted coordinates, then indices.
func axisLabels(da *array.DataArray, dim string) []string {
	if ls, ok := da.Labels[dim]; ok && len(ls) == da.DimLen(dim) {
		return ls
	}
	n := da.DimLen(dim)
	out := make([]string, n)
	if c := da.Coord(dim); len(c) == n {
		for i, v := range c {
			out[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		return out
	}
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}
