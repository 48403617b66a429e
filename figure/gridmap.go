package figure

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/plot/vg"

	"github.com/mbeaupre/climplot/array"
	"github.com/mbeaupre/climplot/cmaps"
	"github.com/mbeaupre/climplot/internal/locale"
	"github.com/mbeaupre/climplot/style"
)

// MapOpts configures the gridded-field figures (GridMap, Heatmap).
type MapOpts struct {
	UseAttrs  UseAttrs
	Cmap      string    // colormap name; empty picks one from the variable group
	Divergent bool      // divergent colormap centered on Center
	Center    float64   // center of a divergent scale
	Levels    int       // number of discrete color levels; 0 keeps a continuous scale
	Bounds    []float64 // explicit level bounds, overriding Levels
	VMin      *float64  // color range overrides; nil reads the data
	VMax      *float64
	Width     float64 // inches; 0 takes the style default
	Height    float64

	Coastlines bool   // overlay coarse coastlines (GridMap)
	ShowTime   string // anchor where the plotted time step is written, "" hides it
}

// GridMap draws a 2-D lat/lon field as colored cells with a colorbar.
// Extra singleton dimensions are squeezed away and a leading time
// dimension collapses to its first step.
func GridMap(obj array.Obj, opts MapOpts) (*Figure, error) {
	da := firstArray(obj)
	if da == nil {
		return nil, fmt.Errorf("figure: no data to plot")
	}
	fld, err := resolveField(da)
	if err != nil {
		return nil, err
	}

	cm, norm, err := resolveScale(obj, fld.vmin, fld.vmax, opts)
	if err != nil {
		return nil, err
	}

	st := style.Current()
	fig := newFigure(st, opts.Width, opts.Height)
	p := newPlot(st)
	p.Add(newFieldPlotter(fld.xs, fld.ys, fld.vals, cm, norm))
	if opts.Coastlines {
		if err := addCoastlines(p); err != nil {
			return nil, err
		}
		// keep the view on the field, not the global outlines
		p.X.Min, p.X.Max = fld.xs[0], fld.xs[len(fld.xs)-1]
		p.Y.Min, p.Y.Max = fld.ys[0], fld.ys[len(fld.ys)-1]
	}
	if opts.ShowTime != "" && fld.when != "" {
		loc, err := ParseLoc(opts.ShowTime)
		if err != nil {
			return nil, err
		}
		p.Add(newAnchoredText(loc, fld.when, vg.Points(st.TickSize)))
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

// field holds a 2-D slice oriented rows=y, cols=x, with cell edges.
type field struct {
	xdim, ydim string
	xs, ys     []float64 // cell edges
	vals       [][]float64
	vmin, vmax float64
	when       string // timestamp of the collapsed time step, if any
}

// resolveField reduces an array to a 2-D lat/lon (or generic y/x) field.
func resolveField(da *array.DataArray) (*field, error) {
	da = da.Squeeze()
	when := ""
	if len(da.Times) > 0 {
		when = da.Times[0].Format("2006-01-02")
	}
	if da.HasDim("time") && da.NDim() > 2 {
		slog.Debug("collapsing time dimension to its first step", "var", da.Name)
		var err error
		da, err = da.SelIndex("time", 0)
		if err != nil {
			return nil, err
		}
		da = da.Squeeze()
	}
	if err := da.RequireDims(2); err != nil {
		return nil, err
	}

	ydim, xdim := da.Dims[0], da.Dims[1]
	swapped := false
	// lat belongs on y, lon on x, whatever the storage order
	if xdim == "lat" || xdim == "y" || ydim == "lon" || ydim == "x" {
		ydim, xdim = xdim, ydim
		swapped = true
	}

	ny, nx := da.DimLen(ydim), da.DimLen(xdim)
	vals := make([][]float64, ny)
	for i := 0; i < ny; i++ {
		vals[i] = make([]float64, nx)
		for j := 0; j < nx; j++ {
			if swapped {
				vals[i][j] = da.At(j, i)
			} else {
				vals[i][j] = da.At(i, j)
			}
		}
	}

	vmin, vmax := da.MinMax()
	return &field{
		xdim: xdim,
		ydim: ydim,
		xs:   axisEdges(da.Coord(xdim), nx),
		ys:   axisEdges(da.Coord(ydim), ny),
		vals: vals,
		vmin: vmin,
		vmax: vmax,
		when: when,
	}, nil
}

func axisEdges(coord []float64, n int) []float64 {
	if len(coord) == n {
		return cellEdges(coord)
	}
	return indexEdges(n)
}

// resolveScale picks the colormap and norm for a field: explicit name or
// variable-group lookup, range overrides or the data extent.
func resolveScale(obj array.Obj, vmin, vmax float64, opts MapOpts) (*cmaps.Colormap, cmaps.Norm, error) {
	var cm *cmaps.Colormap
	var err error
	if opts.Cmap != "" {
		cm, err = cmaps.Named(opts.Cmap)
	} else {
		cm, err = cmaps.New(cmaps.VarGroupOf(obj), opts.Divergent)
	}
	if err != nil {
		return nil, nil, err
	}

	if opts.VMin != nil {
		vmin = *opts.VMin
	}
	if opts.VMax != nil {
		vmax = *opts.VMax
	}
	norm, err := cmaps.Make(vmin, vmax, cmaps.NormSpec{
		Levels:    opts.Levels,
		Bounds:    opts.Bounds,
		Divergent: opts.Divergent,
		Center:    opts.Center,
	})
	if err != nil {
		return nil, nil, err
	}
	return cm, norm, nil
}
