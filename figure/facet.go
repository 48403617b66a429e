package figure

import (
	"fmt"
	"strconv"

	"gonum.org/v1/plot"

	"github.com/mbeaupre/climplot/array"
	"github.com/mbeaupre/climplot/cmaps"
	"github.com/mbeaupre/climplot/style"
)

// FacetOpts configures FacetGridMap.
type FacetOpts struct {
	Col     string // dimension spread across columns
	Row     string // optional dimension spread across rows
	MaxCols int    // wrap width when only Col is set; default 3
	Letters bool   // enumerate panels "a) ", "b) ", ...
	MapOpts
}

// FacetGridMap draws one map panel per step along a dimension (or a
// Row x Col grid along two), every panel sharing the color scale and a
// single colorbar.
func FacetGridMap(da *array.DataArray, opts FacetOpts) (*Figure, error) {
	if da == nil {
		return nil, fmt.Errorf("figure: no data to plot")
	}
	if opts.Col == "" {
		return nil, fmt.Errorf("figure: facets need a column dimension")
	}
	da = da.Squeeze()
	if !da.HasDim(opts.Col) {
		return nil, fmt.Errorf("figure: no %s dimension in %s", opts.Col, da.Name)
	}
	if opts.Row != "" && !da.HasDim(opts.Row) {
		return nil, fmt.Errorf("figure: no %s dimension in %s", opts.Row, da.Name)
	}

	vmin, vmax := da.MinMax()
	cm, norm, err := resolveScale(da, vmin, vmax, opts.MapOpts)
	if err != nil {
		return nil, err
	}

	nCol := da.DimLen(opts.Col)
	var rows, cols int
	if opts.Row != "" {
		rows, cols = da.DimLen(opts.Row), nCol
	} else {
		cols = opts.MaxCols
		if cols <= 0 {
			cols = 3
		}
		if nCol < cols {
			cols = nCol
		}
		rows = (nCol + cols - 1) / cols
	}

	st := style.Current()
	// panels share the figure budget instead of each getting a full frame
	fig := newFigure(st, orDefault(opts.Width, st.FigWidth/1.5), orDefault(opts.Height, st.FigHeight/1.5))

	plots := make([][]*plot.Plot, rows)
	panel := 0
	for r := 0; r < rows; r++ {
		plots[r] = make([]*plot.Plot, cols)
		for c := 0; c < cols; c++ {
			sub := da
			var title string
			if opts.Row != "" {
				title = panelTitle(da, opts.Row, r) + ", " + panelTitle(da, opts.Col, c)
				if sub, err = sub.SelIndex(opts.Row, r); err != nil {
					return nil, err
				}
				if sub, err = sub.SelIndex(opts.Col, c); err != nil {
					return nil, err
				}
			} else {
				i := r*cols + c
				if i >= nCol {
					break
				}
				title = panelTitle(da, opts.Col, i)
				if sub, err = sub.SelIndex(opts.Col, i); err != nil {
					return nil, err
				}
			}
			if opts.Letters {
				title = string(rune('a'+panel)) + ") " + title
			}
			p, err := facetPanel(sub, cm, norm, st)
			if err != nil {
				return nil, err
			}
			p.Title.Text = title
			plots[r][c] = p
			panel++
		}
	}

	fig.setGrid(plots)
	fig.cbar = colorBarPlot(cm, norm, cbarLabel(da, defaultMapAttrs().merge(opts.UseAttrs)), st)
	return fig, nil
}

func facetPanel(sub *array.DataArray, cm *cmaps.Colormap, norm cmaps.Norm, st style.Style) (*plot.Plot, error) {
	fld, err := resolveField(sub)
	if err != nil {
		return nil, err
	}
	p := newPlot(st)
	p.Add(newFieldPlotter(fld.xs, fld.ys, fld.vals, cm, norm))
	return p, nil
}

// panelTitle names one step along a dimension: calendar year for time,
// then string labels, then coordinate values, then the index.
func panelTitle(da *array.DataArray, dim string, i int) string {
	if dim == "time" && i < len(da.Times) {
		return strconv.Itoa(da.Times[i].Year())
	}
	if ls, ok := da.Labels[dim]; ok && i < len(ls) {
		return ls[i]
	}
	if c := da.Coord(dim); i < len(c) {
		return strconv.FormatFloat(c[i], 'g', -1, 64)
	}
	return strconv.Itoa(i)
}
