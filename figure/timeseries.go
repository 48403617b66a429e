package figure

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mbeaupre/climplot/array"
	"github.com/mbeaupre/climplot/cmaps"
	"github.com/mbeaupre/climplot/internal/locale"
	"github.com/mbeaupre/climplot/style"
)

// TimeseriesOpts configures Timeseries.
type TimeseriesOpts struct {
	UseAttrs UseAttrs               // overrides for title and axis labels
	Legend   string                 // legend mode; default "lines"
	Styles   map[string]SeriesStyle // per-entry style overrides, keyed like data
	Width    float64                // inches; 0 takes the style default
	Height   float64
}

const bandAlpha = 0.2

// Timeseries draws annual series against time: plain lines, ensemble
// envelopes with a middle line, or one thin line per realization,
// depending on what each entry's shape says it is. Entries are drawn in
// sorted key order; keys that look like scenario names (ssp245, rcp85)
// pick their conventional color, everything else walks the style cycle.
func Timeseries(data map[string]array.Obj, opts TimeseriesOpts) (*Figure, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("figure: no data to plot")
	}
	legend := opts.Legend
	if legend == "" {
		legend = LegendLines
	}

	st := style.Current()
	fig := newFigure(st, opts.Width, opts.Height)
	p := newPlot(st)

	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)

	cycle := 0
	for _, name := range names {
		obj := data[name]
		cat, err := Categorize(obj)
		if err != nil {
			return nil, err
		}
		col := entryColor(name, st, &cycle)
		if err := drawSeries(p, name, obj, cat, col, opts.Styles[name], legend); err != nil {
			return nil, err
		}
	}

	applyAttrs(p, data[names[0]], defaultLineAttrs().merge(opts.UseAttrs))
	if p.X.Label.Text == "" {
		p.X.Label.Text = locale.Term("time")
	}
	if loc := locationText(firstArray(data[names[0]])); loc != "" {
		p.Add(newAnchoredText(mustLoc("lower right"), loc, vg.Points(st.TickSize)))
	}
	if legend == LegendEdge {
		p.Legend.Top = true
		p.Legend.Left = true
	}

	fig.setPlot(p)
	return fig, nil
}

// entryColor picks a scenario color when the label names one, otherwise
// the next color of the style cycle.
func entryColor(label string, st style.Style, cycle *int) color.Color {
	if c, ok := cmaps.ScenColor(cmaps.ConvertScenName(label)); ok {
		return c
	}
	c := st.Cycle(*cycle)
	*cycle++
	return c
}

// drawSeries adds one data entry to the plot according to its category.
func drawSeries(p *plot.Plot, name string, obj array.Obj, cat Category, col color.Color, ss SeriesStyle, legend string) error {
	switch cat {
	case CatEnsPctVarsDS, CatEnsStatsVarsDS:
		ds := obj.(*array.Dataset)
		middle, upper, lower, err := sortLines(ds.VarNames())
		if err != nil {
			return err
		}
		mid, up, lo := ds.Var(middle), ds.Var(upper), ds.Var(lower)
		xs, err := seriesX(mid)
		if err != nil {
			return err
		}
		if err := addBand(p, xs, up.Values, lo.Values, withAlpha(col, bandAlpha), bandLabel(cat, legend, upper, lower)); err != nil {
			return err
		}
		return addLine(p, xs, mid.Values, col, ss, name, legend)

	case CatEnsPctDimDS:
		ds := obj.(*array.Dataset)
		for i, vn := range ds.VarNames() {
			label := name
			if ds.NumVars() > 1 {
				label = name + " " + vn
			}
			c := col
			if i > 0 {
				c = style.CycleColor(i)
			}
			if err := drawPctDim(p, label, ds.Var(vn), cat, c, ss, legend); err != nil {
				return err
			}
		}
		return nil

	case CatEnsPctDimDA:
		return drawPctDim(p, name, obj.(*array.DataArray), cat, col, ss, legend)

	case CatEnsRealsDS:
		ds := obj.(*array.Dataset)
		if ds.NumVars() > 1 {
			return fmt.Errorf("figure: %s: a realization dataset must hold a single variable, got %d", name, ds.NumVars())
		}
		return drawRealizations(p, name, ds.First(), col, ss, legend)

	case CatEnsRealsDA:
		return drawRealizations(p, name, obj.(*array.DataArray), col, ss, legend)

	case CatDS:
		ds := obj.(*array.Dataset)
		for i, vn := range ds.VarNames() {
			da := ds.Var(vn)
			xs, err := seriesX(da)
			if err != nil {
				return err
			}
			label := name
			if ds.NumVars() > 1 {
				label = name + " " + vn
			}
			c := col
			if i > 0 {
				c = style.CycleColor(i)
			}
			if err := addLine(p, xs, da.Values, c, ss, label, legend); err != nil {
				return err
			}
		}
		return nil

	default: // CatDA
		da := obj.(*array.DataArray)
		xs, err := seriesX(da)
		if err != nil {
			return err
		}
		return addLine(p, xs, da.Values, col, ss, name, legend)
	}
}

// drawPctDim shades between the extreme percentiles of a "percentiles"
// dimension and draws the median one as the line.
func drawPctDim(p *plot.Plot, name string, da *array.DataArray, cat Category, col color.Color, ss SeriesStyle, legend string) error {
	pcts := da.Coord("percentiles")
	if len(pcts) < 3 {
		return fmt.Errorf("figure: %s: need at least three percentiles, got %d", name, len(pcts))
	}
	loI, midI, hiI := pctIndices(pcts)
	lo, err := da.SelIndex("percentiles", loI)
	if err != nil {
		return err
	}
	hi, err := da.SelIndex("percentiles", hiI)
	if err != nil {
		return err
	}
	mid, err := da.SelIndex("percentiles", midI)
	if err != nil {
		return err
	}
	xs, err := seriesX(mid)
	if err != nil {
		return err
	}
	label := bandLabel(cat, legend,
		fmt.Sprintf("_p%d", int(pcts[hiI])),
		fmt.Sprintf("_p%d", int(pcts[loI])))
	if err := addBand(p, xs, hi.Values, lo.Values, withAlpha(col, bandAlpha), label); err != nil {
		return err
	}
	return addLine(p, xs, mid.Values, col, ss, name, legend)
}

// pctIndices picks the extreme percentiles by value and, among the rest,
// the one nearest the median for the central line. The coordinate need
// not be sorted.
func pctIndices(pcts []float64) (lo, mid, hi int) {
	for i, v := range pcts {
		if v < pcts[lo] {
			lo = i
		}
		if v > pcts[hi] {
			hi = i
		}
	}
	mid = -1
	for i, v := range pcts {
		if i == lo || i == hi {
			continue
		}
		if mid < 0 || math.Abs(v-50) < math.Abs(pcts[mid]-50) {
			mid = i
		}
	}
	return lo, mid, hi
}

// drawRealizations draws every member of a "realization" dimension as a
// thin line of the same color; only the first member carries the legend
// entry.
func drawRealizations(p *plot.Plot, name string, da *array.DataArray, col color.Color, ss SeriesStyle, legend string) error {
	n := da.DimLen("realization")
	for i := 0; i < n; i++ {
		member, err := da.SelIndex("realization", i)
		if err != nil {
			return err
		}
		xs, err := seriesX(member)
		if err != nil {
			return err
		}
		label := ""
		if i == 0 {
			label = name
		}
		memberStyle := ss
		if memberStyle.Width == 0 {
			memberStyle.Width = style.Current().LineWidth * 0.6
		}
		if err := addLine(p, xs, member.Values, withAlpha(col, 0.8), memberStyle, label, legend); err != nil {
			return err
		}
	}
	return nil
}

// addLine appends one line, wiring its legend entry per the legend mode.
func addLine(p *plot.Plot, xs, vals []float64, col color.Color, ss SeriesStyle, label, legend string) error {
	line, err := plotter.NewLine(xyPoints(xs, vals))
	if err != nil {
		return err
	}
	st := style.Current()
	line.LineStyle.Color = col
	line.LineStyle.Width = vg.Points(st.LineWidth)
	if !ss.isZero() {
		if c := parseHex(ss.Color); c != nil {
			line.LineStyle.Color = c
		}
		if ss.Width > 0 {
			line.LineStyle.Width = vg.Points(ss.Width)
		}
		line.LineStyle.Dashes = ss.dashes()
	}
	p.Add(line)

	if label == "" || legend == LegendNone {
		return nil
	}
	if legend == LegendInPlot {
		return addEndLabel(p, xs, vals, label, line.LineStyle.Color)
	}
	p.Legend.Add(label, line)
	return nil
}

// addEndLabel writes the label next to the last point of a line, the
// in-plot legend mode.
func addEndLabel(p *plot.Plot, xs, vals []float64, label string, col color.Color) error {
	last := len(xs) - 1
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: xs[last], Y: vals[last]}},
		Labels: []string{" " + label},
	})
	if err != nil {
		return err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = col
		labels.TextStyle[i].Font.Size = vg.Points(style.Current().LegendSize)
	}
	p.Add(labels)
	return nil
}

// addBand fills the region between an upper and a lower series with the
// given color.
func addBand(p *plot.Plot, xs, upper, lower []float64, fill color.Color, label string) error {
	pts := make(plotter.XYs, 0, 2*len(xs))
	for i := range xs {
		pts = append(pts, plotter.XY{X: xs[i], Y: upper[i]})
	}
	for i := len(xs) - 1; i >= 0; i-- {
		pts = append(pts, plotter.XY{X: xs[i], Y: lower[i]})
	}
	poly, err := plotter.NewPolygon(pts)
	if err != nil {
		return err
	}
	poly.Color = fill
	poly.LineStyle.Color = color.Transparent
	poly.LineStyle.Width = 0
	p.Add(poly)
	if label != "" {
		p.Legend.Add(label, poly)
	}
	return nil
}

// seriesX resolves the x values of a 1-D series: decimal years when the
// time axis is decoded, else the coordinate of its only dimension, else
// plain indices.
func seriesX(da *array.DataArray) ([]float64, error) {
	da = da.Squeeze()
	if err := da.RequireDims(1); err != nil {
		return nil, err
	}
	if len(da.Times) == len(da.Values) && len(da.Times) > 0 {
		return da.Years(), nil
	}
	if c := da.Coord(da.Dims[0]); len(c) == len(da.Values) {
		return c, nil
	}
	xs := make([]float64, len(da.Values))
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs, nil
}

func xyPoints(xs, vals []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: vals[i]}
	}
	return pts
}

// firstArray unwraps an Obj to a DataArray, taking the first variable of
// a dataset.
func firstArray(obj array.Obj) *array.DataArray {
	switch v := obj.(type) {
	case *array.DataArray:
		return v
	case *array.Dataset:
		return v.First()
	}
	return nil
}

func mustLoc(name string) Loc {
	l, err := ParseLoc(name)
	if err != nil {
		panic(err)
	}
	return l
}
