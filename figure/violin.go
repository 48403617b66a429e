package figure

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mbeaupre/climplot/array"
	"github.com/mbeaupre/climplot/style"
)

// ViolinOpts configures Violin.
type ViolinOpts struct {
	UseAttrs UseAttrs
	Color    string // fill color; empty walks the style cycle per entry
	Width    float64
	Height   float64
}

const violinHalfWidth = 0.4

// Violin draws the value distribution of each entry as a mirrored kernel
// density shape, with the interquartile range and median marked. Arrays
// are flattened to their samples; NaNs are dropped.
func Violin(data map[string]array.Obj, opts ViolinOpts) (*Figure, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("figure: no data to plot")
	}
	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)

	st := style.Current()
	fig := newFigure(st, opts.Width, opts.Height)
	p := newPlot(st)

	for i, name := range names {
		da := firstArray(data[name])
		if da == nil {
			return nil, fmt.Errorf("figure: %s: no data", name)
		}
		samples := dropNaN(da.Values)
		if len(samples) < 2 {
			return nil, fmt.Errorf("figure: %s: need at least two samples, got %d", name, len(samples))
		}
		col := parseHex(opts.Color)
		if col == nil {
			col = st.Cycle(i)
		}
		if err := addViolin(p, float64(i), samples, col); err != nil {
			return nil, fmt.Errorf("figure: %s: %w", name, err)
		}
	}

	p.NominalX(names...)
	applyAttrs(p, data[names[0]], defaultLineAttrs().merge(opts.UseAttrs))

	fig.setPlot(p)
	return fig, nil
}

// addViolin draws one mirrored density shape centered on x, plus its
// interquartile bar and median dot.
func addViolin(p *plot.Plot, x float64, samples []float64, col color.Color) error {
	sort.Float64s(samples)
	grid, dens := gaussianKDE(samples, 100)

	peak := 0.0
	for _, d := range dens {
		if d > peak {
			peak = d
		}
	}
	if peak == 0 {
		return fmt.Errorf("degenerate distribution")
	}
	scale := violinHalfWidth / peak

	pts := make(plotter.XYs, 0, 2*len(grid))
	for i := range grid {
		pts = append(pts, plotter.XY{X: x + dens[i]*scale, Y: grid[i]})
	}
	for i := len(grid) - 1; i >= 0; i-- {
		pts = append(pts, plotter.XY{X: x - dens[i]*scale, Y: grid[i]})
	}
	poly, err := plotter.NewPolygon(pts)
	if err != nil {
		return err
	}
	poly.Color = withAlpha(col, 0.6)
	poly.LineStyle.Color = col
	poly.LineStyle.Width = vg.Points(1)
	p.Add(poly)

	q1 := stat.Quantile(0.25, stat.Empirical, samples, nil)
	q3 := stat.Quantile(0.75, stat.Empirical, samples, nil)
	med := stat.Quantile(0.5, stat.Empirical, samples, nil)

	box, err := plotter.NewLine(plotter.XYs{{X: x, Y: q1}, {X: x, Y: q3}})
	if err != nil {
		return err
	}
	box.LineStyle.Color = color.Black
	box.LineStyle.Width = vg.Points(3)
	p.Add(box)

	dot, err := plotter.NewScatter(plotter.XYs{{X: x, Y: med}})
	if err != nil {
		return err
	}
	dot.GlyphStyle = draw.GlyphStyle{Color: color.White, Radius: vg.Points(2), Shape: draw.CircleGlyph{}}
	p.Add(dot)
	return nil
}

// gaussianKDE evaluates a gaussian kernel density over n grid points
// spanning the samples plus three bandwidths, Silverman's rule for the
// bandwidth.
func gaussianKDE(sorted []float64, n int) (grid, dens []float64) {
	h := bandwidth(sorted)
	lo := sorted[0] - 3*h
	hi := sorted[len(sorted)-1] + 3*h

	grid = make([]float64, n)
	dens = make([]float64, n)
	const invSqrt2Pi = 1 / 2.5066282746310002
	for i := range grid {
		g := lo + (hi-lo)*float64(i)/float64(n-1)
		grid[i] = g
		sum := 0.0
		for _, s := range sorted {
			u := (g - s) / h
			sum += math.Exp(-0.5*u*u) * invSqrt2Pi
		}
		dens[i] = sum / (float64(len(sorted)) * h)
	}
	return grid, dens
}

// bandwidth is Silverman's rule of thumb on a sorted sample.
func bandwidth(sorted []float64) float64 {
	sigma := stat.StdDev(sorted, nil)
	iqr := stat.Quantile(0.75, stat.Empirical, sorted, nil) - stat.Quantile(0.25, stat.Empirical, sorted, nil)
	spread := sigma
	if s := iqr / 1.34; s > 0 && s < spread {
		spread = s
	}
	if spread == 0 {
		spread = 1
	}
	return 0.9 * spread * math.Pow(float64(len(sorted)), -0.2)
}

func dropNaN(vs []float64) []float64 {
	out := make([]float64, 0, len(vs))
	for _, v := range vs {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
