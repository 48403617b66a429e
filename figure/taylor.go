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
	"github.com/mbeaupre/climplot/internal/locale"
	"github.com/mbeaupre/climplot/style"
)

// TaylorOpts configures TaylorDiagram.
type TaylorOpts struct {
	Title     string
	Normalize bool // divide all standard deviations by the reference's
	Width     float64
	Height    float64
}

// TaylorDiagram summarizes how simulations compare to a reference series:
// each one becomes a point whose radius is its standard deviation and
// whose angle encodes its correlation with the reference. NaNs are
// dropped pairwise before the statistics.
func TaylorDiagram(ref *array.DataArray, sims map[string]array.Obj, opts TaylorOpts) (*Figure, error) {
	if ref == nil || len(sims) == 0 {
		return nil, fmt.Errorf("figure: taylor diagram needs a reference and simulations")
	}
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)

	refStd := stat.StdDev(dropNaN(ref.Values), nil)
	maxStd := refStd
	type simPoint struct {
		name     string
		std, cor float64
	}
	points := make([]simPoint, 0, len(names))
	for _, name := range names {
		da := firstArray(sims[name])
		if da == nil {
			return nil, fmt.Errorf("figure: %s: no data", name)
		}
		xs, ys := pairwise(ref.Values, da.Values)
		if len(xs) < 2 {
			return nil, fmt.Errorf("figure: %s: not enough overlapping samples with the reference", name)
		}
		sp := simPoint{
			name: name,
			std:  stat.StdDev(ys, nil),
			cor:  stat.Correlation(xs, ys, nil),
		}
		if sp.std > maxStd {
			maxStd = sp.std
		}
		points = append(points, sp)
	}
	stdLabel := locale.Term("standard deviation")
	if opts.Normalize && refStd > 0 {
		for i := range points {
			points[i].std /= refStd
		}
		maxStd /= refStd
		refStd = 1
		stdLabel += " (norm.)"
	}
	rmax := 1.3 * maxStd

	st := style.Current()
	side := math.Min(st.FigWidth, st.FigHeight)
	fig := newFigure(st, orDefault(opts.Width, side), orDefault(opts.Height, side))
	p := newPlot(st)
	p.Title.Text = opts.Title
	p.X.Min, p.X.Max = 0, rmax
	p.Y.Min, p.Y.Max = 0, rmax
	p.X.Label.Text = stdLabel
	p.Y.Label.Text = stdLabel

	if err := drawTaylorFrame(p, refStd, rmax); err != nil {
		return nil, err
	}

	refDot, err := plotter.NewScatter(plotter.XYs{{X: refStd, Y: 0}})
	if err != nil {
		return nil, err
	}
	refDot.GlyphStyle = draw.GlyphStyle{Color: color.Black, Radius: vg.Points(4), Shape: draw.PyramidGlyph{}}
	p.Add(refDot)
	p.Legend.Add(locale.Term("reference"), refDot)

	for i, sp := range points {
		theta := math.Acos(clampCorr(sp.cor))
		dot, err := plotter.NewScatter(plotter.XYs{{
			X: sp.std * math.Cos(theta),
			Y: sp.std * math.Sin(theta),
		}})
		if err != nil {
			return nil, err
		}
		dot.GlyphStyle = draw.GlyphStyle{Color: st.Cycle(i), Radius: vg.Points(4), Shape: draw.CircleGlyph{}}
		p.Add(dot)
		p.Legend.Add(sp.name, dot)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	fig.setPlot(p)
	return fig, nil
}

// drawTaylorFrame adds the polar scaffolding: standard-deviation arcs,
// correlation rays with their values, and the solid arc through the
// reference.
func drawTaylorFrame(p *plot.Plot, refStd, rmax float64) error {
	grey := color.RGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
	dashes := []vg.Length{vg.Points(3), vg.Points(3)}

	step := rmax / 4
	for r := step; r <= rmax+1e-9; r += step {
		arc, err := plotter.NewLine(arcPoints(r, 0, math.Pi/2))
		if err != nil {
			return err
		}
		arc.LineStyle.Color = grey
		arc.LineStyle.Width = vg.Points(0.5)
		arc.LineStyle.Dashes = dashes
		p.Add(arc)
	}

	refArc, err := plotter.NewLine(arcPoints(refStd, 0, math.Pi/2))
	if err != nil {
		return err
	}
	refArc.LineStyle.Color = color.Black
	refArc.LineStyle.Width = vg.Points(0.75)
	p.Add(refArc)

	var rayLabels plotter.XYLabels
	for _, c := range []float64{0.2, 0.4, 0.6, 0.8, 0.9, 0.95, 0.99} {
		theta := math.Acos(c)
		ray, err := plotter.NewLine(plotter.XYs{
			{X: 0, Y: 0},
			{X: rmax * math.Cos(theta), Y: rmax * math.Sin(theta)},
		})
		if err != nil {
			return err
		}
		ray.LineStyle.Color = grey
		ray.LineStyle.Width = vg.Points(0.5)
		ray.LineStyle.Dashes = dashes
		p.Add(ray)
		rayLabels.XYs = append(rayLabels.XYs, plotter.XY{
			X: 1.02 * rmax * math.Cos(theta),
			Y: 1.02 * rmax * math.Sin(theta),
		})
		rayLabels.Labels = append(rayLabels.Labels, fmt.Sprintf("%g", c))
	}
	labels, err := plotter.NewLabels(rayLabels)
	if err != nil {
		return err
	}
	p.Add(labels)

	corrLabel, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: 1.08 * rmax * math.Cos(math.Pi / 4), Y: 1.08 * rmax * math.Sin(math.Pi / 4)}},
		Labels: []string{locale.Term("correlation")},
	})
	if err != nil {
		return err
	}
	p.Add(corrLabel)
	return nil
}

func arcPoints(r, from, to float64) plotter.XYs {
	const n = 50
	pts := make(plotter.XYs, n)
	for i := range pts {
		theta := from + (to-from)*float64(i)/float64(n-1)
		pts[i] = plotter.XY{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
	}
	return pts
}

// pairwise aligns two series by index, dropping pairs with a NaN on
// either side.
func pairwise(a, b []float64) (xs, ys []float64) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		xs = append(xs, a[i])
		ys = append(ys, b[i])
	}
	return xs, ys
}

func clampCorr(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}
