package figure

import (
	"errors"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mbeaupre/climplot/cmaps"
	"github.com/mbeaupre/climplot/style"
)

// fieldPlotter fills a regular grid of cells, coloring each through a
// norm and colormap. xs and ys are the cell edges, so vals is
// (len(ys)-1) x (len(xs)-1), row-major with row i spanning ys[i]..ys[i+1].
// NaN cells are left blank.
type fieldPlotter struct {
	xs, ys []float64
	vals   [][]float64
	cmap   *cmaps.Colormap
	norm   cmaps.Norm
}

func newFieldPlotter(xs, ys []float64, vals [][]float64, cm *cmaps.Colormap, norm cmaps.Norm) *fieldPlotter {
	return &fieldPlotter{xs: xs, ys: ys, vals: vals, cmap: cm, norm: norm}
}

// Plot implements plot.Plotter.
func (fp *fieldPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, row := range fp.vals {
		for j, v := range row {
			if math.IsNaN(v) {
				continue
			}
			x0 := trX(fp.xs[j])
			x1 := trX(fp.xs[j+1])
			y0 := trY(fp.ys[i])
			y1 := trY(fp.ys[i+1])
			var p vg.Path
			p.Move(vg.Point{X: x0, Y: y0})
			p.Line(vg.Point{X: x1, Y: y0})
			p.Line(vg.Point{X: x1, Y: y1})
			p.Line(vg.Point{X: x0, Y: y1})
			p.Close()
			c.SetColor(fp.cmap.At(fp.norm.Normalize(v)))
			c.Fill(p)
		}
	}
}

// DataRange implements plot.DataRanger.
func (fp *fieldPlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	return fp.xs[0], fp.xs[len(fp.xs)-1], fp.ys[0], fp.ys[len(fp.ys)-1]
}

// cellEdges converts coordinate centers to cell edges, splitting the gap
// between neighbours.
func cellEdges(centers []float64) []float64 {
	n := len(centers)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []float64{centers[0] - 0.5, centers[0] + 0.5}
	}
	edges := make([]float64, n+1)
	edges[0] = centers[0] - (centers[1]-centers[0])/2
	for i := 1; i < n; i++ {
		edges[i] = (centers[i-1] + centers[i]) / 2
	}
	edges[n] = centers[n-1] + (centers[n-1]-centers[n-2])/2
	return edges
}

// indexEdges builds unit cell edges 0..n for label-indexed axes.
func indexEdges(n int) []float64 {
	edges := make([]float64, n+1)
	for i := range edges {
		edges[i] = float64(i)
	}
	return edges
}

// cmapPalette exposes a climplot colormap and norm as a
// palette.ColorMap, for the gonum colorbar plotter.
type cmapPalette struct {
	cm    *cmaps.Colormap
	norm  cmaps.Norm
	alpha float64
}

func newCmapPalette(cm *cmaps.Colormap, norm cmaps.Norm) *cmapPalette {
	return &cmapPalette{cm: cm, norm: norm, alpha: 1}
}

var errColorMapRange = errors.New("value outside colormap range")

func (p *cmapPalette) At(v float64) (color.Color, error) {
	if math.IsNaN(v) {
		return nil, errColorMapRange
	}
	return p.cm.At(p.norm.Normalize(v)), nil
}

func (p *cmapPalette) Min() float64     { return p.norm.Min() }
func (p *cmapPalette) Max() float64     { return p.norm.Max() }
func (p *cmapPalette) SetMin(float64)   {} // range is fixed by the norm
func (p *cmapPalette) SetMax(float64)   {}
func (p *cmapPalette) Alpha() float64   { return p.alpha }
func (p *cmapPalette) SetAlpha(a float64) {
	p.alpha = a
}

func (p *cmapPalette) Palette(n int) palette.Palette {
	cols := make([]color.Color, n)
	span := p.Max() - p.Min()
	for i := range cols {
		v := p.Min() + span*(float64(i)+0.5)/float64(n)
		cols[i] = p.cm.At(p.norm.Normalize(v))
	}
	return colorList(cols)
}

type colorList []color.Color

func (l colorList) Colors() []color.Color { return l }

// colorBarPlot builds the thin side plot holding a vertical colorbar.
func colorBarPlot(cm *cmaps.Colormap, norm cmaps.Norm, label string, st style.Style) *plot.Plot {
	p := plot.New()
	cb := &plotter.ColorBar{ColorMap: newCmapPalette(cm, norm)}
	cb.Vertical = true
	p.Add(cb)
	p.HideX()
	p.Y.Padding = 0
	p.Y.Label.Text = label
	p.Y.Label.TextStyle.Font.Size = vg.Points(st.LabelSize)
	p.Y.Tick.Label.Font.Size = vg.Points(st.TickSize)
	return p
}
