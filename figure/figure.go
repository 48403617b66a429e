package figure

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // logo decoding
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mbeaupre/climplot/style"

	_ "image/jpeg"
)

// Legend modes.
const (
	LegendNone   = "none"
	LegendLines  = "lines"
	LegendFull   = "full"
	LegendEdge   = "edge"
	LegendInPlot = "in_plot"
)

// SeriesStyle overrides the drawing style of one data entry.
type SeriesStyle struct {
	Color string  // hex color; empty keeps the computed color
	Width float64 // line width in points; 0 keeps the style default
	Dash  string  // "solid", "dash" or "dot"
}

func (ss SeriesStyle) isZero() bool { return ss == SeriesStyle{} }

func (ss SeriesStyle) dashes() []vg.Length {
	switch ss.Dash {
	case "dash":
		return []vg.Length{vg.Points(6), vg.Points(2)}
	case "dot":
		return []vg.Length{vg.Points(2), vg.Points(2)}
	default:
		return nil
	}
}

// Figure is a rendered figure: a single plot or a facet grid of plots,
// ready to save.
type Figure struct {
	plots  [][]*plot.Plot
	rows   int
	cols   int
	width  vg.Length
	height vg.Length

	cbar *plot.Plot // optional colorbar drawn in a strip on the right

	logoPath  string
	logoLoc   Loc
	logoScale float64
}

// newFigure sizes a figure from the active style, with optional overrides
// in inches.
func newFigure(st style.Style, wIn, hIn float64) *Figure {
	if wIn <= 0 {
		wIn = st.FigWidth
	}
	if hIn <= 0 {
		hIn = st.FigHeight
	}
	return &Figure{
		rows:   1,
		cols:   1,
		width:  vg.Length(wIn) * vg.Inch,
		height: vg.Length(hIn) * vg.Inch,
	}
}

// singlePlot wraps one plot.
func (f *Figure) setPlot(p *plot.Plot) { f.plots = [][]*plot.Plot{{p}} }

// setGrid installs a facet grid of plots.
func (f *Figure) setGrid(plots [][]*plot.Plot) {
	f.plots = plots
	f.rows = len(plots)
	f.cols = 0
	for _, row := range plots {
		if len(row) > f.cols {
			f.cols = len(row)
		}
	}
	// scale the canvas with the grid
	f.width *= vg.Length(f.cols)
	f.height *= vg.Length(f.rows)
}

// Plot exposes the underlying plot of a single-plot figure (the first
// subplot of a facet grid), for fine-grained adjustments.
func (f *Figure) Plot() *plot.Plot {
	if len(f.plots) == 0 || len(f.plots[0]) == 0 {
		return nil
	}
	return f.plots[0][0]
}

// Subplots returns the facet grid, row-major.
func (f *Figure) Subplots() [][]*plot.Plot { return f.plots }

// StampLogo asks for a logo image to be drawn at an anchor location when
// the figure is saved to PNG (vector outputs skip it). scale is the logo
// height as a fraction of the figure height; 0 means 0.08.
func (f *Figure) StampLogo(path, loc string, scale float64) error {
	l, err := ParseLoc(loc)
	if err != nil {
		return err
	}
	if scale <= 0 {
		scale = 0.08
	}
	f.logoPath = path
	f.logoLoc = l
	f.logoScale = scale
	return nil
}

// Save renders the figure to a file; the format follows the extension
// (.png, .svg or .pdf).
func (f *Figure) Save(path string) error {
	if len(f.plots) == 0 {
		return fmt.Errorf("figure: nothing to save")
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return f.savePNG(path)
	case ".svg":
		return f.saveSVG(path)
	case ".pdf":
		return f.savePDF(path)
	default:
		return fmt.Errorf("figure: unsupported output format %q", filepath.Ext(path))
	}
}

func (f *Figure) drawAll(dc draw.Canvas) {
	if f.cbar != nil {
		w := dc.Max.X - dc.Min.X
		split := w * 85 / 100
		strip := draw.Crop(dc, split, 0, 0, 0)
		f.cbar.Draw(strip)
		dc = draw.Crop(dc, 0, split-w, 0, 0)
	}
	tiles := draw.Tiles{
		Rows: f.rows,
		Cols: f.cols,
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}
	canvases := plot.Align(f.plots, tiles, dc)
	for r := range f.plots {
		for c := range f.plots[r] {
			if f.plots[r][c] != nil {
				f.plots[r][c].Draw(canvases[r][c])
			}
		}
	}
}

func (f *Figure) savePNG(path string) error {
	img := vgimg.New(f.width, f.height)
	f.drawAll(draw.New(img))

	if f.logoPath != "" {
		if err := f.compositeLogo(img); err != nil {
			slog.Warn("logo not stamped", "path", f.logoPath, "err", err)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	pngc := vgimg.PngCanvas{Canvas: img}
	if _, err := pngc.WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("figure: write %s: %w", path, err)
	}
	return out.Close()
}

func (f *Figure) saveSVG(path string) error {
	c := vgsvg.New(f.width, f.height)
	f.drawAll(draw.New(c))
	if f.logoPath != "" {
		slog.Warn("logo stamping is only supported for png output")
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("figure: write %s: %w", path, err)
	}
	return out.Close()
}

func (f *Figure) savePDF(path string) error {
	c := vgpdf.New(f.width, f.height)
	f.drawAll(draw.New(c))
	if f.logoPath != "" {
		slog.Warn("logo stamping is only supported for png output")
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("figure: write %s: %w", path, err)
	}
	return out.Close()
}

// compositeLogo scales the logo and blends it onto the rendered canvas at
// the anchor location.
func (f *Figure) compositeLogo(c *vgimg.Canvas) error {
	lf, err := os.Open(f.logoPath)
	if err != nil {
		return err
	}
	defer lf.Close()
	logo, _, err := image.Decode(lf)
	if err != nil {
		return fmt.Errorf("decode logo: %w", err)
	}

	dst := c.Image()
	bounds := dst.Bounds()

	h := int(f.logoScale * float64(bounds.Dy()))
	if h < 1 {
		h = 1
	}
	w := h * logo.Bounds().Dx() / logo.Bounds().Dy()

	const margin = 10
	x := margin + int(f.logoLoc.X*float64(bounds.Dx()-w-2*margin))
	// image y runs down, axis fraction runs up
	y := margin + int((1-f.logoLoc.Y)*float64(bounds.Dy()-h-2*margin))

	rect := image.Rect(bounds.Min.X+x, bounds.Min.Y+y, bounds.Min.X+x+w, bounds.Min.Y+y+h)
	xdraw.ApproxBiLinear.Scale(dst, rect, logo, logo.Bounds(), xdraw.Over, nil)
	return nil
}

// newPlot builds a plot with the active style applied.
func newPlot(st style.Style) *plot.Plot {
	p := plot.New()
	p.Title.TextStyle.Font.Size = vg.Points(st.TitleSize)
	p.X.Label.TextStyle.Font.Size = vg.Points(st.LabelSize)
	p.Y.Label.TextStyle.Font.Size = vg.Points(st.LabelSize)
	p.X.Tick.Label.Font.Size = vg.Points(st.TickSize)
	p.Y.Tick.Label.Font.Size = vg.Points(st.TickSize)
	p.Legend.TextStyle.Font.Size = vg.Points(st.LegendSize)
	if st.Grid {
		g := plotter.NewGrid()
		g.Vertical.Color = st.GridRGBA()
		g.Horizontal.Color = st.GridRGBA()
		p.Add(g)
	}
	return p
}

// parseHex turns a hex color into a color.Color, nil when empty/bad.
func parseHex(hex string) color.Color {
	if hex == "" {
		return nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		slog.Warn("bad hex color", "color", hex)
		return nil
	}
	return c
}

// withAlpha returns the color with the given opacity.
func withAlpha(c color.Color, alpha float64) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(alpha * 255),
	}
}
