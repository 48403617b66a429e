package figure

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// coastlines is a very coarse set of continental outlines, lon/lat
// polylines good enough to orient a global or regional field. Segments
// outside the plotted window are clipped by the axes.
var coastlines = [][][2]float64{
	// Americas, Pacific side
	{{-168, 66}, {-160, 59}, {-152, 58}, {-136, 57}, {-129, 50}, {-124, 42},
		{-117, 32}, {-110, 23}, {-97, 16}, {-90, 14}, {-84, 10}, {-81, 8},
		{-79, 1}, {-81, -6}, {-76, -14}, {-70, -20}, {-71, -30}, {-73, -40},
		{-74, -50}, {-71, -54}},
	// Americas, Atlantic side
	{{-71, -54}, {-68, -50}, {-62, -40}, {-58, -34}, {-48, -28}, {-40, -22},
		{-35, -9}, {-44, -3}, {-50, 0}, {-52, 5}, {-61, 9}, {-72, 12},
		{-77, 9}, {-83, 15}, {-90, 19}, {-97, 22}, {-94, 29}, {-84, 30},
		{-81, 25}, {-80, 32}, {-76, 35}, {-74, 40}, {-70, 43}, {-66, 45},
		{-60, 47}, {-55, 52}, {-60, 56}, {-69, 60}, {-77, 65}, {-85, 67}},
	// Greenland
	{{-45, 60}, {-53, 66}, {-55, 72}, {-60, 76}, {-45, 82}, {-25, 83},
		{-20, 76}, {-22, 70}, {-32, 66}, {-40, 62}, {-45, 60}},
	// Europe and west Africa
	{{-9, 36}, {-9, 43}, {-2, 48}, {-5, 50}, {1, 51}, {5, 53}, {8, 57},
		{5, 62}, {13, 68}, {25, 71}, {40, 68}, {30, 60}, {24, 57}, {12, 54}},
	// Africa, west and south
	{{-6, 35}, {-10, 31}, {-17, 21}, {-17, 14}, {-8, 5}, {8, 4}, {9, -2},
		{13, -12}, {12, -18}, {17, -29}, {20, -35}, {27, -33}, {33, -28},
		{40, -15}, {40, -10}},
	// north Africa and Arabia
	{{-6, 35}, {3, 37}, {10, 37}, {20, 32}, {32, 31}, {34, 28}, {43, 12},
		{51, 13}, {59, 22}, {56, 27}, {48, 30}},
	// south Asia
	{{48, 30}, {61, 25}, {67, 24}, {72, 21}, {77, 8}, {80, 13}, {87, 22},
		{91, 22}, {94, 16}, {98, 8}, {103, 1}, {104, 10}, {109, 12},
		{108, 21}, {114, 22}, {121, 31}},
	// east Asia
	{{121, 31}, {122, 37}, {126, 40}, {130, 42}, {135, 45}, {141, 53},
		{156, 51}, {160, 60}, {170, 66}, {180, 65}},
	// Australia
	{{114, -22}, {114, -34}, {118, -35}, {124, -33}, {130, -32}, {138, -35},
		{141, -38}, {147, -38}, {150, -37}, {153, -28}, {146, -19},
		{142, -11}, {136, -12}, {131, -12}, {126, -14}, {122, -18},
		{114, -22}},
	// Antarctica rim
	{{-180, -70}, {-150, -73}, {-120, -73}, {-90, -72}, {-60, -68},
		{-30, -70}, {0, -69}, {30, -68}, {60, -66}, {90, -66}, {120, -66},
		{150, -68}, {180, -70}},
}

// addCoastlines overlays the outline polylines on a lat/lon plot.
func addCoastlines(p *plot.Plot) error {
	grey := color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	for _, seg := range coastlines {
		pts := make(plotter.XYs, len(seg))
		for i, ll := range seg {
			pts[i] = plotter.XY{X: ll[0], Y: ll[1]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Color = grey
		line.LineStyle.Width = vg.Points(0.75)
		p.Add(line)
	}
	return nil
}
