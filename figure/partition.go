package figure

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/mbeaupre/climplot/array"
	"github.com/mbeaupre/climplot/internal/locale"
	"github.com/mbeaupre/climplot/style"
)

// PartitionOpts configures Partition.
type PartitionOpts struct {
	UseAttrs  UseAttrs
	StartYear float64 // x axis origin; 0 takes the first time step
	Width     float64
	Height    float64
}

// Partition draws the partition of total uncertainty into its sources as
// stacked fractions against lead time. The array carries an "uncertainty"
// dimension naming the sources and a time axis; values are percentages,
// or fractions of one which are scaled up.
func Partition(da *array.DataArray, opts PartitionOpts) (*Figure, error) {
	if da == nil {
		return nil, fmt.Errorf("figure: no data to plot")
	}
	da = da.Squeeze()
	if err := da.RequireDims(2); err != nil {
		return nil, err
	}
	if !da.HasDim("uncertainty") {
		return nil, fmt.Errorf("figure: %s: no uncertainty dimension", da.Name)
	}
	uDim := da.DimIndex("uncertainty")
	tDim := 1 - uDim

	nu := da.Shape[uDim]
	nt := da.Shape[tDim]
	parts := make([][]float64, nu)
	for u := 0; u < nu; u++ {
		parts[u] = make([]float64, nt)
		for t := 0; t < nt; t++ {
			if uDim == 0 {
				parts[u][t] = da.At(u, t)
			} else {
				parts[u][t] = da.At(t, u)
			}
		}
	}

	// fractions of one become percentages; anything else is not a partition
	if units, _ := da.Attr("units"); units != "%" {
		sum := 0.0
		for u := 0; u < nu; u++ {
			sum += parts[u][0]
		}
		if math.Abs(sum-1) >= 0.05 {
			return nil, fmt.Errorf("figure: %s: units are %q, not %% or fractions of one", da.Name, units)
		}
		for u := range parts {
			for t := range parts[u] {
				parts[u][t] *= 100
			}
		}
	}

	tda, err := da.SelIndex("uncertainty", 0)
	if err != nil {
		return nil, err
	}
	xs, err := seriesX(tda)
	if err != nil {
		return nil, err
	}
	start := opts.StartYear
	if start == 0 && len(xs) > 0 {
		start = xs[0]
	}
	lead := make([]float64, len(xs))
	for i, x := range xs {
		lead[i] = x - start
	}

	labels := axisLabels(da, "uncertainty")

	st := style.Current()
	fig := newFigure(st, opts.Width, opts.Height)
	p := newPlot(st)

	lower := make([]float64, nt)
	upper := make([]float64, nt)
	for u := 0; u < nu; u++ {
		// summary components ride on top of the stack as lines
		switch strings.ToLower(labels[u]) {
		case "variability", locale.Term("variability"), "total":
			ss := SeriesStyle{Color: "#000000", Dash: "dash"}
			if err := addLine(p, lead, parts[u], color.Black, ss, labels[u], LegendLines); err != nil {
				return nil, err
			}
			continue
		}
		for t := 0; t < nt; t++ {
			upper[t] = lower[t] + parts[u][t]
		}
		if err := addBand(p, lead, upper, lower, st.Cycle(u), labels[u]); err != nil {
			return nil, err
		}
		copy(lower, upper)
	}

	p.X.Label.Text = fmt.Sprintf("%s %.0f", locale.Term("lead time (years from)"), start)
	p.Y.Label.Text = locale.Term("uncertainty fraction") + " (%)"
	p.Y.Min, p.Y.Max = 0, 100
	applyAttrs(p, da, UseAttrs{"title": "description"}.merge(opts.UseAttrs))

	fig.setPlot(p)
	return fig, nil
}
