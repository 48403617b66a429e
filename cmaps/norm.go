package cmaps

import (
	"fmt"
	"math"
)

// Norm maps data values onto the [0, 1] ramp of a colormap.
type Norm interface {
	Normalize(v float64) float64
	Min() float64
	Max() float64
}

// NormSpec mirrors the colormap-normalization options of the figure
// functions: a number of discrete levels or explicit level bounds, and an
// optional divergent center.
type NormSpec struct {
	Levels    int
	Bounds    []float64
	Divergent bool
	Center    float64
}

// Make builds the norm for a data range. vmin and vmax are rounded to
// "pretty" values by span (10s, 1s, 0.1s or 0.01s). With a divergent center
// and an integer level count, levels are split evenly on both sides of the
// center. Explicit bounds win over everything else.
func Make(vmin, vmax float64, spec NormSpec) (Norm, error) {
	if len(spec.Bounds) > 0 {
		if len(spec.Bounds) < 2 {
			return nil, fmt.Errorf("cmaps: need at least two level bounds")
		}
		return &BoundaryNorm{bounds: spec.Bounds}, nil
	}

	rmin, rmax := PrettyRange(vmin, vmax)

	if spec.Divergent && spec.Levels > 0 {
		lin, err := CenteredLevels(rmin, rmax, spec.Center, spec.Levels)
		if err != nil {
			return nil, err
		}
		return &BoundaryNorm{bounds: lin}, nil
	}
	if spec.Levels > 0 {
		return &BoundaryNorm{bounds: Linspace(rmin, rmax, spec.Levels+1)}, nil
	}
	if spec.Divergent {
		if spec.Center <= rmin || spec.Center >= rmax {
			// a degenerate center still renders, pin it inside the range
			return &LinearNorm{lo: rmin, hi: rmax}, nil
		}
		return &TwoSlopeNorm{center: spec.Center, lo: rmin, hi: rmax}, nil
	}
	return &LinearNorm{lo: rmin, hi: rmax}, nil
}

// PrettyRange widens (vmin, vmax) to rounded bounds: multiples of 10 for
// spans of 25 and more, integers for spans in [1, 25), tenths in [0.1, 1),
// hundredths below.
func PrettyRange(vmin, vmax float64) (float64, float64) {
	span := vmax - vmin
	var step float64
	switch {
	case span >= 25:
		step = 10
	case span >= 1:
		step = 1
	case span >= 0.1:
		step = 0.1
	default:
		step = 0.01
	}
	return math.Floor(vmin/step) * step, math.Ceil(vmax/step) * step
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo, hi}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return out
}

// CenteredLevels builds level bounds symmetric in count around a center.
// The level count is padded to even, half the bins on each side.
func CenteredLevels(lo, hi, center float64, levels int) ([]float64, error) {
	if center <= lo || center >= hi {
		return nil, fmt.Errorf("cmaps: vmin, center and vmax must be in ascending order (%v, %v, %v)", lo, center, hi)
	}
	var half int
	if levels%2 == 1 {
		half = (levels+1)/2 + 1
	} else {
		half = levels/2 + 1
	}
	left := Linspace(lo, center, half)
	right := Linspace(center, hi, half)
	return append(left, right[1:]...), nil
}

// LinearNorm is a plain linear mapping.
type LinearNorm struct{ lo, hi float64 }

// NewLinear returns a linear norm over [lo, hi].
func NewLinear(lo, hi float64) *LinearNorm { return &LinearNorm{lo: lo, hi: hi} }

func (n *LinearNorm) Min() float64 { return n.lo }
func (n *LinearNorm) Max() float64 { return n.hi }

func (n *LinearNorm) Normalize(v float64) float64 {
	if n.hi == n.lo {
		return 0.5
	}
	return clamp01((v - n.lo) / (n.hi - n.lo))
}

// TwoSlopeNorm maps [lo, center] onto [0, 0.5] and [center, hi] onto
// [0.5, 1], putting the colormap midpoint on the center value.
type TwoSlopeNorm struct{ center, lo, hi float64 }

// NewTwoSlope returns a two-slope norm centered on center.
func NewTwoSlope(center, lo, hi float64) *TwoSlopeNorm {
	return &TwoSlopeNorm{center: center, lo: lo, hi: hi}
}

func (n *TwoSlopeNorm) Min() float64 { return n.lo }
func (n *TwoSlopeNorm) Max() float64 { return n.hi }

func (n *TwoSlopeNorm) Normalize(v float64) float64 {
	switch {
	case v <= n.center:
		if n.center == n.lo {
			return 0.5
		}
		return clamp01((v-n.lo)/(n.center-n.lo)) * 0.5
	default:
		if n.hi == n.center {
			return 0.5
		}
		return 0.5 + clamp01((v-n.center)/(n.hi-n.center))*0.5
	}
}

// BoundaryNorm buckets values into discrete bins; each bin maps to the
// midpoint of its share of the ramp.
type BoundaryNorm struct{ bounds []float64 }

// NewBoundary returns a discrete norm over explicit, ascending bounds.
func NewBoundary(bounds []float64) *BoundaryNorm { return &BoundaryNorm{bounds: bounds} }

// Bounds exposes the level boundaries, e.g. for colorbar ticks.
func (n *BoundaryNorm) Bounds() []float64 { return n.bounds }

func (n *BoundaryNorm) Min() float64 { return n.bounds[0] }
func (n *BoundaryNorm) Max() float64 { return n.bounds[len(n.bounds)-1] }

func (n *BoundaryNorm) Normalize(v float64) float64 {
	nb := len(n.bounds) - 1 // number of bins
	if nb < 1 {
		return 0.5
	}
	bin := nb - 1
	for i := 0; i < nb; i++ {
		if v < n.bounds[i+1] {
			bin = i
			break
		}
	}
	if v < n.bounds[0] {
		bin = 0
	}
	return (float64(bin) + 0.5) / float64(nb)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
