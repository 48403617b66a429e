package cmaps

import (
	"math"
	"testing"
)

func TestPrettyRange(t *testing.T) {
	cases := []struct {
		vmin, vmax float64
		wantLo     float64
		wantHi     float64
	}{
		{-13, 42, -20, 50},   // span >= 25 rounds to 10s
		{0.3, 9.2, 0, 10},    // span in [1, 25) rounds to 1s
		{0.12, 0.49, 0.1, 0.5}, // span in [0.1, 1) rounds to 0.1s
		{0.011, 0.048, 0.01, 0.05},
	}
	for _, c := range cases {
		lo, hi := PrettyRange(c.vmin, c.vmax)
		if math.Abs(lo-c.wantLo) > 1e-9 || math.Abs(hi-c.wantHi) > 1e-9 {
			t.Errorf("PrettyRange(%v, %v) = (%v, %v), want (%v, %v)", c.vmin, c.vmax, lo, hi, c.wantLo, c.wantHi)
		}
	}
}

func TestLinearNorm(t *testing.T) {
	n := NewLinear(0, 10)
	if got := n.Normalize(5); got != 0.5 {
		t.Errorf("Normalize(5) = %v", got)
	}
	if got := n.Normalize(-1); got != 0 {
		t.Errorf("Normalize(-1) = %v, want clamp to 0", got)
	}
	if got := n.Normalize(99); got != 1 {
		t.Errorf("Normalize(99) = %v, want clamp to 1", got)
	}
}

func TestTwoSlopeNorm(t *testing.T) {
	n := NewTwoSlope(0, -10, 30)
	if got := n.Normalize(0); got != 0.5 {
		t.Errorf("center Normalize = %v, want 0.5", got)
	}
	if got := n.Normalize(-10); got != 0 {
		t.Errorf("lo Normalize = %v, want 0", got)
	}
	if got := n.Normalize(30); got != 1 {
		t.Errorf("hi Normalize = %v, want 1", got)
	}
	if got := n.Normalize(15); got != 0.75 {
		t.Errorf("Normalize(15) = %v, want 0.75", got)
	}
}

func TestBoundaryNorm(t *testing.T) {
	n := NewBoundary([]float64{0, 1, 2, 4})
	if got := n.Normalize(0.5); math.Abs(got-1.0/6) > 1e-9 {
		t.Errorf("bin 0 -> %v, want 1/6", got)
	}
	if got := n.Normalize(3); math.Abs(got-5.0/6) > 1e-9 {
		t.Errorf("bin 2 -> %v, want 5/6", got)
	}
	if got := n.Normalize(-5); math.Abs(got-1.0/6) > 1e-9 {
		t.Errorf("below range -> %v, want first bin", got)
	}
	if got := n.Normalize(50); math.Abs(got-5.0/6) > 1e-9 {
		t.Errorf("above range -> %v, want last bin", got)
	}
}

func TestCenteredLevels(t *testing.T) {
	lin, err := CenteredLevels(-10, 30, 0, 4)
	if err != nil {
		t.Fatalf("CenteredLevels: %v", err)
	}
	// 4 levels pad to 3 bounds per side sharing the center
	want := []float64{-10, -5, 0, 15, 30}
	if len(lin) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(lin), len(want), lin)
	}
	for i := range want {
		if math.Abs(lin[i]-want[i]) > 1e-9 {
			t.Errorf("lin[%d] = %v, want %v", i, lin[i], want[i])
		}
	}

	if _, err := CenteredLevels(1, 10, 0, 4); err == nil {
		t.Error("expected error for center outside range")
	}
}

func TestMakeDivergentDefaultsToTwoSlope(t *testing.T) {
	n, err := Make(-5, 20, NormSpec{Divergent: true})
	if err != nil {
		t.Fatalf("Make: %v", err)
	}
	if _, ok := n.(*TwoSlopeNorm); !ok {
		t.Errorf("Make returned %T, want *TwoSlopeNorm", n)
	}
}

func TestMakeWithLevels(t *testing.T) {
	n, err := Make(0, 8, NormSpec{Levels: 4})
	if err != nil {
		t.Fatalf("Make: %v", err)
	}
	bn, ok := n.(*BoundaryNorm)
	if !ok {
		t.Fatalf("Make returned %T, want *BoundaryNorm", n)
	}
	if got := len(bn.Bounds()); got != 5 {
		t.Errorf("bounds len = %d, want 5", got)
	}
}
