package array

import (
	"math"
	"testing"
	"time"
)

func TestNewValidation(t *testing.T) {
	if _, err := New("tas", []string{"time"}, []int{3}, []float64{1, 2, 3}); err != nil {
		t.Fatalf("valid array rejected: %v", err)
	}
	if _, err := New("tas", []string{"time"}, []int{4}, []float64{1, 2, 3}); err == nil {
		t.Error("expected error for shape/values mismatch")
	}
	if _, err := New("tas", []string{"time", "lat"}, []int{3}, []float64{1, 2, 3}); err == nil {
		t.Error("expected error for dims/shape mismatch")
	}
	if _, err := New("tas", []string{"time"}, []int{0}, nil); err == nil {
		t.Error("expected error for zero-size dim")
	}
}

func TestAt(t *testing.T) {
	da := MustNew("tas", []string{"lat", "lon"}, []int{2, 3}, []float64{
		0, 1, 2,
		3, 4, 5,
	})
	if got := da.At(1, 2); got != 5 {
		t.Errorf("At(1,2) = %v, want 5", got)
	}
	if got := da.At(0, 1); got != 1 {
		t.Errorf("At(0,1) = %v, want 1", got)
	}
}

func TestSelIndex(t *testing.T) {
	da := MustNew("tas", []string{"realization", "time"}, []int{2, 3}, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	da.Coords["time"] = []float64{10, 20, 30}

	r1, err := da.SelIndex("realization", 1)
	if err != nil {
		t.Fatalf("SelIndex: %v", err)
	}
	if r1.NDim() != 1 || r1.Dims[0] != "time" {
		t.Fatalf("unexpected dims %v", r1.Dims)
	}
	want := []float64{4, 5, 6}
	for i, v := range r1.Values {
		if v != want[i] {
			t.Errorf("value[%d] = %v, want %v", i, v, want[i])
		}
	}
	if len(r1.Coord("time")) != 3 {
		t.Error("time coord not carried over")
	}

	if _, err := da.SelIndex("lat", 0); err == nil {
		t.Error("expected error for missing dim")
	}
	if _, err := da.SelIndex("time", 9); err == nil {
		t.Error("expected error for out of range index")
	}
}

func TestSelIndexMiddleAxis(t *testing.T) {
	vals := make([]float64, 2*3*4)
	for i := range vals {
		vals[i] = float64(i)
	}
	da := MustNew("pr", []string{"time", "lat", "lon"}, []int{2, 3, 4}, vals)

	sub, err := da.SelIndex("lat", 2)
	if err != nil {
		t.Fatalf("SelIndex: %v", err)
	}
	if sub.Shape[0] != 2 || sub.Shape[1] != 4 {
		t.Fatalf("unexpected shape %v", sub.Shape)
	}
	// element (t=1, lon=3) of lat=2 is offset 1*12 + 2*4 + 3 = 23
	if got := sub.At(1, 3); got != 23 {
		t.Errorf("At(1,3) = %v, want 23", got)
	}
}

func TestSqueeze(t *testing.T) {
	da := MustNew("tas", []string{"realization", "time", "extra"}, []int{1, 3, 1}, []float64{1, 2, 3})
	sq := da.Squeeze()
	if sq.NDim() != 1 || sq.Dims[0] != "time" {
		t.Errorf("squeeze left dims %v", sq.Dims)
	}
}

func TestMinMaxSkipsNaN(t *testing.T) {
	da := MustNew("tas", []string{"time"}, []int{4}, []float64{math.NaN(), -2, 7, math.NaN()})
	lo, hi := da.MinMax()
	if lo != -2 || hi != 7 {
		t.Errorf("MinMax = (%v, %v), want (-2, 7)", lo, hi)
	}
}

func TestDatasetOrderAndAttrs(t *testing.T) {
	ds := NewDataset()
	a := MustNew("tas_min", []string{"time"}, []int{2}, []float64{1, 2})
	a.Attrs["units"] = "K"
	b := MustNew("tas_max", []string{"time"}, []int{2}, []float64{3, 4})
	ds.AddVar(a)
	ds.AddVar(b)
	ds.Attrs["description"] = "ensemble stats"

	names := ds.VarNames()
	if names[0] != "tas_min" || names[1] != "tas_max" {
		t.Errorf("unexpected order %v", names)
	}
	if ds.First().Name != "tas_min" {
		t.Errorf("First = %q", ds.First().Name)
	}

	// first variable's attrs shadow dataset attrs
	if v, ok := ds.Attr("units"); !ok || v != "K" {
		t.Errorf("Attr(units) = %q, %v", v, ok)
	}
	if v, ok := ds.Attr("description"); !ok || v != "ensemble stats" {
		t.Errorf("Attr(description) = %q, %v", v, ok)
	}
}

func TestYears(t *testing.T) {
	da := MustNew("tas", []string{"time"}, []int{2}, []float64{1, 2})
	da.Times = []time.Time{
		time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1951, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	ys := da.Years()
	if ys[0] != 1950 || ys[1] != 1951 {
		t.Errorf("Years = %v", ys)
	}
}
