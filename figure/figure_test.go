package figure

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/mbeaupre/climplot/array"
)

func TestParseLoc(t *testing.T) {
	l, err := ParseLoc("upper left")
	if err != nil {
		t.Fatal(err)
	}
	if l.X != 0.05 || l.Y != 0.95 {
		t.Errorf("upper left = (%v, %v)", l.X, l.Y)
	}

	l, err = ParseLoc("10")
	if err != nil {
		t.Fatal(err)
	}
	if l.Name != "center" {
		t.Errorf("code 10 = %q, want center", l.Name)
	}

	if _, err := ParseLoc("11"); err == nil {
		t.Error("code 11: want error")
	}
	if _, err := ParseLoc("middle"); err == nil {
		t.Error("unknown name: want error")
	}
}

func TestCellEdges(t *testing.T) {
	got := cellEdges([]float64{0, 1, 2})
	want := []float64{-0.5, 0.5, 1.5, 2.5}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("edge %d = %v, want %v", i, got[i], want[i])
		}
	}

	single := cellEdges([]float64{5})
	if single[0] != 4.5 || single[1] != 5.5 {
		t.Errorf("single center edges = %v", single)
	}
}

func TestUnitCenters(t *testing.T) {
	got := unitCenters(2)
	want := []float64{-0.5, 0.5, 1.5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestLabelWithUnits(t *testing.T) {
	if got := labelWithUnits("Temperature", "K"); got != "Temperature (K)" {
		t.Errorf("got %q", got)
	}
	if got := labelWithUnits("Fraction", "1"); got != "Fraction" {
		t.Errorf("dimensionless units should be dropped, got %q", got)
	}
	if got := labelWithUnits("", "mm"); got != "(mm)" {
		t.Errorf("got %q", got)
	}
}

func TestInferKind(t *testing.T) {
	grid := seriesDA("tas", []string{"lat", "lon"}, []int{3, 4})

	series := seriesDA("tas", []string{"time"}, []int{5})

	stations := seriesDA("tas", []string{"station"}, []int{4})
	stations.Coords = map[string][]float64{
		"lat": {45, 46, 47, 48},
		"lon": {-73, -72, -71, -70},
	}

	reals := seriesDA("tas", []string{"realization", "time"}, []int{3, 5})

	matrix := seriesDA("score", []string{"model", "metric"}, []int{3, 4})

	cases := []struct {
		name string
		obj  array.Obj
		want string
	}{
		{"lat/lon grid", grid, "gridmap"},
		{"time series", series, "timeseries"},
		{"stations", stations, "scattermap"},
		{"realizations", reals, "timeseries"},
		{"generic matrix", matrix, "heatmap"},
	}
	for _, c := range cases {
		if got := InferKind(c.obj); got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, got, c.want)
		}
	}
}

func TestSeriesX(t *testing.T) {
	da := seriesDA("tas", []string{"time"}, []int{3})
	da.Times = []time.Time{
		time.Date(2000, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2001, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2002, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	xs, err := seriesX(da)
	if err != nil {
		t.Fatal(err)
	}
	if math.Floor(xs[0]) != 2000 || math.Floor(xs[2]) != 2002 {
		t.Errorf("years = %v", xs)
	}

	coords := seriesDA("tas", []string{"x"}, []int{3})
	coords.Coords = map[string][]float64{"x": {10, 20, 30}}
	xs, err = seriesX(coords)
	if err != nil {
		t.Fatal(err)
	}
	if xs[1] != 20 {
		t.Errorf("coord x = %v", xs)
	}

	twoD := seriesDA("tas", []string{"lat", "lon"}, []int{2, 2})
	if _, err := seriesX(twoD); err == nil {
		t.Error("2-D array: want error")
	}
}

func TestPairwise(t *testing.T) {
	nan := math.NaN()
	xs, ys := pairwise([]float64{1, nan, 3, 4}, []float64{10, 20, nan, 40})
	if len(xs) != 2 || xs[0] != 1 || xs[1] != 4 || ys[1] != 40 {
		t.Errorf("pairwise = %v, %v", xs, ys)
	}
}

func TestPctIndices(t *testing.T) {
	cases := []struct {
		name string
		pcts []float64
		lo   int
		mid  int
		hi   int
	}{
		{"sorted", []float64{10, 50, 90}, 0, 1, 2},
		{"unsorted", []float64{10, 90, 50}, 0, 2, 1},
		{"five", []float64{5, 25, 50, 75, 95}, 0, 2, 4},
		{"no exact median", []float64{1, 40, 99}, 0, 1, 2},
	}
	for _, c := range cases {
		lo, mid, hi := pctIndices(c.pcts)
		if lo != c.lo || mid != c.mid || hi != c.hi {
			t.Errorf("%s: pctIndices(%v) = %d,%d,%d, want %d,%d,%d",
				c.name, c.pcts, lo, mid, hi, c.lo, c.mid, c.hi)
		}
	}
}

func TestBandAlpha(t *testing.T) {
	c := withAlpha(color.Black, bandAlpha).(color.NRGBA)
	if c.A != 51 {
		t.Errorf("band alpha byte = %d, want 51", c.A)
	}
}
