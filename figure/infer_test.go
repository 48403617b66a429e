package figure

import (
	"testing"

	"github.com/mbeaupre/climplot/array"
)

func seriesDA(name string, dims []string, shape []int) *array.DataArray {
	n := 1
	for _, s := range shape {
		n *= s
	}
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = float64(i)
	}
	return array.MustNew(name, dims, shape, vals)
}

func pctVarsDS() *array.Dataset {
	ds := array.NewDataset()
	for _, name := range []string{"tas_p10", "tas_p50", "tas_p90"} {
		ds.AddVar(seriesDA(name, []string{"time"}, []int{4}))
	}
	return ds
}

func statVarsDS() *array.Dataset {
	ds := array.NewDataset()
	for _, name := range []string{"tas_min", "tas_mean", "tas_max"} {
		ds.AddVar(seriesDA(name, []string{"time"}, []int{4}))
	}
	return ds
}

func TestCategorize(t *testing.T) {
	plainDS := array.NewDataset()
	plainDS.AddVar(seriesDA("tas", []string{"time"}, []int{4}))

	realsDS := array.NewDataset()
	realsDS.AddVar(seriesDA("tas", []string{"realization", "time"}, []int{3, 4}))

	cases := []struct {
		name string
		obj  array.Obj
		want Category
	}{
		{"plain array", seriesDA("tas", []string{"time"}, []int{4}), CatDA},
		{"plain dataset", plainDS, CatDS},
		{"percentile variables", pctVarsDS(), CatEnsPctVarsDS},
		{"stat variables", statVarsDS(), CatEnsStatsVarsDS},
		{"percentile dim array", seriesDA("tas", []string{"percentiles", "time"}, []int{3, 4}), CatEnsPctDimDA},
		{"realization dim array", seriesDA("tas", []string{"realization", "time"}, []int{3, 4}), CatEnsRealsDA},
		{"realization dim dataset", realsDS, CatEnsRealsDS},
	}
	for _, c := range cases {
		got, err := Categorize(c.obj)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", c.name, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestCategorizePercentileDimBeatsRealization(t *testing.T) {
	da := seriesDA("tas", []string{"percentiles", "realization", "time"}, []int{3, 2, 4})
	got, err := Categorize(da)
	if err != nil {
		t.Fatal(err)
	}
	if got != CatEnsPctDimDA {
		t.Errorf("got %v, want %v", got, CatEnsPctDimDA)
	}
}

func TestSuffixOf(t *testing.T) {
	cases := []struct {
		in, want string
		ok       bool
	}{
		{"tas_p50", "50", true},
		{"tas_p5", "5", true},
		{"tas_max", "max", true},
		{"tas_Min", "Min", true},
		{"pr_mean", "mean", true},
		{"tas", "", false},
		{"maximum_tas", "", false},
	}
	for _, c := range cases {
		got, err := suffixOf(c.in)
		if c.ok && err != nil {
			t.Errorf("suffixOf(%q): unexpected error: %v", c.in, err)
			continue
		}
		if !c.ok {
			if err == nil {
				t.Errorf("suffixOf(%q): want error, got %q", c.in, got)
			}
			continue
		}
		if got != c.want {
			t.Errorf("suffixOf(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSortLines(t *testing.T) {
	mid, up, lo, err := sortLines([]string{"tas_p10", "tas_p50", "tas_p90"})
	if err != nil {
		t.Fatal(err)
	}
	if mid != "tas_p50" || up != "tas_p90" || lo != "tas_p10" {
		t.Errorf("got mid=%q up=%q lo=%q", mid, up, lo)
	}

	mid, up, lo, err = sortLines([]string{"tas_max", "tas_min", "tas_mean"})
	if err != nil {
		t.Fatal(err)
	}
	if mid != "tas_mean" || up != "tas_max" || lo != "tas_min" {
		t.Errorf("got mid=%q up=%q lo=%q", mid, up, lo)
	}

	if _, _, _, err := sortLines([]string{"tas_p10", "tas_p90"}); err == nil {
		t.Error("two names: want error")
	}
	if _, _, _, err := sortLines([]string{"tas_p10", "tas_p20", "tas_p30"}); err == nil {
		t.Error("three lower percentiles: want error")
	}
}

func TestBandLabel(t *testing.T) {
	got := bandLabel(CatEnsPctVarsDS, LegendFull, "tas_p90", "tas_p10")
	if got != "10th-90th percentiles" {
		t.Errorf("pct band label = %q", got)
	}
	got = bandLabel(CatEnsStatsVarsDS, LegendFull, "tas_max", "tas_min")
	if got != "min-max range" {
		t.Errorf("stats band label = %q", got)
	}
	if got := bandLabel(CatEnsPctVarsDS, LegendLines, "tas_p90", "tas_p10"); got != "" {
		t.Errorf("lines mode should not label bands, got %q", got)
	}
}
