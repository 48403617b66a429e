package cmaps

import (
	"testing"

	"github.com/mbeaupre/climplot/array"
)

func TestVarGroupMatchesName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"tas", "temp"},
		{"tas_p50", "temp"},
		{"tasmax_annual", "temp"},
		{"pr", "prec"},
		{"prcptot_yr", "prec"},
		{"sfcWind", "wind"},
		{"siconc", "cryo"},
		{"sea_level", "slev"},
	}
	for _, c := range cases {
		if got := VarGroup(c.name); got != c.want {
			t.Errorf("VarGroup(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestVarGroupNoWordEmbedding(t *testing.T) {
	// "tas" must not match inside a longer word
	if got := VarGroup("tasty_metric"); got != "misc" {
		t.Errorf("VarGroup(tasty_metric) = %q, want misc", got)
	}
}

func TestVarGroupAmbiguousFallsBack(t *testing.T) {
	// temperature and precipitation keywords together
	if got := VarGroup("tas vs pr comparison"); got != "misc" {
		t.Errorf("ambiguous VarGroup = %q, want misc", got)
	}
}

func TestVarGroupOfUsesHistory(t *testing.T) {
	da := array.MustNew("anomaly", []string{"time"}, []int{2}, []float64{1, 2})
	da.Attrs["history"] = "computed from tasmax using xclim"
	if got := VarGroupOf(da); got != "temp" {
		t.Errorf("VarGroupOf = %q, want temp", got)
	}
}

func TestVarGroupOfDatasetUsesFirstVar(t *testing.T) {
	ds := array.NewDataset()
	ds.AddVar(array.MustNew("pr_p10", []string{"time"}, []int{2}, []float64{1, 2}))
	ds.AddVar(array.MustNew("pr_p90", []string{"time"}, []int{2}, []float64{3, 4}))
	if got := VarGroupOf(ds); got != "prec" {
		t.Errorf("VarGroupOf = %q, want prec", got)
	}
}

func TestVarGroupOfUnknown(t *testing.T) {
	da := array.MustNew("mystery", []string{"time"}, []int{2}, []float64{1, 2})
	if got := VarGroupOf(da); got != "misc" {
		t.Errorf("VarGroupOf = %q, want misc", got)
	}
}
