package cmaps

import (
	"image/color"
	"testing"
)

func TestConvertScenName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"ssp245", "SSP2-4.5"},
		{"ssp585 warming", "SSP5-8.5 warming"},
		{"rcp45", "RCP4.5"},
		{"tas_rcp85_2100", "tas_RCP8.5_2100"},
		{"cmip5", "CMIP5"},
		{"CMIP6 ensemble", "CMIP6 ensemble"},
		{"no scenario here", "no scenario here"},
	}
	for _, c := range cases {
		if got := ConvertScenName(c.in); got != c.want {
			t.Errorf("ConvertScenName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestScenColor(t *testing.T) {
	c, ok := ScenColor("SSP5-8.5")
	if !ok {
		t.Fatal("SSP5-8.5 should have a color")
	}
	want := color.RGBA{R: 132, G: 11, B: 34, A: 255}
	if c != want {
		t.Errorf("ScenColor = %v, want %v", c, want)
	}

	if _, ok := ScenColor("homemade scenario"); ok {
		t.Error("unexpected color for unknown scenario")
	}
}

func TestScenColorSubstring(t *testing.T) {
	if _, ok := ScenColor("tas RCP4.5 ensemble mean"); !ok {
		t.Error("substring scenario should match")
	}
}

func TestCategoricalColorsCopy(t *testing.T) {
	m := CategoricalColors()
	if len(m) == 0 {
		t.Fatal("empty categorical table")
	}
	if _, ok := m["SSP1-2.6"]; !ok {
		t.Error("SSP1-2.6 missing from table")
	}
}
