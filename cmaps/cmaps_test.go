package cmaps

import (
	"image/color"
	"testing"
)

func rgba(c color.Color) (r, g, b uint32) {
	r, g, b, _ = c.RGBA()
	return
}

func TestNamedKnownMaps(t *testing.T) {
	for _, name := range []string{"temp_seq", "temp_div", "prec_seq", "misc_seq_3", "misc_div"} {
		if _, err := Named(name); err != nil {
			t.Errorf("Named(%q): %v", name, err)
		}
	}
	if _, err := Named("swamp_seq"); err == nil {
		t.Error("expected error for unknown colormap")
	}
}

func TestNamedStripsTxtSuffix(t *testing.T) {
	cm, err := Named("temp_seq.txt")
	if err != nil {
		t.Fatalf("Named: %v", err)
	}
	if cm.Name() != "temp_seq" {
		t.Errorf("Name = %q", cm.Name())
	}
}

func TestNamedReversal(t *testing.T) {
	fwd, err := Named("temp_seq")
	if err != nil {
		t.Fatalf("Named: %v", err)
	}
	rev, err := Named("temp_seq_r")
	if err != nil {
		t.Fatalf("Named reversed: %v", err)
	}
	if rev.Name() != "temp_seq_r" {
		t.Errorf("Name = %q", rev.Name())
	}

	fr, fg, fb := rgba(fwd.At(0))
	rr, rg, rb := rgba(rev.At(1))
	if fr != rr || fg != rg || fb != rb {
		t.Error("reversed map end does not equal forward map start")
	}
}

func TestNewGroupNaming(t *testing.T) {
	cases := []struct {
		group     string
		divergent bool
		want      string
	}{
		{"temp", false, "temp_seq"},
		{"temp", true, "temp_div"},
		{"misc", false, "misc_seq_3"},
		{"misc2", false, "misc_seq_2"},
		{"misc2", true, "misc_div"},
	}
	for _, c := range cases {
		cm, err := New(c.group, c.divergent)
		if err != nil {
			t.Errorf("New(%q, %v): %v", c.group, c.divergent, err)
			continue
		}
		if cm.Name() != c.want {
			t.Errorf("New(%q, %v) = %q, want %q", c.group, c.divergent, cm.Name(), c.want)
		}
	}
}

func TestColorsSampleCount(t *testing.T) {
	cm, _ := Named("prec_seq")
	if got := len(cm.Colors(11)); got != 11 {
		t.Errorf("Colors(11) len = %d", got)
	}
	if got := len(cm.Colors(1)); got != 1 {
		t.Errorf("Colors(1) len = %d", got)
	}
	if cm.Colors(0) != nil {
		t.Error("Colors(0) should be nil")
	}
}

func TestAtClamps(t *testing.T) {
	cm, _ := Named("temp_div")
	lr, lg, lb := rgba(cm.At(-3))
	zr, zg, zb := rgba(cm.At(0))
	if lr != zr || lg != zg || lb != zb {
		t.Error("At(-3) should clamp to At(0)")
	}
}
