package style

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestListContainsEmbedded(t *testing.T) {
	names := List()
	want := map[string]bool{"climplot": false, "paper": false, "poster": false}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for n, seen := range want {
		if !seen {
			t.Errorf("style %q missing from List()", n)
		}
	}
}

func TestSetOverlay(t *testing.T) {
	defer Reset()

	base := Current()
	if err := Set("poster"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got := Current()
	if got.FontSize != 16 {
		t.Errorf("FontSize = %v, want 16", got.FontSize)
	}
	// poster does not declare a color cycle, the base one must survive
	if len(got.ColorCycle) != len(base.ColorCycle) {
		t.Errorf("color cycle length changed: %d -> %d", len(base.ColorCycle), len(got.ColorCycle))
	}
}

func TestSetUnknownNameKeepsStyle(t *testing.T) {
	defer Reset()
	before := Current()
	if err := Set("nonexistent"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	after := Current()
	if before.FontSize != after.FontSize {
		t.Error("unknown style changed the current style")
	}
}

func TestSetFromFile(t *testing.T) {
	defer Reset()
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("font_size: 33\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Set(path); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := Current().FontSize; got != 33 {
		t.Errorf("FontSize = %v, want 33", got)
	}
}

func TestCycleWraps(t *testing.T) {
	s := Current()
	n := len(s.ColorCycle)
	if n == 0 {
		t.Fatal("empty color cycle")
	}
	if s.Cycle(0) != s.Cycle(n) {
		t.Error("Cycle should wrap around")
	}
}

func TestCycleEmptyFallsBack(t *testing.T) {
	var s Style
	if s.Cycle(3) != color.Black {
		t.Error("empty cycle should fall back to black")
	}
}
