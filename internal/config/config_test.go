package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Kind != "auto" {
		t.Errorf("expected kind auto, got %s", cfg.Kind)
	}
	if cfg.Out == "" {
		t.Error("default output path should be set")
	}
	if len(cfg.Style) == 0 {
		t.Error("default style should be set")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.yaml")
	raw := "kind: gridmap\nvar: tas\nlevels: 8\ndivergent: true\n"
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Kind != "gridmap" || cfg.Var != "tas" || cfg.Levels != 8 {
		t.Errorf("loaded config: %+v", cfg)
	}
	if cfg.Legend != DefaultLegend {
		t.Errorf("unset fields should keep defaults, legend = %q", cfg.Legend)
	}
	if !cfg.Divergent {
		t.Error("divergent not loaded")
	}
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.yaml")
	if err := os.WriteFile(path, []byte("kind: piechart\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.yaml")
	cfg := DefaultConfig()
	cfg.Kind = "stripes"
	cfg.Divide = 2015

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind != "stripes" || got.Divide != 2015 {
		t.Errorf("round trip: %+v", got)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("gridmap", "anomaly")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if !cfg.Divergent {
		t.Error("anomaly preset should be divergent")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("gridmap", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "anomaly") != nil {
		t.Error("expected nil for nonexistent kind")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("gridmap")) == 0 {
		t.Error("expected presets for gridmap")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent kind")
	}
}
