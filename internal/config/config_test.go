package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Width != DefaultWidth || cfg.Height != DefaultHeight {
		t.Errorf("dimensions = %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Mode != "life" || cfg.Boundary != "wrap" {
		t.Errorf("mode=%s boundary=%s", cfg.Mode, cfg.Boundary)
	}
	if cfg.MaxHistory != DefaultMaxHistory || cfg.MaxLog != DefaultMaxLog {
		t.Errorf("bounds = %d/%d", cfg.MaxHistory, cfg.MaxLog)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("mode: wireworld\nwidth: 64\nrule: B36/S23\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != "wireworld" || cfg.Width != 64 || cfg.Rule != "B36/S23" {
		t.Errorf("loaded %+v", cfg)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Height != DefaultHeight || cfg.Boundary != DefaultBoundary {
		t.Errorf("defaults lost: height=%d boundary=%s", cfg.Height, cfg.Boundary)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Mode = "generations"
	cfg.States = 6
	cfg.Seed = 42

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Mode != "generations" || got.States != 6 || got.Seed != 42 {
		t.Errorf("round trip = %+v", got)
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("life", "glider")
	if p == nil || p.Pattern != "glider" {
		t.Fatalf("life/glider preset = %+v", p)
	}
	if GetPreset("life", "nope") != nil {
		t.Error("unknown preset should be nil")
	}
	if GetPreset("nope", "glider") != nil {
		t.Error("unknown mode should be nil")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets("life")
	if len(names) == 0 {
		t.Fatal("life should have presets")
	}
	found := false
	for _, n := range names {
		if n == "gun" {
			found = true
		}
	}
	if !found {
		t.Errorf("life presets = %v, want gun among them", names)
	}
	if ListPresets("nope") != nil {
		t.Error("unknown mode should list nil")
	}
}
