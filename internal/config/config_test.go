package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width <= 0 || cfg.Height <= 0 {
		t.Error("default dimensions should be positive")
	}
	if cfg.Probability <= 0 || cfg.Probability > 1 {
		t.Errorf("default probability out of range: %f", cfg.Probability)
	}
	if cfg.Seed >= 0 {
		t.Error("default seed should request clock-derived seeding")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("gun")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Pattern != "gosper-gun" {
		t.Errorf("expected gosper-gun pattern, got %s", cfg.Pattern)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] >= presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
}

func TestBuildField_Pattern(t *testing.T) {
	cfg := &Config{Width: 10, Height: 10, Pattern: "glider", Seed: -1}
	f, err := cfg.BuildField()
	if err != nil {
		t.Fatal(err)
	}
	if f.Population() != 5 {
		t.Errorf("glider should seed 5 cells, got %d", f.Population())
	}

	cfg.Pattern = "nonexistent"
	if _, err := cfg.BuildField(); err == nil {
		t.Error("expected error for unknown pattern")
	}
}

func TestBuildField_Random(t *testing.T) {
	cfg := &Config{Width: 16, Height: 16, Probability: 1, Seed: 3}
	f, err := cfg.BuildField()
	if err != nil {
		t.Fatal(err)
	}
	if f.Population() != 16*16 {
		t.Errorf("probability 1 should fill the field, got %d", f.Population())
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")

	want := &Config{
		Width: 24, Height: 12, Pattern: "pulsar", OffsetX: 2, OffsetY: 3,
		Probability: 0.3, Seed: 7, Epochs: 50, IntervalMs: 40,
	}
	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *want {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", got, want)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
