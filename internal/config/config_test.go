package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Animation.Mode != "associative" {
		t.Errorf("expected mode associative, got %s", cfg.Animation.Mode)
	}
	if cfg.Animation.Particles != 10 {
		t.Errorf("expected 10 particles, got %d", cfg.Animation.Particles)
	}
	if cfg.Animation.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if cfg.Salt.ZA != 1 || cfg.Salt.ZB != 1 {
		t.Errorf("unexpected salt defaults: %+v", cfg.Salt)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tslab.yaml")
	data := []byte("eyring:\n  delta_h: 75\nanimation:\n  mode: dissociative\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Eyring.DeltaH != 75 {
		t.Errorf("delta_h = %v, want 75", cfg.Eyring.DeltaH)
	}
	if cfg.Eyring.DeltaS != DefaultDeltaS {
		t.Errorf("delta_s = %v, want default %v", cfg.Eyring.DeltaS, DefaultDeltaS)
	}
	if cfg.Animation.Mode != "dissociative" {
		t.Errorf("mode = %s, want dissociative", cfg.Animation.Mode)
	}
	if cfg.Animation.Height != DefaultHeight {
		t.Errorf("height = %d, want default %d", cfg.Animation.Height, DefaultHeight)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("salt: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tslab.yaml")
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Salt = SaltConfig{ZA: -2, ZB: 1}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Apply(PlotSalt, "opposite"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg.Salt.ZA != 1 || cfg.Salt.ZB != -1 {
		t.Errorf("salt = %+v, want 1,-1", cfg.Salt)
	}

	if err := cfg.Apply(PlotEyring, "associative"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg.Eyring.DeltaS >= 0 {
		t.Errorf("associative preset should have negative entropy, got %v", cfg.Eyring.DeltaS)
	}
}

func TestApplyPreset_NotFound(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Apply(PlotSalt, "nonexistent")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
	if err := cfg.Apply("arrhenius", "typical"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset for unknown plot, got %v", err)
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets(PlotEyring)
	if len(presets) != 3 {
		t.Errorf("expected 3 eyring presets, got %v", presets)
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}

	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent plot")
	}
}
