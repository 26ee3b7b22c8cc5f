package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Actor.Class != "SkeletalMeshActor" {
		t.Errorf("expected actor class SkeletalMeshActor, got %s", cfg.Actor.Class)
	}
	if cfg.Rig.Preset != "mannequin" {
		t.Errorf("expected mannequin preset, got %s", cfg.Rig.Preset)
	}
	if cfg.Sequence.DisplayRate != 30 {
		t.Errorf("expected display rate 30, got %v", cfg.Sequence.DisplayRate)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animconv.yaml")
	data := "logging:\n  level: debug\nactor:\n  label: Hero\nrig:\n  path: hero.glb\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Logging.Level != "debug" || cfg.Actor.Label != "Hero" || cfg.Rig.Path != "hero.glb" {
		t.Error("values not loaded: ", cfg)
	}
	// unset values keep defaults
	if cfg.Actor.Class != "SkeletalMeshActor" || cfg.Sequence.DisplayRate != 30 {
		t.Error("defaults lost: ", cfg)
	}
}

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.yaml")
	if _, err := Load(path, false); err == nil {
		t.Error("missing file should fail")
	}
	cfg, err := Load(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Actor.Label != "SK_Mannequin" {
		t.Error("expected defaults: ", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string]string{
		"level.yaml":   "logging:\n  level: loud\n",
		"preset.yaml":  "rig:\n  preset: quadruped\n",
		"unknown.yaml": "colour: red\n",
		"actor.yaml":   "actor:\n  label: \"\"\n",
		"rate.yaml":    "sequence:\n  display_rate: -1\n",
	} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path, false); err == nil {
			t.Errorf("%s: should fail", name)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animconv.yaml")
	cfg := Default()
	cfg.Sequence.Name = "Walk"
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if *loaded != *cfg {
		t.Error("round trip mismatch: ", loaded, cfg)
	}
}
