package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.SpawnChance < 0 || cfg.SpawnChance > 100 {
		t.Errorf("default spawn chance %f out of [0,100]", cfg.SpawnChance)
	}
	if cfg.RegionSize != RegionMedium {
		t.Errorf("default region size = %q, want %q", cfg.RegionSize, RegionMedium)
	}
	if cfg.LiquidCavern.Priority == 0 && cfg.FlooredCavern.Priority == 0 {
		t.Error("default config should have at least one cavern type enabled")
	}
	if cfg.LiquidCavern.BottomY >= cfg.LiquidCavern.TopY {
		t.Error("liquid cavern vertical span inverted")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cavegen.yaml")
	data := []byte(`
seed: 777
region_size: large
spawn_chance: 50
liquid_cavern:
  priority: 3
  bottom_y: 1
  top_y: 40
floored_cavern:
  priority: 0
  bottom_y: 1
  top_y: 35
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 777 {
		t.Errorf("seed = %d, want 777", cfg.Seed)
	}
	if cfg.RegionSize != RegionLarge {
		t.Errorf("region size = %q, want %q", cfg.RegionSize, RegionLarge)
	}
	if cfg.SpawnChance != 50 {
		t.Errorf("spawn chance = %f, want 50", cfg.SpawnChance)
	}
	if cfg.LiquidCavern.Priority != 3 || cfg.LiquidCavern.TopY != 40 {
		t.Errorf("liquid cavern = %+v, want priority 3 top 40", cfg.LiquidCavern)
	}
	if cfg.FlooredCavern.Priority != 0 {
		t.Errorf("floored cavern priority = %d, want 0", cfg.FlooredCavern.Priority)
	}
	// Fields absent from the file keep their defaults.
	if !cfg.FloodedUnderground {
		t.Error("flooded underground should default to true")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestMergeFlagPrecedence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42            // set via flag
	cfg.SpawnChance = 90     // set via flag
	cfg.RegionSize = "small" // not set via flag

	fromFile := DefaultConfig()
	fromFile.Seed = 1000
	fromFile.SpawnChance = 10
	fromFile.RegionSize = RegionExtraLarge

	Merge(cfg, fromFile, map[string]bool{"seed": true, "spawn-chance": true})

	if cfg.Seed != 42 {
		t.Errorf("seed = %d, flag value should win", cfg.Seed)
	}
	if cfg.SpawnChance != 90 {
		t.Errorf("spawn chance = %f, flag value should win", cfg.SpawnChance)
	}
	if cfg.RegionSize != RegionExtraLarge {
		t.Errorf("region size = %q, file value should apply", cfg.RegionSize)
	}
}
