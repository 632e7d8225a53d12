package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Region size presets for the cavern region noise field. Smaller
// frequency produces larger contiguous regions per cavern type.
const (
	RegionSmall      = "small"
	RegionMedium     = "medium"
	RegionLarge      = "large"
	RegionExtraLarge = "extra-large"
	RegionCustom     = "custom"
)

// CavernConfig configures one cavern type.
type CavernConfig struct {
	Priority int `yaml:"priority"` // 0 disables the type
	BottomY  int `yaml:"bottom_y"`
	TopY     int `yaml:"top_y"`
}

// Config holds the generator configuration.
type Config struct {
	Seed        int64 `yaml:"seed"`
	WorldRadius int   `yaml:"world_radius"` // world boundary in tiles (0 = infinite)

	RegionSize         string  `yaml:"region_size"` // small, medium, large, extra-large, custom
	RegionCustomFreq   float64 `yaml:"region_custom_frequency"`
	SpawnChance        float64 `yaml:"spawn_chance"` // percent of the noise domain that carves, 0..100
	LiquidAltitude     int     `yaml:"liquid_altitude"`
	DebugVisualizer    bool    `yaml:"debug_visualizer"`
	OverrideSurface    bool    `yaml:"override_surface_detection"`
	FloodedUnderground bool    `yaml:"enable_flooded_underground"`

	LiquidCavern  CavernConfig `yaml:"liquid_cavern"`
	FlooredCavern CavernConfig `yaml:"floored_cavern"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		RegionSize:         RegionMedium,
		SpawnChance:        25,
		LiquidAltitude:     10,
		FloodedUnderground: true,
		LiquidCavern:       CavernConfig{Priority: 10, BottomY: 1, TopY: 30},
		FlooredCavern:      CavernConfig{Priority: 10, BottomY: 1, TopY: 35},
	}
}

// Load reads a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["world-radius"] {
		cfg.WorldRadius = fromFile.WorldRadius
	}
	if !explicitFlags["region-size"] {
		cfg.RegionSize = fromFile.RegionSize
	}
	if !explicitFlags["region-custom-frequency"] {
		cfg.RegionCustomFreq = fromFile.RegionCustomFreq
	}
	if !explicitFlags["spawn-chance"] {
		cfg.SpawnChance = fromFile.SpawnChance
	}
	if !explicitFlags["liquid-altitude"] {
		cfg.LiquidAltitude = fromFile.LiquidAltitude
	}
	if !explicitFlags["debug-visualizer"] {
		cfg.DebugVisualizer = fromFile.DebugVisualizer
	}
	if !explicitFlags["override-surface"] {
		cfg.OverrideSurface = fromFile.OverrideSurface
	}
	if !explicitFlags["flooded-underground"] {
		cfg.FloodedUnderground = fromFile.FloodedUnderground
	}
	cfg.LiquidCavern = fromFile.LiquidCavern
	cfg.FlooredCavern = fromFile.FlooredCavern
}
