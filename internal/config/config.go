package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full simulation configuration. Defaults reproduce the
// tuning of the prototype demos; a YAML file overlays individual fields.
type Config struct {
	Controller ControllerConfig `yaml:"controller"`
	World      WorldConfig      `yaml:"world"`
	Snapshot   SnapshotConfig   `yaml:"snapshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ControllerConfig tunes the first-person controller. Gravity and
// PitchClamp select between the two controller variants: the legacy
// variant moves the player up instantly on jump and never clamps pitch,
// the physics variant integrates a vertical velocity and clamps.
type ControllerConfig struct {
	Speed       float64 `yaml:"speed"`        // horizontal units/second
	JumpSpeed   float64 `yaml:"jump_speed"`   // initial vertical velocity on jump
	Gravity     float64 `yaml:"gravity"`      // vertical acceleration, negative is down
	Sensitivity float64 `yaml:"sensitivity"`  // mouse look scale
	PitchLimit  float64 `yaml:"pitch_limit"`  // max |pitch| in radians when clamped
	GroundLevel float64 `yaml:"ground_level"` // y of the player's feet when standing

	GravityEnabled bool `yaml:"gravity_enabled"`
	PitchClamp     bool `yaml:"pitch_clamp"`
}

// WorldConfig controls startup world generation and viewer placement.
type WorldConfig struct {
	Generator  string     `yaml:"generator"` // "flat" or "heightmap"
	GroundSize int        `yaml:"ground_size"`
	Seed       int64      `yaml:"seed"`
	MaxHeight  int        `yaml:"max_height"` // heightmap generator only
	Spawn      [3]float64 `yaml:"spawn"`
	SpawnLook  [3]float64 `yaml:"spawn_look"` // point the viewer faces at spawn
}

type SnapshotConfig struct {
	Path string `yaml:"path"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration of the gravity-enabled demo variant.
func Default() *Config {
	return &Config{
		Controller: ControllerConfig{
			Speed:          5.0,
			JumpSpeed:      5.0,
			Gravity:        -9.81,
			Sensitivity:    0.1,
			PitchLimit:     1.54,
			GroundLevel:    1.0,
			GravityEnabled: true,
			PitchClamp:     true,
		},
		World: WorldConfig{
			Generator:  "flat",
			GroundSize: 16,
			Seed:       1,
			MaxHeight:  4,
			Spawn:      [3]float64{8, 5, 8},
			SpawnLook:  [3]float64{8, 0, 7},
		},
		Snapshot: SnapshotConfig{
			Path: "voxelsim.db",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Controller.Speed < 0 {
		return fmt.Errorf("controller.speed must be >= 0, got %v", c.Controller.Speed)
	}
	if c.Controller.PitchClamp && c.Controller.PitchLimit <= 0 {
		return fmt.Errorf("controller.pitch_limit must be > 0 when pitch_clamp is set, got %v", c.Controller.PitchLimit)
	}
	if c.World.GroundSize <= 0 {
		return fmt.Errorf("world.ground_size must be > 0, got %d", c.World.GroundSize)
	}
	switch c.World.Generator {
	case "flat", "heightmap":
	default:
		return fmt.Errorf("world.generator must be \"flat\" or \"heightmap\", got %q", c.World.Generator)
	}
	return nil
}
