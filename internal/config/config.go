// Package config provides configuration loading and shared configuration utilities.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all tunable game parameters.
type Config struct {
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Asteroid   AsteroidConfig   `yaml:"asteroid"`
	Collision  CollisionConfig  `yaml:"collision"`
	Loop       LoopConfig       `yaml:"loop"`
	Terminal   TerminalConfig   `yaml:"terminal"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// Vec2 is a per-axis pair of values.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PlayerConfig holds ship parameters.
type PlayerConfig struct {
	RotationStep float64 `yaml:"rotation_step"`
	Velocity     Vec2    `yaml:"velocity"`
	Displacement float64 `yaml:"displacement"`
	StartFacing  float64 `yaml:"start_facing"`
}

// ProjectileConfig holds shot parameters.
type ProjectileConfig struct {
	Velocity     Vec2    `yaml:"velocity"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	FireInterval float64 `yaml:"fire_interval"`
}

// AsteroidConfig holds spawning and fragmentation parameters.
type AsteroidConfig struct {
	MinPopulation    int     `yaml:"min_population"`
	MaxSides         int     `yaml:"max_sides"`
	FragmentMinSides int     `yaml:"fragment_min_sides"`
	Radius           float64 `yaml:"radius"`
	MaxSpeed         float64 `yaml:"max_speed"`
	FragmentOffset   float64 `yaml:"fragment_offset"`
}

// CollisionConfig holds the half-widths of the square hit boxes.
type CollisionConfig struct {
	ProjectileReach float64 `yaml:"projectile_reach"`
	PlayerReach     float64 `yaml:"player_reach"`
}

// LoopConfig holds frame pacing.
type LoopConfig struct {
	TargetFPS int `yaml:"target_fps"`
}

// TerminalConfig maps terminal cells to logical units.
type TerminalConfig struct {
	UnitsPerColumn float64 `yaml:"units_per_column"`
	UnitsPerRow    float64 `yaml:"units_per_row"`
}

// TelemetryConfig controls the per-frame CSV recorder.
type TelemetryConfig struct {
	Path       string `yaml:"path"`
	FlushEvery int    `yaml:"flush_every"`
}

// Default returns the embedded default configuration.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load reads the embedded defaults and overlays the YAML file at path.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate reports every out-of-range parameter.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Player.RotationStep > 0, "player.rotation_step must be positive, got %v", c.Player.RotationStep)
	check(c.Player.Displacement > 0, "player.displacement must be positive, got %v", c.Player.Displacement)
	check(c.Projectile.Width > 0 && c.Projectile.Height > 0, "projectile size must be positive, got %vx%v", c.Projectile.Width, c.Projectile.Height)
	check(c.Projectile.FireInterval >= 0, "projectile.fire_interval must not be negative, got %v", c.Projectile.FireInterval)
	check(c.Asteroid.MinPopulation >= 0, "asteroid.min_population must not be negative, got %d", c.Asteroid.MinPopulation)
	check(c.Asteroid.MaxSides >= 3, "asteroid.max_sides must be at least 3, got %d", c.Asteroid.MaxSides)
	check(c.Asteroid.FragmentMinSides >= 4, "asteroid.fragment_min_sides must be at least 4, got %d", c.Asteroid.FragmentMinSides)
	check(c.Asteroid.Radius > 0, "asteroid.radius must be positive, got %v", c.Asteroid.Radius)
	check(c.Asteroid.MaxSpeed >= 0, "asteroid.max_speed must not be negative, got %v", c.Asteroid.MaxSpeed)
	check(c.Collision.ProjectileReach > 0, "collision.projectile_reach must be positive, got %v", c.Collision.ProjectileReach)
	check(c.Collision.PlayerReach > 0, "collision.player_reach must be positive, got %v", c.Collision.PlayerReach)
	check(c.Loop.TargetFPS > 0, "loop.target_fps must be positive, got %d", c.Loop.TargetFPS)
	check(c.Terminal.UnitsPerColumn > 0 && c.Terminal.UnitsPerRow > 0, "terminal units must be positive, got %vx%v", c.Terminal.UnitsPerColumn, c.Terminal.UnitsPerRow)
	check(c.Telemetry.FlushEvery > 0, "telemetry.flush_every must be positive, got %d", c.Telemetry.FlushEvery)

	return errors.Join(errs...)
}

// FrameTime returns the target duration of one frame.
func (c *Config) FrameTime() time.Duration {
	return time.Second / time.Duration(c.Loop.TargetFPS)
}
