package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config collects the tunable parameters of the demo commands. Values left
// out of the TOML file keep their defaults.
type Config struct {
	Region  RegionConfig  `toml:"region"`
	Collide CollideConfig `toml:"collide"`
	Animate AnimateConfig `toml:"animate"`
}

// RegionConfig is the requested simulation area. The tree normalizes it
// outward to power-of-two square bounds.
type RegionConfig struct {
	XMin float64 `toml:"x_min"`
	YMin float64 `toml:"y_min"`
	XMax float64 `toml:"x_max"`
	YMax float64 `toml:"y_max"`
}

// CollideConfig drives the headless bouncing-ball simulation.
type CollideConfig struct {
	Balls       int     `toml:"balls"`
	Ticks       int     `toml:"ticks"`
	MaxRadius   float64 `toml:"max_radius"`
	Speed       float64 `toml:"speed"`
	ProbeRadius float64 `toml:"probe_radius"`
	Seed        int64   `toml:"seed"`
}

// AnimateConfig drives the mouse-trail animation.
type AnimateConfig struct {
	TrailLength int     `toml:"trail_length"`
	DotRadius   float64 `toml:"dot_radius"`
	ProbeRadius float64 `toml:"probe_radius"`
}

// DefaultConfig returns the built-in demo parameters.
func DefaultConfig() Config {
	return Config{
		Region: RegionConfig{XMin: 0, YMin: 0, XMax: 500, YMax: 500},
		Collide: CollideConfig{
			Balls:       200,
			Ticks:       300,
			MaxRadius:   8,
			Speed:       3,
			ProbeRadius: 40,
			Seed:        1,
		},
		Animate: AnimateConfig{
			TrailLength: 16,
			DotRadius:   1,
			ProbeRadius: 6,
		},
	}
}

// LoadConfig reads a TOML config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Region.XMax <= c.Region.XMin || c.Region.YMax <= c.Region.YMin {
		return fmt.Errorf("region max bounds must exceed min bounds")
	}
	if c.Collide.Balls < 1 {
		return fmt.Errorf("collide.balls must be positive")
	}
	if c.Collide.Ticks < 1 {
		return fmt.Errorf("collide.ticks must be positive")
	}
	if c.Collide.MaxRadius < 1 {
		return fmt.Errorf("collide.max_radius must be at least 1")
	}
	if c.Collide.ProbeRadius <= 0 {
		return fmt.Errorf("collide.probe_radius must be positive")
	}
	w := c.Region.XMax - c.Region.XMin
	h := c.Region.YMax - c.Region.YMin
	if c.Collide.MaxRadius*2 >= w || c.Collide.MaxRadius*2 >= h {
		return fmt.Errorf("collide.max_radius too large for the region")
	}
	if c.Animate.TrailLength < 1 {
		return fmt.Errorf("animate.trail_length must be positive")
	}
	return nil
}
