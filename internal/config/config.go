// Package config provides YAML/TOML-based game configuration loading
// for the flappy game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// FlappyConfig contains all configuration for the Flappy Bird game.
type FlappyConfig struct {
	Surface FlappySurface `yaml:"surface" toml:"surface"`
	Bird    FlappyBird    `yaml:"bird" toml:"bird"`
	Pipes   FlappyPipes   `yaml:"pipes" toml:"pipes"`
	Rules   FlappyRules   `yaml:"rules" toml:"rules"`
}

// FlappySurface is the size of the playfield in world units.
// Physics runs in these units regardless of the terminal size.
type FlappySurface struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// FlappyBird defines the player entity and its physics.
type FlappyBird struct {
	X            float64 `yaml:"x" toml:"x"`
	Radius       float64 `yaml:"radius" toml:"radius"`
	Gravity      float64 `yaml:"gravity" toml:"gravity"`             // Added to velocity every tick
	JumpStrength float64 `yaml:"jump_strength" toml:"jump_strength"` // Upward velocity set on jump
}

// FlappyPipes defines obstacle geometry and motion.
type FlappyPipes struct {
	Width   float64 `yaml:"width" toml:"width"`
	Gap     float64 `yaml:"gap" toml:"gap"`
	Speed   float64 `yaml:"speed" toml:"speed"`     // Leftward movement per tick
	Spacing float64 `yaml:"spacing" toml:"spacing"` // Distance from the right edge before the next spawn
}

// FlappyRules selects between behavioral variants of the loop.
type FlappyRules struct {
	// StartWithJump makes the first jump on the title screen also flap.
	// When false the first jump only starts the run.
	StartWithJump bool `yaml:"start_with_jump" toml:"start_with_jump"`

	// FreezeOnCollision stops pipe processing at the first colliding pipe,
	// leaving the pipes behind it unmoved for that tick.
	FreezeOnCollision bool `yaml:"freeze_on_collision" toml:"freeze_on_collision"`
}

// Validate checks that the configuration describes a playable field.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Surface.Width <= 0 || c.Surface.Height <= 0:
		return fmt.Errorf("%w: surface must be positive, got %vx%v", ErrInvalidConfig, c.Surface.Width, c.Surface.Height)
	case c.Bird.Radius <= 0:
		return fmt.Errorf("%w: bird radius must be positive, got %v", ErrInvalidConfig, c.Bird.Radius)
	case 2*c.Bird.Radius >= c.Surface.Height:
		return fmt.Errorf("%w: bird diameter %v does not fit surface height %v", ErrInvalidConfig, 2*c.Bird.Radius, c.Surface.Height)
	case c.Bird.X < 0 || c.Bird.X > c.Surface.Width:
		return fmt.Errorf("%w: bird x %v outside surface", ErrInvalidConfig, c.Bird.X)
	case c.Bird.Gravity < 0:
		return fmt.Errorf("%w: gravity must not be negative, got %v", ErrInvalidConfig, c.Bird.Gravity)
	case c.Bird.JumpStrength <= 0:
		return fmt.Errorf("%w: jump strength must be positive, got %v", ErrInvalidConfig, c.Bird.JumpStrength)
	case c.Pipes.Width <= 0:
		return fmt.Errorf("%w: pipe width must be positive, got %v", ErrInvalidConfig, c.Pipes.Width)
	case c.Pipes.Gap <= 0 || c.Pipes.Gap >= c.Surface.Height:
		return fmt.Errorf("%w: pipe gap %v must be within (0, %v)", ErrInvalidConfig, c.Pipes.Gap, c.Surface.Height)
	case c.Pipes.Speed <= 0:
		return fmt.Errorf("%w: pipe speed must be positive, got %v", ErrInvalidConfig, c.Pipes.Speed)
	case c.Pipes.Spacing <= 0:
		return fmt.Errorf("%w: pipe spacing must be positive, got %v", ErrInvalidConfig, c.Pipes.Spacing)
	}
	return nil
}

// ClassicRules returns the rules of the browser version:
// the first jump only starts the run and collisions freeze pipe processing.
func ClassicRules() FlappyRules {
	return FlappyRules{
		StartWithJump:     false,
		FreezeOnCollision: true,
	}
}
