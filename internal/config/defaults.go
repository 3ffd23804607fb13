package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Surface: FlappySurface{
			Width:  400,
			Height: 600,
		},
		Bird: FlappyBird{
			X:            50,
			Radius:       15,
			Gravity:      0.5,
			JumpStrength: 10,
		},
		Pipes: FlappyPipes{
			Width:   40,
			Gap:     100,
			Speed:   3,
			Spacing: 200,
		},
		Rules: FlappyRules{
			StartWithJump:     true,
			FreezeOnCollision: false,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy":
		return defaultFlappyYAML
	default:
		return nil
	}
}
