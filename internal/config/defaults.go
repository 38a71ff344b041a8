package config

import (
	_ "embed"
)

//go:embed defaults/tron.yaml
var defaultTronYAML []byte

// DefaultTronConfig returns the default light cycle configuration.
func DefaultTronConfig() TronConfig {
	return TronConfig{
		Arena: TronArena{
			Radius: 120,
		},
		Agent: TronAgent{
			Speed:      60,
			Heading:    0,
			MarkerSize: 10,
		},
		Spawns: []TronSpawn{
			{X: -50, Y: 0},
		},
		Input: TronInput{
			Zones: ZonesCoarse,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 90,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}
