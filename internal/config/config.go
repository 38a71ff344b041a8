// Package config provides YAML-based game configuration loading and
// difficulty management for the light cycle arena.
package config

import (
	"errors"
	"fmt"
	"math"
)

// Zone counts supported by the input device.
const (
	ZonesCoarse = 5
	ZonesFine   = 10
)

// TronConfig contains all configuration for a light cycle match.
type TronConfig struct {
	Arena      TronArena        `yaml:"arena"`
	Agent      TronAgent        `yaml:"agent"`
	Spawns     []TronSpawn      `yaml:"spawns"`
	Input      TronInput        `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TronArena defines the playing field.
type TronArena struct {
	Radius float64 `yaml:"radius"` // Agents die beyond this distance from the centre
}

// TronAgent defines the defaults every agent spawns with.
type TronAgent struct {
	Speed      float64 `yaml:"speed"`       // Units per second
	Heading    float64 `yaml:"heading"`     // Degrees, 0 = north, clockwise
	MarkerSize float64 `yaml:"marker_size"` // Side of the head marker square
}

// TronSpawn is a start position. The first spawn is the local player.
type TronSpawn struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// TronInput defines how the directional input is read.
type TronInput struct {
	Zones int `yaml:"zones"` // 5 or 10 directional zones
}

// DifficultyConfig defines the speed ramp applied over a match.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "time" or "none"
	MaxAt int    `yaml:"max_at"` // Seconds after which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to speed at max difficulty
}

// Validate checks that the configuration can build an arena.
func (c TronConfig) Validate() error {
	var errs []error

	r := c.Arena.Radius
	if !(r > 0) || math.IsInf(r, 0) {
		errs = append(errs, fmt.Errorf("arena.radius must be positive and finite, got %v", r))
	}
	if !(c.Agent.Speed >= 0) || math.IsInf(c.Agent.Speed, 0) {
		errs = append(errs, fmt.Errorf("agent.speed must not be negative, got %v", c.Agent.Speed))
	}
	if m := c.Agent.MarkerSize; !(m > 0) || m > 2*r {
		errs = append(errs, fmt.Errorf("agent.marker_size must be in (0, 2*radius], got %v", m))
	}
	if c.Input.Zones != ZonesCoarse && c.Input.Zones != ZonesFine {
		errs = append(errs, fmt.Errorf("input.zones must be %d or %d, got %d", ZonesCoarse, ZonesFine, c.Input.Zones))
	}
	if len(c.Spawns) == 0 {
		errs = append(errs, errors.New("at least one spawn is required"))
	}
	for i, s := range c.Spawns {
		if !(s.X*s.X+s.Y*s.Y <= r*r) {
			errs = append(errs, fmt.Errorf("spawns[%d] (%v, %v) is outside the arena", i, s.X, s.Y))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid tron config: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
