package config

import (
	"math"
	"time"
)

// DifficultyManager calculates the agents' speed from elapsed match time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) after elapsed match time.
func (d *DifficultyManager) Level(elapsed time.Duration) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	if d.cfg.Progression.Type != "time" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(elapsed.Seconds()/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the agent speed for the current difficulty level.
// Without progression the base speed is returned unchanged.
func (d *DifficultyManager) Speed(baseSpeed float64, elapsed time.Duration) float64 {
	if !d.cfg.Enabled {
		return baseSpeed
	}
	level := d.Level(elapsed)
	// Speed increases from base to base * (1 + speedMultiplier)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
