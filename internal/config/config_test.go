package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tron.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseTron(defaultTronYAML)
	if err != nil {
		t.Fatalf("parseTron(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTronConfig()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultTronConfig())
	}
}

func TestLoadTronCustomPath(t *testing.T) {
	path := writeConfig(t, `
input:
  zones: 10
spawns:
  - {x: -50, y: 0}
  - {x: 50, y: 0}
`)

	cfg, err := LoadTron(path)
	if err != nil {
		t.Fatalf("LoadTron() failed: %v", err)
	}

	if cfg.Input.Zones != 10 {
		t.Errorf("Input.Zones = %d, expected 10", cfg.Input.Zones)
	}
	if len(cfg.Spawns) != 2 || cfg.Spawns[1].X != 50 {
		t.Errorf("Spawns = %+v, expected two spawns", cfg.Spawns)
	}
	// Keys missing from the file keep their defaults
	if cfg.Arena.Radius != 120 {
		t.Errorf("Arena.Radius = %v, expected default 120", cfg.Arena.Radius)
	}
	if cfg.Agent.Speed != 60 {
		t.Errorf("Agent.Speed = %v, expected default 60", cfg.Agent.Speed)
	}
}

func TestLoadTronCustomPathErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad yaml", "arena: [", "failed to parse"},
		{"bad zones", "input:\n  zones: 7\n", "input.zones"},
		{"negative speed", "agent:\n  speed: -1\n", "agent.speed"},
		{"spawn outside", "spawns:\n  - {x: 200, y: 0}\n", "outside the arena"},
		{"no spawns", "spawns: []\n", "at least one spawn"},
		{"zero radius", "arena:\n  radius: 0\n", "arena.radius"},
		{"nan radius", "arena:\n  radius: .nan\n", "arena.radius"},
		{"inf radius", "arena:\n  radius: .inf\n", "arena.radius"},
		{"nan speed", "agent:\n  speed: .nan\n", "agent.speed"},
		{"zero marker", "agent:\n  marker_size: 0\n", "agent.marker_size"},
		{"negative marker", "agent:\n  marker_size: -4\n", "agent.marker_size"},
		{"huge marker", "agent:\n  marker_size: 1e9\n", "agent.marker_size"},
		{"nan spawn", "spawns:\n  - {x: .nan, y: 0}\n", "outside the arena"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadTron(writeConfig(t, tc.body))
			if err == nil {
				t.Fatal("LoadTron() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadTronMissingCustomFile(t *testing.T) {
	_, err := LoadTron(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadTron() should fail for a missing custom file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap fs.ErrNotExist, got %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", name, err)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(insane) should fail")
	}
}

func TestApplyTronPreset(t *testing.T) {
	cfg := DefaultTronConfig()
	ApplyTronPreset(&cfg, "")
	if !reflect.DeepEqual(cfg, DefaultTronConfig()) {
		t.Error("empty preset should not change the config")
	}

	cfg = DefaultTronConfig()
	ApplyTronPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled {
		t.Error("hard preset should enable progression")
	}
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("InitialLevel = %v, expected 0.7", cfg.Difficulty.InitialLevel)
	}
	if cfg.Agent.Speed != 75 {
		t.Errorf("Agent.Speed = %v, expected 75", cfg.Agent.Speed)
	}

	cfg = DefaultTronConfig()
	cfg.Difficulty.Enabled = true
	ApplyTronPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestDifficultyManagerDisabled(t *testing.T) {
	dm := NewDifficultyManager(DefaultTronConfig().Difficulty)

	if dm.IsEnabled() {
		t.Error("default difficulty should be disabled")
	}
	for _, elapsed := range []time.Duration{0, time.Minute, time.Hour} {
		if got := dm.Speed(60, elapsed); got != 60 {
			t.Errorf("Speed(60, %v) = %v, expected constant 60", elapsed, got)
		}
	}
}

func TestDifficultyManagerRamp(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	tests := []struct {
		elapsed  time.Duration
		level    float64
		expected float64
	}{
		{0, 0.0, 60},
		{50 * time.Second, 0.5, 90},
		{100 * time.Second, 1.0, 120},
		{500 * time.Second, 1.0, 120}, // capped
	}

	for _, tc := range tests {
		if got := dm.Level(tc.elapsed); got != tc.level {
			t.Errorf("Level(%v) = %v, expected %v", tc.elapsed, got, tc.level)
		}
		if got := dm.Speed(60, tc.elapsed); got != tc.expected {
			t.Errorf("Speed(60, %v) = %v, expected %v", tc.elapsed, got, tc.expected)
		}
	}
}

func TestDifficultyManagerInitialLevel(t *testing.T) {
	tests := []struct {
		initial  float64
		expected float64
	}{
		{0.5, 0.5},
		{-1, 0},  // clamped
		{2.0, 1}, // clamped
	}

	for _, tc := range tests {
		dm := NewDifficultyManager(DifficultyConfig{
			Enabled:      true,
			InitialLevel: tc.initial,
			Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		})
		if got := dm.Level(0); got != tc.expected {
			t.Errorf("Level(0) with InitialLevel %v = %v, expected %v", tc.initial, got, tc.expected)
		}
	}
}
