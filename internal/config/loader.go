package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-relative config location.
const LocalConfigPath = "configs/tron.yaml"

// LoadTron loads light cycle configuration.
// Search order: customPath -> ~/.tron/configs/tron.yaml -> ./configs/tron.yaml -> embedded default.
// Files are layered over the defaults, so they only need the keys they change.
func LoadTron(customPath string) (TronConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TronConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseTron(data)
		if err != nil {
			return TronConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("tron.yaml"), LocalConfigPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseTron(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseTron(defaultTronYAML)
	if err != nil {
		return DefaultTronConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseTron decodes YAML over the hardcoded defaults and validates the result.
func parseTron(data []byte) (TronConfig, error) {
	cfg := DefaultTronConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TronConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return TronConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tron", "configs", filename)
}

// ApplyTronPreset modifies the config based on a difficulty preset.
// The empty preset leaves the config untouched.
func ApplyTronPreset(cfg *TronConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
		cfg.Difficulty.Progression.Type = "time"
	}

	// Adjust base speed based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Agent.Speed = 45
	case DifficultyHard:
		cfg.Agent.Speed = 75
	}
}
