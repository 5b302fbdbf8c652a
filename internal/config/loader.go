package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/critter-catcher/internal/catch"
)

// LoadCatcher loads the catcher configuration.
// Search order: customPath -> ~/.catcher/configs/catcher.yaml -> ./configs/catcher.yaml -> embedded default.
// Files only need the keys they change; everything else keeps its default.
// A categories list, when present, replaces the default list as a whole.
func LoadCatcher(customPath string) (CatcherConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CatcherConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseCatcher(data)
		if err != nil {
			return CatcherConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("catcher.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseCatcher(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "catcher.yaml")); err == nil {
		if cfg, err := parseCatcher(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseCatcher(defaultCatcherYAML)
	if err != nil {
		return DefaultCatcherConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseCatcher(data []byte) (CatcherConfig, error) {
	cfg := DefaultCatcherConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CatcherConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return CatcherConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".catcher", "configs", filename)
}

// ApplyCatcherPreset modifies the config based on a difficulty preset.
// Only the fixed preset touches the exhaustion policy.
func ApplyCatcherPreset(cfg *CatcherConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Level.Exhaustion = string(catch.PolicyHold)
		return
	}
	if v := InitialSpeedForPreset(preset); v > 0 {
		cfg.Speed.Initial = v
	}

	// Slower spawning on easy, faster ramp on hard
	switch preset {
	case DifficultyEasy:
		cfg.Level.SpawnStep = cfg.Level.SpawnStep / 2
	case DifficultyHard:
		cfg.Level.SpawnBase = cfg.Level.SpawnBase * 1.5
	}
}
