package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTeddy loads the game tuning.
// Search order: customPath -> ~/.teddy/configs/teddy.yaml -> ./configs/teddy.yaml -> embedded default
func LoadTeddy(customPath string) (TeddyConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TeddyConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return TeddyConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("teddy.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/teddy.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultTeddyYAML)
	if err != nil {
		return DefaultTeddyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so partial files only
// override what they name, and validates the result.
func Parse(data []byte) (TeddyConfig, error) {
	cfg := DefaultTeddyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TeddyConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return TeddyConfig{}, err
	}
	return cfg, nil
}

// Validate reports tuning values the simulation cannot run with.
func (c TeddyConfig) Validate() error {
	var errs []error
	if c.Avatar.Size <= 0 {
		errs = append(errs, errors.New("avatar.size must be positive"))
	}
	if c.Obstacles.Width <= 0 {
		errs = append(errs, errors.New("obstacles.width must be positive"))
	}
	if c.Balloons.SpawnDelay <= 0 {
		errs = append(errs, errors.New("balloons.spawn_delay must be positive"))
	}
	if c.Balloons.FadeRate <= 0 {
		errs = append(errs, errors.New("balloons.fade_rate must be positive"))
	}
	for name, table := range map[string]TierTable{
		"difficulty.obstacle_delay": c.Difficulty.ObstacleDelay,
		"difficulty.gap_height":     c.Difficulty.GapHeight,
	} {
		prev := -1 << 31
		for _, tier := range table.Tiers {
			if tier.Below <= prev {
				errs = append(errs, fmt.Errorf("%s: tiers must have increasing bounds", name))
				break
			}
			prev = tier.Below
		}
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".teddy", "configs", filename)
}
