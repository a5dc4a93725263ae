package config

import (
	_ "embed"
)

//go:embed defaults/teddy.yaml
var defaultTeddyYAML []byte

// DefaultTeddyConfig returns the built-in tuning.
func DefaultTeddyConfig() TeddyConfig {
	return TeddyConfig{
		Physics: Physics{
			Gravity:          0.5,
			JumpImpulse:      -9,
			BaseSpeed:        2.5,
			NarrowSpeed:      2,
			NarrowFieldWidth: 500,
		},
		Avatar: Avatar{
			X:             100,
			Size:          60,
			CollectRadius: 30,
			CollectOffX:   30,
			CollectOffY:   0,
		},
		Obstacles: Obstacles{
			Width:        80,
			TopMargin:    50,
			BottomMargin: 50,
		},
		Balloons: Balloons{
			SpawnDelay:    3000,
			InitialTimer:  2500, // First balloon shows up half a second in
			SpeedFactor:   0.8,
			BaseRadius:    20,
			RadiusPerRune: 2.5,
			Margin:        50,
			FadeRate:      0.05,
			RiseSpeed:     2,
		},
		Difficulty: DifficultyConfig{
			ObstacleDelay: TierTable{
				Tiers:   []Tier{{Below: 3, Value: 3500}, {Below: 8, Value: 3000}},
				Default: 2500,
			},
			GapHeight: TierTable{
				Tiers:   []Tier{{Below: 5, Value: 350}},
				Default: 250,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTeddyYAML
}
