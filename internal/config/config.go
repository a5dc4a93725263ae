// Package config provides YAML-based tuning for the teddy game and the
// score-tier difficulty tables that drive spawn cadence and gap size.
package config

// TeddyConfig contains all tuning for the teddy balloon game.
// Distances are field pixels, velocities pixels per tick, times milliseconds.
type TeddyConfig struct {
	Physics    Physics          `yaml:"physics"`
	Avatar     Avatar           `yaml:"avatar"`
	Obstacles  Obstacles        `yaml:"obstacles"`
	Balloons   Balloons         `yaml:"balloons"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Physics defines the forces acting on the avatar and world speed.
type Physics struct {
	Gravity          float64 `yaml:"gravity"`
	JumpImpulse      float64 `yaml:"jump_impulse"`
	BaseSpeed        float64 `yaml:"base_speed"`
	NarrowSpeed      float64 `yaml:"narrow_speed"`       // Speed used on narrow fields
	NarrowFieldWidth float64 `yaml:"narrow_field_width"` // Fields narrower than this use NarrowSpeed
}

// Avatar defines the teddy bear's geometry.
type Avatar struct {
	X             float64 `yaml:"x"`
	Size          float64 `yaml:"size"`
	CollectRadius float64 `yaml:"collect_radius"`
	CollectOffX   float64 `yaml:"collect_offset_x"`
	CollectOffY   float64 `yaml:"collect_offset_y"`
}

// Obstacles defines cloud pillar parameters.
type Obstacles struct {
	Width        float64 `yaml:"width"`
	TopMargin    float64 `yaml:"top_margin"`
	BottomMargin float64 `yaml:"bottom_margin"`
}

// Balloons defines name balloon parameters.
type Balloons struct {
	SpawnDelay    float64 `yaml:"spawn_delay"`
	InitialTimer  float64 `yaml:"initial_timer"`
	SpeedFactor   float64 `yaml:"speed_factor"`
	BaseRadius    float64 `yaml:"base_radius"`
	RadiusPerRune float64 `yaml:"radius_per_rune"`
	Margin        float64 `yaml:"margin"`
	FadeRate      float64 `yaml:"fade_rate"`
	RiseSpeed     float64 `yaml:"rise_speed"`
}

// DifficultyConfig defines score-driven progression.
type DifficultyConfig struct {
	ObstacleDelay TierTable `yaml:"obstacle_delay"`
	GapHeight     TierTable `yaml:"gap_height"`
}

// Tier maps every score strictly below Below to Value.
type Tier struct {
	Below int     `yaml:"below"`
	Value float64 `yaml:"value"`
}

// TierTable is an ordered list of tiers with a fallback for high scores.
type TierTable struct {
	Tiers   []Tier  `yaml:"tiers"`
	Default float64 `yaml:"default"`
}
