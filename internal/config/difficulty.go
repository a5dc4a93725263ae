package config

// Difficulty calculates score-dependent game parameters.
type Difficulty struct {
	cfg DifficultyConfig
}

// NewDifficulty creates a difficulty evaluator.
func NewDifficulty(cfg DifficultyConfig) *Difficulty {
	return &Difficulty{cfg: cfg}
}

// ObstacleDelay returns the milliseconds between obstacle spawns at score.
func (d *Difficulty) ObstacleDelay(score int) float64 {
	return d.cfg.ObstacleDelay.Pick(score)
}

// GapHeight returns the gap height for obstacles spawned at score.
func (d *Difficulty) GapHeight(score int) float64 {
	return d.cfg.GapHeight.Pick(score)
}

// Pick returns the value of the first tier whose bound exceeds score.
// Tiers are evaluated in order; Default applies when none matches.
func (t TierTable) Pick(score int) float64 {
	for _, tier := range t.Tiers {
		if score < tier.Below {
			return tier.Value
		}
	}
	return t.Default
}
