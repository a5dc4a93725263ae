package game

import "slices"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Width         float64
	Height        float64
	ObstacleWidth float64

	Avatar    Avatar
	Obstacles []Obstacle
	Balloons  []Balloon

	Score     int
	Collected []string
	Phase     Phase
	Reason    EndReason
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Width:         g.width,
		Height:        g.height,
		ObstacleWidth: g.tuning.Obstacles.Width,
		Avatar:        g.avatar,
		Obstacles:     slices.Clone(g.obstacles),
		Balloons:      slices.Clone(g.balloons),
		Score:         g.score,
		Collected:     slices.Clone(g.collected),
		Phase:         g.phase,
		Reason:        g.reason,
	}
}
