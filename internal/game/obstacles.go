package game

import "github.com/vovakirdan/teddy-balloons/internal/core"

// Obstacle is a cloud pillar with a passable vertical gap.
type Obstacle struct {
	X         float64 // Left edge
	GapStart  float64 // Y where the gap begins
	GapHeight float64 // Height of the passable gap
	Passed    bool    // Avatar is fully past the pillar; no gameplay effect
}

// GapEnd returns the Y where the gap ends.
func (o Obstacle) GapEnd() float64 {
	return o.GapStart + o.GapHeight
}

// Body returns the pillar's full-height horizontal extent.
func (o Obstacle) Body(width, fieldHeight float64) core.Rect {
	return core.NewRect(o.X, 0, width, fieldHeight)
}

// Hits reports whether the avatar box touches the solid part of the pillar.
func (o Obstacle) Hits(avatar core.Rect, width, fieldHeight float64) bool {
	if !avatar.OverlapsX(o.Body(width, fieldHeight)) {
		return false
	}
	return !avatar.WithinY(o.GapStart, o.GapEnd())
}

// updateObstacles runs the obstacle spawn timer, then moves, checks and
// compacts every active pillar in a single pass.
func (g *Game) updateObstacles(dt float64) {
	g.obstacleTimer += dt
	if g.obstacleTimer > g.difficulty.ObstacleDelay(g.score) {
		g.obstacleTimer = 0
		g.spawnObstacle()
	}

	width := g.tuning.Obstacles.Width
	avatar := g.avatar.Rect()
	hit := false

	live := g.obstacles[:0]
	for _, o := range g.obstacles {
		o.X -= g.speed

		if o.Hits(avatar, width, g.height) {
			hit = true
		}
		if !o.Passed && o.X+width < avatar.X {
			o.Passed = true
		}

		if o.X+width > 0 {
			live = append(live, o)
		}
	}
	g.obstacles = live

	if hit {
		g.end(EndObstacle)
	}
}

// spawnObstacle adds a pillar at the right edge with a gap that fits
// between the configured margins.
func (g *Game) spawnObstacle() {
	gap := g.difficulty.GapHeight(g.score)
	top := g.tuning.Obstacles.TopMargin
	span := g.height - gap - top - g.tuning.Obstacles.BottomMargin
	if span < 0 {
		span = 0 // Field too short for the margins; pin the gap to the top margin
	}

	g.obstacles = append(g.obstacles, Obstacle{
		X:         g.width,
		GapStart:  top + g.rng.Float64()*span,
		GapHeight: gap,
	})
}
