package game

import (
	"unicode/utf8"

	"github.com/vovakirdan/teddy-balloons/internal/core"
)

// Balloon is a collectible carrying a label.
type Balloon struct {
	X         float64
	Y         float64
	Label     string
	Radius    float64
	Color     core.Color
	Collected bool
	Opacity   float64 // 1 until collected, then fades to 0
}

// Center returns the balloon's center point.
func (b Balloon) Center() core.Vec {
	return core.Vec{X: b.X, Y: b.Y}
}

// BalloonRadius returns the radius for a label: longer names get bigger balloons.
func BalloonRadius(label string, base, perRune float64) float64 {
	return base + perRune*float64(utf8.RuneCountInString(label))
}

// updateBalloons runs the balloon spawn timer, then moves, collects, fades
// and compacts every active balloon in a single pass.
func (g *Game) updateBalloons(dt float64) {
	cfg := g.tuning.Balloons

	g.balloonTimer += dt
	if g.balloonTimer > cfg.SpawnDelay && len(g.labels) > 0 {
		g.balloonTimer = 0
		g.spawnBalloon()
	}

	ref := g.collectPoint()
	speed := g.speed * cfg.SpeedFactor

	live := g.balloons[:0]
	for _, b := range g.balloons {
		if !b.Collected {
			b.X -= speed
			if core.CirclesTouch(ref, g.tuning.Avatar.CollectRadius, b.Center(), b.Radius) {
				b.Collected = true
				g.collected = append(g.collected, b.Label)
				g.score++
			} else if b.X+b.Radius < 0 {
				b.Opacity = 0 // Drifted off the left edge
			}
		} else {
			b.Opacity -= cfg.FadeRate
			b.Y -= cfg.RiseSpeed
		}

		if b.Opacity > 0 {
			live = append(live, b)
		}
	}
	g.balloons = live
}

// spawnBalloon adds a balloon at the right edge. Callers guarantee a
// non-empty label pool.
func (g *Game) spawnBalloon() {
	cfg := g.tuning.Balloons
	label := g.labels[g.rng.Intn(len(g.labels))]
	color := core.BalloonPalette[g.rng.Intn(len(core.BalloonPalette))]

	span := g.height - 2*cfg.Margin
	if span < 0 {
		span = 0
	}

	g.balloons = append(g.balloons, Balloon{
		X:       g.width,
		Y:       cfg.Margin + g.rng.Float64()*span,
		Label:   label,
		Radius:  BalloonRadius(label, cfg.BaseRadius, cfg.RadiusPerRune),
		Color:   color,
		Opacity: 1,
	})
}
