package game

import "github.com/vovakirdan/teddy-balloons/internal/core"

// Avatar is the teddy bear. X is fixed; Y is the top of its square hitbox.
type Avatar struct {
	X        float64
	Y        float64
	Velocity float64
	Size     float64
}

// Rect returns the avatar's collision box.
func (a Avatar) Rect() core.Rect {
	return core.NewRect(a.X, a.Y, a.Size, a.Size)
}

// stepAvatar integrates gravity and applies the field boundaries.
// The ceiling is soft; crossing the floor ends the run.
func (g *Game) stepAvatar() {
	g.avatar.Velocity += g.tuning.Physics.Gravity
	g.avatar.Y += g.avatar.Velocity

	if g.avatar.Y < 0 {
		g.avatar.Y = 0
		g.avatar.Velocity = 0
	}
	if g.avatar.Y > g.floor() {
		g.end(EndFloor)
	}
}

// floor is the largest avatar Y that is still in play.
func (g *Game) floor() float64 {
	return g.height - g.avatar.Size
}

// collectPoint is the reference point balloons are measured against.
func (g *Game) collectPoint() core.Vec {
	return core.Vec{X: g.avatar.X, Y: g.avatar.Y}.Add(core.Vec{
		X: g.tuning.Avatar.CollectOffX,
		Y: g.tuning.Avatar.CollectOffY,
	})
}
