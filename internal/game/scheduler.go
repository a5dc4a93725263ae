package game

import "time"

// FrameID identifies a pending frame request.
type FrameID uint64

// FrameFunc is invoked by the host once per frame with a monotonic timestamp.
type FrameFunc func(now time.Duration)

// Scheduler is the host's frame-pacing primitive. A host runs at most one
// frame callback at a time and never overlaps them.
type Scheduler interface {
	// Now returns the host's monotonic clock.
	Now() time.Duration
	// RequestFrame schedules fn for the next frame.
	RequestFrame(fn FrameFunc) FrameID
	// CancelFrame drops a pending request. Unknown or fired IDs are ignored.
	CancelFrame(id FrameID)
}

// start begins the frame loop at the current host time.
func (g *Game) start() {
	if g.sched == nil {
		return
	}
	g.lastTime = g.sched.Now()
	g.loop(g.lastTime)
}

// loop is the per-frame callback: measure delta, step, reschedule.
func (g *Game) loop(now time.Duration) {
	g.pending = false
	if g.phase != PhaseRunning || g.detached {
		return
	}

	gen := g.gen
	dt := now - g.lastTime
	g.lastTime = now
	g.Step(float64(dt) / float64(time.Millisecond))

	// OnGameOver may have reset or restarted the run during Step.
	if g.gen == gen && g.phase == PhaseRunning && !g.pending && !g.detached {
		g.frame = g.sched.RequestFrame(g.loop)
		g.pending = true
	}
}

// cancelFrame drops the pending frame request, if any.
func (g *Game) cancelFrame() {
	if g.pending && g.sched != nil {
		g.sched.CancelFrame(g.frame)
	}
	g.pending = false
}
