// Package game implements the teddy balloon mini-game simulation.
// A teddy bear falls under gravity, the player activates to flap upward,
// cloud pillars must be threaded and name balloons collected. The package
// holds no rendering or input code; hosts drive it through a Scheduler and
// read it back through Snapshot.
package game

import (
	"fmt"
	"slices"
	"time"

	"github.com/vovakirdan/teddy-balloons/internal/config"
)

// Phase is the run state machine position.
type Phase int

const (
	PhaseIdle    Phase = iota // Waiting for the first activation
	PhaseRunning              // Frames are ticking
	PhaseEnded                // Terminal
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// EndReason records what moved the run to PhaseEnded.
type EndReason int

const (
	EndNone EndReason = iota
	EndFloor
	EndObstacle
	EndDestroyed
)

// String returns a human-readable reason.
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndFloor:
		return "floor"
	case EndObstacle:
		return "obstacle"
	case EndDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// GameOverFunc receives the final score and collected labels in order.
type GameOverFunc func(score int, labels []string)

// Config is everything a host supplies to construct a run.
type Config struct {
	Width      float64  // Field width in pixels, must be positive
	Height     float64  // Field height in pixels, must be positive
	Labels     []string // Balloon label pool, may be empty
	OnGameOver GameOverFunc

	Tuning    *config.TeddyConfig // nil uses config.DefaultTeddyConfig
	Rand      RandSource          // nil uses NewRand(Seed)
	Seed      int64
	Scheduler Scheduler // nil means the host calls Step directly
}

// Result is the frozen outcome of an ended run.
type Result struct {
	Score   int
	Labels  []string
	Reason  EndReason
	Ticks   int
	Elapsed time.Duration
}

// Game is a single run of the teddy balloon game.
type Game struct {
	cfg        Config
	tuning     config.TeddyConfig
	difficulty *config.Difficulty
	rng        RandSource
	sched      Scheduler

	width  float64
	height float64
	speed  float64
	labels []string

	phase     Phase
	reason    EndReason
	avatar    Avatar
	obstacles []Obstacle
	balloons  []Balloon
	score     int
	collected []string

	obstacleTimer float64
	balloonTimer  float64
	ticks         int
	elapsed       float64 // Milliseconds of simulated time

	lastTime time.Duration
	frame    FrameID
	pending  bool
	detached bool
	gen      uint64 // Bumped by Reset so a stale loop stops
}

// New creates a run in PhaseIdle. It panics on a non-positive field size.
func New(cfg Config) *Game {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		panic(fmt.Sprintf("game: invalid field size %vx%v", cfg.Width, cfg.Height))
	}

	tuning := config.DefaultTeddyConfig()
	if cfg.Tuning != nil {
		tuning = *cfg.Tuning
	}
	rng := cfg.Rand
	if rng == nil {
		rng = NewRand(cfg.Seed)
	}

	g := &Game{
		cfg:        cfg,
		tuning:     tuning,
		difficulty: config.NewDifficulty(tuning.Difficulty),
		rng:        rng,
		sched:      cfg.Scheduler,
		width:      cfg.Width,
		height:     cfg.Height,
		labels:     slices.Clone(cfg.Labels),
	}
	g.speed = tuning.Physics.BaseSpeed
	if g.width < tuning.Physics.NarrowFieldWidth {
		g.speed = tuning.Physics.NarrowSpeed
	}
	g.Reset()
	return g
}

// Reset discards the current run and starts a fresh one in PhaseIdle.
// Input is re-attached.
func (g *Game) Reset() {
	g.cancelFrame()
	g.gen++

	size := g.tuning.Avatar.Size
	g.phase = PhaseIdle
	g.reason = EndNone
	g.avatar = Avatar{
		X:    g.tuning.Avatar.X,
		Y:    g.height/2 - size/2,
		Size: size,
	}
	g.obstacles = make([]Obstacle, 0, 8)
	g.balloons = make([]Balloon, 0, 8)
	g.score = 0
	g.collected = nil
	g.obstacleTimer = 0
	g.balloonTimer = g.tuning.Balloons.InitialTimer
	g.ticks = 0
	g.elapsed = 0
	g.lastTime = 0
	g.detached = false
}

// Activate is the single player input: flap. The first activation starts
// the run and its frame loop. It does nothing once the run has ended or
// the game was destroyed.
func (g *Game) Activate() {
	if g.detached {
		return
	}
	switch g.phase {
	case PhaseIdle:
		g.phase = PhaseRunning
		g.avatar.Velocity = g.tuning.Physics.JumpImpulse
		g.start()
	case PhaseRunning:
		g.avatar.Velocity = g.tuning.Physics.JumpImpulse
	}
}

// Step advances the simulation by one frame. dt is the elapsed host time
// in milliseconds and only feeds the spawn timers; forces are applied per
// frame. Step does nothing unless the run is in PhaseRunning.
func (g *Game) Step(dt float64) {
	if g.phase != PhaseRunning {
		return
	}
	gen := g.gen
	g.ticks++
	g.elapsed += dt

	g.stepAvatar()
	if g.phase != PhaseRunning || g.gen != gen {
		return
	}

	g.updateObstacles(dt)
	if g.phase != PhaseRunning || g.gen != gen {
		return
	}

	g.updateBalloons(dt)
}

// Destroy tears the game down: input is detached, any pending frame is
// cancelled and a live run is ended. Safe to call repeatedly.
func (g *Game) Destroy() {
	if g.detached {
		return
	}
	g.detached = true
	g.cancelFrame()
	if g.phase != PhaseEnded {
		g.end(EndDestroyed)
	}
}

// end moves the run to PhaseEnded and reports it. Only the first call wins.
func (g *Game) end(reason EndReason) {
	if g.phase == PhaseEnded {
		return
	}
	g.phase = PhaseEnded
	g.reason = reason
	g.cancelFrame()

	if g.cfg.OnGameOver != nil {
		g.cfg.OnGameOver(g.score, slices.Clone(g.collected))
	}
}

// Phase returns the current state machine position.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the number of balloons collected so far.
func (g *Game) Score() int {
	return g.score
}

// Collected returns a copy of the collected labels in collection order.
func (g *Game) Collected() []string {
	return slices.Clone(g.collected)
}

// Result returns the outcome so far; it is final once the run has ended.
func (g *Game) Result() Result {
	return Result{
		Score:   g.score,
		Labels:  slices.Clone(g.collected),
		Reason:  g.reason,
		Ticks:   g.ticks,
		Elapsed: time.Duration(g.elapsed * float64(time.Millisecond)),
	}
}
