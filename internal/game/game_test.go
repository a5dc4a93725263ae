package game

import (
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/teddy-balloons/internal/config"
)

const frame = 16 * time.Millisecond

// manualScheduler runs frame callbacks only when the test advances time.
type manualScheduler struct {
	now     time.Duration
	nextID  FrameID
	pending map[FrameID]FrameFunc
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{pending: make(map[FrameID]FrameFunc)}
}

func (s *manualScheduler) Now() time.Duration { return s.now }

func (s *manualScheduler) RequestFrame(fn FrameFunc) FrameID {
	s.nextID++
	s.pending[s.nextID] = fn
	return s.nextID
}

func (s *manualScheduler) CancelFrame(id FrameID) {
	delete(s.pending, id)
}

// advance moves the clock by d and fires every callback pending at that moment.
func (s *manualScheduler) advance(d time.Duration) {
	s.now += d
	due := s.pending
	s.pending = make(map[FrameID]FrameFunc)
	for _, fn := range due {
		fn(s.now)
	}
}

// fixedRand always draws the same values.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int   { return r.n % n }

// gameOverRecorder counts termination callbacks.
type gameOverRecorder struct {
	calls  int
	score  int
	labels []string
}

func (r *gameOverRecorder) record(score int, labels []string) {
	r.calls++
	r.score = score
	r.labels = labels
}

func weightless() *config.TeddyConfig {
	cfg := config.DefaultTeddyConfig()
	cfg.Physics.Gravity = 0
	return &cfg
}

func TestNewIdle(t *testing.T) {
	g := New(Config{Width: 800, Height: 600})

	if g.Phase() != PhaseIdle {
		t.Errorf("new game should be idle, got %v", g.Phase())
	}
	if g.avatar.Y != 270 {
		t.Errorf("avatar should start at 270, got %v", g.avatar.Y)
	}
	if g.Score() != 0 || len(g.Collected()) != 0 {
		t.Error("new game should have zero score and no labels")
	}
	if g.balloonTimer != 2500 {
		t.Errorf("balloon timer should start at 2500, got %v", g.balloonTimer)
	}

	// Step does nothing before the first activation
	g.Step(1000)
	if g.avatar.Y != 270 || g.ticks != 0 {
		t.Error("Step should not advance an idle game")
	}
}

func TestNewPanicsOnInvalidField(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New should panic on a zero-height field")
		}
	}()
	New(Config{Width: 800, Height: 0})
}

func TestSpeedDependsOnFieldWidth(t *testing.T) {
	if g := New(Config{Width: 400, Height: 600}); g.speed != 2 {
		t.Errorf("narrow field speed = %v, expected 2", g.speed)
	}
	if g := New(Config{Width: 800, Height: 600}); g.speed != 2.5 {
		t.Errorf("wide field speed = %v, expected 2.5", g.speed)
	}
}

func TestActivateStartsLoop(t *testing.T) {
	sched := newManualScheduler()
	g := New(Config{Width: 800, Height: 600, Scheduler: sched})

	g.Activate()

	if g.Phase() != PhaseRunning {
		t.Fatalf("Activate should start the run, got %v", g.Phase())
	}
	// The first frame runs synchronously with a zero delta
	if g.ticks != 1 {
		t.Errorf("first frame should run on activation, ticks = %d", g.ticks)
	}
	if g.avatar.Velocity != -8.5 {
		t.Errorf("velocity after impulse and one gravity step = %v, expected -8.5", g.avatar.Velocity)
	}
	if len(sched.pending) != 1 {
		t.Errorf("exactly one frame should be pending, got %d", len(sched.pending))
	}

	sched.advance(frame)
	if g.ticks != 2 {
		t.Errorf("advancing should run one more frame, ticks = %d", g.ticks)
	}
	if g.obstacleTimer != 16 {
		t.Errorf("obstacle timer should accumulate frame delta, got %v", g.obstacleTimer)
	}
}

func TestActivateWhileRunningResetsVelocity(t *testing.T) {
	g := New(Config{Width: 800, Height: 600})
	g.Activate()
	g.Step(16)
	g.Step(16)

	g.Activate()
	if g.avatar.Velocity != -9 {
		t.Errorf("Activate should set velocity to the impulse, got %v", g.avatar.Velocity)
	}
}

func TestCeilingClamp(t *testing.T) {
	g := New(Config{Width: 800, Height: 600})
	g.phase = PhaseRunning
	g.avatar.Y = 3
	g.avatar.Velocity = -9

	g.Step(16)

	if g.avatar.Y != 0 {
		t.Errorf("avatar should clamp to the ceiling, got %v", g.avatar.Y)
	}
	if g.avatar.Velocity != 0 {
		t.Errorf("velocity should reset at the ceiling, got %v", g.avatar.Velocity)
	}
	if g.Phase() != PhaseRunning {
		t.Error("touching the ceiling must not end the run")
	}
}

// No input ever fires: the bear falls from 270 and ends once past 540.
func TestFallToFloorScenario(t *testing.T) {
	rec := &gameOverRecorder{}
	g := New(Config{Width: 800, Height: 600, OnGameOver: rec.record})
	g.phase = PhaseRunning

	ticks := 0
	for g.Phase() == PhaseRunning && ticks < 1000 {
		if g.avatar.Y > 540 {
			t.Fatalf("avatar passed the floor without ending, y = %v", g.avatar.Y)
		}
		g.Step(16)
		ticks++
	}

	if g.Phase() != PhaseEnded {
		t.Fatal("run should end on the floor")
	}
	if ticks != 33 {
		t.Errorf("run should end on tick 33, ended on %d", ticks)
	}
	if g.avatar.Y <= 540 {
		t.Errorf("run ended before crossing the floor, y = %v", g.avatar.Y)
	}
	if g.Result().Reason != EndFloor {
		t.Errorf("reason = %v, expected floor", g.Result().Reason)
	}
	if rec.calls != 1 || rec.score != 0 || len(rec.labels) != 0 {
		t.Errorf("callback = %d calls, score %d, labels %v", rec.calls, rec.score, rec.labels)
	}
}

// One balloon labeled "Eli" spawns, drifts into the bear and is collected.
func TestCollectBalloonScenario(t *testing.T) {
	rec := &gameOverRecorder{}
	g := New(Config{
		Width:      800,
		Height:     600,
		Labels:     []string{"Eli"},
		OnGameOver: rec.record,
		Tuning:     weightless(),
		Rand:       fixedRand{f: 0.5, n: 0}, // balloon Y = 50 + 0.5*500 = 300
	})
	g.phase = PhaseRunning

	g.Step(600) // balloon timer 2500 + 600 > 3000
	if len(g.balloons) != 1 {
		t.Fatalf("one balloon should spawn, got %d", len(g.balloons))
	}
	b := g.balloons[0]
	if b.Label != "Eli" || b.Radius != 27.5 || b.Y != 300 {
		t.Errorf("unexpected balloon %+v", b)
	}

	for i := 0; i < 1000 && g.Score() == 0; i++ {
		g.Step(0)
	}

	if g.Score() != 1 {
		t.Fatalf("balloon should be collected, score = %d", g.Score())
	}
	if !slices.Equal(g.Collected(), []string{"Eli"}) {
		t.Errorf("collected = %v, expected [Eli]", g.Collected())
	}
	if !g.balloons[0].Collected {
		t.Error("balloon should be flagged collected")
	}

	g.Destroy()
	if rec.calls != 1 || rec.score != 1 || !slices.Equal(rec.labels, []string{"Eli"}) {
		t.Errorf("callback = %d calls, score %d, labels %v", rec.calls, rec.score, rec.labels)
	}
}

func TestCollectedBalloonFadesOnce(t *testing.T) {
	g := New(Config{Width: 800, Height: 600, Labels: []string{"Mateo"}, Tuning: weightless()})
	g.phase = PhaseRunning
	g.balloonTimer = 0

	ref := g.collectPoint()
	g.balloons = append(g.balloons, Balloon{X: ref.X + 2, Y: ref.Y, Label: "Mateo", Radius: 32.5, Opacity: 1})

	g.Step(0)
	if g.Score() != 1 {
		t.Fatalf("balloon on the bear should be collected, score = %d", g.Score())
	}

	startY := g.balloons[0].Y
	for i := 0; i < 30 && len(g.balloons) > 0; i++ {
		g.Step(0)
		if g.Score() != 1 {
			t.Fatalf("a balloon must be collected only once, score = %d", g.Score())
		}
		if len(g.balloons) > 0 && g.balloons[0].Y >= startY {
			t.Fatal("collected balloon should rise")
		}
	}
	if len(g.balloons) != 0 {
		t.Error("faded balloon should be removed")
	}
}

func TestUncollectedBalloonLeavesField(t *testing.T) {
	g := New(Config{Width: 800, Height: 600, Tuning: weightless()})
	g.phase = PhaseRunning
	g.balloons = append(g.balloons, Balloon{X: 5, Y: 580, Label: "Jack", Radius: 30, Opacity: 1})

	for i := 0; i < 30; i++ {
		if len(g.balloons) == 1 && g.balloons[0].Opacity != 1 {
			t.Fatal("uncollected balloon should stay opaque while on the field")
		}
		g.Step(0)
	}
	if len(g.balloons) != 0 {
		t.Error("balloon past the left edge should be removed")
	}
	if g.Score() != 0 {
		t.Error("missed balloon must not score")
	}
}

func TestEmptyLabelPoolSuppressesBalloons(t *testing.T) {
	g := New(Config{Width: 800, Height: 600, Tuning: weightless()})
	g.phase = PhaseRunning

	for i := 0; i < 100; i++ {
		g.Step(500)
		if len(g.balloons) != 0 {
			t.Fatal("no balloons should spawn with an empty pool")
		}
		g.obstacles = g.obstacles[:0]
	}
}

func TestObstacleCadenceByScore(t *testing.T) {
	g := New(Config{Width: 800, Height: 600, Tuning: weightless()})
	g.phase = PhaseRunning
	g.score = 2

	g.Step(3400)
	g.Step(100)
	if len(g.obstacles) != 0 {
		t.Fatalf("no obstacle before 3500ms has passed, got %d", len(g.obstacles))
	}
	g.Step(1)
	if len(g.obstacles) != 1 {
		t.Fatalf("obstacle should spawn once 3500ms is exceeded, got %d", len(g.obstacles))
	}
	if g.obstacles[0].GapHeight != 350 {
		t.Errorf("gap at score 2 = %v, expected 350", g.obstacles[0].GapHeight)
	}
	if g.obstacleTimer != 0 {
		t.Errorf("spawn should reset the timer, got %v", g.obstacleTimer)
	}

	g.score = 5
	g.obstacles = g.obstacles[:0]
	g.Step(3001)
	if len(g.obstacles) != 1 {
		t.Fatalf("at score 5 the delay is 3000ms, got %d obstacles", len(g.obstacles))
	}
	if g.obstacles[0].GapHeight != 250 {
		t.Errorf("gap at score 5 = %v, expected 250", g.obstacles[0].GapHeight)
	}

	g.score = 8
	g.obstacles = g.obstacles[:0]
	g.Step(2501)
	if len(g.obstacles) != 1 {
		t.Errorf("at score 8 the delay is 2500ms, got %d obstacles", len(g.obstacles))
	}
}

func TestObstacleGapWithinMargins(t *testing.T) {
	for _, f := range []float64{0, 0.25, 0.5, 0.999999} {
		for _, score := range []int{0, 5} {
			g := New(Config{Width: 800, Height: 600, Rand: fixedRand{f: f}})
			g.score = score
			g.spawnObstacle()
			o := g.obstacles[0]
			if o.GapStart < 50 || o.GapEnd() > 550 {
				t.Errorf("f=%v score=%d: gap [%v, %v] outside margins", f, score, o.GapStart, o.GapEnd())
			}
			if o.X != 800 {
				t.Errorf("obstacle should spawn at the right edge, X = %v", o.X)
			}
		}
	}
}

// Bear fully overlaps a pillar horizontally while below its gap.
func TestObstacleCollisionScenario(t *testing.T) {
	rec := &gameOverRecorder{}
	g := New(Config{Width: 800, Height: 600, OnGameOver: rec.record, Tuning: weightless()})
	g.phase = PhaseRunning
	g.score = 7
	g.collected = []string{"a", "b", "c", "d", "e", "f", "g"}
	g.obstacles = append(g.obstacles, Obstacle{X: 92.5, GapStart: 50, GapHeight: 150})

	g.Step(16)

	if g.Phase() != PhaseEnded {
		t.Fatal("run should end on the tick the bear hits the pillar")
	}
	if g.Result().Reason != EndObstacle {
		t.Errorf("reason = %v, expected obstacle", g.Result().Reason)
	}
	if rec.calls != 1 || rec.score != 7 || len(rec.labels) != 7 {
		t.Errorf("callback = %d calls, score %d, %d labels", rec.calls, rec.score, len(rec.labels))
	}
}

func TestObstacleGapLetsBearThrough(t *testing.T) {
	g := New(Config{Width: 800, Height: 600, Tuning: weightless()})
	g.phase = PhaseRunning
	g.obstacles = append(g.obstacles, Obstacle{X: 92.5, GapStart: 200, GapHeight: 250})

	for i := 0; i < 40; i++ {
		g.Step(0)
	}

	if g.Phase() != PhaseRunning {
		t.Fatal("bear inside the gap should pass")
	}
	if len(g.obstacles) != 1 || !g.obstacles[0].Passed {
		t.Error("pillar should be flagged passed")
	}
	if g.Score() != 0 {
		t.Error("passing a pillar must not score")
	}

	for i := 0; i < 100; i++ {
		g.Step(0)
	}
	if len(g.obstacles) != 0 {
		t.Error("pillar off the left edge should be removed")
	}
}

func TestEndedIsFrozen(t *testing.T) {
	rec := &gameOverRecorder{}
	sched := newManualScheduler()
	g := New(Config{Width: 800, Height: 600, Labels: []string{"Noah"}, OnGameOver: rec.record, Scheduler: sched})
	g.Activate()
	for i := 0; i < 200 && g.Phase() == PhaseRunning; i++ {
		sched.advance(frame)
	}
	if g.Phase() != PhaseEnded {
		t.Fatal("run without input should end")
	}

	before := g.Snapshot()
	if len(sched.pending) != 0 {
		t.Errorf("no frame should be pending after the run ended, got %d", len(sched.pending))
	}

	g.Activate()
	g.Step(5000)
	sched.advance(frame)
	g.Destroy()

	after := g.Snapshot()
	if after.Avatar != before.Avatar || after.Score != before.Score || len(after.Balloons) != len(before.Balloons) {
		t.Error("state must not change after the run ended")
	}
	if rec.calls != 1 {
		t.Errorf("callback should fire exactly once, fired %d times", rec.calls)
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	rec := &gameOverRecorder{}
	sched := newManualScheduler()
	g := New(Config{Width: 800, Height: 600, OnGameOver: rec.record, Scheduler: sched})
	g.Activate()
	sched.advance(frame)

	g.Destroy()
	g.Destroy()

	if len(sched.pending) != 0 {
		t.Error("Destroy should cancel the pending frame")
	}
	if g.Phase() != PhaseEnded || g.Result().Reason != EndDestroyed {
		t.Errorf("destroyed run: phase %v, reason %v", g.Phase(), g.Result().Reason)
	}
	if rec.calls != 1 {
		t.Errorf("callback should fire once, fired %d times", rec.calls)
	}

	// Idle games can be destroyed too, and input stays detached
	idle := New(Config{Width: 800, Height: 600, Scheduler: sched})
	idle.Destroy()
	idle.Activate()
	if idle.Phase() != PhaseEnded {
		t.Errorf("destroyed idle game should stay ended, got %v", idle.Phase())
	}
}

func TestResetStartsFreshRun(t *testing.T) {
	sched := newManualScheduler()
	g := New(Config{Width: 800, Height: 600, Labels: []string{"Liam"}, Scheduler: sched})
	g.Activate()
	for i := 0; i < 10; i++ {
		sched.advance(frame)
	}
	g.score = 3
	g.collected = []string{"Liam", "Liam", "Liam"}

	g.Reset()

	if len(sched.pending) != 0 {
		t.Error("Reset should cancel the pending frame")
	}
	if g.Phase() != PhaseIdle || g.Score() != 0 || len(g.Collected()) != 0 {
		t.Error("Reset should return to a clean idle run")
	}
	if len(g.obstacles) != 0 || len(g.balloons) != 0 {
		t.Error("Reset should discard entities")
	}
}

func TestResetInsideGameOverKeepsOneLoop(t *testing.T) {
	sched := newManualScheduler()
	var g *Game
	g = New(Config{
		Width:      800,
		Height:     600,
		Scheduler:  sched,
		OnGameOver: func(int, []string) { g.Reset() },
	})

	g.Activate()
	for i := 0; i < 200 && g.Phase() == PhaseRunning; i++ {
		sched.advance(frame)
	}
	if g.Phase() != PhaseIdle {
		t.Fatalf("callback reset should leave the game idle, got %v", g.Phase())
	}
	if len(sched.pending) != 0 {
		t.Fatalf("no frame should be pending after reset, got %d", len(sched.pending))
	}

	for i := 0; i < 5; i++ {
		sched.advance(frame)
	}
	if g.ticks != 0 || len(sched.pending) != 0 {
		t.Fatalf("idle game must not tick, ticks=%d pending=%d", g.ticks, len(sched.pending))
	}

	g.Activate()
	before := g.ticks
	sched.advance(frame)
	if got := g.ticks - before; got != 1 {
		t.Errorf("one host frame should step the run once, stepped %d times", got)
	}
	if len(sched.pending) != 1 {
		t.Errorf("exactly one frame should be pending, got %d", len(sched.pending))
	}
}

func TestRestartInsideGameOverKeepsOneLoop(t *testing.T) {
	sched := newManualScheduler()
	restarts := 0
	var g *Game
	g = New(Config{
		Width:     800,
		Height:    600,
		Scheduler: sched,
		OnGameOver: func(int, []string) {
			if restarts == 0 {
				restarts++
				g.Reset()
				g.Activate()
			}
		},
	})

	g.Activate()
	for i := 0; i < 200 && restarts == 0; i++ {
		sched.advance(frame)
	}
	if restarts != 1 || g.Phase() != PhaseRunning {
		t.Fatalf("run should restart from the callback, phase=%v", g.Phase())
	}
	if len(sched.pending) != 1 {
		t.Fatalf("restarted run should own one pending frame, got %d", len(sched.pending))
	}
	if g.ticks != 1 || g.obstacleTimer != 0 {
		t.Fatalf("finished frame leaked into the new run, ticks=%d obstacleTimer=%v", g.ticks, g.obstacleTimer)
	}

	before := g.ticks
	sched.advance(frame)
	if got := g.ticks - before; got != 1 {
		t.Errorf("one host frame should step the run once, stepped %d times", got)
	}
}

func TestGameOverLabelsAreCopied(t *testing.T) {
	var got []string
	g := New(Config{Width: 800, Height: 600, OnGameOver: func(_ int, labels []string) { got = labels }})
	g.phase = PhaseRunning
	g.collected = []string{"Levi"}
	g.score = 1
	g.Destroy()

	got[0] = "changed"
	if g.Collected()[0] != "Levi" {
		t.Error("callback labels must not alias game state")
	}
}

// Random play keeps every invariant on every frame.
func TestInvariantsUnderRandomPlay(t *testing.T) {
	pool := []string{"Liam", "Noah", "Oliver", "Sebastián", "Eli"}
	input := NewRand(99)

	for seed := int64(1); seed <= 20; seed++ {
		rec := &gameOverRecorder{}
		sched := newManualScheduler()
		g := New(Config{Width: 800, Height: 600, Labels: pool, OnGameOver: rec.record, Seed: seed, Scheduler: sched})
		g.Activate()

		for i := 0; i < 5000 && g.Phase() == PhaseRunning; i++ {
			if input.Intn(18) == 0 {
				g.Activate()
			}
			sched.advance(frame)

			snap := g.Snapshot()
			if snap.Phase == PhaseRunning && (snap.Avatar.Y < 0 || snap.Avatar.Y > 540) {
				t.Fatalf("seed %d: avatar out of bounds at %v", seed, snap.Avatar.Y)
			}
			if len(snap.Collected) != snap.Score {
				t.Fatalf("seed %d: %d labels for score %d", seed, len(snap.Collected), snap.Score)
			}
			for _, o := range snap.Obstacles {
				if o.GapStart < 50 || o.GapEnd() > 550 {
					t.Fatalf("seed %d: gap [%v, %v] outside margins", seed, o.GapStart, o.GapEnd())
				}
			}
			for _, b := range snap.Balloons {
				if b.Opacity <= 0 || b.Opacity > 1 {
					t.Fatalf("seed %d: balloon opacity %v", seed, b.Opacity)
				}
			}
		}

		g.Destroy()
		if rec.calls != 1 {
			t.Fatalf("seed %d: callback fired %d times", seed, rec.calls)
		}
		if rec.score != len(rec.labels) {
			t.Fatalf("seed %d: reported score %d with %d labels", seed, rec.score, len(rec.labels))
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	play := func() Result {
		sched := newManualScheduler()
		g := New(Config{Width: 800, Height: 600, Labels: []string{"Henry", "Jack"}, Seed: 12345, Scheduler: sched})
		g.Activate()
		for i := 0; i < 3000 && g.Phase() == PhaseRunning; i++ {
			if i%20 == 0 {
				g.Activate()
			}
			sched.advance(frame)
		}
		g.Destroy()
		return g.Result()
	}

	r1, r2 := play(), play()
	if r1.Score != r2.Score || r1.Ticks != r2.Ticks || !slices.Equal(r1.Labels, r2.Labels) {
		t.Errorf("same seed and input should give the same run: %+v vs %+v", r1, r2)
	}
}
