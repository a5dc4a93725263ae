// Package frames adapts a host's fixed-rate update loop (a Bubble Tea tick,
// an ebiten Update) into the game.Scheduler a run expects.
package frames

import (
	"sort"
	"time"

	"github.com/vovakirdan/teddy-balloons/internal/game"
)

// Queue collects frame requests and fires them on the next Tick.
// It is not safe for concurrent use; hosts call it from their update loop.
type Queue struct {
	now     time.Duration
	nextID  game.FrameID
	pending map[game.FrameID]game.FrameFunc
}

// NewQueue creates an empty queue with its clock at zero.
func NewQueue() *Queue {
	return &Queue{pending: make(map[game.FrameID]game.FrameFunc)}
}

// Now returns the time passed to the last Tick.
func (q *Queue) Now() time.Duration {
	return q.now
}

// RequestFrame schedules fn for the next Tick.
func (q *Queue) RequestFrame(fn game.FrameFunc) game.FrameID {
	q.nextID++
	q.pending[q.nextID] = fn
	return q.nextID
}

// CancelFrame drops a pending request. Unknown IDs are ignored.
func (q *Queue) CancelFrame(id game.FrameID) {
	delete(q.pending, id)
}

// Pending reports how many requests wait for the next Tick.
func (q *Queue) Pending() int {
	return len(q.pending)
}

// Tick advances the clock to now and fires every request made before the
// call, in request order. Requests made by the callbacks wait for the
// next Tick. A clock that goes backwards is held at its last value.
func (q *Queue) Tick(now time.Duration) {
	if now > q.now {
		q.now = now
	}
	if len(q.pending) == 0 {
		return
	}

	ids := make([]game.FrameID, 0, len(q.pending))
	for id := range q.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		fn, ok := q.pending[id]
		if !ok {
			continue // cancelled by an earlier callback
		}
		delete(q.pending, id)
		fn(q.now)
	}
}

var _ game.Scheduler = (*Queue)(nil)
