// Package focus implements the timed attention task: hold focus for a fixed
// duration and earn a bounded attention score.
package focus

import (
	"sync/atomic"
	"time"

	"github.com/abhisek/sahaay/internal/engine"
)

const (
	// Reward is added to the attention score when a run completes.
	Reward = 10

	// MaxAttentionScore caps the attention score.
	MaxAttentionScore = 100

	// TickInterval is how often the presentation layer polls Tick.
	TickInterval = time.Second
)

// Clock is a monotonic time source.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now (which carries a monotonic reading).
func SystemClock() Clock {
	return systemClock{}
}

// State is a read-only snapshot of the task.
type State struct {
	DurationSeconds int
	ElapsedSeconds  int
	Active          bool
	AttentionScore  int

	// Completed is true once the current run reached its duration.
	Completed bool
}

// Remaining returns the seconds left in the current run, never negative.
func (s State) Remaining() int {
	r := s.DurationSeconds - s.ElapsedSeconds
	if r < 0 {
		return 0
	}
	return r
}

// Fraction returns elapsed/duration clamped to [0, 1], for progress bars.
func (s State) Fraction() float64 {
	if s.DurationSeconds <= 0 {
		return 0
	}
	f := float64(s.ElapsedSeconds) / float64(s.DurationSeconds)
	if f > 1 {
		return 1
	}
	return f
}

// runs issues run ids for every task in the process, so a tick scheduled by
// a discarded task never matches a live one.
var runs atomic.Uint64

// Task is the timed focus task. The attention score accumulates across runs.
type Task struct {
	clock   Clock
	state   State
	startAt time.Time
	run     uint64
}

// New creates an inactive task. A nil clock uses SystemClock.
func New(clock Clock) *Task {
	if clock == nil {
		clock = SystemClock()
	}
	return &Task{clock: clock}
}

// State returns a snapshot of the task.
func (t *Task) State() State {
	return t.state
}

// Run identifies the current run. Start and Cancel replace it with an id no
// other task holds, so a timer carrying any older id is stale and must stop
// rescheduling itself.
func (t *Task) Run() uint64 {
	return t.run
}

// Start begins a run of durationSeconds.
func (t *Task) Start(durationSeconds int) (State, error) {
	if durationSeconds <= 0 {
		return t.state, &engine.InvalidArgumentError{Name: "duration", Reason: "must be positive"}
	}

	t.run = runs.Add(1)
	t.startAt = t.clock.Now()
	t.state.DurationSeconds = durationSeconds
	t.state.ElapsedSeconds = 0
	t.state.Active = true
	t.state.Completed = false
	return t.state, nil
}

// Tick recomputes elapsed time from the wall-clock delta and, the first time
// the duration is reached, ends the run and awards Reward.
func (t *Task) Tick(now time.Time) State {
	if !t.state.Active {
		return t.state
	}

	elapsed := int(now.Sub(t.startAt) / time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	t.state.ElapsedSeconds = elapsed

	if elapsed >= t.state.DurationSeconds {
		t.state.Active = false
		t.state.Completed = true
		t.state.AttentionScore = min(MaxAttentionScore, t.state.AttentionScore+Reward)
	}
	return t.state
}

// Cancel stops the current run without a reward.
func (t *Task) Cancel() State {
	if t.state.Active {
		t.run = runs.Add(1)
	}
	t.state.Active = false
	return t.state
}
