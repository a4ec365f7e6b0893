// Package matchgame implements the "pick the item matching the target" drill
// shared by the color and shape games.
package matchgame

import (
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/abhisek/sahaay/internal/engine"
)

const (
	// PointsPerMatch is awarded for every correct pick.
	PointsPerMatch = 10

	// SettleDelay is the pause between a correct pick and the next round.
	SettleDelay = time.Second
)

// Source picks a uniform index in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource draws from the process-wide math/rand/v2 generator.
func DefaultSource() Source {
	return globalSource{}
}

// State is a read-only snapshot of a game.
type State[T comparable] struct {
	Target       T
	Selected     T
	HasSelection bool
	Score        int
	Started      bool

	// Settling is true between a correct pick and the next round.
	// SettleToken identifies the pending round change.
	Settling    bool
	SettleToken uint64
}

// Matched reports whether the current selection hits the target.
func (s State[T]) Matched() bool {
	return s.HasSelection && s.Selected == s.Target
}

// tokens issues settle tokens shared by every game in the process.
var tokens atomic.Uint64

// Game is one match-the-target drill over a finite candidate set.
// Targets are resampled uniformly and may repeat the previous target.
type Game[T comparable] struct {
	domain     string
	rng        Source
	candidates []T
	state      State[T]
	token      uint64
}

// New creates a game over the named domain (e.g. "colors"). A nil rng uses DefaultSource.
func New[T comparable](domain string, rng Source) *Game[T] {
	if rng == nil {
		rng = DefaultSource()
	}
	return &Game[T]{domain: domain, rng: rng}
}

// Domain returns the game's domain name.
func (g *Game[T]) Domain() string {
	return g.domain
}

// Candidates returns the candidate set of the current game.
func (g *Game[T]) Candidates() []T {
	out := make([]T, len(g.candidates))
	copy(out, g.candidates)
	return out
}

// State returns a snapshot of the game.
func (g *Game[T]) State() State[T] {
	return g.state
}

// Start begins a new game over candidates. Duplicates are collapsed.
func (g *Game[T]) Start(candidates []T) (State[T], error) {
	if len(candidates) == 0 {
		return g.state, &engine.EmptyDomainError{Domain: g.domain}
	}

	seen := make(map[T]bool, len(candidates))
	uniq := make([]T, 0, len(candidates))
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		uniq = append(uniq, c)
	}

	g.candidates = uniq
	g.token = tokens.Add(1)
	g.state = State[T]{
		Target:  g.sample(),
		Score:   0,
		Started: true,
	}
	return g.state, nil
}

// Select records a pick. A correct pick awards PointsPerMatch and arms a
// settle token; a wrong pick stays selected and the player may retry.
func (g *Game[T]) Select(item T) (State[T], error) {
	if !g.state.Started {
		return g.state, &engine.InvalidStateError{Op: "select", Reason: "game not started"}
	}
	if !g.contains(item) {
		return g.state, &engine.InvalidArgumentError{
			Name:   "item",
			Reason: fmt.Sprintf("%v is not in %s", item, g.domain),
		}
	}

	g.state.Selected = item
	g.state.HasSelection = true
	if item != g.state.Target {
		return g.state, nil
	}

	g.state.Score += PointsPerMatch
	g.token = tokens.Add(1)
	g.state.Settling = true
	g.state.SettleToken = g.token
	return g.state, nil
}

// Settle starts the next round if token is the most recent settle token.
// Stale tokens are ignored and report false.
func (g *Game[T]) Settle(token uint64) (State[T], bool) {
	if !g.state.Started || !g.state.Settling || token != g.token {
		return g.state, false
	}

	var zero T
	g.state.Target = g.sample()
	g.state.Selected = zero
	g.state.HasSelection = false
	g.state.Settling = false
	g.state.SettleToken = 0
	return g.state, true
}

// Stop ends the game and invalidates any pending settle. The score is kept
// for display until the next Start.
func (g *Game[T]) Stop() State[T] {
	g.token = tokens.Add(1)
	g.state.Started = false
	g.state.Settling = false
	g.state.SettleToken = 0
	return g.state
}

func (g *Game[T]) sample() T {
	return g.candidates[g.rng.IntN(len(g.candidates))]
}

func (g *Game[T]) contains(item T) bool {
	for _, c := range g.candidates {
		if c == item {
			return true
		}
	}
	return false
}
