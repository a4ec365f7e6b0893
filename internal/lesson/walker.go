package lesson

import (
	"math"

	"github.com/abhisek/sahaay/internal/engine"
)

// Walker pages linearly through one lesson set. Each set gets its own
// Walker; cursors are never shared between sets.
type Walker struct {
	cursor Cursor
}

// New creates a Walker positioned on the first of total items.
func New(total int) (*Walker, error) {
	if total < 1 {
		return nil, &engine.InvalidArgumentError{Name: "total", Reason: "lesson set must have at least one item"}
	}
	return &Walker{cursor: Cursor{Index: 0, Total: total}}, nil
}

// ForSet creates a Walker over the items of s.
func ForSet(s Set) (*Walker, error) {
	return New(s.Len())
}

// Cursor returns a snapshot of the current position.
func (w *Walker) Cursor() Cursor {
	return w.cursor
}

// GoNext moves forward one item. Clamped at the last item.
func (w *Walker) GoNext() Cursor {
	if w.cursor.Index < w.cursor.Total-1 {
		w.cursor.Index++
	}
	return w.cursor
}

// GoPrev moves back one item. Clamped at the first item.
func (w *Walker) GoPrev() Cursor {
	if w.cursor.Index > 0 {
		w.cursor.Index--
	}
	return w.cursor
}

// Cycle moves forward one item and wraps to the first after the last.
// Used by drills that loop, such as the word practice list.
func (w *Walker) Cycle() Cursor {
	w.cursor.Index = (w.cursor.Index + 1) % w.cursor.Total
	return w.cursor
}

// JumpTo moves directly to index i. The cursor is unchanged on error.
func (w *Walker) JumpTo(i int) (Cursor, error) {
	if i < 0 || i >= w.cursor.Total {
		return w.cursor, &engine.OutOfRangeError{Index: i, Total: w.cursor.Total}
	}
	w.cursor.Index = i
	return w.cursor, nil
}

// ProgressPercent returns round(100 * (index+1) / total).
func (w *Walker) ProgressPercent() int {
	return int(math.Round(100 * float64(w.cursor.Index+1) / float64(w.cursor.Total)))
}
