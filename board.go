package jigsaw

import (
	"errors"
	"fmt"
)

// ErrUnknownPiece reports a piece id that does not belong to the puzzle.
var ErrUnknownPiece = errors.New("jigsaw: unknown piece id")

// Tracker follows placement progress for one puzzle instance. It is the
// game's only non-presentational state: which pieces have reached their
// slots, and whether the board is solved.
//
// Tracker is not safe for concurrent use; a puzzle is driven by a single
// interaction loop.
type Tracker struct {
	placed map[string]bool
	count  int
}

// NewTracker creates a tracker covering every piece of data.
func NewTracker(data *PuzzleData) *Tracker {
	placed := make(map[string]bool, len(data.Pieces))
	for _, p := range data.Pieces {
		placed[p.ID] = false
	}
	return &Tracker{placed: placed}
}

// Place records that the piece with the given id reached its slot.
// It reports whether the placement was new; placing an already-placed piece
// is a no-op. Unknown ids return ErrUnknownPiece.
func (t *Tracker) Place(id string) (bool, error) {
	done, ok := t.placed[id]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownPiece, id)
	}
	if done {
		return false, nil
	}
	t.placed[id] = true
	t.count++
	return true, nil
}

// Placed returns the number of pieces placed so far.
func (t *Tracker) Placed() int {
	return t.count
}

// Remaining returns the number of pieces not yet placed.
func (t *Tracker) Remaining() int {
	return len(t.placed) - t.count
}

// Solved reports whether every piece has been placed.
func (t *Tracker) Solved() bool {
	return t.count == len(t.placed)
}
