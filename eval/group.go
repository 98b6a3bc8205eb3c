package eval

import (
	"sync/atomic"

	"github.com/fieldcarve/fieldcarve/tape"
)

// Group is a reference-counted binding of a Backend to the tape.Tape it
// evaluates, shared across a Task's parent chain (see package worker).
// The underlying tape's storage buffer is returned to a tape.Storage
// pool only once the last share releases — the Go stand-in for the
// originating design's Arc<EvalGroup>/try_unwrap discipline, made
// explicit here via an atomic share count since Go has no unique-owner
// probe on a shared pointer.
type Group struct {
	backend    Backend
	tape       *tape.Tape
	numChoices int
	refs       atomic.Int32
}

// NewGroup returns a Group with one outstanding share. numChoices sizes
// the ChoiceBitmap a caller should allocate when interval-evaluating
// this group.
func NewGroup(backend Backend, t *tape.Tape, numChoices int) *Group {
	g := &Group{backend: backend, tape: t, numChoices: numChoices}
	g.refs.Store(1)
	return g
}

// NumChoices returns the choice count this group's bitmap should be
// sized for.
func (g *Group) NumChoices() int { return g.numChoices }

// Backend returns the bound evaluator.
func (g *Group) Backend() Backend { return g.backend }

// Tape returns the bound tape.
func (g *Group) Tape() *tape.Tape { return g.tape }

// Retain records one more outstanding share and returns g, so callers
// can write `next := g.Retain()` at a fan-out point.
func (g *Group) Retain() *Group {
	g.refs.Add(1)
	return g
}

// Release drops one outstanding share. If this was the last share, the
// tape's instruction buffer is returned to storage and true is
// returned; otherwise false.
func (g *Group) Release(storage *tape.Storage) bool {
	if g.refs.Add(-1) == 0 {
		storage.ReleaseTape(g.tape)
		return true
	}
	return false
}
