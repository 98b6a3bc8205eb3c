package group

import "errors"

// Sentinel errors for Stage1 analysis.
var (
	// ErrNilGraph indicates a nil *expr.Graph was passed to Analyze.
	ErrNilGraph = errors.New("group: graph is nil")

	// ErrNotFinalized indicates Analyze was called on a graph that has
	// not passed expr.Graph.Finalize.
	ErrNotFinalized = errors.New("group: graph is not finalized")

	// ErrUnassignedNode indicates Stage1's internal invariant that every
	// node is assigned to exactly one group was violated. This can only
	// happen from an implementation bug in Analyze itself, not from bad
	// input, and is always wrapped in a StructuralError.
	ErrUnassignedNode = errors.New("group: node left unassigned to any group")
)

// StructuralError wraps a fatal Stage1 invariant violation, mirroring
// expr.StructuralError: construction-time, fatal, never recoverable.
type StructuralError struct {
	Err error
}

func (e *StructuralError) Error() string { return "group: structural error: " + e.Err.Error() }
func (e *StructuralError) Unwrap() error { return e.Err }
