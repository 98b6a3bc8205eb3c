package expr

import "errors"

// Sentinel errors for Stage0 construction and finalization.
var (
	// ErrNilGraph indicates a nil *Graph was passed where one was required.
	ErrNilGraph = errors.New("expr: graph is nil")

	// ErrNoRoot indicates Finalize was called before SetRoot.
	ErrNoRoot = errors.New("expr: no root node set")

	// ErrDanglingNode indicates an operand index outside the node pool.
	// This is a StructuralError: construction-time and fatal.
	ErrDanglingNode = errors.New("expr: dangling operand index")

	// ErrRootOutOfRange indicates the root index does not name a node in
	// the pool.
	ErrRootOutOfRange = errors.New("expr: root index out of range")
)

// StructuralError wraps a fatal, construction-time invariant violation
// detected while finalizing a Graph (dangling operand, out-of-range root).
// Per spec, these are never recoverable: callers should treat them as a
// programmer/front-end bug, not a user-input error.
type StructuralError struct {
	Err error
	Op  string // the operation being validated when the error was found
}

func (e *StructuralError) Error() string {
	return "expr: structural error during " + e.Op + ": " + e.Err.Error()
}

func (e *StructuralError) Unwrap() error { return e.Err }
