package tape

import "errors"

// Sentinel errors for tape construction, simplification, and archiving.
var (
	// ErrNilGraph indicates a nil *expr.Graph was passed to Build.
	ErrNilGraph = errors.New("tape: graph is nil")

	// ErrRootNotIncluded indicates the requested root node was not part
	// of the included set passed to Build.
	ErrRootNotIncluded = errors.New("tape: root node not included in tape")

	// ErrOperandNotIncluded indicates a node in the included set has an
	// operand that is not itself part of the included set, so Build
	// cannot resolve it to a Reg. A well-formed group union never
	// triggers this.
	ErrOperandNotIncluded = errors.New("tape: operand not included in tape")

	// ErrCorruptArchive indicates Decode could not reconstruct a valid
	// Tape from the given bytes (bad magic, truncated data, or failed
	// decompression).
	ErrCorruptArchive = errors.New("tape: corrupt archive")
)

// StructuralError reports a violated structural precondition (e.g. an
// operand referencing a node outside the included set) alongside the
// operation that detected it.
type StructuralError struct {
	Op  string
	Err error
}

func (e *StructuralError) Error() string {
	if e.Op == "" {
		return "tape: " + e.Err.Error()
	}
	return "tape: " + e.Op + ": " + e.Err.Error()
}

func (e *StructuralError) Unwrap() error { return e.Err }
