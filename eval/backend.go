package eval

import "github.com/fieldcarve/fieldcarve/tape"

// ArraySize is the batch width of EvalArray: a plain, documented
// constant rather than a value tuned to any particular SIMD lane width.
const ArraySize = 8

// Backend is the evaluation contract a Tape is bound to. Interpreter is
// the one implementation this repository ships; dynamic-assembler and
// native-JIT backends are named in the system overview as future
// implementations of this same interface.
type Backend interface {
	// EvalFloat evaluates the bound tape at a single point.
	EvalFloat(x, y, z float64) (float64, error)

	// EvalArray evaluates the bound tape at ArraySize points at once.
	EvalArray(x, y, z [ArraySize]float64) ([ArraySize]float64, error)

	// EvalInterval evaluates the bound tape over a box, writing into
	// choices the Winner recorded at every min/max instruction whose
	// operands were disjoint on this box.
	EvalInterval(x, y, z Interval, choices tape.ChoiceBitmap) (Interval, error)

	// Simplify returns a Backend bound to a tape specialized under
	// choices (see tape.Simplify), and the specialized tape so metadata
	// code (e.g. tape.Storage bookkeeping) can observe it directly.
	Simplify(choices tape.ChoiceBitmap) (Backend, *tape.Tape, error)
}
