// Package eval implements the evaluator contracts (C4) that bind a
// tape.Tape to numeric backends: pointwise float evaluation, batched
// array evaluation, sound interval evaluation, and choice-aware
// simplification.
//
// Backend is the pluggable seam; Interpreter is the one concrete
// implementation this repository ships, an evaluator that runs once
// through a tape.Tape's instructions in register order. Dynamic-assembler and native-JIT backends
// are named as future Backend implementations but are out of scope here.
//
// Values are carried as float64 throughout, a deliberate widening from
// the f32 used by the originating design: Go's math package and
// arithmetic operate natively on float64, and nothing in this codebase's
// evaluation path needs SIMD-lane-width precision.
package eval
