// Package tape linearizes a group-pruned Stage0 subgraph into a
// register-allocated program (C3 in the system overview).
//
// A Tape is a topologically ordered slice of Instr values; an
// instruction's operands are always register indices strictly smaller
// than its own position, so evaluators can run straight through the slice
// without a separate scheduling pass.
//
// Simplify specializes a Tape under a ChoiceBitmap of decided min/max
// resolutions (written by an interval evaluator's EvalInterval pass):
// decided choice instructions are replaced by their winning operand and
// the result is dead-code eliminated. Because every instruction's
// operands precede it, both the substitution and the DCE sweep run as
// single forward/backward passes over the instruction slice — no
// recursion, and no risk of stack growth on deep tapes.
//
// Storage pools the backing []Instr buffers of discarded tapes for
// reuse through Claim; Build and Simplify allocate fresh buffers and do
// not claim from it. Archive (de)serializes a simplified Tape to
// a compressed byte form, for callers that want to cache tapes across
// scheduler invocations rather than only within one run's Storage pool.
package tape
