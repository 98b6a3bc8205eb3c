// Package expr builds Stage0: the expression DAG that every other package
// in this module consumes.
//
// A Graph is a dense, append-only pool of Node values. Each Node is either
// a leaf (constant or variable), a unary op, a binary arithmetic op, or a
// choice op (min/max). Nodes are uniquely identified by their NodeIndex,
// which is also their position in the pool — since operands are always
// built before the node that references them, NodeIndex order is already
// a valid topological order.
//
// Shared subexpressions are deduplicated by structural hash: building the
// same (Op, operands, payload) tuple twice returns the same NodeIndex.
//
// Graph is safe for concurrent construction from multiple goroutines (the
// compiler front-end may build in parallel); Finalize validates the graph
// once and marks it finalized. Every accessor still takes the graph's
// read lock, and the constructors do not refuse nodes added afterwards.
//
// Errors:
//
//	ErrNoRoot       - Finalize called before SetRoot.
//	ErrDanglingNode - an operand index refers outside the pool (impossible
//	                  through the public API; guarded for defense-in-depth).
//	ErrNilGraph     - a nil *Graph was passed where one was required.
package expr
