// Package group implements Stage1: the source analyzer.
//
// Analyze walks a finalized expr.Graph from its root and, for every node,
// derives the minimal set of choice-conditions under which that node is
// reachable. Nodes that share the same normalized condition set are
// partitioned into the same Group — the unit of tape simplification
// during octree subdivision (a cell's interval evaluation proves some
// min/max arguments dominate; every Group whose only sources are
// conditioned on the losing side can be dropped as a whole, rather than
// node by node).
//
// The traversal is iterative (an explicit worklist), not recursive over
// the Go call stack: Stage0 graphs built by an arbitrary front-end may be
// wide and deep enough to overflow a bounded goroutine stack if walked
// with plain recursion.
//
// Analyze is a pure function of its input graph: given the same finalized
// expr.Graph, it always returns an equal Stage1 (up to Group ordering,
// which is deterministic by first-appearance in ascending NodeIndex
// order).
//
// Errors:
//
//	ErrNotFinalized - the input expr.Graph has not been finalized.
//	ErrNilGraph     - a nil *expr.Graph was passed.
package group
