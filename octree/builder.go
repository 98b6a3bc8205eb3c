package octree

// SurfaceExtractor is the interface Builder consumes to turn a
// surface-crossing leaf cell into a vertex, and to decide whether a
// fully-resolved 8-cluster collapses into a single Leaf or remains a
// Branch. Package mesh provides the one concrete implementation this
// repository ships (dual contouring); Builder never assumes a
// particular reconstruction heuristic beyond this interface.
type SurfaceExtractor[E any] interface {
	// Leaf computes the vertex position and normal for a surface-
	// crossing cell at the given bounds, evaluated under group.
	Leaf(bounds Box, group E) (position, normal [3]float64, err error)

	// ReduceCluster decides whether the 8 children (already resolved to
	// terminal Cell values) collapse into a single Leaf, returning
	// (collapsed leaf cell, true), or remain a Branch, returning
	// (zero value, false).
	ReduceCluster(children [8]Cell) (Cell, bool)
}

// EvalCell is the per-cell classification step: it runs interval
// evaluation (via classify) over bounds and returns either a terminal
// Done result or a Recurse result carrying the (possibly simplified)
// evaluator group subdivision should continue with.
//
// classify is supplied by the caller (package worker) rather than
// called directly here, keeping this package free of any dependency on
// eval/tape: it already knows how to run interval evaluation, decide
// strictly-positive/strictly-negative short-circuits, and simplify the
// tape under the resulting choice bitmap.
func EvalCell[E any](
	cell CellIndex,
	group E,
	maxDepth int,
	classify func(bounds Box, group E) (result CellResult[E], err error),
	extractor SurfaceExtractor[E],
) (CellResult[E], error) {
	result, err := classify(cell.Bounds, group)
	if err != nil {
		return CellResult[E]{}, err
	}
	if result.Done {
		return result, nil
	}
	if cell.Depth >= maxDepth {
		pos, normal, err := extractor.Leaf(cell.Bounds, result.Next)
		if err != nil {
			return CellResult[E]{}, err
		}
		return CellResult[E]{Done: true, Cell: LeafCell(pos, normal)}, nil
	}
	return result, nil
}

// Builder owns one worker thread's contiguous cell vector, under
// construction. Cells referenced by a Branch cell's (Index, Thread) may
// live in another thread's Builder; no Builder ever mutates another's
// cells during construction.
type Builder[E any] struct {
	cells     []Cell
	extractor SurfaceExtractor[E]
}

// NewBuilder returns an empty Builder using extractor to resolve leaf
// vertices and cluster collapses.
func NewBuilder[E any](extractor SurfaceExtractor[E]) *Builder[E] {
	return &Builder[E]{extractor: extractor}
}

// Reserve allocates n consecutive Invalid cells and returns the base
// index of the new block.
func (b *Builder[E]) Reserve(n int) int {
	base := len(b.cells)
	for i := 0; i < n; i++ {
		b.cells = append(b.cells, Cell{Kind: CellInvalid})
	}
	return base
}

// Len reports the number of cells allocated so far.
func (b *Builder[E]) Len() int { return len(b.cells) }

// Cells returns the builder's backing cell vector. Callers (Merge) must
// not mutate it.
func (b *Builder[E]) Cells() []Cell { return b.cells }

// Record writes cell into slot index, which must currently be Invalid.
func (b *Builder[E]) Record(index int, cell Cell) error {
	if index < 0 || index >= len(b.cells) {
		return ErrIndexOutOfRange
	}
	if b.cells[index].Kind != CellInvalid {
		return ErrAlreadyRecorded
	}
	b.cells[index] = cell
	return nil
}

// RecordLeaf is a convenience wrapper that builds and returns a Leaf
// Cell from a vertex position and normal, without recording it — the
// caller still calls Record with the result. This mirrors
// spec.md's record_leaf, which both allocates leaf storage and returns
// the Cell value for the caller to record.
func (b *Builder[E]) RecordLeaf(position, normal [3]float64) Cell {
	return LeafCell(position, normal)
}

// CheckDone reports whether all 8 cells of the cluster starting at base
// (base must be a multiple of 8) are non-Invalid, and if so, the
// cluster's BranchResult. Order-independent: the result is a pure
// function of the 8 children's current Cell values.
func (b *Builder[E]) CheckDone(base int) (BranchResult, bool) {
	if base < 0 || base+8 > len(b.cells) {
		return BranchResult{}, false
	}
	var children [8]Cell
	for i := 0; i < 8; i++ {
		c := b.cells[base+i]
		if c.Kind == CellInvalid {
			return BranchResult{}, false
		}
		children[i] = c
	}

	allEmpty, allFull := true, true
	for _, c := range children {
		if c.Kind != CellEmpty {
			allEmpty = false
		}
		if c.Kind != CellFull {
			allFull = false
		}
	}
	switch {
	case allEmpty:
		return BranchResult{Kind: CellEmpty}, true
	case allFull:
		return BranchResult{Kind: CellFull}, true
	}

	if collapsed, ok := b.extractor.ReduceCluster(children); ok {
		return BranchResult{Kind: CellLeaf, Position: collapsed.Position, Normal: collapsed.Normal}, true
	}
	return BranchResult{Kind: CellBranch, BranchIndex: base}, true
}
