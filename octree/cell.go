package octree

// Box is an axis-aligned region of R^3.
type Box struct {
	Min, Max [3]float64
}

// Child returns the i-th (i in 0..8) octant of b: bit 0 of i selects
// the X half, bit 1 selects Y, bit 2 selects Z.
func (b Box) Child(i int) Box {
	var out Box
	for axis := 0; axis < 3; axis++ {
		mid := (b.Min[axis] + b.Max[axis]) / 2
		if i&(1<<axis) == 0 {
			out.Min[axis], out.Max[axis] = b.Min[axis], mid
		} else {
			out.Min[axis], out.Max[axis] = mid, b.Max[axis]
		}
	}
	return out
}

// RootBox is the default bounding region new octrees are built within.
var RootBox = Box{Min: [3]float64{-1, -1, -1}, Max: [3]float64{1, 1, 1}}

// CellIndex names one cell by its position in a thread's cell vector,
// its subdivision depth, and the box it covers.
type CellIndex struct {
	Index int
	Depth int
	Bounds Box
}

// RootCellIndex is the index of the octree's root cell.
func RootCellIndex() CellIndex {
	return CellIndex{Index: 0, Depth: 0, Bounds: RootBox}
}

// Child returns the CellIndex for this cell's i-th octant, to be stored
// at childBase+i in the owning thread's cell vector.
func (c CellIndex) Child(childBase, i int) CellIndex {
	return CellIndex{Index: childBase + i, Depth: c.Depth + 1, Bounds: c.Bounds.Child(i)}
}

// CellKind tags which variant a Cell is.
type CellKind uint8

const (
	// CellInvalid is the placeholder state every cell starts in.
	CellInvalid CellKind = iota
	CellEmpty
	CellFull
	CellLeaf
	CellBranch
)

// Cell is one octree node: a terminal state (Empty/Full/Leaf) or a
// pointer to 8 children, possibly owned by another thread (Branch).
type Cell struct {
	Kind CellKind

	// Leaf fields.
	Position [3]float64
	Normal   [3]float64

	// Branch fields: Index is the child cluster's base index within
	// Thread's cell vector.
	Index  int
	Thread int
}

// Empty returns the Empty terminal cell.
func Empty() Cell { return Cell{Kind: CellEmpty} }

// Full returns the Full terminal cell.
func Full() Cell { return Cell{Kind: CellFull} }

// LeafCell returns a Leaf terminal cell at the given vertex position and
// normal.
func LeafCell(position, normal [3]float64) Cell {
	return Cell{Kind: CellLeaf, Position: position, Normal: normal}
}

// BranchCell returns a Branch cell pointing at a child cluster base
// index owned by the given thread.
func BranchCell(index, thread int) Cell {
	return Cell{Kind: CellBranch, Index: index, Thread: thread}
}

// BranchResult is the summary CheckDone returns once all 8 siblings of
// a cluster are non-Invalid: either the cluster collapsed to a terminal
// state, or it remains a Branch pointing at the cluster's base index.
type BranchResult struct {
	Kind CellKind // one of CellEmpty, CellFull, CellLeaf, CellBranch

	Position [3]float64
	Normal   [3]float64

	BranchIndex int
}

// CellResult is the tagged union EvalCell returns: either a terminal
// cell is already known (Done), or the cell must be subdivided further
// under E, a (possibly simplified) evaluator group (Recurse). E is the
// caller's evaluator-group type (see eval.Group); Builder is generic
// over it so this package never needs to import eval/tape.
type CellResult[E any] struct {
	Done bool

	// Valid when Done is true.
	Cell Cell

	// Valid when Done is false: the evaluator group subdivision should
	// continue with.
	Next E
}
