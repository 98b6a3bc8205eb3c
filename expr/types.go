package expr

// NodeIndex uniquely identifies a Node within a Graph's dense pool.
// NodeIndex order is a valid topological order: a node's operands always
// have strictly smaller indices than the node itself.
type NodeIndex int32

// ChoiceIndex is a dense integer allocated once per min/max node, in
// allocation order starting at 0. The total count bounds the size of the
// choice bitmaps evaluators write during interval analysis.
type ChoiceIndex int32

// Var names one of the three spatial input variables.
type Var uint8

// The three supported input variables.
const (
	VarX Var = iota
	VarY
	VarZ
)

func (v Var) String() string {
	switch v {
	case VarX:
		return "x"
	case VarY:
		return "y"
	case VarZ:
		return "z"
	default:
		return "?"
	}
}

// Op identifies the operation a Node performs. Operators partition into
// leaf (Const, VarOp), unary, binary arithmetic, and choice (Min, Max).
type Op uint8

// Supported operators, grouped by arity.
const (
	// Leaf ops (0 operands).
	OpConst Op = iota
	OpVar

	// Unary ops (1 operand, stored in Node.A).
	OpNeg
	OpAbs
	OpRecip
	OpSqrt
	OpSquare
	OpSin
	OpCos

	// Binary arithmetic ops (2 operands, Node.A and Node.B).
	OpAdd
	OpSub
	OpMul
	OpDiv

	// Choice ops (2 operands, carry a ChoiceIndex).
	OpMin
	OpMax
)

// IsLeaf reports whether op takes no operands.
func (op Op) IsLeaf() bool { return op == OpConst || op == OpVar }

// IsUnary reports whether op takes exactly one operand.
func (op Op) IsUnary() bool {
	switch op {
	case OpNeg, OpAbs, OpRecip, OpSqrt, OpSquare, OpSin, OpCos:
		return true
	default:
		return false
	}
}

// IsBinary reports whether op takes exactly two operands (arithmetic or
// choice).
func (op Op) IsBinary() bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpMin, OpMax:
		return true
	default:
		return false
	}
}

// IsChoice reports whether op is a min/max node, i.e. carries a
// ChoiceIndex and forks Source propagation in Stage1.
func (op Op) IsChoice() bool { return op == OpMin || op == OpMax }

func (op Op) String() string {
	switch op {
	case OpConst:
		return "const"
	case OpVar:
		return "var"
	case OpNeg:
		return "neg"
	case OpAbs:
		return "abs"
	case OpRecip:
		return "recip"
	case OpSqrt:
		return "sqrt"
	case OpSquare:
		return "square"
	case OpSin:
		return "sin"
	case OpCos:
		return "cos"
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpMin:
		return "min"
	case OpMax:
		return "max"
	default:
		return "unknown"
	}
}

// noOperand marks an unused operand slot in Node.A/Node.B.
const noOperand NodeIndex = -1

// Node is one arithmetic or choice operation in Stage0.
//
// A and B hold operand NodeIndex values, or noOperand when unused by Op's
// arity. Const and VarSlot are only meaningful for the corresponding leaf
// Op. Choice is only meaningful for OpMin/OpMax.
type Node struct {
	Op      Op
	A, B    NodeIndex
	Const   float64
	VarSlot Var
	Choice  ChoiceIndex
}
