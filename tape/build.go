package tape

import (
	"sort"

	"github.com/fieldcarve/fieldcarve/expr"
)

// Build linearizes the nodes in included (a group-pruned subset of g,
// e.g. the union of one or more group.Group.Nodes slices) into a Tape
// rooted at root. included must contain root.
//
// Because expr.NodeIndex already reflects Stage0's topological order
// (every node's operands were allocated before it), Build needs only a
// single ascending pass over included to assign dense Reg values — no
// separate toposort.
func Build(g *expr.Graph, included map[expr.NodeIndex]bool, root expr.NodeIndex) (*Tape, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !included[root] {
		return nil, ErrRootNotIncluded
	}

	nodes := make([]expr.NodeIndex, 0, len(included))
	for n := range included {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	regOf := make(map[expr.NodeIndex]Reg, len(nodes))
	instrs := make([]Instr, 0, len(nodes))
	source := make([]expr.NodeIndex, 0, len(nodes))

	for _, n := range nodes {
		nd := g.Node(n)
		instr := Instr{Op: nd.Op, Imm: nd.Const, VarSlot: nd.VarSlot, Choice: nd.Choice}

		if nd.Op.IsUnary() || nd.Op.IsBinary() || nd.Op.IsChoice() {
			r, ok := regOf[nd.A]
			if !ok {
				return nil, &StructuralError{Op: "build", Err: ErrOperandNotIncluded}
			}
			instr.X = r
		}
		if nd.Op.IsBinary() || nd.Op.IsChoice() {
			r, ok := regOf[nd.B]
			if !ok {
				return nil, &StructuralError{Op: "build", Err: ErrOperandNotIncluded}
			}
			instr.Y = r
		}

		reg := Reg(len(instrs))
		instrs = append(instrs, instr)
		source = append(source, n)
		regOf[n] = reg
	}

	out, ok := regOf[root]
	if !ok {
		return nil, ErrRootNotIncluded
	}

	return &Tape{Instrs: instrs, Out: out, source: source}, nil
}
