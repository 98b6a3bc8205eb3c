package tape_test

import (
	"testing"

	"github.com/fieldcarve/fieldcarve/expr"
	"github.com/fieldcarve/fieldcarve/tape"
	"github.com/stretchr/testify/require"
)

func TestSimplifyLeavesUndecidedChoiceInPlace(t *testing.T) {
	g := expr.NewGraph()
	x := g.VarNode(expr.VarX)
	y := g.VarNode(expr.VarY)
	root, _ := g.Min(x, y)
	g.SetRoot(root)
	require.NoError(t, g.Finalize())

	tp, err := tape.Build(g, allIncluded(g), root)
	require.NoError(t, err)

	decided := tape.NewChoiceBitmap(g.NumChoices())
	simplified := tape.Simplify(tp, decided)
	require.Equal(t, tp.Len(), simplified.Len())
}

func TestSimplifyDropsLoserAndChoiceInstr(t *testing.T) {
	g := expr.NewGraph()
	x := g.VarNode(expr.VarX)
	y := g.VarNode(expr.VarY)
	root, choice := g.Min(x, y)
	g.SetRoot(root)
	require.NoError(t, g.Finalize())

	tp, err := tape.Build(g, allIncluded(g), root)
	require.NoError(t, err)

	decided := tape.NewChoiceBitmap(g.NumChoices())
	decided.Set(choice, tape.WinnerLeft)

	simplified := tape.Simplify(tp, decided)
	require.Equal(t, 1, simplified.Len())
	require.Equal(t, expr.OpVar, simplified.Instrs[0].Op)
	require.Equal(t, expr.VarX, simplified.Instrs[0].VarSlot)
	require.Equal(t, tape.Reg(0), simplified.Out)
}

func TestSimplifyEliminatesUnreachableSiblingSubtree(t *testing.T) {
	// f = min(x + 1, y + 2); deciding Left must drop the entire y+2
	// subtree, not just the top-level max/min instruction.
	g := expr.NewGraph()
	x := g.VarNode(expr.VarX)
	y := g.VarNode(expr.VarY)
	left := g.Add(x, g.Const(1))
	right := g.Add(y, g.Const(2))
	root, choice := g.Min(left, right)
	g.SetRoot(root)
	require.NoError(t, g.Finalize())

	tp, err := tape.Build(g, allIncluded(g), root)
	require.NoError(t, err)

	decided := tape.NewChoiceBitmap(g.NumChoices())
	decided.Set(choice, tape.WinnerLeft)

	simplified := tape.Simplify(tp, decided)
	for _, instr := range simplified.Instrs {
		require.NotEqual(t, expr.VarY, instr.VarSlot)
	}
}
