package tape_test

import (
	"testing"

	"github.com/fieldcarve/fieldcarve/expr"
	"github.com/fieldcarve/fieldcarve/tape"
	"github.com/stretchr/testify/require"
)

func allIncluded(g *expr.Graph) map[expr.NodeIndex]bool {
	m := make(map[expr.NodeIndex]bool, g.Len())
	for i := 0; i < g.Len(); i++ {
		m[expr.NodeIndex(i)] = true
	}
	return m
}

func TestBuildRequiresRootIncluded(t *testing.T) {
	g := expr.NewGraph()
	x := g.VarNode(expr.VarX)
	g.SetRoot(x)
	require.NoError(t, g.Finalize())

	_, err := tape.Build(g, map[expr.NodeIndex]bool{}, x)
	require.ErrorIs(t, err, tape.ErrRootNotIncluded)
}

func TestBuildNilGraph(t *testing.T) {
	_, err := tape.Build(nil, nil, 0)
	require.ErrorIs(t, err, tape.ErrNilGraph)
}

func TestBuildLinearizesMinOfTwoVars(t *testing.T) {
	g := expr.NewGraph()
	x := g.VarNode(expr.VarX)
	y := g.VarNode(expr.VarY)
	root, choice := g.Min(x, y)
	g.SetRoot(root)
	require.NoError(t, g.Finalize())

	tp, err := tape.Build(g, allIncluded(g), root)
	require.NoError(t, err)
	require.Equal(t, 3, tp.Len())
	require.Equal(t, tape.Reg(2), tp.Out)
	require.Equal(t, expr.OpMin, tp.Instrs[2].Op)
	require.Equal(t, choice, tp.Instrs[2].Choice)
}

func TestBuildRejectsOperandOutsideIncludedSet(t *testing.T) {
	g := expr.NewGraph()
	x := g.VarNode(expr.VarX)
	y := g.VarNode(expr.VarY)
	root, _ := g.Min(x, y)
	g.SetRoot(root)
	require.NoError(t, g.Finalize())

	partial := map[expr.NodeIndex]bool{x: true, root: true}
	_, err := tape.Build(g, partial, root)
	require.ErrorIs(t, err, tape.ErrOperandNotIncluded)
}
