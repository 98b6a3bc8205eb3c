package eval_test

import (
	"testing"

	"github.com/fieldcarve/fieldcarve/eval"
	"github.com/fieldcarve/fieldcarve/expr"
	"github.com/fieldcarve/fieldcarve/tape"
	"github.com/stretchr/testify/require"
)

func buildSphere(t *testing.T) *tape.Tape {
	t.Helper()
	g := expr.NewGraph()
	x := g.VarNode(expr.VarX)
	y := g.VarNode(expr.VarY)
	z := g.VarNode(expr.VarZ)
	root := g.Sub(g.Add(g.Add(g.Square(x), g.Square(y)), g.Square(z)), g.Const(0.25))
	g.SetRoot(root)
	require.NoError(t, g.Finalize())

	included := make(map[expr.NodeIndex]bool, g.Len())
	for i := 0; i < g.Len(); i++ {
		included[expr.NodeIndex(i)] = true
	}
	tp, err := tape.Build(g, included, root)
	require.NoError(t, err)
	return tp
}

func TestInterpreterEvalFloatSphere(t *testing.T) {
	tp := buildSphere(t)
	in, err := eval.NewInterpreter(tp)
	require.NoError(t, err)

	v, err := in.EvalFloat(0, 0, 0)
	require.NoError(t, err)
	require.InDelta(t, -0.25, v, 1e-9)

	v, err = in.EvalFloat(1, 0, 0)
	require.NoError(t, err)
	require.InDelta(t, 0.75, v, 1e-9)
}

func TestInterpreterEvalArrayMatchesEvalFloat(t *testing.T) {
	tp := buildSphere(t)
	in, err := eval.NewInterpreter(tp)
	require.NoError(t, err)

	var xs, ys, zs [eval.ArraySize]float64
	for i := range xs {
		xs[i] = float64(i) * 0.1
	}
	out, err := in.EvalArray(xs, ys, zs)
	require.NoError(t, err)

	for i := range out {
		want, err := in.EvalFloat(xs[i], ys[i], zs[i])
		require.NoError(t, err)
		require.InDelta(t, want, out[i], 1e-9)
	}
}

func TestInterpreterEvalIntervalMinOfTwoHalfPlanesDecidesChoice(t *testing.T) {
	g := expr.NewGraph()
	x := g.VarNode(expr.VarX)
	y := g.VarNode(expr.VarY)
	root, choice := g.Min(x, y)
	g.SetRoot(root)
	require.NoError(t, g.Finalize())

	included := make(map[expr.NodeIndex]bool, g.Len())
	for i := 0; i < g.Len(); i++ {
		included[expr.NodeIndex(i)] = true
	}
	tp, err := tape.Build(g, included, root)
	require.NoError(t, err)

	in, err := eval.NewInterpreter(tp)
	require.NoError(t, err)

	choices := tape.NewChoiceBitmap(g.NumChoices())
	result, err := in.EvalInterval(
		eval.Interval{Lo: -2, Hi: -1},
		eval.Interval{Lo: 1, Hi: 2},
		eval.Interval{},
		choices,
	)
	require.NoError(t, err)
	require.Equal(t, -2.0, result.Lo)
	require.Equal(t, -1.0, result.Hi)
	require.Equal(t, tape.WinnerLeft, choices.Get(choice))
}

func TestInterpreterSimplifyProducesSmallerTape(t *testing.T) {
	g := expr.NewGraph()
	x := g.VarNode(expr.VarX)
	y := g.VarNode(expr.VarY)
	root, choice := g.Min(x, y)
	g.SetRoot(root)
	require.NoError(t, g.Finalize())

	included := make(map[expr.NodeIndex]bool, g.Len())
	for i := 0; i < g.Len(); i++ {
		included[expr.NodeIndex(i)] = true
	}
	tp, err := tape.Build(g, included, root)
	require.NoError(t, err)

	in, err := eval.NewInterpreter(tp)
	require.NoError(t, err)

	choices := tape.NewChoiceBitmap(g.NumChoices())
	choices.Set(choice, tape.WinnerLeft)

	simplifiedBackend, simplifiedTape, err := in.Simplify(choices)
	require.NoError(t, err)
	require.Equal(t, 1, simplifiedTape.Len())

	v, err := simplifiedBackend.EvalFloat(5, 100, 0)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)
}
