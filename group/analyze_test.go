package group_test

import (
	"testing"

	"github.com/fieldcarve/fieldcarve/expr"
	"github.com/fieldcarve/fieldcarve/group"
	"github.com/stretchr/testify/require"
)

// buildMinOfTwoHalfPlanes constructs f = min(x, y), matching spec.md's
// Scenario 4: Stage1 must have three groups with choices [Root], [Left(0)],
// [Right(0)].
func buildMinOfTwoHalfPlanes(t *testing.T) (*expr.Graph, expr.NodeIndex, expr.NodeIndex, expr.NodeIndex) {
	t.Helper()
	g := expr.NewGraph()
	x := g.VarNode(expr.VarX)
	y := g.VarNode(expr.VarY)
	root, _ := g.Min(x, y)
	g.SetRoot(root)
	require.NoError(t, g.Finalize())
	return g, x, y, root
}

func TestAnalyzeRequiresFinalizedGraph(t *testing.T) {
	g := expr.NewGraph()
	g.VarNode(expr.VarX)

	_, err := group.Analyze(g)
	require.ErrorIs(t, err, group.ErrNotFinalized)
}

func TestAnalyzeNilGraph(t *testing.T) {
	_, err := group.Analyze(nil)
	require.ErrorIs(t, err, group.ErrNilGraph)
}

func TestAnalyzeMinOfTwoHalfPlanes(t *testing.T) {
	g, x, y, root := buildMinOfTwoHalfPlanes(t)

	s1, err := group.Analyze(g)
	require.NoError(t, err)
	require.Len(t, s1.Groups, 3)

	rootGroup := s1.GroupOf(root)
	require.Equal(t, []group.Source{group.Root()}, rootGroup.Choices)

	xGroup := s1.GroupOf(x)
	require.Equal(t, []group.Source{group.Left(0)}, xGroup.Choices)

	yGroup := s1.GroupOf(y)
	require.Equal(t, []group.Source{group.Right(0)}, yGroup.Choices)
}

func TestAnalyzeCoverageEveryNodeInExactlyOneGroup(t *testing.T) {
	g, _, _, _ := buildMinOfTwoHalfPlanes(t)
	s1, err := group.Analyze(g)
	require.NoError(t, err)

	seen := make(map[expr.NodeIndex]bool)
	for _, grp := range s1.Groups {
		for _, n := range grp.Nodes {
			require.False(t, seen[n], "node %d appears in more than one group", n)
			seen[n] = true
		}
	}
	require.Len(t, seen, g.Len())
}

func TestAnalyzeKeyUniqueness(t *testing.T) {
	g, _, _, _ := buildMinOfTwoHalfPlanes(t)
	s1, err := group.Analyze(g)
	require.NoError(t, err)

	type key = string
	seenKeys := make(map[key]bool)
	for _, grp := range s1.Groups {
		k := ""
		for _, c := range grp.Choices {
			k += c.Kind.String()
		}
		require.False(t, seenKeys[k] && len(grp.Choices) > 0, "duplicate group key")
		seenKeys[k] = true
	}
}

func TestAnalyzeNormalizationMergesLeftRightIntoBoth(t *testing.T) {
	// f = min(x,y) + max(x,y): node x is reachable via Left(0) (from min)
	// AND Left(1) (from max); node "x alone" isn't shared between the two
	// choices, so build a case where the SAME subexpression is reached via
	// both sides of the SAME choice: f = min(x, x).
	g := expr.NewGraph()
	x := g.VarNode(expr.VarX)
	root, c := g.Min(x, x)
	g.SetRoot(root)
	require.NoError(t, g.Finalize())

	s1, err := group.Analyze(g)
	require.NoError(t, err)

	xGroup := s1.GroupOf(x)
	require.Equal(t, []group.Source{group.Both(c)}, xGroup.Choices)

	for _, grp := range s1.Groups {
		hasLeft, hasRight := false, false
		for _, c := range grp.Choices {
			if c.Kind == group.SourceLeft {
				hasLeft = true
			}
			if c.Kind == group.SourceRight {
				hasRight = true
			}
		}
		require.False(t, hasLeft && hasRight, "group must use Both(c), not separate Left(c)+Right(c)")
	}
}

func TestAnalyzeRootAbsorption(t *testing.T) {
	// f = x + min(x, y): x is reachable both directly from root (Source
	// Root) and via Left(0) from the min node. Root must absorb Left(0).
	g := expr.NewGraph()
	x := g.VarNode(expr.VarX)
	y := g.VarNode(expr.VarY)
	m, _ := g.Min(x, y)
	root := g.Add(x, m)
	g.SetRoot(root)
	require.NoError(t, g.Finalize())

	s1, err := group.Analyze(g)
	require.NoError(t, err)

	xGroup := s1.GroupOf(x)
	require.Equal(t, []group.Source{group.Root()}, xGroup.Choices)
}

func TestAnalyzeRootMembership(t *testing.T) {
	g, _, _, root := buildMinOfTwoHalfPlanes(t)
	s1, err := group.Analyze(g)
	require.NoError(t, err)

	require.Equal(t, []group.Source{group.Root()}, s1.GroupOf(root).Choices)
}
