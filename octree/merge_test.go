package octree_test

import (
	"testing"

	"github.com/fieldcarve/fieldcarve/octree"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestMergeConcatenatesNonBranchCellsVerbatim(t *testing.T) {
	b0 := octree.NewBuilder[int](noopExtractor{})
	b0.Reserve(2)
	require.NoError(t, b0.Record(0, octree.Empty()))
	require.NoError(t, b0.Record(1, octree.Full()))

	b1 := octree.NewBuilder[int](noopExtractor{})
	b1.Reserve(2)
	require.NoError(t, b1.Record(0, octree.LeafCell([3]float64{1, 2, 3}, [3]float64{0, 0, 1})))
	require.NoError(t, b1.Record(1, octree.Empty()))

	merged := octree.Merge([]*octree.Builder[int]{b0, b1})

	want := []octree.Cell{
		octree.Empty(),
		octree.Full(),
		octree.LeafCell([3]float64{1, 2, 3}, [3]float64{0, 0, 1}),
		octree.Empty(),
	}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merged cells mismatch (-want +got):\n%s", diff)
	}
}
