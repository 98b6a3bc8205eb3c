package octree_test

import (
	"testing"

	"github.com/fieldcarve/fieldcarve/octree"
	"github.com/stretchr/testify/require"
)

// noopExtractor never collapses a cluster; used for tests that only
// exercise Record/CheckDone bookkeeping, not vertex extraction.
type noopExtractor struct{}

func (noopExtractor) Leaf(bounds octree.Box, group int) ([3]float64, [3]float64, error) {
	return [3]float64{}, [3]float64{}, nil
}

func (noopExtractor) ReduceCluster(children [8]octree.Cell) (octree.Cell, bool) {
	return octree.Cell{}, false
}

func TestRecordRejectsDoubleWrite(t *testing.T) {
	b := octree.NewBuilder[int](noopExtractor{})
	base := b.Reserve(1)

	require.NoError(t, b.Record(base, octree.Empty()))
	err := b.Record(base, octree.Full())
	require.ErrorIs(t, err, octree.ErrAlreadyRecorded)
}

func TestRecordRejectsOutOfRangeIndex(t *testing.T) {
	b := octree.NewBuilder[int](noopExtractor{})
	err := b.Record(5, octree.Empty())
	require.ErrorIs(t, err, octree.ErrIndexOutOfRange)
}

func TestCheckDoneWaitsForAllEightSiblings(t *testing.T) {
	b := octree.NewBuilder[int](noopExtractor{})
	base := b.Reserve(8)

	for i := 0; i < 7; i++ {
		require.NoError(t, b.Record(base+i, octree.Empty()))
		_, done := b.CheckDone(base)
		require.False(t, done, "cluster should not be done until all 8 are recorded")
	}

	require.NoError(t, b.Record(base+7, octree.Empty()))
	result, done := b.CheckDone(base)
	require.True(t, done)
	require.Equal(t, octree.CellEmpty, result.Kind)
}

func TestCheckDoneReturnsFullWhenAllChildrenFull(t *testing.T) {
	b := octree.NewBuilder[int](noopExtractor{})
	base := b.Reserve(8)
	for i := 0; i < 8; i++ {
		require.NoError(t, b.Record(base+i, octree.Full()))
	}
	result, done := b.CheckDone(base)
	require.True(t, done)
	require.Equal(t, octree.CellFull, result.Kind)
}

func TestCheckDoneReturnsBranchWhenMixedAndNotCollapsed(t *testing.T) {
	b := octree.NewBuilder[int](noopExtractor{})
	base := b.Reserve(8)
	for i := 0; i < 8; i++ {
		if i%2 == 0 {
			require.NoError(t, b.Record(base+i, octree.Empty()))
		} else {
			require.NoError(t, b.Record(base+i, octree.Full()))
		}
	}
	result, done := b.CheckDone(base)
	require.True(t, done)
	require.Equal(t, octree.CellBranch, result.Kind)
	require.Equal(t, base, result.BranchIndex)
}

func TestBoxChildSubdividesEachAxis(t *testing.T) {
	root := octree.RootBox
	c0 := root.Child(0)
	require.Equal(t, 0.0, c0.Max[0])
	require.Equal(t, -1.0, c0.Min[0])

	c7 := root.Child(7)
	require.Equal(t, 1.0, c7.Max[0])
	require.Equal(t, 0.0, c7.Min[0])
}

func TestReserveEightAfterReserveEightStaysAligned(t *testing.T) {
	// Mirrors worker.Scheduler.Run's actual sequencing on builder 0: a
	// dedicated singleton-owner block is reserved before the first real
	// cluster reservation. The second Reserve(8) must land on an
	// 8-aligned base so CheckDone's index&^7 cluster math addresses
	// exactly the cells just reserved, not the earlier block.
	b := octree.NewBuilder[int](noopExtractor{})
	padding := b.Reserve(8)
	require.Equal(t, 0, padding)

	base := b.Reserve(8)
	require.Equal(t, 8, base, "second Reserve(8) must be 8-aligned")

	for i := 0; i < 7; i++ {
		require.NoError(t, b.Record(base+i, octree.Empty()))
		_, done := b.CheckDone(base)
		require.False(t, done, "cluster should not be done until all 8 are recorded")
	}
	require.NoError(t, b.Record(base+7, octree.Empty()))

	result, done := b.CheckDone(base)
	require.True(t, done)
	require.Equal(t, octree.CellEmpty, result.Kind)

	// The padding block's own slot (0) is still untouched by the second
	// cluster's completion.
	_, paddingDone := b.CheckDone(padding)
	require.False(t, paddingDone, "padding block has no recorded children and must never report done")
}

func TestMergeRemapsBranchIndicesByThreadOffset(t *testing.T) {
	b0 := octree.NewBuilder[int](noopExtractor{})
	b0.Reserve(8)
	require.NoError(t, b0.Record(0, octree.BranchCell(8, 1)))
	for i := 1; i < 8; i++ {
		require.NoError(t, b0.Record(i, octree.Empty()))
	}

	b1 := octree.NewBuilder[int](noopExtractor{})
	b1.Reserve(8)
	for i := 0; i < 8; i++ {
		require.NoError(t, b1.Record(i, octree.Full()))
	}

	merged := octree.Merge([]*octree.Builder[int]{b0, b1})
	require.Len(t, merged, 16)
	require.Equal(t, octree.CellBranch, merged[0].Kind)
	require.Equal(t, 16, merged[0].Index, "thread 1's base offset (8) + its local branch index (8)")
}
