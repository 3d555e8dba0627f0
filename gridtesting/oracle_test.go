package gridtesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialkit/go-hypertreegrid/grid"
)

func TestResolveNeighbor(t *testing.T) {
	tc := New2x2QuadtreeOnce(t)

	// from tree 0's +x/+y child, one step east lands in tree 1's nearest
	// column
	r, ok := ResolveNeighbor(tc.G, 0, []int{3}, [3]int{1, 0, 0})
	require.True(t, ok)
	assert.Equal(t, 1, r.TreeIndex)
	assert.Equal(t, int64(3), r.NodeIndex)
	assert.Equal(t, 0, r.LevelDelta)
	assert.Equal(t, []int{2}, r.Path)

	// the diagonal step crosses two tree boundaries at once
	r, ok = ResolveNeighbor(tc.G, 0, []int{3}, [3]int{1, 1, 0})
	require.True(t, ok)
	assert.Equal(t, 3, r.TreeIndex)
	assert.Equal(t, int64(1), r.NodeIndex)
	assert.Equal(t, []int{0}, r.Path)

	// off the grid there is nothing
	_, ok = ResolveNeighbor(tc.G, 0, []int{0}, [3]int{-1, 0, 0})
	assert.False(t, ok)

	// a coarser neighbor pins at its deepest ancestor
	uc := NewTestContext(t,
		grid.WithDimension(2),
		grid.WithBranchFactor(2),
		grid.WithExtent(2, 1),
	)
	uc.RefineTree(0, 2)
	r, ok = ResolveNeighbor(uc.G, 0, []int{1, 1}, [3]int{1, 0, 0})
	require.True(t, ok)
	assert.Equal(t, 1, r.TreeIndex)
	assert.Equal(t, int64(0), r.NodeIndex)
	assert.Equal(t, 2, r.LevelDelta)
	assert.Empty(t, r.Path)
}
