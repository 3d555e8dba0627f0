package cursors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialkit/go-hypertreegrid/grid"
	"github.com/spatialkit/go-hypertreegrid/gridtesting"
	"github.com/spatialkit/go-hypertreegrid/hypertree"
)

func TestOrientedCursorUninitialized(t *testing.T) {
	var c OrientedCursor
	assert.ErrorIs(t, c.ToChild(0), ErrNotInitialized)
	assert.ErrorIs(t, c.ToParent(), ErrNotInitialized)
	_, _, err := c.Bounds()
	assert.ErrorIs(t, err, ErrNotInitialized)

	// the boolean accessors have no error result and fail loudly instead
	assert.PanicsWithValue(t, ErrNotInitialized, func() { c.IsLeaf() })
	assert.PanicsWithValue(t, ErrNotInitialized, func() { c.ChildCount() })
}

func TestOrientedCursorInitializeCreate(t *testing.T) {
	g, err := grid.New(nil, grid.WithDimension(2), grid.WithExtent(2, 2))
	require.NoError(t, err)

	var c OrientedCursor
	// without create, an uninstantiated tree is an error
	assert.ErrorIs(t, c.Initialize(g, 0, false), grid.ErrNoTree)
	assert.ErrorIs(t, c.Initialize(g, 7, true), grid.ErrTreeIndexOut)

	// with create, the central tree is lazily instantiated
	require.NoError(t, c.Initialize(g, 0, true))
	assert.NotNil(t, g.Tree(0))
	assert.Equal(t, 0, c.Level())
	assert.Equal(t, 0, c.TreeIndex())
	assert.Equal(t, hypertree.Root, c.NodeIndex())
	assert.True(t, c.IsLeaf())
}

func TestOrientedCursorDescendAscend(t *testing.T) {
	tc := gridtesting.NewUniform(t, 2, 2, 2, 2, 2)

	var c OrientedCursor
	require.NoError(t, c.Initialize(tc.G, 0, false))

	assert.ErrorIs(t, c.ToParent(), ErrAlreadyAtRoot)

	require.NoError(t, c.ToChild(3))
	assert.Equal(t, 1, c.Level())
	assert.Equal(t, int64(4), c.NodeIndex())
	assert.Equal(t, []int{3}, c.Path())

	require.NoError(t, c.ToChild(0))
	assert.Equal(t, 2, c.Level())
	assert.ErrorIs(t, c.ToChild(0), ErrLeafHasNoChildren)
	_, err := c.tree.Child(c.node, 9)
	assert.ErrorIs(t, err, hypertree.ErrChildSlotRange)

	require.NoError(t, c.ToParent())
	assert.Equal(t, 1, c.Level())
	assert.Equal(t, int64(4), c.NodeIndex())
	require.NoError(t, c.ToParent())
	assert.Equal(t, hypertree.Root, c.NodeIndex())

	// cursors are reusable across trees
	require.NoError(t, c.Initialize(tc.G, 3, false))
	assert.Equal(t, 3, c.TreeIndex())
	assert.Equal(t, 0, c.Level())
	assert.Empty(t, c.Path())
}

func TestOrientedCursorBounds(t *testing.T) {
	tc := gridtesting.New2x2QuadtreeOnce(t)

	var c OrientedCursor
	require.NoError(t, c.Initialize(tc.G, 0, false))
	require.NoError(t, c.ToChild(3))
	minB, maxB, err := c.Bounds()
	require.NoError(t, err)
	assert.Equal(t, [3]float32{0.5, 0.5, 0}, minB)
	assert.Equal(t, [3]float32{1, 1, 1}, maxB)
}

func TestWalkLeaves(t *testing.T) {
	tc := gridtesting.NewUniform(t, 2, 2, 2, 1, 1)

	var levels []int
	require.NoError(t, WalkLeaves(tc.G, 0, func(c *OrientedCursor) bool {
		require.True(t, c.IsLeaf())
		levels = append(levels, c.Level())
		return true
	}))
	assert.Len(t, levels, 16)
	for _, l := range levels {
		assert.Equal(t, 2, l)
	}

	// early stop
	n := 0
	require.NoError(t, WalkLeaves(tc.G, 0, func(c *OrientedCursor) bool {
		n++
		return n < 5
	}))
	assert.Equal(t, 5, n)

	assert.ErrorIs(t, WalkLeaves(tc.G, 9, func(*OrientedCursor) bool { return true }),
		grid.ErrTreeIndexOut)
}
