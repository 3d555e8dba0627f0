// Package gridtesting provides shared fixtures for exercising hyper tree
// grid traversal: canned refined grids and a canonical, from-scratch
// neighbor resolver used as the oracle for the cursors' amortized
// derivation.
package gridtesting

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/spatialkit/go-hypertreegrid/grid"
	"github.com/spatialkit/go-hypertreegrid/hypertree"
)

type TestContext struct {
	T *testing.T
	G *grid.Grid
}

// NewTestContext builds a grid with the given options and a per-test
// logger, instantiating every tree position.
func NewTestContext(t *testing.T, opts ...grid.Option) *TestContext {
	t.Helper()
	g, err := grid.New(zaptest.NewLogger(t), opts...)
	require.NoError(t, err)
	c := &TestContext{T: t, G: g}
	for i := 0; i < g.TreeCount(); i++ {
		_, err := g.TreeOrCreate(i)
		require.NoError(t, err)
	}
	return c
}

// RefineAll uniformly refines every tree of the grid to the given depth.
func (c *TestContext) RefineAll(depth int) {
	c.T.Helper()
	for i := 0; i < c.G.TreeCount(); i++ {
		c.RefineTree(i, depth)
	}
}

// RefineTree uniformly refines one tree to the given depth.
func (c *TestContext) RefineTree(treeIndex, depth int) {
	c.T.Helper()
	c.refine(treeIndex, c.G.Tree(treeIndex), hypertree.Root, depth)
}

// RefineNode splits a single leaf.
func (c *TestContext) RefineNode(treeIndex int, node int64) {
	c.T.Helper()
	require.NoError(c.T, c.G.Refine(treeIndex, node))
}

func (c *TestContext) refine(treeIndex int, tr *hypertree.Tree, node int64, depth int) {
	if depth == 0 {
		return
	}
	require.NoError(c.T, c.G.Refine(treeIndex, node))
	for slot := 0; slot < tr.ChildCount(); slot++ {
		child, err := tr.Child(node, slot)
		require.NoError(c.T, err)
		c.refine(treeIndex, tr, child, depth-1)
	}
}

// New2x2QuadtreeOnce is the canonical small scenario: a 2D grid of 2x2
// trees, each a quadtree refined once.
//
//	y
//	^
//	|  2 3
//	|  0 1     each tree holding 4 leaf children
//	+-----> x
func New2x2QuadtreeOnce(t *testing.T) *TestContext {
	t.Helper()
	c := NewTestContext(t,
		grid.WithDimension(2),
		grid.WithBranchFactor(2),
		grid.WithExtent(2, 2),
	)
	c.RefineAll(1)
	return c
}

// NewUniform builds a grid of the given shape with every tree refined to
// the same depth.
func NewUniform(t *testing.T, dimension, branchFactor, depth int, extent ...int) *TestContext {
	t.Helper()
	c := NewTestContext(t,
		grid.WithDimension(dimension),
		grid.WithBranchFactor(branchFactor),
		grid.WithExtent(extent...),
	)
	c.RefineAll(depth)
	return c
}
