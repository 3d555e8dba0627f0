package cursors

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialkit/go-hypertreegrid/grid"
	"github.com/spatialkit/go-hypertreegrid/gridtesting"
	"github.com/spatialkit/go-hypertreegrid/hypertree"
)

// checkAgainstOracle verifies every neighborhood slot of the cursor's
// current position against the from-scratch resolver.
func checkAgainstOracle(t *testing.T, tc *gridtesting.TestContext, c *MooreCursor) {
	t.Helper()
	dim := tc.G.Dimension()
	for s := 0; s < SlotCount(dim); s++ {
		if s == CenterSlot(dim) {
			continue
		}
		ref, ok := c.NeighborSlot(s)
		want, wantOk := gridtesting.ResolveNeighbor(tc.G, c.TreeIndex(), c.Path(), OffsetOfSlot(dim, s))
		where := fmt.Sprintf("tree %d path %v slot %d", c.TreeIndex(), c.Path(), s)
		require.Equal(t, wantOk, ok, where)
		if !ok {
			continue
		}
		assert.Equal(t, want.TreeIndex, ref.TreeIndex, where)
		assert.Equal(t, want.NodeIndex, ref.NodeIndex, where)
		assert.Equal(t, want.LevelDelta, ref.LevelDelta, where)
	}
}

// sweep exhaustively descends every cell of the central tree, checking the
// whole neighborhood at every position.
func sweep(t *testing.T, tc *gridtesting.TestContext, c *MooreCursor) {
	t.Helper()
	checkAgainstOracle(t, tc, c)
	if c.IsLeaf() {
		return
	}
	for slot := 0; slot < c.ChildCount(); slot++ {
		require.NoError(t, c.ToChild(slot))
		sweep(t, tc, c)
		require.NoError(t, c.ToParent())
	}
}

func sweepAllTrees(t *testing.T, tc *gridtesting.TestContext) {
	t.Helper()
	var c MooreCursor
	for i := 0; i < tc.G.TreeCount(); i++ {
		require.NoError(t, c.Initialize(tc.G, i, false))
		sweep(t, tc, &c)
	}
}

func TestMooreAgainstOracleUniform2D(t *testing.T) {
	sweepAllTrees(t, gridtesting.NewUniform(t, 2, 2, 2, 3, 2))
}

func TestMooreAgainstOracleUniform3D(t *testing.T) {
	sweepAllTrees(t, gridtesting.NewUniform(t, 3, 2, 1, 2, 2, 2))
}

func TestMooreAgainstOracleUniform1D(t *testing.T) {
	sweepAllTrees(t, gridtesting.NewUniform(t, 1, 2, 2, 4))
}

func TestMooreAgainstOracleTernary(t *testing.T) {
	sweepAllTrees(t, gridtesting.NewUniform(t, 2, 3, 1, 2, 2))
}

func TestMooreAgainstOracleUnevenRefinement(t *testing.T) {
	// 2x2 grid with every tree at a different depth, plus one extra split
	// inside tree 0, so the sweep crosses coarser and finer faces in every
	// direction
	tc := gridtesting.NewTestContext(t,
		grid.WithDimension(2),
		grid.WithBranchFactor(2),
		grid.WithExtent(2, 2),
	)
	tc.RefineTree(0, 2)
	tc.RefineTree(1, 1)
	tc.RefineTree(3, 1)
	// tree 2 stays an unrefined root; deepen tree 0's +x/+y corner once more
	tr := tc.G.Tree(0)
	node, err := tr.Child(hypertree.Root, 3)
	require.NoError(t, err)
	node, err = tr.Child(node, 3)
	require.NoError(t, err)
	tc.RefineNode(0, node)

	sweepAllTrees(t, tc)
}

func TestMooreDiagonalAcrossTrees(t *testing.T) {
	// the concrete scenario: 2x2 trees, quadtrees refined once; from tree
	// (0,0) descend to the corner child nearest tree (1,1)
	tc := gridtesting.New2x2QuadtreeOnce(t)

	var c MooreCursor
	require.NoError(t, c.Initialize(tc.G, 0, false))
	require.NoError(t, c.ToChild(3))

	diag, ok := c.NeighborAt([3]int{1, 1, 0})
	require.True(t, ok)
	assert.Equal(t, 3, diag.TreeIndex)
	assert.Equal(t, int64(1), diag.NodeIndex, "nearest child of tree (1,1)")
	assert.Equal(t, 0, diag.LevelDelta)
}

// composeAxisSteps resolves a diagonal neighbor by taking its axis steps one
// at a time in the given order, through the oracle. Every intermediate cell
// must exist at the same level for the composition to be well defined.
func composeAxisSteps(t *testing.T, g *grid.Grid, treeIndex int, path []int, steps [][3]int) (int, int64) {
	t.Helper()
	cur := gridtesting.Resolved{TreeIndex: treeIndex, Path: append([]int(nil), path...)}
	for _, step := range steps {
		r, ok := gridtesting.ResolveNeighbor(g, cur.TreeIndex, cur.Path, step)
		require.True(t, ok)
		require.Zero(t, r.LevelDelta, "intermediate cell must be at the queried level")
		cur = r
	}
	return cur.TreeIndex, cur.NodeIndex
}

func TestMooreDiagonalCompositionCommutes(t *testing.T) {
	tc := gridtesting.NewUniform(t, 3, 2, 2, 2, 2, 2)

	var c MooreCursor
	require.NoError(t, c.Initialize(tc.G, 0, false))
	require.NoError(t, c.ToChild(7))
	require.NoError(t, c.ToChild(7))

	x := [3]int{1, 0, 0}
	y := [3]int{0, 1, 0}
	z := [3]int{0, 0, 1}

	// the full corner diagonal, via several axis orders
	diag, ok := c.NeighborAt([3]int{1, 1, 1})
	require.True(t, ok)
	for _, steps := range [][][3]int{
		{x, y, z},
		{z, y, x},
		{y, x, z},
		{x, z, y},
	} {
		ti, ni := composeAxisSteps(t, tc.G, c.TreeIndex(), c.Path(), steps)
		assert.Equal(t, diag.TreeIndex, ti)
		assert.Equal(t, diag.NodeIndex, ni)
	}

	// an edge diagonal likewise
	edge, ok := c.NeighborAt([3]int{1, 0, 1})
	require.True(t, ok)
	for _, steps := range [][][3]int{{x, z}, {z, x}} {
		ti, ni := composeAxisSteps(t, tc.G, c.TreeIndex(), c.Path(), steps)
		assert.Equal(t, edge.TreeIndex, ti)
		assert.Equal(t, edge.NodeIndex, ni)
	}
}

// mooreState captures everything a round trip must restore.
type mooreState struct {
	treeIndex int
	node      int64
	level     int
	slots     []NeighborRef
	present   []bool
}

func captureMoore(c *MooreCursor) mooreState {
	st := mooreState{
		treeIndex: c.TreeIndex(),
		node:      c.NodeIndex(),
		level:     c.Level(),
	}
	n := SlotCount(c.hood.dim)
	st.slots = make([]NeighborRef, n)
	st.present = make([]bool, n)
	for s := 0; s < n; s++ {
		st.slots[s], st.present[s] = c.NeighborSlot(s)
	}
	return st
}

func TestMooreDescendAscendIsIdentity(t *testing.T) {
	tc := gridtesting.NewUniform(t, 2, 2, 3, 2, 2)

	var c MooreCursor
	require.NoError(t, c.Initialize(tc.G, 0, false))

	rng := rand.New(rand.NewSource(42))
	var stack []mooreState
	for i := 0; i < 500; i++ {
		if !c.IsLeaf() && (c.Level() == 0 || rng.Intn(10) < 7) {
			stack = append(stack, captureMoore(&c))
			require.NoError(t, c.ToChild(rng.Intn(c.ChildCount())))
			continue
		}
		require.NoError(t, c.ToParent())
		want := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		assert.Equal(t, want, captureMoore(&c))
	}
}
