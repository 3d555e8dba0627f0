package gridtesting

import (
	"github.com/spatialkit/go-hypertreegrid/grid"
	"github.com/spatialkit/go-hypertreegrid/hypertree"
)

// Resolved is the oracle's answer for one neighbor query: the cell reached
// by moving one step in a direction from a cell named by (treeIndex, path).
type Resolved struct {
	TreeIndex  int
	NodeIndex  int64
	LevelDelta int
	// Path is the child-slot path of the resolved node within its tree.
	// When the neighbor is coarser than the queried level it is the path of
	// the pinned ancestor (len(Path) = level - LevelDelta).
	Path []int
}

// ResolveNeighbor computes, from first principles, the neighbor one step in
// the given per-axis direction from the cell at (treeIndex, path). It is
// deliberately independent of the cursor implementation: the cell's global
// in-tree coordinates are summed from the path digits, offset, carried
// across the tree boundary through grid adjacency, and re-descended from
// the neighbor tree's root. The amortized per-step derivation inside the
// super cursors must agree with this for every reachable cell.
//
// It returns false where there is no neighbor: off the grid, or no tree
// instantiated at the neighbor position.
func ResolveNeighbor(g *grid.Grid, treeIndex int, path []int, offset [3]int) (Resolved, bool) {
	dim := g.Dimension()
	f := g.BranchFactor()
	level := len(path)

	span := 1
	for i := 0; i < level; i++ {
		span *= f
	}

	// global in-tree coordinates of the cell at the queried level
	var coord, treeOff [3]int
	for a := 0; a < dim; a++ {
		x := 0
		for _, slot := range path {
			x = x*f + hypertree.DigitOfSlot(f, slot, a)
		}
		x += offset[a]
		treeOff[a] = floordiv(x, span)
		coord[a] = x - treeOff[a]*span
	}

	ni, ok := g.NeighborTree(treeIndex, treeOff)
	if !ok {
		return Resolved{}, false
	}
	t := g.Tree(ni)
	if t == nil {
		return Resolved{}, false
	}

	// re-descend the neighbor tree toward the target coordinates, stopping
	// where its refinement runs out
	r := Resolved{TreeIndex: ni, NodeIndex: hypertree.Root}
	div := span
	for l := 0; l < level; l++ {
		if t.IsLeaf(r.NodeIndex) {
			r.LevelDelta = level - l
			return r, true
		}
		div /= f
		var digits [3]int
		for a := 0; a < dim; a++ {
			digits[a] = coord[a] / div % f
		}
		slot := hypertree.SlotFromDigits(f, digits[:dim])
		child, err := t.Child(r.NodeIndex, slot)
		if err != nil {
			// unreachable with a well-formed tree; surface loudly
			panic(err)
		}
		r.NodeIndex = child
		r.Path = append(r.Path, slot)
	}
	return r, true
}

func floordiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
