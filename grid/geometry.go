package grid

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/spatialkit/go-hypertreegrid/hypertree"
)

// Origin returns the world coordinate of the grid's most negative corner
// along one axis.
func (g *Grid) Origin(axis int) float32 { return g.cfg.Origin[axis] }

// Scale returns the world size of one root cell along one axis.
func (g *Grid) Scale(axis int) float32 { return g.cfg.Scale[axis] }

// CellBounds returns the world-space axis-aligned bounds of the cell reached
// from the root of the tree at treeIndex by following the given child-slot
// path. An empty path addresses the root cell, which spans one grid step.
//
// The grid is uniformly spaced: tree t at coordinates c spans
// [origin + c*scale, origin + (c+1)*scale) and each refinement divides a
// cell by the branch factor per axis.
func (g *Grid) CellBounds(treeIndex int, path []int) (minB, maxB [3]float32, err error) {
	if err = g.CheckTreeIndex(treeIndex); err != nil {
		return
	}
	f := g.cfg.BranchFactor
	children := hypertree.ChildrenPerNode(f, g.cfg.Dimension)
	for _, slot := range path {
		if slot < 0 || slot >= children {
			err = fmt.Errorf("%w: slot %d, child count %d", ErrBadPath, slot, children)
			return
		}
	}
	c := g.CoordsOf(treeIndex)
	for a := 0; a < 3; a++ {
		minB[a] = g.cfg.Origin[a] + float32(c[a])*g.cfg.Scale[a]
		maxB[a] = minB[a] + g.cfg.Scale[a]
	}
	for level, slot := range path {
		// cell width at the child level, per used axis
		shrink := math32.Pow(float32(f), float32(level+1))
		for a := 0; a < g.cfg.Dimension; a++ {
			w := g.cfg.Scale[a] / shrink
			minB[a] += float32(hypertree.DigitOfSlot(f, slot, a)) * w
			maxB[a] = minB[a] + w
		}
	}
	return
}
