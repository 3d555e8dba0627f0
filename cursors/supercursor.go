package cursors

import (
	"github.com/spatialkit/go-hypertreegrid/grid"
)

// NeighborRef is the public view of one neighborhood slot: which cell it
// references and how many levels coarser than the central cursor it is
// (LevelDelta 0 means the neighbor is at the center's level).
type NeighborRef struct {
	Slot       int
	TreeIndex  int
	NodeIndex  int64
	LevelDelta int
}

// SuperCursor tracks a central cell and its von Neumann (face-adjacent)
// neighborhood while descending and ascending a hyper tree grid. Neighbor
// slots are recomputed on every move; a slot is absent at the grid boundary
// and pinned with a level difference where the neighbor tree is less
// refined than the center.
//
// Like all cursors, a SuperCursor holds non-owning references and requires
// the grid to be quiescent while it is live.
type SuperCursor struct {
	center OrientedCursor
	hood   neighborhood
}

// Initialize positions the cursor at the root of the tree at treeIndex and
// builds the root-level neighborhood. The create flag lazily instantiates
// the central tree only; neighbor positions without a tree read as absent.
func (c *SuperCursor) Initialize(g *grid.Grid, treeIndex int, create bool) error {
	return c.initialize(g, treeIndex, create, false)
}

func (c *SuperCursor) initialize(g *grid.Grid, treeIndex int, create, moore bool) error {
	if err := c.center.Initialize(g, treeIndex, create); err != nil {
		return err
	}
	c.hood.init(g, treeIndex, c.center.tree, moore)
	return nil
}

// ToChild advances the central cursor to the given child and derives the
// child-level neighborhood from the current one.
func (c *SuperCursor) ToChild(slot int) error {
	if err := c.center.ToChild(slot); err != nil {
		return err
	}
	c.hood.descend(slot)
	return nil
}

// ToParent moves the central cursor back to its parent and restores the
// parent-level neighborhood exactly as the preceding ToChild computed it.
func (c *SuperCursor) ToParent() error {
	if err := c.center.ToParent(); err != nil {
		return err
	}
	c.hood.ascend()
	return nil
}

// Central cell accessors.

func (c *SuperCursor) Level() int       { return c.center.Level() }
func (c *SuperCursor) TreeIndex() int   { return c.center.TreeIndex() }
func (c *SuperCursor) NodeIndex() int64 { return c.center.NodeIndex() }
func (c *SuperCursor) IsLeaf() bool     { return c.center.IsLeaf() }
func (c *SuperCursor) ChildCount() int  { return c.center.ChildCount() }
func (c *SuperCursor) Path() []int      { return c.center.Path() }

// Bounds returns the world-space bounds of the central cell.
func (c *SuperCursor) Bounds() (minB, maxB [3]float32, err error) {
	return c.center.Bounds()
}

// Neighbor returns the face neighbor one step along the given axis (sign -1
// or +1). It returns false when the neighbor is absent, or when axis/sign do
// not name a face direction of the grid.
func (c *SuperCursor) Neighbor(axis, sign int) (NeighborRef, bool) {
	if axis < 0 || axis >= c.hood.dim || (sign != -1 && sign != 1) {
		return NeighborRef{}, false
	}
	var off [3]int
	off[axis] = sign
	return c.hood.ref(SlotOfOffset(c.hood.dim, off))
}

// HasNeighbor reports whether the face neighbor along axis exists.
func (c *SuperCursor) HasNeighbor(axis, sign int) bool {
	_, ok := c.Neighbor(axis, sign)
	return ok
}

// NeighborLevelDelta returns how many levels coarser the face neighbor is
// than the center, and whether it exists at all.
func (c *SuperCursor) NeighborLevelDelta(axis, sign int) (int, bool) {
	ref, ok := c.Neighbor(axis, sign)
	return ref.LevelDelta, ok
}
