package cursors

import (
	"fmt"

	"github.com/spatialkit/go-hypertreegrid/grid"
	"github.com/spatialkit/go-hypertreegrid/hypertree"
)

// OrientedCursor is the base traversal primitive: a view into one node of
// one tree, able to descend to a child and ascend back. It records the
// child-slot path from the root so ascent needs no parent links in the tree
// store.
//
// A cursor never owns the grid or tree it traverses, and is reusable:
// Initialize resets it onto any tree. The zero value is unusable until
// Initialize is called.
type OrientedCursor struct {
	g         *grid.Grid
	tree      *hypertree.Tree
	treeIndex int
	node      int64

	// trail[l] is the node occupied at level l; path[l] the slot taken to
	// leave it. The current level is len(path).
	trail []int64
	path  []int
}

// Initialize positions the cursor at the root of the tree at treeIndex. If
// create is set and the tree is not instantiated, the grid lazily creates an
// unrefined root; otherwise an uninstantiated tree is ErrNoTree. Only the
// central tree of a traversal is ever created this way.
func (c *OrientedCursor) Initialize(g *grid.Grid, treeIndex int, create bool) error {
	var t *hypertree.Tree
	var err error
	if create {
		if t, err = g.TreeOrCreate(treeIndex); err != nil {
			return err
		}
	} else {
		if err = g.CheckTreeIndex(treeIndex); err != nil {
			return err
		}
		if t = g.Tree(treeIndex); t == nil {
			return fmt.Errorf("%w: index %d", grid.ErrNoTree, treeIndex)
		}
	}
	c.g = g
	c.tree = t
	c.treeIndex = treeIndex
	c.node = hypertree.Root
	c.trail = c.trail[:0]
	c.path = c.path[:0]
	return nil
}

// ToChild moves the cursor to the given child of the current node.
func (c *OrientedCursor) ToChild(slot int) error {
	if c.tree == nil {
		return ErrNotInitialized
	}
	if c.tree.IsLeaf(c.node) {
		return fmt.Errorf("%w: tree %d node %d", ErrLeafHasNoChildren, c.treeIndex, c.node)
	}
	child, err := c.tree.Child(c.node, slot)
	if err != nil {
		return err
	}
	c.trail = append(c.trail, c.node)
	c.path = append(c.path, slot)
	c.node = child
	return nil
}

// ToParent moves the cursor back to the parent of the current node.
func (c *OrientedCursor) ToParent() error {
	if c.tree == nil {
		return ErrNotInitialized
	}
	if len(c.path) == 0 {
		return fmt.Errorf("%w: tree %d", ErrAlreadyAtRoot, c.treeIndex)
	}
	n := len(c.path)
	c.node = c.trail[n-1]
	c.trail = c.trail[:n-1]
	c.path = c.path[:n-1]
	return nil
}

// Level returns the refinement level of the current node; 0 at the root.
func (c *OrientedCursor) Level() int { return len(c.path) }

// TreeIndex returns the flat grid index of the tree being traversed.
func (c *OrientedCursor) TreeIndex() int { return c.treeIndex }

// NodeIndex returns the current node's index within its tree.
func (c *OrientedCursor) NodeIndex() int64 { return c.node }

// IsLeaf reports whether the current node is a leaf. A cursor that was
// never initialized has no node to inspect; asking panics with
// ErrNotInitialized.
func (c *OrientedCursor) IsLeaf() bool {
	if c.tree == nil {
		panic(ErrNotInitialized)
	}
	return c.tree.IsLeaf(c.node)
}

// ChildCount returns the number of children of every branch node. Panics
// with ErrNotInitialized on a cursor that was never initialized.
func (c *OrientedCursor) ChildCount() int {
	if c.tree == nil {
		panic(ErrNotInitialized)
	}
	return c.tree.ChildCount()
}

// Path returns the child-slot path from the root to the current node. The
// returned slice is shared with the cursor and valid until the next move.
func (c *OrientedCursor) Path() []int { return c.path }

// Bounds returns the world-space bounds of the current cell.
func (c *OrientedCursor) Bounds() (minB, maxB [3]float32, err error) {
	if c.tree == nil {
		err = ErrNotInitialized
		return
	}
	return c.g.CellBounds(c.treeIndex, c.path)
}
