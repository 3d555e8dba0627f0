package cursors

import (
	"github.com/spatialkit/go-hypertreegrid/grid"
)

// WalkLeaves visits every leaf cell of the tree at treeIndex in depth-first
// child-slot order. The visit callback may inspect the cursor but must not
// move it; returning false stops the walk early.
func WalkLeaves(g *grid.Grid, treeIndex int, visit func(c *OrientedCursor) bool) error {
	var c OrientedCursor
	if err := c.Initialize(g, treeIndex, false); err != nil {
		return err
	}
	_, err := walk(&c, visit)
	return err
}

func walk(c *OrientedCursor, visit func(c *OrientedCursor) bool) (bool, error) {
	if c.IsLeaf() {
		return visit(c), nil
	}
	for slot := 0; slot < c.ChildCount(); slot++ {
		if err := c.ToChild(slot); err != nil {
			return false, err
		}
		more, err := walk(c, visit)
		if err != nil {
			return false, err
		}
		if err := c.ToParent(); err != nil {
			return false, err
		}
		if !more {
			return false, nil
		}
	}
	return true, nil
}
