package cursors

import (
	"fmt"

	"github.com/spatialkit/go-hypertreegrid/grid"
)

// MooreCursor extends SuperCursor to the full Moore neighborhood: every
// cell sharing a face, edge or corner with the central cell, up to 26
// neighbor slots in 3D and 8 in 2D. Diagonal slots are derived by the same
// per-axis arithmetic as face slots, which makes their value independent of
// the order the axis steps are composed in.
type MooreCursor struct {
	SuperCursor
}

// Initialize positions the cursor at the root of the tree at treeIndex and
// builds the root-level Moore neighborhood.
func (c *MooreCursor) Initialize(g *grid.Grid, treeIndex int, create bool) error {
	return c.initialize(g, treeIndex, create, true)
}

// NeighborSlot returns the neighborhood slot by number (see SlotOfOffset
// for the numbering; the center slot returns the central cell itself). It
// returns false for absent and out-of-range slots.
func (c *MooreCursor) NeighborSlot(slot int) (NeighborRef, bool) {
	if slot < 0 || slot >= len(c.hood.slots) {
		return NeighborRef{}, false
	}
	return c.hood.ref(slot)
}

// NeighborAt returns the neighbor one cell away by per-axis offset, each in
// {-1,0,1}. Offsets on axes beyond the grid dimension must be 0.
func (c *MooreCursor) NeighborAt(offset [3]int) (NeighborRef, bool) {
	if len(c.hood.slots) == 0 {
		return NeighborRef{}, false
	}
	for a := 0; a < 3; a++ {
		if offset[a] < -1 || offset[a] > 1 {
			return NeighborRef{}, false
		}
		if a >= c.hood.dim && offset[a] != 0 {
			return NeighborRef{}, false
		}
	}
	return c.hood.ref(SlotOfOffset(c.hood.dim, offset))
}

// Neighbors returns all present neighbor slots, center excluded, in slot
// order.
func (c *MooreCursor) Neighbors() []NeighborRef {
	out := make([]NeighborRef, 0, len(c.hood.active))
	for _, s := range c.hood.active {
		if ref, ok := c.hood.ref(s); ok {
			out = append(out, ref)
		}
	}
	return out
}

// CornerCursors returns the cursors referencing every cell that touches the
// given corner of the central cell, the center included, and reports
// whether the central cell owns that corner.
//
// Corners are numbered by per-axis bits, x lowest: corner 0 is the cell's
// most negative corner, corner 2^dim-1 the most positive. A corner of a 2D
// cell touches at most 4 cells, of a 3D cell at most 8; at grid boundaries
// only the subset that exists is returned. A coarser neighbor spanning
// several touching positions is returned once.
//
// Ownership goes to the touching cell with the lexicographically smallest
// (tree index, node index) pair. Every cell touching the corner computes
// the same owner, so filters doing per-corner work (contouring, plane
// cutting) can process each shared corner exactly once.
func (c *MooreCursor) CornerCursors(corner int) ([]NeighborRef, bool, error) {
	if len(c.hood.slots) == 0 {
		return nil, false, ErrNotInitialized
	}
	dim := c.hood.dim
	if corner < 0 || corner >= 1<<dim {
		return nil, false, fmt.Errorf("%w: corner %d in %dd", ErrCornerRange, corner, dim)
	}

	var touching []NeighborRef
	seen := func(ref NeighborRef) bool {
		for _, have := range touching {
			if have.TreeIndex == ref.TreeIndex && have.NodeIndex == ref.NodeIndex {
				return true
			}
		}
		return false
	}

	// enumerate the 2^dim offset combinations with each axis either 0 or
	// one step toward the corner
	for m := 0; m < 1<<dim; m++ {
		var off [3]int
		for a := 0; a < dim; a++ {
			if m>>a&1 == 1 {
				if corner>>a&1 == 1 {
					off[a] = 1
				} else {
					off[a] = -1
				}
			}
		}
		ref, ok := c.hood.ref(SlotOfOffset(dim, off))
		if !ok || seen(ref) {
			continue
		}
		touching = append(touching, ref)
	}

	center, _ := c.hood.ref(CenterSlot(dim))
	owner := touching[0]
	for _, ref := range touching[1:] {
		if ref.TreeIndex < owner.TreeIndex ||
			(ref.TreeIndex == owner.TreeIndex && ref.NodeIndex < owner.NodeIndex) {
			owner = ref
		}
	}
	owned := owner.TreeIndex == center.TreeIndex && owner.NodeIndex == center.NodeIndex
	return touching, owned, nil
}
