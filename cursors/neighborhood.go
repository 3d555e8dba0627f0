package cursors

import (
	"github.com/spatialkit/go-hypertreegrid/grid"
	"github.com/spatialkit/go-hypertreegrid/hypertree"
)

// neighborSlot is the state of one neighborhood direction. An absent slot
// means there is no cell there: either the direction leaves the grid, or no
// tree is instantiated in the neighboring position.
//
// levelDelta counts how many levels coarser than the central cursor the
// referenced node is. It becomes nonzero when the neighbor's refinement
// stops short of the center's: the slot stays pinned on the deepest
// available leaf while the center keeps descending.
type neighborSlot struct {
	present    bool
	treeIndex  int
	tree       *hypertree.Tree
	node       int64
	levelDelta int
}

// neighborhood maintains the neighbor slots of a super cursor. The same
// machinery serves the von Neumann and Moore variants; the only difference
// is which slots are active. Slots are held in the full 3^dim array so slot
// numbers are stable across both variants; inactive slots stay absent.
type neighborhood struct {
	g      *grid.Grid
	dim    int
	f      int
	slots  []neighborSlot
	active []int

	// trail holds the slot states of every ancestor level, pushed by
	// descend and popped by ascend, so ascent reproduces exactly the
	// neighborhoods the preceding descents computed.
	trail [][]neighborSlot
}

func (h *neighborhood) init(g *grid.Grid, treeIndex int, center *hypertree.Tree, moore bool) {
	h.g = g
	h.dim = g.Dimension()
	h.f = g.BranchFactor()
	n := SlotCount(h.dim)
	h.slots = make([]neighborSlot, n)
	h.trail = h.trail[:0]

	h.active = h.active[:0]
	for s := 0; s < n; s++ {
		if s == CenterSlot(h.dim) || (!moore && !IsFaceSlot(h.dim, s)) {
			continue
		}
		h.active = append(h.active, s)
	}

	h.slots[CenterSlot(h.dim)] = neighborSlot{
		present:   true,
		treeIndex: treeIndex,
		tree:      center,
		node:      hypertree.Root,
	}
	for _, s := range h.active {
		ni, ok := g.NeighborTree(treeIndex, OffsetOfSlot(h.dim, s))
		if !ok {
			continue
		}
		t := g.Tree(ni)
		if t == nil {
			// the create flag of Initialize applies to the central tree
			// only; an uninstantiated neighbor holds no data
			continue
		}
		h.slots[s] = neighborSlot{present: true, treeIndex: ni, tree: t, node: hypertree.Root}
	}
}

// descend advances every slot to the child level, the center moving to
// childSlot. Each new neighbor is derived from the previous level's
// neighborhood alone: per axis, the sum of the child digit and the
// direction offset floor-divides by the branch factor into which
// parent-level slot to step through, and the remainder is the child digit
// to land on. No grid lookups happen here; tree-boundary adjacency was
// already resolved when the parent-level neighborhood was built.
func (h *neighborhood) descend(childSlot int) {
	prev := h.slots
	next := make([]neighborSlot, len(prev))

	var digits [3]int
	for a := 0; a < h.dim; a++ {
		digits[a] = hypertree.DigitOfSlot(h.f, childSlot, a)
	}

	step := func(s int) neighborSlot {
		off := OffsetOfSlot(h.dim, s)
		var parentOff, childDigits [3]int
		for a := 0; a < h.dim; a++ {
			t := digits[a] + off[a]
			parentOff[a] = floorDiv(t, h.f)
			childDigits[a] = floorMod(t, h.f)
		}
		p := prev[SlotOfOffset(h.dim, parentOff)]
		switch {
		case !p.present:
			return neighborSlot{}
		case p.levelDelta > 0 || p.tree.IsLeaf(p.node):
			// refinement stops short of the center's level: pin the slot
			// on the deepest available node
			p.levelDelta++
			return p
		default:
			child, err := p.tree.Child(p.node, hypertree.SlotFromDigits(h.f, childDigits[:h.dim]))
			if err != nil {
				// p is a live branch and every child digit is < f; only a
				// tree mutated mid-traversal can get here
				panic(err)
			}
			return neighborSlot{present: true, treeIndex: p.treeIndex, tree: p.tree, node: child}
		}
	}

	next[CenterSlot(h.dim)] = step(CenterSlot(h.dim))
	for _, s := range h.active {
		next[s] = step(s)
	}

	h.trail = append(h.trail, prev)
	h.slots = next
}

// ascend restores the parent-level neighborhood.
func (h *neighborhood) ascend() {
	n := len(h.trail)
	h.slots = h.trail[n-1]
	h.trail = h.trail[:n-1]
}

// ref packages a slot for the public API.
func (h *neighborhood) ref(s int) (NeighborRef, bool) {
	sl := h.slots[s]
	if !sl.present {
		return NeighborRef{}, false
	}
	return NeighborRef{
		Slot:       s,
		TreeIndex:  sl.treeIndex,
		NodeIndex:  sl.node,
		LevelDelta: sl.levelDelta,
	}, true
}
