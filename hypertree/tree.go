package hypertree

import "fmt"

// noChild marks a leaf in the firstChild store.
const noChild = int64(-1)

// Root is the node index of every tree's root.
const Root = int64(0)

// Tree is the compact store for one adaptively refined tree. The zero value
// is not usable; construct with New or FromDescriptor.
//
// A Tree provides no synchronization. Refine and Coarsen must be serialized
// by the caller, and cursors traversing the tree require it to be quiescent
// for the duration of the traversal.
type Tree struct {
	dimension    int
	branchFactor int
	childCount   int

	// firstChild[n] is the index of node n's first child, or noChild for a
	// leaf. Children of a branch are the contiguous block
	// [firstChild[n], firstChild[n]+childCount).
	firstChild []int64

	// free holds the start index of child blocks released by Coarsen, for
	// reuse by Refine. Node indices are stable but not dense once this is
	// non-empty.
	free []int64

	branches int
}

// New returns a tree consisting of a single unrefined root cell.
func New(dimension, branchFactor int) (*Tree, error) {
	if err := CheckDimension(dimension); err != nil {
		return nil, err
	}
	if err := CheckBranchFactor(branchFactor); err != nil {
		return nil, err
	}
	return &Tree{
		dimension:    dimension,
		branchFactor: branchFactor,
		childCount:   ChildrenPerNode(branchFactor, dimension),
		firstChild:   []int64{noChild},
	}, nil
}

func (t *Tree) Dimension() int    { return t.dimension }
func (t *Tree) BranchFactor() int { return t.branchFactor }

// ChildCount returns the number of children of every branch node (f^d).
func (t *Tree) ChildCount() int { return t.childCount }

// NodeCount returns the number of live nodes, excluding coarsened holes.
func (t *Tree) NodeCount() int {
	return len(t.firstChild) - len(t.free)*t.childCount
}

// LeafCount returns the number of live leaf nodes.
func (t *Tree) LeafCount() int {
	return t.NodeCount() - t.branches
}

// CheckNode validates that node is a live index in the tree.
func (t *Tree) CheckNode(node int64) error {
	if node < 0 || node >= int64(len(t.firstChild)) {
		return fmt.Errorf("%w: node %d, store size %d", ErrNodeRange, node, len(t.firstChild))
	}
	for _, blk := range t.free {
		if node >= blk && node < blk+int64(t.childCount) {
			return fmt.Errorf("%w: node %d is in a coarsened hole", ErrNodeRange, node)
		}
	}
	return nil
}

// IsLeaf reports whether node is a leaf. The node must be live in the tree:
// an out of range index panics, and an index inside a coarsened hole reads
// as a leaf even though it is not part of the tree. CheckNode is the
// liveness authority when the index is not already known to be live.
func (t *Tree) IsLeaf(node int64) bool {
	return t.firstChild[node] == noChild
}

// Child returns the node index of the given child of a branch node.
func (t *Tree) Child(node int64, slot int) (int64, error) {
	if err := t.CheckNode(node); err != nil {
		return 0, err
	}
	if t.IsLeaf(node) {
		return 0, fmt.Errorf("%w: node %d", ErrNotBranch, node)
	}
	if slot < 0 || slot >= t.childCount {
		return 0, fmt.Errorf("%w: slot %d, child count %d", ErrChildSlotRange, slot, t.childCount)
	}
	return t.firstChild[node] + int64(slot), nil
}

// Refine splits a leaf into childCount fresh leaves. A child block freed by
// an earlier Coarsen is reused before the store is grown.
func (t *Tree) Refine(node int64) error {
	if err := t.CheckNode(node); err != nil {
		return err
	}
	if !t.IsLeaf(node) {
		return fmt.Errorf("%w: node %d", ErrNotLeaf, node)
	}
	if n := len(t.free); n > 0 {
		blk := t.free[n-1]
		t.free = t.free[:n-1]
		for i := 0; i < t.childCount; i++ {
			t.firstChild[blk+int64(i)] = noChild
		}
		t.firstChild[node] = blk
	} else {
		t.firstChild[node] = int64(len(t.firstChild))
		for i := 0; i < t.childCount; i++ {
			t.firstChild = append(t.firstChild, noChild)
		}
	}
	t.branches++
	return nil
}

// Coarsen collapses a branch whose children are all leaves back into a leaf.
// If any child is itself a branch it fails with ErrNotLeafChildren; the
// caller must coarsen bottom up.
func (t *Tree) Coarsen(node int64) error {
	if err := t.CheckNode(node); err != nil {
		return err
	}
	if t.IsLeaf(node) {
		return fmt.Errorf("%w: node %d", ErrNotBranch, node)
	}
	blk := t.firstChild[node]
	for i := 0; i < t.childCount; i++ {
		if t.firstChild[blk+int64(i)] != noChild {
			return fmt.Errorf("%w: child %d of node %d", ErrNotLeafChildren, i, node)
		}
	}
	t.firstChild[node] = noChild
	t.free = append(t.free, blk)
	t.branches--
	return nil
}

// Descriptor returns a copy of the raw firstChild store, with coarsened
// holes intact. Together with FreeBlocks it fully describes the tree's
// refinement state and is what snapshots persist.
func (t *Tree) Descriptor() []int64 {
	return append([]int64(nil), t.firstChild...)
}

// FreeBlocks returns a copy of the coarsened hole list.
func (t *Tree) FreeBlocks() []int64 {
	return append([]int64(nil), t.free...)
}

// FromDescriptor reconstructs a tree from Descriptor/FreeBlocks output. The
// store is fully validated before use: every child block must be accounted
// for exactly once, either on the free list or referenced by a single
// branch reachable from the root. Cyclic, aliased or overlapping stores are
// rejected with ErrBadDescriptor rather than restored, since a traversal
// over such a store would never terminate.
func FromDescriptor(dimension, branchFactor int, descriptor, freeBlocks []int64) (*Tree, error) {
	t, err := New(dimension, branchFactor)
	if err != nil {
		return nil, err
	}
	cc := int64(t.childCount)
	if len(descriptor) == 0 || (len(descriptor)-1)%t.childCount != 0 {
		return nil, fmt.Errorf(
			"%w: store size %d is not 1 + k*%d", ErrBadDescriptor, len(descriptor), t.childCount)
	}
	branches := 0
	for n, fc := range descriptor {
		if fc == noChild {
			continue
		}
		if fc < 1 || fc+cc > int64(len(descriptor)) {
			return nil, fmt.Errorf("%w: node %d first child %d out of range", ErrBadDescriptor, n, fc)
		}
		if (fc-1)%cc != 0 {
			return nil, fmt.Errorf("%w: node %d first child %d is not block aligned", ErrBadDescriptor, n, fc)
		}
		branches++
	}

	owned := make([]bool, (len(descriptor)-1)/t.childCount)
	for _, blk := range freeBlocks {
		if blk < 1 || blk+cc > int64(len(descriptor)) || (blk-1)%cc != 0 {
			return nil, fmt.Errorf("%w: free block %d out of range", ErrBadDescriptor, blk)
		}
		b := (blk - 1) / cc
		if owned[b] {
			return nil, fmt.Errorf("%w: free block %d listed twice", ErrBadDescriptor, blk)
		}
		owned[b] = true
		for i := int64(0); i < cc; i++ {
			if descriptor[blk+i] != noChild {
				return nil, fmt.Errorf("%w: free block %d contains branch node %d", ErrBadDescriptor, blk, blk+i)
			}
		}
	}

	// walk from the root claiming each referenced block; a block claimed
	// twice is an alias or a cycle, a block claimed never is unreachable
	stack := []int64{Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fc := descriptor[n]
		if fc == noChild {
			continue
		}
		b := (fc - 1) / cc
		if owned[b] {
			return nil, fmt.Errorf(
				"%w: child block %d referenced more than once or also free", ErrBadDescriptor, fc)
		}
		owned[b] = true
		for i := int64(0); i < cc; i++ {
			stack = append(stack, fc+i)
		}
	}
	for b, ok := range owned {
		if !ok {
			return nil, fmt.Errorf(
				"%w: child block %d unreachable from the root", ErrBadDescriptor, 1+int64(b)*cc)
		}
	}

	t.firstChild = append([]int64(nil), descriptor...)
	t.free = append([]int64(nil), freeBlocks...)
	t.branches = branches
	return t, nil
}
