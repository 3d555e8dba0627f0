package hypertree

// Child slot digit calculus. A slot is a base-f number with one digit per
// axis, x varying fastest:
//
//	slot = dx + f*dy + f*f*dz
//
// For a quadtree (f=2, d=2):
//
//	y
//	^
//	|  2 3
//	|  0 1
//	+-----> x
//
// These are free functions rather than methods so the cursor layer can run
// the same arithmetic on slots that do not belong to any materialized tree.

// ChildrenPerNode returns f^d, the number of children a branch node has.
func ChildrenPerNode(branchFactor, dimension int) int {
	n := 1
	for i := 0; i < dimension; i++ {
		n *= branchFactor
	}
	return n
}

// SlotFromDigits composes a child slot from per-axis base-f digits. Only the
// first len(digits) axes contribute; missing trailing axes are treated as 0.
func SlotFromDigits(branchFactor int, digits []int) int {
	slot := 0
	stride := 1
	for _, d := range digits {
		slot += d * stride
		stride *= branchFactor
	}
	return slot
}

// DigitOfSlot extracts the base-f digit of slot for one axis (0=x, 1=y, 2=z).
func DigitOfSlot(branchFactor, slot, axis int) int {
	for i := 0; i < axis; i++ {
		slot /= branchFactor
	}
	return slot % branchFactor
}

// CheckDimension validates a grid/tree dimension.
func CheckDimension(dimension int) error {
	if dimension < 1 || dimension > 3 {
		return ErrBadDimension
	}
	return nil
}

// CheckBranchFactor validates a branch factor. Factors 2 and 3 cover the
// quadtree/octree family and their ternary variants, which is the whole
// family the grid layer supports.
func CheckBranchFactor(branchFactor int) error {
	if branchFactor < 2 || branchFactor > 3 {
		return ErrBadBranchFactor
	}
	return nil
}
