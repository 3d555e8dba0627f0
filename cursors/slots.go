package cursors

// Neighborhood slot numbering: slots enumerate per-axis offsets in {-1,0,1}
// lexicographically, x varying fastest:
//
//	slot = (dx+1) + 3*(dy+1) + 9*(dz+1)
//
// truncated to the grid dimension. So a 1D neighborhood has slots 0..2 with
// center 1, a 2D neighborhood slots 0..8 with center 4, and a 3D
// neighborhood slots 0..26 with center 13.

// SlotCount returns the number of neighborhood slots for a dimension,
// including the center (3^dimension).
func SlotCount(dimension int) int {
	n := 1
	for i := 0; i < dimension; i++ {
		n *= 3
	}
	return n
}

// CenterSlot returns the slot the central cursor occupies.
func CenterSlot(dimension int) int {
	return (SlotCount(dimension) - 1) / 2
}

// SlotOfOffset composes a slot from a per-axis offset vector. Offsets on
// axes beyond the dimension are ignored and must be 0.
func SlotOfOffset(dimension int, offset [3]int) int {
	slot := 0
	stride := 1
	for a := 0; a < dimension; a++ {
		slot += (offset[a] + 1) * stride
		stride *= 3
	}
	return slot
}

// OffsetOfSlot is the inverse of SlotOfOffset.
func OffsetOfSlot(dimension, slot int) [3]int {
	var off [3]int
	for a := 0; a < dimension; a++ {
		off[a] = slot%3 - 1
		slot /= 3
	}
	return off
}

// IsFaceSlot reports whether the slot's offset has exactly one nonzero
// axis, ie whether it is a von Neumann (face) direction.
func IsFaceSlot(dimension, slot int) bool {
	off := OffsetOfSlot(dimension, slot)
	n := 0
	for a := 0; a < dimension; a++ {
		if off[a] != 0 {
			n++
		}
	}
	return n == 1
}

// floorDiv returns the floor of a/b for positive b.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// floorMod returns a - floorDiv(a,b)*b, always in [0,b) for positive b.
func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
