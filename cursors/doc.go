package cursors

/*

# Neighbor-aware depth traversal of a hyper tree grid

This package implements the cursor family used to walk an adaptively refined
tree grid:

  - OrientedCursor: one tree, one node, descend/ascend only.
  - SuperCursor: an oriented cursor plus one neighbor cursor per face
    direction (the von Neumann neighborhood).
  - MooreCursor: the full face/edge/corner neighborhood (up to 26 neighbor
    slots in 3D, 8 in 2D), plus corner-ownership queries.

## Neighborhood slots

Neighbor slots are numbered lexicographically over per-axis offsets in
{-1,0,1}, x varying fastest: slot = (dx+1) + 3*(dy+1) + 9*(dz+1). The center
cell occupies the middle slot. In 2D:

	y
	^
	|  6 7 8
	|  3 4 5        slot 4 is the center
	|  0 1 2
	+-----> x

## Descent

Every neighbor of a child cell is a child of (or is) a cell in the parent's
neighborhood, at most one parent cell away per axis. Descending to child g
(per-axis digits g_a) the neighbor in direction d is found by computing, per
axis, t = g_a + d_a; the floor division and remainder of t by the branch
factor select which parent-level slot to step through and which of its
children to land on. When the selected parent-level neighbor does not exist
(grid boundary, or no tree instantiated there) the slot is absent; when it is
a leaf, the slot stays pinned on that leaf and records how many levels
coarser than the center it is. This makes descent O(1) per direction with no
grid lookups in the interior case; boundary crossings ride on the adjacency
the grid answered at the previous level.

The same derivation covers diagonal directions, and is order-independent:
the northeast neighbor computed through the north slot equals the one
computed through the east slot. Ascent restores the previous neighborhood
from an explicit per-level trail, and is required to reproduce exactly what
the preceding descent computed.

## Corner ownership

Filters that do per-corner work (contouring, plane cuts) need each shared
corner handled exactly once. CornerCursors returns the cursors touching a
cell corner, and whether the central cell owns the corner: the owner is the
touching cell with the lexicographically smallest (treeIndex, nodeIndex)
pair, which every touching cell agrees on.

Cursors hold non-owning references to the grid and its trees. Traversal
requires a quiescent grid: no refinement or coarsening may happen while any
cursor is live, and no locking is performed here.
*/
