package hypertree

/*

# Compact storage for adaptively refined trees

This package provides the per-tree node storage for a hyper tree grid: a
regular grid of independently refined trees (quadtrees in 2D, octrees in 3D,
and their branch-factor-3 variants). Each tree starts as a single root cell
and is refined by splitting a leaf into f^d equal children, where f is the
branch factor and d the dimension.

It mirrors the small-function, index-arithmetic style of merkle position
calculus packages:

- nodes are identified by plain int64 indices, the root is always node 0
- a branch's children are a contiguous block; child c of node n is
  firstChild[n] + c, so the only per-node storage is one int64
- the caller carries the burden of knowledge on hot paths: levels and paths
  are tracked by cursors, not by the tree

## Child slot numbering

A child slot encodes one base-f digit per axis, x varying fastest. For a
quadtree (d=2, f=2) the children of any branch are numbered:

	y
	^
	|  2 3
	|  0 1
	+-----> x

and for an octree slot 5 = (1,0,1) is the +x/+z corner child of the -y half.
SlotFromDigits and DigitOfSlot convert between slots and per-axis digits;
the cursor packages lean on these to do all neighbor arithmetic without any
per-grid lookup tables.

## Mutation

Refine and Coarsen are the only mutators. Coarsening leaves a hole in the
node store; holes are tracked on a free list and reused by the next Refine,
so node indices are stable but not dense after coarsening. No synchronization
is provided: callers serialize mutation, and traversal requires a quiescent
tree.
*/
