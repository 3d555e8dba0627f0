package hypertree

import "errors"

var (
	ErrBadDimension    = errors.New("tree dimension must be 1, 2 or 3")
	ErrBadBranchFactor = errors.New("tree branch factor must be 2 or 3")
	ErrNodeRange       = errors.New("node index is not in the tree")
	ErrChildSlotRange  = errors.New("child slot is not valid for the tree's branch factor and dimension")
	ErrNotLeaf         = errors.New("the node is not a leaf")
	ErrNotBranch       = errors.New("the node is not a branch")
	ErrNotLeafChildren = errors.New("the node has children which are themselves branches")
	ErrBadDescriptor   = errors.New("the tree descriptor is malformed")
)
