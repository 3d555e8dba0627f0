package cursors

import "errors"

var (
	ErrNotInitialized    = errors.New("cursor used before Initialize")
	ErrLeafHasNoChildren = errors.New("cannot descend, the current node is a leaf")
	ErrAlreadyAtRoot     = errors.New("cannot ascend, the cursor is at the tree root")
	ErrCornerRange       = errors.New("corner index is not valid for the grid dimension")
)
