package grid

import "errors"

var (
	ErrBadExtent    = errors.New("grid extents must be at least 1 tree per axis")
	ErrBadScale     = errors.New("grid scale must be positive on every used axis")
	ErrTreeIndexOut = errors.New("tree index is outside the grid extent")
	ErrNoTree       = errors.New("no tree is instantiated at the given index")
	ErrBadPath      = errors.New("refinement path contains an out of range child slot")
)
