package grid

import "github.com/google/uuid"

// Config collects the construction-time topology of a grid. The topology is
// fixed once New returns; only tree refinement state changes afterwards.
type Config struct {
	Dimension    int
	BranchFactor int
	Extent       [3]int
	Origin       [3]float32
	Scale        [3]float32
	ID           uuid.UUID
}

// Option is a generic option type. Options type assert to their target
// config record and are ignored if the assertion fails.
type Option func(any)

// WithDimension sets the grid dimension (1, 2 or 3).
func WithDimension(dimension int) Option {
	return func(opts any) {
		if o, ok := opts.(*Config); ok {
			o.Dimension = dimension
		}
	}
}

// WithBranchFactor sets the per-axis subdivision factor (2 or 3).
func WithBranchFactor(branchFactor int) Option {
	return func(opts any) {
		if o, ok := opts.(*Config); ok {
			o.BranchFactor = branchFactor
		}
	}
}

// WithExtent sets the number of trees per axis. Axes beyond the grid
// dimension are forced to 1.
func WithExtent(extent ...int) Option {
	return func(opts any) {
		if o, ok := opts.(*Config); ok {
			for a, e := range extent {
				if a < 3 {
					o.Extent[a] = e
				}
			}
		}
	}
}

// WithOrigin sets the world coordinate of the grid's (0,0,0) corner.
func WithOrigin(origin ...float32) Option {
	return func(opts any) {
		if o, ok := opts.(*Config); ok {
			for a, v := range origin {
				if a < 3 {
					o.Origin[a] = v
				}
			}
		}
	}
}

// WithScale sets the world size of one root cell per axis.
func WithScale(scale ...float32) Option {
	return func(opts any) {
		if o, ok := opts.(*Config); ok {
			for a, v := range scale {
				if a < 3 {
					o.Scale[a] = v
				}
			}
		}
	}
}

// WithID fixes the grid identity instead of generating one. Used when
// restoring a grid from a snapshot.
func WithID(id uuid.UUID) Option {
	return func(opts any) {
		if o, ok := opts.(*Config); ok {
			o.ID = id
		}
	}
}
