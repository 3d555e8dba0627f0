// Package snapshot persists and restores the refinement state of a hyper
// tree grid: topology, geometry and per-tree descriptors, framed as a
// versioned CBOR record. Snapshots are an in-process convenience for
// checkpointing and test fixtures, not an interchange format.
package snapshot

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spatialkit/go-hypertreegrid/grid"
	"github.com/spatialkit/go-hypertreegrid/hypertree"
)

// EncOptions is the deterministic encoding configuration: identical grids
// must produce byte-identical snapshots.
var EncOptions = cbor.CanonicalEncOptions()

// DecOptions rejects unknown fields so version drift fails loudly rather
// than silently dropping state.
var DecOptions = cbor.DecOptions{
	ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
}

// Codec pairs the encode and decode modes used for snapshot payloads.
type Codec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func NewCodec() (Codec, error) {
	enc, err := EncOptions.EncMode()
	if err != nil {
		return Codec{}, err
	}
	dec, err := DecOptions.DecMode()
	if err != nil {
		return Codec{}, err
	}
	return Codec{enc: enc, dec: dec}, nil
}

// MarshalGrid encodes the grid's full refinement state.
func (c Codec) MarshalGrid(g *grid.Grid) ([]byte, error) {
	st := gridState{
		Version:      Version,
		ID:           g.ID().String(),
		Dimension:    g.Dimension(),
		BranchFactor: g.BranchFactor(),
		Trees:        map[int]treeState{},
	}
	for a := 0; a < 3; a++ {
		st.Extent[a] = g.Extent(a)
		st.Origin[a] = g.Origin(a)
		st.Scale[a] = g.Scale(a)
	}
	for _, i := range g.TreeIndices() {
		t := g.Tree(i)
		st.Trees[i] = treeState{
			Descriptor: t.Descriptor(),
			FreeBlocks: t.FreeBlocks(),
		}
	}
	return c.enc.Marshal(&st)
}

// UnmarshalGrid rebuilds a grid from a snapshot payload. The restored grid
// keeps the snapshot's identity and logs through the provided logger.
func (c Codec) UnmarshalGrid(log *zap.Logger, data []byte) (*grid.Grid, error) {
	var st gridState
	if err := c.dec.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	if st.Version != Version {
		return nil, fmt.Errorf("%w: got %d, support %d", ErrBadVersion, st.Version, Version)
	}
	id, err := uuid.Parse(st.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: grid id: %v", ErrBadSnapshot, err)
	}
	g, err := grid.New(log,
		grid.WithID(id),
		grid.WithDimension(st.Dimension),
		grid.WithBranchFactor(st.BranchFactor),
		grid.WithExtent(st.Extent[:]...),
		grid.WithOrigin(st.Origin[:]...),
		grid.WithScale(st.Scale[:]...),
	)
	if err != nil {
		return nil, err
	}
	for i, ts := range st.Trees {
		t, err := hypertree.FromDescriptor(st.Dimension, st.BranchFactor, ts.Descriptor, ts.FreeBlocks)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
		if err := g.PutTree(i, t); err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
	}
	return g, nil
}
