// Package grid maps a logical 1/2/3 dimensional arrangement of adaptively
// refined trees to tree instances, and answers the adjacency queries the
// cursor layer composes with in-tree child addressing.
//
// Adjacency between trees is a pure function of grid coordinates and
// dimensionality; a missing neighbor at the grid boundary is an explicit
// "no neighbor" result, never an error. Trees are instantiated lazily: an
// uninstantiated tree holds no data, and cursors treat it as absent.
package grid

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spatialkit/go-hypertreegrid/hypertree"
)

// Grid owns the trees of a hyper tree grid and their shared topology.
//
// Refine and Coarsen must be serialized by the caller, and no tree may be
// mutated while any cursor is traversing the grid.
type Grid struct {
	cfg   Config
	trees map[int]*hypertree.Tree
	log   *zap.Logger
}

// New builds an empty grid. The zero Config is completed with a 3D, branch
// factor 2, single-tree, unit-scale topology; a nil logger is replaced with
// a no-op logger.
func New(log *zap.Logger, opts ...Option) (*Grid, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cfg := Config{
		Dimension:    3,
		BranchFactor: 2,
		Extent:       [3]int{1, 1, 1},
		Scale:        [3]float32{1, 1, 1},
	}
	for _, o := range opts {
		o(&cfg)
	}
	if err := hypertree.CheckDimension(cfg.Dimension); err != nil {
		return nil, err
	}
	if err := hypertree.CheckBranchFactor(cfg.BranchFactor); err != nil {
		return nil, err
	}
	for a := cfg.Dimension; a < 3; a++ {
		cfg.Extent[a] = 1
		cfg.Origin[a] = 0
		cfg.Scale[a] = 1
	}
	for a := 0; a < cfg.Dimension; a++ {
		if cfg.Extent[a] < 1 {
			return nil, fmt.Errorf("%w: axis %d extent %d", ErrBadExtent, a, cfg.Extent[a])
		}
		if cfg.Scale[a] <= 0 {
			return nil, fmt.Errorf("%w: axis %d scale %v", ErrBadScale, a, cfg.Scale[a])
		}
	}
	if cfg.ID == uuid.Nil {
		cfg.ID = uuid.New()
	}
	g := &Grid{
		cfg:   cfg,
		trees: make(map[int]*hypertree.Tree),
		log:   log,
	}
	log.Debug("grid created",
		zap.String("id", cfg.ID.String()),
		zap.Int("dimension", cfg.Dimension),
		zap.Int("branchFactor", cfg.BranchFactor),
		zap.Ints("extent", cfg.Extent[:cfg.Dimension]))
	return g, nil
}

func (g *Grid) ID() uuid.UUID     { return g.cfg.ID }
func (g *Grid) Dimension() int    { return g.cfg.Dimension }
func (g *Grid) BranchFactor() int { return g.cfg.BranchFactor }

// Extent returns the number of trees along one axis. Axes beyond the grid
// dimension have extent 1.
func (g *Grid) Extent(axis int) int { return g.cfg.Extent[axis] }

// TreeCount returns the total number of tree positions in the grid,
// instantiated or not.
func (g *Grid) TreeCount() int {
	return g.cfg.Extent[0] * g.cfg.Extent[1] * g.cfg.Extent[2]
}

// CheckTreeIndex validates a flat tree index against the grid extent.
func (g *Grid) CheckTreeIndex(treeIndex int) error {
	if treeIndex < 0 || treeIndex >= g.TreeCount() {
		return fmt.Errorf("%w: index %d, %d trees", ErrTreeIndexOut, treeIndex, g.TreeCount())
	}
	return nil
}

// IndexOf flattens grid coordinates to a tree index, x varying fastest.
// It returns false if the coordinates fall outside the extent.
func (g *Grid) IndexOf(coords [3]int) (int, bool) {
	for a := 0; a < 3; a++ {
		if coords[a] < 0 || coords[a] >= g.cfg.Extent[a] {
			return 0, false
		}
	}
	return coords[0] + g.cfg.Extent[0]*(coords[1]+g.cfg.Extent[1]*coords[2]), true
}

// CoordsOf is the inverse of IndexOf. The index must be in range.
func (g *Grid) CoordsOf(treeIndex int) [3]int {
	var c [3]int
	c[0] = treeIndex % g.cfg.Extent[0]
	treeIndex /= g.cfg.Extent[0]
	c[1] = treeIndex % g.cfg.Extent[1]
	c[2] = treeIndex / g.cfg.Extent[1]
	return c
}

// NeighborTree returns the tree index reached by moving offset trees from
// treeIndex, one step at most per axis. It returns false at the grid
// boundary. The result does not depend on whether either tree is
// instantiated.
func (g *Grid) NeighborTree(treeIndex int, offset [3]int) (int, bool) {
	c := g.CoordsOf(treeIndex)
	for a := 0; a < 3; a++ {
		c[a] += offset[a]
	}
	return g.IndexOf(c)
}

// Tree returns the instantiated tree at treeIndex, or nil if there is none.
func (g *Grid) Tree(treeIndex int) *hypertree.Tree {
	return g.trees[treeIndex]
}

// TreeOrCreate returns the tree at treeIndex, lazily instantiating an
// unrefined root if needed. This is the create policy behind cursor
// initialization: only the central tree of a traversal is ever created,
// neighbors are looked up with Tree.
func (g *Grid) TreeOrCreate(treeIndex int) (*hypertree.Tree, error) {
	if err := g.CheckTreeIndex(treeIndex); err != nil {
		return nil, err
	}
	if t := g.trees[treeIndex]; t != nil {
		return t, nil
	}
	t, err := hypertree.New(g.cfg.Dimension, g.cfg.BranchFactor)
	if err != nil {
		return nil, err
	}
	g.trees[treeIndex] = t
	g.log.Debug("tree instantiated", zap.Int("treeIndex", treeIndex))
	return t, nil
}

// PutTree installs a prebuilt tree at treeIndex, replacing any existing
// instance. Used when restoring a grid from a snapshot; the tree's
// dimension and branch factor must match the grid's.
func (g *Grid) PutTree(treeIndex int, t *hypertree.Tree) error {
	if err := g.CheckTreeIndex(treeIndex); err != nil {
		return err
	}
	if t.Dimension() != g.cfg.Dimension || t.BranchFactor() != g.cfg.BranchFactor {
		return fmt.Errorf("%w: tree is %dd factor %d, grid is %dd factor %d",
			hypertree.ErrBadDescriptor,
			t.Dimension(), t.BranchFactor(), g.cfg.Dimension, g.cfg.BranchFactor)
	}
	g.trees[treeIndex] = t
	return nil
}

// TreeIndices returns the indices of all instantiated trees, unordered.
func (g *Grid) TreeIndices() []int {
	out := make([]int, 0, len(g.trees))
	for i := range g.trees {
		out = append(out, i)
	}
	return out
}

// Refine splits a leaf of the tree at treeIndex. Refinement goes through
// the grid rather than the tree so that grids remain the single mutation
// authority; callers serialize these calls.
func (g *Grid) Refine(treeIndex int, node int64) error {
	t, err := g.TreeOrCreate(treeIndex)
	if err != nil {
		return err
	}
	if err := t.Refine(node); err != nil {
		return err
	}
	g.log.Debug("refined", zap.Int("treeIndex", treeIndex), zap.Int64("node", node))
	return nil
}

// Coarsen collapses an all-leaf branch of the tree at treeIndex.
func (g *Grid) Coarsen(treeIndex int, node int64) error {
	if err := g.CheckTreeIndex(treeIndex); err != nil {
		return err
	}
	t := g.trees[treeIndex]
	if t == nil {
		return fmt.Errorf("%w: index %d", ErrNoTree, treeIndex)
	}
	if err := t.Coarsen(node); err != nil {
		return err
	}
	g.log.Debug("coarsened", zap.Int("treeIndex", treeIndex), zap.Int64("node", node))
	return nil
}
