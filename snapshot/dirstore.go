package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spatialkit/go-hypertreegrid/grid"
)

const defaultFileExt = ".htg"

// DirStore reads and writes grid snapshots in a single local directory,
// one file per grid, named by grid id. It assumes single threaded access;
// it is not go routine safe.
type DirStore struct {
	log   *zap.Logger
	dir   string
	codec Codec
	opts  StoreOptions
}

// NewDirStore opens (creating if needed) a snapshot directory.
func NewDirStore(log *zap.Logger, dir string, opts ...Option) (*DirStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &DirStore{
		log:  log,
		dir:  dir,
		opts: StoreOptions{FileExt: defaultFileExt},
	}
	for _, o := range opts {
		o(&s.opts)
	}
	var err error
	if s.codec, err = NewCodec(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}
	return s, nil
}

// Path returns the snapshot filename for a grid id.
func (s *DirStore) Path(id uuid.UUID) string {
	return filepath.Join(s.dir, id.String()+s.opts.FileExt)
}

// Save writes the grid's snapshot, replacing any previous snapshot of the
// same grid, and returns the file path.
func (s *DirStore) Save(g *grid.Grid) (string, error) {
	data, err := s.codec.MarshalGrid(g)
	if err != nil {
		return "", err
	}
	path := s.Path(g.ID())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing snapshot: %w", err)
	}
	s.log.Info("grid snapshot saved",
		zap.String("path", path),
		zap.Int("bytes", len(data)))
	return path, nil
}

// Load restores a grid from a snapshot file.
func (s *DirStore) Load(path string) (*grid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	g, err := s.codec.UnmarshalGrid(s.log, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.log.Info("grid snapshot loaded",
		zap.String("path", path),
		zap.String("id", g.ID().String()))
	return g, nil
}

// LoadByID restores the snapshot of a known grid.
func (s *DirStore) LoadByID(id uuid.UUID) (*grid.Grid, error) {
	return s.Load(s.Path(id))
}

// List returns the paths of all snapshots in the store, sorted.
func (s *DirStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing snapshot dir: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), s.opts.FileExt) {
			continue
		}
		paths = append(paths, filepath.Join(s.dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
