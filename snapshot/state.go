package snapshot

// Version is the current snapshot payload version. Decoding any other
// version fails with ErrBadVersion; there is no migration support yet.
const Version = 1

// gridState is the wire form of a grid. Fields are keyed by integer to keep
// payloads compact and renames cheap.
type gridState struct {
	Version      int               `cbor:"1,keyasint"`
	ID           string            `cbor:"2,keyasint"`
	Dimension    int               `cbor:"3,keyasint"`
	BranchFactor int               `cbor:"4,keyasint"`
	Extent       [3]int            `cbor:"5,keyasint"`
	Origin       [3]float32        `cbor:"6,keyasint"`
	Scale        [3]float32        `cbor:"7,keyasint"`
	Trees        map[int]treeState `cbor:"8,keyasint"`
}

// treeState is the wire form of one tree's refinement state, exactly the
// Descriptor/FreeBlocks pair the tree store round-trips through.
type treeState struct {
	Descriptor []int64 `cbor:"1,keyasint"`
	FreeBlocks []int64 `cbor:"2,keyasint,omitempty"`
}
