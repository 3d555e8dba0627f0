package snapshot

import "errors"

var (
	ErrBadVersion  = errors.New("unsupported snapshot version")
	ErrBadSnapshot = errors.New("snapshot payload is malformed")
)
