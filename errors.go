package chainmap

import "github.com/pkg/errors"

var (
	// ErrKeyNotFound is returned by the read-only accessors on a missing key.
	ErrKeyNotFound = errors.New("chainmap: key not found")

	// ErrIteratorInvalidated is the panic value of an iterator used after the
	// map it was obtained from has been structurally modified.
	ErrIteratorInvalidated = errors.New("chainmap: iterator used after map modification")

	// ErrIteratorOutOfRange is the panic value of an iterator dereferenced at
	// the end position or moved past either end of the map.
	ErrIteratorOutOfRange = errors.New("chainmap: iterator out of range")
)
