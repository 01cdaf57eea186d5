package timer

import "errors"

var (
	// ErrStaleHandle is the panic value when a handle is used after a
	// transition or a re-initialization superseded it
	ErrStaleHandle = errors.New("timer: stale handle")

	// ErrNoPeripheral is the panic value when the zero handle is used
	ErrNoPeripheral = errors.New("timer: handle has no peripheral")
)
