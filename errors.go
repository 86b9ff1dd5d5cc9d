package veccell

import "errors"

var (
	// ErrOutOfBounds reports an index at or beyond the container's length.
	ErrOutOfBounds = errors.New("index out of bounds")

	// ErrAliasing reports an access that would overlap an incompatible
	// outstanding borrow.
	ErrAliasing = errors.New("access would alias an outstanding borrow")
)
