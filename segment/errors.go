package segment

import "errors"

// Sentinel errors for the segment package.
var (
	// ErrEmptyGrid indicates a PointGrid was constructed with no rows or no columns.
	ErrEmptyGrid = errors.New("segment: point grid must have at least one row and one column")

	// ErrDimensionMismatch indicates the supplied sample slice does not match width*height.
	ErrDimensionMismatch = errors.New("segment: sample slice length does not match width*height")

	// ErrBufferTooSmall indicates the output vertex buffer is empty, or the
	// vertex and color buffers differ in length.
	ErrBufferTooSmall = errors.New("segment: output buffer capacity must be positive")
)
