package depthkernels

import "errors"

var (
	// ErrDimensionMismatch is returned when an input or output slice's
	// length does not match width*height (or width*height*3 for the
	// point-triple encodings).
	ErrDimensionMismatch = errors.New("depthkernels: buffer length does not match width*height")
)
