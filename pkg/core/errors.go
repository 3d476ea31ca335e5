package core

import "errors"

var (
	// ErrInvalidArgument reports a missing required reference or a nonsensical parameter
	// such as a negative, NaN or infinite value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupported reports a well-formed configuration the renderer cannot evaluate,
	// such as a checkerboard with zero tile size.
	ErrUnsupported = errors.New("unsupported configuration")

	// ErrMalformedInput reports model data that cannot be turned into geometry.
	ErrMalformedInput = errors.New("malformed input")
)
