package gridsparse

import "errors"

var (
	ErrInvalidShape     = errors.New("invalid grid shape")
	ErrInvalidKernel    = errors.New("invalid kernel width")
	ErrInvalidCoords    = errors.New("invalid coordinates")
	ErrCapacityExceeded = errors.New("output capacity exceeded")
	ErrInvalidConfig    = errors.New("invalid config")
)
