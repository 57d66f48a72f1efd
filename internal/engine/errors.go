package engine

import "errors"

// Domain errors for engine construction and viewport validation.
var (
	// ErrInvalidDimensions indicates a negative grid width or height.
	ErrInvalidDimensions = errors.New("engine: invalid grid dimensions")

	// ErrInvalidTiling indicates a tile grid with fewer than one tile per axis.
	ErrInvalidTiling = errors.New("engine: tile grid must be at least 1x1")

	// ErrInvalidLaneWidth indicates a lane width below one.
	ErrInvalidLaneWidth = errors.New("engine: lane width must be positive")

	// ErrInvalidViewport indicates a non-positive or non-finite scale.
	ErrInvalidViewport = errors.New("engine: invalid viewport")
)
