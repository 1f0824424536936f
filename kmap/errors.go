package kmap

import "errors"

var (
	// ErrInvalidDimension is returned when a map is requested for a number of variables other than 2, 3 or 4.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrUnsupportedPattern is returned when a product term does not correspond to a rectangle of the map.
	ErrUnsupportedPattern = errors.New("unsupported pattern")
)
