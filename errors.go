package losange

import "errors"

// Structural errors, reported at pipeline construction. The mapping core
// itself is total and cannot fail once a pipeline exists.
var (
	// ErrTableMismatch is returned when the position and color tables
	// differ in length.
	ErrTableMismatch = errors.New("losange: position and color tables differ in length")

	// ErrBadChannel is returned when a palette color is not an RGB triple
	// with every channel in [0, 1].
	ErrBadChannel = errors.New("losange: color channel outside [0, 1]")

	// ErrUnknownTopology is returned by ParseTopology for an unrecognized
	// topology name.
	ErrUnknownTopology = errors.New("losange: unknown topology")

	// ErrBadSize is returned when a pipeline is built with a non-positive
	// framebuffer size.
	ErrBadSize = errors.New("losange: width and height must be positive")
)
