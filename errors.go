package tess

import "errors"

// Sentinel errors for the tess package.
var (
	// ErrTooManyVertices is returned when a geometry sink cannot store
	// another vertex. Tessellation stops and the sink discards everything
	// emitted by the failed call.
	ErrTooManyVertices = errors.New("tess: too many vertices")

	// ErrCustomAttributes is returned when ID-based stroke tessellation is
	// given custom per-vertex attributes, which it does not interpolate.
	ErrCustomAttributes = errors.New("tess: custom attributes are not supported by the stroke tessellator")

	// ErrInvalidOptions is returned by StrokeOptions.Validate and when
	// decoding line caps or joins from text.
	ErrInvalidOptions = errors.New("tess: invalid stroke options")
)
