package tess

import (
	"fmt"
	"math"
	"strings"
)

// LineCap specifies the shape at the open ends of a stroked sub-path.
type LineCap int

const (
	// LineCapButt ends the stroke exactly at the endpoint.
	LineCapButt LineCap = iota
	// LineCapSquare extends the stroke by half the line width past the endpoint.
	LineCapSquare
	// LineCapRound ends the stroke with a half circle.
	LineCapRound
)

// String returns the lower-case name of the cap.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapSquare:
		return "square"
	case LineCapRound:
		return "round"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c LineCap) MarshalText() ([]byte, error) {
	if c < LineCapButt || c > LineCapRound {
		return nil, fmt.Errorf("%w: line cap %d", ErrInvalidOptions, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are case-insensitive.
func (c *LineCap) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "butt":
		*c = LineCapButt
	case "square":
		*c = LineCapSquare
	case "round":
		*c = LineCapRound
	default:
		return fmt.Errorf("%w: unknown line cap %q", ErrInvalidOptions, text)
	}
	return nil
}

// LineJoin specifies the shape where two edges of a stroke meet.
type LineJoin int

const (
	// LineJoinMiter extends the outer edges until they meet. It falls
	// back to LineJoinBevel when the miter length exceeds the miter limit.
	LineJoinMiter LineJoin = iota
	// LineJoinMiterClip is a miter join clipped at the miter limit
	// instead of falling back to a bevel.
	LineJoinMiterClip
	// LineJoinRound rounds the outer corner with a circular arc.
	LineJoinRound
	// LineJoinBevel cuts the outer corner with a straight line.
	LineJoinBevel
)

// String returns the lower-case name of the join.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinMiterClip:
		return "miter-clip"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (j LineJoin) MarshalText() ([]byte, error) {
	if j < LineJoinMiter || j > LineJoinBevel {
		return nil, fmt.Errorf("%w: line join %d", ErrInvalidOptions, int(j))
	}
	return []byte(j.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are
// case-insensitive; "miterclip" and "miter_clip" are accepted as well.
func (j *LineJoin) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "miter":
		*j = LineJoinMiter
	case "miter-clip", "miterclip", "miter_clip":
		*j = LineJoinMiterClip
	case "round":
		*j = LineJoinRound
	case "bevel":
		*j = LineJoinBevel
	default:
		return fmt.Errorf("%w: unknown line join %q", ErrInvalidOptions, text)
	}
	return nil
}

const (
	// DefaultTolerance is the default maximum flattening error.
	DefaultTolerance = 0.1
	// DefaultLineWidth is the default stroke width.
	DefaultLineWidth = 1.0
	// DefaultMiterLimit is the default miter limit (matches SVG).
	DefaultMiterLimit = 4.0
	// MinimumMiterLimit is the smallest accepted miter limit.
	MinimumMiterLimit = 1.0
	// DefaultLineCap is the default cap at both ends of a sub-path.
	DefaultLineCap = LineCapButt
	// DefaultLineJoin is the default join.
	DefaultLineJoin = LineJoinMiter
)

// StrokeOptions configures stroke tessellation. It is a plain value: the
// With methods return modified copies.
type StrokeOptions struct {
	// StartCap is the cap at the first point of open sub-paths, and the
	// shape of single-point sub-paths. Default: LineCapButt
	StartCap LineCap

	// EndCap is the cap at the last point of open sub-paths. Default: LineCapButt
	EndCap LineCap

	// LineJoin is the shape of joins between edges. Default: LineJoinMiter
	LineJoin LineJoin

	// LineWidth is the stroke width. Default: 1.0
	LineWidth float64

	// MiterLimit bounds the length of miter joins relative to the
	// half width. Default: 4.0, minimum 1.0
	MiterLimit float64

	// Tolerance is the maximum distance between curves, arcs, round
	// joins and round caps and their flattened approximation. Default: 0.1
	Tolerance float64

	// ApplyLineWidth offsets emitted positions by half the line width
	// along their normal. When false, positions stay on the centerline
	// and the width can be applied later, e.g. in a vertex shader.
	// Default: true
	ApplyLineWidth bool
}

// DefaultStrokeOptions returns the default options: a 1-unit wide stroke
// with butt caps and miter joins.
func DefaultStrokeOptions() StrokeOptions {
	return StrokeOptions{
		StartCap:       DefaultLineCap,
		EndCap:         DefaultLineCap,
		LineJoin:       DefaultLineJoin,
		LineWidth:      DefaultLineWidth,
		MiterLimit:     DefaultMiterLimit,
		Tolerance:      DefaultTolerance,
		ApplyLineWidth: true,
	}
}

// WithTolerance returns a copy of the options with the given tolerance.
func (o StrokeOptions) WithTolerance(tolerance float64) StrokeOptions {
	o.Tolerance = tolerance
	return o
}

// WithLineWidth returns a copy of the options with the given width.
func (o StrokeOptions) WithLineWidth(width float64) StrokeOptions {
	o.LineWidth = width
	return o
}

// WithLineCap returns a copy of the options using lineCap at both ends.
func (o StrokeOptions) WithLineCap(lineCap LineCap) StrokeOptions {
	o.StartCap = lineCap
	o.EndCap = lineCap
	return o
}

// WithStartCap returns a copy of the options with the given start cap.
func (o StrokeOptions) WithStartCap(lineCap LineCap) StrokeOptions {
	o.StartCap = lineCap
	return o
}

// WithEndCap returns a copy of the options with the given end cap.
func (o StrokeOptions) WithEndCap(lineCap LineCap) StrokeOptions {
	o.EndCap = lineCap
	return o
}

// WithLineJoin returns a copy of the options with the given join.
func (o StrokeOptions) WithLineJoin(join LineJoin) StrokeOptions {
	o.LineJoin = join
	return o
}

// WithMiterLimit returns a copy of the options with the given miter
// limit. Limits below MinimumMiterLimit are raised to it.
func (o StrokeOptions) WithMiterLimit(limit float64) StrokeOptions {
	o.MiterLimit = math.Max(limit, MinimumMiterLimit)
	return o
}

// DontApplyLineWidth returns a copy of the options that leaves emitted
// positions on the centerline.
func (o StrokeOptions) DontApplyLineWidth() StrokeOptions {
	o.ApplyLineWidth = false
	return o
}

// Validate reports whether the options can be tessellated. The returned
// error wraps ErrInvalidOptions.
func (o StrokeOptions) Validate() error {
	switch {
	case !(o.Tolerance > 0) || math.IsInf(o.Tolerance, 0):
		return fmt.Errorf("%w: tolerance %v must be positive", ErrInvalidOptions, o.Tolerance)
	case !(o.LineWidth >= 0) || math.IsInf(o.LineWidth, 0):
		return fmt.Errorf("%w: line width %v must be a non-negative number", ErrInvalidOptions, o.LineWidth)
	case !(o.MiterLimit >= MinimumMiterLimit):
		return fmt.Errorf("%w: miter limit %v is below %v", ErrInvalidOptions, o.MiterLimit, MinimumMiterLimit)
	case o.StartCap < LineCapButt || o.StartCap > LineCapRound:
		return fmt.Errorf("%w: start cap %d", ErrInvalidOptions, int(o.StartCap))
	case o.EndCap < LineCapButt || o.EndCap > LineCapRound:
		return fmt.Errorf("%w: end cap %d", ErrInvalidOptions, int(o.EndCap))
	case o.LineJoin < LineJoinMiter || o.LineJoin > LineJoinBevel:
		return fmt.Errorf("%w: line join %d", ErrInvalidOptions, int(o.LineJoin))
	}
	return nil
}
