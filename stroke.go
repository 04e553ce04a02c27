package tess

import (
	"fmt"
	"iter"

	"github.com/gogpu/tess/path"
)

// StrokeTessellator turns the strokes of paths into triangles.
//
// A StrokeTessellator holds no state between calls; it exists so that
// callers can keep one around as they would a fill tessellator.
type StrokeTessellator struct{}

// NewStrokeTessellator returns a stroke tessellator.
func NewStrokeTessellator() *StrokeTessellator {
	return &StrokeTessellator{}
}

// TessellatePath tessellates the stroke of a sequence of events carrying
// positions.
//
// Vertices are reported with an Endpoint source of path.InvalidEndpoint,
// since the events carry no endpoint IDs. On error, out.AbortGeometry is
// called and the first error is returned.
func (t *StrokeTessellator) TessellatePath(events iter.Seq[path.PointEvent], opts StrokeOptions, out StrokeGeometryBuilder) (Count, error) {
	b := NewStrokeBuilder(opts, out)
	for evt := range events {
		b.pointEvent(evt)
		if b.err != nil {
			return b.abort()
		}
	}
	return b.Build()
}

// TessellatePathWithIDs tessellates the stroke of a sequence of events
// carrying endpoint and control point IDs, resolved through positions.
// Every vertex reports the endpoint or edge it was generated from.
//
// Custom per-endpoint attributes are not interpolated yet: a non-nil
// attrs store is rejected with ErrCustomAttributes.
func (t *StrokeTessellator) TessellatePathWithIDs(
	events iter.Seq[path.IDEvent],
	positions path.PositionStore,
	attrs path.AttributeStore,
	opts StrokeOptions,
	out StrokeGeometryBuilder,
) (Count, error) {
	if attrs != nil {
		return Count{}, fmt.Errorf("%w: %d attributes per endpoint", ErrCustomAttributes, attrs.NumAttributes())
	}

	b := NewStrokeBuilder(opts, out)
	for evt := range events {
		b.idEvent(evt, positions)
		if b.err != nil {
			return b.abort()
		}
	}
	return b.Build()
}

// TessellateCommands tessellates the stroke of a command stream whose
// endpoint and control point positions live in positions.
func (t *StrokeTessellator) TessellateCommands(cmds *path.Commands, positions path.PositionStore, opts StrokeOptions, out StrokeGeometryBuilder) (Count, error) {
	return t.TessellatePathWithIDs(cmds.IDEvents().All(), positions, nil, opts, out)
}

// Stroke tessellates the stroke of p with a new StrokeTessellator.
func Stroke(p *path.Path, opts StrokeOptions, out StrokeGeometryBuilder) (Count, error) {
	return NewStrokeTessellator().TessellateCommands(p.Commands(), path.PositionsOf(p), opts, out)
}
