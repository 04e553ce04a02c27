package tess

import (
	"github.com/gogpu/tess/path"
	"honnef.co/go/curve"
)

// StrokeBuilder tessellates the stroke of a path fed to it one command at
// a time.
//
// The builder keeps one join "behind" the newest point: each new point
// triggers the join at the previous one, and the edge before that join is
// emitted as two triangles. A sub-path goes through three states, tracked
// by the number of points after its first one: Empty (0), Pending (1) and
// Steady (2 or more). MoveTo, Build and unclosed ends flush the current
// sub-path with caps; Close connects its last and first points with one
// more join instead.
//
// When the sink fails to store a vertex, the error is latched and the
// remaining geometry is computed with placeholder vertex IDs. Build then
// aborts the geometry and reports the first error.
type StrokeBuilder struct {
	opts StrokeOptions
	out  StrokeGeometryBuilder
	err  error

	first    curve.Point
	second   curve.Point
	previous curve.Point
	current  curve.Point

	prevNormal curve.Vec2

	previousLeft      VertexID
	previousRight     VertexID
	secondLeft        VertexID
	secondRight       VertexID
	previousFrontSide Side

	firstEndpoint    path.EndpointID
	secondEndpoint   path.EndpointID
	previousEndpoint path.EndpointID
	currentEndpoint  path.EndpointID
	currentT         float64
	secondT          float64

	nth                    int
	length                 float64
	subPathStartLength     float64
	previousCommandWasMove bool
}

// NewStrokeBuilder starts a tessellation into out: it calls
// out.BeginGeometry and returns a builder to feed with path commands.
// Build must be called to finish the geometry.
func NewStrokeBuilder(opts StrokeOptions, out StrokeGeometryBuilder) *StrokeBuilder {
	out.BeginGeometry()
	return &StrokeBuilder{
		opts:              opts,
		out:               out,
		firstEndpoint:     path.InvalidEndpoint,
		secondEndpoint:    path.InvalidEndpoint,
		previousEndpoint:  path.InvalidEndpoint,
		currentEndpoint:   path.InvalidEndpoint,
		previousFrontSide: SideLeft,
	}
}

// MoveTo flushes the current sub-path and starts a new one at to.
func (s *StrokeBuilder) MoveTo(to curve.Point) {
	s.begin(to, path.InvalidEndpoint)
}

// LineTo adds a straight edge to to.
func (s *StrokeBuilder) LineTo(to curve.Point) {
	s.edgeTo(to, path.InvalidEndpoint, 0, true)
}

// QuadraticBezierTo adds a quadratic Bézier curve, flattened with the
// configured tolerance.
func (s *StrokeBuilder) QuadraticBezierTo(ctrl, to curve.Point) {
	first := true
	flattenQuadratic(curve.QuadBez{P0: s.current, P1: ctrl, P2: to}, s.opts.Tolerance, func(p curve.Point, _ float64) {
		s.edgeTo(p, path.InvalidEndpoint, 0, first)
		first = false
	})
}

// CubicBezierTo adds a cubic Bézier curve, flattened with the configured
// tolerance.
func (s *StrokeBuilder) CubicBezierTo(ctrl1, ctrl2, to curve.Point) {
	first := true
	flattenCubic(curve.CubicBez{P0: s.current, P1: ctrl1, P2: ctrl2, P3: to}, s.opts.Tolerance, func(p curve.Point, _ float64) {
		s.edgeTo(p, path.InvalidEndpoint, 0, first)
		first = false
	})
}

// Arc adds an elliptic arc around center starting at the current
// position. Angles are in radians.
func (s *StrokeBuilder) Arc(center curve.Point, radii curve.Vec2, sweepAngle, xRotation float64) {
	arc := curve.Arc{
		Center:     center,
		Radii:      radii,
		StartAngle: s.current.Sub(center).Angle() - xRotation,
		SweepAngle: sweepAngle,
		XRotation:  xRotation,
	}
	first := true
	flattenArc(arc, s.opts.Tolerance, func(p curve.Point, _ float64) {
		s.edgeTo(p, path.InvalidEndpoint, 0, first)
		first = false
	})
}

// Close closes the current sub-path.
func (s *StrokeBuilder) Close() {
	s.close()
}

// CurrentPosition returns the position of the last point added.
func (s *StrokeBuilder) CurrentPosition() curve.Point {
	return s.current
}

// Err returns the first error reported by the sink, if any.
func (s *StrokeBuilder) Err() error {
	return s.err
}

// Build flushes the current sub-path and finishes the geometry. On error
// the geometry is aborted and the first error is returned.
func (s *StrokeBuilder) Build() (Count, error) {
	s.finish()
	if s.err != nil {
		return s.abort()
	}
	c := s.out.EndGeometry()
	Logger().Debug("stroke: tessellated path", "vertices", c.Vertices, "indices", c.Indices)
	return c, nil
}

func (s *StrokeBuilder) abort() (Count, error) {
	s.out.AbortGeometry()
	Logger().Warn("stroke: tessellation aborted", "error", s.err)
	return Count{}, s.err
}

// pointEvent feeds an event with resolved positions.
func (s *StrokeBuilder) pointEvent(evt path.PointEvent) {
	switch evt.Kind {
	case path.EventBegin:
		s.MoveTo(evt.To)
	case path.EventLine:
		s.LineTo(evt.To)
	case path.EventQuadratic:
		s.QuadraticBezierTo(evt.Ctrl1, evt.To)
	case path.EventCubic:
		s.CubicBezierTo(evt.Ctrl1, evt.Ctrl2, evt.To)
	case path.EventEnd:
		if evt.Close {
			s.close()
		} else {
			s.finish()
		}
	}
}

// idEvent feeds an event with endpoint IDs, so emitted vertices can refer
// back to the endpoints they were generated from.
func (s *StrokeBuilder) idEvent(evt path.IDEvent, positions path.PositionStore) {
	switch evt.Kind {
	case path.EventBegin:
		s.begin(positions.EndpointPosition(evt.To), evt.To)
	case path.EventLine:
		s.edgeTo(positions.EndpointPosition(evt.To), evt.To, 0, true)
	case path.EventQuadratic:
		q := curve.QuadBez{
			P0: s.current,
			P1: positions.CtrlPointPosition(evt.Ctrl1),
			P2: positions.EndpointPosition(evt.To),
		}
		s.curveTo(evt.To, func(fn func(curve.Point, float64)) {
			flattenQuadratic(q, s.opts.Tolerance, fn)
		})
	case path.EventCubic:
		c := curve.CubicBez{
			P0: s.current,
			P1: positions.CtrlPointPosition(evt.Ctrl1),
			P2: positions.CtrlPointPosition(evt.Ctrl2),
			P3: positions.EndpointPosition(evt.To),
		}
		s.curveTo(evt.To, func(fn func(curve.Point, float64)) {
			flattenCubic(c, s.opts.Tolerance, fn)
		})
	case path.EventEnd:
		if evt.Close {
			s.close()
		} else {
			s.finish()
		}
	}
}

// curveTo adds the points of a flattened curve ending at endpoint to.
// Points inside the curve keep the curve's start as previous endpoint so
// that their joins report an Edge source spanning the whole curve.
func (s *StrokeBuilder) curveTo(to path.EndpointID, flatten func(func(curve.Point, float64))) {
	from := s.currentEndpoint
	first := true
	flatten(func(p curve.Point, t float64) {
		s.edgeTo(p, to, t, first)
		s.previousEndpoint = from
		first = false
	})
}

func (s *StrokeBuilder) begin(to curve.Point, endpoint path.EndpointID) {
	s.finish()

	s.first = to
	s.current = to
	s.firstEndpoint = endpoint
	s.currentEndpoint = endpoint
	s.currentT = 0
	s.nth = 0
	s.subPathStartLength = s.length
	s.previousCommandWasMove = true
}

func (s *StrokeBuilder) close() {
	// Closing almost at the first point would make the closing edge's
	// normal meaningless.
	const threshold = 0.001
	if s.first.DistanceSquared(s.current) > threshold {
		s.edgeTo(s.first, s.firstEndpoint, 0, true)
	}

	if s.nth > 1 {
		s.edgeTo(s.second, s.secondEndpoint, s.secondT, true)

		src := EndpointSource(s.previousEndpoint)
		firstLeft := s.addVertex(s.previous, StrokeAttributes{
			Normal:      s.prevNormal,
			Advancement: s.subPathStartLength,
			Side:        SideLeft,
			Source:      src,
		})
		firstRight := s.addVertex(s.previous, StrokeAttributes{
			Normal:      s.prevNormal.Negate(),
			Advancement: s.subPathStartLength,
			Side:        SideRight,
			Source:      src,
		})
		s.triangle(firstRight, firstLeft, s.secondRight)
		s.triangle(firstLeft, s.secondLeft, s.secondRight)
	}

	s.nth = 0
	s.current = s.first
	s.subPathStartLength = s.length
	s.previousCommandWasMove = false
}

// finish flushes the current sub-path: single points get the start cap
// shape, open sub-paths get their end and start caps. The sub-path is
// left Empty so a second flush emits nothing.
func (s *StrokeBuilder) finish() {
	if s.nth == 0 && s.previousCommandWasMove {
		src := EndpointSource(s.currentEndpoint)
		switch s.opts.StartCap {
		case LineCapSquare:
			s.emptySquareCap(src)
		case LineCapRound:
			s.emptyRoundCap(src)
		}
	}

	// Last edge.
	if s.nth > 0 {
		current := s.current
		d := s.current.Sub(s.previous)
		if s.opts.EndCap == LineCapSquare {
			// Square caps pretend the path goes on for half a line width.
			s.current = s.current.Translate(normalize(d).Mul(s.opts.LineWidth / 2))
		}
		s.edgeTo(s.current.Translate(d), s.previousEndpoint, 0, true)
		s.current = current

		if s.opts.EndCap == LineCapRound {
			src := EndpointSource(s.previousEndpoint)
			s.roundCap(current, d, s.previousLeft, s.previousRight, false, src)
		}
	}

	// First edge.
	if s.nth > 1 {
		first := s.first
		d := first.Sub(s.second)
		if s.opts.StartCap == LineCapSquare {
			first = first.Translate(normalize(d).Mul(s.opts.LineWidth / 2))
		}

		n2 := normalizedTangent(d)
		n1 := n2.Negate()
		src := EndpointSource(s.firstEndpoint)

		firstLeft := s.addVertex(first, StrokeAttributes{
			Normal:      n1,
			Advancement: s.subPathStartLength,
			Side:        SideLeft,
			Source:      src,
		})
		firstRight := s.addVertex(first, StrokeAttributes{
			Normal:      n2,
			Advancement: s.subPathStartLength,
			Side:        SideRight,
			Source:      src,
		})

		if s.opts.StartCap == LineCapRound {
			s.roundCap(first, d, firstLeft, firstRight, true, src)
		}

		s.triangle(firstRight, firstLeft, s.secondRight)
		s.triangle(firstLeft, s.secondLeft, s.secondRight)
	}

	s.nth = 0
	s.previousCommandWasMove = false
}

// edgeTo adds a point to the current sub-path. From the third point on,
// it computes the join at the current point and emits the edge leading
// to it.
func (s *StrokeBuilder) edgeTo(to curve.Point, endpoint path.EndpointID, t float64, withJoin bool) {
	if to == s.current {
		return
	}

	if s.nth == 0 {
		// The join at the first point is only known once the sub-path
		// is closed or flushed.
		s.previous = s.first
		s.previousEndpoint = s.firstEndpoint
		s.current = to
		s.currentEndpoint = endpoint
		s.currentT = t
		s.nth++
		return
	}

	joinType := s.opts.LineJoin
	if !withJoin {
		joinType = LineJoinMiter
	}
	j := s.tessellateJoin(s.current.Sub(s.previous), to.Sub(s.current), joinType)

	if s.nth > 1 {
		switch s.previousFrontSide {
		case SideLeft:
			s.triangle(s.previousRight, s.previousLeft, j.startRight)
			s.triangle(s.previousLeft, j.startLeft, j.startRight)
		case SideRight:
			s.triangle(s.previousRight, s.previousLeft, j.startLeft)
			s.triangle(s.previousRight, j.startLeft, j.startRight)
		}
	}

	if s.nth == 1 {
		// The join just computed is the one at the second point; Close
		// and the start cap connect to it.
		s.second = s.current
		s.secondEndpoint = s.currentEndpoint
		s.secondT = s.currentT
		s.secondLeft = j.startLeft
		s.secondRight = j.startRight
	}

	s.previousCommandWasMove = false
	s.previousFrontSide = j.front
	s.previous = s.current
	s.previousEndpoint = s.currentEndpoint
	s.previousLeft = j.endLeft
	s.previousRight = j.endRight
	s.current = to
	s.currentEndpoint = endpoint
	s.currentT = t
	s.nth++
}

// addVertex emits a vertex at pos, offset by half the line width along
// its normal when the options ask for it.
func (s *StrokeBuilder) addVertex(pos curve.Point, attrs StrokeAttributes) VertexID {
	if s.opts.ApplyLineWidth {
		pos = pos.Translate(attrs.Normal.Mul(s.opts.LineWidth / 2))
	}
	return s.emit(pos, attrs)
}

// emit stores a vertex as is. Once an error is latched, it returns a
// placeholder ID without calling the sink.
func (s *StrokeBuilder) emit(pos curve.Point, attrs StrokeAttributes) VertexID {
	if s.err != nil {
		return 0
	}
	id, err := s.out.AddStrokeVertex(pos, attrs)
	if err != nil {
		s.err = err
		return 0
	}
	return id
}

// triangle emits a triangle unless an error made its vertex IDs
// placeholders.
func (s *StrokeBuilder) triangle(a, b, c VertexID) {
	if s.err != nil {
		return
	}
	s.out.AddTriangle(a, b, c)
}
