package tess

import (
	"math"

	"honnef.co/go/curve"
)

// emptySquareCap emits the square drawn for a sub-path made of a single
// point.
func (s *StrokeBuilder) emptySquareCap(src VertexSource) {
	attrs := func(x, y float64, side Side) StrokeAttributes {
		return StrokeAttributes{Normal: curve.Vec(x, y), Side: side, Source: src}
	}
	a := s.addVertex(s.current, attrs(1, 1, SideRight))
	b := s.addVertex(s.current, attrs(1, -1, SideLeft))
	c := s.addVertex(s.current, attrs(-1, -1, SideLeft))
	d := s.addVertex(s.current, attrs(-1, 1, SideRight))
	s.triangle(a, b, c)
	s.triangle(a, c, d)
}

// emptyRoundCap emits the disc drawn for a sub-path made of a single
// point, as two half-disc caps sharing their left and right vertices.
func (s *StrokeBuilder) emptyRoundCap(src VertexSource) {
	center := s.current
	left := s.addVertex(center, StrokeAttributes{Normal: curve.Vec(-1, 0), Side: SideLeft, Source: src})
	right := s.addVertex(center, StrokeAttributes{Normal: curve.Vec(1, 0), Side: SideRight, Source: src})
	s.roundCap(center, curve.Vec(0, -1), left, right, true, src)
	s.roundCap(center, curve.Vec(0, 1), left, right, false, src)
}

// maxCapRecursions bounds the bisection depth of each quarter of a round
// cap. A zero or tiny tolerance would otherwise ask for 2^32 vertices.
const maxCapRecursions = 12

// capArc holds what stays constant while subdividing a round cap.
type capArc struct {
	center      curve.Point
	radius      float64
	advancement float64
	invert      bool
	src         VertexSource
}

// roundCap emits a half disc around center, bulging towards dir, between
// the existing vertices left and right.
//
// The half disc is first split into two quarters at the vertex facing
// dir; each quarter is then bisected recursively, a fixed number of times
// derived from the radius and the tolerance, at most maxCapRecursions.
func (s *StrokeBuilder) roundCap(center curve.Point, dir curve.Vec2, left, right VertexID, isStart bool, src VertexSource) {
	radius := math.Abs(s.opts.LineWidth)
	if radius < 1e-4 {
		return
	}

	arcLen := 0.5 * math.Pi * radius
	step := circleFlatteningStep(radius, s.opts.Tolerance)
	segments := ceilCount(arcLen / step)
	recursions := min(int(math.Log2(float64(segments)))*2, maxCapRecursions)

	dir = normalize(dir)
	quarter := math.Pi / 2
	if isStart {
		quarter = -quarter
	}
	midAngle := directedAngle(curve.Vec(1, 0), dir)
	leftAngle := midAngle + quarter
	rightAngle := midAngle - quarter

	mid := s.addVertex(center, StrokeAttributes{
		Normal:      dir,
		Advancement: s.length,
		Side:        SideLeft,
		Source:      src,
	})
	if isStart {
		s.triangle(left, right, mid)
	} else {
		s.triangle(left, mid, right)
	}

	arc := capArc{
		center:      center,
		advancement: s.length,
		invert:      !isStart,
		src:         src,
	}
	if s.opts.ApplyLineWidth {
		arc.radius = s.opts.LineWidth / 2
	}
	s.roundCapStep(arc, leftAngle, midAngle, left, mid, recursions, SideLeft)
	s.roundCapStep(arc, midAngle, rightAngle, mid, right, recursions, SideRight)
}

// roundCapStep adds the vertex halfway between angles a0 and a1 and the
// triangle it forms with va and vb, then recurses into both halves.
func (s *StrokeBuilder) roundCapStep(arc capArc, a0, a1 float64, va, vb VertexID, depth int, side Side) {
	if depth <= 0 {
		return
	}

	m := (a0 + a1) * 0.5
	normal := curve.VecFromAngle(m)
	v := s.emit(arc.center.Translate(normal.Mul(arc.radius)), StrokeAttributes{
		Normal:      normal,
		Advancement: arc.advancement,
		Side:        side,
		Source:      arc.src,
	})

	if arc.invert {
		s.triangle(v, vb, va)
	} else {
		s.triangle(v, va, vb)
	}

	s.roundCapStep(arc, a0, m, va, v, depth-1, side)
	s.roundCapStep(arc, m, a1, v, vb, depth-1, side)
}
