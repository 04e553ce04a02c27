package tess

import (
	"math"

	"honnef.co/go/curve"
)

// joinVertices are the vertices of a join, as seen from the edge before
// it (start) and the edge after it (end).
type joinVertices struct {
	startLeft  VertexID
	startRight VertexID
	endLeft    VertexID
	endRight   VertexID
	front      Side
}

// backOrder tells whether the back side of a join needs a second vertex
// because one of its edges is shorter than the stroke's half width, and
// on which edge that vertex sits.
type backOrder uint8

const (
	backNone backOrder = iota
	backBefore
	backAfter
)

// sideNormal returns the unit normal of the unit tangent t on side.
func sideNormal(t curve.Vec2, side Side) curve.Vec2 {
	if side == SideRight {
		return curve.Vec(t.Y, -t.X)
	}
	return tangent(t)
}

func sideSign(side Side) float64 {
	if side == SideLeft {
		return 1
	}
	return -1
}

// tessellateJoin emits the vertices of the join at the current point,
// between the edges prevEdge and nextEdge.
//
// The front side is the outer side of the turn, where the join shape
// (miter, bevel, round or clipped miter) is built. The back side is the
// inner side, where the offset edges overlap.
func (s *StrokeBuilder) tessellateJoin(prevEdge, nextEdge curve.Vec2, joinType LineJoin) joinVertices {
	prevTangent := normalize(prevEdge)
	nextTangent := normalize(nextEdge)
	prevLen := prevEdge.Hypot()
	nextLen := nextEdge.Hypot()

	s.length += prevLen

	src := s.joinSource()
	normal := computeNormal(prevTangent, nextTangent)

	front, frontNormal := SideLeft, normal
	if nextTangent.Cross(prevTangent) < 0 {
		front, frontNormal = SideRight, normal.Negate()
	}

	backStart, backEnd, order := s.backJoin(prevTangent, nextTangent, prevLen, nextLen, front, frontNormal, src)

	switch {
	case prevTangent.Dot(nextTangent) >= 0.95:
		// Almost straight: any join shape is indistinguishable from a miter.
		joinType = LineJoinMiter
	case joinType == LineJoinMiter && s.miterLimitExceeded(normal):
		joinType = LineJoinBevel
	case joinType == LineJoinMiterClip && !s.miterLimitExceeded(normal):
		joinType = LineJoinMiter
	}

	back := backStart
	if order == backAfter {
		back = backEnd
	}

	var start, end VertexID
	switch joinType {
	case LineJoinRound:
		start, end = s.roundJoin(prevTangent, nextTangent, front, back, src)
	case LineJoinBevel:
		start, end = s.bevelJoin(prevTangent, nextTangent, front, back, src)
	case LineJoinMiterClip:
		start, end = s.miterClipJoin(prevTangent, nextTangent, front, back, normal, src)
	default:
		start, end = s.miterJoin(prevTangent, nextTangent, front, frontNormal, normal, back, order, src)
	}

	if backEnd != backStart {
		a, b, c := backEnd, end, backStart
		if order == backAfter {
			b = start
		}
		if front == SideLeft {
			s.triangle(a, b, c)
		} else {
			s.triangle(a, c, b)
		}
	}

	if front == SideLeft {
		return joinVertices{startLeft: start, startRight: backStart, endLeft: end, endRight: backEnd, front: front}
	}
	return joinVertices{startLeft: backStart, startRight: start, endLeft: backEnd, endRight: end, front: front}
}

// joinSource returns the source of the join vertices at the current point.
func (s *StrokeBuilder) joinSource() VertexSource {
	if s.currentT == 0 || s.currentT == 1 {
		return EndpointSource(s.currentEndpoint)
	}
	return EdgeSource(s.previousEndpoint, s.currentEndpoint, s.currentT)
}

func (s *StrokeBuilder) miterLimitExceeded(normal curve.Vec2) bool {
	return normal.Hypot2() > s.opts.MiterLimit*s.opts.MiterLimit
}

// joinAttrs returns the attributes of a join vertex at the current point.
func (s *StrokeBuilder) joinAttrs(normal curve.Vec2, side Side, src VertexSource) StrokeAttributes {
	return StrokeAttributes{Normal: normal, Advancement: s.length, Side: side, Source: src}
}

// backJoin emits the back side vertices of the join. When an edge is
// shorter than the half width, the inner miter point would land beyond
// the other end of that edge; the back side then gets a vertex on the
// centerline plus one on the offset of the longer edge.
//
// Edges shorter than the line width between two such joins can still
// fold over; resolving that is left to the consumer.
func (s *StrokeBuilder) backJoin(prevTangent, nextTangent curve.Vec2, prevLen, nextLen float64, front Side, frontNormal curve.Vec2, src VertexSource) (VertexID, VertexID, backOrder) {
	halfWidth := s.opts.LineWidth / 2
	dNext := -halfWidth*frontNormal.Dot(nextTangent) - nextLen
	dPrev := -halfWidth*frontNormal.Dot(prevTangent.Negate()) - prevLen

	d, t2, order := dNext, prevTangent.Negate(), backAfter
	if dPrev > dNext {
		d, t2, order = dPrev, nextTangent, backBefore
	}

	back := front.Opposite()
	if d > 0 {
		n2 := sideNormal(t2, front)
		if order == backAfter {
			n2 = n2.Negate()
		}
		// The first back vertex stays on the centerline; it carries the
		// unit back normal so consumers still get a direction.
		backStart := s.emit(s.current, s.joinAttrs(normalize(frontNormal.Negate()), back, src))
		backEnd := s.addVertex(s.current, s.joinAttrs(n2.Negate(), back, src))
		if order == backBefore {
			return backStart, backEnd, order
		}
		return backEnd, backStart, order
	}

	v := s.addVertex(s.current, s.joinAttrs(frontNormal.Negate(), back, src))
	return v, v, backNone
}

func (s *StrokeBuilder) miterJoin(prevTangent, nextTangent curve.Vec2, front Side, frontNormal, normal curve.Vec2, back VertexID, order backOrder, src VertexSource) (VertexID, VertexID) {
	end := s.addVertex(s.current, s.joinAttrs(frontNormal, front, src))
	s.prevNormal = normal

	if order == backNone {
		return end, end
	}

	// The back side is split, so the front gets a matching vertex on the
	// offset of the edge the split happened on.
	t2 := nextTangent
	if order == backAfter {
		t2 = prevTangent
	}
	start := s.addVertex(s.current, s.joinAttrs(sideNormal(t2, front), front, src))
	if (front == SideRight) != (order == backBefore) {
		s.triangle(end, start, back)
	} else {
		s.triangle(start, end, back)
	}

	if order == backBefore {
		return end, start
	}
	return start, end
}

func (s *StrokeBuilder) bevelJoin(prevTangent, nextTangent curve.Vec2, front Side, back VertexID, src VertexSource) (VertexID, VertexID) {
	sign := sideSign(front)
	prevNormal := tangent(prevTangent)
	nextNormal := tangent(nextTangent)

	start := s.addVertex(s.current, s.joinAttrs(prevNormal.Mul(sign), front, src))
	last := s.addVertex(s.current, s.joinAttrs(nextNormal.Mul(sign), front, src))
	s.prevNormal = nextNormal

	if front == SideLeft {
		s.triangle(start, last, back)
	} else {
		s.triangle(last, start, back)
	}
	return start, last
}

func (s *StrokeBuilder) roundJoin(prevTangent, nextTangent curve.Vec2, front Side, back VertexID, src VertexSource) (VertexID, VertexID) {
	angle := joinAngle(prevTangent, nextTangent)
	maxAngle := maxSegmentAngle(s.opts.LineWidth/2, s.opts.Tolerance)
	n := ceilCount(math.Abs(angle) / maxAngle)
	segAngle := angle / float64(n)
	sin, cos := math.Sincos(segAngle)

	sign := sideSign(front)
	normal := tangent(prevTangent).Mul(sign)
	last := s.addVertex(s.current, s.joinAttrs(normal, front, src))
	start := last

	for range n {
		normal = rotate(normal, sin, cos)
		v := s.addVertex(s.current, s.joinAttrs(normal, front, src))
		if front == SideLeft {
			s.triangle(back, last, v)
		} else {
			s.triangle(back, v, last)
		}
		last = v
	}

	s.prevNormal = normal.Mul(sign)
	return start, last
}

func (s *StrokeBuilder) miterClipJoin(prevTangent, nextTangent curve.Vec2, front Side, back VertexID, normal curve.Vec2, src VertexSource) (VertexID, VertexID) {
	sign := sideSign(front)
	v1, v2 := s.clipIntersections(tangent(prevTangent), tangent(nextTangent), normal)

	start := s.addVertex(s.current, s.joinAttrs(v1.Mul(sign), front, src))
	last := s.addVertex(s.current, s.joinAttrs(v2.Mul(sign), front, src))
	s.prevNormal = normal

	if front == SideLeft {
		s.triangle(back, start, last)
	} else {
		s.triangle(back, last, start)
	}
	return start, last
}

// clipIntersections returns where the offsets of both edges cross the
// line clipping the miter at the miter limit.
func (s *StrokeBuilder) clipIntersections(prevNormal, nextNormal, normal curve.Vec2) (curve.Vec2, curve.Vec2) {
	limit := normalize(normal).Mul(s.opts.MiterLimit * s.opts.LineWidth)
	clip := curve.Line{
		P0: curve.Pt(limit.X-limit.Y, limit.Y+limit.X),
		P1: curve.Pt(limit.X+limit.Y, limit.Y-limit.X),
	}
	tip := curve.Pt(normal.X, normal.Y)

	intersect := func(n curve.Vec2) curve.Vec2 {
		from := curve.Pt(n.X, n.Y)
		p, ok := segmentIntersection(curve.Line{P0: from, P1: tip}, clip)
		if !ok {
			return n
		}
		return curve.Vec(p.X, p.Y)
	}
	return intersect(prevNormal), intersect(nextNormal)
}
