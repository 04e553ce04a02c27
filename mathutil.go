package tess

import (
	"math"

	"honnef.co/go/curve"
)

// tangent returns v rotated by 90 degrees towards the left side.
func tangent(v curve.Vec2) curve.Vec2 {
	return curve.Vec(-v.Y, v.X)
}

// normalize returns v scaled to unit length. The zero vector stays zero.
func normalize(v curve.Vec2) curve.Vec2 {
	l := v.Hypot()
	if l == 0 {
		return v
	}
	return v.Div(l)
}

func normalizedTangent(v curve.Vec2) curve.Vec2 {
	return normalize(tangent(v))
}

// computeNormal returns the normal at a point P between the edges
// x --v1--> P --v2--> x, pointing towards the left side of v1.
//
// The result is not normalized: extruding both edges along it by one
// unit yields offset segments exactly one unit away from the edges, so
// its length grows as the angle between the edges gets sharper.
// v1 and v2 must be normalized.
func computeNormal(v1, v2 curve.Vec2) curve.Vec2 {
	const epsilon = 1e-4

	n1 := tangent(v1)
	v12 := v1.Add(v2)
	if v12.Hypot2() < epsilon {
		return n1
	}

	n := tangent(normalize(v12))
	invLen := n.Dot(n1)
	if math.Abs(invLen) < epsilon {
		return n1
	}
	return n.Div(invLen)
}

// directedAngle returns the counter-clockwise angle from v1 to v2 in [0, 2π).
func directedAngle(v1, v2 curve.Vec2) float64 {
	angle := v2.Angle() - v1.Angle()
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// circleFlatteningStep returns the length of the chords approximating a
// circle of the given radius within tolerance.
func circleFlatteningStep(radius, tolerance float64) float64 {
	// High tolerances relative to the radius would make the root negative.
	tolerance = math.Min(tolerance, radius)
	return 2 * math.Sqrt(2*tolerance*radius-tolerance*tolerance)
}

// maxSegmentAngle returns the largest angle an arc of the given radius can
// sweep while staying within tolerance of its chord.
func maxSegmentAngle(radius, tolerance float64) float64 {
	t := radius - math.Min(tolerance, radius)
	return math.Sqrt((radius*radius-t*t)*4) / radius
}

// joinAngle returns the signed angle turned from prev to next, in [-π, π].
func joinAngle(prev, next curve.Vec2) float64 {
	angle := prev.Angle() - next.Angle()
	if angle > math.Pi {
		angle -= 2 * math.Pi
	} else if angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// segmentIntersection returns the intersection of segments a and b, if
// they cross within both of their extents.
func segmentIntersection(a, b curve.Line) (curve.Point, bool) {
	p, ok := a.CrossingPoint(b)
	if !ok {
		return curve.Point{}, false
	}
	const epsilon = 1e-9
	within := func(l curve.Line) bool {
		d := l.P1.Sub(l.P0)
		den := d.Hypot2()
		if den == 0 {
			return false
		}
		t := p.Sub(l.P0).Dot(d) / den
		return t >= -epsilon && t <= 1+epsilon
	}
	if !within(a) || !within(b) {
		return curve.Point{}, false
	}
	return p, true
}

// rotate returns v rotated by the angle whose sine and cosine are given,
// clockwise in a y-up frame.
func rotate(v curve.Vec2, sin, cos float64) curve.Vec2 {
	return curve.Vec(v.X*cos+v.Y*sin, -v.X*sin+v.Y*cos)
}

func isFinite(v curve.Vec2) bool {
	return !v.IsNaN() && !v.IsInf()
}
