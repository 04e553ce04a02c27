// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package path

import (
	"math"

	"honnef.co/go/curve"
)

// kappa is the control point distance, relative to the radius, of a cubic
// Bézier approximating a quarter circle: 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// AddRectangle adds r to b as a closed sub-path, starting at (X0, Y0) and
// going towards (X1, Y0).
func AddRectangle(b *PathBuilder, r curve.Rect) {
	b.MoveTo(Pt(r.X0, r.Y0))
	b.LineTo(Pt(r.X1, r.Y0))
	b.LineTo(Pt(r.X1, r.Y1))
	b.LineTo(Pt(r.X0, r.Y1))
	b.Close()
}

// AddRoundedRectangle adds r with corners rounded by radius. The radius
// is clamped to half of the smaller side.
func AddRoundedRectangle(b *PathBuilder, r curve.Rect, radius float64) {
	r = r.Abs()
	radius = max(0, min(radius, r.Width()/2, r.Height()/2))
	if radius == 0 {
		AddRectangle(b, r)
		return
	}
	k := kappa * radius
	x0, y0, x1, y1 := r.X0, r.Y0, r.X1, r.Y1

	b.MoveTo(Pt(x0+radius, y0))
	b.LineTo(Pt(x1-radius, y0))
	b.CubicBezierTo(Pt(x1-radius+k, y0), Pt(x1, y0+radius-k), Pt(x1, y0+radius))
	b.LineTo(Pt(x1, y1-radius))
	b.CubicBezierTo(Pt(x1, y1-radius+k), Pt(x1-radius+k, y1), Pt(x1-radius, y1))
	b.LineTo(Pt(x0+radius, y1))
	b.CubicBezierTo(Pt(x0+radius-k, y1), Pt(x0, y1-radius+k), Pt(x0, y1-radius))
	b.LineTo(Pt(x0, y0+radius))
	b.CubicBezierTo(Pt(x0, y0+radius-k), Pt(x0+radius-k, y0), Pt(x0+radius, y0))
	b.Close()
}

// AddCircle adds a circle made of four cubic Bézier curves.
func AddCircle(b *PathBuilder, center curve.Point, radius float64) {
	AddEllipse(b, center, curve.Vec(radius, radius))
}

// AddEllipse adds an axis-aligned ellipse made of four cubic Bézier
// curves, starting at its rightmost point.
func AddEllipse(b *PathBuilder, center curve.Point, radii curve.Vec2) {
	cx, cy := center.X, center.Y
	rx, ry := radii.X, radii.Y
	ox, oy := kappa*rx, kappa*ry

	b.MoveTo(Pt(cx+rx, cy))
	b.CubicBezierTo(Pt(cx+rx, cy+oy), Pt(cx+ox, cy+ry), Pt(cx, cy+ry))
	b.CubicBezierTo(Pt(cx-ox, cy+ry), Pt(cx-rx, cy+oy), Pt(cx-rx, cy))
	b.CubicBezierTo(Pt(cx-rx, cy-oy), Pt(cx-ox, cy-ry), Pt(cx, cy-ry))
	b.CubicBezierTo(Pt(cx+ox, cy-ry), Pt(cx+rx, cy-oy), Pt(cx+rx, cy))
	b.Close()
}

// AddPolygon adds the polyline through pts, closed when closed is true.
// Nothing is added for an empty slice.
func AddPolygon(b *PathBuilder, pts []curve.Point, closed bool) {
	if len(pts) == 0 {
		return
	}
	b.MoveTo(Point(pts[0]))
	for _, p := range pts[1:] {
		b.LineTo(Point(p))
	}
	if closed {
		b.Close()
	}
}

// AddRegularPolygon adds a closed regular polygon with the given number
// of sides, with a vertex straight above the center. Fewer than three
// sides add nothing.
func AddRegularPolygon(b *PathBuilder, center curve.Point, radius float64, sides int) {
	if sides < 3 {
		return
	}
	AddPolygon(b, ring(center, sides, func(int) float64 { return radius }), true)
}

// AddStar adds a closed star with the given number of points, alternating
// between outer and inner radius, with a point straight above the center.
// Fewer than three points add nothing.
func AddStar(b *PathBuilder, center curve.Point, outer, inner float64, points int) {
	if points < 3 {
		return
	}
	AddPolygon(b, ring(center, 2*points, func(i int) float64 {
		if i%2 == 1 {
			return inner
		}
		return outer
	}), true)
}

// ring returns n points evenly spaced around center, counter-clockwise in
// a y-up frame, starting at the top.
func ring(center curve.Point, n int, radius func(i int) float64) []curve.Point {
	pts := make([]curve.Point, n)
	step := 2 * math.Pi / float64(n)
	for i := range pts {
		angle := math.Pi/2 + float64(i)*step
		pts[i] = center.Translate(curve.VecFromAngle(angle).Mul(radius(i)))
	}
	return pts
}
