package tess

import (
	"math"

	"honnef.co/go/curve"
)

// maxFlattenSegments bounds the number of chords per curve so degenerate
// tolerances cannot stall tessellation.
const maxFlattenSegments = 1 << 16

// segmentCount returns the number of uniform chords needed for a curve
// whose deviation from its chords is bounded by k/n².
func segmentCount(k, tolerance float64) int {
	return ceilCount(math.Sqrt(k / tolerance))
}

// ceilCount rounds x up to a usable number of segments.
func ceilCount(x float64) int {
	n := math.Ceil(x)
	switch {
	case !(n >= 1): // zero, negative or NaN
		return 1
	case n > maxFlattenSegments:
		return maxFlattenSegments
	}
	return int(n)
}

// flattenQuadratic approximates q with chords deviating at most tolerance
// from the curve. It calls fn for every chord end, with its curve
// parameter; the start point is skipped and the last call is at t = 1.
func flattenQuadratic(q curve.QuadBez, tolerance float64, fn func(p curve.Point, t float64)) {
	// |B''| = 2|P0 - 2P1 + P2|, and a chord of parameter length h deviates
	// by at most h²/8 |B''|.
	dd := q.P0.Sub(q.P1).Add(q.P2.Sub(q.P1)).Hypot()
	n := segmentCount(dd/4, tolerance)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		fn(q.Eval(t), t)
	}
	fn(q.P2, 1)
}

// flattenCubic is the cubic counterpart of flattenQuadratic.
func flattenCubic(c curve.CubicBez, tolerance float64, fn func(p curve.Point, t float64)) {
	// |B''| <= 6 max(|P0 - 2P1 + P2|, |P1 - 2P2 + P3|).
	dd0 := c.P0.Sub(c.P1).Add(c.P2.Sub(c.P1)).Hypot()
	dd1 := c.P1.Sub(c.P2).Add(c.P3.Sub(c.P2)).Hypot()
	n := segmentCount(3*math.Max(dd0, dd1)/4, tolerance)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		fn(c.Eval(t), t)
	}
	fn(c.P3, 1)
}

// flattenArc approximates an elliptic arc with chords. The arc is first
// converted to cubic segments, which are then flattened; t is the
// parameter within the whole arc.
func flattenArc(a curve.Arc, tolerance float64, fn func(p curve.Point, t float64)) {
	var cubics []curve.CubicBez
	var from curve.Point
	for el := range a.PathElements(tolerance) {
		switch el.Kind {
		case curve.MoveToKind:
			from = el.P0
		case curve.CubicToKind:
			cubics = append(cubics, curve.CubicBez{P0: from, P1: el.P0, P2: el.P1, P3: el.P2})
			from = el.P2
		}
	}
	n := float64(len(cubics))
	for i, c := range cubics {
		base := float64(i)
		flattenCubic(c, tolerance, func(p curve.Point, t float64) {
			fn(p, (base+t)/n)
		})
	}
}
