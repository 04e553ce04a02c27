package tess

import (
	"math"
	"testing"

	"honnef.co/go/curve"
)

func TestComputeNormal(t *testing.T) {
	tests := []struct {
		name   string
		v1, v2 curve.Vec2
		want   curve.Vec2
	}{
		{"straight", curve.Vec(1, 0), curve.Vec(1, 0), curve.Vec(0, 1)},
		{"left turn", curve.Vec(1, 0), curve.Vec(0, 1), curve.Vec(-1, 1)},
		{"right turn", curve.Vec(1, 0), curve.Vec(0, -1), curve.Vec(1, 1)},
		{"u-turn", curve.Vec(1, 0), curve.Vec(-1, 0), curve.Vec(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeNormal(tt.v1, tt.v2)
			if got.Sub(tt.want).Hypot() > 1e-9 {
				t.Errorf("computeNormal(%v, %v) = %v, want %v", tt.v1, tt.v2, got, tt.want)
			}
		})
	}
}

func TestJoinAngle(t *testing.T) {
	tests := []struct {
		prev, next curve.Vec2
		want       float64
	}{
		{curve.Vec(1, 0), curve.Vec(1, 0), 0},
		{curve.Vec(1, 0), curve.Vec(0, 1), -math.Pi / 2},
		{curve.Vec(1, 0), curve.Vec(0, -1), math.Pi / 2},
		{curve.Vec(-1, 0.001), curve.Vec(-1, -0.001), -0.002},
	}
	for _, tt := range tests {
		if got := joinAngle(normalize(tt.prev), normalize(tt.next)); math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("joinAngle(%v, %v) = %v, want %v", tt.prev, tt.next, got, tt.want)
		}
	}
}

func TestRotate(t *testing.T) {
	sin, cos := math.Sincos(math.Pi / 2)
	got := rotate(curve.Vec(1, 0), sin, cos)
	if got.Sub(curve.Vec(0, -1)).Hypot() > 1e-12 {
		t.Errorf("rotate((1, 0), π/2) = %v, want (0, -1)", got)
	}
}

func TestSegmentIntersection(t *testing.T) {
	a := curve.Line{P0: curve.Pt(0, 0), P1: curve.Pt(2, 2)}
	tests := []struct {
		name string
		b    curve.Line
		want curve.Point
		ok   bool
	}{
		{"crossing", curve.Line{P0: curve.Pt(0, 2), P1: curve.Pt(2, 0)}, curve.Pt(1, 1), true},
		{"beyond extent", curve.Line{P0: curve.Pt(0, 6), P1: curve.Pt(6, 0)}, curve.Point{}, false},
		{"parallel", curve.Line{P0: curve.Pt(0, 1), P1: curve.Pt(2, 3)}, curve.Point{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := segmentIntersection(a, tt.b)
			if ok != tt.ok || (ok && got.Distance(tt.want) > 1e-9) {
				t.Errorf("segmentIntersection() = %v, %v, want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCircleFlatteningStep(t *testing.T) {
	// Tolerances above the radius are clamped.
	if got := circleFlatteningStep(1, 5); got != 2 {
		t.Errorf("circleFlatteningStep(1, 5) = %v, want 2", got)
	}
	if a, b := circleFlatteningStep(10, 0.1), circleFlatteningStep(10, 0.01); a <= b {
		t.Errorf("step at tolerance 0.1 = %v, want more than %v at 0.01", a, b)
	}
}

func TestCeilCount(t *testing.T) {
	tests := []struct {
		x    float64
		want int
	}{
		{0, 1},
		{-3, 1},
		{math.NaN(), 1},
		{0.2, 1},
		{2.5, 3},
		{math.Inf(1), maxFlattenSegments},
	}
	for _, tt := range tests {
		if got := ceilCount(tt.x); got != tt.want {
			t.Errorf("ceilCount(%v) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

type flattened struct {
	pts []curve.Point
	ts  []float64
}

func (f *flattened) add(p curve.Point, t float64) {
	f.pts = append(f.pts, p)
	f.ts = append(f.ts, t)
}

func checkFlattened(t *testing.T, f *flattened, end curve.Point, eval func(float64) curve.Point, tolerance float64) {
	t.Helper()
	if len(f.pts) == 0 {
		t.Fatal("no points")
	}
	if last := f.pts[len(f.pts)-1]; last != end {
		t.Errorf("last point = %v, want %v", last, end)
	}
	if last := f.ts[len(f.ts)-1]; last != 1 {
		t.Errorf("last t = %v, want 1", last)
	}
	prevT := 0.0
	prev := eval(0)
	for i, ti := range f.ts {
		if ti <= prevT {
			t.Errorf("t[%d] = %v, not increasing", i, ti)
		}
		// The curve stays close to each chord's midpoint.
		mid := prev.Lerp(f.pts[i], 0.5)
		if d := eval((prevT + ti) / 2).Distance(mid); d > tolerance {
			t.Errorf("chord %d deviates by %v, want <= %v", i, d, tolerance)
		}
		prevT, prev = ti, f.pts[i]
	}
}

func TestFlattenQuadratic(t *testing.T) {
	q := curve.QuadBez{P0: curve.Pt(0, 0), P1: curve.Pt(50, 100), P2: curve.Pt(100, 0)}
	for _, tol := range []float64{1, 0.1, 0.01} {
		var f flattened
		flattenQuadratic(q, tol, f.add)
		checkFlattened(t, &f, q.P2, q.Eval, tol)
	}
}

func TestFlattenCubic(t *testing.T) {
	c := curve.CubicBez{P0: curve.Pt(0, 0), P1: curve.Pt(0, 100), P2: curve.Pt(100, 100), P3: curve.Pt(100, 0)}
	for _, tol := range []float64{1, 0.1, 0.01} {
		var f flattened
		flattenCubic(c, tol, f.add)
		checkFlattened(t, &f, c.P3, c.Eval, tol)
	}
}

func TestFlattenStraightCurve(t *testing.T) {
	c := curve.CubicBez{P0: curve.Pt(0, 0), P1: curve.Pt(1, 0), P2: curve.Pt(2, 0), P3: curve.Pt(3, 0)}
	var f flattened
	flattenCubic(c, 0.1, f.add)
	if len(f.pts) != 1 {
		t.Errorf("flattened straight cubic into %d points, want 1", len(f.pts))
	}
}

func TestFlattenArc(t *testing.T) {
	arc := curve.Arc{
		Center:     curve.Pt(0, 0),
		Radii:      curve.Vec(10, 10),
		StartAngle: 0,
		SweepAngle: math.Pi,
	}
	var f flattened
	flattenArc(arc, 0.01, f.add)
	if len(f.pts) < 4 {
		t.Fatalf("flattened half circle into %d points", len(f.pts))
	}
	for i, p := range f.pts {
		if d := p.Distance(arc.Center); math.Abs(d-10) > 0.02 {
			t.Errorf("point %d at distance %v from the center, want 10", i, d)
		}
	}
	if last := f.ts[len(f.ts)-1]; last != 1 {
		t.Errorf("last t = %v, want 1", last)
	}
	if end := f.pts[len(f.pts)-1]; end.Distance(curve.Pt(-10, 0)) > 1e-9 {
		t.Errorf("last point = %v, want (-10, 0)", end)
	}
}
