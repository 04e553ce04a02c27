// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package path

import (
	"math"
	"testing"

	"honnef.co/go/curve"
)

func TestAddRectangle(t *testing.T) {
	b := NewPathBuilder()
	AddRectangle(b, curve.Rect{X0: 1, Y0: 2, X1: 4, Y1: 6})
	p := b.Build()
	if got, want := p.Commands().String(), "M 0 L 1 L 2 L 3 Z"; got != want {
		t.Errorf("Commands().String() = %q, want %q", got, want)
	}
	if got := p.Endpoint(2); got != Pt(4, 6) {
		t.Errorf("Endpoint(2) = %v, want (4, 6)", got)
	}
}

func TestAddRoundedRectangle(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		want   string
	}{
		{"rounded", 2, "M 0 L 1 C 0 1 2 L 3 C 2 3 4 L 5 C 4 5 6 L 7 C 6 7 8 Z"},
		{"square corners", 0, "M 0 L 1 L 2 L 3 Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewPathBuilder()
			AddRoundedRectangle(b, curve.Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}, tt.radius)
			if got := b.Build().Commands().String(); got != tt.want {
				t.Errorf("Commands().String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddRoundedRectangleClampsRadius(t *testing.T) {
	b := NewPathBuilder()
	AddRoundedRectangle(b, curve.Rect{X0: 0, Y0: 0, X1: 10, Y1: 4}, 100)
	p := b.Build()
	// With the radius clamped to 2 the straight bottom edge is 6 long.
	if got := p.Endpoint(0); got != Pt(2, 0) {
		t.Errorf("Endpoint(0) = %v, want (2, 0)", got)
	}
	if got := p.Endpoint(1); got != Pt(8, 0) {
		t.Errorf("Endpoint(1) = %v, want (8, 0)", got)
	}
}

func TestAddCircle(t *testing.T) {
	b := NewPathBuilder()
	AddCircle(b, curve.Pt(5, 5), 10)
	p := b.Build()

	var curves int
	for evt := range PointEventsOf(p).All() {
		if evt.Kind != EventCubic {
			continue
		}
		curves++
		c := curve.CubicBez{P0: evt.From, P1: evt.Ctrl1, P2: evt.Ctrl2, P3: evt.To}
		for _, ti := range []float64{0, 0.25, 0.5, 0.75, 1} {
			if d := c.Eval(ti).Distance(curve.Pt(5, 5)); math.Abs(d-10) > 0.01 {
				t.Errorf("point at t=%v is %v from the center, want 10", ti, d)
			}
		}
	}
	if curves != 4 {
		t.Errorf("%d curves, want 4", curves)
	}
}

func TestAddRegularPolygon(t *testing.T) {
	b := NewPathBuilder()
	AddRegularPolygon(b, curve.Pt(0, 0), 1, 4)
	AddRegularPolygon(b, curve.Pt(0, 0), 1, 2)
	p := b.Build()

	want := []Point{Pt(0, 1), Pt(-1, 0), Pt(0, -1), Pt(1, 0)}
	eps := p.Endpoints()
	if len(eps) != len(want) {
		t.Fatalf("%d endpoints, want %d", len(eps), len(want))
	}
	for i := range want {
		if curve.Point(eps[i]).Distance(curve.Point(want[i])) > 1e-12 {
			t.Errorf("Endpoint(%d) = %v, want %v", i, eps[i], want[i])
		}
	}
}

func TestAddStar(t *testing.T) {
	b := NewPathBuilder()
	AddStar(b, curve.Pt(0, 0), 10, 4, 5)
	p := b.Build()

	eps := p.Endpoints()
	if len(eps) != 10 {
		t.Fatalf("%d endpoints, want 10", len(eps))
	}
	for i, ep := range eps {
		want := 10.0
		if i%2 == 1 {
			want = 4
		}
		if r := curve.Point(ep).Distance(curve.Pt(0, 0)); math.Abs(r-want) > 1e-12 {
			t.Errorf("Endpoint(%d) at radius %v, want %v", i, r, want)
		}
	}
}

func TestAddPolygonOpen(t *testing.T) {
	b := NewPathBuilder()
	AddPolygon(b, nil, true)
	AddPolygon(b, []curve.Point{curve.Pt(0, 0), curve.Pt(1, 1), curve.Pt(2, 0)}, false)
	if got, want := b.Build().Commands().String(), "M 0 L 1 L 2"; got != want {
		t.Errorf("Commands().String() = %q, want %q", got, want)
	}
}
