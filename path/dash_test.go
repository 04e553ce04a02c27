// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package path

import (
	"math"
	"testing"

	"honnef.co/go/curve"
)

func TestNewDash(t *testing.T) {
	tests := []struct {
		name    string
		lengths []float64
		wantNil bool
		pattern float64
	}{
		{"empty", nil, true, 0},
		{"zeros", []float64{0, 0}, true, 0},
		{"even", []float64{5, 3}, false, 8},
		{"odd", []float64{5}, false, 10},
		{"negative", []float64{-4, 2}, false, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDash(tt.lengths...)
			if (d == nil) != tt.wantNil {
				t.Fatalf("NewDash(%v) = %v, want nil %v", tt.lengths, d, tt.wantNil)
			}
			if got := d.PatternLength(); got != tt.pattern {
				t.Errorf("PatternLength() = %v, want %v", got, tt.pattern)
			}
			if got := d.IsDashed(); got == tt.wantNil {
				t.Errorf("IsDashed() = %v, want %v", got, !tt.wantNil)
			}
		})
	}
}

func TestDashNormalizedOffset(t *testing.T) {
	tests := []struct {
		offset, want float64
	}{
		{0, 0},
		{3, 3},
		{10, 2},
		{-3, 5},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		d := NewDash(5, 3).WithOffset(tt.offset)
		if got := d.NormalizedOffset(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("NormalizedOffset() with offset %v = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestDashScale(t *testing.T) {
	d := NewDash(2, 1).WithOffset(1).Scale(3)
	if d.Array[0] != 6 || d.Array[1] != 3 || d.Offset != 3 {
		t.Errorf("Scale(3) = %+v, want [6 3] offset 3", d)
	}
	var none *Dash
	if none.Scale(2) != nil || none.WithOffset(1) != nil {
		t.Error("nil Dash methods returned non-nil")
	}
}

// subPaths returns the first and last position of each sub-path of p.
func subPaths(p *Path) [][2]curve.Point {
	var out [][2]curve.Point
	for evt := range PointEventsOf(p).All() {
		if evt.Kind == EventEnd {
			out = append(out, [2]curve.Point{evt.First(), evt.Last()})
		}
	}
	return out
}

func TestDashApplyLine(t *testing.T) {
	b := NewPathBuilder()
	b.MoveTo(Pt(0, 0))
	b.LineTo(Pt(100, 0))
	p := b.Build()

	dashed := NewDash(10, 5).Apply(p)
	got := subPaths(dashed)
	if len(got) != 7 {
		t.Fatalf("%d dashes, want 7", len(got))
	}
	for i, sp := range got {
		start := curve.Pt(float64(15*i), 0)
		end := curve.Pt(min(float64(15*i+10), 100), 0)
		if sp[0].Distance(start) > 1e-6 || sp[1].Distance(end) > 1e-6 {
			t.Errorf("dash %d = %v to %v, want %v to %v", i, sp[0], sp[1], start, end)
		}
	}
}

func TestDashApplyClosed(t *testing.T) {
	b := NewPathBuilder()
	AddRectangle(b, curve.Rect{X0: 0, Y0: 0, X1: 10, Y1: 10})
	p := b.Build()

	for _, offset := range []float64{0, 5} {
		dashed := NewDash(10, 10).WithOffset(offset).Apply(p)
		if got := len(subPaths(dashed)); got != 2 {
			t.Errorf("offset %v: %d dashes, want 2", offset, got)
		}
		for evt := range PointEventsOf(dashed).All() {
			if evt.Kind == EventEnd && evt.Close {
				t.Errorf("offset %v: dash %v is closed", offset, evt)
			}
		}
	}
}

func TestDashApplySolid(t *testing.T) {
	p := samplePath()
	var d *Dash
	if got := d.Apply(p); got != p {
		t.Error("Apply() with a nil Dash returned a new path")
	}
}
