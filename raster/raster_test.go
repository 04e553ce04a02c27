// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/tess"
	"github.com/gogpu/tess/path"
	"honnef.co/go/curve"
)

func TestFillTriangles(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	// Two triangles covering the square [2, 8]², sharing a diagonal.
	pts := []curve.Point{curve.Pt(2, 2), curve.Pt(8, 2), curve.Pt(8, 8), curve.Pt(2, 8)}
	indices := []uint16{0, 1, 2, 0, 2, 3}
	Fill(img, pts, indices, curve.Identity, image.NewUniform(color.Black))

	tests := []struct {
		x, y int
		want uint8
	}{
		{5, 5, 0xff}, // on the shared diagonal
		{3, 6, 0xff},
		{6, 3, 0xff},
		{0, 0, 0},
		{9, 5, 0},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y).A; got != tt.want {
			t.Errorf("alpha at (%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestFillOverlapSaturates(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	pts := []curve.Point{curve.Pt(0, 0), curve.Pt(10, 0), curve.Pt(0, 10)}
	// The same triangle twice.
	Fill(img, pts, []uint32{0, 1, 2, 0, 1, 2}, curve.Identity, image.NewUniform(color.Black))
	if got := img.RGBAAt(2, 2).A; got != 0xff {
		t.Errorf("alpha at (2, 2) = %d, want 255", got)
	}
}

func TestFillSubImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	sub := img.SubImage(image.Rect(10, 10, 20, 20)).(*image.RGBA)
	pts := []curve.Point{curve.Pt(10, 10), curve.Pt(20, 10), curve.Pt(20, 20), curve.Pt(10, 20)}
	Fill(sub, pts, []uint32{0, 1, 2, 0, 2, 3}, curve.Identity, image.NewUniform(color.Black))

	if got := img.RGBAAt(15, 15).A; got != 0xff {
		t.Errorf("alpha at (15, 15) = %d, want 255", got)
	}
	if got := img.RGBAAt(5, 5).A; got != 0 {
		t.Errorf("alpha at (5, 5) = %d, want 0", got)
	}
}

func TestFillStroke(t *testing.T) {
	b := path.NewPathBuilder()
	b.MoveTo(path.Pt(0, 0))
	b.LineTo(path.Pt(100, 0))
	b.LineTo(path.Pt(100, 100))
	b.LineTo(path.Pt(0, 100))
	b.Close()

	buffers := tess.NewVertexBuffers[tess.StrokeVertex, uint32](0, 0)
	opts := tess.DefaultStrokeOptions().WithLineWidth(10)
	if _, err := tess.Stroke(b.Build(), opts, tess.NewBuffersBuilder(buffers, tess.StrokeVertices)); err != nil {
		t.Fatalf("Stroke() error = %v", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, 120, 120))
	FillBuffers(img, buffers, curve.Translate(curve.Vec(10, 10)), image.NewUniform(color.Black))

	tests := []struct {
		name string
		x, y int
		want uint8
	}{
		{"left edge", 10, 60, 0xff},
		{"outer corner", 6, 6, 0xff},
		{"inside", 60, 60, 0},
		{"outside", 2, 60, 0},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y).A; got != tt.want {
			t.Errorf("%s: alpha at (%d, %d) = %d, want %d", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPositions(t *testing.T) {
	verts := []tess.StrokeVertex{
		{Position: [2]float32{1, 2}},
		{Position: [2]float32{-3, 4.5}},
	}
	got := Positions(verts)
	want := []curve.Point{curve.Pt(1, 2), curve.Pt(-3, 4.5)}
	if len(got) != len(want) {
		t.Fatalf("len(Positions()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Positions()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBounds(t *testing.T) {
	if got := Bounds(nil); got != (curve.Rect{}) {
		t.Errorf("Bounds(nil) = %v, want zero", got)
	}
	got := Bounds([]curve.Point{curve.Pt(1, 5), curve.Pt(-2, 3), curve.Pt(4, -1)})
	want := curve.Rect{X0: -2, Y0: -1, X1: 4, Y1: 5}
	if got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestFitTransform(t *testing.T) {
	tests := []struct {
		name   string
		bounds curve.Rect
		w, h   int
		margin float64
		// Where the bounds' corners (X0, Y0) and (X1, Y1) land.
		p0, p1 curve.Point
	}{
		{
			name:   "square",
			bounds: curve.Rect{X0: 0, Y0: 0, X1: 10, Y1: 10},
			w:      100, h: 100, margin: 10,
			p0: curve.Pt(10, 90), p1: curve.Pt(90, 10),
		},
		{
			name:   "wide",
			bounds: curve.Rect{X0: -10, Y0: -5, X1: 10, Y1: 5},
			w:      100, h: 100, margin: 0,
			p0: curve.Pt(0, 75), p1: curve.Pt(100, 25),
		},
		{
			name:   "horizontal line",
			bounds: curve.Rect{X0: 0, Y0: 5, X1: 10, Y1: 5},
			w:      100, h: 50, margin: 0,
			p0: curve.Pt(0, 25), p1: curve.Pt(100, 25),
		},
		{
			name:   "point",
			bounds: curve.Rect{X0: 3, Y0: 3, X1: 3, Y1: 3},
			w:      40, h: 40, margin: 0,
			p0: curve.Pt(20, 20), p1: curve.Pt(20, 20),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aff := FitTransform(tt.bounds, tt.w, tt.h, tt.margin)
			if aff.IsNaN() || aff.IsInf() {
				t.Fatalf("FitTransform() = %v, want finite", aff)
			}
			p0 := curve.Pt(tt.bounds.X0, tt.bounds.Y0).Transform(aff)
			p1 := curve.Pt(tt.bounds.X1, tt.bounds.Y1).Transform(aff)
			if p0.Distance(tt.p0) > 1e-9 || p1.Distance(tt.p1) > 1e-9 {
				t.Errorf("corners map to %v and %v, want %v and %v", p0, p1, tt.p0, tt.p1)
			}
		})
	}
}

func TestFitTransformKeepsAspect(t *testing.T) {
	aff := FitTransform(curve.Rect{X0: 0, Y0: 0, X1: 4, Y1: 1}, 200, 200, 0)
	c := aff.Coefficients()
	if math.Abs(c[0]) != math.Abs(c[3]) {
		t.Errorf("scale = (%v, %v), want uniform", c[0], c[3])
	}
}
