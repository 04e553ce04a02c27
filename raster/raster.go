// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster draws tessellated geometry into images on the CPU.
//
// It is a preview tool: triangles are filled with golang.org/x/image/vector,
// which accumulates signed coverage, so uniformly wound triangle lists such
// as the ones produced by tess render without seams.
//
// Usage:
//
//	buffers := tess.NewVertexBuffers[tess.StrokeVertex, uint32](0, 0)
//	// ... tessellate into buffers ...
//	pts := raster.Positions(buffers.Vertices)
//	aff := raster.FitTransform(raster.Bounds(pts), 512, 512, 16)
//	img := image.NewRGBA(image.Rect(0, 0, 512, 512))
//	raster.Fill(img, pts, buffers.Indices, aff, image.Black)
package raster

import (
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/tess"
	"golang.org/x/image/vector"
	"honnef.co/go/curve"
)

// Fill draws the triangles of an indexed triangle list over dst, filled
// with src. Vertices are mapped to pixel space with aff. A trailing
// incomplete triangle is ignored.
func Fill[I tess.Index](dst draw.Image, vertices []curve.Point, indices []I, aff curve.Affine, src image.Image) {
	bounds := dst.Bounds()
	if bounds.Empty() {
		return
	}

	r := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	r.DrawOp = draw.Over

	// The rasterizer works in dst's local coordinates.
	aff = aff.ThenTranslate(curve.Vec(-float64(bounds.Min.X), -float64(bounds.Min.Y)))

	triangles := len(indices) / 3
	for i := range triangles {
		a := vertices[indices[3*i]].Transform(aff)
		b := vertices[indices[3*i+1]].Transform(aff)
		c := vertices[indices[3*i+2]].Transform(aff)
		r.MoveTo(float32(a.X), float32(a.Y))
		r.LineTo(float32(b.X), float32(b.Y))
		r.LineTo(float32(c.X), float32(c.Y))
		r.ClosePath()
	}
	r.Draw(dst, bounds, src, image.Point{})

	tess.Logger().Debug("raster: filled triangles", "triangles", triangles, "bounds", bounds)
}

// FillBuffers draws the geometry held by buffers. See Fill.
func FillBuffers[I tess.Index](dst draw.Image, buffers *tess.VertexBuffers[tess.StrokeVertex, I], aff curve.Affine, src image.Image) {
	Fill(dst, Positions(buffers.Vertices), buffers.Indices, aff, src)
}

// Positions returns the positions of vertices.
func Positions(vertices []tess.StrokeVertex) []curve.Point {
	pts := make([]curve.Point, len(vertices))
	for i, v := range vertices {
		pts[i] = curve.Pt(float64(v.Position[0]), float64(v.Position[1]))
	}
	return pts
}

// Bounds returns the bounding box of pts. It is the zero Rect for no points.
func Bounds(pts []curve.Point) curve.Rect {
	if len(pts) == 0 {
		return curve.Rect{}
	}
	r := curve.NewRectFromPoints(pts[0], pts[0])
	for _, p := range pts[1:] {
		r = r.UnionPoint(p)
	}
	return r
}

// FitTransform returns the transform that centers bounds in a w×h image,
// scaled uniformly to leave at least margin pixels on every side. The y
// axis is flipped: path space is y-up, images are y-down.
func FitTransform(bounds curve.Rect, w, h int, margin float64) curve.Affine {
	sx := (float64(w) - 2*margin) / bounds.Width()
	sy := (float64(h) - 2*margin) / bounds.Height()
	s := math.Min(sx, sy)
	if math.IsInf(sx, 1) || math.IsNaN(sx) {
		s = sy
	}
	if math.IsInf(sy, 1) || math.IsNaN(sy) {
		s = sx
	}
	if !(s > 0) || math.IsInf(s, 0) {
		s = 1
	}

	center := bounds.Center()
	return curve.Translate(curve.Vec(-center.X, -center.Y)).
		ThenScale(s, -s).
		ThenTranslate(curve.Vec(float64(w)/2, float64(h)/2))
}
