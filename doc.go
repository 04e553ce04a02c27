// Package tess tessellates the strokes of 2D paths into triangles.
//
// # Overview
//
// tess turns the outline of a stroked path into an indexed triangle list
// that a GPU can draw without further processing. Curves and arcs are
// flattened to line segments within a tolerance; joins, caps and the
// overlap at sharp inner corners are built from those segments.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/tess"
//	    "github.com/gogpu/tess/path"
//	)
//
//	b := path.NewPathBuilder()
//	b.MoveTo(path.Pt(0, 0))
//	b.LineTo(path.Pt(100, 0))
//	b.QuadraticBezierTo(path.Pt(100, 100), path.Pt(0, 100))
//	b.Close()
//
//	buffers := tess.NewVertexBuffers[tess.StrokeVertex, uint32](0, 0)
//	opts := tess.DefaultStrokeOptions().WithLineWidth(4).WithLineJoin(tess.LineJoinRound)
//	_, err := tess.Stroke(b.Build(), opts, tess.NewBuffersBuilder(buffers, tess.StrokeVertices))
//
// # Geometry sinks
//
// Tessellators do not own any storage. They report vertices and triangles
// to a StrokeGeometryBuilder, which decides how to store them.
// BuffersBuilder appends to VertexBuffers; custom vertex types are built
// through a StrokeVertexConstructor. Each vertex comes with its normal,
// the distance travelled along the path, its side and the endpoint or
// edge of the input path it was generated from.
//
// A tessellation call either succeeds, or aborts the geometry it started
// and returns the first error. The only error a sink may report is
// ErrTooManyVertices.
//
// # Coordinate System
//
// The left side of a path is the side a normal rotated counter-clockwise
// from its direction points to, in a y-up frame. Triangles are emitted
// with a uniform orientation.
//
// # Logging
//
// tess is silent by default. See SetLogger.
package tess
