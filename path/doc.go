// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package path encodes the topology of 2D paths as a compact stream of
// tagged cells and iterates over it.
//
// A path is a sequence of sub-paths. Each sub-path starts with a Begin
// event, continues with Line, Quadratic and Cubic edges, and terminates
// with an End event that may close it. Events do not carry positions:
// they reference endpoints and control points by ID, and a GenericPath
// stores those values next to the stream.
//
// Every event is identified by the offset of its tag cell (EventID), which
// allows decoding any event in constant time:
//
//	b := path.NewPathBuilder()
//	b.MoveTo(path.Pt(0, 0))
//	id := b.LineTo(path.Pt(10, 0))
//	b.QuadraticBezierTo(path.Pt(10, 10), path.Pt(0, 10))
//	b.Close()
//	p := b.Build()
//
//	evt := p.Commands().Event(id) // Line from endpoint 0 to endpoint 1
//	for evt := range path.PointEventsOf(p).All() {
//	    // evt.Kind, evt.From, evt.To ...
//	}
//
// # Shapes and dashes
//
// AddRectangle, AddRoundedRectangle, AddCircle, AddEllipse, AddPolygon,
// AddRegularPolygon and AddStar append common shapes to a PathBuilder.
// Dash.Apply cuts a path into dashes before it is stroked. Paths convert
// to and from honnef.co/go/curve path elements with Elements and
// FromElements.
package path
