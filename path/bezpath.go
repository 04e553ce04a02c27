// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package path

import (
	"iter"
	"slices"

	"honnef.co/go/curve"
)

// FromBezPath converts a curve.BezPath into a Path. Every element becomes
// one event; ClosePath closes the current sub-path.
func FromBezPath(bp curve.BezPath) *Path {
	return FromElements(slices.Values(bp))
}

// FromElements builds a Path from a sequence of curve path elements.
func FromElements(elements iter.Seq[curve.PathElement]) *Path {
	b := NewPathBuilder()
	for el := range elements {
		switch el.Kind {
		case curve.MoveToKind:
			b.MoveTo(Point(el.P0))
		case curve.LineToKind:
			b.LineTo(Point(el.P0))
		case curve.QuadToKind:
			b.QuadraticBezierTo(Point(el.P0), Point(el.P1))
		case curve.CubicToKind:
			b.CubicBezierTo(Point(el.P0), Point(el.P1), Point(el.P2))
		case curve.ClosePathKind:
			b.Close()
		}
	}
	return b.Build()
}

// Elements returns the events of p as curve path elements: Begin becomes
// MoveTo and a closing End becomes ClosePath. It is the inverse of
// FromElements.
func Elements[E, C Positioner](p *GenericPath[E, C]) iter.Seq[curve.PathElement] {
	return func(yield func(curve.PathElement) bool) {
		for evt := range PointEventsOf(p).All() {
			var el curve.PathElement
			switch evt.Kind {
			case EventBegin:
				el = curve.MoveTo(evt.To)
			case EventLine:
				el = curve.LineTo(evt.To)
			case EventQuadratic:
				el = curve.QuadTo(evt.Ctrl1, evt.To)
			case EventCubic:
				el = curve.CubicTo(evt.Ctrl1, evt.Ctrl2, evt.To)
			case EventEnd:
				if !evt.Close {
					continue
				}
				el = curve.ClosePath()
			}
			if !yield(el) {
				return
			}
		}
	}
}
