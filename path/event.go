// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package path

import (
	"fmt"

	"honnef.co/go/curve"
)

// EventKind discriminates the variants of Event.
type EventKind uint8

const (
	// EventBegin starts a sub-path at To.
	EventBegin EventKind = iota + 1
	// EventLine is a straight edge from From to To.
	EventLine
	// EventQuadratic is a quadratic Bézier edge with control point Ctrl1.
	EventQuadratic
	// EventCubic is a cubic Bézier edge with control points Ctrl1 and Ctrl2.
	EventCubic
	// EventEnd terminates a sub-path. From is the last endpoint, To the
	// first one, and Close reports whether the sub-path was closed.
	EventEnd
)

// String returns a human-readable name for the kind.
func (k EventKind) String() string {
	switch k {
	case EventBegin:
		return "Begin"
	case EventLine:
		return "Line"
	case EventQuadratic:
		return "Quadratic"
	case EventCubic:
		return "Cubic"
	case EventEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Event is a single path event, parameterized over the representation of
// endpoints (E) and control points (C).
//
// The meaning of the fields depends on Kind:
//
//	Begin:     To
//	Line:      From, To
//	Quadratic: From, Ctrl1, To
//	Cubic:     From, Ctrl1, Ctrl2, To
//	End:       From (last endpoint), To (first endpoint), Close
//
// Fields not listed for a kind hold their zero value.
type Event[E, C any] struct {
	Kind EventKind

	// Edge is the ID of the event in the command stream it was decoded from.
	Edge EventID

	From  E
	Ctrl1 C
	Ctrl2 C
	To    E
	Close bool
}

// IDEvent is an event carrying raw endpoint and control point IDs.
type IDEvent = Event[EndpointID, CtrlPointID]

// RefEvent is an event whose IDs are resolved to references into the
// stores of the path that produced it. The referenced values must not be
// modified.
type RefEvent[E, C any] = Event[*E, *C]

// PointEvent is an event whose IDs are resolved to positions.
type PointEvent = Event[curve.Point, curve.Point]

// At returns the position of a Begin event.
func (e Event[E, C]) At() E { return e.To }

// First returns the first endpoint of the sub-path terminated by an End event.
func (e Event[E, C]) First() E { return e.To }

// Last returns the last endpoint of the sub-path terminated by an End event.
func (e Event[E, C]) Last() E { return e.From }

// IsEdge reports whether the event is a Line, Quadratic or Cubic segment.
func (e Event[E, C]) IsEdge() bool {
	return e.Kind == EventLine || e.Kind == EventQuadratic || e.Kind == EventCubic
}

func (e Event[E, C]) String() string {
	switch e.Kind {
	case EventBegin:
		return fmt.Sprintf("Begin(%v)", e.To)
	case EventLine:
		return fmt.Sprintf("Line(%v, %v)", e.From, e.To)
	case EventQuadratic:
		return fmt.Sprintf("Quadratic(%v, %v, %v)", e.From, e.Ctrl1, e.To)
	case EventCubic:
		return fmt.Sprintf("Cubic(%v, %v, %v, %v)", e.From, e.Ctrl1, e.Ctrl2, e.To)
	case EventEnd:
		return fmt.Sprintf("End(%v, %v, close=%t)", e.From, e.To, e.Close)
	default:
		return "InvalidEvent"
	}
}
