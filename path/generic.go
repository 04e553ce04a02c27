// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package path

import "fmt"

// GenericPath pairs a command stream with the endpoints and control points
// it references. Both stores are filled in the same pass as the stream,
// so every ID in the stream is valid for the path that owns it.
//
// A GenericPath is read-only once built.
type GenericPath[E, C any] struct {
	cmds       *Commands
	endpoints  []E
	ctrlPoints []C
}

// Commands returns the command stream of the path.
func (p *GenericPath[E, C]) Commands() *Commands {
	return p.cmds
}

// Endpoints returns the endpoint store. The slice must not be modified.
func (p *GenericPath[E, C]) Endpoints() []E {
	return p.endpoints
}

// CtrlPoints returns the control point store. The slice must not be modified.
func (p *GenericPath[E, C]) CtrlPoints() []C {
	return p.ctrlPoints
}

// Endpoint returns the endpoint with the given ID.
func (p *GenericPath[E, C]) Endpoint(id EndpointID) E {
	return p.endpoints[id]
}

// CtrlPoint returns the control point with the given ID.
func (p *GenericPath[E, C]) CtrlPoint(id CtrlPointID) C {
	return p.ctrlPoints[id]
}

// IDEvents returns an iterator over the events of the path as raw IDs.
func (p *GenericPath[E, C]) IDEvents() *IDEvents {
	return p.cmds.IDEvents()
}

// Events returns an iterator over the events of the path with IDs
// resolved to references into the path's stores.
func (p *GenericPath[E, C]) Events() *RefEvents[E, C] {
	return &RefEvents[E, C]{
		cur:        idCursor{cmds: p.cmds},
		endpoints:  p.endpoints,
		ctrlPoints: p.ctrlPoints,
	}
}

// Event decodes the event at id and resolves its IDs.
// It panics if id is not an event of the path.
func (p *GenericPath[E, C]) Event(id EventID) RefEvent[E, C] {
	return mapEvent(p.cmds.Event(id),
		func(id EndpointID) *E { return &p.endpoints[id] },
		func(id CtrlPointID) *C { return &p.ctrlPoints[id] },
	)
}

func (p *GenericPath[E, C]) String() string {
	return fmt.Sprintf("{ %v } (%d endpoints, %d control points)", p.cmds, len(p.endpoints), len(p.ctrlPoints))
}

// GenericPathBuilder builds a GenericPath, assigning dense IDs to
// endpoints and control points as they are appended.
//
// The zero value is ready to use.
type GenericPathBuilder[E, C any] struct {
	cmds       CommandsBuilder
	endpoints  []E
	ctrlPoints []C
}

// NewGenericPathBuilder returns an empty builder.
func NewGenericPathBuilder[E, C any]() *GenericPathBuilder[E, C] {
	return &GenericPathBuilder[E, C]{cmds: CommandsBuilder{lastCmd: verbEnd}}
}

// MoveTo starts a new sub-path at to.
func (b *GenericPathBuilder[E, C]) MoveTo(to E) EventID {
	return b.cmds.MoveTo(b.addEndpoint(to))
}

// LineTo appends a straight edge to to.
func (b *GenericPathBuilder[E, C]) LineTo(to E) EventID {
	return b.cmds.LineTo(b.addEndpoint(to))
}

// QuadraticBezierTo appends a quadratic Bézier edge.
func (b *GenericPathBuilder[E, C]) QuadraticBezierTo(ctrl C, to E) EventID {
	c := b.addCtrlPoint(ctrl)
	return b.cmds.QuadraticBezierTo(c, b.addEndpoint(to))
}

// CubicBezierTo appends a cubic Bézier edge.
func (b *GenericPathBuilder[E, C]) CubicBezierTo(ctrl1, ctrl2 C, to E) EventID {
	c1 := b.addCtrlPoint(ctrl1)
	c2 := b.addCtrlPoint(ctrl2)
	return b.cmds.CubicBezierTo(c1, c2, b.addEndpoint(to))
}

// Close closes the current sub-path.
func (b *GenericPathBuilder[E, C]) Close() EventID {
	return b.cmds.Close()
}

// Build returns the path and resets the builder.
func (b *GenericPathBuilder[E, C]) Build() *GenericPath[E, C] {
	p := &GenericPath[E, C]{
		cmds:       b.cmds.Build(),
		endpoints:  b.endpoints,
		ctrlPoints: b.ctrlPoints,
	}
	b.endpoints, b.ctrlPoints = nil, nil
	return p
}

func (b *GenericPathBuilder[E, C]) addEndpoint(ep E) EndpointID {
	id := EndpointID(len(b.endpoints))
	b.endpoints = append(b.endpoints, ep)
	return id
}

func (b *GenericPathBuilder[E, C]) addCtrlPoint(cp C) CtrlPointID {
	id := CtrlPointID(len(b.ctrlPoints))
	b.ctrlPoints = append(b.ctrlPoints, cp)
	return id
}

// Path is a GenericPath of plain positions.
type Path = GenericPath[Point, Point]

// PathBuilder builds a Path.
type PathBuilder = GenericPathBuilder[Point, Point]

// NewPathBuilder returns an empty PathBuilder.
func NewPathBuilder() *PathBuilder {
	return NewGenericPathBuilder[Point, Point]()
}
