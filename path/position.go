// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package path

import "honnef.co/go/curve"

// Positioner is implemented by endpoint and control point types that have
// a position in the plane.
type Positioner interface {
	Position() curve.Point
}

// PositionStore maps endpoint and control point IDs to positions. It lets
// consumers work on ID events without knowing the path representation.
type PositionStore interface {
	EndpointPosition(id EndpointID) curve.Point
	CtrlPointPosition(id CtrlPointID) curve.Point
}

// AttributeStore maps endpoint IDs to per-vertex custom attributes.
type AttributeStore interface {
	Attributes(id EndpointID) []float32
	NumAttributes() int
}

// Point is a plain position, usable as both endpoint and control point
// of a GenericPath.
type Point curve.Point

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Position implements Positioner.
func (p Point) Position() curve.Point {
	return curve.Point(p)
}

func (p Point) String() string {
	return curve.Point(p).String()
}

// Positions is a PositionStore backed by two slices indexed by ID.
type Positions struct {
	Endpoints  []curve.Point
	CtrlPoints []curve.Point
}

// EndpointPosition implements PositionStore.
func (s Positions) EndpointPosition(id EndpointID) curve.Point {
	return s.Endpoints[id]
}

// CtrlPointPosition implements PositionStore.
func (s Positions) CtrlPointPosition(id CtrlPointID) curve.Point {
	return s.CtrlPoints[id]
}

// pathPositions adapts a GenericPath with positioned elements to
// PositionStore.
type pathPositions[E, C Positioner] struct {
	p *GenericPath[E, C]
}

func (s pathPositions[E, C]) EndpointPosition(id EndpointID) curve.Point {
	return s.p.endpoints[id].Position()
}

func (s pathPositions[E, C]) CtrlPointPosition(id CtrlPointID) curve.Point {
	return s.p.ctrlPoints[id].Position()
}

// PositionsOf returns a PositionStore reading positions from p.
func PositionsOf[E, C Positioner](p *GenericPath[E, C]) PositionStore {
	return pathPositions[E, C]{p: p}
}

// PointEventsOf returns an iterator over the events of p resolved to
// positions.
func PointEventsOf[E, C Positioner](p *GenericPath[E, C]) *PointEvents {
	return p.cmds.PointEvents(PositionsOf(p))
}
