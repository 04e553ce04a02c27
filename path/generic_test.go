// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package path

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"honnef.co/go/curve"
)

func samplePath() *Path {
	b := NewPathBuilder()
	b.MoveTo(Pt(0, 0))
	b.LineTo(Pt(1, 0))
	b.QuadraticBezierTo(Pt(2, 0), Pt(2, 1))
	b.CubicBezierTo(Pt(2, 2), Pt(1, 3), Pt(0, 2))
	b.Close()
	return b.Build()
}

func TestGenericPathDenseIDs(t *testing.T) {
	p := samplePath()

	want := []IDEvent{
		{Kind: EventBegin, Edge: 0, To: 0},
		{Kind: EventLine, Edge: 2, From: 0, To: 1},
		{Kind: EventQuadratic, Edge: 4, From: 1, Ctrl1: 0, To: 2},
		{Kind: EventCubic, Edge: 7, From: 2, Ctrl1: 1, Ctrl2: 2, To: 3},
		{Kind: EventEnd, Edge: 11, From: 3, To: 0, Close: true},
	}
	if diff := cmp.Diff(want, slices.Collect(p.IDEvents().All())); diff != "" {
		t.Errorf("IDEvents() mismatch (-want +got):\n%s", diff)
	}
	if got := len(p.Endpoints()); got != 4 {
		t.Errorf("len(Endpoints()) = %d, want 4", got)
	}
	if got := len(p.CtrlPoints()); got != 3 {
		t.Errorf("len(CtrlPoints()) = %d, want 3", got)
	}
	if got := p.CtrlPoint(2); got != Pt(1, 3) {
		t.Errorf("CtrlPoint(2) = %v, want (1, 3)", got)
	}
}

func TestGenericPathPointEvents(t *testing.T) {
	p := samplePath()

	want := []PointEvent{
		{Kind: EventBegin, Edge: 0, To: curve.Pt(0, 0)},
		{Kind: EventLine, Edge: 2, From: curve.Pt(0, 0), To: curve.Pt(1, 0)},
		{Kind: EventQuadratic, Edge: 4, From: curve.Pt(1, 0), Ctrl1: curve.Pt(2, 0), To: curve.Pt(2, 1)},
		{Kind: EventCubic, Edge: 7, From: curve.Pt(2, 1), Ctrl1: curve.Pt(2, 2), Ctrl2: curve.Pt(1, 3), To: curve.Pt(0, 2)},
		{Kind: EventEnd, Edge: 11, From: curve.Pt(0, 2), To: curve.Pt(0, 0), Close: true},
	}
	if diff := cmp.Diff(want, slices.Collect(PointEventsOf(p).All())); diff != "" {
		t.Errorf("PointEventsOf() mismatch (-want +got):\n%s", diff)
	}

	// The same stream resolved through an external store.
	store := Positions{
		Endpoints:  []curve.Point{curve.Pt(0, 0), curve.Pt(1, 0), curve.Pt(2, 1), curve.Pt(0, 2)},
		CtrlPoints: []curve.Point{curve.Pt(2, 0), curve.Pt(2, 2), curve.Pt(1, 3)},
	}
	if diff := cmp.Diff(want, slices.Collect(p.Commands().PointEvents(store).All())); diff != "" {
		t.Errorf("Commands().PointEvents() mismatch (-want +got):\n%s", diff)
	}
}

func TestGenericPathRefEvents(t *testing.T) {
	p := samplePath()
	endpoints := p.Endpoints()
	ctrls := p.CtrlPoints()

	for evt := range p.Events().All() {
		id := p.Commands().Event(evt.Edge)
		if evt.To != &endpoints[id.To] {
			t.Errorf("%v: To does not reference endpoint %v", evt.Kind, id.To)
		}
		switch evt.Kind {
		case EventLine, EventEnd:
			if evt.From != &endpoints[id.From] {
				t.Errorf("%v: From does not reference endpoint %v", evt.Kind, id.From)
			}
		case EventQuadratic:
			if evt.Ctrl1 != &ctrls[id.Ctrl1] {
				t.Errorf("Quadratic: Ctrl1 does not reference control point %v", id.Ctrl1)
			}
		case EventCubic:
			if evt.Ctrl1 != &ctrls[id.Ctrl1] || evt.Ctrl2 != &ctrls[id.Ctrl2] {
				t.Errorf("Cubic: control points do not reference the store")
			}
		}

		direct := p.Event(evt.Edge)
		if direct != evt {
			t.Errorf("Event(%v) = %v, want %v", evt.Edge, direct, evt)
		}
	}
}

// weightedPoint carries a stroke width next to its position.
type weightedPoint struct {
	pos   curve.Point
	width float64
}

func (w weightedPoint) Position() curve.Point { return w.pos }

func TestGenericPathCustomEndpoints(t *testing.T) {
	b := NewGenericPathBuilder[weightedPoint, Point]()
	b.MoveTo(weightedPoint{curve.Pt(0, 0), 1})
	b.LineTo(weightedPoint{curve.Pt(4, 0), 2})
	b.QuadraticBezierTo(Pt(4, 4), weightedPoint{curve.Pt(0, 4), 3})
	p := b.Build()

	store := PositionsOf(p)
	if got := store.EndpointPosition(2); got != curve.Pt(0, 4) {
		t.Errorf("EndpointPosition(2) = %v, want (0, 4)", got)
	}
	if got := store.CtrlPointPosition(0); got != curve.Pt(4, 4) {
		t.Errorf("CtrlPointPosition(0) = %v, want (4, 4)", got)
	}

	var widths []float64
	for evt := range p.Events().All() {
		if evt.Kind == EventEnd {
			continue
		}
		widths = append(widths, evt.To.width)
	}
	if diff := cmp.Diff([]float64{1, 2, 3}, widths); diff != "" {
		t.Errorf("endpoint widths mismatch (-want +got):\n%s", diff)
	}

	evts := slices.Collect(PointEventsOf(p).All())
	last := evts[len(evts)-1]
	if last.Kind != EventEnd || last.Close || last.From != curve.Pt(0, 4) || last.To != curve.Pt(0, 0) {
		t.Errorf("last event = %v, want an unclosed End from (0, 4) to (0, 0)", last)
	}
}

func TestPathBuilderResetsAfterBuild(t *testing.T) {
	b := NewPathBuilder()
	b.MoveTo(Pt(1, 1))
	b.LineTo(Pt(2, 2))
	first := b.Build()

	b.MoveTo(Pt(5, 5))
	second := b.Build()

	if got := len(first.Endpoints()); got != 2 {
		t.Errorf("first path has %d endpoints, want 2", got)
	}
	if got := second.Endpoint(0); got != Pt(5, 5) {
		t.Errorf("second path Endpoint(0) = %v, want (5, 5)", got)
	}
}
