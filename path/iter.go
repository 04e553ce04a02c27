// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package path

import "iter"

// idCursor walks a command stream one event at a time. It remembers the
// previous endpoint and the first endpoint of the current sub-path, which
// the encoding does not store on Line and End cells.
//
// All event iterators share this cursor and only differ in how they
// resolve the IDs it yields, so they stay in step with Commands.Event.
type idCursor struct {
	cmds  *Commands
	idx   uint32
	prev  EndpointID
	first EndpointID
}

func (c *idCursor) next() (IDEvent, bool) {
	cells := c.cmds.cells
	if int64(c.idx) >= int64(len(cells)) {
		return IDEvent{}, false
	}
	idx := c.idx
	v := cells[idx].verb
	evt := IDEvent{Edge: EventID(idx)}
	switch v {
	case verbBegin:
		to := EndpointID(cells[idx+1].val)
		c.prev, c.first = to, to
		evt.Kind, evt.To = EventBegin, to
	case verbLine:
		evt.Kind, evt.From = EventLine, c.prev
		evt.To = EndpointID(cells[idx+1].val)
		c.prev = evt.To
	case verbQuadratic:
		evt.Kind, evt.From = EventQuadratic, c.prev
		evt.Ctrl1 = CtrlPointID(cells[idx+1].val)
		evt.To = EndpointID(cells[idx+2].val)
		c.prev = evt.To
	case verbCubic:
		evt.Kind, evt.From = EventCubic, c.prev
		evt.Ctrl1 = CtrlPointID(cells[idx+1].val)
		evt.Ctrl2 = CtrlPointID(cells[idx+2].val)
		evt.To = EndpointID(cells[idx+3].val)
		c.prev = evt.To
	case verbClose, verbEnd:
		evt.Kind, evt.From, evt.To = EventEnd, c.prev, c.first
		evt.Close = v == verbClose
		c.prev = c.first
	default:
		panic("path: command stream is not aligned on a tag cell")
	}
	c.idx += verbCells[v]
	return evt, true
}

// mapEvent resolves the IDs that are meaningful for evt's kind.
func mapEvent[E, C any](evt IDEvent, endpoint func(EndpointID) E, ctrl func(CtrlPointID) C) Event[E, C] {
	out := Event[E, C]{Kind: evt.Kind, Edge: evt.Edge, Close: evt.Close}
	switch evt.Kind {
	case EventBegin:
		out.To = endpoint(evt.To)
	case EventLine, EventEnd:
		out.From = endpoint(evt.From)
		out.To = endpoint(evt.To)
	case EventQuadratic:
		out.From = endpoint(evt.From)
		out.Ctrl1 = ctrl(evt.Ctrl1)
		out.To = endpoint(evt.To)
	case EventCubic:
		out.From = endpoint(evt.From)
		out.Ctrl1 = ctrl(evt.Ctrl1)
		out.Ctrl2 = ctrl(evt.Ctrl2)
		out.To = endpoint(evt.To)
	}
	return out
}

func drain[T any](next func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// IDEvents iterates over the events of a stream as raw IDs.
// It is single-pass: once exhausted it keeps returning false.
type IDEvents struct {
	cur idCursor
}

// Next returns the next event, or false when the stream is exhausted.
func (it *IDEvents) Next() (IDEvent, bool) {
	return it.cur.next()
}

// All consumes the iterator as a range-over-func sequence.
func (it *IDEvents) All() iter.Seq[IDEvent] {
	return drain(it.Next)
}

// RefEvents iterates over the events of a GenericPath, resolving IDs to
// references into the path's stores.
type RefEvents[E, C any] struct {
	cur        idCursor
	endpoints  []E
	ctrlPoints []C
}

// Next returns the next event, or false when the path is exhausted.
func (it *RefEvents[E, C]) Next() (RefEvent[E, C], bool) {
	evt, ok := it.cur.next()
	if !ok {
		return RefEvent[E, C]{}, false
	}
	return mapEvent(evt,
		func(id EndpointID) *E { return &it.endpoints[id] },
		func(id CtrlPointID) *C { return &it.ctrlPoints[id] },
	), true
}

// All consumes the iterator as a range-over-func sequence.
func (it *RefEvents[E, C]) All() iter.Seq[RefEvent[E, C]] {
	return drain(it.Next)
}

// PointEvents iterates over the events of a stream, resolving IDs to
// positions through a PositionStore.
type PointEvents struct {
	cur   idCursor
	store PositionStore
}

// Next returns the next event, or false when the stream is exhausted.
func (it *PointEvents) Next() (PointEvent, bool) {
	evt, ok := it.cur.next()
	if !ok {
		return PointEvent{}, false
	}
	return mapEvent(evt, it.store.EndpointPosition, it.store.CtrlPointPosition), true
}

// All consumes the iterator as a range-over-func sequence.
func (it *PointEvents) All() iter.Seq[PointEvent] {
	return drain(it.Next)
}

// PointEvents returns an iterator resolving the events of c with store.
func (c *Commands) PointEvents(store PositionStore) *PointEvents {
	return &PointEvents{cur: idCursor{cmds: c}, store: store}
}

// EventPositions resolves a single ID event with store.
func EventPositions(evt IDEvent, store PositionStore) PointEvent {
	return mapEvent(evt, store.EndpointPosition, store.CtrlPointPosition)
}
