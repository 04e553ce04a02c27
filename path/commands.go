// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package path

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// verb identifies the command introduced by a tag cell.
// Payload cells carry verbNone.
type verb uint8

const (
	verbNone verb = iota
	verbBegin
	verbLine
	verbQuadratic
	verbCubic
	verbClose
	verbEnd
)

// verbCells is the number of cells, tag included, occupied by each verb.
// Operand counts are fixed per verb, which is what makes O(1) decoding of
// an arbitrary event possible.
var verbCells = [...]uint32{
	verbNone:      1,
	verbBegin:     2,
	verbLine:      2,
	verbQuadratic: 3,
	verbCubic:     4,
	verbClose:     2,
	verbEnd:       2,
}

func (v verb) String() string {
	switch v {
	case verbBegin:
		return "Begin"
	case verbLine:
		return "Line"
	case verbQuadratic:
		return "Quadratic"
	case verbCubic:
		return "Cubic"
	case verbClose:
		return "Close"
	case verbEnd:
		return "End"
	default:
		return "Payload"
	}
}

// isEdge reports whether the verb leaves a sub-path open mid-edge.
func (v verb) isEdge() bool {
	return v == verbLine || v == verbQuadratic || v == verbCubic
}

// cell is one slot of the command stream. Tag cells carry a verb; payload
// cells carry an endpoint ID, a control point ID or, after End and Close,
// the offset of the sub-path's Begin tag.
type cell struct {
	verb verb
	val  uint32
}

// Commands is the encoded topology of a path: a flat, immutable sequence
// of tagged cells.
//
// Layout per verb (cells, tag included):
//
//	Begin:     [tag, endpoint]
//	Line:      [tag, endpoint]
//	Quadratic: [tag, ctrl, endpoint]
//	Cubic:     [tag, ctrl1, ctrl2, endpoint]
//	End/Close: [tag, offset of the sub-path's Begin tag]
//
// Line and End events do not store their start point; it is the endpoint
// held by the cell just before their tag.
type Commands struct {
	cells []cell
}

// Len returns the number of cells in the stream.
func (c *Commands) Len() int {
	return len(c.cells)
}

// IsEmpty reports whether the stream contains no events.
func (c *Commands) IsEmpty() bool {
	return len(c.cells) == 0
}

// IsEvent reports whether id addresses a tag cell of this stream.
func (c *Commands) IsEvent(id EventID) bool {
	return int64(id) < int64(len(c.cells)) && c.cells[id].verb != verbNone
}

// tag returns the verb at id, panicking if id does not address a tag cell.
func (c *Commands) tag(id EventID) verb {
	if !c.IsEvent(id) {
		panic(fmt.Sprintf("path: %v is not an event of a %d-cell stream", id, len(c.cells)))
	}
	return c.cells[id].verb
}

func (c *Commands) endpoint(idx uint32) EndpointID {
	return EndpointID(c.cells[idx].val)
}

func (c *Commands) ctrl(idx uint32) CtrlPointID {
	return CtrlPointID(c.cells[idx].val)
}

// Event decodes the event whose tag cell is at id without walking the
// stream. It panics if id is not an event of c; use IsEvent to check.
func (c *Commands) Event(id EventID) IDEvent {
	v := c.tag(id)
	idx := uint32(id)
	switch v {
	case verbBegin:
		return IDEvent{Kind: EventBegin, Edge: id, To: c.endpoint(idx + 1)}
	case verbLine:
		return IDEvent{
			Kind: EventLine,
			Edge: id,
			From: c.endpoint(idx - 1),
			To:   c.endpoint(idx + 1),
		}
	case verbQuadratic:
		return IDEvent{
			Kind:  EventQuadratic,
			Edge:  id,
			From:  c.endpoint(idx - 1),
			Ctrl1: c.ctrl(idx + 1),
			To:    c.endpoint(idx + 2),
		}
	case verbCubic:
		return IDEvent{
			Kind:  EventCubic,
			Edge:  id,
			From:  c.endpoint(idx - 1),
			Ctrl1: c.ctrl(idx + 1),
			Ctrl2: c.ctrl(idx + 2),
			To:    c.endpoint(idx + 3),
		}
	default: // verbClose, verbEnd
		begin := c.cells[idx+1].val
		return IDEvent{
			Kind:  EventEnd,
			Edge:  id,
			From:  c.endpoint(idx - 1),
			To:    c.endpoint(begin + 1),
			Close: v == verbClose,
		}
	}
}

// NextEventIDInPath returns the ID of the event following id, or false if
// id is the last event of the stream.
func (c *Commands) NextEventIDInPath(id EventID) (EventID, bool) {
	next := uint32(id) + verbCells[c.tag(id)]
	if int64(next) >= int64(len(c.cells)) {
		return InvalidEvent, false
	}
	return EventID(next), true
}

// NextEventIDInSubPath returns the ID of the event following id within
// its sub-path. For End and Close events this wraps around to the Begin
// event of the same sub-path, so a closed sub-path can be walked forever.
func (c *Commands) NextEventIDInSubPath(id EventID) EventID {
	switch v := c.tag(id); v {
	case verbClose, verbEnd:
		return EventID(c.cells[id+1].val)
	default:
		return EventID(uint32(id) + verbCells[v])
	}
}

// IDEvents returns an iterator over the events of the stream.
func (c *Commands) IDEvents() *IDEvents {
	return &IDEvents{cur: idCursor{cmds: c}}
}

// All returns the events of the stream as a range-over-func sequence.
func (c *Commands) All() iter.Seq[IDEvent] {
	return c.IDEvents().All()
}

// String renders the stream in an SVG-like shorthand, e.g. "M 0 L 1 Q 0 2 Z".
// Unclosed sub-path ends are not printed.
func (c *Commands) String() string {
	var sb strings.Builder
	write := func(tok string, ids ...uint32) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok)
		for _, id := range ids {
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatUint(uint64(id), 10))
		}
	}
	for evt := range c.All() {
		switch evt.Kind {
		case EventBegin:
			write("M", uint32(evt.To))
		case EventLine:
			write("L", uint32(evt.To))
		case EventQuadratic:
			write("Q", uint32(evt.Ctrl1), uint32(evt.To))
		case EventCubic:
			write("C", uint32(evt.Ctrl1), uint32(evt.Ctrl2), uint32(evt.To))
		case EventEnd:
			if evt.Close {
				write("Z")
			}
		}
	}
	return sb.String()
}

// CommandsBuilder appends events to a command stream while keeping it
// well formed: every sub-path starts with Begin and ends with exactly one
// End or Close.
//
// The zero value is ready to use. Build hands the cells over to the
// returned Commands and resets the builder.
type CommandsBuilder struct {
	cells           []cell
	lastCmd         verb
	firstEventIndex uint32
}

// NewCommandsBuilder returns an empty builder.
func NewCommandsBuilder() *CommandsBuilder {
	return &CommandsBuilder{lastCmd: verbEnd}
}

// NewCommandsBuilderWithCapacity returns an empty builder with room for
// the given number of cells.
func NewCommandsBuilderWithCapacity(cells int) *CommandsBuilder {
	return &CommandsBuilder{cells: make([]cell, 0, cells), lastCmd: verbEnd}
}

// MoveTo starts a new sub-path at to. A sub-path left open mid-edge is
// terminated with End first.
func (b *CommandsBuilder) MoveTo(to EndpointID) EventID {
	b.endIfNeeded()
	id := b.nextID()
	b.firstEventIndex = uint32(id)
	b.push(verbBegin, uint32(to))
	b.lastCmd = verbBegin
	return id
}

// LineTo appends a straight edge ending at to.
func (b *CommandsBuilder) LineTo(to EndpointID) EventID {
	b.beginIfNeeded()
	id := b.nextID()
	b.push(verbLine, uint32(to))
	b.lastCmd = verbLine
	return id
}

// QuadraticBezierTo appends a quadratic Bézier edge ending at to.
func (b *CommandsBuilder) QuadraticBezierTo(ctrl CtrlPointID, to EndpointID) EventID {
	b.beginIfNeeded()
	id := b.nextID()
	b.push(verbQuadratic, uint32(ctrl), uint32(to))
	b.lastCmd = verbQuadratic
	return id
}

// CubicBezierTo appends a cubic Bézier edge ending at to.
func (b *CommandsBuilder) CubicBezierTo(ctrl1, ctrl2 CtrlPointID, to EndpointID) EventID {
	b.beginIfNeeded()
	id := b.nextID()
	b.push(verbCubic, uint32(ctrl1), uint32(ctrl2), uint32(to))
	b.lastCmd = verbCubic
	return id
}

// Close closes the current sub-path. Closing a sub-path that is already
// terminated appends nothing and returns the current write position.
func (b *CommandsBuilder) Close() EventID {
	id := b.nextID()
	if b.closed() {
		return id
	}
	b.push(verbClose, b.firstEventIndex)
	b.lastCmd = verbClose
	return id
}

// Build terminates a sub-path left open mid-edge and returns the stream.
func (b *CommandsBuilder) Build() *Commands {
	b.endIfNeeded()
	c := &Commands{cells: b.cells}
	*b = CommandsBuilder{lastCmd: verbEnd}
	return c
}

func (b *CommandsBuilder) nextID() EventID {
	return EventID(len(b.cells))
}

func (b *CommandsBuilder) closed() bool {
	return b.lastCmd == verbNone || b.lastCmd == verbClose || b.lastCmd == verbEnd
}

func (b *CommandsBuilder) push(v verb, operands ...uint32) {
	b.cells = append(b.cells, cell{verb: v})
	for _, op := range operands {
		b.cells = append(b.cells, cell{val: op})
	}
}

// beginIfNeeded opens a sub-path when an edge is appended without one.
// The implicit Begin reuses the raw value of the last cell as its
// endpoint: endpoint 0 on an empty stream, and the Begin offset stored by
// a preceding Close otherwise.
func (b *CommandsBuilder) beginIfNeeded() {
	if !b.closed() {
		return
	}
	var first uint32
	if n := len(b.cells); n > 0 {
		first = b.cells[n-1].val
	}
	b.MoveTo(EndpointID(first))
}

func (b *CommandsBuilder) endIfNeeded() {
	if b.lastCmd.isEdge() {
		b.push(verbEnd, b.firstEventIndex)
		b.lastCmd = verbEnd
	}
}
