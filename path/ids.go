// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package path

import (
	"math"
	"strconv"
)

// EndpointID indexes the endpoint store of a path.
type EndpointID uint32

// CtrlPointID indexes the control point store of a path.
type CtrlPointID uint32

// EventID is the offset of an event's tag cell in a command stream.
// It is not a sequential event counter: consecutive events are 2, 3 or 4
// cells apart depending on their verb.
type EventID uint32

const (
	// InvalidEndpoint marks an endpoint that does not exist in any store,
	// e.g. positions fed to a stroker without a backing path.
	InvalidEndpoint EndpointID = math.MaxUint32

	// InvalidCtrlPoint is the control point counterpart of InvalidEndpoint.
	InvalidCtrlPoint CtrlPointID = math.MaxUint32

	// InvalidEvent never addresses a tag cell.
	InvalidEvent EventID = math.MaxUint32
)

func (id EndpointID) String() string {
	if id == InvalidEndpoint {
		return "#invalid"
	}
	return "#" + strconv.FormatUint(uint64(id), 10)
}

func (id CtrlPointID) String() string {
	if id == InvalidCtrlPoint {
		return "#invalid"
	}
	return "#" + strconv.FormatUint(uint64(id), 10)
}

func (id EventID) String() string {
	if id == InvalidEvent {
		return "@invalid"
	}
	return "@" + strconv.FormatUint(uint64(id), 10)
}
