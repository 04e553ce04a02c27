package tess

import (
	"fmt"

	"github.com/gogpu/tess/path"
	"honnef.co/go/curve"
)

// VertexID identifies a vertex stored by a geometry sink.
type VertexID uint32

// Side tells on which side of the path's direction a stroke vertex lies.
type Side uint8

const (
	// SideLeft is the left side when walking along the path.
	SideLeft Side = iota
	// SideRight is the right side when walking along the path.
	SideRight
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

func (s Side) String() string {
	if s == SideLeft {
		return "Left"
	}
	return "Right"
}

// SourceKind discriminates the variants of VertexSource.
type SourceKind uint8

const (
	// SourceEndpoint marks a vertex generated at an endpoint of the path.
	SourceEndpoint SourceKind = iota
	// SourceEdge marks a vertex generated inside an edge, e.g. while
	// flattening a curve.
	SourceEdge
)

// VertexSource links a generated vertex back to the input path.
//
// For SourceEndpoint, Endpoint holds the endpoint the vertex was generated
// at. For SourceEdge, the vertex lies on the edge From -> To at curve
// parameter T.
type VertexSource struct {
	Kind     SourceKind
	Endpoint path.EndpointID
	From     path.EndpointID
	To       path.EndpointID
	T        float64
}

// EndpointSource returns the source of a vertex generated at id.
func EndpointSource(id path.EndpointID) VertexSource {
	return VertexSource{Kind: SourceEndpoint, Endpoint: id, From: path.InvalidEndpoint, To: path.InvalidEndpoint}
}

// EdgeSource returns the source of a vertex generated on the edge from -> to at t.
func EdgeSource(from, to path.EndpointID, t float64) VertexSource {
	return VertexSource{Kind: SourceEdge, Endpoint: path.InvalidEndpoint, From: from, To: to, T: t}
}

func (s VertexSource) String() string {
	if s.Kind == SourceEndpoint {
		return fmt.Sprintf("Endpoint(%v)", s.Endpoint)
	}
	return fmt.Sprintf("Edge(%v, %v, t=%g)", s.From, s.To, s.T)
}

// StrokeAttributes describes a stroke vertex beyond its position.
type StrokeAttributes struct {
	// Normal is the extrusion direction of the vertex. Its length is 1
	// except at miter joins, where it reaches the miter tip, and on the
	// centerline vertex of overlapping back joins, where it is zero.
	Normal curve.Vec2

	// Advancement is the distance travelled along the path so far.
	Advancement float64

	// Side is the side of the path the vertex lies on.
	Side Side

	// Source links the vertex to the input path.
	Source VertexSource
}

// Count reports how much geometry a tessellation call produced.
type Count struct {
	Vertices uint32
	Indices  uint32
}

// Add returns the sum of two counts.
func (c Count) Add(o Count) Count {
	return Count{Vertices: c.Vertices + o.Vertices, Indices: c.Indices + o.Indices}
}

// GeometryBuilder receives the triangles produced by a tessellator.
//
// BeginGeometry is called once at the start of a tessellation call,
// followed by either EndGeometry on success or AbortGeometry on failure.
// AbortGeometry must discard everything added since BeginGeometry.
type GeometryBuilder interface {
	BeginGeometry()
	EndGeometry() Count
	AddTriangle(a, b, c VertexID)
	AbortGeometry()
}

// StrokeGeometryBuilder is a GeometryBuilder accepting stroke vertices.
type StrokeGeometryBuilder interface {
	GeometryBuilder

	// AddStrokeVertex stores a vertex and returns its ID. It returns an
	// error wrapping ErrTooManyVertices when no more vertices fit.
	AddStrokeVertex(position curve.Point, attrs StrokeAttributes) (VertexID, error)
}
