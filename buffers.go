package tess

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"honnef.co/go/curve"
)

// Index is the type of the indices stored in VertexBuffers.
type Index interface {
	~uint16 | ~uint32
}

// VertexBuffers holds tessellated geometry as an indexed triangle list.
type VertexBuffers[V any, I Index] struct {
	Vertices []V
	Indices  []I
}

// NewVertexBuffers returns buffers with room for the given number of
// vertices and indices.
func NewVertexBuffers[V any, I Index](vertices, indices int) *VertexBuffers[V, I] {
	return &VertexBuffers[V, I]{
		Vertices: make([]V, 0, vertices),
		Indices:  make([]I, 0, indices),
	}
}

// Clear empties the buffers, keeping their capacity.
func (b *VertexBuffers[V, I]) Clear() {
	b.Vertices = b.Vertices[:0]
	b.Indices = b.Indices[:0]
}

// StrokeVertexConstructor builds a custom vertex from a stroke vertex's
// position and attributes.
type StrokeVertexConstructor[V any] interface {
	NewStrokeVertex(position curve.Point, attrs StrokeAttributes) V
}

// StrokeVertexFunc adapts a function to StrokeVertexConstructor.
type StrokeVertexFunc[V any] func(position curve.Point, attrs StrokeAttributes) V

// NewStrokeVertex implements StrokeVertexConstructor.
func (f StrokeVertexFunc[V]) NewStrokeVertex(position curve.Point, attrs StrokeAttributes) V {
	return f(position, attrs)
}

// BuffersBuilder is a StrokeGeometryBuilder appending to VertexBuffers.
//
// Several tessellation calls can share the same buffers; each call's
// indices refer to the vertices it added. AbortGeometry drops everything
// added since the matching BeginGeometry.
type BuffersBuilder[V any, I Index] struct {
	buffers     *VertexBuffers[V, I]
	ctor        StrokeVertexConstructor[V]
	firstVertex int
	firstIndex  int
	maxVertices uint64
}

// NewBuffersBuilder returns a sink appending to buffers, converting
// vertices with ctor. The number of vertices is bounded by the range of I.
func NewBuffersBuilder[V any, I Index](buffers *VertexBuffers[V, I], ctor StrokeVertexConstructor[V]) *BuffersBuilder[V, I] {
	return &BuffersBuilder[V, I]{
		buffers:     buffers,
		ctor:        ctor,
		maxVertices: uint64(^I(0)) + 1,
	}
}

// WithMaxVertices lowers the number of vertices the buffers may hold.
func (b *BuffersBuilder[V, I]) WithMaxVertices(n int) *BuffersBuilder[V, I] {
	if n >= 0 && uint64(n) < b.maxVertices {
		b.maxVertices = uint64(n)
	}
	return b
}

// Buffers returns the buffers being filled.
func (b *BuffersBuilder[V, I]) Buffers() *VertexBuffers[V, I] {
	return b.buffers
}

// BeginGeometry implements GeometryBuilder.
func (b *BuffersBuilder[V, I]) BeginGeometry() {
	b.firstVertex = len(b.buffers.Vertices)
	b.firstIndex = len(b.buffers.Indices)
}

// EndGeometry implements GeometryBuilder.
func (b *BuffersBuilder[V, I]) EndGeometry() Count {
	return Count{
		Vertices: uint32(len(b.buffers.Vertices) - b.firstVertex),
		Indices:  uint32(len(b.buffers.Indices) - b.firstIndex),
	}
}

// AddTriangle implements GeometryBuilder.
func (b *BuffersBuilder[V, I]) AddTriangle(v0, v1, v2 VertexID) {
	b.buffers.Indices = append(b.buffers.Indices, I(v0), I(v1), I(v2))
}

// AbortGeometry implements GeometryBuilder.
func (b *BuffersBuilder[V, I]) AbortGeometry() {
	b.buffers.Vertices = b.buffers.Vertices[:b.firstVertex]
	b.buffers.Indices = b.buffers.Indices[:b.firstIndex]
}

// AddStrokeVertex implements StrokeGeometryBuilder.
func (b *BuffersBuilder[V, I]) AddStrokeVertex(position curve.Point, attrs StrokeAttributes) (VertexID, error) {
	id := len(b.buffers.Vertices)
	if uint64(id) >= b.maxVertices {
		return 0, fmt.Errorf("%w: limit is %d", ErrTooManyVertices, b.maxVertices)
	}
	b.buffers.Vertices = append(b.buffers.Vertices, b.ctor.NewStrokeVertex(position, attrs))
	return VertexID(id), nil
}

// StrokeVertex is a vertex layout suitable for GPU upload. See
// StrokeVertexLayout.
type StrokeVertex struct {
	Position    [2]float32
	Normal      [2]float32
	Advancement float32
	Side        float32 // 0 on the left side, 1 on the right side.
}

// strokeVertexStride is the size of StrokeVertex in bytes.
const strokeVertexStride = 24

// NewStrokeVertex converts a stroke vertex to a StrokeVertex.
func NewStrokeVertex(position curve.Point, attrs StrokeAttributes) StrokeVertex {
	return StrokeVertex{
		Position:    [2]float32{float32(position.X), float32(position.Y)},
		Normal:      [2]float32{float32(attrs.Normal.X), float32(attrs.Normal.Y)},
		Advancement: float32(attrs.Advancement),
		Side:        float32(attrs.Side),
	}
}

// StrokeVertices is the constructor of StrokeVertex values.
var StrokeVertices StrokeVertexConstructor[StrokeVertex] = StrokeVertexFunc[StrokeVertex](NewStrokeVertex)

// StrokeVertexLayout describes a buffer of StrokeVertex values for a
// render pipeline.
func StrokeVertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: strokeVertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
			{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, // normal
			{Format: gputypes.VertexFormatFloat32, Offset: 16, ShaderLocation: 2},  // advancement
			{Format: gputypes.VertexFormatFloat32, Offset: 20, ShaderLocation: 3},  // side
		},
	}
}

// IndexFormat returns the index format matching I.
func IndexFormat[I Index]() gputypes.IndexFormat {
	if ^I(0) == I(^uint16(0)) {
		return gputypes.IndexFormatUint16
	}
	return gputypes.IndexFormatUint32
}
