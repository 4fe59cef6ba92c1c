package gl2d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a single draw list vertex.
//
// Pos holds (x, y, u, v). x and y are the 2D position; u and v are only
// meaningful for glyph triangles, where they carry the implicit curve
// coordinates. Fill geometry uses the constant (0, 1).
type Vertex struct {
	Pos   mgl32.Vec4
	Color Color
}

// fillVertex returns a fill vertex at (x, y).
func fillVertex(x, y float32, col Color) Vertex {
	return Vertex{Pos: mgl32.Vec4{x, y, 0, 1}, Color: col}
}

// DrawCmd describes one layer of a DrawList.
type DrawCmd struct {
	// IndexOffset is the first index of the layer in the index buffer.
	IndexOffset int
	// VertexOffset is the vertex count when the layer was opened.
	VertexOffset int
	// PrimitiveCount is the number of triangles in the layer.
	PrimitiveCount int
	// IsText marks a layer drawn with the two-pass text technique. Its
	// first two triangles are always the full-screen composite quad.
	IsText bool
}

// DrawList is the per-frame geometry batch: a vertex buffer, a triangle
// index buffer and an ordered list of layers.
//
// A DrawList is built by a single goroutine: Clear, then any number of
// Add*/New*Layer calls, then hand-off to a consumer that must finish
// reading before the next Clear.
type DrawList struct {
	cmds     []DrawCmd
	indices  []uint32
	vertices []Vertex
}

// NewDrawList returns an empty draw list with one default layer.
func NewDrawList() *DrawList {
	return &DrawList{cmds: []DrawCmd{{}}}
}

// Clear resets the list to a single empty default layer. Buffer capacity
// is kept so the next frame does not reallocate.
func (l *DrawList) Clear() {
	l.cmds = append(l.cmds[:0], DrawCmd{})
	l.indices = l.indices[:0]
	l.vertices = l.vertices[:0]
}

// NewLayer closes the current layer and opens a new fill layer.
func (l *DrawList) NewLayer() {
	l.cmds = append(l.cmds, DrawCmd{
		IndexOffset:  len(l.indices),
		VertexOffset: len(l.vertices),
	})
}

// NewTextLayer closes the current layer and opens a text layer. The layer
// starts with a full-screen quad in normalized device coordinates tagged
// with col; consumers composite the accumulated glyph coverage through it.
func (l *DrawList) NewTextLayer(col Color) {
	l.cmds = append(l.cmds, DrawCmd{
		IndexOffset:  len(l.indices),
		VertexOffset: len(l.vertices),
		IsText:       true,
	})
	l.Reserve(6, 4)
	a := l.PushVertex(fillVertex(-1, -1, col))
	b := l.PushVertex(fillVertex(1, -1, col))
	c := l.PushVertex(fillVertex(-1, 1, col))
	d := l.PushVertex(fillVertex(1, 1, col))
	l.PushTriangle(a, b, c)
	l.PushTriangle(b, c, d)
}

// Reserve grows the buffers so that indexCount more indices and
// vertexCount more vertices can be appended without reallocation.
func (l *DrawList) Reserve(indexCount, vertexCount int) {
	if n := len(l.indices) + indexCount; n > cap(l.indices) {
		l.indices = growSlice(l.indices, n)
	}
	if n := len(l.vertices) + vertexCount; n > cap(l.vertices) {
		l.vertices = growSlice(l.vertices, n)
	}
}

func growSlice[T any](s []T, need int) []T {
	c := 2 * cap(s)
	if c < need {
		c = need
	}
	grown := make([]T, len(s), c)
	copy(grown, s)
	return grown
}

// PushVertex appends a vertex and returns its index.
func (l *DrawList) PushVertex(v Vertex) uint32 {
	assert(uint64(len(l.vertices)) < math.MaxUint32, "vertex index overflows uint32")
	idx := uint32(len(l.vertices)) //nolint:gosec // bounded by the assertion above
	l.vertices = append(l.vertices, v)
	return idx
}

// PushTriangle appends a triangle to the active layer.
func (l *DrawList) PushTriangle(a, b, c uint32) {
	if debugAssertions {
		n := uint32(len(l.vertices)) //nolint:gosec // checked in PushVertex
		assert(a < n && b < n && c < n, "triangle references a missing vertex")
	}
	l.indices = append(l.indices, a, b, c)
	l.cmds[len(l.cmds)-1].PrimitiveCount++
}

// Commands returns the layers in draw order. The slice is owned by the
// list and valid until the next mutating call.
func (l *DrawList) Commands() []DrawCmd {
	return l.cmds
}

// Vertices returns the vertex buffer.
func (l *DrawList) Vertices() []Vertex {
	return l.vertices
}

// Indices returns the flat triangle index buffer.
func (l *DrawList) Indices() []uint32 {
	return l.indices
}

// Len returns the number of vertices in the list.
func (l *DrawList) Len() int {
	return len(l.vertices)
}

// ActiveLayer returns the layer that receives new geometry.
func (l *DrawList) ActiveLayer() DrawCmd {
	return l.cmds[len(l.cmds)-1]
}

// Validate checks the draw list invariants: indices form whole triangles,
// every index refers to an existing vertex, and the layer primitive counts
// add up to the index buffer.
func (l *DrawList) Validate() error {
	if len(l.cmds) == 0 {
		return &InvariantError{Reason: "no layers"}
	}
	if len(l.indices)%3 != 0 {
		return &InvariantError{Reason: fmt.Sprintf("index count %d is not a multiple of 3", len(l.indices))}
	}
	n := len(l.vertices)
	for i, idx := range l.indices {
		if int(idx) >= n {
			return &InvariantError{Reason: fmt.Sprintf("index %d = %d exceeds vertex count %d", i, idx, n)}
		}
	}
	total := 0
	for i, cmd := range l.cmds {
		if cmd.IndexOffset != total*3 {
			return &InvariantError{Reason: fmt.Sprintf("layer %d starts at index %d, want %d", i, cmd.IndexOffset, total*3)}
		}
		total += cmd.PrimitiveCount
	}
	if total*3 != len(l.indices) {
		return &InvariantError{Reason: fmt.Sprintf("layers hold %d triangles, index buffer %d", total, len(l.indices)/3)}
	}
	return nil
}
