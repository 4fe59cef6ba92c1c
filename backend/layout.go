package backend

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gl2d"
)

// VertexStride is the size of one encoded vertex: eight float32 in the
// order x, y, u, v, r, g, b, a.
const VertexStride = 32

// IndexFormat is the format of the encoded index buffer.
const IndexFormat = gputypes.IndexFormatUint32

// Shader locations of the vertex attributes.
const (
	LocationPosition = 0
	LocationColor    = 1
)

// VertexBufferLayouts returns the layout of the encoded vertex buffer.
func VertexBufferLayouts() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: LocationPosition}, // x, y, u, v
				{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: LocationColor},  // r, g, b, a
			},
		},
	}
}

// EncodeVertices appends the little-endian encoding of verts to dst.
func EncodeVertices(dst []byte, verts []gl2d.Vertex) []byte {
	off := len(dst)
	dst = grow(dst, len(verts)*VertexStride)
	for i := range verts {
		v := &verts[i]
		putFloats(dst[off:], v.Pos[0], v.Pos[1], v.Pos[2], v.Pos[3], v.Color.R, v.Color.G, v.Color.B, v.Color.A)
		off += VertexStride
	}
	return dst
}

// EncodeIndices appends the little-endian encoding of idx to dst.
func EncodeIndices(dst []byte, idx []uint32) []byte {
	off := len(dst)
	dst = grow(dst, len(idx)*4)
	for _, i := range idx {
		binary.LittleEndian.PutUint32(dst[off:], i)
		off += 4
	}
	return dst
}

// DecodeVertices appends the vertices encoded in b to dst.
func DecodeVertices(dst []gl2d.Vertex, b []byte) ([]gl2d.Vertex, error) {
	if len(b)%VertexStride != 0 {
		return dst, fmt.Errorf("%w: %d vertex bytes", ErrMisalignedBuffer, len(b))
	}
	for off := 0; off < len(b); off += VertexStride {
		f := func(i int) float32 {
			return math.Float32frombits(binary.LittleEndian.Uint32(b[off+4*i:]))
		}
		dst = append(dst, gl2d.Vertex{
			Pos:   [4]float32{f(0), f(1), f(2), f(3)},
			Color: gl2d.Color{R: f(4), G: f(5), B: f(6), A: f(7)},
		})
	}
	return dst, nil
}

// DecodeIndices appends the indices encoded in b to dst.
func DecodeIndices(dst []uint32, b []byte) ([]uint32, error) {
	if len(b)%4 != 0 {
		return dst, fmt.Errorf("%w: %d index bytes", ErrMisalignedBuffer, len(b))
	}
	for off := 0; off < len(b); off += 4 {
		dst = append(dst, binary.LittleEndian.Uint32(b[off:]))
	}
	return dst, nil
}

func putFloats(b []byte, vals ...float32) {
	for i, v := range vals {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}
}

// grow extends b by n bytes, reallocating only when capacity runs out.
func grow(b []byte, n int) []byte {
	if need := len(b) + n; need > cap(b) {
		nb := make([]byte, len(b), need)
		copy(nb, b)
		b = nb
	}
	return b[:len(b)+n]
}
