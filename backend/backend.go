package backend

import (
	"errors"
	"image"

	"github.com/gogpu/gl2d"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested executor is not
	// registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrMisalignedBuffer is returned when an encoded buffer length is not
	// a whole number of elements.
	ErrMisalignedBuffer = errors.New("backend: buffer length is not a multiple of the element size")

	// ErrIndexOutOfRange is returned when a draw call reads past the index
	// buffer or an index past the vertex buffer.
	ErrIndexOutOfRange = errors.New("backend: index out of range")
)

// Executor consumes frames: it uploads the encoded buffers and runs the
// draw calls in order. The frame is read-only to the executor and must be
// fully consumed before Execute returns.
type Executor interface {
	// Name returns the executor identifier (e.g., "software").
	Name() string

	// Execute renders one frame.
	Execute(f *Frame) error
}

// Snapshotter is implemented by executors that can read back the last
// rendered frame.
type Snapshotter interface {
	Snapshot() image.Image
}

// Frame is everything an executor needs to render one draw list.
type Frame struct {
	// Vertices is the encoded vertex buffer (see EncodeVertices).
	Vertices []byte
	// Indices is the encoded uint32 index buffer.
	Indices []byte
	// Calls are the draw calls in submission order.
	Calls []DrawCall
	// Viewport is the render target size in device pixels.
	Viewport [2]int
	// Background is the color the main target is cleared to.
	Background gl2d.Color
}

// BuildFrame encodes list for cam into f, reusing f's buffers.
func BuildFrame(f *Frame, list *gl2d.DrawList, cam *gl2d.Camera, background gl2d.Color) {
	f.Vertices = EncodeVertices(f.Vertices[:0], list.Vertices())
	f.Indices = EncodeIndices(f.Indices[:0], list.Indices())
	f.Calls = Plan(list, cam)
	f.Viewport = Viewport(cam)
	f.Background = background
}

// Viewport returns the device-pixel size of cam's screen.
func Viewport(cam *gl2d.Camera) [2]int {
	return [2]int{
		int(float32(cam.ScreenSize[0]) * cam.PixelRatio),
		int(float32(cam.ScreenSize[1]) * cam.PixelRatio),
	}
}
