package gl2d

import "github.com/go-gl/mathgl/mgl32"

// Input accumulates user input between frames. Event handlers add to it;
// Viewer.BeginFrame consumes the deltas and resets them.
type Input struct {
	// ScreenSize is the viewport size in logical pixels.
	ScreenSize [2]int
	// PixelRatio is the number of device pixels per logical pixel.
	PixelRatio float32
	// Pointer is the pointer position in screen pixels.
	Pointer mgl32.Vec2
	// Wheel is the accumulated scroll delta in screen pixels.
	Wheel mgl32.Vec2
	// Pinch is the accumulated pinch (ctrl+wheel) delta.
	Pinch float32
}

// NewInput returns an input holder for a 1x1 screen.
func NewInput() *Input {
	return &Input{ScreenSize: [2]int{1, 1}, PixelRatio: 1}
}

// SetScreenSize records the viewport size and pixel ratio.
func (in *Input) SetScreenSize(width, height int, pixelRatio float32) {
	in.ScreenSize = [2]int{width, height}
	in.PixelRatio = pixelRatio
}

// SetPointer records the pointer position.
func (in *Input) SetPointer(x, y float32) {
	in.Pointer = mgl32.Vec2{x, y}
}

// AddWheel accumulates a scroll delta.
func (in *Input) AddWheel(dx, dy float32) {
	in.Wheel = in.Wheel.Add(mgl32.Vec2{dx, dy})
}

// AddPinch accumulates a pinch delta. Positive values zoom out.
func (in *Input) AddPinch(d float32) {
	in.Pinch += d
}

// Reset zeroes the per-frame deltas.
func (in *Input) Reset() {
	in.Wheel = mgl32.Vec2{}
	in.Pinch = 0
}
