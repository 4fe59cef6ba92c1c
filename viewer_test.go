package gl2d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestViewerBeginFramePans(t *testing.T) {
	v := NewViewer()
	in := NewInput()
	in.SetScreenSize(640, 480, 2)
	in.AddWheel(3, 4)
	in.AddWheel(1, 0)

	v.BeginFrame(in)

	cam := v.Camera()
	if cam.Translate != (mgl32.Vec2{-4, -4}) {
		t.Errorf("Translate = %v, want (-4, -4)", cam.Translate)
	}
	if cam.ScreenSize != [2]int{640, 480} || cam.PixelRatio != 2 {
		t.Errorf("screen = %v @ %v", cam.ScreenSize, cam.PixelRatio)
	}
	if in.Wheel != (mgl32.Vec2{}) || in.Pinch != 0 {
		t.Errorf("input not reset: %+v", in)
	}
}

func TestViewerBeginFrameZooms(t *testing.T) {
	tests := []struct {
		name      string
		opts      []ViewerOption
		pinch     float32
		wantScale float32
	}{
		{"pinch out", nil, 10, 0.8},
		{"pinch in", nil, -10, 1.2},
		{"sensitivity", []ViewerOption{WithPinchSensitivity(0.05)}, 10, 0.5},
		{"clamped high", nil, -10000, DefaultMaxScale},
		{"clamped low", nil, 49.9, DefaultMinScale},
		{"custom range", []ViewerOption{WithCameraOptions(WithZoomRange(0.5, 2))}, -100, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewer(tt.opts...)
			in := NewInput()
			in.SetPointer(100, 100)
			in.AddPinch(tt.pinch)
			v.BeginFrame(in)

			if d := v.Camera().Scale - tt.wantScale; d > 1e-5 || d < -1e-5 {
				t.Errorf("Scale = %v, want %v", v.Camera().Scale, tt.wantScale)
			}
			if got := v.Camera().WorldToScreen(mgl32.Vec2{100, 100}); !vecNear(got, mgl32.Vec2{100, 100}, 1e-3) {
				t.Errorf("pointer moved to %v", got)
			}
		})
	}
}

func TestViewerBeginFrameClearsList(t *testing.T) {
	v := NewViewer(WithBackground(White))
	v.DrawList().AddSquare(mgl32.Vec2{}, 1, Red)
	v.DrawList().NewTextLayer(Black)

	v.BeginFrame(NewInput())

	if v.DrawList().Len() != 0 || len(v.DrawList().Commands()) != 1 {
		t.Error("BeginFrame did not clear the draw list")
	}
	if v.Background() != White {
		t.Errorf("Background() = %+v", v.Background())
	}
	if v.EndFrame() != v.DrawList() {
		t.Error("EndFrame should hand off the frame's draw list")
	}
}

func TestViewerDrawGlyph(t *testing.T) {
	g := testSquareGlyph(t)
	in := NewInput()
	in.SetScreenSize(100, 100, 1)

	v := NewViewer()
	v.BeginFrame(in)
	v.DrawGlyph(mgl32.Vec2{50, 50}, 1, g)
	v.DrawGlyph(mgl32.Vec2{500, 50}, 1, g)

	if v.drawn != 1 || v.culled != 1 {
		t.Errorf("drawn/culled = %d/%d, want 1/1", v.drawn, v.culled)
	}
	if got := v.DrawList().ActiveLayer().PrimitiveCount; got != g.PrimitiveCount() {
		t.Errorf("PrimitiveCount = %d, want %d", got, g.PrimitiveCount())
	}
}

func TestInputReset(t *testing.T) {
	in := NewInput()
	in.SetPointer(3, 4)
	in.AddWheel(1, 2)
	in.AddPinch(5)
	in.Reset()
	if in.Wheel != (mgl32.Vec2{}) || in.Pinch != 0 {
		t.Errorf("Reset left %+v", in)
	}
	if in.Pointer != (mgl32.Vec2{3, 4}) {
		t.Error("Reset should keep the pointer position")
	}
}
