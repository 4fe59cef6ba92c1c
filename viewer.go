package gl2d

import "github.com/go-gl/mathgl/mgl32"

// Viewer drives the per-frame loop: it folds input into the camera and
// owns the draw list that is rebuilt every frame.
//
//	v := gl2d.NewViewer()
//	for {
//		v.BeginFrame(in)
//		v.DrawList().AddSquare(...)
//		consume(v.EndFrame(), v.Camera())
//	}
type Viewer struct {
	cam  *Camera
	list *DrawList
	opts viewerOptions

	drawn, culled int
}

// NewViewer returns a viewer with an identity camera and an empty list.
func NewViewer(opts ...ViewerOption) *Viewer {
	o := defaultViewerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Viewer{
		cam:  NewCamera(o.cameraOpts...),
		list: NewDrawList(),
		opts: o,
	}
}

// Camera returns the viewer's camera.
func (v *Viewer) Camera() *Camera { return v.cam }

// DrawList returns the list being built for the current frame.
func (v *Viewer) DrawList() *DrawList { return v.list }

// Background returns the clear color.
func (v *Viewer) Background() Color { return v.opts.background }

// BeginFrame consumes in: the wheel pans, the pinch zooms around the
// pointer, and the zoom is clamped to the camera range. The input deltas
// are reset and the draw list is cleared.
func (v *Viewer) BeginFrame(in *Input) {
	v.cam.ScreenSize = in.ScreenSize
	if in.PixelRatio > 0 {
		v.cam.PixelRatio = in.PixelRatio
	}

	pan := in.Wheel.Mul(-1)
	zoom := v.cam.ClampZoom(1 - in.Pinch*v.opts.pinchSensitivity)
	v.cam.PanZoom(pan, in.Pointer, zoom)

	in.Reset()
	v.list.Clear()
	v.drawn, v.culled = 0, 0
}

// DrawGlyph places g through the viewer's camera and keeps culling
// statistics for the frame log.
func (v *Viewer) DrawGlyph(position mgl32.Vec2, scale float32, g *Glyph) {
	if v.list.AddGlyph(v.cam, position, scale, g) {
		v.drawn++
	} else {
		v.culled++
	}
}

// EndFrame finishes the frame and returns the list for hand-off. The list
// stays valid until the next BeginFrame.
func (v *Viewer) EndFrame() *DrawList {
	Logger().Debug("frame built",
		"layers", len(v.list.Commands()),
		"vertices", len(v.list.Vertices()),
		"triangles", len(v.list.Indices())/3,
		"glyphs_drawn", v.drawn,
		"glyphs_culled", v.culled,
		"scale", v.cam.Scale)
	return v.list
}
