package gl2d

import "github.com/go-gl/mathgl/mgl32"

// Default zoom limits of a Camera.
const (
	DefaultMinScale float32 = 0.1
	DefaultMaxScale float32 = 16.0
)

// Camera maps world space to screen space with a uniform scale followed by
// a translation: screen = world*Scale + Translate.
type Camera struct {
	// Scale is the zoom factor, always within [MinScale, MaxScale] when
	// updated through ClampZoom.
	Scale float32
	// Translate is the screen-space offset of the world origin.
	Translate mgl32.Vec2
	// ScreenSize is the viewport size in logical pixels.
	ScreenSize [2]int
	// PixelRatio is the number of device pixels per logical pixel.
	PixelRatio float32

	// MinScale and MaxScale bound the absolute zoom.
	MinScale, MaxScale float32
}

// CameraOption configures a Camera during creation.
type CameraOption func(*Camera)

// WithZoomRange sets the absolute zoom limits. Non-positive or inverted
// ranges are ignored.
func WithZoomRange(minScale, maxScale float32) CameraOption {
	return func(c *Camera) {
		if minScale > 0 && maxScale >= minScale {
			c.MinScale, c.MaxScale = minScale, maxScale
		}
	}
}

// WithScreenSize sets the initial viewport.
func WithScreenSize(width, height int, pixelRatio float32) CameraOption {
	return func(c *Camera) {
		c.ScreenSize = [2]int{width, height}
		if pixelRatio > 0 {
			c.PixelRatio = pixelRatio
		}
	}
}

// NewCamera returns an identity camera over a 1x1 screen.
func NewCamera(opts ...CameraOption) *Camera {
	c := &Camera{
		Scale:      1,
		ScreenSize: [2]int{1, 1},
		PixelRatio: 1,
		MinScale:   DefaultMinScale,
		MaxScale:   DefaultMaxScale,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PanZoom zooms by zoom around the screen point origin and then pans by
// pan (in screen pixels). The world point under origin stays under origin.
func (c *Camera) PanZoom(pan, origin mgl32.Vec2, zoom float32) {
	c.Translate = c.Translate.Mul(zoom).Sub(origin.Mul(zoom)).Add(origin).Add(pan)
	c.Scale *= zoom
}

// ClampZoom returns the zoom factor to pass to PanZoom so that the
// resulting absolute scale stays within [MinScale, MaxScale]. The limit is
// applied to the resulting scale, not to the delta.
func (c *Camera) ClampZoom(zoom float32) float32 {
	switch {
	case c.Scale*zoom < c.MinScale:
		return c.MinScale / c.Scale
	case c.Scale*zoom > c.MaxScale:
		return c.MaxScale / c.Scale
	}
	return zoom
}

// ScreenToWorld maps a screen point to world space.
func (c *Camera) ScreenToWorld(p mgl32.Vec2) mgl32.Vec2 {
	return p.Sub(c.Translate).Mul(1 / c.Scale)
}

// WorldToScreen maps a world point to screen space.
func (c *Camera) WorldToScreen(p mgl32.Vec2) mgl32.Vec2 {
	return p.Mul(c.Scale).Add(c.Translate)
}

// VisibleRect returns the world-space rectangle covered by the screen.
func (c *Camera) VisibleRect() Rect {
	lt := c.ScreenToWorld(mgl32.Vec2{0, 0})
	rb := c.ScreenToWorld(mgl32.Vec2{float32(c.ScreenSize[0]), float32(c.ScreenSize[1])})
	return Rect{MinX: lt[0], MinY: lt[1], MaxX: rb[0], MaxY: rb[1]}
}
