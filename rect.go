package gl2d

import "github.com/go-gl/mathgl/mgl32"

// Rect is an axis-aligned rectangle in render space (y grows down).
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

// Intersects reports whether r and o overlap. Touching edges count as
// overlapping.
func (r Rect) Intersects(o Rect) bool {
	return r.MinX <= o.MaxX &&
		r.MaxX >= o.MinX &&
		r.MinY <= o.MaxY &&
		r.MaxY >= o.MinY
}

// Place returns r scaled by scale and then translated by offset.
func (r Rect) Place(offset mgl32.Vec2, scale float32) Rect {
	return Rect{
		MinX: r.MinX*scale + offset[0],
		MinY: r.MinY*scale + offset[1],
		MaxX: r.MaxX*scale + offset[0],
		MaxY: r.MaxY*scale + offset[1],
	}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}
