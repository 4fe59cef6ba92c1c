package gl2d

import "github.com/go-gl/mathgl/mgl32"

// OutlineOp is the operation of an outline segment.
type OutlineOp uint8

const (
	// OutlineOpMoveTo starts a new contour at Args[0].
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a straight edge to Args[0].
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic curve with control point Args[0]
	// ending at Args[1].
	OutlineOpQuadTo

	// OutlineOpCubeTo draws a cubic curve with controls Args[0], Args[1]
	// ending at Args[2]. Glyph construction rejects it.
	OutlineOpCubeTo

	// OutlineOpClose closes the current contour.
	OutlineOpClose
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubeTo:
		return "CubeTo"
	case OutlineOpClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// OutlineSegment is one step of a glyph outline in font space, where the
// Y axis increases up.
type OutlineSegment struct {
	Op   OutlineOp
	Args [3]mgl32.Vec2
}

// Implicit curve coordinates of glyph triangles. A fragment with
// u*u - v <= 0 is covered.
var (
	fanUV   = [3]mgl32.Vec2{{0, 0}, {0, 0}, {1, 1}}
	curveUV = [3]mgl32.Vec2{{0, 0}, {0.5, 0}, {1, 1}}
)

// GlyphTriangle is a triangle emitted by the outline tessellator, in
// render space (Y down).
type GlyphTriangle struct {
	P  [3]mgl32.Vec2
	UV [3]mgl32.Vec2
}

// IsCurve reports whether t is a curve patch rather than a fan triangle.
func (t GlyphTriangle) IsCurve() bool {
	return t.UV == curveUV
}

// ContourState is the tessellator state between outline segments.
//
// Each contour is fan-triangulated around its first point; every
// quadratic segment additionally emits a curve patch between its chord
// and the curve. Consumers accumulate coverage parity, so overlapping fan
// and patch triangles resolve to the filled outline.
type ContourState struct {
	// First is the first point of the current contour.
	First mgl32.Vec2
	// Current is the pen position.
	Current mgl32.Vec2
	// Segments counts edges drawn since the contour started.
	Segments int
}

// Step advances the state by one segment and returns the triangles it
// produces. Coordinates are flipped from font space to render space.
// A cubic segment returns ErrCubicUnsupported and leaves the state
// unchanged.
func (s ContourState) Step(seg OutlineSegment) (ContourState, []GlyphTriangle, error) {
	switch seg.Op {
	case OutlineOpMoveTo:
		p := flipY(seg.Args[0])
		return ContourState{First: p, Current: p}, nil, nil

	case OutlineOpLineTo:
		p := flipY(seg.Args[0])
		var tris []GlyphTriangle
		s.Segments++
		if s.Segments >= 2 {
			tris = append(tris, s.fan(p))
		}
		s.Current = p
		return s, tris, nil

	case OutlineOpQuadTo:
		ctrl := flipY(seg.Args[0])
		p := flipY(seg.Args[1])
		tris := make([]GlyphTriangle, 0, 2)
		s.Segments++
		if s.Segments >= 2 {
			tris = append(tris, s.fan(p))
		}
		tris = append(tris, GlyphTriangle{
			P:  [3]mgl32.Vec2{s.Current, ctrl, p},
			UV: curveUV,
		})
		s.Current = p
		return s, tris, nil

	case OutlineOpClose:
		return ContourState{First: s.First, Current: s.First}, nil, nil

	case OutlineOpCubeTo:
		return s, nil, ErrCubicUnsupported
	}
	return s, nil, nil
}

func (s ContourState) fan(p mgl32.Vec2) GlyphTriangle {
	return GlyphTriangle{
		P:  [3]mgl32.Vec2{s.First, s.Current, p},
		UV: fanUV,
	}
}

func flipY(p mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{p[0], -p[1]}
}
