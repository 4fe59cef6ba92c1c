package gl2d

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Glyph is a precomputed glyph mesh in glyph-local render space. It is
// built once per (font, rune) and replayed with AddGlyph every frame.
// A Glyph is immutable and safe to share between goroutines.
type Glyph struct {
	indices        []uint32
	vertices       []Vertex
	primitiveCount int
	bounds         *Rect
}

// Vertices returns the glyph vertices. Callers must not modify them.
func (g *Glyph) Vertices() []Vertex { return g.vertices }

// Indices returns the glyph triangle indices, zero-based within the glyph.
func (g *Glyph) Indices() []uint32 { return g.indices }

// PrimitiveCount returns the number of triangles in the glyph.
func (g *Glyph) PrimitiveCount() int { return g.primitiveCount }

// Bounds returns the glyph bounding box in render space. The second
// result is false for glyphs without outline bounds, such as spaces.
func (g *Glyph) Bounds() (Rect, bool) {
	if g.bounds == nil {
		return Rect{}, false
	}
	return *g.bounds, true
}

// GlyphBuilder turns a stream of outline callbacks into a Glyph.
//
// The first error is sticky: later calls are ignored and Build returns it.
type GlyphBuilder struct {
	state ContourState
	index int
	err   error
	glyph Glyph
}

// NewGlyphBuilder returns an empty builder.
func NewGlyphBuilder() *GlyphBuilder {
	return &GlyphBuilder{}
}

// MoveTo starts a new contour.
func (b *GlyphBuilder) MoveTo(x, y float32) {
	b.step(OutlineSegment{Op: OutlineOpMoveTo, Args: [3]mgl32.Vec2{{x, y}}})
}

// LineTo adds a straight edge.
func (b *GlyphBuilder) LineTo(x, y float32) {
	b.step(OutlineSegment{Op: OutlineOpLineTo, Args: [3]mgl32.Vec2{{x, y}}})
}

// QuadTo adds a quadratic curve through control point (cx, cy).
func (b *GlyphBuilder) QuadTo(cx, cy, x, y float32) {
	b.step(OutlineSegment{Op: OutlineOpQuadTo, Args: [3]mgl32.Vec2{{cx, cy}, {x, y}}})
}

// CubeTo records a cubic curve, which always fails the build with
// ErrCubicUnsupported.
func (b *GlyphBuilder) CubeTo(c1x, c1y, c2x, c2y, x, y float32) {
	b.step(OutlineSegment{Op: OutlineOpCubeTo, Args: [3]mgl32.Vec2{{c1x, c1y}, {c2x, c2y}, {x, y}}})
}

// Close closes the current contour.
func (b *GlyphBuilder) Close() {
	b.step(OutlineSegment{Op: OutlineOpClose})
}

// Segment feeds one outline segment to the builder.
func (b *GlyphBuilder) Segment(seg OutlineSegment) {
	b.step(seg)
}

// Err returns the first error seen so far.
func (b *GlyphBuilder) Err() error {
	return b.err
}

func (b *GlyphBuilder) step(seg OutlineSegment) {
	if b.err != nil {
		return
	}
	next, tris, err := b.state.Step(seg)
	if err != nil {
		b.err = &OutlineError{Index: b.index, Op: seg.Op, Err: err}
		return
	}
	b.index++
	b.state = next
	for _, t := range tris {
		b.addTriangle(t)
	}
}

func (b *GlyphBuilder) addTriangle(t GlyphTriangle) {
	g := &b.glyph
	base := uint32(len(g.vertices)) //nolint:gosec // glyph meshes are tiny
	for i := range t.P {
		g.vertices = append(g.vertices, Vertex{
			Pos:   mgl32.Vec4{t.P[i][0], t.P[i][1], t.UV[i][0], t.UV[i][1]},
			Color: CurveTag,
		})
	}
	g.indices = append(g.indices, base, base+1, base+2)
	g.primitiveCount++
}

// Build returns the finished glyph with the given render-space bounds
// (nil for none). The builder must not be used afterwards.
func (b *GlyphBuilder) Build(bounds *Rect) (*Glyph, error) {
	if b.err != nil {
		return nil, b.err
	}
	g := b.glyph
	if bounds != nil {
		r := *bounds
		g.bounds = &r
	}
	b.glyph = Glyph{}
	return &g, nil
}

// BuildGlyph tessellates a complete outline. Bounds are in render space
// and may be nil.
func BuildGlyph(segments []OutlineSegment, bounds *Rect) (*Glyph, error) {
	b := NewGlyphBuilder()
	for _, seg := range segments {
		b.Segment(seg)
	}
	return b.Build(bounds)
}

// AddGlyph places g at position with the given scale. Glyphs whose placed
// bounds miss the camera's visible rectangle are skipped; glyphs without
// bounds are always placed. It reports whether the glyph was drawn.
func (l *DrawList) AddGlyph(cam *Camera, position mgl32.Vec2, scale float32, g *Glyph) bool {
	if bb, ok := g.Bounds(); ok && cam != nil {
		if !bb.Place(position, scale).Intersects(cam.VisibleRect()) {
			return false
		}
	}

	assert(uint64(len(l.vertices))+uint64(len(g.vertices)) <= math.MaxUint32, "glyph rebasing overflows uint32")
	base := uint32(len(l.vertices)) //nolint:gosec // bounded by the assertion above

	l.Reserve(len(g.indices), len(g.vertices))
	for _, idx := range g.indices {
		l.indices = append(l.indices, idx+base)
	}
	for _, v := range g.vertices {
		l.vertices = append(l.vertices, Vertex{
			Pos:   mgl32.Vec4{v.Pos[0]*scale + position[0], v.Pos[1]*scale + position[1], v.Pos[2], v.Pos[3]},
			Color: v.Color,
		})
	}
	l.cmds[len(l.cmds)-1].PrimitiveCount += g.primitiveCount
	return true
}
