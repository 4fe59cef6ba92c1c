package text

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/gl2d"
)

type fakeGlyph struct {
	segs    []gl2d.OutlineSegment
	bounds  *gl2d.Rect
	advance float32
	err     error
}

// fakeFace is a Face with hand-made glyphs in a 1000 unit em.
type fakeFace struct {
	id     FontID
	glyphs map[rune]fakeGlyph
	loads  int
}

func square(size float32) []gl2d.OutlineSegment {
	return []gl2d.OutlineSegment{
		{Op: gl2d.OutlineOpMoveTo, Args: [3]mgl32.Vec2{{0, 0}}},
		{Op: gl2d.OutlineOpLineTo, Args: [3]mgl32.Vec2{{size, 0}}},
		{Op: gl2d.OutlineOpLineTo, Args: [3]mgl32.Vec2{{size, size}}},
		{Op: gl2d.OutlineOpLineTo, Args: [3]mgl32.Vec2{{0, size}}},
		{Op: gl2d.OutlineOpClose},
	}
}

func newFakeFace() *fakeFace {
	box := &gl2d.Rect{MinX: 0, MinY: -400, MaxX: 400, MaxY: 0}
	return &fakeFace{
		id: nextFontID(),
		glyphs: map[rune]fakeGlyph{
			'a': {segs: square(400), bounds: box, advance: 500},
			'b': {segs: square(400), bounds: box, advance: 500},
			'\u00e9': {segs: square(400), bounds: box, advance: 500},
			' ': {advance: 250},
			'c': {segs: []gl2d.OutlineSegment{
				{Op: gl2d.OutlineOpMoveTo},
				{Op: gl2d.OutlineOpCubeTo, Args: [3]mgl32.Vec2{{0, 100}, {100, 100}, {100, 0}}},
			}, advance: 500},
			'☺': {err: ErrNoOutline, advance: 500},
		},
	}
}

func (f *fakeFace) ID() FontID          { return f.id }
func (f *fakeFace) UnitsPerEm() float32 { return 1000 }

func (f *fakeFace) GlyphIndex(r rune) (GlyphID, bool) {
	if _, ok := f.glyphs[r]; !ok {
		return 0, false
	}
	return GlyphID(r), true
}

func (f *fakeFace) Advance(gid GlyphID) float32 {
	return f.glyphs[rune(gid)].advance
}

func (f *fakeFace) Outline(gid GlyphID) ([]gl2d.OutlineSegment, *gl2d.Rect, error) {
	f.loads++
	g := f.glyphs[rune(gid)]
	return g.segs, g.bounds, g.err
}
