package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/gl2d"
)

// goTextFace implements Face using github.com/go-text/typesetting.
type goTextFace struct {
	id FontID

	// font.Face is not safe for concurrent use.
	mu   sync.Mutex
	face *font.Face
}

// NewGoTextFace parses data with github.com/go-text/typesetting/font.
func NewGoTextFace(data []byte) (Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &goTextFace{id: nextFontID(), face: face}, nil
}

// ID implements Face.ID.
func (f *goTextFace) ID() FontID { return f.id }

// UnitsPerEm implements Face.UnitsPerEm.
func (f *goTextFace) UnitsPerEm() float32 {
	return float32(f.face.Upem())
}

// GlyphIndex implements Face.GlyphIndex.
func (f *goTextFace) GlyphIndex(r rune) (GlyphID, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	gid, ok := f.face.NominalGlyph(r)
	if !ok || gid == 0 {
		return 0, false
	}
	return GlyphID(gid), true
}

// Advance implements Face.Advance.
func (f *goTextFace) Advance(gid GlyphID) float32 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.face.HorizontalAdvance(font.GID(gid))
}

// Outline implements Face.Outline.
func (f *goTextFace) Outline(gid GlyphID) ([]gl2d.OutlineSegment, *gl2d.Rect, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var outline font.GlyphOutline
	switch data := f.face.GlyphData(font.GID(gid)).(type) {
	case font.GlyphOutline:
		outline = data
	case nil:
		return nil, nil, ErrGlyphNotFound
	default:
		return nil, nil, ErrNoOutline
	}
	if len(outline.Segments) == 0 {
		return nil, nil, nil
	}

	out := make([]gl2d.OutlineSegment, 0, len(outline.Segments))
	for _, s := range outline.Segments {
		seg := gl2d.OutlineSegment{}
		switch s.Op {
		case ot.SegmentOpMoveTo:
			seg.Op = gl2d.OutlineOpMoveTo
		case ot.SegmentOpLineTo:
			seg.Op = gl2d.OutlineOpLineTo
		case ot.SegmentOpQuadTo:
			seg.Op = gl2d.OutlineOpQuadTo
		case ot.SegmentOpCubeTo:
			seg.Op = gl2d.OutlineOpCubeTo
		}
		for i, p := range s.ArgsSlice() {
			seg.Args[i] = mgl32.Vec2{p.X, p.Y}
		}
		out = append(out, seg)
	}

	var bounds *gl2d.Rect
	if ext, ok := f.face.GlyphExtents(font.GID(gid)); ok {
		// Extents are Y-up with a negative height.
		bounds = &gl2d.Rect{
			MinX: ext.XBearing,
			MinY: -ext.YBearing,
			MaxX: ext.XBearing + ext.Width,
			MaxY: -(ext.YBearing + ext.Height),
		}
	}
	return out, bounds, nil
}
