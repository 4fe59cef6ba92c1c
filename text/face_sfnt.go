package text

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/gl2d"
)

// sfntFace implements Face using golang.org/x/image/font/sfnt.
type sfntFace struct {
	id   FontID
	font *opentype.Font
	ppem fixed.Int26_6

	mu  sync.Mutex
	buf sfnt.Buffer
}

// NewSFNTFace parses data with golang.org/x/image/font/opentype.
//
// Glyphs are loaded at a size of one pixel per font unit, so outline
// coordinates come back in font units. PostScript (CFF) fonts parse, but
// their cubic outlines fail glyph construction.
func NewSFNTFace(data []byte) (Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &sfntFace{
		id:   nextFontID(),
		font: f,
		ppem: fixed.I(int(f.UnitsPerEm())),
	}, nil
}

// ID implements Face.ID.
func (f *sfntFace) ID() FontID { return f.id }

// UnitsPerEm implements Face.UnitsPerEm.
func (f *sfntFace) UnitsPerEm() float32 {
	return float32(f.font.UnitsPerEm())
}

// GlyphIndex implements Face.GlyphIndex.
func (f *sfntFace) GlyphIndex(r rune) (GlyphID, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return GlyphID(idx), true
}

// Advance implements Face.Advance.
func (f *sfntFace) Advance(gid GlyphID) float32 {
	f.mu.Lock()
	defer f.mu.Unlock()

	adv, err := f.font.GlyphAdvance(&f.buf, sfnt.GlyphIndex(gid), f.ppem, font.HintingNone) //nolint:gosec // glyph IDs come from GlyphIndex
	if err != nil {
		return 0
	}
	return fixedToFloat32(adv)
}

// Outline implements Face.Outline.
func (f *sfntFace) Outline(gid GlyphID) ([]gl2d.OutlineSegment, *gl2d.Rect, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	segs, err := f.font.LoadGlyph(&f.buf, sfnt.GlyphIndex(gid), f.ppem, nil) //nolint:gosec // glyph IDs come from GlyphIndex
	switch {
	case errors.Is(err, sfnt.ErrColoredGlyph):
		return nil, nil, ErrNoOutline
	case errors.Is(err, sfnt.ErrNotFound):
		return nil, nil, ErrGlyphNotFound
	case err != nil:
		return nil, nil, fmt.Errorf("text: load glyph %d: %w", gid, err)
	}
	if len(segs) == 0 {
		return nil, nil, nil
	}

	// sfnt segments are Y-down; outlines are handed out Y-up. The buffer
	// is reused, so segs must be copied before the lock is released.
	out := make([]gl2d.OutlineSegment, 0, len(segs))
	for _, s := range segs {
		seg := gl2d.OutlineSegment{}
		n := 1
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			seg.Op = gl2d.OutlineOpMoveTo
		case sfnt.SegmentOpLineTo:
			seg.Op = gl2d.OutlineOpLineTo
		case sfnt.SegmentOpQuadTo:
			seg.Op, n = gl2d.OutlineOpQuadTo, 2
		case sfnt.SegmentOpCubeTo:
			seg.Op, n = gl2d.OutlineOpCubeTo, 3
		}
		for i := 0; i < n; i++ {
			seg.Args[i] = mgl32.Vec2{fixedToFloat32(s.Args[i].X), -fixedToFloat32(s.Args[i].Y)}
		}
		out = append(out, seg)
	}

	b := segs.Bounds()
	bounds := &gl2d.Rect{
		MinX: fixedToFloat32(b.Min.X),
		MinY: fixedToFloat32(b.Min.Y),
		MaxX: fixedToFloat32(b.Max.X),
		MaxY: fixedToFloat32(b.Max.Y),
	}
	return out, bounds, nil
}

// fixedToFloat32 converts fixed.Int26_6 to float32.
func fixedToFloat32(x fixed.Int26_6) float32 {
	return float32(x) / 64
}
