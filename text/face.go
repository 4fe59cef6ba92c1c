package text

import (
	"strconv"
	"sync/atomic"

	"github.com/gogpu/gl2d"
)

// FontID identifies a parsed font within the process. Every Face gets a
// distinct ID, so cached glyphs of different fonts never collide.
type FontID uint32

// String returns the decimal ID.
func (id FontID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// GlyphID is a glyph index within a font.
type GlyphID uint32

var lastFontID atomic.Uint32

func nextFontID() FontID {
	return FontID(lastFontID.Add(1))
}

// Face decodes glyph outlines from a font.
//
// Coordinates are in font units. Outline segments are Y-up, as stored in
// the font; the bounds are already in render space (Y down) so they can
// be handed to gl2d.BuildGlyph unchanged.
//
// Implementations are safe for concurrent use.
type Face interface {
	// ID returns the process-unique font ID.
	ID() FontID

	// UnitsPerEm returns the size of the em square in font units.
	UnitsPerEm() float32

	// GlyphIndex returns the glyph for r. The second result is false when
	// the font maps r to no glyph.
	GlyphIndex(r rune) (GlyphID, bool)

	// Advance returns the horizontal advance of gid in font units.
	Advance(gid GlyphID) float32

	// Outline returns the outline of gid and its bounds, or nil bounds for
	// glyphs without contours. Non-outline glyphs return ErrNoOutline.
	Outline(gid GlyphID) ([]gl2d.OutlineSegment, *gl2d.Rect, error)
}
