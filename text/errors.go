package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoOutline is returned for glyphs stored as bitmaps, SVG or color
	// layers instead of a monochrome outline.
	ErrNoOutline = errors.New("text: glyph has no vector outline")

	// ErrGlyphNotFound is returned when the font has no glyph for a rune.
	ErrGlyphNotFound = errors.New("text: glyph not found")

	// ErrUnknownParser is returned by ParseFace for an unregistered parser.
	ErrUnknownParser = errors.New("text: unknown font parser")
)

// GlyphError reports the rune whose glyph could not be loaded.
type GlyphError struct {
	Font FontID
	Rune rune
	Err  error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("text: font %d rune %q: %v", e.Font, e.Rune, e.Err)
}

func (e *GlyphError) Unwrap() error {
	return e.Err
}
