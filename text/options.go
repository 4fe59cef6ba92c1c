package text

import "github.com/go-gl/mathgl/mgl32"

// DefaultGlyphScale is the world size of one font unit in a Document.
const DefaultGlyphScale float32 = 0.2

// DocumentOption configures a Document during creation.
type DocumentOption func(*documentConfig)

type documentConfig struct {
	scale      float32
	lineHeight float32
	origin     mgl32.Vec2
}

// defaultDocumentConfig returns the default document configuration.
func defaultDocumentConfig() documentConfig {
	return documentConfig{
		scale: DefaultGlyphScale,
	}
}

// WithGlyphScale sets the world size of one font unit. Non-positive
// values are ignored.
func WithGlyphScale(scale float32) DocumentOption {
	return func(c *documentConfig) {
		if scale > 0 {
			c.scale = scale
		}
	}
}

// WithLineHeight sets the distance between baselines in world units.
// Zero, the default, uses one em at the glyph scale.
func WithLineHeight(h float32) DocumentOption {
	return func(c *documentConfig) {
		if h >= 0 {
			c.lineHeight = h
		}
	}
}

// WithOrigin sets the world position of the top-left corner of the first
// line.
func WithOrigin(origin mgl32.Vec2) DocumentOption {
	return func(c *documentConfig) {
		c.origin = origin
	}
}
