package text

import (
	"errors"

	"github.com/gogpu/gl2d"
	"github.com/gogpu/gl2d/internal/cache"
)

// GlyphKey identifies a cached glyph mesh.
type GlyphKey struct {
	Font FontID
	Rune rune
}

// CachedGlyph is a tessellated glyph with its horizontal advance in font
// units.
type CachedGlyph struct {
	Glyph   *gl2d.Glyph
	Advance float32
}

// GlyphCache holds tessellated glyph meshes keyed by font and rune.
//
// Meshes are built once, typically while a document is loaded, and then
// replayed every frame. Entries are never evicted. A GlyphCache is safe
// for concurrent use; pass it explicitly to whatever assembles text.
type GlyphCache struct {
	entries *cache.Cache[GlyphKey, CachedGlyph]
}

// NewGlyphCache creates an empty glyph cache.
func NewGlyphCache() *GlyphCache {
	return &GlyphCache{entries: cache.New[GlyphKey, CachedGlyph]()}
}

// Load returns the glyph for r in face, tessellating it on first use.
//
// It returns a *GlyphError wrapping ErrGlyphNotFound when the font has no
// glyph for r, ErrNoOutline for bitmap or color glyphs, and
// gl2d.ErrCubicUnsupported for cubic outlines. Failures are not cached.
func (c *GlyphCache) Load(face Face, r rune) (CachedGlyph, error) {
	key := GlyphKey{Font: face.ID(), Rune: r}
	return c.entries.GetOrCreate(key, func() (CachedGlyph, error) {
		g, err := buildGlyph(face, r)
		if err != nil {
			return CachedGlyph{}, &GlyphError{Font: key.Font, Rune: r, Err: err}
		}
		gl2d.Logger().Debug("text: glyph cached",
			"font", key.Font,
			"rune", string(r),
			"triangles", g.Glyph.PrimitiveCount())
		return g, nil
	})
}

func buildGlyph(face Face, r rune) (CachedGlyph, error) {
	gid, ok := face.GlyphIndex(r)
	if !ok {
		return CachedGlyph{}, ErrGlyphNotFound
	}
	segs, bounds, err := face.Outline(gid)
	if err != nil {
		return CachedGlyph{}, err
	}
	g, err := gl2d.BuildGlyph(segs, bounds)
	if err != nil {
		return CachedGlyph{}, err
	}
	return CachedGlyph{Glyph: g, Advance: face.Advance(gid)}, nil
}

// Lookup returns a previously loaded glyph.
func (c *GlyphCache) Lookup(font FontID, r rune) (CachedGlyph, bool) {
	return c.entries.Get(GlyphKey{Font: font, Rune: r})
}

// Len returns the number of cached glyphs.
func (c *GlyphCache) Len() int {
	return c.entries.Len()
}

// GlyphCacheStats contains glyph cache statistics.
type GlyphCacheStats struct {
	Len    int
	Hits   uint64
	Misses uint64
}

// Stats returns hit and miss counts of Load and Lookup.
func (c *GlyphCache) Stats() GlyphCacheStats {
	s := c.entries.Stats()
	return GlyphCacheStats{Len: s.Len, Hits: s.Hits, Misses: s.Misses}
}

// skippable reports whether a Load error only means the rune cannot be
// drawn with this font.
func skippable(err error) bool {
	return errors.Is(err, ErrGlyphNotFound) || errors.Is(err, ErrNoOutline)
}
