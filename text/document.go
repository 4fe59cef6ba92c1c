package text

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/gl2d"
)

// PlacedGlyph is one drawable glyph of a line.
type PlacedGlyph struct {
	Rune    rune
	Glyph   *gl2d.Glyph
	Advance float32
}

// GlyphDrawer places glyphs into a frame. *gl2d.Viewer implements it.
type GlyphDrawer interface {
	DrawGlyph(position mgl32.Vec2, scale float32, g *gl2d.Glyph)
}

// Document is text laid out as lines of glyphs with horizontal advances.
// No shaping or kerning is applied. A Document is immutable after
// creation and can be drawn every frame.
type Document struct {
	lines      [][]PlacedGlyph
	unitsPerEm float32
	cfg        documentConfig
	skipped    int
}

// NewDocument normalizes src to NFC, splits it into lines and loads every
// glyph through cache. Runes the font cannot draw are skipped; other
// glyph errors, such as cubic outlines, abort loading.
func NewDocument(face Face, cache *GlyphCache, src string, opts ...DocumentOption) (*Document, error) {
	cfg := defaultDocumentConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &Document{unitsPerEm: face.UnitsPerEm(), cfg: cfg}
	for _, line := range strings.Split(norm.NFC.String(src), "\n") {
		line = strings.TrimSuffix(line, "\r")
		placed := make([]PlacedGlyph, 0, len(line))
		for _, r := range line {
			g, err := cache.Load(face, r)
			if err != nil {
				if skippable(err) {
					d.skipped++
					continue
				}
				return nil, err
			}
			placed = append(placed, PlacedGlyph{Rune: r, Glyph: g.Glyph, Advance: g.Advance})
		}
		d.lines = append(d.lines, placed)
	}

	gl2d.Logger().Debug("text: document loaded",
		"lines", len(d.lines),
		"skipped", d.skipped,
		"cached", cache.Len())
	return d, nil
}

// Lines returns the glyph runs, one per source line. Callers must not
// modify them.
func (d *Document) Lines() [][]PlacedGlyph {
	return d.lines
}

// Skipped returns the number of runes dropped because the font has no
// drawable glyph for them.
func (d *Document) Skipped() int {
	return d.skipped
}

// LineHeight returns the distance between baselines in world units.
func (d *Document) LineHeight() float32 {
	if d.cfg.lineHeight > 0 {
		return d.cfg.lineHeight
	}
	return d.unitsPerEm * d.cfg.scale
}

// LineWidth returns the advance width of line i in world units.
func (d *Document) LineWidth(i int) float32 {
	var w float32
	for _, g := range d.lines[i] {
		w += g.Advance
	}
	return w * d.cfg.scale
}

// DrawTo places every glyph through dst. Line i has its baseline at
// LineHeight*(i+1) below the origin.
func (d *Document) DrawTo(dst GlyphDrawer) {
	scale := d.cfg.scale
	lh := d.LineHeight()
	for i, line := range d.lines {
		x := d.cfg.origin[0]
		y := d.cfg.origin[1] + lh*float32(i+1)
		for _, g := range line {
			dst.DrawGlyph(mgl32.Vec2{x, y}, scale, g.Glyph)
			x += g.Advance * scale
		}
	}
}

// Draw places every glyph into list, culling against cam. It returns the
// number of glyphs drawn.
func (d *Document) Draw(list *gl2d.DrawList, cam *gl2d.Camera) int {
	ld := listDrawer{list: list, cam: cam}
	d.DrawTo(&ld)
	return ld.drawn
}

type listDrawer struct {
	list  *gl2d.DrawList
	cam   *gl2d.Camera
	drawn int
}

func (l *listDrawer) DrawGlyph(position mgl32.Vec2, scale float32, g *gl2d.Glyph) {
	if l.list.AddGlyph(l.cam, position, scale, g) {
		l.drawn++
	}
}
