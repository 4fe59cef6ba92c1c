// Package text turns strings into glyph meshes for gl2d draw lists.
//
// A Face decodes glyph outlines from TrueType data. Two decoders are
// built in: NewSFNTFace (golang.org/x/image/font/sfnt) and NewGoTextFace
// (github.com/go-text/typesetting). ParseFace selects one by name.
//
// Glyph meshes are tessellated once into a GlyphCache and laid out by a
// Document, which is drawn every frame:
//
//	face, err := text.NewSFNTFace(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	glyphs := text.NewGlyphCache()
//	doc, err := text.NewDocument(face, glyphs, "Hello,\nworld")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	list.NewTextLayer(gl2d.Black)
//	doc.Draw(list, cam)
//
// Only quadratic (glyf) outlines can be drawn; CFF fonts fail with
// gl2d.ErrCubicUnsupported.
package text
