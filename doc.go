// Package gl2d tessellates 2D drawing requests into one batched triangle
// buffer per frame.
//
// # Overview
//
// A frame is built into a DrawList: a vertex buffer, a uint32 triangle
// index buffer and an ordered list of layers (DrawCmd). Shapes are
// generated directly into the list:
//
//	list := gl2d.NewDrawList()
//	list.AddLine(p1, p2, gl2d.White, 2, cam.Scale)
//	list.AddCircle(center, 10, gl2d.Red, 1, cam.Scale)
//	list.AddSquare(center, 4, gl2d.Blue)
//
// # Glyphs
//
// Glyph outlines are tessellated once into a Glyph with GlyphBuilder or
// BuildGlyph and replayed every frame with AddGlyph. Curved edges are not
// flattened: each quadratic segment becomes one triangle whose (u, v)
// coordinates let the fragment test u*u - v <= 0 decide coverage. Glyph
// triangles only render correctly inside a text layer (NewTextLayer),
// which consumers draw by accumulating coverage parity offscreen and then
// compositing through the layer's leading full-screen quad.
//
// Only quadratic outlines are supported; cubic segments fail with
// ErrCubicUnsupported.
//
// # Coordinate System
//
// World and render space have the origin at top-left with Y increasing
// down. Font outlines are Y-up and are flipped on ingestion. A Camera maps
// world to screen as screen = world*Scale + Translate.
//
// # Concurrency
//
// A DrawList is built by one goroutine per frame: Clear, add geometry,
// hand off, and wait for the consumer before the next Clear. Glyphs are
// immutable and may be shared freely.
//
// # Subpackages
//
//   - text: font decoders, glyph cache and document layout
//   - backend: vertex layout, binary encoding, projection and draw plan
//   - backend/software: reference CPU consumer rendering to an image
package gl2d
