// Package software is a CPU executor for gl2d frames.
//
// It follows the same contract a GPU executor does: the frame's encoded
// buffers are decoded, each draw call is rasterized with its pipeline's
// blend state, and text layers go through the coverage target before
// being composited. Rendering happens at a supersampled resolution and is
// filtered down to the viewport with golang.org/x/image/draw.
//
// The package registers itself as the "software" executor:
//
//	import _ "github.com/gogpu/gl2d/backend/software"
package software
