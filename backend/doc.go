// Package backend defines how a gl2d draw list is handed to a GPU.
//
// It fixes the binary layout of the vertex and index buffers, the
// projection matrix derived from the camera, the WGSL programs for the
// fill and text materials, and the order of draw calls with their blend
// states. Device creation and submission belong to an Executor.
//
// # Text layers
//
// A text layer is drawn in two passes. Glyph triangles are accumulated
// into an offscreen coverage target that is cleared first; every covering
// fragment adds 1/255 to the blue channel. The layer's header quad then
// composites the target onto the main target, keeping pixels with an odd
// count. Overlapping fan and curve triangles thereby resolve to the
// filled outline without a general polygon triangulator.
//
// # Executors
//
// Executors register themselves from init functions:
//
//	import _ "github.com/gogpu/gl2d/backend/software"
//
//	exec, err := backend.Get("software")
//	if err != nil {
//		log.Fatal(err)
//	}
//	var f backend.Frame
//	backend.BuildFrame(&f, viewer.EndFrame(), viewer.Camera(), viewer.Background())
//	if err := exec.Execute(&f); err != nil {
//		log.Fatal(err)
//	}
package backend
