package backend

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/gl2d"
)

// Projection returns the column-major matrix taking world coordinates to
// clip space for cam. It applies the camera scale and translation, flips
// Y so that world Y grows down the screen, and offsets by half a pixel.
func Projection(cam *gl2d.Camera) mgl32.Mat4 {
	w := float32(cam.ScreenSize[0])
	h := float32(cam.ScreenSize[1])
	sx := 2 * cam.Scale / w
	sy := 2 * cam.Scale / h
	npx := 2*cam.Translate[0]/w + 1/w
	npy := -2*cam.Translate[1]/h + 1/h
	return mgl32.Mat4{
		sx, 0, 0, 0,
		0, -sy, 0, 0,
		0, 0, -1, 0,
		npx - 1, npy + 1, 0, 1,
	}
}
