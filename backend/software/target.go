package software

import (
	"image"
	"math"

	"github.com/gogpu/gl2d"
)

// target is an RGBA8 render target holding straight color values, as a
// GPU color attachment would.
type target struct {
	w, h int
	pix  []uint8
}

func (t *target) resize(w, h int) {
	t.w, t.h = w, h
	n := w * h * 4
	if cap(t.pix) < n {
		t.pix = make([]uint8, n)
	}
	t.pix = t.pix[:n]
}

func (t *target) clear(c gl2d.Color) {
	r, g, b, a := unorm(c.R), unorm(c.G), unorm(c.B), unorm(c.A)
	for i := 0; i < len(t.pix); i += 4 {
		t.pix[i], t.pix[i+1], t.pix[i+2], t.pix[i+3] = r, g, b, a
	}
}

func (t *target) at(x, y int) [4]float32 {
	i := (y*t.w + x) * 4
	p := t.pix[i : i+4 : i+4]
	return [4]float32{
		float32(p[0]) / 255,
		float32(p[1]) / 255,
		float32(p[2]) / 255,
		float32(p[3]) / 255,
	}
}

func (t *target) set(x, y int, c [4]float32) {
	i := (y*t.w + x) * 4
	p := t.pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = unorm(c[0]), unorm(c[1]), unorm(c[2]), unorm(c[3])
}

// resolve writes the target into img, premultiplying alpha.
func (t *target) resolve(img *image.RGBA) {
	for i := 0; i < len(t.pix); i += 4 {
		a := uint32(t.pix[i+3])
		img.Pix[i] = uint8((uint32(t.pix[i])*a + 127) / 255)
		img.Pix[i+1] = uint8((uint32(t.pix[i+1])*a + 127) / 255)
		img.Pix[i+2] = uint8((uint32(t.pix[i+2])*a + 127) / 255)
		img.Pix[i+3] = uint8(a)
	}
}

// unorm converts v to an 8-bit normalized value, clamping to [0, 1].
func unorm(v float32) uint8 {
	switch {
	case v <= 0 || math.IsNaN(float64(v)):
		return 0
	case v >= 1:
		return 255
	}
	return uint8(math.Round(float64(v) * 255))
}
