package software

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/gl2d"
)

// subpixelBits is the fixed-point precision of rasterized positions.
const subpixelBits = 8

// maxCoord bounds fixed-point coordinates so edge functions fit in int64.
const maxCoord = 1 << 30

// fragment is the interpolated vertex data at a sample.
type fragment struct {
	u, v  float32
	color [4]float32
}

// rasterVertex is a vertex in fixed-point sample space.
type rasterVertex struct {
	x, y int64
	frag fragment
}

// toRaster projects a draw list vertex onto a w x h sample grid.
func toRaster(v gl2d.Vertex, proj mgl32.Mat4, w, h int) (rasterVertex, bool) {
	clip := proj.Mul4x1(mgl32.Vec4{v.Pos[0], v.Pos[1], 0, 1})
	px := (float64(clip[0]) + 1) * 0.5 * float64(w)
	py := (1 - float64(clip[1])) * 0.5 * float64(h)
	x := math.Round(px * (1 << subpixelBits))
	y := math.Round(py * (1 << subpixelBits))
	if math.Abs(x) > maxCoord || math.Abs(y) > maxCoord || math.IsNaN(x) || math.IsNaN(y) {
		return rasterVertex{}, false
	}
	return rasterVertex{
		x: int64(x),
		y: int64(y),
		frag: fragment{
			u:     v.Pos[2],
			v:     v.Pos[3],
			color: [4]float32{v.Color.R, v.Color.G, v.Color.B, v.Color.A},
		},
	}, true
}

// orient returns twice the signed area of (a, b, p).
func orient(a, b *rasterVertex, px, py int64) int64 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// topLeft reports whether samples exactly on edge a->b belong to the
// triangle. The interior is on the positive side of the edge.
func topLeft(a, b *rasterVertex) bool {
	dx := -(b.y - a.y) // d orient / d px
	dy := b.x - a.x    // d orient / d py
	return dx > 0 || (dx == 0 && dy > 0)
}

// rasterize calls shade for every sample center covered by the triangle,
// clipped to a w x h grid. Samples on shared edges are assigned to exactly
// one of the triangles sharing them.
func rasterize(tri [3]rasterVertex, w, h int, shade func(x, y int, f *fragment)) {
	a, b, c := &tri[0], &tri[1], &tri[2]
	area := orient(a, b, c.x, c.y)
	if area == 0 {
		return
	}
	if area < 0 {
		b, c = c, b
		area = -area
	}

	const one = 1 << subpixelBits
	minX := max(floorDiv(min(a.x, b.x, c.x), one), 0)
	minY := max(floorDiv(min(a.y, b.y, c.y), one), 0)
	maxX := min(floorDiv(max(a.x, b.x, c.x), one), int64(w-1))
	maxY := min(floorDiv(max(a.y, b.y, c.y), one), int64(h-1))

	tlA, tlB, tlC := topLeft(b, c), topLeft(c, a), topLeft(a, b)
	inv := 1 / float64(area)

	var f fragment
	for y := minY; y <= maxY; y++ {
		sy := y*one + one/2
		for x := minX; x <= maxX; x++ {
			sx := x*one + one/2
			wa := orient(b, c, sx, sy)
			wb := orient(c, a, sx, sy)
			wc := orient(a, b, sx, sy)
			if !inside(wa, tlA) || !inside(wb, tlB) || !inside(wc, tlC) {
				continue
			}
			la := float32(float64(wa) * inv)
			lb := float32(float64(wb) * inv)
			lc := float32(float64(wc) * inv)
			f.u = la*a.frag.u + lb*b.frag.u + lc*c.frag.u
			f.v = la*a.frag.v + lb*b.frag.v + lc*c.frag.v
			for i := range f.color {
				f.color[i] = la*a.frag.color[i] + lb*b.frag.color[i] + lc*c.frag.color[i]
			}
			shade(int(x), int(y), &f)
		}
	}
}

func inside(w int64, topLeft bool) bool {
	return w > 0 || (w == 0 && topLeft)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && (a < 0) {
		q--
	}
	return q
}
