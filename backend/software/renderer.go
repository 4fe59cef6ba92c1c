package software

import (
	"fmt"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/gl2d"
	"github.com/gogpu/gl2d/backend"
)

// Name is the registry name of the software executor.
const Name = "software"

func init() {
	backend.Register(Name, func() backend.Executor {
		return New(DefaultConfig())
	})
}

// Renderer executes frames on the CPU.
//
// Renderer is not safe for concurrent use. Buffers are reused between
// frames.
type Renderer struct {
	cfg Config

	main     target
	coverage target
	verts    []gl2d.Vertex
	indices  []uint32

	samples *image.RGBA
	out     *image.RGBA
}

// New creates a renderer with the given configuration.
func New(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Name returns "software".
func (r *Renderer) Name() string { return Name }

// Image returns the last rendered frame, or nil before the first Execute.
// The image is overwritten by the next Execute.
func (r *Renderer) Image() *image.RGBA { return r.out }

// Snapshot returns the last rendered frame.
func (r *Renderer) Snapshot() image.Image {
	if r.out == nil {
		return nil
	}
	return r.out
}

// Execute renders f.
func (r *Renderer) Execute(f *backend.Frame) error {
	var err error
	if r.verts, err = backend.DecodeVertices(r.verts[:0], f.Vertices); err != nil {
		return err
	}
	if r.indices, err = backend.DecodeIndices(r.indices[:0], f.Indices); err != nil {
		return err
	}
	if err := r.validate(f.Calls); err != nil {
		return err
	}

	vw, vh := f.Viewport[0], f.Viewport[1]
	if vw <= 0 || vh <= 0 {
		return fmt.Errorf("software: invalid viewport %dx%d", vw, vh)
	}
	ss := r.cfg.supersample()
	w, h := vw*ss, vh*ss

	r.main.resize(w, h)
	r.main.clear(f.Background)
	r.coverage.resize(w, h)
	r.coverage.clear(gl2d.Transparent)

	for i := range f.Calls {
		c := &f.Calls[i]
		r.draw(c, w, h)
		if c.Pipeline.Material == backend.MaterialText {
			// Coverage is consumed by the composite.
			r.coverage.clear(gl2d.Transparent)
		}
	}

	r.present(w, h, vw, vh)

	gl2d.Logger().Debug("software: frame executed",
		"calls", len(f.Calls),
		"viewport_w", vw,
		"viewport_h", vh,
		"supersample", ss)
	return nil
}

func (r *Renderer) validate(calls []backend.DrawCall) error {
	for i, c := range calls {
		if c.FirstIndex < 0 || c.IndexCount < 0 || c.IndexCount%3 != 0 || c.FirstIndex+c.IndexCount > len(r.indices) {
			return fmt.Errorf("%w: call %d reads indices [%d, %d) of %d",
				backend.ErrIndexOutOfRange, i, c.FirstIndex, c.FirstIndex+c.IndexCount, len(r.indices))
		}
		for _, idx := range r.indices[c.FirstIndex : c.FirstIndex+c.IndexCount] {
			if int(idx) >= len(r.verts) {
				return fmt.Errorf("%w: call %d references vertex %d of %d",
					backend.ErrIndexOutOfRange, i, idx, len(r.verts))
			}
		}
		if err := checkBlend(c.Pipeline.Blend); err != nil {
			return fmt.Errorf("call %d: %w", i, err)
		}
	}
	return nil
}

func (r *Renderer) draw(c *backend.DrawCall, w, h int) {
	dst := &r.main
	if c.Target == backend.TargetCoverage {
		dst = &r.coverage
	}
	if c.ClearTarget {
		dst.clear(gl2d.Transparent)
	}

	shade := func(x, y int, f *fragment) {
		switch c.Pipeline.Material {
		case backend.MaterialText:
			count := int(math.Round(float64(r.coverage.at(x, y)[2]) * 255))
			if count%2 == 0 {
				return
			}
		default:
			if f.u*f.u-f.v > 0 {
				return
			}
		}
		dst.set(x, y, blend(c.Pipeline.Blend, f.color, dst.at(x, y)))
	}

	idx := r.indices[c.FirstIndex : c.FirstIndex+c.IndexCount]
	for t := 0; t+2 < len(idx); t += 3 {
		var tri [3]rasterVertex
		ok := true
		for k := 0; k < 3 && ok; k++ {
			tri[k], ok = toRaster(r.verts[idx[t+k]], c.Projection, w, h)
		}
		if ok {
			rasterize(tri, w, h, shade)
		}
	}
}

// present resolves the main target and filters it down to the viewport.
func (r *Renderer) present(w, h, vw, vh int) {
	if r.samples == nil || r.samples.Rect.Dx() != w || r.samples.Rect.Dy() != h {
		r.samples = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	r.main.resolve(r.samples)

	if w == vw && h == vh {
		r.out = image.NewRGBA(r.samples.Rect)
		copy(r.out.Pix, r.samples.Pix)
		return
	}
	r.out = image.NewRGBA(image.Rect(0, 0, vw, vh))
	xdraw.BiLinear.Scale(r.out, r.out.Rect, r.samples, r.samples.Rect, xdraw.Src, nil)
}
