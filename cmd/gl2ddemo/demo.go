package main

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/gl2d"
	"github.com/gogpu/gl2d/backend"
	"github.com/gogpu/gl2d/text"
)

// demo holds the state that lives across frames.
type demo struct {
	scene  *Scene
	viewer *gl2d.Viewer
	input  *gl2d.Input
	doc    *text.Document
	color  gl2d.Color
}

func newDemo(s *Scene) (*demo, error) {
	data := goregular.TTF
	if s.Font != "" {
		var err error
		if data, err = os.ReadFile(s.Font); err != nil {
			return nil, err
		}
	}
	face, err := text.ParseFace(data, s.Parser)
	if err != nil {
		return nil, fmt.Errorf("gl2ddemo: %w", err)
	}

	doc, err := text.NewDocument(face, text.NewGlyphCache(), s.Text.Content,
		text.WithGlyphScale(s.Text.Scale),
		text.WithOrigin(mgl32.Vec2(s.Text.Origin)))
	if err != nil {
		return nil, fmt.Errorf("gl2ddemo: %w", err)
	}

	in := gl2d.NewInput()
	in.SetScreenSize(s.Width, s.Height, s.PixelRatio)
	return &demo{
		scene:  s,
		viewer: gl2d.NewViewer(gl2d.WithBackground(gl2d.Hex(s.Background))),
		input:  in,
		doc:    doc,
		color:  gl2d.Hex(s.Text.Color),
	}, nil
}

// frame applies step and encodes the resulting frame into f.
func (d *demo) frame(f *backend.Frame, step Step) {
	d.input.SetPointer(step.Pointer[0], step.Pointer[1])
	d.input.AddWheel(step.Wheel[0], step.Wheel[1])
	d.input.AddPinch(step.Pinch)

	v := d.viewer
	v.BeginFrame(d.input)
	d.scene.draw(v.DrawList(), v.Camera().Scale)
	v.DrawList().NewTextLayer(d.color)
	d.doc.DrawTo(v)
	list := v.EndFrame()

	backend.BuildFrame(f, list, v.Camera(), v.Background())
}
