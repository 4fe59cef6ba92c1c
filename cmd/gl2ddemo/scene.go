package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/gl2d"
	"github.com/gogpu/gl2d/text"
)

// maxSceneSize bounds scene files read from disk.
const maxSceneSize = 1 << 20

// Scene describes what the demo draws and how the camera moves.
type Scene struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	PixelRatio float32 `yaml:"pixel_ratio"`
	Background string  `yaml:"background"`

	// Font is a TrueType/OpenType file. Empty selects Go Regular.
	Font   string `yaml:"font"`
	Parser string `yaml:"parser"`

	Text   TextBlock `yaml:"text"`
	Shapes []Shape   `yaml:"shapes"`
	Steps  []Step    `yaml:"steps"`
}

// TextBlock is the document drawn in its own text layer.
type TextBlock struct {
	Content string     `yaml:"content"`
	Color   string     `yaml:"color"`
	Scale   float32    `yaml:"scale"`
	Origin  [2]float32 `yaml:"origin"`
}

// Shape is a line, circle or square drawn in the fill layer.
type Shape struct {
	Kind      string     `yaml:"kind"`
	Color     string     `yaml:"color"`
	From      [2]float32 `yaml:"from"`
	To        [2]float32 `yaml:"to"`
	Center    [2]float32 `yaml:"center"`
	Radius    float32    `yaml:"radius"`
	Size      float32    `yaml:"size"`
	Thickness float32    `yaml:"thickness"`
}

// Step is the input applied before one frame.
type Step struct {
	Pointer [2]float32 `yaml:"pointer"`
	Wheel   [2]float32 `yaml:"wheel"`
	Pinch   float32    `yaml:"pinch"`
}

// Shape kinds.
const (
	ShapeLine   = "line"
	ShapeCircle = "circle"
	ShapeSquare = "square"
)

var errInvalidScene = errors.New("gl2ddemo: invalid scene")

// DefaultScene returns the scene used when no file is given.
func DefaultScene() Scene {
	return Scene{
		Width:      640,
		Height:     360,
		PixelRatio: 1,
		Background: "#f4f1ea",
		Parser:     text.DefaultParser,
		Text: TextBlock{
			Content: "Quadratic curves,\nno flattening.",
			Color:   "#1d1d1f",
			Scale:   0.03,
			Origin:  [2]float32{40, 40},
		},
		Shapes: []Shape{
			{Kind: ShapeLine, Color: "#d94f30", From: [2]float32{40, 200}, To: [2]float32{600, 200}, Thickness: 6},
			{Kind: ShapeCircle, Color: "#3066be", Center: [2]float32{520, 280}, Radius: 40, Thickness: 8},
			{Kind: ShapeSquare, Color: "#2a9d8f", Center: [2]float32{100, 290}, Size: 60},
		},
		Steps: []Step{{}},
	}
}

// LoadScene reads a YAML scene. Unset fields keep their DefaultScene
// values.
func LoadScene(path string) (Scene, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Scene{}, err
	}
	if info.Size() > maxSceneSize {
		return Scene{}, fmt.Errorf("%w: %s is larger than %d bytes", errInvalidScene, path, maxSceneSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, err
	}
	return ParseScene(data)
}

// ParseScene decodes a YAML scene over DefaultScene and validates it.
func ParseScene(data []byte) (Scene, error) {
	s := DefaultScene()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("gl2ddemo: parse scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// Validate checks sizes and shape kinds.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", errInvalidScene, s.Width, s.Height)
	}
	if s.PixelRatio <= 0 {
		return fmt.Errorf("%w: pixel ratio %v", errInvalidScene, s.PixelRatio)
	}
	for i, sh := range s.Shapes {
		switch sh.Kind {
		case ShapeLine, ShapeCircle, ShapeSquare:
		default:
			return fmt.Errorf("%w: shape %d has unknown kind %q", errInvalidScene, i, sh.Kind)
		}
	}
	if len(s.Steps) == 0 {
		s.Steps = []Step{{}}
	}
	return nil
}

// draw appends the scene's shapes to list at the current camera scale.
func (s *Scene) draw(list *gl2d.DrawList, screenScale float32) {
	for _, sh := range s.Shapes {
		col := gl2d.Hex(sh.Color)
		switch sh.Kind {
		case ShapeLine:
			list.AddLine(mgl32.Vec2(sh.From), mgl32.Vec2(sh.To), col, sh.Thickness, screenScale)
		case ShapeCircle:
			list.AddCircle(mgl32.Vec2(sh.Center), sh.Radius, col, sh.Thickness, screenScale)
		case ShapeSquare:
			list.AddSquare(mgl32.Vec2(sh.Center), sh.Size, col)
		}
	}
}
