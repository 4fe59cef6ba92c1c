package gl2d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAddLine(t *testing.T) {
	tests := []struct {
		name          string
		p1, p2        mgl32.Vec2
		thickness     float32
		screenScale   float32
		wantVertices  int
		wantTriangles int
	}{
		{"round caps", mgl32.Vec2{0, 0}, mgl32.Vec2{10, 0}, 2, 1, 4 + 4, 2 + 4},
		{"one pixel has square ends", mgl32.Vec2{0, 0}, mgl32.Vec2{10, 0}, 1, 1, 4, 2},
		{"hairline", mgl32.Vec2{0, 0}, mgl32.Vec2{10, 0}, 0.5, 1, 4, 2},
		{"zoomed in", mgl32.Vec2{0, 0}, mgl32.Vec2{0, 10}, 1, 4, 4 + 7, 2 + 7},
		{"zero length", mgl32.Vec2{3, 3}, mgl32.Vec2{3, 3}, 0.5, 1, 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewDrawList()
			l.AddLine(tt.p1, tt.p2, Red, tt.thickness, tt.screenScale)
			if l.Len() != tt.wantVertices {
				t.Errorf("vertices = %d, want %d", l.Len(), tt.wantVertices)
			}
			if got := l.ActiveLayer().PrimitiveCount; got != tt.wantTriangles {
				t.Errorf("triangles = %d, want %d", got, tt.wantTriangles)
			}
			if err := l.Validate(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestAddLineBody(t *testing.T) {
	l := NewDrawList()
	l.AddLine(mgl32.Vec2{0, 0}, mgl32.Vec2{10, 0}, Red, 2, 1)

	body := []mgl32.Vec2{{0, -1}, {10, -1}, {10, 1}, {0, 1}}
	for i, want := range body {
		v := l.Vertices()[i]
		if !vecNear(mgl32.Vec2{v.Pos[0], v.Pos[1]}, want, 1e-6) {
			t.Errorf("body vertex %d = %v, want %v", i, v.Pos, want)
		}
		if v.Pos[2] != 0 || v.Pos[3] != 1 {
			t.Errorf("body vertex %d uv = (%v, %v), want (0, 1)", i, v.Pos[2], v.Pos[3])
		}
	}
}

func TestAddLineCapsSplitBetweenEnds(t *testing.T) {
	l := NewDrawList()
	l.AddLine(mgl32.Vec2{0, 0}, mgl32.Vec2{10, 0}, Red, 2, 1)

	var atP1, atP2 int
	for _, v := range l.Vertices()[4:] {
		if v.Pos[0] < 5 {
			atP1++
		} else {
			atP2++
		}
	}
	if atP1 != 2 || atP2 != 2 {
		t.Errorf("cap samples at p1/p2 = %d/%d, want 2/2", atP1, atP2)
	}
	for _, v := range l.Vertices()[4:] {
		if v.Pos[0] > 0 && v.Pos[0] < 10 {
			t.Errorf("cap sample %v lies inside the body", v.Pos)
		}
	}
}

func TestAddLineWithParamsMatchesAddLine(t *testing.T) {
	p1, p2 := mgl32.Vec2{1, 2}, mgl32.Vec2{7, -3}

	a := NewDrawList()
	a.AddLine(p1, p2, Green, 3, 2)

	b := NewDrawList()
	params := NewLineParams(2, 3)
	b.AddLineWithParams(p1, p2, Green, params)

	if params.CapSamples() != 10 {
		t.Errorf("CapSamples() = %d, want 10", params.CapSamples())
	}
	if !snapshot(a).equal(snapshot(b)) {
		t.Error("AddLineWithParams output differs from AddLine")
	}
}

func TestAddCircle(t *testing.T) {
	tests := []struct {
		name          string
		radius        float32
		thickness     float32
		screenScale   float32
		wantVertices  int
		wantTriangles int
	}{
		{"ring", 5, 1, 1, 2 + 2*6, 2 * 6},
		{"thick zoomed", 2.5, 1, 2, 2 + 2*5, 2 * 5},
		{"zero radius and thickness", 0, 0, 1, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewDrawList()
			l.AddCircle(mgl32.Vec2{50, 50}, tt.radius, Blue, tt.thickness, tt.screenScale)
			if l.Len() != tt.wantVertices {
				t.Errorf("vertices = %d, want %d", l.Len(), tt.wantVertices)
			}
			if got := l.ActiveLayer().PrimitiveCount; got != tt.wantTriangles {
				t.Errorf("triangles = %d, want %d", got, tt.wantTriangles)
			}
			if err := l.Validate(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestAddCircleRadii(t *testing.T) {
	center := mgl32.Vec2{10, 10}
	l := NewDrawList()
	l.AddCircle(center, 4, Red, 2, 1)

	for i, v := range l.Vertices() {
		d := mgl32.Vec2{v.Pos[0], v.Pos[1]}.Sub(center).Len()
		want := float32(5)
		if i%2 == 1 {
			want = 3
		}
		if d < want-1e-4 || d > want+1e-4 {
			t.Errorf("vertex %d at distance %v, want %v", i, d, want)
		}
	}
}

func TestAddSquare(t *testing.T) {
	l := NewDrawList()
	l.AddSquare(mgl32.Vec2{5, 5}, 4, Red)

	want := []mgl32.Vec2{{3, 3}, {7, 3}, {3, 7}, {7, 7}}
	if l.Len() != 4 || l.ActiveLayer().PrimitiveCount != 2 {
		t.Fatalf("got %d vertices, %d triangles", l.Len(), l.ActiveLayer().PrimitiveCount)
	}
	for i, w := range want {
		v := l.Vertices()[i]
		if v.Pos[0] != w[0] || v.Pos[1] != w[1] || v.Color != Red {
			t.Errorf("vertex %d = %+v, want %v", i, v, w)
		}
	}
}

func TestShapesReserveExactly(t *testing.T) {
	l := NewDrawList()
	l.AddLine(mgl32.Vec2{0, 0}, mgl32.Vec2{10, 0}, Red, 2, 1)
	if cap(l.vertices) != l.Len() || cap(l.indices) != len(l.indices) {
		t.Errorf("line reserved %d/%d for %d/%d", cap(l.vertices), cap(l.indices), l.Len(), len(l.indices))
	}

	l = NewDrawList()
	l.AddCircle(mgl32.Vec2{}, 5, Red, 1, 1)
	if cap(l.vertices) != l.Len() || cap(l.indices) != len(l.indices) {
		t.Errorf("circle reserved %d/%d for %d/%d", cap(l.vertices), cap(l.indices), l.Len(), len(l.indices))
	}
}

func BenchmarkAddLine(b *testing.B) {
	l := NewDrawList()
	for i := 0; i < b.N; i++ {
		if i%1000 == 0 {
			l.Clear()
		}
		l.AddLine(mgl32.Vec2{0, 0}, mgl32.Vec2{100, 50}, Red, 4, 2)
	}
}

func BenchmarkAddLineWithParams(b *testing.B) {
	l := NewDrawList()
	params := NewLineParams(2, 4)
	for i := 0; i < b.N; i++ {
		if i%1000 == 0 {
			l.Clear()
		}
		l.AddLineWithParams(mgl32.Vec2{0, 0}, mgl32.Vec2{100, 50}, Red, params)
	}
}
