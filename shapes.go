package gl2d

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// capSegmentCount returns the number of round cap segments for a line
// whose on-screen thickness is resolution pixels. Lines one pixel wide or
// thinner get square ends.
func capSegmentCount(resolution float32) int {
	if resolution <= 1 {
		return 0
	}
	return int(math.Ceil(float64(resolution * 1.5)))
}

// capSample returns sample i of n around a circle of radius half.
func capSample(i, n int, half float32) mgl32.Vec2 {
	rad := float64(i) * 2 / float64(n) * math.Pi
	return mgl32.Vec2{float32(math.Cos(rad)), float32(math.Sin(rad))}.Mul(half)
}

// normalizeOrZero is Normalize that maps the zero vector to itself instead
// of NaN.
func normalizeOrZero(v mgl32.Vec2) mgl32.Vec2 {
	l := v.Len()
	if l == 0 {
		return mgl32.Vec2{}
	}
	return v.Mul(1 / l)
}

// cross returns the z component of the 3D cross product of a and b.
func cross(a, b mgl32.Vec2) float32 {
	return a[0]*b[1] - a[1]*b[0]
}

// LineParams holds the thickness-dependent part of a line mesh so that
// many lines of the same thickness drawn at the same zoom share one set of
// cap samples.
type LineParams struct {
	halfThickness float32
	capSamples    []mgl32.Vec2
}

// NewLineParams precomputes cap samples for lines of the given world-space
// thickness drawn at screenScale.
func NewLineParams(screenScale, thickness float32) *LineParams {
	n := capSegmentCount(thickness * screenScale)
	half := thickness * 0.5
	p := &LineParams{halfThickness: half}
	if n > 0 {
		p.capSamples = make([]mgl32.Vec2, 0, n+1)
		for i := 0; i <= n; i++ {
			p.capSamples = append(p.capSamples, capSample(i, n, half))
		}
	}
	return p
}

// CapSamples returns the number of cap vertices each line gets (zero for
// square ends).
func (p *LineParams) CapSamples() int {
	return len(p.capSamples)
}

func (p *LineParams) vertexCount() int { return 4 + len(p.capSamples) }
func (p *LineParams) indexCount() int  { return (2 + len(p.capSamples)) * 3 }

// lineMesh appends one line: the body quad first, then cap samples.
type lineMesh struct {
	l              *DrawList
	p1, p2         mgl32.Vec2
	col            Color
	v0, v1, v2, v3 uint32
	vt, vb         uint32
	horizon        mgl32.Vec2
}

func (l *DrawList) beginLine(p1, p2 mgl32.Vec2, col Color, half float32) lineMesh {
	d := normalizeOrZero(p2.Sub(p1)).Mul(half)

	m := lineMesh{l: l, p1: p1, p2: p2, col: col}
	m.v0 = l.PushVertex(fillVertex(p1[0]+d[1], p1[1]-d[0], col))
	m.v1 = l.PushVertex(fillVertex(p2[0]+d[1], p2[1]-d[0], col))
	m.v2 = l.PushVertex(fillVertex(p2[0]-d[1], p2[1]+d[0], col))
	m.v3 = l.PushVertex(fillVertex(p1[0]-d[1], p1[1]+d[0], col))
	l.PushTriangle(m.v0, m.v1, m.v2)
	l.PushTriangle(m.v0, m.v2, m.v3)

	m.vt, m.vb = m.v1, m.v3
	m.horizon = mgl32.Vec2{-d[1], d[0]}
	return m
}

// addCapSample attaches the circle sample r to the end it falls on and
// fans it against the previous vertex of that end.
func (m *lineMesh) addCapSample(r mgl32.Vec2) {
	if cross(r, m.horizon) < 0 {
		xy := m.p1.Add(r)
		v := m.l.PushVertex(fillVertex(xy[0], xy[1], m.col))
		m.l.PushTriangle(m.v0, m.vb, v)
		m.vb = v
		m.vt = m.v1
		return
	}
	xy := m.p2.Add(r)
	v := m.l.PushVertex(fillVertex(xy[0], xy[1], m.col))
	m.l.PushTriangle(m.vt, m.v2, v)
	m.vt = v
	m.vb = m.v3
}

// AddLine appends a line from p1 to p2 with the given world-space
// thickness. When the line is thicker than one pixel on screen
// (thickness*screenScale > 1) both ends get round caps whose sample count
// grows with the on-screen thickness.
//
// A zero-length line produces a degenerate quad rather than an error.
func (l *DrawList) AddLine(p1, p2 mgl32.Vec2, col Color, thickness, screenScale float32) {
	n := capSegmentCount(thickness * screenScale)
	samples := 0
	if n > 0 {
		samples = n + 1
	}
	l.Reserve((2+samples)*3, 4+samples)

	half := thickness * 0.5
	m := l.beginLine(p1, p2, col, half)
	for i := 0; i < samples; i++ {
		m.addCapSample(capSample(i, n, half))
	}
}

// AddLineWithParams appends a line using precomputed parameters.
func (l *DrawList) AddLineWithParams(p1, p2 mgl32.Vec2, col Color, params *LineParams) {
	l.Reserve(params.indexCount(), params.vertexCount())

	m := l.beginLine(p1, p2, col, params.halfThickness)
	for _, r := range params.capSamples {
		m.addCapSample(r)
	}
}

// AddCircle appends a ring of the given radius and stroke thickness.
// The number of segments grows with the radius and on-screen thickness.
func (l *DrawList) AddCircle(center mgl32.Vec2, radius float32, col Color, thickness, screenScale float32) {
	segments := int(math.Ceil(float64(radius + thickness*screenScale)))
	if segments < 0 {
		segments = 0
	}
	l.Reserve(2*segments*3, 2+2*segments)

	half := thickness * 0.5
	ro := radius + half
	ri := radius - half

	vo0 := l.PushVertex(fillVertex(center[0]+ro, center[1], col))
	vi0 := l.PushVertex(fillVertex(center[0]+ri, center[1], col))
	for i := 1; i <= segments; i++ {
		rad := float64(i) * 2 / float64(segments) * math.Pi
		dir := mgl32.Vec2{float32(math.Cos(rad)), float32(math.Sin(rad))}
		o := center.Add(dir.Mul(ro))
		in := center.Add(dir.Mul(ri))
		vo1 := l.PushVertex(fillVertex(o[0], o[1], col))
		vi1 := l.PushVertex(fillVertex(in[0], in[1], col))
		l.PushTriangle(vo0, vi0, vo1)
		l.PushTriangle(vo1, vi1, vi0)
		vo0, vi0 = vo1, vi1
	}
}

// AddSquare appends an axis-aligned filled square centered on center.
func (l *DrawList) AddSquare(center mgl32.Vec2, size float32, col Color) {
	half := size * 0.5
	l.Reserve(6, 4)
	a := l.PushVertex(fillVertex(center[0]-half, center[1]-half, col))
	b := l.PushVertex(fillVertex(center[0]+half, center[1]-half, col))
	c := l.PushVertex(fillVertex(center[0]-half, center[1]+half, col))
	d := l.PushVertex(fillVertex(center[0]+half, center[1]+half, col))
	l.PushTriangle(a, b, c)
	l.PushTriangle(b, c, d)
}
