package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/gl2d"
)

func parseAll(t *testing.T) map[string]Face {
	t.Helper()
	faces := make(map[string]Face)
	for _, name := range []string{ParserSFNT, ParserGoText} {
		f, err := ParseFace(goregular.TTF, name)
		if err != nil {
			t.Fatalf("ParseFace(%s): %v", name, err)
		}
		faces[name] = f
	}
	return faces
}

func TestFaceMetrics(t *testing.T) {
	for name, f := range parseAll(t) {
		t.Run(name, func(t *testing.T) {
			if got := f.UnitsPerEm(); got != 2048 {
				t.Errorf("UnitsPerEm() = %v, want 2048", got)
			}
			gid, ok := f.GlyphIndex('A')
			if !ok {
				t.Fatal("no glyph for 'A'")
			}
			if adv := f.Advance(gid); adv < 1000 || adv > 1600 {
				t.Errorf("Advance('A') = %v font units", adv)
			}
			if _, ok := f.GlyphIndex('\U0001F600'); ok {
				t.Error("goregular should have no emoji glyph")
			}
		})
	}
}

func TestFaceParsersAgree(t *testing.T) {
	faces := parseAll(t)
	a, b := faces[ParserSFNT], faces[ParserGoText]
	for _, r := range "AOg1 ." {
		ga, _ := a.GlyphIndex(r)
		gb, _ := b.GlyphIndex(r)
		if ga != gb {
			t.Errorf("GlyphIndex(%q) = %d vs %d", r, ga, gb)
		}
		if a.Advance(ga) != b.Advance(gb) {
			t.Errorf("Advance(%q) = %v vs %v", r, a.Advance(ga), b.Advance(gb))
		}
	}
	if a.ID() == b.ID() {
		t.Error("faces share a FontID")
	}
}

func TestFaceOutline(t *testing.T) {
	for name, f := range parseAll(t) {
		t.Run(name, func(t *testing.T) {
			gid, _ := f.GlyphIndex('O')
			segs, bounds, err := f.Outline(gid)
			if err != nil {
				t.Fatal(err)
			}
			if len(segs) == 0 || segs[0].Op != gl2d.OutlineOpMoveTo {
				t.Fatalf("outline starts with %v, want MoveTo", segs)
			}

			// Outlines are Y-up: the letter sits above the baseline.
			var maxY, minY float32
			hasQuad := false
			for _, s := range segs {
				if s.Op == gl2d.OutlineOpCubeTo {
					t.Fatal("TrueType outline contains a cubic segment")
				}
				if s.Op == gl2d.OutlineOpQuadTo {
					hasQuad = true
				}
				for _, p := range s.Args {
					maxY = max(maxY, p[1])
					minY = min(minY, p[1])
				}
			}
			if !hasQuad {
				t.Error("'O' has no quadratic segments")
			}
			if maxY < 1000 || minY < -100 {
				t.Errorf("outline y range [%v, %v], want Y-up font units", minY, maxY)
			}

			// Bounds are in render space: above the baseline is negative.
			if bounds == nil {
				t.Fatal("'O' has no bounds")
			}
			if bounds.MinY > -1000 || bounds.MaxY < -1 || bounds.MaxY > 100 || bounds.MaxX <= bounds.MinX {
				t.Errorf("bounds = %+v, want render space", *bounds)
			}
		})
	}
}

func TestFaceOutlineSpace(t *testing.T) {
	for name, f := range parseAll(t) {
		t.Run(name, func(t *testing.T) {
			gid, ok := f.GlyphIndex(' ')
			if !ok {
				t.Fatal("no glyph for space")
			}
			segs, bounds, err := f.Outline(gid)
			if err != nil || len(segs) != 0 || bounds != nil {
				t.Errorf("Outline(space) = %d segments, bounds %v, err %v", len(segs), bounds, err)
			}
			if f.Advance(gid) <= 0 {
				t.Error("space has no advance")
			}
		})
	}
}

func TestParseFaceErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		parser  string
		wantErr error
	}{
		{"sfnt empty", nil, ParserSFNT, ErrEmptyFontData},
		{"gotext empty", []byte{}, ParserGoText, ErrEmptyFontData},
		{"unknown parser", goregular.TTF, "freetype", ErrUnknownParser},
		{"sfnt garbage", []byte("not a font"), ParserSFNT, nil},
		{"gotext garbage", []byte("not a font"), ParserGoText, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFace(tt.data, tt.parser)
			if err == nil || f != nil {
				t.Fatalf("ParseFace() = %v, %v, want error", f, err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseFaceDefault(t *testing.T) {
	f, err := ParseFace(goregular.TTF, "")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := f.(*sfntFace); !ok {
		t.Errorf("default parser built %T, want *sfntFace", f)
	}
}

func TestRegisterParser(t *testing.T) {
	t.Cleanup(func() {
		parsersMu.Lock()
		delete(parserRegistry, "fake")
		parsersMu.Unlock()
	})

	RegisterParser("fake", func([]byte) (Face, error) { return newFakeFace(), nil })
	f, err := ParseFace(nil, "fake")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := f.(*fakeFace); !ok {
		t.Errorf("ParseFace(fake) = %T", f)
	}

	names := Parsers()
	if len(names) != 3 || names[0] != "fake" || names[1] != ParserGoText || names[2] != ParserSFNT {
		t.Errorf("Parsers() = %v", names)
	}
}

func BenchmarkSFNTOutline(b *testing.B) {
	f, err := NewSFNTFace(goregular.TTF)
	if err != nil {
		b.Fatal(err)
	}
	gid, _ := f.GlyphIndex('g')
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = f.Outline(gid)
	}
}
