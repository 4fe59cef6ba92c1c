package software

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gl2d"
	"github.com/gogpu/gl2d/backend"
)

func TestBlendAlpha(t *testing.T) {
	src := [4]float32{1, 0, 0, 0.5}
	dst := [4]float32{0, 0, 1, 1}
	got := blend(gputypes.BlendStateAlpha(), src, dst)
	want := [4]float32{0.5, 0, 0.5, 1}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("channel %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBlendAccumulateCounts(t *testing.T) {
	var tg target
	tg.resize(1, 1)
	tg.clear(gl2d.Transparent)
	tag := [4]float32{0, 0, 1.0 / 255, 1}
	for n := 1; n <= 5; n++ {
		tg.set(0, 0, blend(backend.AccumulateBlend, tag, tg.at(0, 0)))
		if got := tg.pix[2]; int(got) != n {
			t.Fatalf("after %d fragments count = %d", n, got)
		}
	}
}

func TestCheckBlend(t *testing.T) {
	if err := checkBlend(gputypes.BlendStateAlpha()); err != nil {
		t.Errorf("alpha blend: %v", err)
	}
	if err := checkBlend(backend.AccumulateBlend); err != nil {
		t.Errorf("accumulate blend: %v", err)
	}
	bad := gputypes.BlendStateAlpha()
	bad.Alpha.Operation = gputypes.BlendOperationUndefined
	if err := checkBlend(bad); !errors.Is(err, ErrUnsupportedBlend) {
		t.Errorf("undefined operation: error = %v", err)
	}
}
