package software

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

// ErrUnsupportedBlend is returned for blend factors or operations the
// renderer does not evaluate.
var ErrUnsupportedBlend = errors.New("software: unsupported blend state")

func checkBlend(s gputypes.BlendState) error {
	for _, c := range []gputypes.BlendComponent{s.Color, s.Alpha} {
		for _, f := range []gputypes.BlendFactor{c.SrcFactor, c.DstFactor} {
			if f < gputypes.BlendFactorZero || f > gputypes.BlendFactorOneMinusDstAlpha {
				return fmt.Errorf("%w: factor %v", ErrUnsupportedBlend, f)
			}
		}
		if c.Operation < gputypes.BlendOperationAdd || c.Operation > gputypes.BlendOperationMax {
			return fmt.Errorf("%w: operation %v", ErrUnsupportedBlend, c.Operation)
		}
	}
	return nil
}

// blend combines src with dst under s. The state must have passed
// checkBlend.
func blend(s gputypes.BlendState, src, dst [4]float32) [4]float32 {
	var out [4]float32
	for i := 0; i < 3; i++ {
		out[i] = blendChannel(s.Color, src[i], dst[i], src, dst, i)
	}
	out[3] = blendChannel(s.Alpha, src[3], dst[3], src, dst, 3)
	return out
}

func blendChannel(c gputypes.BlendComponent, s, d float32, src, dst [4]float32, ch int) float32 {
	sf := factor(c.SrcFactor, src, dst, ch)
	df := factor(c.DstFactor, src, dst, ch)
	switch c.Operation {
	case gputypes.BlendOperationSubtract:
		return s*sf - d*df
	case gputypes.BlendOperationReverseSubtract:
		return d*df - s*sf
	case gputypes.BlendOperationMin:
		return min(s, d)
	case gputypes.BlendOperationMax:
		return max(s, d)
	default:
		return s*sf + d*df
	}
}

func factor(f gputypes.BlendFactor, src, dst [4]float32, ch int) float32 {
	switch f {
	case gputypes.BlendFactorZero:
		return 0
	case gputypes.BlendFactorOne:
		return 1
	case gputypes.BlendFactorSrc:
		return src[ch]
	case gputypes.BlendFactorOneMinusSrc:
		return 1 - src[ch]
	case gputypes.BlendFactorSrcAlpha:
		return src[3]
	case gputypes.BlendFactorOneMinusSrcAlpha:
		return 1 - src[3]
	case gputypes.BlendFactorDst:
		return dst[ch]
	case gputypes.BlendFactorOneMinusDst:
		return 1 - dst[ch]
	case gputypes.BlendFactorDstAlpha:
		return dst[3]
	case gputypes.BlendFactorOneMinusDstAlpha:
		return 1 - dst[3]
	}
	return 0
}
