package backend

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gl2d"
)

// Target identifies the render target a draw call writes.
type Target uint8

const (
	// TargetMain is the presented color target.
	TargetMain Target = iota

	// TargetCoverage is the offscreen target text layers accumulate
	// glyph coverage into.
	TargetCoverage
)

// String returns a string representation of the target.
func (t Target) String() string {
	switch t {
	case TargetMain:
		return "Main"
	case TargetCoverage:
		return "Coverage"
	default:
		return "Unknown"
	}
}

// Material selects the fragment program of a draw call.
type Material uint8

const (
	// MaterialFill outputs the vertex color, discarding fragments outside
	// the implicit curve.
	MaterialFill Material = iota

	// MaterialText samples the coverage target and keeps pixels with an
	// odd accumulated count.
	MaterialText
)

// String returns a string representation of the material.
func (m Material) String() string {
	switch m {
	case MaterialFill:
		return "Fill"
	case MaterialText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Pipeline is the fixed-function state of a draw call.
type Pipeline struct {
	Material Material
	Blend    gputypes.BlendState
}

// AccumulateBlend adds the tagged coverage of each glyph triangle onto
// the coverage target.
var AccumulateBlend = gputypes.BlendState{
	Color: gputypes.BlendComponent{
		SrcFactor: gputypes.BlendFactorSrcAlpha,
		DstFactor: gputypes.BlendFactorDstAlpha,
		Operation: gputypes.BlendOperationAdd,
	},
	Alpha: gputypes.BlendComponent{
		SrcFactor: gputypes.BlendFactorSrcAlpha,
		DstFactor: gputypes.BlendFactorDstAlpha,
		Operation: gputypes.BlendOperationAdd,
	},
}

// Primitive is the primitive state shared by every pipeline.
var Primitive = gputypes.PrimitiveState{
	Topology: gputypes.PrimitiveTopologyTriangleList,
}

// ColorFormat is the format of both render targets.
const ColorFormat = gputypes.TextureFormatRGBA8Unorm

// DrawCall is one indexed draw.
type DrawCall struct {
	// Layer is the index of the DrawCmd the call was planned from.
	Layer int
	// Target is the render target written.
	Target Target
	// ClearTarget requests that Target be cleared to transparent first.
	ClearTarget bool
	Pipeline    Pipeline
	Projection  mgl32.Mat4
	// FirstIndex and IndexCount select a range of the index buffer.
	FirstIndex int
	IndexCount int
}

// textHeaderIndices is the index count of the composite quad at the start
// of every text layer.
const textHeaderIndices = 6

// Plan turns the layers of list into draw calls for cam. Fill layers map
// to one call. Text layers map to an accumulate call over the glyph
// triangles followed by a composite call over the layer's header quad.
// Layers without triangles produce no calls.
//
// Every text layer must see an empty coverage target: executors discard
// the coverage after each composite call.
func Plan(list *gl2d.DrawList, cam *gl2d.Camera) []DrawCall {
	proj := Projection(cam)
	alpha := gputypes.BlendStateAlpha()

	var calls []DrawCall
	for i, cmd := range list.Commands() {
		count := cmd.PrimitiveCount * 3
		if count == 0 {
			continue
		}
		if !cmd.IsText {
			calls = append(calls, DrawCall{
				Layer:      i,
				Target:     TargetMain,
				Pipeline:   Pipeline{Material: MaterialFill, Blend: alpha},
				Projection: proj,
				FirstIndex: cmd.IndexOffset,
				IndexCount: count,
			})
			continue
		}
		if count > textHeaderIndices {
			calls = append(calls, DrawCall{
				Layer:       i,
				Target:      TargetCoverage,
				ClearTarget: true,
				Pipeline:    Pipeline{Material: MaterialFill, Blend: AccumulateBlend},
				Projection:  proj,
				FirstIndex:  cmd.IndexOffset + textHeaderIndices,
				IndexCount:  count - textHeaderIndices,
			})
		}
		calls = append(calls, DrawCall{
			Layer:      i,
			Target:     TargetMain,
			Pipeline:   Pipeline{Material: MaterialText, Blend: alpha},
			Projection: mgl32.Ident4(),
			FirstIndex: cmd.IndexOffset,
			IndexCount: textHeaderIndices,
		})
	}

	gl2d.Logger().Debug("backend: plan built",
		"layers", len(list.Commands()),
		"calls", len(calls))
	return calls
}
