package backend

import (
	"fmt"

	"github.com/gogpu/naga"
)

// FillShaderWGSL renders fill and glyph triangles. Fragments outside the
// implicit curve u*u - v <= 0 are discarded; fill vertices carry
// (u, v) = (0, 1) and always pass.
const FillShaderWGSL = `
struct Uniforms {
    projection: mat4x4<f32>,
}

@group(0) @binding(0) var<uniform> uniforms: Uniforms;

struct VertexInput {
    @location(0) pos: vec4<f32>,
    @location(1) color: vec4<f32>,
}

struct VertexOutput {
    @builtin(position) clip: vec4<f32>,
    @location(0) uv: vec2<f32>,
    @location(1) color: vec4<f32>,
}

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.clip = uniforms.projection * vec4<f32>(in.pos.xy, 0.0, 1.0);
    out.uv = in.pos.zw;
    out.color = in.color;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    if in.uv.x * in.uv.x - in.uv.y > 0.0 {
        discard;
    }
    return in.color;
}
`

// TextShaderWGSL composites a coverage target through a text layer's
// header quad: pixels whose accumulated count is odd take the quad color.
const TextShaderWGSL = `
struct Uniforms {
    projection: mat4x4<f32>,
}

@group(0) @binding(0) var<uniform> uniforms: Uniforms;
@group(0) @binding(1) var coverage: texture_2d<f32>;

struct VertexInput {
    @location(0) pos: vec4<f32>,
    @location(1) color: vec4<f32>,
}

struct VertexOutput {
    @builtin(position) clip: vec4<f32>,
    @location(0) color: vec4<f32>,
}

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.clip = uniforms.projection * vec4<f32>(in.pos.xy, 0.0, 1.0);
    out.color = in.color;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let texel = textureLoad(coverage, vec2<i32>(in.clip.xy), 0);
    let count = u32(round(texel.b * 255.0));
    if (count & 1u) == 0u {
        discard;
    }
    return in.color;
}
`

// ShaderSource returns the WGSL source for m.
func ShaderSource(m Material) string {
	if m == MaterialText {
		return TextShaderWGSL
	}
	return FillShaderWGSL
}

// Shaders holds compiled SPIR-V per material.
type Shaders struct {
	Fill []uint32
	Text []uint32
}

// CompileShaders compiles both materials to SPIR-V.
func CompileShaders() (*Shaders, error) {
	fill, err := compileSPIRV(FillShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("backend: fill shader: %w", err)
	}
	text, err := compileSPIRV(TextShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("backend: text shader: %w", err)
	}
	return &Shaders{Fill: fill, Text: text}, nil
}

// compileSPIRV compiles WGSL source to little-endian SPIR-V words.
func compileSPIRV(src string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(src)
	if err != nil {
		return nil, err
	}
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
