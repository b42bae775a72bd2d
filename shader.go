package tri

import (
	_ "embed"
)

// Embedded WGSL shader source. This is the single source of truth for the
// GPU form of the program; the Go stages below are its CPU reference form
// and the two must stay in lockstep.
//
//go:embed shader.wgsl
var shaderSource string

// Shader entry point names, shared by the GPU pipeline and any tooling that
// inspects the module.
const (
	// VertexEntryPoint is the vertex stage entry point in ShaderSource.
	VertexEntryPoint = "vs_main"

	// FragmentEntryPoint is the fragment stage entry point in ShaderSource.
	FragmentEntryPoint = "fs_main"
)

// ShaderSource returns the WGSL source for the shader program.
func ShaderSource() string { return shaderSource }

// Vec3 is a 3-component float32 vector.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a 4-component float32 vector. W carries the homogeneous
// coordinate when used as a clip-space position.
type Vec4 struct {
	X, Y, Z, W float32
}

// VertexInput is one vertex record as supplied by the host vertex buffer.
// Position is in object/local space; Color is intended to be in unit range
// but is not clamped anywhere in the pipeline.
type VertexInput struct {
	Position Vec3
	Color    Vec3
}

// VertexOutput is produced fresh per vertex by VertexStage and consumed
// immediately by the interpolation step; it is never persisted.
type VertexOutput struct {
	// ClipPosition is the homogeneous clip-space coordinate. W is always
	// 1.0 in this program: no perspective divide applies, so rasterization
	// behaves as an orthographic placement of the input coordinates.
	ClipPosition Vec4

	// Color is copied unchanged from the input.
	Color Vec3
}

// FragmentInput is the interpolated record the rasterizer synthesizes per
// covered pixel from the VertexOutputs of a primitive. With w fixed at 1.0,
// perspective-correct and linear interpolation coincide.
type FragmentInput struct {
	Color Vec3
}

// FragmentOutput is one 4-component color written to the bound color
// target. Components are not clamped; out-of-range values are resolved by
// the target format's write semantics.
type FragmentOutput struct {
	R, G, B, A float32
}

// VertexStage maps one vertex record to its clip-space output.
//
// The position is promoted to homogeneous coordinates with no transform and
// the color passes through unchanged. The function is stateless and total:
// no validation, no clamping, no error conditions. Values outside [-1, 1]
// in x/y land outside the viewport and are clipped by the rasterizer.
func VertexStage(in VertexInput) VertexOutput {
	return VertexOutput{
		ClipPosition: Vec4{X: in.Position.X, Y: in.Position.Y, Z: in.Position.Z, W: 1.0},
		Color:        in.Color,
	}
}

// FragmentStage maps one interpolated record to the final pixel color:
// the interpolated color with a hardcoded fully opaque alpha. Stateless,
// total, pure.
func FragmentStage(in FragmentInput) FragmentOutput {
	return FragmentOutput{R: in.Color.X, G: in.Color.Y, B: in.Color.Z, A: 1.0}
}
