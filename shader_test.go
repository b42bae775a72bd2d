package tri

import (
	"strings"
	"testing"
)

// TestVertexStagePassthrough verifies that the vertex stage promotes the
// position to clip space without any transform and copies the color
// unchanged.
func TestVertexStagePassthrough(t *testing.T) {
	tests := []struct {
		name string
		in   VertexInput
	}{
		{"origin", VertexInput{Position: Vec3{0, 0, 0}, Color: Vec3{1, 0, 0}}},
		{"upper", VertexInput{Position: Vec3{0, 0.5, 0}, Color: Vec3{1, 0, 0}}},
		{"lower left", VertexInput{Position: Vec3{-0.5, -0.5, 0}, Color: Vec3{0, 1, 0}}},
		{"lower right", VertexInput{Position: Vec3{0.5, -0.5, 0}, Color: Vec3{0, 0, 1}}},
		{"outside clip volume", VertexInput{Position: Vec3{4, -7, 2}, Color: Vec3{0.5, 0.25, 0.125}}},
		{"color out of unit range", VertexInput{Position: Vec3{0.1, 0.2, 0.3}, Color: Vec3{2, -1, 9}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := VertexStage(tt.in)

			want := Vec4{X: tt.in.Position.X, Y: tt.in.Position.Y, Z: tt.in.Position.Z, W: 1.0}
			if out.ClipPosition != want {
				t.Errorf("ClipPosition = %+v, want %+v", out.ClipPosition, want)
			}
			if out.Color != tt.in.Color {
				t.Errorf("Color = %+v, want %+v", out.Color, tt.in.Color)
			}
		})
	}
}

// TestVertexStageHomogeneousW verifies the defining invariant of the
// program: clip_position.w is always exactly 1.0.
func TestVertexStageHomogeneousW(t *testing.T) {
	positions := []Vec3{
		{0, 0, 0}, {1, 1, 1}, {-1, -1, -1}, {100, -100, 0.5}, {0.25, 0, -3},
	}
	for _, p := range positions {
		out := VertexStage(VertexInput{Position: p})
		if out.ClipPosition.W != 1.0 {
			t.Errorf("VertexStage(%+v).ClipPosition.W = %v, want exactly 1.0", p, out.ClipPosition.W)
		}
	}
}

// TestFragmentStageOpaquePassthrough verifies the fragment stage emits the
// interpolated color with alpha hardcoded to 1.0 and no clamping.
func TestFragmentStageOpaquePassthrough(t *testing.T) {
	tests := []struct {
		name string
		in   FragmentInput
		want FragmentOutput
	}{
		{"red", FragmentInput{Color: Vec3{1, 0, 0}}, FragmentOutput{1, 0, 0, 1}},
		{"green", FragmentInput{Color: Vec3{0, 1, 0}}, FragmentOutput{0, 1, 0, 1}},
		{"mixed", FragmentInput{Color: Vec3{0.25, 0.5, 0.75}}, FragmentOutput{0.25, 0.5, 0.75, 1}},
		{"black", FragmentInput{}, FragmentOutput{0, 0, 0, 1}},
		{"out of range not clamped", FragmentInput{Color: Vec3{2, -0.5, 1.5}}, FragmentOutput{2, -0.5, 1.5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FragmentStage(tt.in); got != tt.want {
				t.Errorf("FragmentStage(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

// TestStagePurity verifies both stages are pure: invoking twice with
// identical input yields identical output.
func TestStagePurity(t *testing.T) {
	vin := VertexInput{Position: Vec3{0.3, -0.7, 0.1}, Color: Vec3{0.9, 0.8, 0.7}}
	if a, b := VertexStage(vin), VertexStage(vin); a != b {
		t.Errorf("VertexStage not idempotent: %+v != %+v", a, b)
	}

	fin := FragmentInput{Color: Vec3{0.1, 0.2, 0.3}}
	if a, b := FragmentStage(fin), FragmentStage(fin); a != b {
		t.Errorf("FragmentStage not idempotent: %+v != %+v", a, b)
	}
}

// TestShaderSourceContent verifies the embedded WGSL contains the entry
// points and interface declarations the host pipeline is built against.
func TestShaderSourceContent(t *testing.T) {
	src := ShaderSource()
	if src == "" {
		t.Fatal("shader source is empty")
	}

	required := []string{
		"@vertex",
		"@fragment",
		VertexEntryPoint,
		FragmentEntryPoint,
		"@builtin(position)",
		"@location(0) position: vec3<f32>",
		"@location(1) color: vec3<f32>",
		"vec4<f32>(in.position, 1.0)",
		"vec4<f32>(in.color, 1.0)",
	}
	for _, want := range required {
		if !strings.Contains(src, want) {
			t.Errorf("shader source missing %q", want)
		}
	}
}

// TestShaderSourceHasNoTransform guards against someone "fixing" the
// missing projection matrix. The program must not reference any matrix or
// uniform: the direct clip-space placement is its defining behavior.
func TestShaderSourceHasNoTransform(t *testing.T) {
	src := ShaderSource()
	for _, forbidden := range []string{"mat4x4", "mat3x3", "@group", "uniform"} {
		if strings.Contains(src, forbidden) {
			t.Errorf("shader source contains %q; the program must apply no transform", forbidden)
		}
	}
}
