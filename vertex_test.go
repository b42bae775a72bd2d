package tri

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
)

// TestVertexLayout verifies the binding contract: interleaved float32x3
// position at location 0 and float32x3 color at location 1, stride 24.
func TestVertexLayout(t *testing.T) {
	layouts := VertexLayout()
	if len(layouts) != 1 {
		t.Fatalf("VertexLayout() returned %d buffers, want 1", len(layouts))
	}

	l := layouts[0]
	if l.ArrayStride != VertexStride {
		t.Errorf("ArrayStride = %d, want %d", l.ArrayStride, VertexStride)
	}
	if l.StepMode != gputypes.VertexStepModeVertex {
		t.Errorf("StepMode = %v, want per-vertex", l.StepMode)
	}
	if len(l.Attributes) != 2 {
		t.Fatalf("got %d attributes, want 2", len(l.Attributes))
	}

	pos := l.Attributes[0]
	if pos.ShaderLocation != PositionLocation || pos.Offset != 0 || pos.Format != gputypes.VertexFormatFloat32x3 {
		t.Errorf("position attribute = %+v, want float32x3 at location 0 offset 0", pos)
	}

	col := l.Attributes[1]
	if col.ShaderLocation != ColorLocation || col.Offset != 12 || col.Format != gputypes.VertexFormatFloat32x3 {
		t.Errorf("color attribute = %+v, want float32x3 at location 1 offset 12", col)
	}
}

// TestEncodeVertices verifies byte-exact little-endian packing.
func TestEncodeVertices(t *testing.T) {
	verts := []VertexInput{
		{Position: Vec3{0, 0.5, 0}, Color: Vec3{1, 0, 0}},
		{Position: Vec3{-0.5, -0.5, 0}, Color: Vec3{0, 1, 0}},
	}

	buf := EncodeVertices(verts)
	if len(buf) != len(verts)*VertexStride {
		t.Fatalf("len = %d, want %d", len(buf), len(verts)*VertexStride)
	}

	readF32 := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off : off+4]))
	}

	for i, v := range verts {
		base := i * VertexStride
		got := [6]float32{
			readF32(base), readF32(base + 4), readF32(base + 8),
			readF32(base + 12), readF32(base + 16), readF32(base + 20),
		}
		want := [6]float32{v.Position.X, v.Position.Y, v.Position.Z, v.Color.X, v.Color.Y, v.Color.Z}
		if got != want {
			t.Errorf("vertex %d = %v, want %v", i, got, want)
		}
	}
}

// TestEncodeVerticesEmpty verifies encoding no vertices yields no bytes.
func TestEncodeVerticesEmpty(t *testing.T) {
	if buf := EncodeVertices(nil); len(buf) != 0 {
		t.Errorf("EncodeVertices(nil) returned %d bytes, want 0", len(buf))
	}
}
