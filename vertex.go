package tri

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// Vertex buffer binding contract. Order and locations are fixed: a host
// buffer that does not match this layout fails pipeline construction, not
// shader execution.
const (
	// PositionLocation is the shader location of the position attribute.
	PositionLocation = 0

	// ColorLocation is the shader location of the color attribute.
	ColorLocation = 1

	// positionOffset is the byte offset of position within a vertex.
	positionOffset = 0

	// colorOffset is the byte offset of color within a vertex.
	colorOffset = 12

	// VertexStride is the byte stride per vertex:
	// position (vec3<f32>) + color (vec3<f32>) = 24 bytes.
	VertexStride = 24
)

// VertexLayout returns the vertex buffer layout the render pipeline is
// built with: interleaved float32x3 position at location 0 and float32x3
// color at location 1.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: positionOffset, ShaderLocation: PositionLocation},
				{Format: gputypes.VertexFormatFloat32x3, Offset: colorOffset, ShaderLocation: ColorLocation},
			},
		},
	}
}

// EncodeVertices packs vertex records into the interleaved little-endian
// byte layout described by VertexLayout, ready for GPU upload.
func EncodeVertices(verts []VertexInput) []byte {
	buf := make([]byte, len(verts)*VertexStride)
	for i := range verts {
		writeVertex(buf[i*VertexStride:], &verts[i])
	}
	return buf
}

// writeVertex writes a single vertex into the buffer.
// Layout: position (vec3<f32>) + color (vec3<f32>) = 24 bytes.
func writeVertex(buf []byte, v *VertexInput) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.Position.X))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Position.Y))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.Position.Z))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v.Color.X))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(v.Color.Y))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(v.Color.Z))
}
