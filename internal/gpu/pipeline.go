package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/tri"
)

// createPipeline compiles the passthrough shader and creates the render
// pipeline. The pipeline has no bind groups: the program reads nothing but
// the vertex stream, so the layout is empty.
//
// Pipeline state is fixed: triangle-list topology,
// no culling, a single RGBA8 color target, no blending, no depth/stencil,
// no multisampling. The vertex buffer layout is the root package's binding
// contract; a mismatched host buffer fails here, at construction, never at
// shader runtime.
func (r *Renderer) createPipeline() error {
	shader, err := r.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "tri_shader",
		Source: hal.ShaderSource{WGSL: tri.ShaderSource()},
	})
	if err != nil {
		return fmt.Errorf("compile shader: %w", err)
	}
	r.shader = shader

	pipeLayout, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "tri_pipe_layout",
		BindGroupLayouts: nil,
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	r.pipeLayout = pipeLayout

	pipeline, err := r.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "tri_pipeline",
		Layout: r.pipeLayout,
		Vertex: hal.VertexState{
			Module:     r.shader,
			EntryPoint: tri.VertexEntryPoint,
			Buffers:    tri.VertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     r.shader,
			EntryPoint: tri.FragmentEntryPoint,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    gputypes.TextureFormatRGBA8Unorm,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
	})
	if err != nil {
		return fmt.Errorf("create render pipeline: %w", err)
	}
	r.pipeline = pipeline

	return nil
}
