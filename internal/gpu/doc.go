// Package gpu provides the host-side rendering path: device acquisition,
// shader compilation, pipeline construction, and the per-frame render pass
// with CPU readback.
//
// This is an internal package used by the tri library for GPU rendering via
// the gogpu/wgpu Pure Go WebGPU implementation (zero CGO). The shader
// program itself lives in the root package; everything here is the external
// collaborator side of the pipeline: vertex buffer upload, pipeline binding,
// and render target management.
//
// # Frame path
//
//	Init -> CreateShaderModule(WGSL) -> CreateRenderPipeline(vertex layout)
//	     -> per frame: upload vertices -> render pass (clear + draw)
//	     -> CopyTextureToBuffer -> fence wait -> readback into Pixmap
//
// Rendering is headless: the color target is an offscreen RGBA8 texture
// with CopySrc usage rather than a window surface, so the output can be
// verified pixel by pixel.
//
// All failures here are pipeline-construction or submission errors on the
// host side. The shader stages themselves have no observable error states.
package gpu
