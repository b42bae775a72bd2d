// Package tri implements a minimal two-stage rasterization shader and the
// host plumbing needed to run it end to end.
//
// # Overview
//
// tri exists to validate a rendering pipeline (vertex buffer layout,
// pipeline binding, render target format), not to perform any meaningful
// transform or lighting computation. The shader program is two pure
// functions: a vertex stage that promotes a 3-component position directly
// into homogeneous clip space (w fixed at 1.0, no camera or projection) and
// passes a per-vertex color through unchanged, and a fragment stage that
// emits the interpolated color as a fully opaque pixel.
//
// The same program exists in two forms that must agree:
//
//   - The WGSL source (ShaderSource), compiled and run on the GPU through
//     gogpu/wgpu.
//   - The Go reference stages (VertexStage, FragmentStage), run per pixel by
//     the CPU rasterizer in the raster package.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/tri"
//	    "github.com/gogpu/tri/raster"
//	)
//
//	pm := tri.NewPixmap(640, 480)
//	pm.Clear(tri.RGBA{R: 0.1, G: 0.2, B: 0.3, A: 1})
//
//	raster.DrawTriangles(pm, []tri.VertexInput{
//	    {Position: tri.Vec3{X: 0, Y: 0.5}, Color: tri.Vec3{X: 1}},
//	    {Position: tri.Vec3{X: -0.5, Y: -0.5}, Color: tri.Vec3{Y: 1}},
//	    {Position: tri.Vec3{X: 0.5, Y: -0.5}, Color: tri.Vec3{Z: 1}},
//	})
//
//	pm.SavePNG("triangle.png")
//
// # Architecture
//
// The repository is organized into:
//   - Root: shader stages, vertex layout contract, Pixmap, RGBA
//   - raster: CPU reference rasterizer and interpolator
//   - render: RenderTarget and Renderer abstractions (software and GPU)
//   - internal/gpu: wgpu/hal device, pipeline, and readback path
//
// The deliberate omission of a view or projection matrix is the program's
// defining behavior: clip_position.w is always 1.0, so rasterization behaves
// as an orthographic, unscaled placement of input coordinates. Do not add a
// transform.
package tri
