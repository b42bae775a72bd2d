// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides the integration layer between the tri shader
// program and its render targets.
//
// # Core Interfaces
//
//   - DeviceHandle: GPU device access supplied by a host application
//   - RenderTarget: where rendering output goes
//   - Renderer: executes the pipeline against a target
//
// # Renderer Implementations
//
//   - SoftwareRenderer: CPU reference pipeline via the raster package
//   - GPURenderer: hardware pipeline via gogpu/wgpu
//
// Both renderers execute the same shader program and must produce
// equivalent images for the same vertex stream; the software path is the
// reference the GPU path is validated against.
//
// # Usage
//
//	target := render.NewPixmapTarget(800, 600)
//	r := render.NewSoftwareRenderer()
//	if err := r.Render(target, verts); err != nil {
//	    log.Fatal(err)
//	}
//
// GPU rendering with graceful fallback:
//
//	r, err := render.NewGPURenderer(render.NullDeviceHandle{})
//	if err != nil {
//	    r = render.NewSoftwareRenderer()
//	}
package render
