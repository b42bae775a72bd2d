// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/gogpu/tri"
)

// ErrNoCPUAccess is returned when a renderer needs direct pixel access
// but the target does not provide it.
var ErrNoCPUAccess = errors.New("render: target does not support CPU access")

// Renderer executes the two-stage pipeline against a render target.
//
// The Renderer interface is the primary abstraction for rendering backends.
// Different implementations provide CPU or GPU execution:
//
//   - SoftwareRenderer: CPU reference pipeline using the raster package
//   - GPURenderer: hardware pipeline using gogpu/wgpu
//
// Renderers are stateless between Render calls with respect to the vertex
// stream, allowing the same renderer to be reused with different targets.
//
// Thread Safety: Renderers are NOT thread-safe. Each renderer should be
// used from a single goroutine, or external synchronization must be used.
type Renderer interface {
	// Render clears the target to the renderer's clear color and draws
	// the vertex stream as a triangle list.
	//
	// Vertices are consumed in groups of three; a trailing group smaller
	// than three is ignored. An empty stream produces a cleared target.
	//
	// The vertex slice is not modified and can be rendered multiple times
	// to different targets.
	Render(target RenderTarget, verts []tri.VertexInput) error

	// Flush ensures all pending rendering operations are complete.
	//
	// For CPU renderers this is a no-op as operations are synchronous.
	// For GPU renderers this may submit command buffers and wait for
	// completion.
	Flush() error
}

// RendererCapabilities describes the features of a renderer.
type RendererCapabilities struct {
	// IsGPU indicates if this is a GPU-accelerated renderer.
	IsGPU bool

	// Parallel indicates if the renderer shades rows or fragments
	// concurrently.
	Parallel bool

	// MaxTargetSize is the maximum target dimension (0 = unlimited).
	MaxTargetSize int

	// DeviceName is the name of the executing device, if known.
	DeviceName string
}

// CapableRenderer is an optional interface for renderers that can
// report their capabilities.
type CapableRenderer interface {
	Renderer

	// Capabilities returns the renderer's capabilities.
	Capabilities() RendererCapabilities
}
