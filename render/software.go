// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/gogpu/tri"
	"github.com/gogpu/tri/raster"
)

// SoftwareRenderer is a CPU renderer using the raster package.
//
// It executes the same vertex and fragment stages as the GPU path, one
// fragment at a time, and is the reference the GPU output is validated
// against. It has no GPU dependencies and works everywhere.
//
// Performance characteristics:
//   - Row-parallel above a size threshold (see raster)
//   - O(bbox) work per triangle
//   - Zero-copy when the target has no row padding
//
// Example:
//
//	renderer := render.NewSoftwareRenderer()
//	target := render.NewPixmapTarget(800, 600)
//	renderer.Render(target, verts)
//	img := target.Image()
type SoftwareRenderer struct {
	clearColor tri.RGBA

	// scratch is reused for targets with row padding.
	scratch *tri.Pixmap
}

// NewSoftwareRenderer creates a new CPU renderer with the default
// clear color.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{clearColor: tri.ClearColor}
}

// SetClearColor changes the color the target is cleared to before drawing.
func (r *SoftwareRenderer) SetClearColor(c tri.RGBA) {
	r.clearColor = c
}

// ClearColor returns the current clear color.
func (r *SoftwareRenderer) ClearColor() tri.RGBA {
	return r.clearColor
}

// Render clears the target and draws the vertex stream as a triangle list.
//
// Returns ErrNoCPUAccess if the target has no Pixels() support.
func (r *SoftwareRenderer) Render(target RenderTarget, verts []tri.VertexInput) error {
	if target == nil {
		return errors.New("render: nil target")
	}

	pixels := target.Pixels()
	if pixels == nil {
		return ErrNoCPUAccess
	}

	width := target.Width()
	height := target.Height()
	stride := target.Stride()

	if stride == width*4 {
		// Draw directly into the target's buffer.
		pm := tri.NewPixmapFromData(width, height, pixels)
		pm.Clear(r.clearColor)
		raster.DrawTriangles(pm, verts)
		return nil
	}

	// Padded rows: draw into a scratch pixmap and copy row by row.
	if r.scratch == nil || r.scratch.Width() != width || r.scratch.Height() != height {
		r.scratch = tri.NewPixmap(width, height)
	}
	r.scratch.Clear(r.clearColor)
	raster.DrawTriangles(r.scratch, verts)

	src := r.scratch.Data()
	rowBytes := width * 4
	for y := 0; y < height; y++ {
		copy(pixels[y*stride:y*stride+rowBytes], src[y*rowBytes:(y+1)*rowBytes])
	}
	return nil
}

// Flush ensures all rendering is complete.
// For the software renderer this is a no-op as operations are synchronous.
func (r *SoftwareRenderer) Flush() error {
	return nil
}

// Capabilities returns the renderer's capabilities.
func (r *SoftwareRenderer) Capabilities() RendererCapabilities {
	return RendererCapabilities{
		IsGPU:         false,
		Parallel:      true,
		MaxTargetSize: 0, // No limit
		DeviceName:    "cpu",
	}
}

// Ensure SoftwareRenderer implements Renderer and CapableRenderer.
var (
	_ Renderer        = (*SoftwareRenderer)(nil)
	_ CapableRenderer = (*SoftwareRenderer)(nil)
)
