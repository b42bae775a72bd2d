// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/tri"
	"github.com/gogpu/tri/internal/gpu"
	"github.com/gogpu/wgpu/hal"
)

// ErrGPUUnavailable is returned by NewGPURenderer when no usable GPU
// backend or adapter exists. Callers typically fall back to
// NewSoftwareRenderer.
var ErrGPUUnavailable = errors.New("render: GPU unavailable")

// GPURenderer executes the pipeline on a GPU through gogpu/wgpu.
//
// The renderer draws into an offscreen texture and reads the result back
// into the target's pixel buffer, so it works with the same PixmapTarget
// as the software renderer.
//
// With a NullDeviceHandle the renderer enumerates adapters and opens its
// own device. With a host-supplied DeviceHandle whose Device() and Queue()
// wrap hal types, it shares the host's device and never destroys it.
//
// Example with graceful fallback:
//
//	var renderer render.Renderer
//	renderer, err := render.NewGPURenderer(render.NullDeviceHandle{})
//	if errors.Is(err, render.ErrGPUUnavailable) {
//	    renderer = render.NewSoftwareRenderer()
//	}
type GPURenderer struct {
	handle DeviceHandle
	inner  *gpu.Renderer

	// scratch receives the GPU readback before the row copy into
	// padded targets.
	scratch *tri.Pixmap
}

// NewGPURenderer creates a GPU renderer.
//
// The handle decides device ownership. NullDeviceHandle (or any handle
// returning a nil device) makes the renderer open its own adapter; a
// handle carrying a live device shares it with the host.
//
// Returns an error wrapping ErrGPUUnavailable if no backend or adapter
// can be used.
func NewGPURenderer(handle DeviceHandle) (*GPURenderer, error) {
	if handle == nil {
		return nil, errors.New("render: nil device handle")
	}

	inner := gpu.NewRenderer()

	if dev := handle.Device(); dev != nil {
		halDev, ok := dev.(hal.Device)
		if !ok {
			return nil, fmt.Errorf("render: device handle does not wrap a hal device: %w", ErrGPUUnavailable)
		}
		halQueue, ok := handle.Queue().(hal.Queue)
		if !ok {
			return nil, fmt.Errorf("render: device handle does not wrap a hal queue: %w", ErrGPUUnavailable)
		}
		if err := inner.InitWithDevice(halDev, halQueue); err != nil {
			return nil, fmt.Errorf("render: shared device init: %w", err)
		}
	} else {
		if err := inner.Init(); err != nil {
			return nil, fmt.Errorf("render: %w: %w", ErrGPUUnavailable, err)
		}
	}

	return &GPURenderer{handle: handle, inner: inner}, nil
}

// SetClearColor changes the color the target is cleared to before drawing.
func (r *GPURenderer) SetClearColor(c tri.RGBA) {
	r.inner.SetClearColor(c)
}

// Render clears the target and draws the vertex stream as a triangle list.
//
// The frame is rendered to an offscreen texture, submitted, waited on, and
// read back into the target. Returns ErrNoCPUAccess if the target has no
// Pixels() support.
func (r *GPURenderer) Render(target RenderTarget, verts []tri.VertexInput) error {
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
		pm := tri.NewPixmapFromData(width, height, pixels)
		return r.inner.RenderFrame(pm, verts)
	}

	if r.scratch == nil || r.scratch.Width() != width || r.scratch.Height() != height {
		r.scratch = tri.NewPixmap(width, height)
	}
	if err := r.inner.RenderFrame(r.scratch, verts); err != nil {
		return err
	}

	src := r.scratch.Data()
	rowBytes := width * 4
	for y := 0; y < height; y++ {
		copy(pixels[y*stride:y*stride+rowBytes], src[y*rowBytes:(y+1)*rowBytes])
	}
	return nil
}

// Flush ensures all GPU commands are complete.
//
// RenderFrame already submits and waits on a fence per frame, so there is
// nothing left pending by the time Render returns.
func (r *GPURenderer) Flush() error {
	return nil
}

// Capabilities returns the renderer's capabilities.
func (r *GPURenderer) Capabilities() RendererCapabilities {
	return RendererCapabilities{
		IsGPU:         true,
		Parallel:      true,
		MaxTargetSize: 8192, // Typical guaranteed texture limit
		DeviceName:    r.inner.AdapterName(),
	}
}

// DeviceHandle returns the handle the renderer was created with.
func (r *GPURenderer) DeviceHandle() DeviceHandle {
	return r.handle
}

// Destroy releases GPU resources. A host-supplied device is left alive.
func (r *GPURenderer) Destroy() {
	r.inner.Destroy()
}

// Ensure GPURenderer implements Renderer and CapableRenderer.
var (
	_ Renderer        = (*GPURenderer)(nil)
	_ CapableRenderer = (*GPURenderer)(nil)
)
