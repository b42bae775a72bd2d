// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"testing"

	"github.com/gogpu/tri"
)

// newTestGPURenderer creates a GPU renderer or skips the test when no
// adapter is available on this machine.
func newTestGPURenderer(t *testing.T) *GPURenderer {
	t.Helper()

	renderer, err := NewGPURenderer(NullDeviceHandle{})
	if err != nil {
		t.Skipf("GPU unavailable: %v", err)
	}
	t.Cleanup(renderer.Destroy)
	return renderer
}

func TestNewGPURendererNilHandle(t *testing.T) {
	if _, err := NewGPURenderer(nil); err == nil {
		t.Error("NewGPURenderer(nil) should fail")
	}
}

func TestGPURendererNoCPUAccess(t *testing.T) {
	renderer := newTestGPURenderer(t)

	err := renderer.Render(gpuOnlyTarget{}, nil)
	if !errors.Is(err, ErrNoCPUAccess) {
		t.Errorf("Render() error = %v, want ErrNoCPUAccess", err)
	}
}

func TestGPURendererCapabilities(t *testing.T) {
	renderer := newTestGPURenderer(t)
	caps := renderer.Capabilities()

	if !caps.IsGPU {
		t.Error("GPURenderer should report IsGPU")
	}
	if caps.DeviceName == "" {
		t.Error("GPURenderer should report a device name")
	}
}

// TestGPURendererMatchesSoftware renders the same triangle on both paths
// and verifies they agree within rounding tolerance. The software renderer
// is the reference the GPU output is validated against.
func TestGPURendererMatchesSoftware(t *testing.T) {
	gpuR := newTestGPURenderer(t)
	cpuR := NewSoftwareRenderer()

	const size = 64
	verts := triangleVerts()

	gpuTarget := NewPixmapTarget(size, size)
	cpuTarget := NewPixmapTarget(size, size)

	if err := gpuR.Render(gpuTarget, verts); err != nil {
		t.Fatalf("GPU Render() error = %v", err)
	}
	if err := cpuR.Render(cpuTarget, verts); err != nil {
		t.Fatalf("CPU Render() error = %v", err)
	}

	// Interpolation rounding and edge rules differ slightly between
	// implementations. Compare per-channel with a small tolerance and
	// allow a handful of disagreeing edge pixels.
	const channelTolerance = 3
	badPixels := 0
	gpuPix := gpuTarget.Pixels()
	cpuPix := cpuTarget.Pixels()
	for i := 0; i < len(gpuPix); i += 4 {
		for c := 0; c < 4; c++ {
			d := int(gpuPix[i+c]) - int(cpuPix[i+c])
			if d < 0 {
				d = -d
			}
			if d > channelTolerance {
				badPixels++
				break
			}
		}
	}
	if limit := size * 2; badPixels > limit {
		t.Errorf("%d pixels differ beyond tolerance, want at most %d", badPixels, limit)
	}
}

func TestGPURendererSetClearColor(t *testing.T) {
	renderer := newTestGPURenderer(t)
	renderer.SetClearColor(tri.RGBA{R: 0, G: 0, B: 0, A: 1})
	target := NewPixmapTarget(8, 8)

	if err := renderer.Render(target, nil); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	pix := target.Pixels()
	if pix[0] != 0 || pix[1] != 0 || pix[2] != 0 || pix[3] != 255 {
		t.Errorf("pixel 0 = (%d,%d,%d,%d), want (0,0,0,255)", pix[0], pix[1], pix[2], pix[3])
	}
}

func TestGPURendererFlush(t *testing.T) {
	renderer := newTestGPURenderer(t)

	if err := renderer.Flush(); err != nil {
		t.Errorf("Flush() error = %v, want nil", err)
	}
}
