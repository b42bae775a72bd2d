// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// This interface is the integration point between tri and GPU frameworks
// like gogpu. The host application implements DeviceHandle and passes it
// to tri renderers, allowing tri to draw with the shared GPU device.
//
// Key principle: tri RECEIVES the device from the host, it does NOT create
// one on its own when a handle is supplied. This enables:
//   - Shared GPU resources between tri and the host application
//   - Zero device creation overhead in tri
//   - Consistent resource management across the stack
//
// When no host exists (headless tools, tests), pass NullDeviceHandle and
// the GPU renderer opens its own adapter instead.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// tri-specific name for the interface while maintaining full compatibility
// with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used when the renderer should acquire its own device, or for CPU-only
// rendering where no GPU is involved at all.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns unknown adapter metadata for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
