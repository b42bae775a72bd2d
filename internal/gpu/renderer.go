package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/gogpu/tri"
)

// Renderer errors.
var (
	// ErrNoBackend is returned when no wgpu hal backend is compiled in or
	// available on this platform.
	ErrNoBackend = errors.New("gpu: no hal backend available")

	// ErrNoAdapter is returned when the instance exposes no GPU adapters.
	ErrNoAdapter = errors.New("gpu: no adapters found")

	// ErrNotInitialized is returned when RenderFrame is called before Init.
	ErrNotInitialized = errors.New("gpu: renderer not initialized")
)

// Renderer owns the GPU resources for the passthrough pipeline: device,
// queue, compiled shader, render pipeline, and the offscreen color target.
//
// Renderer is NOT safe for concurrent use. Init must be called before
// RenderFrame, and Destroy releases all resources.
type Renderer struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	shader     hal.ShaderModule
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline

	// colorTex is the offscreen render target (1x sample, RGBA8Unorm,
	// RenderAttachment|CopySrc for readback).
	colorTex  hal.Texture
	colorView hal.TextureView

	width, height uint32

	// clearColor is the render pass load clear value.
	clearColor gputypes.Color

	// externalDevice is true when the device was injected by the host;
	// injected devices are not destroyed on Destroy.
	externalDevice bool

	adapterName string

	initialized bool
}

// NewRenderer creates a renderer with the default clear color. The renderer
// must be initialized with Init (or InitWithDevice) before use.
func NewRenderer() *Renderer {
	return &Renderer{
		clearColor: gputypes.Color{
			R: tri.ClearColor.R,
			G: tri.ClearColor.G,
			B: tri.ClearColor.B,
			A: tri.ClearColor.A,
		},
	}
}

// SetClearColor overrides the render pass clear color.
func (r *Renderer) SetClearColor(c tri.RGBA) {
	r.clearColor = gputypes.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Init acquires a device and builds the render pipeline. Adapter selection
// prefers discrete over integrated GPUs, falling back to whatever the
// instance exposes first.
func (r *Renderer) Init() error {
	if r.initialized {
		return nil
	}

	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return ErrNoBackend
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	r.instance = instance

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return ErrNoAdapter
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return fmt.Errorf("open device: %w", err)
	}
	r.device = openDev.Device
	r.queue = openDev.Queue

	if err := r.createPipeline(); err != nil {
		r.device.Destroy()
		r.device = nil
		r.queue = nil
		return fmt.Errorf("create pipeline: %w", err)
	}

	r.initialized = true
	r.adapterName = selected.Info.Name
	slogger().Info("gpu: renderer initialized", "adapter", selected.Info.Name)
	return nil
}

// AdapterName returns the name of the selected adapter, or "shared device"
// when the device was injected by the host. Empty before Init.
func (r *Renderer) AdapterName() string {
	return r.adapterName
}

// InitWithDevice builds the pipeline on a device supplied by the host
// (shared device integration). The device and queue are not destroyed when
// the renderer is destroyed.
func (r *Renderer) InitWithDevice(device hal.Device, queue hal.Queue) error {
	if r.initialized {
		return nil
	}
	if device == nil || queue == nil {
		return ErrNoAdapter
	}
	r.device = device
	r.queue = queue
	r.externalDevice = true

	if err := r.createPipeline(); err != nil {
		r.device = nil
		r.queue = nil
		r.externalDevice = false
		return fmt.Errorf("create pipeline: %w", err)
	}

	r.initialized = true
	r.adapterName = "shared device"
	slogger().Info("gpu: renderer initialized on shared device")
	return nil
}

// ensureTexture creates or recreates the offscreen color target if the
// requested dimensions differ from the current size.
func (r *Renderer) ensureTexture(width, height uint32) error {
	if r.width == width && r.height == height && r.colorTex != nil {
		return nil
	}

	r.destroyTexture()

	colorTex, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label: "tri_color",
		Size: hal.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("create color texture: %w", err)
	}
	r.colorTex = colorTex

	colorView, err := r.device.CreateTextureView(colorTex, &hal.TextureViewDescriptor{
		Label: "tri_color_view",
	})
	if err != nil {
		r.destroyTexture()
		return fmt.Errorf("create color texture view: %w", err)
	}
	r.colorView = colorView

	r.width = width
	r.height = height
	return nil
}

// Destroy releases all GPU resources. Safe to call multiple times. An
// externally supplied device is left alive.
func (r *Renderer) Destroy() {
	r.destroyTexture()
	r.destroyPipeline()
	if r.device != nil && !r.externalDevice {
		r.device.Destroy()
	}
	r.device = nil
	r.queue = nil
	r.instance = nil
	r.initialized = false
}

// destroyTexture releases the color target and view, resetting dimensions.
func (r *Renderer) destroyTexture() {
	if r.colorView != nil {
		r.device.DestroyTextureView(r.colorView)
		r.colorView = nil
	}
	if r.colorTex != nil {
		r.device.DestroyTexture(r.colorTex)
		r.colorTex = nil
	}
	r.width = 0
	r.height = 0
}

// destroyPipeline releases pipeline resources in reverse creation order.
func (r *Renderer) destroyPipeline() {
	if r.device == nil {
		return
	}
	if r.pipeline != nil {
		r.device.DestroyRenderPipeline(r.pipeline)
		r.pipeline = nil
	}
	if r.pipeLayout != nil {
		r.device.DestroyPipelineLayout(r.pipeLayout)
		r.pipeLayout = nil
	}
	if r.shader != nil {
		r.device.DestroyShaderModule(r.shader)
		r.shader = nil
	}
}
