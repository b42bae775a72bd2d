package gpu

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/tri"
)

// gpuTimeout bounds the completion poll after submission.
const gpuTimeout = 5 * time.Second

// RenderFrame draws the vertex stream into pm: upload, clear, draw,
// readback. The target texture is sized to the pixmap and reused across
// frames of the same size.
//
// Vertices are consumed as a triangle list. An empty stream still clears
// the target and presents a cleared frame.
func (r *Renderer) RenderFrame(pm *tri.Pixmap, verts []tri.VertexInput) error {
	if !r.initialized {
		return ErrNotInitialized
	}

	//nolint:gosec // pixmap dimensions are non-negative and fit uint32
	w, h := uint32(pm.Width()), uint32(pm.Height())
	if err := r.ensureTexture(w, h); err != nil {
		return err
	}

	var vertBuf hal.Buffer
	vertCount := uint32(len(verts) - len(verts)%3) //nolint:gosec // bounded by slice length
	if vertCount > 0 {
		data := tri.EncodeVertices(verts[:vertCount])
		buf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
			Label: "tri_vertices",
			Size:  uint64(len(data)),
			Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("create vertex buffer: %w", err)
		}
		defer r.device.DestroyBuffer(buf)
		if err := r.queue.WriteBuffer(buf, 0, data); err != nil {
			return fmt.Errorf("write vertex buffer: %w", err)
		}
		vertBuf = buf
	}

	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "tri_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("tri_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "tri_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       r.colorView,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: r.clearColor,
		}},
	})
	if vertBuf != nil {
		rp.SetPipeline(r.pipeline)
		rp.SetVertexBuffer(0, vertBuf, 0)
		rp.Draw(vertCount, 1, 0, 0)
	}
	rp.End()

	// The color target leaves the pass in attachment layout; the copy
	// below needs it as a transfer source. No-op on backends without
	// explicit layouts.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: r.colorTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})

	// WebGPU (and DX12) require BytesPerRow aligned to 256 bytes.
	bytesPerRow := w * 4
	const copyPitchAlignment = 256
	alignedBytesPerRow := (bytesPerRow + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
	stagingSize := uint64(alignedBytesPerRow) * uint64(h)

	stagingBuf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "tri_staging",
		Size:  stagingSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		encoder.DiscardEncoding()
		return fmt.Errorf("create staging buffer: %w", err)
	}
	defer r.device.DestroyBuffer(stagingBuf)

	encoder.CopyTextureToBuffer(r.colorTex, stagingBuf, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: r.colorTex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})

	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: r.colorTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	submission, err := r.queue.Submit([]hal.CommandBuffer{cmdBuf})
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}

	// Submit manages its own fencing; poll the queue until this
	// submission completes, bounded by gpuTimeout.
	deadline := time.Now().Add(gpuTimeout)
	for r.queue.PollCompleted() < submission {
		if time.Now().After(deadline) {
			return fmt.Errorf("gpu: submission %d not complete after %v", submission, gpuTimeout)
		}
		time.Sleep(100 * time.Microsecond)
	}

	mapping, err := r.device.MapBuffer(stagingBuf, 0, stagingSize)
	if err != nil {
		return fmt.Errorf("map staging buffer: %w", err)
	}
	readback := unsafe.Slice((*byte)(mapping.Ptr), stagingSize)

	// Strip per-row padding. The target format is RGBA8, matching the
	// pixmap byte order directly.
	dst := pm.Data()
	if alignedBytesPerRow == bytesPerRow {
		copy(dst, readback[:len(dst)])
	} else {
		for row := uint32(0); row < h; row++ {
			srcOff := int(row) * int(alignedBytesPerRow)
			dstOff := int(row) * int(bytesPerRow)
			copy(dst[dstOff:dstOff+int(bytesPerRow)], readback[srcOff:srcOff+int(bytesPerRow)])
		}
	}

	if err := r.device.UnmapBuffer(stagingBuf); err != nil {
		return fmt.Errorf("unmap staging buffer: %w", err)
	}
	return nil
}
