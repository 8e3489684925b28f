// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package native

import (
	"fmt"
	"time"

	"github.com/gogpu/gpuwindow/backend"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// submitTimeout bounds the wait for a submitted frame before present.
const submitTimeout = 5 * time.Second

// pollInterval is the sleep between completion polls.
const pollInterval = 100 * time.Microsecond

// Device wraps a hal.Device.
type Device struct {
	raw hal.Device
}

var _ backend.Device = (*Device)(nil)

// CreateTextureView creates a single-level 2D view of an acquired texture.
func (d *Device) CreateTextureView(tex backend.SurfaceTexture) (backend.TextureView, error) {
	st, ok := tex.(*surfaceTexture)
	if !ok {
		return nil, ErrForeignResource
	}
	view, err := d.raw.CreateTextureView(st.raw, &hal.TextureViewDescriptor{
		Label:           "surface view",
		Format:          gputypes.TextureFormatUndefined, // inherit from texture
		Dimension:       gputypes.TextureViewDimension2D,
		Aspect:          gputypes.TextureAspectAll,
		BaseMipLevel:    0,
		MipLevelCount:   1,
		BaseArrayLayer:  0,
		ArrayLayerCount: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("native: create texture view: %w", mapHALError(err))
	}
	return view, nil
}

// DestroyTextureView releases a view created by CreateTextureView.
func (d *Device) DestroyTextureView(view backend.TextureView) {
	if v, ok := view.(hal.TextureView); ok && v != nil {
		d.raw.DestroyTextureView(v)
	}
}

// CreateCommandEncoder creates an encoder that is already recording.
func (d *Device) CreateCommandEncoder(label string) (backend.CommandEncoder, error) {
	enc, err := d.raw.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: label})
	if err != nil {
		return nil, fmt.Errorf("native: create command encoder: %w", err)
	}
	if err := enc.BeginEncoding(label); err != nil {
		return nil, fmt.Errorf("native: begin encoding: %w", err)
	}
	return &commandEncoder{raw: enc}, nil
}

// Destroy releases the device.
func (d *Device) Destroy() {
	d.raw.Destroy()
}

// Queue wraps a hal.Queue. It keeps the owning device to free submitted
// command buffers.
type Queue struct {
	raw    hal.Queue
	device hal.Device
}

var _ backend.Queue = (*Queue)(nil)

// Submit executes buf and waits for the GPU to finish it, so the command
// buffer can be freed and the surface texture is fully rendered before
// Present.
func (q *Queue) Submit(buf backend.CommandBuffer) error {
	cmd, ok := buf.(hal.CommandBuffer)
	if !ok || cmd == nil {
		return ErrForeignResource
	}

	index, err := q.raw.Submit([]hal.CommandBuffer{cmd})
	if err != nil {
		q.device.FreeCommandBuffer(cmd)
		return fmt.Errorf("native: submit: %w", mapHALError(err))
	}
	if err := waitCompleted(q.raw, index, submitTimeout); err != nil {
		// The GPU may still own the buffer; leak it rather than free it
		// under the driver.
		return err
	}
	q.device.FreeCommandBuffer(cmd)
	return nil
}

// waitCompleted polls q until submission index has completed or timeout
// elapses.
func waitCompleted(q hal.Queue, index uint64, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for q.PollCompleted() < index {
		if time.Now().After(deadline) {
			return fmt.Errorf("%w: %w (submission %d)", backend.ErrTimeout, ErrSubmitTimeout, index)
		}
		time.Sleep(pollInterval)
	}
	return nil
}

// Present shows an acquired texture.
func (q *Queue) Present(s backend.Surface, tex backend.SurfaceTexture) error {
	hs, ok := s.(*Surface)
	if !ok {
		return ErrForeignResource
	}
	st, ok := tex.(*surfaceTexture)
	if !ok {
		return ErrForeignResource
	}
	// No damage rects: the clear covers the whole surface.
	if err := q.raw.Present(hs.raw, st.raw, nil); err != nil {
		return fmt.Errorf("native: present: %w", mapHALError(err))
	}
	return nil
}

type commandEncoder struct {
	raw hal.CommandEncoder
}

func (e *commandEncoder) BeginRenderPass(desc *backend.RenderPassDescriptor) (backend.RenderPass, error) {
	attachments := make([]hal.RenderPassColorAttachment, 0, len(desc.ColorAttachments))
	for _, a := range desc.ColorAttachments {
		view, ok := a.View.(hal.TextureView)
		if !ok || view == nil {
			return nil, ErrForeignResource
		}
		attachments = append(attachments, hal.RenderPassColorAttachment{
			View:       view,
			LoadOp:     a.LoadOp,
			StoreOp:    a.StoreOp,
			ClearValue: a.ClearValue,
		})
	}
	pass := e.raw.BeginRenderPass(&hal.RenderPassDescriptor{
		Label:            desc.Label,
		ColorAttachments: attachments,
	})
	return pass, nil
}

func (e *commandEncoder) Finish() (backend.CommandBuffer, error) {
	buf, err := e.raw.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("native: end encoding: %w", err)
	}
	return buf, nil
}

func (e *commandEncoder) Discard() {
	e.raw.DiscardEncoding()
}
