// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package native

import (
	"fmt"
	"sync"

	"github.com/gogpu/gpuwindow"
	"github.com/gogpu/gpuwindow/backend"
	"github.com/gogpu/wgpu/hal"
)

// Surface wraps a hal.Surface and remembers the size it was last
// configured for, which is the size of every texture it hands out.
type Surface struct {
	raw  hal.Surface
	caps *hal.SurfaceCapabilities

	mu            sync.Mutex
	width, height uint32
	device        hal.Device
}

var _ backend.Surface = (*Surface)(nil)

// Configure (re)configures the surface.
func (s *Surface) Configure(device backend.Device, cfg *backend.SurfaceConfiguration) error {
	d, ok := device.(*Device)
	if !ok {
		return ErrForeignResource
	}
	if err := s.raw.Configure(d.raw, toHALConfig(cfg, s.caps)); err != nil {
		return fmt.Errorf("native: configure surface %dx%d: %w", cfg.Width, cfg.Height, mapHALError(err))
	}

	s.mu.Lock()
	s.width, s.height = cfg.Width, cfg.Height
	s.device = d.raw
	s.mu.Unlock()

	gpuwindow.Logger().Debug("native: surface configured",
		"width", cfg.Width, "height", cfg.Height, "format", cfg.Format, "present", cfg.PresentMode)
	return nil
}

// AcquireTexture returns the next swapchain texture.
func (s *Surface) AcquireTexture() (backend.SurfaceTexture, error) {
	acquired, err := s.raw.AcquireTexture(nil)
	if err != nil {
		return nil, fmt.Errorf("native: acquire texture: %w", mapHALError(err))
	}
	if acquired == nil || acquired.Texture == nil {
		return nil, fmt.Errorf("native: acquire texture: %w", backend.ErrSurfaceLost)
	}

	s.mu.Lock()
	w, h := s.width, s.height
	s.mu.Unlock()

	if acquired.Suboptimal {
		gpuwindow.Logger().Debug("native: suboptimal surface texture", "width", w, "height", h)
	}
	return &surfaceTexture{raw: acquired.Texture, width: w, height: h}, nil
}

// DiscardTexture returns a texture to the swapchain without presenting.
func (s *Surface) DiscardTexture(tex backend.SurfaceTexture) {
	if st, ok := tex.(*surfaceTexture); ok {
		s.raw.DiscardTexture(st.raw)
	}
}

// Destroy unconfigures and releases the surface.
func (s *Surface) Destroy() {
	s.mu.Lock()
	device := s.device
	s.device = nil
	s.mu.Unlock()

	if device != nil {
		s.raw.Unconfigure(device)
	}
	s.raw.Destroy()
}

type surfaceTexture struct {
	raw           hal.SurfaceTexture
	width, height uint32
}

func (t *surfaceTexture) Size() (width, height uint32) {
	return t.width, t.height
}
