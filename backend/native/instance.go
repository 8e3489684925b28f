// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package native

import (
	"context"
	"fmt"

	"github.com/gogpu/gpuwindow"
	"github.com/gogpu/gpuwindow/backend"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Instance wraps a hal.Instance.
type Instance struct {
	raw     hal.Instance
	backend string
}

var _ backend.Instance = (*Instance)(nil)

// CreateSurface creates a HAL surface for the native window.
func (i *Instance) CreateSurface(target backend.NativeTarget) (backend.Surface, error) {
	raw, err := i.raw.CreateSurface(target.Display, target.Window)
	if err != nil {
		return nil, fmt.Errorf("native: create surface: %w", err)
	}
	return &Surface{raw: raw}, nil
}

// RequestAdapter enumerates adapters that can present to compatible and
// picks a discrete GPU, then an integrated one, then whatever comes first.
// A nil compatible surface skips the presentation check.
func (i *Instance) RequestAdapter(ctx context.Context, compatible backend.Surface) (backend.Adapter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var hint hal.Surface
	if compatible != nil {
		s, ok := compatible.(*Surface)
		if !ok {
			return nil, ErrForeignResource
		}
		hint = s.raw
	}

	candidates := i.raw.EnumerateAdapters(hint)
	if hint != nil {
		presentable := candidates[:0:0]
		for _, c := range candidates {
			if caps := c.Adapter.SurfaceCapabilities(hint); caps != nil && len(caps.Formats) > 0 {
				presentable = append(presentable, c)
			}
		}
		candidates = presentable
	}
	if len(candidates) == 0 {
		return nil, backend.ErrNoAdapter
	}

	selected := &candidates[0]
	for idx := range candidates {
		if candidates[idx].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU {
			selected = &candidates[idx]
			break
		}
		if candidates[idx].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU &&
			selected.Info.DeviceType != gputypes.DeviceTypeIntegratedGPU {
			selected = &candidates[idx]
		}
	}

	gpuwindow.Logger().Info("native: adapter selected",
		"backend", i.backend, "adapter", selected.Info.Name, "candidates", len(candidates))
	return &Adapter{raw: selected.Adapter, name: selected.Info.Name}, nil
}

// Destroy releases the instance.
func (i *Instance) Destroy() {
	i.raw.Destroy()
}

// Adapter wraps a hal.Adapter.
type Adapter struct {
	raw  hal.Adapter
	name string
}

var _ backend.Adapter = (*Adapter)(nil)

// Name returns the adapter name reported by the driver.
func (a *Adapter) Name() string { return a.name }

// RequestDevice opens a device with no optional features and default
// limits.
func (a *Adapter) RequestDevice(ctx context.Context) (backend.Device, backend.Queue, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	open, err := a.raw.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return nil, nil, fmt.Errorf("native: open device: %w", mapHALError(err))
	}
	device := &Device{raw: open.Device}
	return device, &Queue{raw: open.Queue, device: open.Device}, nil
}

// SurfaceFormats returns the formats the adapter reports for s.
func (a *Adapter) SurfaceFormats(s backend.Surface) []gputypes.TextureFormat {
	hs, ok := s.(*Surface)
	if !ok {
		return nil
	}
	caps := a.raw.SurfaceCapabilities(hs.raw)
	if caps == nil {
		return nil
	}
	hs.caps = caps
	return caps.Formats
}

// Destroy releases the adapter.
func (a *Adapter) Destroy() {
	a.raw.Destroy()
}
