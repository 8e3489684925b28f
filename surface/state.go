// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/gpuwindow"
	"github.com/gogpu/gpuwindow/backend"
	"github.com/gogpu/gpuwindow/window"
	"github.com/gogpu/gputypes"
)

// State is the GPU side of one window: adapter, device, queue and the
// presentation surface with its current configuration.
//
// Invariant: after every successful Initialize or Reconfigure, Size()
// equals the width and height of Config().
//
// State is NOT safe for concurrent use; share it through a Slot.
type State struct {
	window window.Handle

	adapter backend.Adapter
	device  backend.Device
	queue   backend.Queue
	surface backend.Surface

	config backend.SurfaceConfiguration
	size   Extent

	clear gputypes.Color
	label string

	// stale is set when the driver reported the surface outdated or lost,
	// or a Reconfigure failed; the next Reconfigure then runs even if the
	// size is unchanged.
	stale     bool
	destroyed bool
}

// Initialize binds a new surface to win and configures it for rendering.
//
// It blocks until the adapter and device requests complete. The first
// surface format reported by the adapter is used as is. On failure every
// resource created so far is released and the error wraps one of
// gpuwindow.ErrInvalidGeometry, gpuwindow.ErrNoCompatibleAdapter or
// gpuwindow.ErrDeviceCreationFailed (or the context error).
func Initialize(ctx context.Context, inst backend.Instance, win window.Handle, opts ...Option) (_ *State, err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	size, err := windowExtent(win)
	if err != nil {
		return nil, fmt.Errorf("surface: initialize: %w", err)
	}
	target, err := win.NativeTarget()
	if err != nil {
		return nil, fmt.Errorf("surface: initialize: %w: native window: %w", gpuwindow.ErrNoCompatibleAdapter, err)
	}

	s := &State{window: win, clear: o.clear, label: o.label}
	defer func() {
		if err != nil {
			s.release()
		}
	}()

	s.surface, err = inst.CreateSurface(target)
	if err != nil {
		return nil, fmt.Errorf("surface: initialize: %w: create surface: %w", gpuwindow.ErrNoCompatibleAdapter, err)
	}
	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("surface: initialize: %w", err)
	}

	s.adapter, err = inst.RequestAdapter(ctx, s.surface)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("surface: initialize: %w", ctxErr)
		}
		return nil, fmt.Errorf("surface: initialize: %w: %w", gpuwindow.ErrNoCompatibleAdapter, err)
	}

	s.device, s.queue, err = s.adapter.RequestDevice(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("surface: initialize: %w", ctxErr)
		}
		return nil, fmt.Errorf("surface: initialize: %w: %w", gpuwindow.ErrDeviceCreationFailed, err)
	}

	formats := s.adapter.SurfaceFormats(s.surface)
	if len(formats) == 0 {
		err = errors.New("adapter reports no surface formats")
		return nil, fmt.Errorf("surface: initialize: %w: %w", gpuwindow.ErrNoCompatibleAdapter, err)
	}

	s.config = backend.SurfaceConfiguration{
		Width:       size.Width,
		Height:      size.Height,
		Format:      formats[0],
		Usage:       gputypes.TextureUsageRenderAttachment,
		PresentMode: o.presentMode,
		AlphaMode:   backend.AlphaModeAuto,
	}
	if err = s.surface.Configure(s.device, &s.config); err != nil {
		return nil, fmt.Errorf("surface: initialize: %w: configure: %w", gpuwindow.ErrDeviceCreationFailed, err)
	}
	s.size = size

	gpuwindow.Logger().Info("surface: initialized",
		"adapter", s.adapter.Name(), "size", s.size, "format", s.config.Format,
		"present", s.config.PresentMode)
	return s, nil
}

// Reconfigure follows the window's current physical size. If the size is
// unchanged and the surface is not stale it returns nil without touching
// the driver. On failure the error wraps gpuwindow.ErrResizeFailed, the
// previous configuration stays in effect and the state is stale; do not
// render until a Reconfigure succeeds.
func (s *State) Reconfigure() error {
	if s.destroyed {
		return fmt.Errorf("%w: surface destroyed", gpuwindow.ErrResizeFailed)
	}
	size, err := windowExtent(s.window)
	if err != nil {
		s.stale = true
		return fmt.Errorf("%w: %w", gpuwindow.ErrResizeFailed, err)
	}
	if size == s.size && !s.stale {
		return nil
	}

	cfg := s.config
	cfg.Width, cfg.Height = size.Width, size.Height
	if err := s.surface.Configure(s.device, &cfg); err != nil {
		s.stale = true
		return fmt.Errorf("%w: configure %v: %w", gpuwindow.ErrResizeFailed, size, err)
	}

	s.config = cfg
	s.size = size
	s.stale = false
	gpuwindow.Logger().Debug("surface: reconfigured", "size", size)
	return nil
}

// RenderFrame acquires the next texture, clears it in a single render pass,
// submits the commands and presents the texture.
//
// Acquisition failures wrap gpuwindow.ErrSurfaceAcquisitionFailed and are
// expected transiently around resizes: call Reconfigure, then RenderFrame
// again on the next repaint. Everything else wraps gpuwindow.ErrRenderFailed.
func (s *State) RenderFrame() error {
	if s.destroyed {
		return fmt.Errorf("%w: surface destroyed", gpuwindow.ErrRenderFailed)
	}

	tex, err := s.surface.AcquireTexture()
	if err != nil {
		if errors.Is(err, backend.ErrSurfaceOutdated) || errors.Is(err, backend.ErrSurfaceLost) {
			s.stale = true
		}
		return fmt.Errorf("%w: %w", gpuwindow.ErrSurfaceAcquisitionFailed, err)
	}

	presented := false
	defer func() {
		if !presented {
			s.surface.DiscardTexture(tex)
		}
	}()

	// A texture that does not match the configuration belongs to a
	// previous swapchain; never render into it.
	if w, h := tex.Size(); w != s.config.Width || h != s.config.Height {
		s.stale = true
		return fmt.Errorf("%w: texture %dx%d does not match configuration %v: %w",
			gpuwindow.ErrSurfaceAcquisitionFailed, w, h, s.size, backend.ErrSurfaceOutdated)
	}

	view, err := s.device.CreateTextureView(tex)
	if err != nil {
		return fmt.Errorf("%w: create view: %w", gpuwindow.ErrRenderFailed, err)
	}
	defer s.device.DestroyTextureView(view)

	buf, err := s.recordClear(view)
	if err != nil {
		return err
	}
	if err := s.queue.Submit(buf); err != nil {
		return fmt.Errorf("%w: submit: %w", gpuwindow.ErrRenderFailed, err)
	}

	// Present consumes the texture whether or not it succeeds.
	presented = true
	if err := s.queue.Present(s.surface, tex); err != nil {
		if errors.Is(err, backend.ErrSurfaceOutdated) || errors.Is(err, backend.ErrSurfaceLost) {
			s.stale = true
		}
		return fmt.Errorf("%w: present: %w", gpuwindow.ErrRenderFailed, err)
	}
	return nil
}

// recordClear records one render pass that clears view and stores the
// result.
func (s *State) recordClear(view backend.TextureView) (backend.CommandBuffer, error) {
	enc, err := s.device.CreateCommandEncoder(s.label)
	if err != nil {
		return nil, fmt.Errorf("%w: create encoder: %w", gpuwindow.ErrRenderFailed, err)
	}
	pass, err := enc.BeginRenderPass(&backend.RenderPassDescriptor{
		Label: s.label + " pass",
		ColorAttachments: []backend.ColorAttachment{{
			View:       view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: s.clear,
		}},
	})
	if err != nil {
		enc.Discard()
		return nil, fmt.Errorf("%w: begin render pass: %w", gpuwindow.ErrRenderFailed, err)
	}
	pass.End()

	buf, err := enc.Finish()
	if err != nil {
		return nil, fmt.Errorf("%w: finish encoder: %w", gpuwindow.ErrRenderFailed, err)
	}
	return buf, nil
}

// Size returns the physical size the surface was last configured for.
func (s *State) Size() Extent { return s.size }

// Config returns the current surface configuration.
func (s *State) Config() backend.SurfaceConfiguration { return s.config }

// Stale reports whether the driver asked for the surface to be
// reconfigured since the last successful configuration.
func (s *State) Stale() bool { return s.stale }

// AdapterName returns the name of the selected adapter.
func (s *State) AdapterName() string {
	if s.adapter == nil {
		return ""
	}
	return s.adapter.Name()
}

// SetClearColor changes the color subsequent frames are cleared to.
func (s *State) SetClearColor(c gputypes.Color) { s.clear = c }

// Destroy releases the surface, device and adapter. It is idempotent and
// must not be called while the window is still delivering callbacks that
// reach this State outside a Slot.
func (s *State) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.release()
	gpuwindow.Logger().Debug("surface: destroyed")
}

// release frees resources in reverse creation order; the surface goes
// first because it is configured against the device.
func (s *State) release() {
	if s.surface != nil {
		s.surface.Destroy()
		s.surface = nil
	}
	if s.device != nil {
		s.device.Destroy()
		s.device = nil
	}
	s.queue = nil
	if s.adapter != nil {
		s.adapter.Destroy()
		s.adapter = nil
	}
}
