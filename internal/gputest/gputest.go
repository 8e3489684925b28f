// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gputest provides a recording in-memory GPU backend and a fake
// window for tests of the surface and bridge packages.
package gputest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gpuwindow/backend"
	"github.com/gogpu/gputypes"
)

// Failure injection points.
type Failures struct {
	CreateSurface  error
	RequestAdapter error
	RequestDevice  error
	Configure      error
	Acquire        error
	CreateView     error
	CreateEncoder  error
	Submit         error
	Present        error
	// PanicOnAcquire makes AcquireTexture panic, standing in for a driver
	// bug that unwinds instead of returning.
	PanicOnAcquire bool
	// AcquireSize, when non-zero, is the size of acquired textures instead
	// of the configured size, as after a resize the swapchain missed.
	AcquireSize [2]uint32
}

// Pass is a recorded render pass.
type Pass struct {
	Label      string
	ViewWidth  uint32
	ViewHeight uint32
	LoadOp     gputypes.LoadOp
	StoreOp    gputypes.StoreOp
	Clear      gputypes.Color
}

// Backend is a recording backend. All fields are guarded by the embedded
// mutex; use the accessor methods from tests.
type Backend struct {
	mu sync.Mutex

	// Formats is what adapters report for every surface.
	Formats []gputypes.TextureFormat
	// Fail injects errors; it can be changed between calls with SetFailures.
	Fail Failures

	configures []backend.SurfaceConfiguration
	passes     []Pass
	submits    int
	presents   int
	discards   int
	destroyed  []string
}

var _ backend.Backend = (*Backend)(nil)

// NewBackend returns a backend reporting BGRA8Unorm then RGBA8Unorm.
func NewBackend() *Backend {
	return &Backend{
		Formats: []gputypes.TextureFormat{
			gputypes.TextureFormatBGRA8Unorm,
			gputypes.TextureFormatRGBA8Unorm,
		},
	}
}

// SetFailures replaces the injected failures.
func (b *Backend) SetFailures(f Failures) {
	b.mu.Lock()
	b.Fail = f
	b.mu.Unlock()
}

// Configures returns every successful surface configuration, in order.
func (b *Backend) Configures() []backend.SurfaceConfiguration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]backend.SurfaceConfiguration(nil), b.configures...)
}

// Passes returns every recorded render pass, in order.
func (b *Backend) Passes() []Pass {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Pass(nil), b.passes...)
}

// Submits returns the number of successful submissions.
func (b *Backend) Submits() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.submits
}

// Presents returns the number of successful presentations.
func (b *Backend) Presents() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.presents
}

// Discards returns the number of textures discarded without presenting.
func (b *Backend) Discards() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.discards
}

// Destroyed returns the kinds of destroyed resources, in order.
func (b *Backend) Destroyed() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.destroyed...)
}

func (b *Backend) fail(pick func(*Failures) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return pick(&b.Fail)
}

func (b *Backend) destroy(kind string) {
	b.mu.Lock()
	b.destroyed = append(b.destroyed, kind)
	b.mu.Unlock()
}

// Name implements backend.Backend.
func (b *Backend) Name() string { return "gputest" }

// CreateInstance implements backend.Backend.
func (b *Backend) CreateInstance() (backend.Instance, error) {
	return &instance{b: b}, nil
}

type instance struct{ b *Backend }

func (i *instance) CreateSurface(target backend.NativeTarget) (backend.Surface, error) {
	if err := i.b.fail(func(f *Failures) error { return f.CreateSurface }); err != nil {
		return nil, err
	}
	return &surface{b: i.b, target: target}, nil
}

func (i *instance) RequestAdapter(ctx context.Context, _ backend.Surface) (backend.Adapter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := i.b.fail(func(f *Failures) error { return f.RequestAdapter }); err != nil {
		return nil, err
	}
	return &adapter{b: i.b}, nil
}

func (i *instance) Destroy() { i.b.destroy("instance") }

type adapter struct{ b *Backend }

func (a *adapter) Name() string { return "gputest adapter" }

func (a *adapter) RequestDevice(ctx context.Context) (backend.Device, backend.Queue, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if err := a.b.fail(func(f *Failures) error { return f.RequestDevice }); err != nil {
		return nil, nil, err
	}
	return &device{b: a.b}, &queue{b: a.b}, nil
}

func (a *adapter) SurfaceFormats(backend.Surface) []gputypes.TextureFormat {
	a.b.mu.Lock()
	defer a.b.mu.Unlock()
	return append([]gputypes.TextureFormat(nil), a.b.Formats...)
}

func (a *adapter) Destroy() { a.b.destroy("adapter") }

type texture struct {
	width, height uint32
}

func (t *texture) Size() (width, height uint32) { return t.width, t.height }

type view struct {
	width, height uint32
}

type device struct{ b *Backend }

func (d *device) CreateTextureView(tex backend.SurfaceTexture) (backend.TextureView, error) {
	if err := d.b.fail(func(f *Failures) error { return f.CreateView }); err != nil {
		return nil, err
	}
	w, h := tex.Size()
	return &view{width: w, height: h}, nil
}

func (d *device) DestroyTextureView(backend.TextureView) {}

func (d *device) CreateCommandEncoder(label string) (backend.CommandEncoder, error) {
	if err := d.b.fail(func(f *Failures) error { return f.CreateEncoder }); err != nil {
		return nil, err
	}
	return &encoder{b: d.b, label: label}, nil
}

func (d *device) Destroy() { d.b.destroy("device") }

type queue struct{ b *Backend }

type commandBuffer struct {
	passes []Pass
}

func (q *queue) Submit(buf backend.CommandBuffer) error {
	if err := q.b.fail(func(f *Failures) error { return f.Submit }); err != nil {
		return err
	}
	cb, ok := buf.(*commandBuffer)
	if !ok {
		return errors.New("gputest: foreign command buffer")
	}
	q.b.mu.Lock()
	q.b.passes = append(q.b.passes, cb.passes...)
	q.b.submits++
	q.b.mu.Unlock()
	return nil
}

func (q *queue) Present(backend.Surface, backend.SurfaceTexture) error {
	if err := q.b.fail(func(f *Failures) error { return f.Present }); err != nil {
		return err
	}
	q.b.mu.Lock()
	q.b.presents++
	q.b.mu.Unlock()
	return nil
}

type encoder struct {
	b      *Backend
	label  string
	passes []Pass
	open   bool
}

type renderPass struct {
	e *encoder
}

func (p *renderPass) End() { p.e.open = false }

func (e *encoder) BeginRenderPass(desc *backend.RenderPassDescriptor) (backend.RenderPass, error) {
	if e.open {
		return nil, errors.New("gputest: render pass already open")
	}
	if len(desc.ColorAttachments) != 1 {
		return nil, fmt.Errorf("gputest: want 1 color attachment, got %d", len(desc.ColorAttachments))
	}
	a := desc.ColorAttachments[0]
	v, ok := a.View.(*view)
	if !ok {
		return nil, errors.New("gputest: foreign texture view")
	}
	e.passes = append(e.passes, Pass{
		Label:      desc.Label,
		ViewWidth:  v.width,
		ViewHeight: v.height,
		LoadOp:     a.LoadOp,
		StoreOp:    a.StoreOp,
		Clear:      a.ClearValue,
	})
	e.open = true
	return &renderPass{e: e}, nil
}

func (e *encoder) Finish() (backend.CommandBuffer, error) {
	if e.open {
		return nil, errors.New("gputest: render pass not ended")
	}
	return &commandBuffer{passes: e.passes}, nil
}

func (e *encoder) Discard() {}

type surface struct {
	b      *Backend
	target backend.NativeTarget

	width, height uint32
	configured    bool
}

func (s *surface) Configure(_ backend.Device, cfg *backend.SurfaceConfiguration) error {
	if err := s.b.fail(func(f *Failures) error { return f.Configure }); err != nil {
		return err
	}
	s.width, s.height = cfg.Width, cfg.Height
	s.configured = true
	s.b.mu.Lock()
	s.b.configures = append(s.b.configures, *cfg)
	s.b.mu.Unlock()
	return nil
}

func (s *surface) AcquireTexture() (backend.SurfaceTexture, error) {
	s.b.mu.Lock()
	panicking := s.b.Fail.PanicOnAcquire
	err := s.b.Fail.Acquire
	override := s.b.Fail.AcquireSize
	s.b.mu.Unlock()

	if panicking {
		panic("gputest: driver crashed in AcquireTexture")
	}
	if err != nil {
		return nil, err
	}
	if !s.configured {
		return nil, backend.ErrSurfaceLost
	}
	if override != [2]uint32{} {
		return &texture{width: override[0], height: override[1]}, nil
	}
	return &texture{width: s.width, height: s.height}, nil
}

func (s *surface) DiscardTexture(backend.SurfaceTexture) {
	s.b.mu.Lock()
	s.b.discards++
	s.b.mu.Unlock()
}

func (s *surface) Destroy() { s.b.destroy("surface") }
