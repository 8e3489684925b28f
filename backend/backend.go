// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
)

// Common backend errors. Implementations map their driver errors onto
// these so callers can classify failures without importing the driver.
var (
	// ErrBackendNotAvailable is returned when no backend is registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNoAdapter is returned when no adapter can present to a surface.
	ErrNoAdapter = errors.New("backend: no adapter")

	// ErrSurfaceOutdated is returned by AcquireTexture when the surface no
	// longer matches the window and must be reconfigured.
	ErrSurfaceOutdated = errors.New("backend: surface outdated")

	// ErrSurfaceLost is returned when the surface must be recreated or
	// reconfigured from scratch.
	ErrSurfaceLost = errors.New("backend: surface lost")

	// ErrOutOfMemory is returned when the driver ran out of memory.
	ErrOutOfMemory = errors.New("backend: out of memory")

	// ErrTimeout is returned when acquisition or a GPU wait timed out.
	ErrTimeout = errors.New("backend: timeout")
)

// NativeTarget identifies the platform window a surface presents to.
// Display is the connection handle (X11 Display*, zero on Windows) and
// Window the native window handle (X11 Window, HWND).
type NativeTarget struct {
	Display uintptr
	Window  uintptr
}

// PresentMode controls how presented frames are synchronized with the
// display refresh.
type PresentMode uint8

// Presentation modes.
const (
	// PresentModeFifo waits for vertical blank; always supported.
	PresentModeFifo PresentMode = iota
	PresentModeFifoRelaxed
	PresentModeMailbox
	PresentModeImmediate
)

var presentModeNames = [...]string{
	PresentModeFifo:        "fifo",
	PresentModeFifoRelaxed: "fifo-relaxed",
	PresentModeMailbox:     "mailbox",
	PresentModeImmediate:   "immediate",
}

// String returns the lower-case name of the mode.
func (m PresentMode) String() string {
	if int(m) < len(presentModeNames) {
		return presentModeNames[m]
	}
	return fmt.Sprintf("PresentMode(%d)", uint8(m))
}

// ParsePresentMode parses a mode name as produced by String.
// The empty string selects PresentModeFifo.
func ParsePresentMode(s string) (PresentMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PresentModeFifo, nil
	}
	for i, name := range presentModeNames {
		if name == s {
			return PresentMode(i), nil
		}
	}
	return PresentModeFifo, fmt.Errorf("backend: unknown present mode %q", s)
}

// AlphaMode selects how the compositor treats the alpha channel.
type AlphaMode uint8

// Alpha modes.
const (
	AlphaModeAuto AlphaMode = iota
	AlphaModeOpaque
	AlphaModePreMultiplied
	AlphaModePostMultiplied
	AlphaModeInherit
)

// SurfaceConfiguration describes how a surface is configured against a
// device.
type SurfaceConfiguration struct {
	Width       uint32
	Height      uint32
	Format      gputypes.TextureFormat
	Usage       gputypes.TextureUsage
	PresentMode PresentMode
	AlphaMode   AlphaMode
}

// Backend creates instances of one GPU API.
type Backend interface {
	// Name returns the backend identifier (e.g. "vulkan", "noop").
	Name() string

	// CreateInstance creates a new API instance.
	CreateInstance() (Instance, error)
}

// Instance is the entry point of a GPU API.
type Instance interface {
	// CreateSurface creates a surface for the given native window.
	CreateSurface(target NativeTarget) (Surface, error)

	// RequestAdapter returns an adapter able to present to compatible.
	// Returns ErrNoAdapter when none qualifies.
	RequestAdapter(ctx context.Context, compatible Surface) (Adapter, error)

	// Destroy releases the instance.
	Destroy()
}

// Adapter is one physical or virtual GPU.
type Adapter interface {
	// Name returns a human-readable adapter description.
	Name() string

	// RequestDevice opens a logical device and its queue.
	RequestDevice(ctx context.Context) (Device, Queue, error)

	// SurfaceFormats returns the texture formats the adapter can present
	// to s, in the adapter's preference order.
	SurfaceFormats(s Surface) []gputypes.TextureFormat

	// Destroy releases the adapter.
	Destroy()
}

// Device is a logical GPU device.
type Device interface {
	// CreateTextureView creates a default view of an acquired texture.
	CreateTextureView(tex SurfaceTexture) (TextureView, error)

	// DestroyTextureView releases a view.
	DestroyTextureView(view TextureView)

	// CreateCommandEncoder starts recording commands.
	CreateCommandEncoder(label string) (CommandEncoder, error)

	// Destroy releases the device.
	Destroy()
}

// Queue submits recorded work and presents surface textures.
type Queue interface {
	// Submit executes a command buffer. The buffer is consumed.
	Submit(buf CommandBuffer) error

	// Present shows tex, which must have been acquired from s.
	Present(s Surface, tex SurfaceTexture) error
}

// Surface is a presentable target bound to a window.
type Surface interface {
	// Configure (re)configures the surface for use with device.
	Configure(device Device, config *SurfaceConfiguration) error

	// AcquireTexture returns the next texture to render into.
	// Returns ErrSurfaceOutdated, ErrSurfaceLost, ErrOutOfMemory or
	// ErrTimeout (possibly wrapped) on failure.
	AcquireTexture() (SurfaceTexture, error)

	// DiscardTexture returns an acquired texture without presenting it.
	DiscardTexture(tex SurfaceTexture)

	// Destroy releases the surface.
	Destroy()
}

// SurfaceTexture is a texture acquired from a surface.
type SurfaceTexture interface {
	// Size returns the texture dimensions in pixels.
	Size() (width, height uint32)
}

// TextureView is an opaque view of a texture usable as a render target.
type TextureView any

// CommandBuffer is an opaque finished command buffer.
type CommandBuffer any

// CommandEncoder records GPU commands.
type CommandEncoder interface {
	// BeginRenderPass opens a render pass. The pass must be ended before
	// Finish is called.
	BeginRenderPass(desc *RenderPassDescriptor) (RenderPass, error)

	// Finish ends recording and returns the command buffer.
	Finish() (CommandBuffer, error)

	// Discard abandons recording.
	Discard()
}

// RenderPass is an open render pass.
type RenderPass interface {
	End()
}

// RenderPassDescriptor describes a render pass.
type RenderPassDescriptor struct {
	Label            string
	ColorAttachments []ColorAttachment
}

// ColorAttachment describes one color target of a render pass.
type ColorAttachment struct {
	View       TextureView
	LoadOp     gputypes.LoadOp
	StoreOp    gputypes.StoreOp
	ClearValue gputypes.Color
}
