// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bridge

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gpuwindow"
	"github.com/gogpu/gpuwindow/surface"
	"github.com/gogpu/gpuwindow/window"
)

// Phase is the lifecycle position of the bridged window.
//
// Ready is not a phase: it is derived from the slot, because the slot is
// populated by the initializer, not by a window callback.
type Phase int32

const (
	// PhaseUnconnected is the phase before Connect. Every callback is a
	// no-op.
	PhaseUnconnected Phase = iota

	// PhaseConnected is the phase after Connect. GPU callbacks run once the
	// slot is populated.
	PhaseConnected

	// PhaseClosing follows a close request.
	PhaseClosing

	// PhaseDestroyed follows Destroy.
	PhaseDestroyed
)

func (p Phase) String() string {
	switch p {
	case PhaseUnconnected:
		return "unconnected"
	case PhaseConnected:
		return "connected"
	case PhaseClosing:
		return "closing"
	case PhaseDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("Phase(%d)", int32(p))
	}
}

// Stats is a snapshot of the bridge's counters. FramesSkipped counts
// render attempts made before the slot was populated. RenderFailures
// includes frames dropped because the surface could not follow the
// window's size. ResizesApplied counts only reconfigurations that reached
// the driver.
type Stats struct {
	FramesRendered uint64
	FramesSkipped  uint64
	RenderFailures uint64
	ResizesApplied uint64
	ResizeFailures uint64
}

// Bridge is the window.Handler of a GPU window. It maps window callbacks
// onto the shared surface slot and never lets a GPU failure reach the
// window system.
//
// Callbacks must be delivered one at a time, as window systems do.
// Phase and Stats may be read from any goroutine.
type Bridge struct {
	slot *surface.Slot
	host window.Host

	win   window.Handle
	phase atomic.Int32

	framesRendered atomic.Uint64
	framesSkipped  atomic.Uint64
	renderFailures atomic.Uint64
	resizesApplied atomic.Uint64
	resizeFailures atomic.Uint64
}

var _ window.Handler = (*Bridge)(nil)

// New returns a bridge over slot. host is asked to quit when the window
// is destroyed; it may be nil.
func New(slot *surface.Slot, host window.Host) *Bridge {
	return &Bridge{slot: slot, host: host}
}

// Phase returns the current lifecycle phase.
func (b *Bridge) Phase() Phase {
	return Phase(b.phase.Load())
}

// Ready reports whether the surface is initialized and the window is
// connected.
func (b *Bridge) Ready() bool {
	return b.Phase() >= PhaseConnected && b.slot.Ready()
}

// Stats returns a snapshot of the counters.
func (b *Bridge) Stats() Stats {
	return Stats{
		FramesRendered: b.framesRendered.Load(),
		FramesSkipped:  b.framesSkipped.Load(),
		RenderFailures: b.renderFailures.Load(),
		ResizesApplied: b.resizesApplied.Load(),
		ResizeFailures: b.resizeFailures.Load(),
	}
}

func (b *Bridge) connected() bool {
	return b.win != nil && b.Phase() != PhaseUnconnected
}

// Connect implements window.Handler.
func (b *Bridge) Connect(h window.Handle) {
	b.win = h
	b.phase.Store(int32(PhaseConnected))
	gpuwindow.Logger().Debug("bridge: connected")
}

// Size implements window.Handler. A failed reconfiguration is logged and
// not fatal; frames are dropped until a later one succeeds.
func (b *Bridge) Size(s window.Size) {
	if !b.connected() {
		return
	}
	gpuwindow.Logger().Debug("bridge: size", "width", s.Width, "height", s.Height)

	ready, err := b.withSurface("size", b.reconfigure)
	if ready && err != nil {
		b.resizeFailures.Add(1)
		gpuwindow.Logger().Warn("bridge: resize failed", "err", err)
	}
}

// reconfigure brings the surface to the window's current size and counts
// the reconfigurations that reached the driver.
func (b *Bridge) reconfigure(s *surface.State) error {
	before, stale := s.Size(), s.Stale()
	if err := s.Reconfigure(); err != nil {
		return err
	}
	if stale || s.Size() != before {
		b.resizesApplied.Add(1)
	}
	return nil
}

// PreparePaint implements window.Handler. It always invalidates the window
// so that a Paint follows every prepare.
func (b *Bridge) PreparePaint() {
	if !b.connected() {
		return
	}
	b.win.Invalidate()
}

// Paint implements window.Handler.
func (b *Bridge) Paint(window.Region) {
	if !b.connected() {
		return
	}
	b.render("paint")
}

// render draws one frame if the slot is populated. The surface is first
// reconciled with the window's current size, which also covers resizes
// delivered before the slot was populated. If that fails the frame is
// skipped; it is never drawn against an out-of-date configuration.
func (b *Bridge) render(cause string) {
	ready, err := b.withSurface(cause, func(s *surface.State) error {
		if err := b.reconfigure(s); err != nil {
			return err
		}
		return s.RenderFrame()
	})
	switch {
	case !ready:
		b.framesSkipped.Add(1)
	case err != nil:
		b.renderFailures.Add(1)
		gpuwindow.Logger().Warn("bridge: frame skipped", "cause", cause, "err", err)
	default:
		b.framesRendered.Add(1)
	}
}

// withSurface runs fn against the populated slot and converts a panic
// into an error.
func (b *Bridge) withSurface(callback string, fn func(*surface.State) error) (ready bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ready = true
			err = fmt.Errorf("%w: panic in %s callback: %v", gpuwindow.ErrRenderFailed, callback, r)
		}
	}()
	return b.slot.With(fn)
}

// KeyDown implements window.Handler. Keys are observed, never consumed.
func (b *Bridge) KeyDown(ev window.KeyEvent) bool {
	if b.connected() {
		gpuwindow.Logger().Debug("bridge: key down", "key", ev.Key, "mods", ev.Mods, "repeat", ev.Repeat)
	}
	return false
}

// KeyUp implements window.Handler.
func (b *Bridge) KeyUp(ev window.KeyEvent) {
	if b.connected() {
		gpuwindow.Logger().Debug("bridge: key up", "key", ev.Key, "mods", ev.Mods)
	}
}

// Wheel implements window.Handler.
func (b *Bridge) Wheel(ev window.MouseEvent) {
	if b.connected() {
		gpuwindow.Logger().Debug("bridge: wheel", "dx", ev.WheelDelta.X, "dy", ev.WheelDelta.Y)
	}
}

// MouseMove implements window.Handler.
func (b *Bridge) MouseMove(ev window.MouseEvent) {
	if !b.connected() {
		return
	}
	b.win.SetCursor(window.CursorArrow)
	gpuwindow.Logger().Debug("bridge: mouse move", "x", ev.Pos.X, "y", ev.Pos.Y)
}

// MouseDown implements window.Handler. A press draws a frame immediately
// instead of waiting for the next paint.
func (b *Bridge) MouseDown(ev window.MouseEvent) {
	if !b.connected() {
		return
	}
	gpuwindow.Logger().Debug("bridge: mouse down", "button", ev.Button, "x", ev.Pos.X, "y", ev.Pos.Y)
	b.render("mouse down")
}

// MouseUp implements window.Handler.
func (b *Bridge) MouseUp(ev window.MouseEvent) {
	if b.connected() {
		gpuwindow.Logger().Debug("bridge: mouse up", "button", ev.Button)
	}
}

// Timer implements window.Handler.
func (b *Bridge) Timer(token window.TimerToken) {
	if b.connected() {
		gpuwindow.Logger().Debug("bridge: timer", "token", uint64(token))
	}
}

// GotFocus implements window.Handler.
func (b *Bridge) GotFocus() {
	if b.connected() {
		gpuwindow.Logger().Debug("bridge: focus gained")
	}
}

// LostFocus implements window.Handler.
func (b *Bridge) LostFocus() {
	if b.connected() {
		gpuwindow.Logger().Debug("bridge: focus lost")
	}
}

// RequestClose implements window.Handler. It closes the window but leaves
// the process running until Destroy.
func (b *Bridge) RequestClose() {
	if !b.connected() {
		return
	}
	b.phase.Store(int32(PhaseClosing))
	b.win.Close()
}

// Destroy implements window.Handler. It quits the host; GPU resources are
// released by whoever owns the slot.
func (b *Bridge) Destroy() {
	b.phase.Store(int32(PhaseDestroyed))
	gpuwindow.Logger().Debug("bridge: destroyed", "stats", b.Stats())
	if b.host != nil {
		b.host.Quit()
	}
}
