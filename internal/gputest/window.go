// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gputest

import (
	"errors"
	"sync"

	"github.com/gogpu/gpuwindow/backend"
	"github.com/gogpu/gpuwindow/window"
)

// Window is a fake window.Handle with a settable size and scale.
type Window struct {
	mu sync.Mutex

	size        window.Size
	scale       float64
	invalidates int
	closes      int
	cursors     []window.Cursor
	opens       []window.FileDialogOptions
	saves       []window.FileDialogOptions
	noTarget    bool
}

var (
	_ window.Handle      = (*Window)(nil)
	_ window.FileDialogs = (*Window)(nil)
)

// NewWindow returns a window of the given logical size and scale.
func NewWindow(width, height, scale float64) *Window {
	return &Window{size: window.Size{Width: width, Height: height}, scale: scale}
}

// Resize changes the logical size reported from now on.
func (w *Window) Resize(width, height float64) {
	w.mu.Lock()
	w.size = window.Size{Width: width, Height: height}
	w.mu.Unlock()
}

// SetGeometry changes the logical size and scale together, as a window
// moving to a display with another scale does.
func (w *Window) SetGeometry(width, height, scale float64) {
	w.mu.Lock()
	w.size = window.Size{Width: width, Height: height}
	w.scale = scale
	w.mu.Unlock()
}

// SetScale changes the display scale reported from now on.
func (w *Window) SetScale(scale float64) {
	w.mu.Lock()
	w.scale = scale
	w.mu.Unlock()
}

// DropNativeTarget makes NativeTarget fail.
func (w *Window) DropNativeTarget() {
	w.mu.Lock()
	w.noTarget = true
	w.mu.Unlock()
}

// LogicalSize implements window.Handle.
func (w *Window) LogicalSize() window.Size {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

// Scale implements window.Handle.
func (w *Window) Scale() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scale
}

// Geometry implements window.Handle.
func (w *Window) Geometry() (window.Size, float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size, w.scale
}

// Invalidate implements window.Handle.
func (w *Window) Invalidate() {
	w.mu.Lock()
	w.invalidates++
	w.mu.Unlock()
}

// SetCursor implements window.Handle.
func (w *Window) SetCursor(c window.Cursor) {
	w.mu.Lock()
	w.cursors = append(w.cursors, c)
	w.mu.Unlock()
}

// Close implements window.Handle.
func (w *Window) Close() {
	w.mu.Lock()
	w.closes++
	w.mu.Unlock()
}

// NativeTarget implements window.Handle.
func (w *Window) NativeTarget() (backend.NativeTarget, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.noTarget {
		return backend.NativeTarget{}, errors.New("gputest: window has no native target")
	}
	return backend.NativeTarget{Display: 1, Window: 2}, nil
}

// OpenFile implements window.FileDialogs.
func (w *Window) OpenFile(opts window.FileDialogOptions) {
	w.mu.Lock()
	w.opens = append(w.opens, opts)
	w.mu.Unlock()
}

// SaveAs implements window.FileDialogs.
func (w *Window) SaveAs(opts window.FileDialogOptions) {
	w.mu.Lock()
	w.saves = append(w.saves, opts)
	w.mu.Unlock()
}

// Invalidates returns the number of Invalidate calls.
func (w *Window) Invalidates() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.invalidates
}

// Closes returns the number of Close calls.
func (w *Window) Closes() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closes
}

// Cursors returns every cursor set, in order.
func (w *Window) Cursors() []window.Cursor {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]window.Cursor(nil), w.cursors...)
}

// Opens returns the options of every open dialog shown.
func (w *Window) Opens() []window.FileDialogOptions {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]window.FileDialogOptions(nil), w.opens...)
}

// Saves returns the options of every save dialog shown.
func (w *Window) Saves() []window.FileDialogOptions {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]window.FileDialogOptions(nil), w.saves...)
}

// Host is a fake window.Host counting Quit calls.
type Host struct {
	mu    sync.Mutex
	quits int
}

// Quit implements window.Host.
func (h *Host) Quit() {
	h.mu.Lock()
	h.quits++
	h.mu.Unlock()
}

// Quits returns the number of Quit calls.
func (h *Host) Quits() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.quits
}
