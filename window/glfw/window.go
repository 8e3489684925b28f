// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glfw

import (
	"errors"
	"sync"

	glfw3 "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/gpuwindow"
	"github.com/gogpu/gpuwindow/backend"
	"github.com/gogpu/gpuwindow/window"
)

var errWindowDestroyed = errors.New("glfw: window destroyed")

// Config describes a window to create.
type Config struct {
	Title  string
	Width  int
	Height int

	// Hotkeys turn key chords into Handler.Command calls. A key that
	// matches a hotkey is not delivered to Handler.KeyDown.
	Hotkeys []window.Hotkey
}

func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = "gpuwindow"
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	return c
}

// Window is a GLFW window implementing window.Handle. It dispatches GLFW
// callbacks to a window.Handler on the main thread.
//
// GLFW may only be queried from the main thread, so the geometry and
// native handles are cached there; LogicalSize, Scale and NativeTarget
// are safe to call from any goroutine.
type Window struct {
	raw       *glfw3.Window
	handler   window.Handler
	hotkeys   []window.Hotkey
	onDestroy []func()

	mu        sync.Mutex
	size      window.Size
	scale     float64
	target    backend.NativeTarget
	targetErr error

	cursors map[window.Cursor]*glfw3.Cursor
	mouse   window.Point
	mods    glfw3.ModifierKey

	invalid   bool
	closing   bool
	destroyed bool
}

var (
	_ window.Handle      = (*Window)(nil)
	_ window.FileDialogs = (*Window)(nil)
)

func newWindow(raw *glfw3.Window, h window.Handler, hotkeys []window.Hotkey) *Window {
	w := &Window{
		raw:     raw,
		handler: h,
		hotkeys: hotkeys,
		cursors: make(map[window.Cursor]*glfw3.Cursor),
	}
	w.updateGeometry()
	target, err := w.nativeTarget()
	w.target, w.targetErr = target, err

	resized := func() {
		w.updateGeometry()
		h.Size(w.LogicalSize())
	}
	raw.SetSizeCallback(func(*glfw3.Window, int, int) { resized() })
	raw.SetFramebufferSizeCallback(func(*glfw3.Window, int, int) { resized() })
	raw.SetContentScaleCallback(func(*glfw3.Window, float32, float32) { resized() })
	raw.SetRefreshCallback(func(*glfw3.Window) { w.invalid = true })

	raw.SetKeyCallback(w.onKey)
	raw.SetCursorPosCallback(func(_ *glfw3.Window, x, y float64) {
		w.mouse = window.Point{X: x, Y: y}
		h.MouseMove(window.MouseEvent{Pos: w.mouse, Mods: convertMods(w.mods)})
	})
	raw.SetMouseButtonCallback(w.onMouseButton)
	raw.SetScrollCallback(func(_ *glfw3.Window, dx, dy float64) {
		h.Wheel(window.MouseEvent{Pos: w.mouse, Mods: convertMods(w.mods), WheelDelta: window.Point{X: dx, Y: dy}})
	})
	raw.SetFocusCallback(func(_ *glfw3.Window, focused bool) {
		if focused {
			h.GotFocus()
		} else {
			h.LostFocus()
		}
	})
	raw.SetCloseCallback(func(r *glfw3.Window) {
		// The handler decides; it calls Close to confirm.
		r.SetShouldClose(false)
		h.RequestClose()
	})
	return w
}

func (w *Window) onKey(_ *glfw3.Window, key glfw3.Key, scancode int, action glfw3.Action, mods glfw3.ModifierKey) {
	w.mods = mods
	ev := window.KeyEvent{
		Key:      convertKey(key),
		Mods:     convertMods(mods),
		Repeat:   action == glfw3.Repeat,
		Scancode: scancode,
	}
	if action == glfw3.Release {
		w.handler.KeyUp(ev)
		return
	}
	for _, hk := range w.hotkeys {
		if hk.Matches(ev) {
			w.handler.Command(hk.Command)
			return
		}
	}
	w.handler.KeyDown(ev)
}

func (w *Window) onMouseButton(_ *glfw3.Window, button glfw3.MouseButton, action glfw3.Action, mods glfw3.ModifierKey) {
	w.mods = mods
	ev := window.MouseEvent{Pos: w.mouse, Button: convertButton(button), Mods: convertMods(mods)}
	if action == glfw3.Press {
		w.handler.MouseDown(ev)
	} else {
		w.handler.MouseUp(ev)
	}
}

func (w *Window) paintIfInvalid() {
	if !w.invalid || w.closing || w.destroyed {
		return
	}
	w.invalid = false
	w.handler.PreparePaint()
	size := w.LogicalSize()
	w.handler.Paint(window.Region{Rects: []window.Rect{{
		Max: window.Point{X: size.Width, Y: size.Height},
	}}})
}

// updateGeometry caches the size in GLFW screen coordinates and the
// ratio of framebuffer pixels to screen coordinates. While the window is
// minimized the monitor content scale stands in for the ratio.
func (w *Window) updateGeometry() {
	width, height := w.raw.GetSize()
	fbWidth, _ := w.raw.GetFramebufferSize()

	scale := 1.0
	if width > 0 && fbWidth > 0 {
		scale = float64(fbWidth) / float64(width)
	} else if x, _ := w.raw.GetContentScale(); x > 0 {
		scale = float64(x)
	}

	w.mu.Lock()
	w.size = window.Size{Width: float64(width), Height: float64(height)}
	w.scale = scale
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

// Geometry implements window.Handle. Size and scale are updated together
// by the main thread, so the pair is always consistent.
func (w *Window) Geometry() (window.Size, float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size, w.scale
}

// NativeTarget implements window.Handle.
func (w *Window) NativeTarget() (backend.NativeTarget, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.destroyed {
		return backend.NativeTarget{}, errWindowDestroyed
	}
	return w.target, w.targetErr
}

// OnDestroy registers fn to run on the main thread just before the native
// window is destroyed, while surfaces bound to it are still valid.
func (w *Window) OnDestroy(fn func()) {
	w.onDestroy = append(w.onDestroy, fn)
}

// Invalidate implements window.Handle. The event loop delivers
// PreparePaint and Paint after the current callbacks return.
func (w *Window) Invalidate() {
	w.invalid = true
}

// SetCursor implements window.Handle.
func (w *Window) SetCursor(c window.Cursor) {
	if w.destroyed {
		return
	}
	cur, ok := w.cursors[c]
	if !ok {
		cur = glfw3.CreateStandardCursor(standardCursor(c))
		w.cursors[c] = cur
	}
	w.raw.SetCursor(cur)
}

// Close implements window.Handle. The window is destroyed by the event
// loop, which then calls Handler.Destroy.
func (w *Window) Close() {
	w.closing = true
}

// OpenFile implements window.FileDialogs. GLFW has no file dialogs; the
// handler receives a nil result.
func (w *Window) OpenFile(window.FileDialogOptions) {
	gpuwindow.Logger().Debug("glfw: file dialogs unsupported", "dialog", "open")
	w.handler.OpenFile(nil)
}

// SaveAs implements window.FileDialogs. GLFW has no file dialogs; the
// handler receives a nil result.
func (w *Window) SaveAs(window.FileDialogOptions) {
	gpuwindow.Logger().Debug("glfw: file dialogs unsupported", "dialog", "save")
	w.handler.SaveAs(nil)
}

func (w *Window) destroy() {
	if w.destroyed {
		return
	}
	for _, fn := range w.onDestroy {
		fn()
	}
	w.mu.Lock()
	w.destroyed = true
	w.size = window.Size{}
	w.mu.Unlock()
	w.raw.Destroy()
	for _, c := range w.cursors {
		c.Destroy()
	}
	w.cursors = nil
	w.handler.Destroy()
}

func standardCursor(c window.Cursor) glfw3.StandardCursor {
	switch c {
	case window.CursorIBeam:
		return glfw3.IBeamCursor
	case window.CursorCrosshair:
		return glfw3.CrosshairCursor
	case window.CursorPointingHand:
		return glfw3.HandCursor
	case window.CursorResizeLeftRight:
		return glfw3.HResizeCursor
	case window.CursorResizeUpDown:
		return glfw3.VResizeCursor
	default:
		return glfw3.ArrowCursor
	}
}
