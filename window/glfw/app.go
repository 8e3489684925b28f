// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glfw

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	glfw3 "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/gpuwindow"
	"github.com/gogpu/gpuwindow/window"
)

// paintInterval bounds the event wait while a repaint is pending, so an
// invalidated window that renders nothing does not spin.
const paintInterval = time.Second / 120

func init() {
	// GLFW must be used from the thread that initialized it.
	runtime.LockOSThread()
}

// Application owns the GLFW library and runs the event loop. All methods
// except Quit must be called from the main goroutine.
type Application struct {
	windows []*Window
	quit    atomic.Bool
}

var _ window.Host = (*Application)(nil)

// NewApplication initializes GLFW.
func NewApplication() (*Application, error) {
	if err := glfw3.Init(); err != nil {
		return nil, fmt.Errorf("glfw: init: %w", err)
	}
	return &Application{}, nil
}

// NewWindow creates a window without a client API, for use with a GPU
// surface, and connects h to it.
func (a *Application) NewWindow(cfg Config, h window.Handler) (*Window, error) {
	cfg = cfg.withDefaults()

	glfw3.DefaultWindowHints()
	glfw3.WindowHint(glfw3.ClientAPI, glfw3.NoAPI)
	glfw3.WindowHint(glfw3.Resizable, glfw3.True)
	glfw3.WindowHint(glfw3.ScaleToMonitor, glfw3.True)

	raw, err := glfw3.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfw: create window: %w", err)
	}

	w := newWindow(raw, h, cfg.Hotkeys)
	a.windows = append(a.windows, w)
	h.Connect(w)
	// Deliver the initial size the way a resize would be delivered.
	h.Size(w.LogicalSize())
	w.Invalidate()

	gpuwindow.Logger().Info("glfw: window created", "title", cfg.Title,
		"width", cfg.Width, "height", cfg.Height, "scale", w.Scale())
	return w, nil
}

// Run processes events until Quit is called, ctx is done, or every window
// has been destroyed.
func (a *Application) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, a.Quit)
	defer stop()

	for !a.quit.Load() && len(a.windows) > 0 {
		if a.paintPending() {
			glfw3.WaitEventsTimeout(paintInterval.Seconds())
		} else {
			glfw3.WaitEvents()
		}

		open := a.windows[:0]
		for _, w := range a.windows {
			if w.closing {
				w.destroy()
				continue
			}
			w.paintIfInvalid()
			open = append(open, w)
		}
		a.windows = open
	}

	for _, w := range a.windows {
		w.destroy()
	}
	a.windows = nil
	return ctx.Err()
}

func (a *Application) paintPending() bool {
	for _, w := range a.windows {
		if w.invalid || w.closing {
			return true
		}
	}
	return false
}

// Quit implements window.Host. It is safe to call from any goroutine.
func (a *Application) Quit() {
	if a.quit.CompareAndSwap(false, true) {
		gpuwindow.Logger().Debug("glfw: quit requested")
		glfw3.PostEmptyEvent()
	}
}

// Terminate destroys remaining windows and releases GLFW.
func (a *Application) Terminate() {
	for _, w := range a.windows {
		w.destroy()
	}
	a.windows = nil
	glfw3.Terminate()
}
