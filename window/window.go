// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package window defines the contract between the surface core and a
// platform window toolkit: the window handle, the event values it
// delivers, and the Handler that receives them.
package window

import (
	"github.com/gogpu/gpuwindow/backend"
)

// Size is a logical (device independent) window size.
type Size struct {
	Width, Height float64
}

// Point is a logical position inside a window.
type Point struct {
	X, Y float64
}

// Rect is a logical rectangle with inclusive min and exclusive max.
type Rect struct {
	Min, Max Point
}

// Region is the invalid area a paint callback should redraw.
type Region struct {
	Rects []Rect
}

// Cursor is a system cursor shape.
type Cursor uint8

// Cursor shapes.
const (
	CursorArrow Cursor = iota
	CursorIBeam
	CursorCrosshair
	CursorPointingHand
	CursorResizeLeftRight
	CursorResizeUpDown
)

// Handle is a live platform window. The core holds it for the lifetime of
// the surface bound to it; implementations must be safe to call from the
// UI thread that delivers callbacks.
type Handle interface {
	// LogicalSize returns the current content size in logical units.
	LogicalSize() Size

	// Scale returns the display scale factor (physical pixels per
	// logical unit).
	Scale() float64

	// Geometry returns the logical size and scale as one consistent pair.
	// A resize between separate LogicalSize and Scale calls could
	// otherwise pair an old size with a new scale.
	Geometry() (Size, float64)

	// Invalidate requests a repaint; a Paint callback will follow.
	Invalidate()

	// SetCursor changes the cursor shown over the window.
	SetCursor(c Cursor)

	// Close asks the window to close.
	Close()

	// NativeTarget returns the platform handles a GPU surface binds to.
	NativeTarget() (backend.NativeTarget, error)
}

// FileDialogs is implemented by windows that can show platform file
// dialogs. Results arrive through Handler.OpenFile and Handler.SaveAs.
type FileDialogs interface {
	OpenFile(opts FileDialogOptions)
	SaveAs(opts FileDialogOptions)
}

// Host is the application hosting the window event loop.
type Host interface {
	// Quit ends the event loop. Safe to call from any goroutine.
	Quit()
}

// FileSpec is a named set of file extensions offered by a dialog.
type FileSpec struct {
	Name       string
	Extensions []string
}

// Common file specs.
var (
	FileSpecText = FileSpec{Name: "Text", Extensions: []string{"txt"}}
	FileSpecJPG  = FileSpec{Name: "Jpeg", Extensions: []string{"jpg", "jpeg"}}
)

// FileDialogOptions configures an open or save dialog.
type FileDialogOptions struct {
	ShowHidden   bool
	AllowedTypes []FileSpec
}

// FileInfo is the result of a file dialog.
type FileInfo struct {
	Path   string
	Format string
}

// TimerToken identifies a timer requested from the window.
type TimerToken uint64
