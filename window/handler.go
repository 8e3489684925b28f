// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package window

// Handler receives the callbacks of one window. All methods are called on
// the UI thread, one at a time. A Handler must not let a failure escape
// into the toolkit: there is nothing the toolkit could do with it.
type Handler interface {
	// Connect delivers the window handle before any other callback.
	Connect(h Handle)

	// Size reports a new logical content size.
	Size(s Size)

	// PreparePaint is called before Paint.
	PreparePaint()

	// Paint asks for the invalid region to be redrawn.
	Paint(invalid Region)

	// Command delivers a menu or hotkey command.
	Command(id uint32)

	// OpenFile delivers the result of an open dialog; nil if canceled or
	// unsupported.
	OpenFile(file *FileInfo)

	// SaveAs delivers the result of a save dialog; nil if canceled or
	// unsupported.
	SaveAs(file *FileInfo)

	// KeyDown reports a key press and returns whether it was handled.
	KeyDown(ev KeyEvent) bool

	// KeyUp reports a key release.
	KeyUp(ev KeyEvent)

	// Wheel reports a scroll.
	Wheel(ev MouseEvent)

	// MouseMove reports pointer motion.
	MouseMove(ev MouseEvent)

	// MouseDown reports a button press.
	MouseDown(ev MouseEvent)

	// MouseUp reports a button release.
	MouseUp(ev MouseEvent)

	// Timer reports an expired timer.
	Timer(token TimerToken)

	// GotFocus and LostFocus report keyboard focus changes.
	GotFocus()
	LostFocus()

	// RequestClose is called when the user asks to close the window.
	RequestClose()

	// Destroy is called after the window is gone.
	Destroy()
}

// NopHandler implements every Handler method as a no-op. Embed it to
// implement only the callbacks you care about.
type NopHandler struct{}

var _ Handler = NopHandler{}

func (NopHandler) Connect(Handle)          {}
func (NopHandler) Size(Size)               {}
func (NopHandler) PreparePaint()           {}
func (NopHandler) Paint(Region)            {}
func (NopHandler) Command(uint32)          {}
func (NopHandler) OpenFile(*FileInfo)      {}
func (NopHandler) SaveAs(*FileInfo)        {}
func (NopHandler) KeyDown(KeyEvent) bool   { return false }
func (NopHandler) KeyUp(KeyEvent)          {}
func (NopHandler) Wheel(MouseEvent)        {}
func (NopHandler) MouseMove(MouseEvent)    {}
func (NopHandler) MouseDown(MouseEvent)    {}
func (NopHandler) MouseUp(MouseEvent)      {}
func (NopHandler) Timer(TimerToken)        {}
func (NopHandler) GotFocus()               {}
func (NopHandler) LostFocus()              {}
func (NopHandler) RequestClose()           {}
func (NopHandler) Destroy()                {}
