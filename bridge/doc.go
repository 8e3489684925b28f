// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package bridge connects window callbacks to a GPU surface.
//
// A Bridge is the window.Handler of one window. It holds the shared
// surface.Slot that the asynchronous initializer fills in, and maps:
//
//	Size          -> State.Reconfigure
//	PreparePaint  -> Handle.Invalidate (always)
//	Paint         -> State.RenderFrame
//	MouseDown     -> State.RenderFrame
//	RequestClose  -> Handle.Close
//	Destroy       -> Host.Quit
//
// Until the slot is populated, Size, Paint and MouseDown do nothing. Resize
// and render failures are logged and counted; the next window event
// retries. A panic raised by a GPU call is recovered at the callback
// boundary.
package bridge
