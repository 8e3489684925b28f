// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface owns the GPU resources bound to one window and the slot
// through which they are shared with window callbacks.
//
// # State
//
// State holds the adapter, device, queue and presentation surface of a
// window together with the surface configuration. It is the only type that
// touches the presentation surface:
//
//   - Initialize selects an adapter, opens a device and configures the
//     surface at the window's physical size with FIFO presentation
//   - Reconfigure follows the window size, skipping redundant driver calls
//   - RenderFrame acquires a texture, clears it in one render pass,
//     submits and presents
//
// State is not safe for concurrent use. Share it through a Slot.
//
// # Slot
//
// Slot is a mutex-guarded optional State. It starts empty, is populated
// once by the asynchronous initializer, and every access branches on
// presence:
//
//	slot := surface.NewSlot()
//	done := surface.Start(ctx, instance, win, slot)
//
//	// On the UI thread, possibly before initialization completes:
//	ready, err := slot.With(func(s *surface.State) error {
//	    return s.RenderFrame()
//	})
//	if !ready {
//	    // not initialized yet: skip the frame
//	}
//
// # Physical Size
//
// PhysicalSize converts a logical window size into pixels by rounding
// width*scale and height*scale. A size that rounds to zero is rejected
// with gpuwindow.ErrInvalidGeometry.
package surface
