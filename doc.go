// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpuwindow binds a presentable GPU surface to one platform window.
//
// # Overview
//
// The module keeps a surface's pixel size in step with its window and
// renders a frame (acquire, clear pass, submit, present) every time the
// window system asks for a repaint. GPU initialization runs on its own
// goroutine while the window already delivers events, so the surface
// state lives in a lock-guarded slot that every callback re-checks.
//
// # Architecture
//
//	window.Handler (callbacks on the UI thread)
//	      |
//	bridge.Bridge ---- surface.Slot (mutex + optional *surface.State)
//	                         ^
//	surface.Start (goroutine: adapter -> device -> configure -> populate)
//	                         |
//	                  backend.Instance (backend/native over gogpu/wgpu HAL)
//
// # Packages
//
//   - backend: GPU collaborator contract and backend registry
//   - backend/native: pure Go implementation on gogpu/wgpu/hal
//   - window: window handle contract, event types, Handler interface
//   - window/glfw: GLFW window and event loop
//   - surface: surface state, shared slot, physical size computation
//   - bridge: window event bridge
//
// # Errors
//
// Error kinds are sentinel values in this package ([ErrInvalidGeometry],
// [ErrNoCompatibleAdapter], [ErrDeviceCreationFailed], [ErrResizeFailed],
// [ErrSurfaceAcquisitionFailed], [ErrRenderFailed]). Construction errors
// are fatal; everything that happens inside a window callback is logged
// and retried by the next event.
//
// # Logging
//
// The module is silent by default. Use [SetLogger] to route its log/slog
// output somewhere.
package gpuwindow
