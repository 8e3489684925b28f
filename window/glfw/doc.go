// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glfw hosts windows for gpuwindow on GLFW.
//
// Windows are created with the NoAPI client hint so that a GPU surface,
// not an OpenGL context, owns the framebuffer. GLFW callbacks are
// translated into window.Handler calls:
//
//	size, framebuffer size, content scale -> Size
//	refresh, Invalidate                   -> PreparePaint, Paint
//	key                                   -> KeyDown / KeyUp, or Command for hotkeys
//	cursor position, mouse button, scroll -> MouseMove, MouseDown / MouseUp, Wheel
//	focus                                 -> GotFocus / LostFocus
//	close request                         -> RequestClose
//	window destroyed                      -> Destroy
//
// The package locks the main goroutine to the main OS thread at init.
// Application.Run must be called from the main goroutine.
package glfw
