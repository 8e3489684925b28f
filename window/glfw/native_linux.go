// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build linux && !wayland

package glfw

import (
	"errors"
	"unsafe"

	glfw3 "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/gpuwindow/backend"
)

// nativeTarget returns the X11 display and window.
func (w *Window) nativeTarget() (backend.NativeTarget, error) {
	display := uintptr(unsafe.Pointer(glfw3.GetX11Display()))
	if display == 0 {
		return backend.NativeTarget{}, errors.New("glfw: no X11 display")
	}
	return backend.NativeTarget{
		Display: display,
		Window:  uintptr(w.raw.GetX11Window()),
	}, nil
}
