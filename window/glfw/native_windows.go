// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package glfw

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/gogpu/gpuwindow/backend"
)

// nativeTarget returns the module instance and HWND.
func (w *Window) nativeTarget() (backend.NativeTarget, error) {
	var module windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &module); err != nil {
		return backend.NativeTarget{}, fmt.Errorf("glfw: module handle: %w", err)
	}
	return backend.NativeTarget{
		Display: uintptr(module),
		Window:  uintptr(unsafe.Pointer(w.raw.GetWin32Window())),
	}, nil
}
