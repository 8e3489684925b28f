// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build darwin

package glfw

import (
	"errors"

	"github.com/gogpu/gpuwindow/backend"
)

// nativeTarget returns the NSWindow. The backend attaches a Metal layer
// to its content view.
func (w *Window) nativeTarget() (backend.NativeTarget, error) {
	ns := w.raw.GetCocoaWindow()
	if ns == nil {
		return backend.NativeTarget{}, errors.New("glfw: no Cocoa window")
	}
	return backend.NativeTarget{Window: uintptr(ns)}, nil
}
