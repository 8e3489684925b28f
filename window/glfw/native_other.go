// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !windows && !darwin && (!linux || wayland)

package glfw

import (
	"errors"

	"github.com/gogpu/gpuwindow/backend"
)

// nativeTarget fails: only X11, Win32 and Cocoa windows can host a GPU
// surface.
func (w *Window) nativeTarget() (backend.NativeTarget, error) {
	return backend.NativeTarget{}, errors.New("glfw: native window handles unsupported on this platform")
}
