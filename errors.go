// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpuwindow

import "errors"

// Error kinds shared by the surface and bridge packages. Callers test
// for them with errors.Is; the concrete error usually wraps a backend
// cause as well.
var (
	// ErrInvalidGeometry is returned when a window's physical size is not
	// strictly positive. Fatal during initialization, recoverable during
	// reconfiguration.
	ErrInvalidGeometry = errors.New("gpuwindow: invalid geometry")

	// ErrNoCompatibleAdapter is returned when no GPU adapter can present
	// to the window's surface.
	ErrNoCompatibleAdapter = errors.New("gpuwindow: no compatible adapter")

	// ErrDeviceCreationFailed is returned when the adapter refuses to open
	// a logical device or the initial surface configuration fails.
	ErrDeviceCreationFailed = errors.New("gpuwindow: device creation failed")

	// ErrResizeFailed is returned when the surface could not be
	// reconfigured. The previous configuration stays in effect.
	ErrResizeFailed = errors.New("gpuwindow: resize failed")

	// ErrSurfaceAcquisitionFailed is returned when no presentable texture
	// could be acquired. Transient after a resize race; the next repaint
	// retries.
	ErrSurfaceAcquisitionFailed = errors.New("gpuwindow: surface acquisition failed")

	// ErrRenderFailed is returned when recording, submitting or presenting
	// a frame fails.
	ErrRenderFailed = errors.New("gpuwindow: render failed")
)

// IsFatal reports whether err prevents a window from being shown at all.
// Only construction-time failures are fatal; resize and render failures
// are retried by the next window event.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrResizeFailed) {
		return false
	}
	return errors.Is(err, ErrNoCompatibleAdapter) ||
		errors.Is(err, ErrDeviceCreationFailed) ||
		errors.Is(err, ErrInvalidGeometry)
}

// IsRetryable reports whether err is a per-frame or per-resize failure
// that the next window event gets another chance at.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrResizeFailed) ||
		errors.Is(err, ErrSurfaceAcquisitionFailed) ||
		errors.Is(err, ErrRenderFailed)
}
