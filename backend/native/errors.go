// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package native

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpuwindow/backend"
	"github.com/gogpu/wgpu/hal"
)

// Package errors for the HAL backend.
var (
	// ErrForeignResource is returned when a resource created by another
	// backend is passed in.
	ErrForeignResource = errors.New("native: resource belongs to another backend")

	// ErrSubmitTimeout is returned when submitted work did not complete
	// within submitTimeout.
	ErrSubmitTimeout = errors.New("native: submitted work did not complete in time")
)

// mapHALError translates HAL driver errors into backend sentinels while
// keeping the original error in the chain.
func mapHALError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, hal.ErrSurfaceOutdated):
		return fmt.Errorf("%w: %w", backend.ErrSurfaceOutdated, err)
	case errors.Is(err, hal.ErrSurfaceLost):
		return fmt.Errorf("%w: %w", backend.ErrSurfaceLost, err)
	case errors.Is(err, hal.ErrDeviceOutOfMemory):
		return fmt.Errorf("%w: %w", backend.ErrOutOfMemory, err)
	case errors.Is(err, hal.ErrTimeout):
		return fmt.Errorf("%w: %w", backend.ErrTimeout, err)
	default:
		return err
	}
}
