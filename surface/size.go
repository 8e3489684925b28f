// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"math"

	"github.com/gogpu/gpuwindow"
	"github.com/gogpu/gpuwindow/window"
)

// Extent is a size in physical pixels.
type Extent struct {
	Width, Height uint32
}

func (e Extent) String() string {
	return fmt.Sprintf("%dx%d", e.Width, e.Height)
}

// PhysicalSize returns round(logical*scale) for both dimensions.
// It fails with gpuwindow.ErrInvalidGeometry unless the scale is positive
// and both results are in 1..MaxUint32.
func PhysicalSize(logical window.Size, scale float64) (Extent, error) {
	w := math.Round(logical.Width * scale)
	h := math.Round(logical.Height * scale)

	// NaN fails every comparison, so test for the valid range.
	valid := scale > 0 &&
		w >= 1 && w <= math.MaxUint32 &&
		h >= 1 && h <= math.MaxUint32
	if !valid {
		return Extent{}, fmt.Errorf("%w: logical %vx%v at scale %v",
			gpuwindow.ErrInvalidGeometry, logical.Width, logical.Height, scale)
	}
	return Extent{Width: uint32(w), Height: uint32(h)}, nil
}

// windowExtent computes the physical size of win and logs the inputs.
func windowExtent(win window.Handle) (Extent, error) {
	logical, scale := win.Geometry()
	ext, err := PhysicalSize(logical, scale)
	gpuwindow.Logger().Debug("surface: physical size",
		"logical_width", logical.Width, "logical_height", logical.Height,
		"scale", scale, "physical", ext)
	return ext, err
}
