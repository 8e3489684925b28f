// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package native

import (
	"github.com/gogpu/gpuwindow/backend"
	"github.com/gogpu/wgpu/hal"
)

func toHALPresentMode(m backend.PresentMode) hal.PresentMode {
	switch m {
	case backend.PresentModeFifoRelaxed:
		return hal.PresentModeFifoRelaxed
	case backend.PresentModeMailbox:
		return hal.PresentModeMailbox
	case backend.PresentModeImmediate:
		return hal.PresentModeImmediate
	default:
		return hal.PresentModeFifo
	}
}

// toHALAlphaMode resolves AlphaModeAuto against the modes the surface
// supports. When capabilities are unknown, supported is empty and the
// driver resolves hal.CompositeAlphaModeAuto itself.
func toHALAlphaMode(m backend.AlphaMode, supported []hal.CompositeAlphaMode) hal.CompositeAlphaMode {
	switch m {
	case backend.AlphaModeOpaque:
		return hal.CompositeAlphaModeOpaque
	case backend.AlphaModePreMultiplied:
		return hal.CompositeAlphaModePremultiplied
	case backend.AlphaModePostMultiplied:
		return hal.CompositeAlphaModeUnpremultiplied
	case backend.AlphaModeInherit:
		return hal.CompositeAlphaModeInherit
	}
	if len(supported) > 0 {
		return supported[0]
	}
	return hal.CompositeAlphaModeAuto
}

// toHALConfig converts a surface configuration. Auto alpha is resolved with
// the capabilities reported for the surface, if any.
func toHALConfig(cfg *backend.SurfaceConfiguration, caps *hal.SurfaceCapabilities) *hal.SurfaceConfiguration {
	var alphaModes []hal.CompositeAlphaMode
	if caps != nil {
		alphaModes = caps.AlphaModes
	}
	return &hal.SurfaceConfiguration{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Format:      cfg.Format,
		Usage:       cfg.Usage,
		PresentMode: toHALPresentMode(cfg.PresentMode),
		AlphaMode:   toHALAlphaMode(cfg.AlphaMode, alphaModes),
	}
}
