// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/gogpu/gpuwindow/backend"
	"github.com/gogpu/gputypes"
)

// Option configures a State during Initialize.
//
// Example:
//
//	s, err := surface.Initialize(ctx, inst, win,
//	    surface.WithClearColor(gputypes.Color{R: 0, G: 0, B: 0, A: 1}),
//	    surface.WithPresentMode(backend.PresentModeMailbox))
type Option func(*options)

type options struct {
	clear       gputypes.Color
	presentMode backend.PresentMode
	label       string
}

// DefaultClearColor is the color every frame is cleared to unless
// WithClearColor says otherwise.
var DefaultClearColor = gputypes.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}

func defaultOptions() options {
	return options{
		clear:       DefaultClearColor,
		presentMode: backend.PresentModeFifo,
		label:       "window frame",
	}
}

// WithClearColor sets the color each frame is cleared to.
func WithClearColor(c gputypes.Color) Option {
	return func(o *options) {
		o.clear = c
	}
}

// WithPresentMode overrides the FIFO (vsync) presentation mode.
// The mode must be supported by the surface; FIFO always is.
func WithPresentMode(m backend.PresentMode) Option {
	return func(o *options) {
		o.presentMode = m
	}
}

// WithLabel sets the debug label of command encoders and render passes.
func WithLabel(label string) Option {
	return func(o *options) {
		if label != "" {
			o.label = label
		}
	}
}
