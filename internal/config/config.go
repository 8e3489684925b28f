// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads the gpuwindow configuration file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpuwindow/backend"
)

// Config is the gpuwindow configuration.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Surface SurfaceConfig `yaml:"surface"`
	Log     LogConfig     `yaml:"log"`
}

// WindowConfig holds the initial window geometry.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// SurfaceConfig holds GPU surface settings.
type SurfaceConfig struct {
	ClearColor  [4]float64 `yaml:"clear_color"`
	PresentMode string     `yaml:"present_mode"`
	Backend     string     `yaml:"backend"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{Title: "gpuwindow", Width: 800, Height: 600},
		Surface: SurfaceConfig{
			ClearColor:  [4]float64{0.1, 0.2, 0.3, 1.0},
			PresentMode: "fifo",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	for i, v := range c.Surface.ClearColor {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("clear_color[%d] = %v outside [0, 1]", i, v))
		}
	}
	if _, err := backend.ParsePresentMode(c.Surface.PresentMode); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Color returns the surface clear color.
func (c SurfaceConfig) Color() gputypes.Color {
	v := c.ClearColor
	return gputypes.Color{R: v[0], G: v[1], B: v[2], A: v[3]}
}

// SlogLevel parses the level name.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.Level)
	}
}
