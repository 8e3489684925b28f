// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gpuwindow"
	"github.com/gogpu/gpuwindow/backend"
	"github.com/gogpu/gpuwindow/bridge"
	"github.com/gogpu/gpuwindow/internal/config"
	"github.com/gogpu/gpuwindow/window"
)

// loadConfig reads the configuration file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagBackend != "" {
		cfg.Surface.Backend = flagBackend
	}
	if flagWidth > 0 {
		cfg.Window.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Window.Height = flagHeight
	}
	if flagTitle != "" {
		cfg.Window.Title = flagTitle
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// setupLogging routes the library logger to a charmbracelet handler on w.
func setupLogging(w io.Writer, cfg config.LogConfig) error {
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "gpuwindow",
		Level:           log.Level(level),
	})
	gpuwindow.SetLogger(slog.New(handler))
	return nil
}

// selectBackend returns the named backend, or the highest-priority
// available one when name is empty.
func selectBackend(name string) (backend.Backend, error) {
	if name == "" {
		b, err := backend.Default()
		if err != nil {
			return nil, fmt.Errorf("%w (registered: %v)", err, backend.Available())
		}
		return b, nil
	}
	return backend.Get(name)
}

// hotkeys returns the menu accelerators: Ctrl (Cmd on macOS) with Q, O
// and S.
func hotkeys() []window.Hotkey {
	mod := gpucontext.ModControl
	if runtime.GOOS == "darwin" {
		mod = gpucontext.ModSuper
	}
	return []window.Hotkey{
		{Key: gpucontext.KeyQ, Mods: mod, Command: bridge.CommandExit},
		{Key: gpucontext.KeyO, Mods: mod, Command: bridge.CommandOpen},
		{Key: gpucontext.KeyS, Mods: mod, Command: bridge.CommandSave},
	}
}
