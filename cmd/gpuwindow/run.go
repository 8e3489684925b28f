// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/gpuwindow"
	"github.com/gogpu/gpuwindow/backend"
	"github.com/gogpu/gpuwindow/bridge"
	"github.com/gogpu/gpuwindow/surface"
	"github.com/gogpu/gpuwindow/window/glfw"
)

func runWindow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := setupLogging(cmd.ErrOrStderr(), cfg.Log); err != nil {
		return err
	}
	log := gpuwindow.Logger()

	presentMode, err := backend.ParsePresentMode(cfg.Surface.PresentMode)
	if err != nil {
		return err
	}
	be, err := selectBackend(cfg.Surface.Backend)
	if err != nil {
		return err
	}
	inst, err := be.CreateInstance()
	if err != nil {
		return fmt.Errorf("create %s instance: %w", be.Name(), err)
	}
	defer inst.Destroy()
	log.Info("backend selected", "backend", be.Name())

	app, err := glfw.NewApplication()
	if err != nil {
		return err
	}
	defer app.Terminate()

	slot := surface.NewSlot()
	defer slot.Close()

	br := bridge.New(slot, app)
	win, err := app.NewWindow(glfw.Config{
		Title:   cfg.Window.Title,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		Hotkeys: hotkeys(),
	}, br)
	if err != nil {
		return err
	}
	// The surface must not outlive the native window.
	win.OnDestroy(slot.Close)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := <-surface.Start(gctx, inst, win, slot,
			surface.WithClearColor(cfg.Surface.Color()),
			surface.WithPresentMode(presentMode))
		if err != nil {
			// Initialization failure is fatal to the window.
			app.Quit()
		}
		return err
	})

	// The event loop owns the main thread until the window is gone.
	runErr := app.Run(gctx)
	stop()
	initErr := g.Wait()

	log.Info("window closed", "stats", br.Stats())
	switch {
	case initErr != nil && gpuwindow.IsFatal(initErr):
		return fmt.Errorf("cannot show window: %w", initErr)
	case initErr != nil && !isShutdown(initErr):
		return initErr
	case runErr != nil && !isShutdown(runErr):
		return runErr
	}
	return nil
}

// isShutdown reports whether err only records that the window went away
// or the user interrupted before initialization finished.
func isShutdown(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, surface.ErrSlotClosed)
}
