// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"context"
	"fmt"

	"github.com/gogpu/gpuwindow"
	"github.com/gogpu/gpuwindow/backend"
	"github.com/gogpu/gpuwindow/window"
)

// Start runs Initialize on its own goroutine and stores the result in slot.
//
// The returned channel receives exactly one value, nil on success, and is
// then closed. Window callbacks may run while initialization is pending;
// they observe an empty slot until it completes. If the slot was closed
// in the meantime, the new State is destroyed and the error wraps
// ErrSlotClosed.
func Start(ctx context.Context, inst backend.Instance, win window.Handle, slot *Slot, opts ...Option) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- initializeInto(ctx, inst, win, slot, opts...)
	}()
	return done
}

func initializeInto(ctx context.Context, inst backend.Instance, win window.Handle, slot *Slot, opts ...Option) error {
	s, err := Initialize(ctx, inst, win, opts...)
	if err != nil {
		gpuwindow.Logger().Error("surface: initialization failed", "err", err)
		return err
	}
	if err := slot.Populate(s); err != nil {
		s.Destroy()
		return fmt.Errorf("surface: initialize: %w", err)
	}
	gpuwindow.Logger().Debug("surface: slot populated")
	return nil
}
