// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package native

import (
	"fmt"

	"github.com/gogpu/gpuwindow"
	"github.com/gogpu/gpuwindow/backend"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// Backend names registered by this package.
const (
	BackendVulkan = "vulkan"
	BackendNoop   = "noop"
)

// halAPI is the part of a HAL backend this package needs. Both the
// registered HAL backends and noop.API satisfy it.
type halAPI interface {
	CreateInstance(desc *hal.InstanceDescriptor) (hal.Instance, error)
}

// Backend is a backend.Backend over one HAL API.
type Backend struct {
	name string
	api  halAPI
}

var _ backend.Backend = (*Backend)(nil)

func init() {
	if api, ok := hal.GetBackend(gputypes.BackendVulkan); ok {
		backend.Register(BackendVulkan, 100, func() backend.Backend {
			return &Backend{name: BackendVulkan, api: api}
		})
	}
	backend.Register(BackendNoop, 0, func() backend.Backend {
		return &Backend{name: BackendNoop, api: noop.API{}}
	})
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return b.name }

// CreateInstance creates a HAL instance.
func (b *Backend) CreateInstance() (backend.Instance, error) {
	raw, err := b.api.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("native: create %s instance: %w", b.name, err)
	}
	gpuwindow.Logger().Debug("native: instance created", "backend", b.name)
	return &Instance{raw: raw, backend: b.name}, nil
}
