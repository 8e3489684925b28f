// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package native implements the backend contract in pure Go on top of
// gogpu/wgpu/hal.
//
// Importing the package registers two backends:
//
//   - "vulkan" (priority 100) when the Vulkan HAL backend is compiled in
//   - "noop" (priority 0), a headless HAL backend that accepts every call
//
// Build with the nogpu tag to drop the HAL dependency entirely; the package
// then registers nothing.
//
// Usage:
//
//	import _ "github.com/gogpu/gpuwindow/backend/native"
package native
