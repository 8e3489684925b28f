// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package backend defines the GPU collaborator used to present frames to a
// window: instance, adapter, device, queue, surface and the minimal command
// recording needed for a clear-and-present frame.
//
// # Backend Registration
//
// Implementations register themselves from init() functions:
//
//	func init() {
//	    backend.Register("vulkan", 100, func() backend.Backend { return newVulkan() })
//	}
//
// The pure Go implementation registers on import:
//
//	import _ "github.com/gogpu/gpuwindow/backend/native"
//
// # Backend Selection
//
// Use Default to get the highest priority backend, or Get to request one by
// name:
//
//	b, err := backend.Default()
//	b, err := backend.Get("noop")
//
// # Frame Protocol
//
// A frame is recorded against the types in this package as:
//
//	tex, err := surface.AcquireTexture()
//	view, err := device.CreateTextureView(tex)
//	enc, err := device.CreateCommandEncoder("frame")
//	pass, err := enc.BeginRenderPass(&backend.RenderPassDescriptor{...})
//	pass.End()
//	buf, err := enc.Finish()
//	err = queue.Submit(buf)
//	err = queue.Present(surface, tex)
package backend
