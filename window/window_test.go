// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package window

import (
	"testing"

	"github.com/gogpu/gpucontext"
)

func TestMouseButtonString(t *testing.T) {
	tests := []struct {
		b    MouseButton
		want string
	}{
		{MouseButtonNone, "none"},
		{MouseButtonLeft, "left"},
		{MouseButtonRight, "right"},
		{MouseButtonMiddle, "middle"},
		{MouseButtonX1, "x1"},
		{MouseButtonX2, "x2"},
		{MouseButton(200), "none"},
	}
	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("MouseButton(%d).String() = %q, want %q", tt.b, got, tt.want)
		}
	}
}

// partialHandler overrides a single callback; the rest come from NopHandler.
type partialHandler struct {
	NopHandler
	paints int
}

func (h *partialHandler) Paint(Region) { h.paints++ }

func TestNopHandlerEmbedding(t *testing.T) {
	h := &partialHandler{}
	var _ Handler = h

	h.Connect(nil)
	h.Size(Size{Width: 10, Height: 10})
	h.PreparePaint()
	h.Paint(Region{})
	if h.KeyDown(KeyEvent{}) {
		t.Error("NopHandler.KeyDown() = true, want false")
	}
	h.Destroy()

	if h.paints != 1 {
		t.Errorf("paints = %d, want 1", h.paints)
	}
}

func TestHotkeyMatches(t *testing.T) {
	hk := Hotkey{Key: gpucontext.KeySpace, Mods: gpucontext.ModControl, Command: 1}

	tests := []struct {
		name string
		ev   KeyEvent
		want bool
	}{
		{"exact", KeyEvent{Key: gpucontext.KeySpace, Mods: gpucontext.ModControl}, true},
		{"repeat", KeyEvent{Key: gpucontext.KeySpace, Mods: gpucontext.ModControl, Repeat: true}, false},
		{"no modifier", KeyEvent{Key: gpucontext.KeySpace}, false},
		{"extra modifier", KeyEvent{Key: gpucontext.KeySpace, Mods: gpucontext.ModControl | gpucontext.ModShift}, false},
		{"other key", KeyEvent{Key: gpucontext.KeyEscape, Mods: gpucontext.ModControl}, false},
	}
	for _, tt := range tests {
		if got := hk.Matches(tt.ev); got != tt.want {
			t.Errorf("%s: Matches() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
