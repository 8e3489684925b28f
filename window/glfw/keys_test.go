// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glfw

import (
	"testing"

	glfw3 "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gpuwindow/window"
)

func TestConvertKey(t *testing.T) {
	tests := []struct {
		in   glfw3.Key
		want gpucontext.Key
	}{
		{glfw3.KeyQ, gpucontext.KeyQ},
		{glfw3.Key7, gpucontext.Key7},
		{glfw3.KeySpace, gpucontext.KeySpace},
		{glfw3.KeyEscape, gpucontext.KeyEscape},
		{glfw3.KeyF25, gpucontext.KeyUnknown},
	}
	for _, tt := range tests {
		if got := convertKey(tt.in); got != tt.want {
			t.Errorf("convertKey(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConvertMods(t *testing.T) {
	got := convertMods(glfw3.ModControl | glfw3.ModShift)
	if want := gpucontext.ModControl | gpucontext.ModShift; got != want {
		t.Errorf("convertMods() = %v, want %v", got, want)
	}
	if got := convertMods(0); got != 0 {
		t.Errorf("convertMods(0) = %v, want 0", got)
	}
}

func TestConvertButton(t *testing.T) {
	tests := []struct {
		in   glfw3.MouseButton
		want window.MouseButton
	}{
		{glfw3.MouseButtonLeft, window.MouseButtonLeft},
		{glfw3.MouseButtonRight, window.MouseButtonRight},
		{glfw3.MouseButtonMiddle, window.MouseButtonMiddle},
		{glfw3.MouseButton4, window.MouseButtonX1},
		{glfw3.MouseButton5, window.MouseButtonX2},
		{glfw3.MouseButton8, window.MouseButtonNone},
	}
	for _, tt := range tests {
		if got := convertButton(tt.in); got != tt.want {
			t.Errorf("convertButton(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStandardCursor(t *testing.T) {
	if got := standardCursor(window.CursorArrow); got != glfw3.ArrowCursor {
		t.Errorf("standardCursor(arrow) = %v", got)
	}
	if got := standardCursor(window.CursorPointingHand); got != glfw3.HandCursor {
		t.Errorf("standardCursor(hand) = %v", got)
	}
}

func TestConfigDefaults(t *testing.T) {
	got := Config{}.withDefaults()
	if got.Title != "gpuwindow" || got.Width != 800 || got.Height != 600 {
		t.Errorf("withDefaults() = %+v", got)
	}
	got = Config{Title: "demo", Width: 320, Height: 200}.withDefaults()
	if got.Title != "demo" || got.Width != 320 || got.Height != 200 {
		t.Errorf("withDefaults() overrode explicit values: %+v", got)
	}
}
