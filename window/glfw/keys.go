// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glfw

import (
	glfw3 "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gpuwindow/window"
)

var keyMap = map[glfw3.Key]gpucontext.Key{
	glfw3.KeyA: gpucontext.KeyA, glfw3.KeyB: gpucontext.KeyB, glfw3.KeyC: gpucontext.KeyC,
	glfw3.KeyD: gpucontext.KeyD, glfw3.KeyE: gpucontext.KeyE, glfw3.KeyF: gpucontext.KeyF,
	glfw3.KeyG: gpucontext.KeyG, glfw3.KeyH: gpucontext.KeyH, glfw3.KeyI: gpucontext.KeyI,
	glfw3.KeyJ: gpucontext.KeyJ, glfw3.KeyK: gpucontext.KeyK, glfw3.KeyL: gpucontext.KeyL,
	glfw3.KeyM: gpucontext.KeyM, glfw3.KeyN: gpucontext.KeyN, glfw3.KeyO: gpucontext.KeyO,
	glfw3.KeyP: gpucontext.KeyP, glfw3.KeyQ: gpucontext.KeyQ, glfw3.KeyR: gpucontext.KeyR,
	glfw3.KeyS: gpucontext.KeyS, glfw3.KeyT: gpucontext.KeyT, glfw3.KeyU: gpucontext.KeyU,
	glfw3.KeyV: gpucontext.KeyV, glfw3.KeyW: gpucontext.KeyW, glfw3.KeyX: gpucontext.KeyX,
	glfw3.KeyY: gpucontext.KeyY, glfw3.KeyZ: gpucontext.KeyZ,

	glfw3.Key0: gpucontext.Key0, glfw3.Key1: gpucontext.Key1, glfw3.Key2: gpucontext.Key2,
	glfw3.Key3: gpucontext.Key3, glfw3.Key4: gpucontext.Key4, glfw3.Key5: gpucontext.Key5,
	glfw3.Key6: gpucontext.Key6, glfw3.Key7: gpucontext.Key7, glfw3.Key8: gpucontext.Key8,
	glfw3.Key9: gpucontext.Key9,

	glfw3.KeySpace:     gpucontext.KeySpace,
	glfw3.KeyEscape:    gpucontext.KeyEscape,
	glfw3.KeyEnter:     gpucontext.KeyEnter,
	glfw3.KeyTab:       gpucontext.KeyTab,
	glfw3.KeyBackspace: gpucontext.KeyBackspace,
	glfw3.KeyLeft:      gpucontext.KeyLeft,
	glfw3.KeyRight:     gpucontext.KeyRight,
	glfw3.KeyUp:        gpucontext.KeyUp,
	glfw3.KeyDown:      gpucontext.KeyDown,
}

// convertKey maps a GLFW key; keys without an equivalent map to
// gpucontext.KeyUnknown.
func convertKey(k glfw3.Key) gpucontext.Key {
	if key, ok := keyMap[k]; ok {
		return key
	}
	return gpucontext.KeyUnknown
}

func convertMods(m glfw3.ModifierKey) gpucontext.Modifiers {
	var mods gpucontext.Modifiers
	if m&glfw3.ModShift != 0 {
		mods |= gpucontext.ModShift
	}
	if m&glfw3.ModControl != 0 {
		mods |= gpucontext.ModControl
	}
	if m&glfw3.ModAlt != 0 {
		mods |= gpucontext.ModAlt
	}
	if m&glfw3.ModSuper != 0 {
		mods |= gpucontext.ModSuper
	}
	return mods
}

func convertButton(b glfw3.MouseButton) window.MouseButton {
	switch b {
	case glfw3.MouseButtonLeft:
		return window.MouseButtonLeft
	case glfw3.MouseButtonRight:
		return window.MouseButtonRight
	case glfw3.MouseButtonMiddle:
		return window.MouseButtonMiddle
	case glfw3.MouseButton4:
		return window.MouseButtonX1
	case glfw3.MouseButton5:
		return window.MouseButtonX2
	default:
		return window.MouseButtonNone
	}
}
