// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package window

import (
	"github.com/gogpu/gpucontext"
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Key      gpucontext.Key
	Mods     gpucontext.Modifiers
	Repeat   bool
	Scancode int
}

// MouseButton identifies a mouse button.
type MouseButton uint8

// Mouse buttons.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonX1
	MouseButtonX2
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonX1:
		return "x1"
	case MouseButtonX2:
		return "x2"
	default:
		return "none"
	}
}

// MouseEvent is a pointer event. WheelDelta is only set for wheel events.
type MouseEvent struct {
	Pos        Point
	Button     MouseButton
	Mods       gpucontext.Modifiers
	WheelDelta Point
}

// Hotkey binds a key chord to a command delivered through
// Handler.Command.
type Hotkey struct {
	Key     gpucontext.Key
	Mods    gpucontext.Modifiers
	Command uint32
}

// Matches reports whether ev is a first press of the chord. Extra
// modifiers prevent a match.
func (h Hotkey) Matches(ev KeyEvent) bool {
	return !ev.Repeat && ev.Key == h.Key && ev.Mods == h.Mods
}
