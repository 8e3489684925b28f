// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bridge

import (
	"github.com/gogpu/gpuwindow"
	"github.com/gogpu/gpuwindow/window"
)

// Menu and hotkey command identifiers.
const (
	CommandExit uint32 = 0x100
	CommandOpen uint32 = 0x101
	CommandSave uint32 = 0x102
)

// FileSpecGo matches Go sources and module files.
var FileSpecGo = window.FileSpec{Name: "Go Files", Extensions: []string{"go", "mod"}}

// DialogOptions are the options of the open and save dialogs.
func DialogOptions() window.FileDialogOptions {
	return window.FileDialogOptions{
		ShowHidden:   true,
		AllowedTypes: []window.FileSpec{FileSpecGo, window.FileSpecText, window.FileSpecJPG},
	}
}

// Command implements window.Handler.
func (b *Bridge) Command(id uint32) {
	if !b.connected() {
		return
	}
	switch id {
	case CommandExit:
		b.phase.Store(int32(PhaseClosing))
		b.win.Close()
		if b.host != nil {
			b.host.Quit()
		}
	case CommandOpen:
		if d, ok := b.win.(window.FileDialogs); ok {
			d.OpenFile(DialogOptions())
		} else {
			gpuwindow.Logger().Debug("bridge: window has no file dialogs", "command", id)
		}
	case CommandSave:
		if d, ok := b.win.(window.FileDialogs); ok {
			d.SaveAs(DialogOptions())
		} else {
			gpuwindow.Logger().Debug("bridge: window has no file dialogs", "command", id)
		}
	default:
		gpuwindow.Logger().Info("bridge: unhandled command", "command", id)
	}
}

// OpenFile implements window.Handler.
func (b *Bridge) OpenFile(file *window.FileInfo) {
	logFileResult("open", file)
}

// SaveAs implements window.Handler.
func (b *Bridge) SaveAs(file *window.FileInfo) {
	logFileResult("save as", file)
}

func logFileResult(op string, file *window.FileInfo) {
	if file == nil {
		gpuwindow.Logger().Info("bridge: file dialog canceled", "op", op)
		return
	}
	gpuwindow.Logger().Info("bridge: file chosen", "op", op, "path", file.Path, "format", file.Format)
}
