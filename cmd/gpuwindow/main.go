// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// gpuwindow opens a window and clears it on the GPU every frame.
//
// Usage:
//
//	gpuwindow                 - Open the window
//	gpuwindow backends        - List registered GPU backends
//
// Flags:
//
//	--config <path>     - Configuration file (default: search order, then built-in)
//	--backend <name>    - GPU backend (default: highest priority available)
//	--width, --height   - Initial window size in screen coordinates
//	--title <text>      - Window title
//	--log-level <lvl>   - debug, info, warn or error
//
// Hotkeys: Ctrl+Q quits, Ctrl+O and Ctrl+S open the file dialogs
// (Cmd on macOS).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the wgpu HAL backends.
	_ "github.com/gogpu/gpuwindow/backend/native"
)

var (
	flagConfig   string
	flagBackend  string
	flagWidth    int
	flagHeight   int
	flagTitle    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gpuwindow",
	Short: "Open a GPU-rendered window",
	Long: `gpuwindow binds a GPU surface to a native window, keeps it sized to the
window and clears it on every repaint.

Examples:
  gpuwindow
  gpuwindow --width 1024 --height 768 --log-level debug
  gpuwindow --backend noop
  gpuwindow backends`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWindow,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Configuration file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&flagBackend, "backend", "", "GPU backend name (see 'gpuwindow backends')")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "Initial window width")
	rootCmd.Flags().IntVar(&flagHeight, "height", 0, "Initial window height")
	rootCmd.Flags().StringVar(&flagTitle, "title", "", "Window title")

	rootCmd.AddCommand(backendsCmd)
}
