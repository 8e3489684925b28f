// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/gpuwindow/backend"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List registered GPU backends",
	Long: `List registered GPU backends in priority order. The first backend
that can be created is used when --backend is not given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return listBackends(cmd.OutOrStdout(), backend.Available(), backend.Get)
	},
}

func listBackends(w io.Writer, names []string, get func(string) (backend.Backend, error)) error {
	if len(names) == 0 {
		return fmt.Errorf("no GPU backends registered")
	}
	chosen := false
	for _, name := range names {
		status := "unavailable"
		if _, err := get(name); err == nil {
			status = "available"
			if !chosen {
				status = "available, default"
				chosen = true
			}
		}
		if _, err := fmt.Fprintf(w, "%-10s %s\n", name, status); err != nil {
			return err
		}
	}
	return nil
}
