// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/gpuwindow.yaml
var defaultYAML []byte

// FileName is the name of the configuration file in the user and working
// directories.
const FileName = "gpuwindow.yaml"

// Load reads the configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/gpuwindow/gpuwindow.yaml ->
// ./gpuwindow.yaml -> embedded default.
//
// Only an explicit customPath that cannot be read or parsed is an error;
// unreadable files elsewhere in the search order are skipped. Fields
// missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if p := userConfigPath(); p != "" {
		if data, err := os.ReadFile(p); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(FileName); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// parse decodes data over the defaults.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path of the user config file, or empty if
// no config directory is available.
func userConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gpuwindow", FileName)
}
