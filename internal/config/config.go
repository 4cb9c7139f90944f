// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Photonbench

// Package config loads CLI defaults from a YAML file so connection details
// do not need repeating on every invocation. Flags always win over file
// values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the user's home directory when no
// --config flag is given.
const DefaultFileName = ".uc2000.yaml"

// Config holds the file-backed defaults for the CLI.
type Config struct {
	// Port is the serial device, e.g. /dev/ttyUSB0.
	Port string `yaml:"port"`
	// Baud is the serial baud rate. The UC-2000 speaks 9600 8N1.
	Baud int `yaml:"baud"`
	// URL is a WebSocket bridge endpoint (ws:// or wss://), used instead
	// of a local serial port.
	URL string `yaml:"url"`
	// Username for HTTP basic auth on the WebSocket bridge.
	Username string `yaml:"username"`
	// Model is the laser model power rating in watts (25 or 50).
	Model int `yaml:"model"`
	// Checksum controls whether frames carry the trailing checksum byte.
	// Nil means the built-in default (enabled).
	Checksum *bool `yaml:"checksum"`
	// LogLevel overrides the UC2000_LOG_LEVEL environment variable.
	LogLevel string `yaml:"log_level"`
	// Capture is a file path for the CBOR frame-capture log.
	Capture string `yaml:"capture"`
}

// Default returns the built-in defaults used when no file exists.
func Default() Config {
	return Config{
		Baud:  9600,
		Model: 25,
	}
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file is not an error; built-in defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, DefaultFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Baud == 0 {
		cfg.Baud = 9600
	}
	if cfg.Model == 0 {
		cfg.Model = 25
	}
	return cfg, nil
}
