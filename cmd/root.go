// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Photonbench

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/photonbench/uc2000/internal/config"
	"github.com/photonbench/uc2000/internal/logging"
)

var (
	// Serial connection flags
	portName string
	baudRate int

	// WebSocket bridge flags
	wsURL         string
	wsUsername    string
	wsNoSSLVerify bool

	// Controller flags
	laserModel int
	noChecksum bool

	// Process flags
	configPath  string
	capturePath string
	logLevel    string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "uc2000",
	Short: "UC-2000 laser controller REMOTE driver",
	Long: `uc2000 - drive a SYNRAD UC-2000 laser power controller in REMOTE mode.

Commands are encoded as REMOTE protocol frames and sent over a point-to-point
serial link (9600 8N1) or a WebSocket serial bridge.

Connection modes:
  Serial:    --port /dev/ttyUSB0 [--baud 9600]
  WebSocket: --url ws://host/path [--username user]

For WebSocket authentication, the password is read from the UC2000_PASSWORD
environment variable, or prompted interactively if not set. The --password
flag is intentionally not provided to avoid leaking credentials in shell history.

Defaults for every flag can be stored in ~/.uc2000.yaml.`,
	Version:           "1.0.0",
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", "", "Serial port device")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", 9600, "Baud rate (serial only)")

	rootCmd.PersistentFlags().StringVarP(&wsURL, "url", "u", "", "WebSocket bridge URL (ws:// or wss://)")
	rootCmd.PersistentFlags().StringVar(&wsUsername, "username", "", "Username for HTTP Basic auth")
	rootCmd.PersistentFlags().BoolVar(&wsNoSSLVerify, "no-ssl-verify", false, "Skip TLS certificate verification (wss:// only)")

	rootCmd.PersistentFlags().IntVar(&laserModel, "model", 25, "Laser model power rating in watts (25 or 50)")
	rootCmd.PersistentFlags().BoolVar(&noChecksum, "no-checksum", false, "Send frames without the trailing checksum byte")

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.uc2000.yaml)")
	rootCmd.PersistentFlags().StringVar(&capturePath, "capture", "", "Append transmitted frames to a CBOR capture file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// setup loads the config file and initializes logging. Flags set on the
// command line win over file values.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("port") && cfg.Port != "" {
		portName = cfg.Port
	}
	if !flags.Changed("baud") && cfg.Baud != 0 {
		baudRate = cfg.Baud
	}
	if !flags.Changed("url") && cfg.URL != "" {
		wsURL = cfg.URL
	}
	if !flags.Changed("username") && cfg.Username != "" {
		wsUsername = cfg.Username
	}
	if !flags.Changed("model") && cfg.Model != 0 {
		laserModel = cfg.Model
	}
	if !flags.Changed("no-checksum") && cfg.Checksum != nil {
		noChecksum = !*cfg.Checksum
	}
	if !flags.Changed("capture") && cfg.Capture != "" {
		capturePath = cfg.Capture
	}
	if !flags.Changed("log-level") && cfg.LogLevel != "" {
		logLevel = cfg.LogLevel
	}

	return logging.Initialize(logLevel)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
