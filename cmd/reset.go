// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Photonbench

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/photonbench/uc2000/pkg/uc2000"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset every setting to its factory default",
	Long: `Reset the controller to factory defaults and transmit every default
as a REMOTE frame: 20 kHz PWM, gate pull-up, 95% max PWM, lase on
power-up off, manual mode, lase off, 0% duty cycle.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	// openSession attaches the transport after the defaults are seeded, so
	// an explicit Reset here puts all seven frames on the wire.
	if err := s.ctrl.Reset(); err != nil {
		return err
	}

	fmt.Print(uc2000.FormatSettings(s.ctrl))
	return nil
}
