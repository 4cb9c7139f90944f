// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Photonbench

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var laseCmd = &cobra.Command{
	Use:   "lase on|off",
	Short: "Turn the command signal on or off",
	Long: `Turn the PWM command signal on or off.

With the signal off the controller still supplies the tickle pulse that
holds the laser just below lasing threshold, so switching back on is
immediate.`,
	Args: cobra.ExactArgs(1),
	RunE: runLase,
}

func init() {
	rootCmd.AddCommand(laseCmd)
}

func runLase(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if err := applySetting(s, "lase", args[0]); err != nil {
		return err
	}

	fmt.Printf("lase %s\n", args[0])
	return nil
}
