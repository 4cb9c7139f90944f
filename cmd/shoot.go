// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Photonbench

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/photonbench/uc2000/pkg/uc2000"
)

var (
	shootPercent float64
	shootTimeMs  float64
	shootCount   int
)

var shootCmd = &cobra.Command{
	Use:   "shoot",
	Short: "Fire a sequence of timed laser shots",
	Long: `Fire a sequence of timed laser shots at a fixed duty cycle.

The duty cycle is bracketed LOW, HIGH, LOW around each shot with the
command signal held on; the pause between shots equals the shot time.
Shot time is clamped into [50, 10000] ms. The shutdown sequence (0%,
lase off) runs even if the shot loop fails.`,
	Args: cobra.NoArgs,
	RunE: runShoot,
}

func init() {
	shootCmd.Flags().Float64Var(&shootPercent, "percent", 10, "Duty cycle percent during each shot")
	shootCmd.Flags().Float64Var(&shootTimeMs, "time", 100, "Shot time in milliseconds")
	shootCmd.Flags().IntVarP(&shootCount, "count", "n", 1, "Number of shots")
	rootCmd.AddCommand(shootCmd)
}

func runShoot(cmd *cobra.Command, args []string) error {
	if shootCount < 1 {
		return fmt.Errorf("count must be at least 1, got %d", shootCount)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	var metrics uc2000.Metrics
	err = s.ctrl.Session(func(c *uc2000.Controller) error {
		var serr error
		metrics, serr = c.Shoot(shootPercent, shootTimeMs, shootCount)
		return serr
	})
	if err != nil {
		return err
	}

	fmt.Printf("%d shots at %.1f%%: elapsed %s, mean interval %s\n",
		shootCount, shootPercent,
		metrics.Elapsed.Round(time.Millisecond),
		metrics.MeanInterval.Round(time.Microsecond))
	return nil
}
