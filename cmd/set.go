// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Photonbench

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/photonbench/uc2000/pkg/remote"
)

var setCmd = &cobra.Command{
	Use:   "set <setting> <value>",
	Short: "Set a single controller setting",
	Long: `Set one UC-2000 setting and transmit the corresponding REMOTE frame.

Settings and their values:
  pwm_freq          5, 10, 20 (kHz)
  gate_logic        up, down
  max_pwm           95, 99 (percent)
  lase_on_power_up  on, off
  mode              manual, anc, anv, man_closed, anv_closed
  lase              on, off
  percent           0.0 .. max_pwm, in 0.5 steps
  checksum          on, off (local framing mode, nothing is transmitted)`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	name, value := args[0], args[1]

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if err := applySetting(s, name, value); err != nil {
		return err
	}

	fmt.Printf("%s = %s\n", name, value)
	return nil
}

// applySetting parses and applies one name/value pair. Parse failures
// surface as remote.ErrInvalidValue so the caller sees the same error
// taxonomy as the codec.
func applySetting(s *session, name, value string) error {
	ctrl := s.ctrl

	switch name {
	case "checksum":
		// Local framing flag, not a REMOTE command.
		switch value {
		case "on", "true", "1":
			ctrl.SetChecksum(true)
		case "off", "false", "0":
			ctrl.SetChecksum(false)
		default:
			return fmt.Errorf("checksum must be on or off, got %q", value)
		}
		return nil

	case "pwm_freq":
		freq, err := strconv.Atoi(value)
		if err != nil {
			return &remote.InvalidValueError{Command: remote.CmdPWMFreq, Value: value}
		}
		return ctrl.SetPWMFreq(freq)

	case "gate_logic":
		pull, err := remote.ParseGateLogic(value)
		if err != nil {
			return err
		}
		return ctrl.SetGateLogic(pull)

	case "max_pwm":
		per, err := strconv.Atoi(value)
		if err != nil {
			return &remote.InvalidValueError{Command: remote.CmdMaxPWM, Value: value}
		}
		return ctrl.SetMaxPWM(per)

	case "lase_on_power_up":
		on, err := parseOnOff(remote.CmdLaseOnPowerUp, value)
		if err != nil {
			return err
		}
		return ctrl.SetLaseOnPowerUp(on)

	case "mode":
		mode, err := remote.ParseMode(value)
		if err != nil {
			return err
		}
		return ctrl.SetMode(mode)

	case "lase":
		on, err := parseOnOff(remote.CmdLase, value)
		if err != nil {
			return err
		}
		return ctrl.SetLase(on)

	case "percent":
		per, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return &remote.InvalidValueError{Command: remote.CmdPercent, Value: value}
		}
		return ctrl.SetPercent(per)
	}

	return &remote.UnknownCommandError{Name: name}
}

func parseOnOff(cmd remote.Command, value string) (bool, error) {
	switch value {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, &remote.InvalidValueError{Command: cmd, Value: value}
}
