// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Photonbench

package remote

import "fmt"

// Command identifies one of the eight REMOTE commands. The set is closed;
// encoding switches exhaustively over it rather than looking names up in a
// table at runtime.
type Command int

// REMOTE commands
const (
	CmdPWMFreq Command = iota
	CmdGateLogic
	CmdMaxPWM
	CmdLaseOnPowerUp
	CmdMode
	CmdLase
	CmdPercent
	CmdStatusRequest
)

// commandNames maps commands to their wire-protocol setting names.
var commandNames = [...]string{
	CmdPWMFreq:       "pwm_freq",
	CmdGateLogic:     "gate_logic",
	CmdMaxPWM:        "max_pwm",
	CmdLaseOnPowerUp: "lase_on_power_up",
	CmdMode:          "mode",
	CmdLase:          "lase",
	CmdPercent:       "percent",
	CmdStatusRequest: "status_request",
}

// String returns the command's setting name as used in the UC-2000 manual.
func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return fmt.Sprintf("command(%d)", int(c))
	}
	return commandNames[c]
}

// ParseCommand converts a setting name into a Command.
func ParseCommand(name string) (Command, error) {
	for cmd, n := range commandNames {
		if n == name {
			return Command(cmd), nil
		}
	}
	return 0, &UnknownCommandError{Name: name}
}

// GateLogic selects the pull direction of the controller's gate input.
// Pull-up fires the laser without a gate signal; pull-down requires the
// gate signal to be HIGH.
type GateLogic string

// Gate logic values
const (
	GateUp   GateLogic = "up"
	GateDown GateLogic = "down"
)

// Mode selects the UC-2000 operating mode.
type Mode string

// Operating modes. Manual adjusts power by PWM duty cycle; ANC follows an
// external 4-20mA current loop; ANV follows an external 0-10V source; the
// closed variants regulate against the Closed Loop Stabilization Kit.
const (
	ModeManual    Mode = "manual"
	ModeANC       Mode = "anc"
	ModeANV       Mode = "anv"
	ModeManClosed Mode = "man_closed"
	ModeANVClosed Mode = "anv_closed"
)

// ParseGateLogic converts a string into a GateLogic value.
func ParseGateLogic(s string) (GateLogic, error) {
	switch GateLogic(s) {
	case GateUp, GateDown:
		return GateLogic(s), nil
	}
	return "", &InvalidValueError{Command: CmdGateLogic, Value: s}
}

// ParseMode converts a string into a Mode value.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeManual, ModeANC, ModeANV, ModeManClosed, ModeANVClosed:
		return Mode(s), nil
	}
	return "", &InvalidValueError{Command: CmdMode, Value: s}
}
