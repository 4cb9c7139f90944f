// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Photonbench

package remote

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is.
var (
	// ErrUnknownCommand reports a command tag outside the eight REMOTE
	// commands.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrInvalidValue reports a value outside a command's fixed domain, or
	// a percent value that is not numeric.
	ErrInvalidValue = errors.New("invalid value")
)

// UnknownCommandError is returned when a command tag is not recognised.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("command %q is not recognised by the UC-2000", e.Name)
}

func (e *UnknownCommandError) Unwrap() error { return ErrUnknownCommand }

// InvalidValueError is returned when a value misses a command's fixed
// value-to-byte table, or when a percent value cannot be used as a number.
type InvalidValueError struct {
	Command Command
	Value   any
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("value %v is not valid for %s", e.Value, e.Command)
}

func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }

// Message is a single REMOTE command frame before encoding: a command, its
// value, and whether the trailing checksum byte is appended. Messages are
// immutable values; the byte sequence is derived, never stored.
type Message struct {
	Command  Command
	Value    any
	Checksum bool
}

// Bytes encodes the message to its wire byte sequence.
func (m Message) Bytes() ([]byte, error) {
	return Encode(m.Command, m.Value, m.Checksum)
}

// Encode maps a (command, value, checksum) triple to the exact outgoing
// byte sequence. There are three frame layouts:
//
//	Setup/Mode/Lase:  STX <command> [<checksum>]
//	Percent (SET):    STX 0x7F <2*percent> [<checksum>]
//	Status request:   0x7E
//
// For the setup, mode, and lase families the checksum is the one's
// complement of the command byte. For the percent command the data byte is
// the percent doubled (the wire unit is half-percent steps) but the
// checksum is computed over the undoubled, truncated percent:
// ^AddNoCarry(0x7F, int(value)). The asymmetry matches the device firmware
// and must not be "corrected". A status request is the single byte 0x7E
// with no start byte and no checksum, regardless of the checksum flag.
//
// Encoding is pure and deterministic. Unknown commands return an
// UnknownCommandError; values outside a command's domain return an
// InvalidValueError.
func Encode(cmd Command, value any, checksum bool) ([]byte, error) {
	switch cmd {
	case CmdPWMFreq, CmdGateLogic, CmdMaxPWM, CmdLaseOnPowerUp, CmdMode, CmdLase:
		cb, err := commandByte(cmd, value)
		if err != nil {
			return nil, err
		}
		frame := []byte{StartByte, cb}
		if checksum {
			frame = append(frame, ^cb)
		}
		return frame, nil

	case CmdPercent:
		v, ok := toFloat(value)
		if !ok {
			return nil, &InvalidValueError{Command: cmd, Value: value}
		}
		frame := []byte{StartByte, SetPercentByte, byte(int(2 * v))}
		if checksum {
			frame = append(frame, byte(^AddNoCarry(SetPercentByte, int(v))&0xFF))
		}
		return frame, nil

	case CmdStatusRequest:
		return []byte{StatusRequestByte}, nil
	}
	return nil, &UnknownCommandError{Name: cmd.String()}
}

// commandByte looks a value up in its command's fixed table.
func commandByte(cmd Command, value any) (byte, error) {
	switch cmd {
	case CmdPWMFreq:
		if v, ok := toInt(value); ok {
			if b, ok := pwmFreqBytes[v]; ok {
				return b, nil
			}
		}
	case CmdGateLogic:
		if v, ok := value.(GateLogic); ok {
			if b, ok := gateLogicBytes[v]; ok {
				return b, nil
			}
		} else if s, ok := value.(string); ok {
			if b, ok := gateLogicBytes[GateLogic(s)]; ok {
				return b, nil
			}
		}
	case CmdMaxPWM:
		if v, ok := toInt(value); ok {
			if b, ok := maxPWMBytes[v]; ok {
				return b, nil
			}
		}
	case CmdLaseOnPowerUp:
		if v, ok := value.(bool); ok {
			return laseOnPowerUpBytes[v], nil
		}
	case CmdMode:
		if v, ok := value.(Mode); ok {
			if b, ok := modeBytes[v]; ok {
				return b, nil
			}
		} else if s, ok := value.(string); ok {
			if b, ok := modeBytes[Mode(s)]; ok {
				return b, nil
			}
		}
	case CmdLase:
		if v, ok := value.(bool); ok {
			return laseBytes[v], nil
		}
	}
	return 0, &InvalidValueError{Command: cmd, Value: value}
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint8:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
