// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Photonbench

// Package remote provides a reference Go implementation of the UC-2000
// REMOTE serial protocol.
//
// REMOTE is the byte protocol spoken by the SYNRAD UC-2000 laser power
// controller when its front panel is switched to REMOTE mode. The host
// drives the controller over RS-232 (9600 8N1) with short command frames;
// this package provides command encoding, the optional checksum byte, and
// the fixed value-to-byte tables from the UC-2000 manual.
package remote

// Protocol framing bytes
const (
	// StartByte (STX) opens every frame except a status request.
	StartByte = 0x5B
	// StatusRequestByte is sent alone to ask the controller for its status.
	StatusRequestByte = 0x7E
	// SetPercentByte selects the PWM percent (or closed-loop SET) command.
	SetPercentByte = 0x7F
)

// Device responses. The controller answers every data-bearing frame with a
// single ACK or NAK byte; a status request is answered with an ACK followed
// by four status bytes and a checksum. Response decoding is not implemented
// by this package.
const (
	ACK = 0xAA
	NAK = 0x3F
)

// Fixed value-to-byte tables for the setup, mode, and lase command families.
// Note that pwmFreqBytes[20] and gateLogicBytes[GateUp] are both 0x7A; the
// collision is in the device firmware and is harmless because the two
// command families are encoded independently.
var (
	pwmFreqBytes = map[int]byte{
		5:  0x77,
		10: 0x78,
		20: 0x7A,
	}
	gateLogicBytes = map[GateLogic]byte{
		GateUp:   0x7A,
		GateDown: 0x7B,
	}
	maxPWMBytes = map[int]byte{
		95: 0x7C,
		99: 0x7D,
	}
	laseOnPowerUpBytes = map[bool]byte{
		true:  0x30,
		false: 0x31,
	}
	modeBytes = map[Mode]byte{
		ModeManual:    0x70,
		ModeANC:       0x71,
		ModeANV:       0x72,
		ModeManClosed: 0x73,
		ModeANVClosed: 0x74,
	}
	laseBytes = map[bool]byte{
		true:  0x75,
		false: 0x76,
	}
)
