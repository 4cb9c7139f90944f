// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Photonbench

package uc2000

import (
	"fmt"
	"strings"

	"github.com/photonbench/uc2000/pkg/remote"
)

// FormatFrame renders an encoded frame as hex with a short annotation.
func FormatFrame(frame []byte) string {
	hex := hexBytes(frame)
	switch {
	case len(frame) == 1 && frame[0] == remote.StatusRequestByte:
		return fmt.Sprintf("%s  (status request)", hex)
	case len(frame) >= 3 && frame[0] == remote.StartByte && frame[1] == remote.SetPercentByte:
		return fmt.Sprintf("%s  (set percent %.1f%%)", hex, float64(frame[2])/2)
	case len(frame) >= 2 && frame[0] == remote.StartByte:
		return fmt.Sprintf("%s  (command 0x%02X)", hex, frame[1])
	default:
		return hex
	}
}

// FormatSettings renders the controller's current settings as a
// human-readable block.
func FormatSettings(c *Controller) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Model:            %d W\n", c.Model())
	fmt.Fprintf(&b, "PWM frequency:    %d kHz\n", c.PWMFreq().Value())
	fmt.Fprintf(&b, "Gate logic:       pull-%s\n", c.GateLogic().Value())
	fmt.Fprintf(&b, "Max PWM:          %d%%\n", c.MaxPWM().Value())
	fmt.Fprintf(&b, "Lase on power-up: %s\n", onOff(c.LaseOnPowerUp().Value()))
	fmt.Fprintf(&b, "Mode:             %s\n", c.Mode().Value())
	fmt.Fprintf(&b, "Lase:             %s\n", onOff(c.Lase().Value()))
	fmt.Fprintf(&b, "Percent:          %.1f%%\n", c.Percent().Value())
	fmt.Fprintf(&b, "Checksum frames:  %s\n", onOff(c.Checksum().Value()))
	fmt.Fprintf(&b, "Power:            %.2f W (max %.2f W)\n", c.Power(), c.MaxPower())
	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func hexBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}
