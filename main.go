// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Photonbench
//
// uc2000 - SYNRAD UC-2000 laser controller REMOTE driver
//
// A CLI tool for driving a UC-2000 laser power controller over a serial
// link or a WebSocket serial bridge.

package main

import (
	"os"

	"github.com/photonbench/uc2000/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
