// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Photonbench

package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/photonbench/uc2000/internal/capture"
)

var controlCmd = &cobra.Command{
	Use:   "control",
	Short: "Interactive TUI for driving the laser",
	Long: `Drive the UC-2000 from an interactive terminal UI.

The left panel shows the current controller state and estimated output
power; the right panel logs every frame put on the wire. Keys:

  up/down       duty cycle +/- 0.5%
  pgup/pgdn     duty cycle +/- 5%
  enter         apply the typed duty cycle percent
  l             toggle lase on/off
  m             cycle operating mode
  f             cycle PWM frequency (5/10/20 kHz)
  g             toggle gate logic
  x             toggle max PWM (95/99)
  r             reset to factory defaults
  q             standby (0%, lase off) and quit

Supports both serial and WebSocket connections.`,
	Args: cobra.NoArgs,
	RunE: runControl,
}

func init() {
	rootCmd.AddCommand(controlCmd)
}

func runControl(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	m := initialControlModel(s.ctrl, s.connInfo)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Mirror every transmitted frame into the TUI's event log, on top of
	// the optional capture hook. Send happens on a goroutine because the
	// hook fires from within Update.
	s.transport.OnTransmit(func(frame []byte) {
		if s.capw != nil {
			_ = s.capw.Record(capture.DirTransmit, frame)
		}
		frame = append([]byte(nil), frame...)
		go p.Send(frameSentMsg{frame: frame})
	})

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %v", err)
	}

	// Leave the laser safe regardless of how the TUI exited.
	if err := s.ctrl.Standby(); err != nil {
		return err
	}

	if fm, ok := final.(controlModel); ok && fm.fatalErr != nil {
		return fm.fatalErr
	}
	return nil
}
