// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Photonbench

package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/photonbench/uc2000/pkg/remote"
	"github.com/photonbench/uc2000/pkg/uc2000"
)

const controlMaxLogEntries = 100

// Cycle orders for the enum settings.
var (
	freqCycle = []int{5, 10, 20}
	modeCycle = []remote.Mode{
		remote.ModeManual,
		remote.ModeANC,
		remote.ModeANV,
		remote.ModeManClosed,
		remote.ModeANVClosed,
	}
)

//////////////////////////////////////////////////////////////
// Types
//////////////////////////////////////////////////////////////

// controlModel is the Bubble Tea model for the control TUI
type controlModel struct {
	ctrl     *uc2000.Controller
	connInfo string

	percentInput textinput.Model

	eventLog []logEntry
	lastErr  string
	fatalErr error

	width    int
	height   int
	quitting bool
}

type logEntry struct {
	when    time.Time
	text    string
	isError bool
}

//////////////////////////////////////////////////////////////
// Messages
//////////////////////////////////////////////////////////////

type frameSentMsg struct {
	frame []byte
}

//////////////////////////////////////////////////////////////
// Model Initialization
//////////////////////////////////////////////////////////////

func initialControlModel(ctrl *uc2000.Controller, connInfo string) controlModel {
	ti := textinput.New()
	ti.Placeholder = "10.0"
	ti.CharLimit = 5
	ti.Width = 8
	ti.Focus()

	return controlModel{
		ctrl:         ctrl,
		connInfo:     connInfo,
		percentInput: ti,
		eventLog:     make([]logEntry, 0),
		width:        80,
		height:       24,
	}
}

//////////////////////////////////////////////////////////////
// Bubble Tea Interface
//////////////////////////////////////////////////////////////

func (m controlModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m controlModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case frameSentMsg:
		m.addLogEntry(uc2000.FormatFrame(msg.frame), false)
	}

	var cmd tea.Cmd
	m.percentInput, cmd = m.percentInput.Update(msg)
	return m, cmd
}

func (m controlModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up":
		m.apply(func(c *uc2000.Controller) error {
			return c.SetPercent(c.Percent().Value() + uc2000.PercentStep)
		})

	case "down":
		m.apply(func(c *uc2000.Controller) error {
			return c.SetPercent(c.Percent().Value() - uc2000.PercentStep)
		})

	case "pgup":
		m.apply(func(c *uc2000.Controller) error {
			return c.SetPercent(c.Percent().Value() + 5)
		})

	case "pgdown":
		m.apply(func(c *uc2000.Controller) error {
			return c.SetPercent(c.Percent().Value() - 5)
		})

	case "enter":
		value := strings.TrimSpace(m.percentInput.Value())
		if value == "" {
			break
		}
		per, err := strconv.ParseFloat(value, 64)
		if err != nil {
			m.lastErr = fmt.Sprintf("not a percent: %q", value)
			break
		}
		m.apply(func(c *uc2000.Controller) error {
			return c.SetPercent(per)
		})
		m.percentInput.SetValue("")

	case "l":
		m.apply(func(c *uc2000.Controller) error {
			return c.SetLase(!c.Lase().Value())
		})

	case "m":
		m.apply(func(c *uc2000.Controller) error {
			return c.SetMode(nextMode(c.Mode().Value()))
		})

	case "f":
		m.apply(func(c *uc2000.Controller) error {
			return c.SetPWMFreq(nextFreq(c.PWMFreq().Value()))
		})

	case "g":
		m.apply(func(c *uc2000.Controller) error {
			pull := remote.GateUp
			if c.GateLogic().Value() == remote.GateUp {
				pull = remote.GateDown
			}
			return c.SetGateLogic(pull)
		})

	case "x":
		m.apply(func(c *uc2000.Controller) error {
			per := 95
			if c.MaxPWM().Value() == 95 {
				per = 99
			}
			return c.SetMaxPWM(per)
		})

	case "r":
		m.apply(func(c *uc2000.Controller) error {
			return c.Reset()
		})

	default:
		var cmd tea.Cmd
		m.percentInput, cmd = m.percentInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// apply runs one controller mutation and routes the error either to the
// status line (encoding rejections) or to a fatal quit (transport loss).
func (m *controlModel) apply(fn func(*uc2000.Controller) error) {
	m.lastErr = ""
	err := fn(m.ctrl)
	if err == nil {
		return
	}
	if isRejection(err) {
		m.lastErr = err.Error()
		m.addLogEntry(err.Error(), true)
		return
	}
	// Anything else means the link itself failed.
	m.fatalErr = err
	m.quitting = true
}

func isRejection(err error) bool {
	return errors.Is(err, remote.ErrInvalidValue) || errors.Is(err, remote.ErrUnknownCommand)
}

func nextFreq(freq int) int {
	for i, f := range freqCycle {
		if f == freq {
			return freqCycle[(i+1)%len(freqCycle)]
		}
	}
	return freqCycle[0]
}

func nextMode(mode remote.Mode) remote.Mode {
	for i, md := range modeCycle {
		if md == mode {
			return modeCycle[(i+1)%len(modeCycle)]
		}
	}
	return modeCycle[0]
}

func (m *controlModel) addLogEntry(text string, isError bool) {
	m.eventLog = append(m.eventLog, logEntry{when: time.Now(), text: text, isError: isError})
	if len(m.eventLog) > controlMaxLogEntries {
		m.eventLog = m.eventLog[len(m.eventLog)-controlMaxLogEntries:]
	}
}

//////////////////////////////////////////////////////////////
// View
//////////////////////////////////////////////////////////////

func (m controlModel) View() string {
	if m.quitting {
		if m.fatalErr != nil {
			return fmt.Sprintf("Connection failed: %v\n", m.fatalErr)
		}
		return "Standby, shutting down...\n"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	laseOnStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9"))

	logStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1)

	row := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-18s", label)) + valueStyle.Render(value)
	}

	c := m.ctrl
	lase := "OFF"
	laseStyled := valueStyle.Render(lase)
	if c.Lase().Value() {
		laseStyled = laseOnStyle.Render("ON")
	}

	var state strings.Builder
	state.WriteString(row("Percent", fmt.Sprintf("%.1f%%", c.Percent().Value())) + "\n")
	state.WriteString(labelStyle.Render(fmt.Sprintf("%-18s", "Lase")) + laseStyled + "\n")
	state.WriteString(row("Mode", string(c.Mode().Value())) + "\n")
	state.WriteString(row("PWM frequency", fmt.Sprintf("%d kHz", c.PWMFreq().Value())) + "\n")
	state.WriteString(row("Gate logic", fmt.Sprintf("pull-%s", c.GateLogic().Value())) + "\n")
	state.WriteString(row("Max PWM", fmt.Sprintf("%d%%", c.MaxPWM().Value())) + "\n")
	state.WriteString(row("Power", fmt.Sprintf("%.2f W / %.2f W", c.Power(), c.MaxPower())) + "\n")
	state.WriteString("\n")
	state.WriteString(labelStyle.Render("Set percent: ") + m.percentInput.View())

	logHeight := m.height - 16
	if logHeight < 4 {
		logHeight = 4
	}
	start := len(m.eventLog) - logHeight
	if start < 0 {
		start = 0
	}
	var events strings.Builder
	for _, entry := range m.eventLog[start:] {
		line := fmt.Sprintf("%s  %s", entry.when.Format("15:04:05.000"), entry.text)
		if entry.isError {
			events.WriteString(errorStyle.Render(line) + "\n")
		} else {
			events.WriteString(logStyle.Render(line) + "\n")
		}
	}
	if events.Len() == 0 {
		events.WriteString(logStyle.Render("(no frames sent yet)") + "\n")
	}

	left := panelStyle.Width(42).Render(state.String())
	rightWidth := m.width - 48
	if rightWidth < 30 {
		rightWidth = 30
	}
	right := panelStyle.Width(rightWidth).Render(events.String())

	var s strings.Builder
	s.WriteString(titleStyle.Render(fmt.Sprintf("UC-2000 Control (%d W)", c.Model())) + "\n")
	s.WriteString(headerStyle.Render(m.connInfo) + "\n\n")
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right) + "\n")
	if m.lastErr != "" {
		s.WriteString(errorStyle.Render(m.lastErr) + "\n")
	}
	s.WriteString(headerStyle.Render("↑/↓ ±0.5%  pgup/pgdn ±5%  l lase  m mode  f freq  g gate  x max  r reset  q quit"))
	return s.String()
}
