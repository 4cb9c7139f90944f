package cmd

import (
	"errors"
	"testing"

	"github.com/photonbench/uc2000/pkg/remote"
	"github.com/photonbench/uc2000/pkg/uc2000"
)

func newTestSession(t *testing.T) *session {
	t.Helper()
	ctrl, err := uc2000.New(25)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return &session{ctrl: ctrl}
}

func TestApplySetting(t *testing.T) {
	tests := []struct {
		name  string
		value string
		check func(t *testing.T, c *uc2000.Controller)
	}{
		{"pwm_freq", "10", func(t *testing.T, c *uc2000.Controller) {
			if got := c.PWMFreq().Value(); got != 10 {
				t.Errorf("pwm_freq = %d, want 10", got)
			}
		}},
		{"gate_logic", "down", func(t *testing.T, c *uc2000.Controller) {
			if got := c.GateLogic().Value(); got != remote.GateDown {
				t.Errorf("gate_logic = %q, want down", got)
			}
		}},
		{"max_pwm", "99", func(t *testing.T, c *uc2000.Controller) {
			if got := c.MaxPWM().Value(); got != 99 {
				t.Errorf("max_pwm = %d, want 99", got)
			}
		}},
		{"lase_on_power_up", "on", func(t *testing.T, c *uc2000.Controller) {
			if !c.LaseOnPowerUp().Value() {
				t.Error("lase_on_power_up is off, want on")
			}
		}},
		{"mode", "anv", func(t *testing.T, c *uc2000.Controller) {
			if got := c.Mode().Value(); got != remote.ModeANV {
				t.Errorf("mode = %q, want anv", got)
			}
		}},
		{"lase", "on", func(t *testing.T, c *uc2000.Controller) {
			if !c.Lase().Value() {
				t.Error("lase is off, want on")
			}
		}},
		{"percent", "12.5", func(t *testing.T, c *uc2000.Controller) {
			if got := c.Percent().Value(); got != 12.5 {
				t.Errorf("percent = %v, want 12.5", got)
			}
		}},
		{"checksum", "off", func(t *testing.T, c *uc2000.Controller) {
			if c.Checksum().Value() {
				t.Error("checksum is on, want off")
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			if err := applySetting(s, tt.name, tt.value); err != nil {
				t.Fatalf("applySetting(%s, %s): %v", tt.name, tt.value, err)
			}
			tt.check(t, s.ctrl)
		})
	}
}

func TestApplySetting_UnknownName(t *testing.T) {
	s := newTestSession(t)
	err := applySetting(s, "wavelength", "10600")
	if !errors.Is(err, remote.ErrUnknownCommand) {
		t.Errorf("err = %v, want ErrUnknownCommand", err)
	}
}

func TestApplySetting_BadValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"pwm_freq", "fast"},
		{"gate_logic", "sideways"},
		{"max_pwm", "lots"},
		{"lase_on_power_up", "maybe"},
		{"mode", "auto"},
		{"lase", "2"},
		{"percent", "half"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			err := applySetting(s, tt.name, tt.value)
			if !errors.Is(err, remote.ErrInvalidValue) {
				t.Errorf("applySetting(%s, %s) = %v, want ErrInvalidValue", tt.name, tt.value, err)
			}
		})
	}
}
