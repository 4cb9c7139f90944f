package remote

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		cmd      Command
		value    any
		checksum bool
		want     []byte
	}{
		{"lase on", CmdLase, true, false, []byte{0x5B, 0x75}},
		{"lase on with checksum", CmdLase, true, true, []byte{0x5B, 0x75, 0x8A}},
		{"lase off", CmdLase, false, false, []byte{0x5B, 0x76}},
		{"pwm freq 5", CmdPWMFreq, 5, false, []byte{0x5B, 0x77}},
		{"pwm freq 10", CmdPWMFreq, 10, false, []byte{0x5B, 0x78}},
		{"pwm freq 20", CmdPWMFreq, 20, false, []byte{0x5B, 0x7A}},
		{"pwm freq 20 with checksum", CmdPWMFreq, 20, true, []byte{0x5B, 0x7A, 0x85}},
		{"gate logic up", CmdGateLogic, GateUp, false, []byte{0x5B, 0x7A}},
		{"gate logic down", CmdGateLogic, GateDown, false, []byte{0x5B, 0x7B}},
		{"gate logic from string", CmdGateLogic, "down", false, []byte{0x5B, 0x7B}},
		{"max pwm 95", CmdMaxPWM, 95, false, []byte{0x5B, 0x7C}},
		{"max pwm 99", CmdMaxPWM, 99, false, []byte{0x5B, 0x7D}},
		{"lase on power up true", CmdLaseOnPowerUp, true, false, []byte{0x5B, 0x30}},
		{"lase on power up false", CmdLaseOnPowerUp, false, false, []byte{0x5B, 0x31}},
		{"mode manual", CmdMode, ModeManual, false, []byte{0x5B, 0x70}},
		{"mode anv closed", CmdMode, ModeANVClosed, false, []byte{0x5B, 0x74}},
		{"percent 10", CmdPercent, 10.0, false, []byte{0x5B, 0x7F, 20}},
		{"percent 10 with checksum", CmdPercent, 10.0, true, []byte{0x5B, 0x7F, 20, 0x76}},
		{"percent 62.5 truncates for checksum", CmdPercent, 62.5, true, []byte{0x5B, 0x7F, 125, 0x42}},
		{"percent from int", CmdPercent, 50, false, []byte{0x5B, 0x7F, 100}},
		{"status request", CmdStatusRequest, nil, false, []byte{0x7E}},
		{"status request ignores checksum flag", CmdStatusRequest, nil, true, []byte{0x7E}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.cmd, tt.value, tt.checksum)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode(%s, %v, %v) = % X, want % X",
					tt.cmd, tt.value, tt.checksum, got, tt.want)
			}
		})
	}
}

func TestEncode_FrameLengths(t *testing.T) {
	// Setup/mode/lase frames are 2 bytes without checksum, 3 with;
	// percent frames are 3 and 4.
	cases := []struct {
		cmd   Command
		value any
	}{
		{CmdPWMFreq, 20},
		{CmdGateLogic, GateDown},
		{CmdMaxPWM, 95},
		{CmdLaseOnPowerUp, true},
		{CmdMode, ModeANC},
		{CmdLase, false},
	}
	for _, c := range cases {
		plain, err := Encode(c.cmd, c.value, false)
		if err != nil {
			t.Fatalf("Encode(%s): %v", c.cmd, err)
		}
		checked, err := Encode(c.cmd, c.value, true)
		if err != nil {
			t.Fatalf("Encode(%s): %v", c.cmd, err)
		}
		if len(plain) != 2 || len(checked) != 3 {
			t.Errorf("%s: lengths %d/%d, want 2/3", c.cmd, len(plain), len(checked))
		}
		// Checksum byte is always the one's complement of the command byte.
		if checked[2] != ^checked[1] {
			t.Errorf("%s: checksum 0x%02X, want 0x%02X", c.cmd, checked[2], ^checked[1])
		}
	}

	plain, _ := Encode(CmdPercent, 25.0, false)
	checked, _ := Encode(CmdPercent, 25.0, true)
	if len(plain) != 3 || len(checked) != 4 {
		t.Errorf("percent: lengths %d/%d, want 3/4", len(plain), len(checked))
	}
}

func TestEncode_Errors(t *testing.T) {
	t.Run("unknown command", func(t *testing.T) {
		_, err := Encode(Command(42), nil, false)
		if !errors.Is(err, ErrUnknownCommand) {
			t.Errorf("err = %v, want ErrUnknownCommand", err)
		}
	})

	invalid := []struct {
		name  string
		cmd   Command
		value any
	}{
		{"bogus mode", CmdMode, "bogus"},
		{"pwm freq out of domain", CmdPWMFreq, 15},
		{"max pwm out of domain", CmdMaxPWM, 90},
		{"gate logic out of domain", CmdGateLogic, "sideways"},
		{"lase non-bool", CmdLase, "yes"},
		{"percent non-numeric", CmdPercent, "fast"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.cmd, tt.value, false)
			if !errors.Is(err, ErrInvalidValue) {
				t.Errorf("Encode(%s, %v) err = %v, want ErrInvalidValue", tt.cmd, tt.value, err)
			}
			var ive *InvalidValueError
			if !errors.As(err, &ive) {
				t.Errorf("err %v is not an *InvalidValueError", err)
			}
		})
	}
}

func TestEncode_ByteCollision(t *testing.T) {
	// pwm_freq=20 and gate_logic=up share command byte 0x7A; the families
	// are encoded independently so the collision must survive as-is.
	freq, err := Encode(CmdPWMFreq, 20, false)
	if err != nil {
		t.Fatalf("Encode(pwm_freq): %v", err)
	}
	gate, err := Encode(CmdGateLogic, GateUp, false)
	if err != nil {
		t.Fatalf("Encode(gate_logic): %v", err)
	}
	if freq[1] != 0x7A || gate[1] != 0x7A {
		t.Errorf("command bytes %02X/%02X, both should be 7A", freq[1], gate[1])
	}
}

func TestMessage_Bytes(t *testing.T) {
	m := Message{Command: CmdLase, Value: true, Checksum: true}
	got, err := m.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if !bytes.Equal(got, []byte{0x5B, 0x75, 0x8A}) {
		t.Errorf("Bytes() = % X, want 5B 75 8A", got)
	}

	// Same message, same bytes: encoding is pure.
	again, _ := m.Bytes()
	if !bytes.Equal(got, again) {
		t.Errorf("repeated encode differs: % X vs % X", got, again)
	}
}
