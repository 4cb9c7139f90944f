package uc2000

import (
	"strings"
	"testing"
)

func TestFormatFrame(t *testing.T) {
	tests := []struct {
		name  string
		frame []byte
		want  string
	}{
		{"status request", []byte{0x7E}, "7E  (status request)"},
		{"set percent", []byte{0x5B, 0x7F, 20, 0x76}, "5B 7F 14 76  (set percent 10.0%)"},
		{"lase command", []byte{0x5B, 0x75, 0x8A}, "5B 75 8A  (command 0x75)"},
		{"unrecognised", []byte{0x01, 0x02}, "01 02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFrame(tt.frame); got != tt.want {
				t.Errorf("FormatFrame(% X) = %q, want %q", tt.frame, got, tt.want)
			}
		})
	}
}

func TestFormatSettings(t *testing.T) {
	c, err := New(25)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	out := FormatSettings(c)

	for _, want := range []string{
		"25 W", "20 kHz", "pull-up", "95%", "manual", "0.0%", "23.75 W",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatSettings missing %q:\n%s", want, out)
		}
	}
}
