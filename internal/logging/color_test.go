package logging

import (
	"errors"
	"testing"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in   string
		want ColorMode
	}{
		{"auto", ColorAuto},
		{"Always", ColorAlways},
		{"NEVER", ColorNever},
		{" never ", ColorNever},
	}

	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		if err != nil {
			t.Errorf("ParseColorMode(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColorMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorModeRejectsUnknownNames(t *testing.T) {
	if _, err := ParseColorMode("rainbow"); !errors.Is(err, ErrInvalidColorMode) {
		t.Errorf("ParseColorMode(\"rainbow\") = %v, want ErrInvalidColorMode", err)
	}
}

func TestColorModeString(t *testing.T) {
	for _, tt := range []struct {
		mode ColorMode
		want string
	}{
		{ColorAuto, "auto"},
		{ColorAlways, "always"},
		{ColorNever, "never"},
	} {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("ColorMode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}
