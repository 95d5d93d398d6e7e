package logging

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// ColorMode controls when a handler colorizes its output.
type ColorMode int

const (
	// ColorAuto colorizes only when the destination is an interactive
	// terminal.
	ColorAuto ColorMode = iota

	// ColorAlways colorizes unconditionally, even when piped.
	ColorAlways

	// ColorNever disables colorization.
	ColorNever
)

// String returns the mode name as accepted by ParseColorMode.
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	}
	return fmt.Sprintf("COLORMODE(%d)", int(m))
}

// ParseColorMode converts "auto", "always" or "never" into a ColorMode.
// Matching is case-insensitive.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("%w: %q", ErrInvalidColorMode, s)
}

// levelColor pairs a severity threshold with the paint applied to
// records at or above it. The first matching entry wins.
type levelColor struct {
	threshold Level
	paint     *color.Color
}

// newLevelColors returns the per-severity palette: red for errors and
// above, yellow for warnings. The colors are force-enabled; whether they
// are used at all is the handler's decision, not the package-global
// terminal detection.
func newLevelColors() []levelColor {
	red := color.New(color.FgRed)
	red.EnableColor()
	yellow := color.New(color.FgYellow)
	yellow.EnableColor()
	return []levelColor{
		{LevelError, red},
		{LevelWarning, yellow},
	}
}
