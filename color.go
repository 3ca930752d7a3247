package simplog

import (
	"fmt"
	"strings"

	"github.com/xdg/simplog/facade"
)

// ColorPolicy controls ANSI coloring of stdout lines.
type ColorPolicy int

const (
	// ColorInteractive colors only while stdout is a terminal. This is the
	// zero value.
	ColorInteractive ColorPolicy = iota
	// ColorAlways colors regardless of where stdout goes.
	ColorAlways
	// ColorNever disables coloring.
	ColorNever
)

// String returns the policy name used in flags and config files.
func (p ColorPolicy) String() string {
	switch p {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseColorPolicy parses "auto", "always" or "never" (case-insensitive).
// The empty string means auto.
func ParseColorPolicy(s string) (ColorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorInteractive, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorInteractive, fmt.Errorf("invalid color policy %q: must be auto, always or never", s)
	}
}

const colorReset = "\x1b[0m"

// SGR foreground sequences, indexed by level.
var levelColors = [...]string{
	facade.LevelError: "\x1b[31m", // red
	facade.LevelWarn:  "\x1b[33m", // yellow
	facade.LevelInfo:  "\x1b[35m", // magenta
	facade.LevelDebug: "\x1b[34m", // blue
	facade.LevelTrace: "\x1b[32m", // green
}

// levelColor returns the SGR sequence for l, or "" for unknown levels.
func levelColor(l facade.Level) string {
	if l < 0 || int(l) >= len(levelColors) {
		return ""
	}
	return levelColors[l]
}
