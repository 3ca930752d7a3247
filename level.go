package simplog

import (
	"strings"

	"github.com/xdg/simplog/facade"
)

// DefaultLevel is the threshold used when no verbosity is given or the
// verbosity is not a level name.
const DefaultLevel = facade.LevelError

// ParseLevel parses a verbosity string (case-insensitive).
// Returns DefaultLevel for the empty string and for anything that is not
// one of error, warn, info, debug or trace.
func ParseLevel(s string) facade.Level {
	if l, ok := LookupLevel(s); ok {
		return l
	}
	return DefaultLevel
}

// LookupLevel is ParseLevel for callers that need to know whether s named a
// level at all. Only the exact names match, ignoring case; surrounding
// whitespace makes s unknown.
func LookupLevel(s string) (facade.Level, bool) {
	switch strings.ToLower(s) {
	case "error":
		return facade.LevelError, true
	case "warn":
		return facade.LevelWarn, true
	case "info":
		return facade.LevelInfo, true
	case "debug":
		return facade.LevelDebug, true
	case "trace":
		return facade.LevelTrace, true
	default:
		return DefaultLevel, false
	}
}
