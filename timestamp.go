package simplog

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"
)

type timestampKind int

const (
	timestampNone timestampKind = iota
	timestampClock
	timestampElapsed
)

// Timestamp selects what, if anything, is printed before each line.
// The zero value is NoTimestamp.
type Timestamp struct {
	kind    timestampKind
	pattern string
	clock   *strftime.Strftime
}

// NoTimestamp prints no timestamp.
var NoTimestamp = Timestamp{}

// ElapsedTimestamp prints the time elapsed since the sink was created,
// using time.Duration's string form (e.g. "1.246717ms").
func ElapsedTimestamp() Timestamp {
	return Timestamp{kind: timestampElapsed}
}

// ClockTimestamp prints the current UTC wall-clock time formatted with a
// strftime pattern such as "%T" or "%Y-%m-%d %H:%M:%S".
func ClockTimestamp(pattern string) (Timestamp, error) {
	f, err := strftime.New(pattern)
	if err != nil {
		return NoTimestamp, fmt.Errorf("timestamp format %q: %w", pattern, err)
	}
	return Timestamp{kind: timestampClock, pattern: pattern, clock: f}, nil
}

// Enabled reports whether a timestamp is printed.
func (t Timestamp) Enabled() bool {
	return t.kind != timestampNone
}

// String describes the mode: "none", "elapsed" or "clock(<pattern>)".
func (t Timestamp) String() string {
	switch t.kind {
	case timestampClock:
		return "clock(" + t.pattern + ")"
	case timestampElapsed:
		return "elapsed"
	default:
		return "none"
	}
}

// render returns the timestamp text for a line written now.
func (t Timestamp) render(start time.Time) string {
	switch t.kind {
	case timestampClock:
		return t.clock.FormatString(time.Now().UTC())
	case timestampElapsed:
		return time.Since(start).String()
	default:
		return ""
	}
}
