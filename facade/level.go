// Package facade is the process-wide logging front end for simplog.
// Call sites log through it; a single Logger registered at startup decides
// what is emitted and where.
//
// Levels are ordered by decreasing severity:
//   - Error: failures that affect functionality
//   - Warn: unexpected conditions that don't prevent operation
//   - Info: normal operational events
//   - Debug: diagnostic detail
//   - Trace: very verbose diagnostic detail
//
// Lower values are more severe, so a record passes a filter when its level
// is less than or equal to the filter.
package facade

// Level represents the severity of a log record.
type Level int

const (
	// LevelError is the most severe level.
	LevelError Level = iota + 1
	// LevelWarn is for unexpected conditions that don't prevent operation.
	LevelWarn
	// LevelInfo is for normal operational events.
	LevelInfo
	// LevelDebug is for diagnostic information.
	LevelDebug
	// LevelTrace is the least severe level.
	LevelTrace
)

// String returns the uppercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// Filter returns the filter that admits l and every more severe level.
func (l Level) Filter() LevelFilter {
	return LevelFilter(l)
}

// Levels returns every level from most to least severe.
func Levels() []Level {
	return []Level{LevelError, LevelWarn, LevelInfo, LevelDebug, LevelTrace}
}

// LevelFilter is the fast-path threshold applied before a record is built.
type LevelFilter int

const (
	// FilterOff disables all logging.
	FilterOff LevelFilter = iota
	FilterError
	FilterWarn
	FilterInfo
	FilterDebug
	FilterTrace
)

// String returns the uppercase name of the filter.
func (f LevelFilter) String() string {
	if f == FilterOff {
		return "OFF"
	}
	return Level(f).String()
}

// Admits reports whether a record at level l passes the filter.
func (f LevelFilter) Admits(l Level) bool {
	return LevelFilter(l) <= f
}
