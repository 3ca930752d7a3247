package facade

import "fmt"

// Metadata describes a record without its message, so loggers can decide
// whether to log before any formatting happens.
type Metadata struct {
	Level Level
	// Target names the subsystem that produced the record (e.g. "slog",
	// "zap", "stdlog"). Empty for direct facade calls.
	Target string
}

// Record is a single log event. The message is formatted on demand.
type Record struct {
	metadata Metadata
	format   string
	args     []any
}

// NewRecord creates a record whose message is fmt.Sprintf(format, args...).
func NewRecord(level Level, target, format string, args ...any) *Record {
	return &Record{
		metadata: Metadata{Level: level, Target: target},
		format:   format,
		args:     args,
	}
}

// Level returns the record's severity.
func (r *Record) Level() Level {
	return r.metadata.Level
}

// Metadata returns the record's metadata.
func (r *Record) Metadata() Metadata {
	return r.metadata
}

// Message formats the record's message. Each call formats again, so
// loggers should call it once per emission.
func (r *Record) Message() string {
	return fmt.Sprintf(r.format, r.args...)
}
