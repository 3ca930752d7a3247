package facade

import (
	"errors"
	"io"
	"log"
	"sync/atomic"
)

// ErrLoggerAlreadySet is returned by SetLogger when a logger has already
// been registered for this process.
var ErrLoggerAlreadySet = errors.New("facade: logger already set")

// Logger is implemented by sinks that receive records from the facade.
// Implementations must be safe for concurrent use.
type Logger interface {
	// Enabled reports whether a record with this metadata would be logged.
	Enabled(md Metadata) bool
	// Log emits the record if it is enabled.
	Log(r *Record)
	// Flush flushes any buffered output.
	Flush()
}

type registration struct {
	logger Logger
}

var (
	active   atomic.Pointer[registration]
	maxLevel atomic.Int64
)

// SetLogger registers l as the process-wide logger. Only the first call
// succeeds; later calls return ErrLoggerAlreadySet and leave the active
// logger in place.
func SetLogger(l Logger) error {
	if l == nil {
		return errors.New("facade: nil logger")
	}
	if !active.CompareAndSwap(nil, &registration{logger: l}) {
		return ErrLoggerAlreadySet
	}
	return nil
}

// Current returns the active logger, or a logger that discards everything
// when none has been registered.
func Current() Logger {
	if reg := active.Load(); reg != nil {
		return reg.logger
	}
	return nopLogger{}
}

// SetMaxLevel sets the fast-path filter checked before records are built.
// It must match the threshold of the active logger.
func SetMaxLevel(f LevelFilter) {
	maxLevel.Store(int64(f))
}

// MaxLevel returns the fast-path filter. It is FilterOff until SetMaxLevel
// is called.
func MaxLevel() LevelFilter {
	return LevelFilter(maxLevel.Load())
}

// Enabled reports whether a record at level with the given target would
// reach the active logger's output.
func Enabled(level Level, target string) bool {
	if !MaxLevel().Admits(level) {
		return false
	}
	return Current().Enabled(Metadata{Level: level, Target: target})
}

// Log builds a record and hands it to the active logger. Nothing is
// formatted when the record is filtered out.
func Log(level Level, target, format string, args ...any) {
	if !MaxLevel().Admits(level) {
		return
	}
	l := Current()
	r := NewRecord(level, target, format, args...)
	if !l.Enabled(r.Metadata()) {
		return
	}
	l.Log(r)
}

// Errorf logs an error message.
func Errorf(format string, args ...any) {
	Log(LevelError, "", format, args...)
}

// Warnf logs a warning message.
func Warnf(format string, args ...any) {
	Log(LevelWarn, "", format, args...)
}

// Infof logs an informational message.
func Infof(format string, args ...any) {
	Log(LevelInfo, "", format, args...)
}

// Debugf logs a debug message.
func Debugf(format string, args ...any) {
	Log(LevelDebug, "", format, args...)
}

// Tracef logs a trace message.
func Tracef(format string, args ...any) {
	Log(LevelTrace, "", format, args...)
}

// Flush flushes the active logger.
func Flush() {
	Current().Flush()
}

// Reset removes the active logger and turns the fast-path filter off.
// This is only meant for tests; production code registers once.
func Reset() {
	active.Store(nil)
	maxLevel.Store(int64(FilterOff))
}

// Writer returns an io.Writer that logs each write as one record at level.
// A single trailing newline is trimmed since loggers add their own.
func Writer(level Level) io.Writer {
	return &levelWriter{level: level, target: "writer"}
}

// RedirectStdLog sends output of the standard library's log package to the
// facade at level. The standard logger's own prefix and flags are cleared so
// the sink controls the line format.
func RedirectStdLog(level Level) {
	log.SetFlags(0)
	log.SetPrefix("")
	log.SetOutput(&levelWriter{level: level, target: "stdlog"})
}

type levelWriter struct {
	level  Level
	target string
}

func (w *levelWriter) Write(p []byte) (n int, err error) {
	msg := string(p)
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	Log(w.level, w.target, "%s", msg)
	return len(p), nil
}

type nopLogger struct{}

func (nopLogger) Enabled(Metadata) bool { return false }
func (nopLogger) Log(*Record)           {}
func (nopLogger) Flush()                {}
