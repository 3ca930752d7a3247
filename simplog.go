// Package simplog is a small console sink for the facade logger.
//
// It provides:
//   - a settable threshold (verbosity), defaulting to Error
//   - an optional "LEVEL\t- " prefix on each line
//   - an optional timestamp (UTC clock or time since start) before the line
//   - ANSI colors by level on stdout, always or only on a terminal
//
// Error records go to stderr; everything else goes to stdout.
//
// Install it once at startup and log through the facade:
//
//	simplog.Init("info")
//	facade.Infof("Hello World!") // INFO	- Hello World!
package simplog

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/xdg/simplog/facade"
	"github.com/xdg/simplog/internal/term"
)

// ErrRegistered is returned when changing a sink that has already been
// registered with the facade.
var ErrRegistered = errors.New("simplog: sink already registered")

// Config holds the options for a Sink.
type Config struct {
	// Verbosity is parsed with ParseLevel. Empty means DefaultLevel.
	Verbosity string
	// ShowLevelPrefix starts each line with "LEVEL\t- ".
	ShowLevelPrefix bool
	// Timestamp selects the timestamp printed before each line.
	Timestamp Timestamp
	// Color controls ANSI coloring of stdout lines.
	Color ColorPolicy
}

// Sink filters records by level and writes them to the console.
// It implements facade.Logger.
type Sink struct {
	threshold  facade.Level
	prefix     bool
	timestamp  Timestamp
	color      ColorPolicy
	start      time.Time
	stdout     *term.Stream
	stderr     *term.Stream
	registered atomic.Bool
	// fatal handles unrecoverable output errors. It must not return.
	fatal func(error)
}

// New builds a sink from cfg without registering it.
func New(cfg Config) *Sink {
	return &Sink{
		threshold: ParseLevel(cfg.Verbosity),
		prefix:    cfg.ShowLevelPrefix,
		timestamp: cfg.Timestamp,
		color:     cfg.Color,
		start:     time.Now(),
		stdout:    term.Stdout(),
		stderr:    term.Stderr(),
		fatal:     abort,
	}
}

// Configure builds a sink and registers it as the process logger. If a
// logger is already registered, the new sink is returned unregistered and
// the existing logger stays active.
func Configure(cfg Config) *Sink {
	s := New(cfg)
	_ = s.Register()
	return s
}

// Init configures a sink with the level prefix on, no timestamp and
// interactive-only color.
func Init(verbosity string) *Sink {
	return InitWithPrefix(verbosity, true)
}

// InitWithPrefix configures a sink with no timestamp and interactive-only
// color.
func InitWithPrefix(verbosity string, showPrefix bool) *Sink {
	return Configure(Config{
		Verbosity:       verbosity,
		ShowLevelPrefix: showPrefix,
	})
}

// InitWithPrefixAndTimestamp configures a sink with interactive-only color.
// When timestamp is true each line starts with the time elapsed since the
// sink was created.
func InitWithPrefixAndTimestamp(verbosity string, showPrefix, timestamp bool) *Sink {
	cfg := Config{
		Verbosity:       verbosity,
		ShowLevelPrefix: showPrefix,
	}
	if timestamp {
		cfg.Timestamp = ElapsedTimestamp()
	}
	return Configure(cfg)
}

// Register hands the sink to the facade and sets the facade's fast-path
// filter to the sink's threshold. The filter is only changed when
// registration succeeds, so it always matches the active logger.
// Returns facade.ErrLoggerAlreadySet if another logger is active.
func (s *Sink) Register() error {
	if !s.registered.CompareAndSwap(false, true) {
		return facade.ErrLoggerAlreadySet
	}
	if err := facade.SetLogger(s); err != nil {
		s.registered.Store(false)
		return err
	}
	facade.SetMaxLevel(s.threshold.Filter())
	return nil
}

// SetTimestampFormat switches the sink to clock timestamps formatted with
// the strftime pattern. An empty pattern turns timestamps off. The sink can
// only be changed before it is registered, and the call is not safe for
// concurrent use with Log on the same sink.
func (s *Sink) SetTimestampFormat(pattern string) error {
	if s.registered.Load() {
		return ErrRegistered
	}
	if pattern == "" {
		s.timestamp = NoTimestamp
		return nil
	}
	ts, err := ClockTimestamp(pattern)
	if err != nil {
		return err
	}
	s.timestamp = ts
	return nil
}

// Threshold returns the least severe level the sink emits.
func (s *Sink) Threshold() facade.Level {
	return s.threshold
}

// Timestamp returns the sink's timestamp mode.
func (s *Sink) Timestamp() Timestamp {
	return s.timestamp
}

// Enabled reports whether records at md.Level pass the threshold.
func (s *Sink) Enabled(md facade.Metadata) bool {
	return md.Level <= s.threshold
}

// Log renders the record and writes it as one line: error records to
// stderr, all others to stdout. A failed write is fatal.
func (s *Sink) Log(r *facade.Record) {
	if !s.Enabled(r.Metadata()) {
		return
	}

	level := r.Level()
	out := s.stdout
	if level == facade.LevelError {
		out = s.stderr
	}

	buf := getBuffer()
	defer putBuffer(buf)

	if s.timestamp.Enabled() {
		buf.WriteString(s.timestamp.render(s.start))
		buf.WriteByte(' ')
	}

	color := ""
	if out == s.stdout && s.colorize() {
		color = levelColor(level)
	}
	buf.WriteString(color)
	if s.prefix {
		buf.WriteString(level.String())
		buf.WriteString("\t- ")
	}
	buf.WriteString(r.Message())
	if color != "" {
		buf.WriteString(colorReset)
	}
	buf.WriteByte('\n')

	if _, err := out.Write(buf.Bytes()); err != nil {
		s.fatal(fmt.Errorf("simplog: %w", err))
	}
}

// Flush flushes stdout and stderr. A failed flush is fatal.
func (s *Sink) Flush() {
	if err := s.stdout.Flush(); err != nil {
		s.fatal(fmt.Errorf("simplog: %w", err))
	}
	if err := s.stderr.Flush(); err != nil {
		s.fatal(fmt.Errorf("simplog: %w", err))
	}
}

// colorize reports whether stdout lines get color right now. Terminal
// detection is repeated on every call.
func (s *Sink) colorize() bool {
	switch s.color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return s.stdout.IsTerminal()
	}
}

// abort is the default fatal handler. There is no other channel left to
// report on once the console fails.
func abort(err error) {
	panic(err)
}

var bufferPool = sync.Pool{
	New: func() any {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
