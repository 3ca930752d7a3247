// Package term owns the process's console streams for simplog.
//
// Stdout and stderr are each wrapped in a Stream that serializes writes, so
// concurrent log calls never interleave partial lines. Every sink in the
// process shares the same two streams.
//
// This package exists to:
//  1. Give each console stream a single lock
//  2. Answer "is this stream an interactive terminal?" per call
//  3. Let tests swap the underlying writers
package term

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Stream is a console output stream shared by all writers in the process.
type Stream struct {
	mu   sync.Mutex
	name string
	w    io.Writer
	fd   uintptr
	tty  bool // fd is meaningful
	// forced keeps tty set across writer changes; see ForceTerminal.
	forced bool
	// isTerminal is swapped in tests.
	isTerminal func(fd uintptr) bool
}

var (
	stdout = newStream("stdout", os.Stdout)
	stderr = newStream("stderr", os.Stderr)
)

// Stdout returns the process-wide standard output stream.
func Stdout() *Stream {
	return stdout
}

// Stderr returns the process-wide standard error stream.
func Stderr() *Stream {
	return stderr
}

func newStream(name string, w io.Writer) *Stream {
	s := &Stream{name: name, isTerminal: IsTerminal}
	s.set(w)
	return s
}

// set replaces the writer. Files are wrapped with go-colorable so ANSI
// sequences work on Windows consoles; elsewhere the file is used as is.
func (s *Stream) set(w io.Writer) {
	s.fd, s.tty = 0, s.forced
	if f, ok := w.(*os.File); ok {
		s.fd, s.tty = f.Fd(), true
		w = colorable.NewColorable(f)
	}
	s.w = w
}

// Name returns "stdout" or "stderr".
func (s *Stream) Name() string {
	return s.name
}

// Write writes p with a single call to the underlying writer while holding
// the stream lock.
func (s *Stream) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.w.Write(p)
	if err != nil {
		return n, fmt.Errorf("write %s: %w", s.name, err)
	}
	return n, nil
}

// IsTerminal reports whether the stream is currently attached to an
// interactive terminal. It is evaluated on every call.
func (s *Stream) IsTerminal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tty && s.isTerminal(s.fd)
}

// Flush flushes the underlying writer if it buffers. Files need no flushing
// since os.File writes go straight to the descriptor.
func (s *Stream) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.w.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush %s: %w", s.name, err)
		}
	}
	return nil
}

// SetWriter replaces the stream's writer. Pass nil to restore the process
// file (os.Stdout or os.Stderr).
func (s *Stream) SetWriter(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w == nil {
		w = s.defaultFile()
	}
	s.set(w)
}

func (s *Stream) defaultFile() *os.File {
	if s.name == "stderr" {
		return os.Stderr
	}
	return os.Stdout
}

// Printf formats according to a format specifier and writes to stdout.
// Used for user-facing CLI output, which bypasses log filtering.
func Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(stdout, format, a...)
}

// Println formats and writes to stdout with a trailing newline.
func Println(a ...any) {
	_, _ = fmt.Fprintln(stdout, a...)
}

// IsTerminal reports whether fd is an interactive terminal, including
// Cygwin/MSYS pseudo terminals.
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
}

// SetOutput sets the writer for the stdout stream.
// Pass nil to use os.Stdout.
func SetOutput(w io.Writer) {
	stdout.SetWriter(w)
}

// SetErrOutput sets the writer for the stderr stream.
// Pass nil to use os.Stderr.
func SetErrOutput(w io.Writer) {
	stderr.SetWriter(w)
}

// Reset restores both streams to the process files.
// Primarily useful for testing.
func Reset() {
	stdout.SetWriter(nil)
	stderr.SetWriter(nil)
	stdout.setTerminalCheck(IsTerminal)
	stderr.setTerminalCheck(IsTerminal)
}

// Discard configures both streams to discard all output.
// Useful for silencing output in tests.
func Discard() {
	stdout.SetWriter(io.Discard)
	stderr.SetWriter(io.Discard)
}

// ForceTerminal makes the stdout stream report itself as a terminal
// regardless of its writer, including writers set afterwards with
// SetOutput. Reset undoes it. Only meant for tests.
func ForceTerminal(tty bool) {
	stdout.mu.Lock()
	defer stdout.mu.Unlock()
	stdout.forced = true
	stdout.tty = true
	stdout.isTerminal = func(uintptr) bool { return tty }
}

func (s *Stream) setTerminalCheck(fn func(uintptr) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forced = false
	s.isTerminal = fn
}
