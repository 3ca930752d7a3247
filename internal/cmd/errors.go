package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xdg/simplog"
	"github.com/xdg/simplog/facade"
)

// Exit codes returned through ExitCodeError.
const (
	exitFailure = 1
	exitUsage   = 2
)

// ExitCodeError carries a process exit code back to main.
// Err, when set, supplies the message cobra prints.
type ExitCodeError struct {
	Code int
	Err  error
}

// NewExitCodeError returns an ExitCodeError with no message.
func NewExitCodeError(code int) *ExitCodeError {
	return &ExitCodeError{Code: code}
}

func (e *ExitCodeError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// usageError reports a bad argument or flag value (exit code 2).
func usageError(format string, args ...any) error {
	return &ExitCodeError{Code: exitUsage, Err: fmt.Errorf(format, args...)}
}

// levelNames lists the accepted level names for error messages.
func levelNames() string {
	levels := facade.Levels()
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = strings.ToLower(l.String())
	}
	return strings.Join(names, ", ")
}

// parseLevelArg parses a level name given on the command line, ignoring
// surrounding whitespace. Unlike the verbosity, which falls back to error,
// an unknown name is a usage error.
func parseLevelArg(s string) (facade.Level, error) {
	l, ok := simplog.LookupLevel(strings.TrimSpace(s))
	if !ok {
		return 0, usageError("unknown level %q (want one of %s)", s, levelNames())
	}
	return l, nil
}

// registrationError explains a failed sink registration.
func registrationError(err error) error {
	if errors.Is(err, facade.ErrLoggerAlreadySet) {
		return fmt.Errorf("console logger already installed")
	}
	return err
}
