package arghs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfig        = errors.New("invalid parser configuration")
	ErrUnknownOption = errors.New("unknown option")
	ErrInvalidUsage  = errors.New("invalid option usage")
	ErrMissingValue  = fmt.Errorf("%w: missing value", ErrInvalidUsage)
	ErrArgCount      = errors.New("wrong number of arguments")
	ErrTooManyArgs   = fmt.Errorf("%w: too many", ErrArgCount)
	ErrTooFewArgs    = fmt.Errorf("%w: too few", ErrArgCount)
	ErrHelp          = errors.New("help requested")
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

// UsageError is returned from parsing when a strict violation is found, or when help is requested.
// It carries the user-facing message and the exit code a [Terminator] should use.
type UsageError struct {
	cause error
	msg   string
	code  int
}

func newUsageError(cause error, format string, args ...any) *UsageError {
	return &UsageError{cause: cause, msg: fmt.Sprintf(format, args...), code: ExitFailure}
}

func (e *UsageError) Error() string {
	if len(e.msg) == 0 {
		return "usage error"
	}
	return "usage error: " + e.msg
}

func (e *UsageError) Is(err error) bool {
	_, ok := err.(*UsageError)
	return ok
}

func (e *UsageError) Unwrap() error {
	return e.cause
}

// Message is the text shown to the user, without the "usage error" prefix.
func (e *UsageError) Message() string {
	return e.msg
}

// ExitCode is the process exit code associated with this error.
func (e *UsageError) ExitCode() int {
	return e.code
}

// HelpRequested is true if this error only signals that help output was asked for.
func (e *UsageError) HelpRequested() bool {
	return errors.Is(e.cause, ErrHelp)
}

// ConfigError collects every problem found while building a [Config].
// It wraps [ErrConfig] as well as each individual problem, so [errors.Is] works for both.
type ConfigError struct {
	errs []error
}

func (e *ConfigError) add(format string, args ...any) {
	e.errs = append(e.errs, fmt.Errorf("%w: "+format, append([]any{ErrConfig}, args...)...))
}

func (e *ConfigError) result() error {
	if e == nil || len(e.errs) == 0 {
		return nil
	}
	return e
}

func (e *ConfigError) Error() string {
	var buf strings.Builder
	for i, err := range e.errs {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(err.Error())
	}
	return buf.String()
}

func (e *ConfigError) Unwrap() []error {
	return e.errs
}
