package arghs

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestUsageError_Is(t *testing.T) {
	err := newUsageError(ErrUnknownOption, "unknown option: --%s", "fizz")
	assert.ErrorIs(t, err, &UsageError{})
	assert.ErrorIs(t, err, ErrUnknownOption)
	assert.NotErrorIs(t, err, ErrInvalidUsage)

	missing := newUsageError(ErrMissingValue, "missing value for option: --num")
	assert.ErrorIs(t, missing, ErrMissingValue)
	assert.ErrorIs(t, missing, ErrInvalidUsage)
}

func TestUsageError_Unwrap(t *testing.T) {
	var err error = newUsageError(ErrTooFewArgs, "too few")
	var target *UsageError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, "too few", target.Message())
	assert.Equal(t, ExitFailure, target.ExitCode())
	assert.False(t, target.HelpRequested())
}

func TestUsageError_Error(t *testing.T) {
	err := &UsageError{}
	assert.Equal(t, "usage error", err.Error(), "Default error output should be returned when there is no message")
	err = newUsageError(ErrUnknownOption, "unknown option: --x")
	assert.Equal(t, "usage error: unknown option: --x", err.Error())
}

func TestConfigError(t *testing.T) {
	var cerr ConfigError
	assert.NoError(t, cerr.result())
	cerr.add("first %d", 1)
	cerr.add("second")
	err := cerr.result()
	assert.ErrorIs(t, err, ErrConfig)
	assert.Equal(t, "invalid parser configuration: first 1\ninvalid parser configuration: second", err.Error())
}
