package model

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks fatal setup problems: bad manifest, missing toolchain.
	ErrConfiguration = errors.New("configuration error")
	// ErrToolUnavailable means the toolchain binary could not be found or started.
	ErrToolUnavailable = &ConfigError{Op: "toolchain", Err: errors.New("tool unavailable")}
	// ErrExerciseNotFound is returned when a named exercise is not in the registry.
	ErrExerciseNotFound = errors.New("exercise not found")
	// ErrVerificationFailed signals a failed exercise to the CLI; the UI has already reported it.
	ErrVerificationFailed = errors.New("verification failed")
)

// ConfigError is a fatal configuration problem.
type ConfigError struct {
	Op  string
	Err error
}

// NewConfigError wraps err as a configuration error for op.
func NewConfigError(op string, err error) *ConfigError {
	return &ConfigError{Op: op, Err: err}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrConfiguration, e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ConfigError) Unwrap() error { return e.Err }

// Is makes every ConfigError match ErrConfiguration.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}
