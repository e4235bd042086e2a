// Package shared provides constants and types used across CLI subpackages.
// This package has no dependencies on other CLI packages to avoid circular imports.
package shared

import (
	"errors"
	"fmt"

	apperrors "github.com/jonathan-vella/rebel-ops/internal/errors"
)

// Command group IDs for organizing help output
const (
	GroupChecks        = "checks"
	GroupConfiguration = "configuration"
)

// Exit codes for CLI commands
const (
	ExitSuccess             = 0
	ExitValidationFailed    = 1
	ExitRuntimeFault        = 2
	ExitInvalidArguments    = 3
	ExitMissingPrerequisite = 4
)

// exitError is a custom error type that carries an exit code.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// IsExitError reports whether err only carries an exit code and has nothing
// to print.
func IsExitError(err error) bool {
	var e *exitError
	return errors.As(err, &e)
}

// ExitCode returns the exit code from an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	var cliErr *apperrors.CLIError
	if errors.As(err, &cliErr) {
		switch cliErr.Category {
		case apperrors.Argument, apperrors.Configuration:
			return ExitInvalidArguments
		case apperrors.Prerequisite:
			return ExitMissingPrerequisite
		case apperrors.Runtime:
			return ExitRuntimeFault
		}
	}
	return ExitValidationFailed
}
