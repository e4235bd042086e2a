// Package errors provides categorized CLI errors with remediation steps, and
// re-exports github.com/cockroachdb/errors for wrapping I/O failures with
// stack traces and user hints.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Wrapping and inspection, re-exported so callers import a single package.
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithHint     = crdb.WithHint
	WithHintf    = crdb.WithHintf
	Is           = crdb.Is
	As           = crdb.As
	GetAllHints  = crdb.GetAllHints
	FlattenHints = crdb.FlattenHints
)

// ErrorCategory classifies CLI errors for display.
type ErrorCategory int

const (
	// Argument errors come from bad command-line input.
	Argument ErrorCategory = iota
	// Configuration errors come from config files, env vars or registries.
	Configuration
	// Prerequisite errors mean an expected file or directory is absent.
	Prerequisite
	// Runtime errors are environment faults while checking, such as a read
	// failure on a file that exists.
	Runtime
)

// String returns the display label of the category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Prerequisite:
		return "Prerequisite Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is an error meant to be shown to a user, with optional usage and
// remediation steps.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Usage       string
	Remediation []string
	Cause       error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// NewArgumentError creates an argument error.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Remediation: remediation}
}

// NewArgumentErrorWithUsage creates an argument error that shows usage.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Usage: usage, Remediation: remediation}
}

// NewConfigError creates a configuration error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Configuration, Message: message, Remediation: remediation}
}

// NewPrerequisiteError creates a prerequisite error.
func NewPrerequisiteError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Prerequisite, Message: message, Remediation: remediation}
}

// NewRuntimeError wraps cause as a runtime error. Hints attached to cause with
// WithHint become remediation steps.
func NewRuntimeError(message string, cause error) *CLIError {
	return &CLIError{
		Category:    Runtime,
		Message:     message,
		Remediation: GetAllHints(cause),
		Cause:       cause,
	}
}
