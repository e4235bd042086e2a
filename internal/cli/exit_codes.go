package cli

import (
	"github.com/jonathan-vella/rebel-ops/internal/cli/shared"
)

// Exit codes for the artifactcheck CLI (re-exported from shared)
const (
	// ExitSuccess indicates no errors were reported
	ExitSuccess = shared.ExitSuccess

	// ExitValidationFailed indicates at least one error diagnostic
	ExitValidationFailed = shared.ExitValidationFailed

	// ExitRuntimeFault indicates an environment fault, such as an unreadable file
	ExitRuntimeFault = shared.ExitRuntimeFault

	// ExitInvalidArguments indicates invalid arguments or configuration
	ExitInvalidArguments = shared.ExitInvalidArguments

	// ExitMissingPrerequisite indicates the root directory is missing
	ExitMissingPrerequisite = shared.ExitMissingPrerequisite
)

// ExitCode returns the exit code from an error (re-exported from shared).
func ExitCode(err error) int {
	return shared.ExitCode(err)
}
