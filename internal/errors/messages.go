package errors

import "fmt"

// UnreadableFile reports a read failure on a file that exists. Checks treat
// this as an environment fault and abort the run.
func UnreadableFile(path string, cause error) *CLIError {
	return NewRuntimeError(fmt.Sprintf("failed to read %s", path), cause)
}

// MissingRoot reports a checkout root that does not exist.
func MissingRoot(root string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("root directory not found: %s", root),
		"Run artifactcheck from the repository root",
		"Or pass --root <dir> pointing at the checkout",
	)
}

// InvalidRegistry reports a custom registry that failed to load.
func InvalidRegistry(path string, cause error) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  fmt.Sprintf("invalid registry %s", path),
		Remediation: []string{
			"Dump the built-in registry with 'artifactcheck schemas --format yaml' and start from it",
			"Every schema needs a name, a template and at least one '## ' required heading",
		},
		Cause: cause,
	}
}

// InvalidConfig reports a configuration that failed to load or validate.
func InvalidConfig(cause error) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  "failed to load configuration",
		Remediation: []string{
			"Check .artifactcheck.json for syntax errors",
			"Check ARTIFACTCHECK_* environment variables",
		},
		Cause: cause,
	}
}

// NoFilesGiven reports a check command without file arguments.
func NoFilesGiven() *CLIError {
	return NewArgumentErrorWithUsage(
		"no artifact files given",
		"artifactcheck check <file>...",
		"Pass one or more artifact paths relative to --root",
	)
}

// UnexpectedArgs reports positional arguments on a command that takes none.
func UnexpectedArgs(commandPath, usage string, args []string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("unexpected argument %q for %q", args[0], commandPath),
		usage,
		fmt.Sprintf("Run '%s --help' for usage", commandPath),
	)
}

// InvalidFlag reports a flag that cobra could not parse.
func InvalidFlag(commandPath, usage string, cause error) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     cause.Error(),
		Usage:       usage,
		Remediation: []string{fmt.Sprintf("Run '%s --help' for the list of flags", commandPath)},
		Cause:       cause,
	}
}
