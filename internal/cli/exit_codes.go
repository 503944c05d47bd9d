package cli

import "github.com/changetools/bumpchanges/internal/errors"

// Exit codes for the bumpchanges CLI.
// These codes support scripting and CI integration.
const (
	// ExitSuccess indicates successful command execution.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (git log, file I/O).
	ExitFailure = 1

	// ExitConfigError indicates invalid or missing configuration,
	// including an unset git user name.
	ExitConfigError = 2

	// ExitInvalidArguments indicates invalid command arguments.
	ExitInvalidArguments = 3

	// ExitMissingPrerequisites indicates a required file was not found.
	ExitMissingPrerequisites = 4

	// ExitFormatError indicates an unrecognized version format.
	ExitFormatError = 5
)

// exitCodeFor maps an error category to its exit code.
func exitCodeFor(category errors.ErrorCategory) int {
	switch category {
	case errors.Argument:
		return ExitInvalidArguments
	case errors.Configuration:
		return ExitConfigError
	case errors.Prerequisite:
		return ExitMissingPrerequisites
	case errors.Format:
		return ExitFormatError
	default:
		return ExitFailure
	}
}
