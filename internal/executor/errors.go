package executor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCommandsFailed is returned by callers of Run when at least one command
// could not be launched, or exited non-zero with FailOnExitCode set.
var ErrCommandsFailed = errors.New("one or more commands failed")

// LaunchError represents a command that could not be started for a file.
// The command line was built but no process ran.
type LaunchError struct {
	Path    string // File the command was built for
	Command string // Fully expanded command line
	Err     error  // Underlying tokenising or OS error
}

// Error implements the error interface for LaunchError.
func (e *LaunchError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("command execution failed for %s: %s", e.Path, e.Command))
	if e.Err != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	return sb.String()
}

// Unwrap returns the underlying error for error wrapping support.
func (e *LaunchError) Unwrap() error {
	return e.Err
}

// ExitStatusError represents a command that ran but exited non-zero.
// It is only produced when the executor counts exit codes as failures.
type ExitStatusError struct {
	Path     string
	Command  string
	ExitCode int
}

// Error implements the error interface for ExitStatusError.
func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("command for %s exited with status %d: %s", e.Path, e.ExitCode, e.Command)
}

// IsLaunchError checks if the error is or wraps a LaunchError.
func IsLaunchError(err error) bool {
	if err == nil {
		return false
	}
	var le *LaunchError
	return errors.As(err, &le)
}
