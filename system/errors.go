package system

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrExecutableNotFound indicates the control executable (or its prefix
	// command) could not be started.
	ErrExecutableNotFound = errors.New("system: executable not found")

	// ErrTimeout indicates the executor killed the process after its timeout.
	ErrTimeout = errors.New("system: timeout")
)

// InvocationError describes a control executable invocation that did not
// succeed.
type InvocationError struct {
	// Args is the argument vector of the failed invocation
	Args []string
	// ExitCode is the exit status, -1 if the process never ran
	ExitCode int
	// Stderr is the captured standard error, if any
	Stderr string
	// Err is the underlying cause when the process did not exit on its own
	Err error
}

// Error returns a formatted error message
func (e *InvocationError) Error() string {
	msg := fmt.Sprintf("systemctl %s: exit status %d", strings.Join(e.Args, " "), e.ExitCode)
	if e.Err != nil {
		msg = fmt.Sprintf("systemctl %s: %v", strings.Join(e.Args, " "), e.Err)
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += " (stderr: " + stderr + ")"
	}
	return msg
}

// Unwrap returns the underlying error for error chain inspection
func (e *InvocationError) Unwrap() error {
	return e.Err
}
