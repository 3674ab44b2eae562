// Package system runs the service manager's control executable and reports
// what it printed and how it exited.
package system

//go:generate mockgen -destination=mock_system/mock_executor.go -package=mock_system unitctl/system Executor

// Executor runs one external process per call and blocks until it exits.
type Executor interface {
	Execute(args ...string) Result
}

// Result is the outcome of a single invocation.
type Result struct {
	// Args is the argument vector handed to the executor, without the
	// executable path or any prefix the executor adds.
	Args []string

	// Output is everything written to stdout.
	Output string

	// Stderr is everything written to stderr.
	Stderr string

	// ExitCode is the process exit status, -1 if the process never ran.
	ExitCode int

	// Cause is set when the process could not be started or was killed
	// by the executor.
	Cause error
}

// Succeeded reports whether the process ran and exited with status 0.
func (r Result) Succeeded() bool {
	return r.Cause == nil && r.ExitCode == 0
}

// Err returns nil for a successful invocation and an *InvocationError
// otherwise.
func (r Result) Err() error {
	if r.Succeeded() {
		return nil
	}
	return &InvocationError{
		Args:     r.Args,
		ExitCode: r.ExitCode,
		Stderr:   r.Stderr,
		Err:      r.Cause,
	}
}
