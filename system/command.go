package system

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultPath is the control executable looked up in $PATH.
const DefaultPath = "systemctl"

// Command executes the control executable with os/exec.
type Command struct {
	// Path is the control executable, "systemctl" by default.
	Path string

	// Prefix is prepended to every command line, e.g. ["sudo", "-n"].
	Prefix []string

	// User talks to the calling user's service manager (--user).
	User bool

	// Timeout kills an invocation that runs longer. Zero disables it.
	Timeout time.Duration

	Log logrus.FieldLogger
}

// NewCommand returns a Command for the executable at path.
func NewCommand(path string) *Command {
	if path == "" {
		path = DefaultPath
	}
	return &Command{
		Path:    path,
		Timeout: 30 * time.Second,
		Log:     logrus.StandardLogger(),
	}
}

// WithPrefix sets the command prepended to the control executable.
func (c *Command) WithPrefix(prefix ...string) *Command {
	c.Prefix = prefix
	return c
}

// WithUser toggles the --user manager.
func (c *Command) WithUser(user bool) *Command {
	c.User = user
	return c
}

// WithTimeout sets the per-invocation timeout.
func (c *Command) WithTimeout(d time.Duration) *Command {
	c.Timeout = d
	return c
}

// argv returns the full command line for args.
func (c *Command) argv(args []string) []string {
	argv := make([]string, 0, len(c.Prefix)+len(args)+2)
	argv = append(argv, c.Prefix...)
	argv = append(argv, c.Path)
	if c.User {
		argv = append(argv, "--user")
	}
	return append(argv, args...)
}

// Execute runs the control executable with args and waits for it to exit.
func (c *Command) Execute(args ...string) Result {
	ctx := context.Background()
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	argv := c.argv(args)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	// no pager, no colour codes in the tables
	cmd.Env = append(os.Environ(), "SYSTEMD_PAGER=", "SYSTEMD_COLORS=0")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Args:   args,
		Output: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case ctx.Err() == context.DeadlineExceeded:
		res.ExitCode = -1
		res.Cause = fmt.Errorf("%w after %s", ErrTimeout, c.Timeout)
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		res.ExitCode = -1
		res.Cause = fmt.Errorf("%w: %v", ErrExecutableNotFound, err)
	}

	c.logger().WithFields(logrus.Fields{
		"argv":      argv,
		"exit_code": res.ExitCode,
	}).Debug("invoked control executable")

	return res
}

func (c *Command) logger() logrus.FieldLogger {
	if c.Log == nil {
		return logrus.StandardLogger()
	}
	return c.Log
}
