package system

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DryRun prints the command lines a Command would run without running them.
// Every invocation succeeds with empty output unless printing fails.
type DryRun struct {
	Command *Command
	Out     io.Writer
}

// NewDryRun returns a DryRun printing c's command lines to stdout.
func NewDryRun(c *Command) *DryRun {
	return &DryRun{Command: c, Out: os.Stdout}
}

// Execute prints the command line for args.
func (d *DryRun) Execute(args ...string) Result {
	argv := args
	if d.Command != nil {
		argv = d.Command.argv(args)
	}

	str := make([]string, 0, len(argv)+1)
	str = append(str, "run:")
	for _, arg := range argv {
		str = append(str, strconv.Quote(arg))
	}

	out := d.Out
	if out == nil {
		out = os.Stdout
	}
	if _, err := fmt.Fprintln(out, strings.Join(str, " ")); err != nil {
		return Result{Args: args, ExitCode: -1, Cause: fmt.Errorf("dry run: %w", err)}
	}
	return Result{Args: args}
}
