package system

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandArgv(t *testing.T) {
	tests := []struct {
		name string
		cmd  *Command
		args []string
		want []string
	}{
		{
			name: "plain",
			cmd:  NewCommand(""),
			args: []string{"list-units", "sys*"},
			want: []string{"systemctl", "list-units", "sys*"},
		},
		{
			name: "user manager",
			cmd:  NewCommand("/usr/bin/systemctl").WithUser(true),
			args: []string{"daemon-reload"},
			want: []string{"/usr/bin/systemctl", "--user", "daemon-reload"},
		},
		{
			name: "sudo prefix",
			cmd:  NewCommand("systemctl").WithPrefix("sudo", "-n"),
			args: []string{"restart", "cron.service"},
			want: []string{"sudo", "-n", "systemctl", "restart", "cron.service"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.argv(tt.args))
		})
	}
}

func TestCommandExecute(t *testing.T) {
	c := NewCommand("sh")

	res := c.Execute("-c", "echo out; echo err >&2")
	assert.True(t, res.Succeeded())
	assert.NoError(t, res.Err())
	assert.Equal(t, "out\n", res.Output)
	assert.Equal(t, "err\n", res.Stderr)
	assert.Equal(t, []string{"-c", "echo out; echo err >&2"}, res.Args)
}

func TestCommandExecuteExitCode(t *testing.T) {
	res := NewCommand("sh").Execute("-c", "echo inactive; exit 3")

	assert.False(t, res.Succeeded())
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "inactive\n", res.Output)
	assert.NoError(t, res.Cause)

	var invErr *InvocationError
	require.True(t, errors.As(res.Err(), &invErr))
	assert.Equal(t, 3, invErr.ExitCode)
}

func TestCommandExecuteNotFound(t *testing.T) {
	res := NewCommand("/nonexistent/systemctl").Execute("list-units")

	assert.False(t, res.Succeeded())
	assert.Equal(t, -1, res.ExitCode)
	assert.True(t, errors.Is(res.Err(), ErrExecutableNotFound))
}

func TestCommandExecuteTimeout(t *testing.T) {
	c := NewCommand("sh").WithTimeout(50 * time.Millisecond)

	start := time.Now()
	res := c.Execute("-c", "exec sleep 5")

	assert.Less(t, int64(time.Since(start)), int64(4*time.Second))
	assert.False(t, res.Succeeded())
	assert.True(t, errors.Is(res.Err(), ErrTimeout))
}

func TestInvocationErrorMessage(t *testing.T) {
	err := Result{
		Args:     []string{"start", "nope.service"},
		ExitCode: 5,
		Stderr:   "Failed to start nope.service: Unit nope.service not found.\n",
	}.Err()

	assert.EqualError(t, err, "systemctl start nope.service: exit status 5 (stderr: Failed to start nope.service: Unit nope.service not found.)")
}

func TestDryRun(t *testing.T) {
	var buf bytes.Buffer
	d := &DryRun{
		Command: NewCommand("systemctl").WithPrefix("sudo"),
		Out:     &buf,
	}

	res := d.Execute("stop", "cron.service")

	assert.True(t, res.Succeeded())
	assert.Empty(t, res.Output)
	assert.Equal(t, "run: \"sudo\" \"systemctl\" \"stop\" \"cron.service\"\n", buf.String())
}

type errWriter struct{ err error }

func (w errWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestDryRunWriteError(t *testing.T) {
	closed := errors.New("write /dev/stdout: file already closed")
	d := &DryRun{Command: NewCommand("systemctl"), Out: errWriter{err: closed}}

	res := d.Execute("daemon-reload")

	assert.False(t, res.Succeeded())
	assert.Equal(t, []string{"daemon-reload"}, res.Args)
	assert.ErrorIs(t, res.Cause, closed)

	var invErr *InvocationError
	require.ErrorAs(t, res.Err(), &invErr)
	assert.Equal(t, -1, invErr.ExitCode)
}
