package systemctl

import (
	"github.com/sirupsen/logrus"

	"unitctl/system"
)

const (
	cmdListUnits    = "list-units"
	cmdDaemonReload = "daemon-reload"
	flagVersion     = "--version"
)

// invoker hands argument vectors to the executor unchanged: the control
// executable is positional, so the subcommand comes first and the unit name
// or pattern after it.
type invoker struct {
	exec system.Executor
	log  logrus.FieldLogger
}

func (i *invoker) Run(args ...string) system.Result {
	res := i.exec.Execute(args...)

	entry := i.log.WithFields(logrus.Fields{
		"args":      args,
		"exit_code": res.ExitCode,
	})
	if res.Succeeded() {
		entry.Debug("systemctl succeeded")
	} else {
		entry.WithError(res.Err()).Debug("systemctl failed")
	}
	return res
}
