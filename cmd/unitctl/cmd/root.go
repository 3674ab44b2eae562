// Package cmd implements the unitctl command line.
package cmd

import (
	"log"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"unitctl/config"
	"unitctl/systemctl"
	"unitctl/unit"
)

// app carries what the subcommands share.
type app struct {
	v          *viper.Viper
	log        *logrus.Logger
	daemon     systemctl.Daemon
	configFile string
}

// NewRootCmd returns the unitctl command tree. A nil daemon is built from
// the configuration before any subcommand runs.
func NewRootCmd(daemon systemctl.Daemon) *cobra.Command {
	return newRootCmd(&app{
		v:      config.New(),
		log:    logrus.StandardLogger(),
		daemon: daemon,
	})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: "control systemd units",
		Long: `unitctl lists systemd units and starts, stops, enables or queries them
by running systemctl.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return a.init()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default $HOME/.config/unitctl/unitctl.yaml)")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.String("systemctl", "systemctl", "path to the systemctl executable")
	flags.String("prefix", "", "command to run systemctl through, e.g. \"sudo -n\"")
	flags.Bool("user", false, "talk to the service manager of the calling user")
	flags.Duration("timeout", 0, "kill systemctl after this long (default 30s)")
	flags.Bool("dry-run", false, "print systemctl command lines instead of running them")

	bind := map[string]string{
		config.KeyLogLevel: "log-level",
		config.KeyPath:     "systemctl",
		config.KeyPrefix:   "prefix",
		config.KeyUser:     "user",
		config.KeyTimeout:  "timeout",
		config.KeyDryRun:   "dry-run",
	}
	for key, flag := range bind {
		// only fails for a nil flag
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(
		newListCmd(a),
		newUnitsCmd(a),
		newTypeCmd(a, "services", unit.TypeService),
		newTypeCmd(a, "timers", unit.TypeTimer),
		newTypeCmd(a, "sockets", unit.TypeSocket),
		newDaemonReloadCmd(a),
		newEscapeCmd(),
		newVersionCmd(a),
	)
	rootCmd.AddCommand(newLifecycleCmds(a)...)
	rootCmd.AddCommand(newQueryCmds(a)...)

	return rootCmd
}

// Execute runs the command line. This is called by main.main().
func Execute() {
	log.SetOutput(logrus.StandardLogger().Writer())
	log.SetFlags(0)

	if err := NewRootCmd(nil).Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func (a *app) init() error {
	if a.configFile != "" {
		a.v.SetConfigFile(a.configFile)
	}

	c, err := config.Load(a.v)
	if err != nil {
		return err
	}

	a.log.SetLevel(c.Level())

	if a.daemon != nil {
		return nil
	}

	exec, err := c.Executor(a.log)
	if err != nil {
		return err
	}
	opts := append(c.Options(), systemctl.WithLogger(a.log))
	a.daemon = systemctl.New(exec, opts...)
	return nil
}
