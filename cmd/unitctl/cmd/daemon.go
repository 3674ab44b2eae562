package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"unitctl/unit"
)

func newDaemonReloadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "daemon-reload",
		Short: "reload the service manager configuration",
		Long: `Reload the service manager configuration: rerun generators, reload unit
files and rebuild the dependency tree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.daemon.DaemonReload(); err != nil {
				return err
			}
			a.log.Info("reloaded")
			return nil
		},
	}
}

func newEscapeCmd() *cobra.Command {
	var typ string

	escapeCmd := &cobra.Command{
		Use:   "escape <path>...",
		Short: "print the unit name for a path",
		Long: `Print the unit name the service manager uses for a file system path,
e.g. "escape --type mount /var/lib/docker" prints var-lib-docker.mount.`,
		Args: cobra.MinimumNArgs(1),
		// no systemctl needed, so the root hook that silences cobra is skipped
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), unit.NameFromPath(path, unit.Type(typ))); err != nil {
					return err
				}
			}
			return nil
		},
	}

	escapeCmd.Flags().StringVarP(&typ, "type", "t", string(unit.TypeMount), "unit type suffix")
	return escapeCmd
}
