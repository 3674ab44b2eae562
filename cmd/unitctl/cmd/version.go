package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X unitctl/cmd/unitctl/cmd.version=..."
var version = "dev"

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the unitctl and systemd versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "unitctl version", version)

			v, err := a.daemon.Version()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "systemd version", v.Major)
			return nil
		},
	}
}
