package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"unitctl/systemctl"
	"unitctl/unit"
)

func newListCmd(a *app) *cobra.Command {
	var args struct {
		All      bool
		Paths    bool
		Unescape bool
	}

	listCmd := &cobra.Command{
		Use:     "list [prefix]",
		Aliases: []string{"ls"},
		Short:   "list units",
		Long: `List the units known to the service manager.

Only units of supported types are shown unless --all is given. A prefix
restricts the listing to units whose name starts with it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, pos []string) error {
			var prefix string
			if len(pos) > 0 {
				prefix = pos[0]
			}

			scope := systemctl.SupportedUnits
			if args.All {
				scope = systemctl.AllUnits
			}

			records, err := a.daemon.ListRecords(scope, prefix)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 4, 8, 2, ' ', 0)
			fmt.Fprintln(w, "UNIT\tLOAD\tACTIVE\tSUB")

			for _, r := range records {
				name := r.Name
				if args.Unescape {
					name = r.DisplayName()
				}
				if args.Paths {
					if path, ok := unit.PathFromName(r.Name); ok {
						name = path
					}
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, r.Load, activeString(r.Active), r.Sub)
			}

			if len(records) == 0 {
				a.log.Warn("No unit found.")
			}
			return w.Flush()
		},
	}

	listCmd.Flags().BoolVarP(&args.All, "all", "a", false, "show units of every type")
	listCmd.Flags().BoolVar(&args.Paths, "paths", false, "show mount, automount, swap and device units as paths")
	listCmd.Flags().BoolVarP(&args.Unescape, "unescape", "u", false, "decode escaped characters in unit names")
	return listCmd
}

func newUnitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "units <type>",
		Short: "list every unit of a type",
		Long:  `List every unit of a supported type, loaded or not.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			units, err := a.daemon.UnitsByType(unit.Type(args[0]))
			if err != nil {
				return err
			}
			return printNames(cmd, units)
		},
	}
}

func newTypeCmd(a *app, use string, typ unit.Type) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("list every %s unit", typ),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			units, err := a.daemon.UnitsByType(typ)
			if err != nil {
				return err
			}
			return printNames(cmd, units)
		},
	}
}

func printNames(cmd *cobra.Command, units []unit.Unit) error {
	out := cmd.OutOrStdout()
	for _, u := range units {
		if _, err := fmt.Fprintln(out, u.Name()); err != nil {
			return err
		}
	}
	return nil
}

func activeString(state string) string {
	switch state {
	case "active":
		return color.GreenString(state)
	case "failed":
		return color.RedString(state)
	case "activating", "deactivating", "reloading":
		return color.YellowString(state)
	}
	return state
}
