package cmd

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"unitctl/unit"
)

var errNotActive = errors.New("not active")

var errNotEnabled = errors.New("not enabled")

var lifecycleVerbs = []struct {
	use   string
	short string
	op    func(unit.Unit) error
}{
	{use: "start", short: "start units", op: unit.Unit.Start},
	{use: "stop", short: "stop units", op: unit.Unit.Stop},
	{use: "restart", short: "restart units", op: unit.Unit.Restart},
	{use: "reload", short: "reload the configuration of units", op: unit.Unit.Reload},
	{use: "enable", short: "enable units", op: unit.Unit.Enable},
	{use: "disable", short: "disable units", op: unit.Unit.Disable},
}

func newLifecycleCmds(a *app) []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(lifecycleVerbs))
	for _, verb := range lifecycleVerbs {
		verb := verb
		cmds = append(cmds, &cobra.Command{
			Use:   verb.use + " <unit>...",
			Short: verb.short,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.eachUnit(args, func(u unit.Unit) error {
					if err := verb.op(u); err != nil {
						return err
					}
					a.log.WithField("unit", u.Name()).Infof("%s done", verb.use)
					return nil
				})
			},
		})
	}
	return cmds
}

func newQueryCmds(a *app) []*cobra.Command {
	statusCmd := &cobra.Command{
		Use:   "status <unit>...",
		Short: "show the active state of units",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eachUnit(args, func(u unit.Unit) error {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", u.Name(), activeString(u.Status()))
				return err
			})
		},
	}

	isActiveCmd := &cobra.Command{
		Use:   "is-active <unit>...",
		Short: "check whether units are active",
		Long:  `Check whether units are active. Fails if any of them is not.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eachUnit(args, func(u unit.Unit) error {
				if !u.IsActive() {
					return errNotActive
				}
				return nil
			})
		},
	}

	isEnabledCmd := &cobra.Command{
		Use:   "is-enabled <unit>...",
		Short: "check whether units are enabled",
		Long:  `Check whether units are enabled. Fails if any of them is not.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eachUnit(args, func(u unit.Unit) error {
				if !u.IsEnabled() {
					return errNotEnabled
				}
				return nil
			})
		},
	}

	return []*cobra.Command{statusCmd, isActiveCmd, isEnabledCmd}
}

// eachUnit runs f for every named unit, logging failures and carrying on.
// It fails if any unit could not be looked up or f failed for it.
func (a *app) eachUnit(names []string, f func(unit.Unit) error) error {
	failed := 0
	for _, name := range names {
		u, err := a.daemon.UnitByName(name)
		if err == nil {
			err = f(u)
		}
		if err != nil {
			a.log.WithFields(logrus.Fields{"unit": name}).WithError(err).Error("failed")
			failed++
		}
	}

	switch failed {
	case 0:
		return nil
	case 1:
		if len(names) == 1 {
			return fmt.Errorf("%s failed", names[0])
		}
	}
	return fmt.Errorf("%d of %d units failed", failed, len(names))
}
