package systemctl

import (
	"github.com/coreos/go-semver/semver"

	"unitctl/unit"
)

//go:generate mockgen -destination=mock_systemctl/mock_daemon.go -package=mock_systemctl unitctl/systemctl Daemon

type Daemon interface {
	ListUnits(Scope, string) ([]unit.Unit, error)
	ListRecords(Scope, string) ([]Record, error)

	UnitsByType(unit.Type) ([]unit.Unit, error)
	Services() ([]unit.Unit, error)
	Timers() ([]unit.Unit, error)
	Sockets() ([]unit.Unit, error)

	Unit(name, suffix string) (unit.Unit, error)
	UnitByName(string) (unit.Unit, error)

	DaemonReload() error
	Version() (*semver.Version, error)
}
