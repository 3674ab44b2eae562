// Package systemctl lists and looks up units by running the control
// executable and parsing its tables.
package systemctl

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"unitctl/system"
	"unitctl/unit"
)

// Scope selects which rows of a listing become handles.
type Scope int

const (
	// AllUnits returns a handle for every well-formed row. Types missing
	// from the registry get a unit.Generic handle.
	AllUnits Scope = iota
	// SupportedUnits returns handles only for registered types.
	SupportedUnits
)

func (s Scope) String() string {
	switch s {
	case AllUnits:
		return "all"
	case SupportedUnits:
		return "supported"
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}

// SystemCtl is the entry point: it turns listings into unit handles and
// issues manager-wide commands. It holds no unit state between calls.
type SystemCtl struct {
	inv      *invoker
	registry *unit.Registry
	log      logrus.FieldLogger
}

var _ Daemon = (*SystemCtl)(nil)

// Option configures a SystemCtl.
type Option func(*SystemCtl)

// WithLogger sets the logger, logrus.StandardLogger() by default.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *SystemCtl) {
		s.log = log
		s.inv.log = log
	}
}

// WithTypes additionally supports types through unit.Generic handles.
func WithTypes(types ...unit.Type) Option {
	return func(s *SystemCtl) {
		s.registry.RegisterGeneric(types...)
	}
}

// WithRegistryFunc lets the caller adjust the registry, e.g. to register a
// custom variant or drop a default type.
func WithRegistryFunc(f func(*unit.Registry)) Option {
	return func(s *SystemCtl) {
		f(s.registry)
	}
}

// New returns a SystemCtl running the control executable through exec.
func New(exec system.Executor, opts ...Option) *SystemCtl {
	log := logrus.StandardLogger()
	s := &SystemCtl{
		inv: &invoker{exec: exec, log: log},
		log: log,
	}
	s.registry = unit.NewRegistry(s.inv)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry returns the registry handles are built from.
func (s *SystemCtl) Registry() *unit.Registry {
	return s.registry
}

// listing runs args and fails only when the executable did.
func (s *SystemCtl) listing(args ...string) (string, error) {
	res := s.inv.Run(args...)
	if err := res.Err(); err != nil {
		return "", fmt.Errorf("listing units: %w", err)
	}
	return res.Output, nil
}

// ListRecords runs list-units, restricted to names starting with prefix
// when prefix is not empty, and returns the parsed rows in output order.
// Rows that do not parse are skipped, as are rows of unregistered types
// under SupportedUnits.
func (s *SystemCtl) ListRecords(scope Scope, prefix string) ([]Record, error) {
	args := []string{cmdListUnits}
	if prefix != "" {
		args = append(args, prefix+"*")
	}

	output, err := s.listing(args...)
	if err != nil {
		return nil, err
	}

	parsed := parseUnits(output)
	if scope == AllUnits {
		return parsed, nil
	}

	records := parsed[:0:0]
	for _, r := range parsed {
		if !s.registry.Supported(r.Type()) {
			s.log.WithField("unit", r.Name).Trace("skipping unsupported unit")
			continue
		}
		records = append(records, r)
	}
	return records, nil
}

// ListUnits returns handles for the rows ListRecords returns. Under AllUnits
// types missing from the registry get a unit.Generic handle.
func (s *SystemCtl) ListUnits(scope Scope, prefix string) ([]unit.Unit, error) {
	records, err := s.ListRecords(scope, prefix)
	if err != nil {
		return nil, err
	}

	units := make([]unit.Unit, 0, len(records))
	for _, r := range records {
		u, ok := s.registry.Lookup(r.Name)
		if !ok {
			continue
		}
		units = append(units, u)
	}

	s.log.WithFields(logrus.Fields{
		"scope":  scope,
		"prefix": prefix,
		"units":  len(units),
	}).Debug("listed units")

	return units, nil
}

// UnitsByType returns handles for every unit of type typ known to the
// manager, loaded or not.
func (s *SystemCtl) UnitsByType(typ unit.Type) ([]unit.Unit, error) {
	if !s.registry.Supported(typ) {
		return nil, &unit.UnsupportedTypeError{Suffix: string(typ)}
	}

	output, err := s.listing(cmdListUnits, "--type="+string(typ), "--all")
	if err != nil {
		return nil, err
	}

	var units []unit.Unit
	for _, r := range parseTypeUnits(output) {
		if r.Type() != typ {
			continue
		}
		u, err := s.registry.FromSuffix(string(typ), r.Name)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, nil
}

// Services returns every service unit.
func (s *SystemCtl) Services() ([]unit.Unit, error) {
	return s.UnitsByType(unit.TypeService)
}

// Timers returns every timer unit.
func (s *SystemCtl) Timers() ([]unit.Unit, error) {
	return s.UnitsByType(unit.TypeTimer)
}

// Sockets returns every socket unit.
func (s *SystemCtl) Sockets() ([]unit.Unit, error) {
	return s.UnitsByType(unit.TypeSocket)
}

// Unit returns the handle for name of type suffix. name is used as given;
// suffix only selects the variant. It fails with
// unit.ErrUnitTypeNotSupported for unregistered types.
func (s *SystemCtl) Unit(name, suffix string) (unit.Unit, error) {
	return s.registry.FromSuffix(suffix, name)
}

// UnitByName is Unit with the suffix taken from name.
func (s *SystemCtl) UnitByName(name string) (unit.Unit, error) {
	return s.registry.FromName(name)
}

// DaemonReload makes the manager reload its configuration. The error is nil
// exactly when the invocation succeeded.
func (s *SystemCtl) DaemonReload() error {
	return s.inv.Run(cmdDaemonReload).Err()
}
