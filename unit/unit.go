// Package unit provides typed handles for units of the service manager.
//
// A handle is a name plus the runner used to reach the control executable.
// It caches nothing: every method is a fresh invocation.
package unit

//go:generate mockgen -destination=mock_unit/mock_runner.go -package=mock_unit unitctl/unit Runner

import (
	"strings"

	"unitctl/system"
)

// Runner runs the control executable with the given argument vector.
type Runner interface {
	Run(args ...string) system.Result
}

// Unit is the capability set shared by every unit type.
type Unit interface {
	Name() string
	Type() Type

	Start() error
	Stop() error
	Restart() error
	Reload() error
	Enable() error
	Disable() error

	// Status returns the active state as printed by is-active
	// (active, inactive, failed, ...).
	Status() string
	IsActive() bool
	IsEnabled() bool
}

const (
	verbStart     = "start"
	verbStop      = "stop"
	verbRestart   = "restart"
	verbReload    = "reload"
	verbEnable    = "enable"
	verbDisable   = "disable"
	verbIsActive  = "is-active"
	verbIsEnabled = "is-enabled"
)

// base implements the verbs; variants embed it and add Type.
type base struct {
	name   string
	runner Runner
}

func (b *base) Name() string {
	return b.name
}

func (b *base) String() string {
	return b.name
}

func (b *base) run(verb string) system.Result {
	return b.runner.Run(verb, b.name)
}

func (b *base) Start() error {
	return b.run(verbStart).Err()
}

func (b *base) Stop() error {
	return b.run(verbStop).Err()
}

func (b *base) Restart() error {
	return b.run(verbRestart).Err()
}

func (b *base) Reload() error {
	return b.run(verbReload).Err()
}

func (b *base) Enable() error {
	return b.run(verbEnable).Err()
}

func (b *base) Disable() error {
	return b.run(verbDisable).Err()
}

// Status does not fail: is-active prints a state even when it exits non-zero.
func (b *base) Status() string {
	return strings.TrimSpace(b.run(verbIsActive).Output)
}

// IsActive is false for any non-zero exit, including "unit not found".
func (b *base) IsActive() bool {
	return b.run(verbIsActive).Succeeded()
}

func (b *base) IsEnabled() bool {
	return b.run(verbIsEnabled).Succeeded()
}
