package unit

import (
	"errors"
	"fmt"
)

// ErrUnitTypeNotSupported is matched by every error returned for a unit type
// missing from a Registry.
var ErrUnitTypeNotSupported = errors.New("unit type not supported")

// UnsupportedTypeError reports the suffix a handle was requested for.
type UnsupportedTypeError struct {
	Suffix string
	Name   string
}

func (e *UnsupportedTypeError) Error() string {
	switch {
	case e.Suffix == "":
		return fmt.Sprintf("%v: %q has no unit type suffix", ErrUnitTypeNotSupported, e.Name)
	case e.Name == "":
		return fmt.Sprintf("%v: %q", ErrUnitTypeNotSupported, e.Suffix)
	}
	return fmt.Sprintf("%v: %q (unit %q)", ErrUnitTypeNotSupported, e.Suffix, e.Name)
}

func (e *UnsupportedTypeError) Unwrap() error {
	return ErrUnitTypeNotSupported
}
