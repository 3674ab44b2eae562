package unit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitctl/unit"
)

func TestFromSuffix(t *testing.T) {
	reg := unit.NewRegistry(nil)

	u, err := reg.FromSuffix("service", "SuccessService")
	require.NoError(t, err)
	assert.IsType(t, &unit.Service{}, u)
	assert.Equal(t, "SuccessService", u.Name())
	assert.Equal(t, unit.TypeService, u.Type())

	u, err = reg.FromSuffix("timer", "logrotate.timer")
	require.NoError(t, err)
	assert.IsType(t, &unit.Timer{}, u)

	u, err = reg.FromSuffix("socket", "sshd.socket")
	require.NoError(t, err)
	assert.IsType(t, &unit.Socket{}, u)
}

func TestFromSuffixUnsupported(t *testing.T) {
	reg := unit.NewRegistry(nil)

	u, err := reg.FromSuffix("unsupported", "FailUnit")
	assert.Nil(t, u)
	assert.True(t, errors.Is(err, unit.ErrUnitTypeNotSupported))

	var typeErr *unit.UnsupportedTypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, "unsupported", typeErr.Suffix)
	assert.Equal(t, "FailUnit", typeErr.Name)
}

func TestFromName(t *testing.T) {
	reg := unit.NewRegistry(nil)

	tests := []struct {
		name     string
		unit     string
		wantType unit.Type
		wantErr  bool
	}{
		{name: "service", unit: "cron.service", wantType: unit.TypeService},
		{name: "timer", unit: "apt-daily.timer", wantType: unit.TypeTimer},
		{name: "dotted stem", unit: "user@1000.service", wantType: unit.TypeService},
		{name: "template instance", unit: "getty@tty1.service", wantType: unit.TypeService},
		{name: "unregistered", unit: "home.mount", wantErr: true},
		{name: "no suffix", unit: "cron", wantErr: true},
		{name: "trailing dot", unit: "cron.", wantErr: true},
		{name: "leading dot", unit: ".service", wantErr: true},
		{name: "empty", unit: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := reg.FromName(tt.unit)
			if tt.wantErr {
				assert.Nil(t, u)
				assert.ErrorIs(t, err, unit.ErrUnitTypeNotSupported)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.unit, u.Name())
			assert.Equal(t, tt.wantType, u.Type())
		})
	}
}

func TestRegisterGeneric(t *testing.T) {
	reg := unit.NewRegistry(nil)
	assert.False(t, reg.Supported(unit.TypeMount))

	reg.RegisterGeneric(unit.TypeMount, unit.TypeService)

	assert.True(t, reg.Supported(unit.TypeMount))
	u, err := reg.FromName("home.mount")
	require.NoError(t, err)
	assert.IsType(t, &unit.Generic{}, u)
	assert.Equal(t, unit.TypeMount, u.Type())

	// existing variants are kept
	u, err = reg.FromName("cron.service")
	require.NoError(t, err)
	assert.IsType(t, &unit.Service{}, u)

	assert.Equal(t, []unit.Type{unit.TypeMount, unit.TypeService, unit.TypeSocket, unit.TypeTimer}, reg.Types())

	reg.Unregister(unit.TypeSocket)
	assert.False(t, reg.Supported(unit.TypeSocket))
}

func TestLookup(t *testing.T) {
	reg := unit.NewRegistry(nil)

	u, ok := reg.Lookup("cron.service")
	require.True(t, ok)
	assert.IsType(t, &unit.Service{}, u)

	u, ok = reg.Lookup("sys-kernel-debug.mount")
	require.True(t, ok)
	assert.IsType(t, &unit.Generic{}, u)
	assert.Equal(t, unit.TypeMount, u.Type())

	_, ok = reg.Lookup("UNIT")
	assert.False(t, ok)
}
