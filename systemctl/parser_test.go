package systemctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const listUnitsOutput = `  UNIT                                   LOAD   ACTIVE SUB       DESCRIPTION
  proc-sys-fs-binfmt_misc.automount      loaded active running   Arbitrary Executable File Formats File System Automount Point
  sys-kernel-debug.mount                 loaded active mounted   Kernel Debug File System
● apt-daily.service                      loaded failed failed    Daily apt download activities
  cron.service                           loaded active running   Regular background program processing daemon
  dbus.socket                            loaded active running   D-Bus System Message Bus Socket
  apt-daily.timer                        loaded active waiting   Daily apt download activities

LOAD   = Reflects whether the unit definition was properly loaded.
ACTIVE = The high-level unit activation state, i.e. generalization of SUB.
SUB    = The low-level unit activation state, values depend on unit type.

6 loaded units listed. Pass --all to see loaded but inactive units, too.
To show all installed unit files use 'systemctl list-unit-files'.
`

func TestParseUnitLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Record
		ok   bool
	}{
		{
			name: "row",
			line: "  acpid.path                                         loaded active running",
			want: Record{Name: "acpid.path", Load: "loaded", Active: "active", Sub: "running"},
			ok:   true,
		},
		{
			name: "description ignored",
			line: "  cron.service   loaded active running   Regular background program processing daemon",
			want: Record{Name: "cron.service", Load: "loaded", Active: "active", Sub: "running"},
			ok:   true,
		},
		{
			name: "failed marker",
			line: "● apt-daily.service loaded failed failed Daily apt download activities",
			want: Record{Name: "apt-daily.service", Load: "loaded", Active: "failed", Sub: "failed"},
			ok:   true,
		},
		{
			name: "ascii failed marker",
			line: "* apt-daily.service loaded failed failed",
			want: Record{Name: "apt-daily.service", Load: "loaded", Active: "failed", Sub: "failed"},
			ok:   true,
		},
		{
			name: "tabs and trailing space",
			line: "\tcron.service\tloaded\tactive\trunning   ",
			want: Record{Name: "cron.service", Load: "loaded", Active: "active", Sub: "running"},
			ok:   true,
		},
		{name: "header", line: "  UNIT LOAD ACTIVE SUB DESCRIPTION"},
		{name: "legend", line: "LOAD   = Reflects whether the unit definition was properly loaded."},
		{name: "footer", line: "6 loaded units listed. Pass --all to see loaded but inactive units, too."},
		{name: "blank", line: "   "},
		{name: "three columns", line: "  superservice.service      Active running"},
		{name: "no suffix", line: "  cron loaded active running"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseUnitLine(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTypeLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Record
		ok   bool
	}{
		{
			name: "row",
			line: "  superservice.service      Active running",
			want: Record{Name: "superservice.service", Active: "Active", Sub: "running"},
			ok:   true,
		},
		{name: "placeholder", line: "PLACEHOLDER STUFF"},
		{name: "empty", line: ""},
		{name: "two columns", line: "  nonservice.timer Active"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseTypeLine(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUnitsKeepsOrder(t *testing.T) {
	records := parseUnits(listUnitsOutput)

	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"proc-sys-fs-binfmt_misc.automount",
		"sys-kernel-debug.mount",
		"apt-daily.service",
		"cron.service",
		"dbus.socket",
		"apt-daily.timer",
	}, names)
	assert.Equal(t, "failed", records[2].Active)
}

func TestParseTypeUnitsEmpty(t *testing.T) {
	assert.Empty(t, parseTypeUnits(""))
	assert.Empty(t, parseTypeUnits("PLACEHOLDER STUFF\n\n"))
}

func TestRecordDisplayName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "cron.service", want: "cron.service"},
		{name: "sys-kernel-debug.mount", want: "sys-kernel-debug.mount"},
		{
			name: `systemd-fsck@dev-disk-by\x2duuid-0a1b.service`,
			want: "systemd-fsck@dev/disk/by-uuid/0a1b.service",
		},
		{name: `getty@tty1.service`, want: "getty@tty1.service"},
		{
			name: `dev-disk-by\x2dlabel-boot.device`,
			want: "dev/disk/by-label/boot.device",
		},
		{name: `my\x20app.service`, want: "my app.service"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Record{Name: tt.name}.DisplayName())
		})
	}
}
