package unit

import (
	"strings"

	sdunit "github.com/coreos/go-systemd/unit"
)

// SplitName splits a unit name on its final dot. ok is false when either
// side would be empty.
func SplitName(name string) (stem string, typ Type, ok bool) {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 || idx == len(name)-1 {
		return "", "", false
	}
	return name[:idx], Type(name[idx+1:]), true
}

// NameFromPath returns the unit name the manager derives from a file system
// path, e.g. "/var/lib/docker" and TypeMount give "var-lib-docker.mount".
func NameFromPath(path string, typ Type) string {
	return sdunit.UnitNamePathEscape(path) + "." + string(typ)
}

// PathFromName is the inverse of NameFromPath for the path-named types
// (mount, automount, swap, device):
// `dev-disk-by\x2duuid-0a.device` gives "/dev/disk/by-uuid/0a".
func PathFromName(name string) (string, bool) {
	stem, typ, ok := SplitName(name)
	if !ok {
		return "", false
	}
	switch typ {
	case TypeMount, TypeAutomount, TypeSwap, TypeDevice:
		return sdunit.UnitNamePathUnescape(stem), true
	}
	return "", false
}

// DisplayName decodes the escapes the manager put into name, the way
// systemd-escape --unescape does. For a template instance only the instance
// is decoded: `systemd-fsck@dev-disk-by\x2duuid-0a.service` gives
// "systemd-fsck@dev/disk/by-uuid/0a.service". Names without escapes are
// returned unchanged. The result is for display only.
func DisplayName(name string) string {
	if strings.IndexByte(name, '\\') == -1 {
		return name
	}
	stem, typ, ok := SplitName(name)
	if !ok {
		return name
	}
	if at := strings.IndexByte(stem, '@'); at >= 0 {
		return stem[:at+1] + sdunit.UnitNameUnescape(stem[at+1:]) + "." + string(typ)
	}
	return sdunit.UnitNameUnescape(stem) + "." + string(typ)
}
