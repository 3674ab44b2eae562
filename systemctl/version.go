package systemctl

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/coreos/go-semver/semver"
)

// matches "systemd 252 (252.22-1~deb12u1)" and "systemd 239"
var reVersion = regexp.MustCompile(`^systemd\s+(\d+)(?:\s+\((\d+)(?:\.(\d+))?)?`)

// Version returns the manager version from the first line of --version.
// The release number is the major version; a stable point release, when
// printed, is the minor.
func (s *SystemCtl) Version() (*semver.Version, error) {
	res := s.inv.Run(flagVersion)
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("getting version: %w", err)
	}
	return parseVersion(res.Output)
}

func parseVersion(output string) (*semver.Version, error) {
	first := strings.TrimSpace(strings.SplitN(output, "\n", 2)[0])

	m := reVersion.FindStringSubmatch(first)
	if m == nil {
		return nil, fmt.Errorf("couldn't parse systemd version string '%s'", first)
	}

	minor := "0"
	if m[2] == m[1] && m[3] != "" {
		minor = m[3]
	}

	v, err := semver.NewVersion(m[1] + "." + minor + ".0")
	if err != nil {
		return nil, fmt.Errorf("couldn't parse systemd version string '%s': %v", first, err)
	}
	return v, nil
}
