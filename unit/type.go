package unit

// Type is the unit type encoded as the final dot-delimited segment of a
// unit name.
type Type string

// https://www.freedesktop.org/software/systemd/man/systemd.unit.html
const (
	TypeService   Type = "service"
	TypeSocket    Type = "socket"
	TypeTarget    Type = "target"
	TypeDevice    Type = "device"
	TypeMount     Type = "mount"
	TypeAutomount Type = "automount"
	TypeSwap      Type = "swap"
	TypeTimer     Type = "timer"
	TypePath      Type = "path"
	TypeSlice     Type = "slice"
	TypeScope     Type = "scope"
)

func (t Type) String() string {
	return string(t)
}
