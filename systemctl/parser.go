package systemctl

import (
	"strings"

	"unitctl/unit"
)

// Record is one row of a listing.
type Record struct {
	Name   string
	Load   string // empty for type-scoped listings
	Active string
	Sub    string
}

// Type returns the unit type suffix of the record's name.
func (r Record) Type() unit.Type {
	_, typ, _ := unit.SplitName(r.Name)
	return typ
}

// DisplayName returns the name with the manager's escapes decoded. Use Name
// when talking to the manager.
func (r Record) DisplayName() string {
	return unit.DisplayName(r.Name)
}

// The two listing shapes. They are parsed separately: reading one as the
// other shifts the state columns.
const (
	unitColumns = 4 // name load active sub [description...]
	typeColumns = 3 // name active sub
)

// fields splits a row, dropping the marker list-units puts in front of
// failed units.
func fields(line string) []string {
	f := strings.Fields(line)
	if len(f) > 0 && (f[0] == "●" || f[0] == "*") {
		f = f[1:]
	}
	return f
}

// unitName reports whether s looks like a unit name rather than a header,
// legend or footer word.
func unitName(s string) bool {
	_, _, ok := unit.SplitName(s)
	return ok
}

// parseUnitLine parses one row of list-units output.
func parseUnitLine(line string) (Record, bool) {
	f := fields(line)
	if len(f) < unitColumns || !unitName(f[0]) {
		return Record{}, false
	}
	return Record{Name: f[0], Load: f[1], Active: f[2], Sub: f[3]}, true
}

// parseTypeLine parses one row of a type-scoped listing.
func parseTypeLine(line string) (Record, bool) {
	f := fields(line)
	if len(f) < typeColumns || !unitName(f[0]) {
		return Record{}, false
	}
	return Record{Name: f[0], Active: f[1], Sub: f[2]}, true
}

func parseLines(output string, parse func(string) (Record, bool)) []Record {
	var records []Record
	for _, line := range strings.Split(output, "\n") {
		if r, ok := parse(line); ok {
			records = append(records, r)
		}
	}
	return records
}

func parseUnits(output string) []Record {
	return parseLines(output, parseUnitLine)
}

func parseTypeUnits(output string) []Record {
	return parseLines(output, parseTypeLine)
}
