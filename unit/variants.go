package unit

// Service is a .service unit.
type Service struct {
	base
}

// NewService returns a handle for the service unit name.
func NewService(name string, r Runner) *Service {
	return &Service{base{name: name, runner: r}}
}

func (*Service) Type() Type { return TypeService }

// Timer is a .timer unit.
type Timer struct {
	base
}

// NewTimer returns a handle for the timer unit name.
func NewTimer(name string, r Runner) *Timer {
	return &Timer{base{name: name, runner: r}}
}

func (*Timer) Type() Type { return TypeTimer }

// Socket is a .socket unit.
type Socket struct {
	base
}

// NewSocket returns a handle for the socket unit name.
func NewSocket(name string, r Runner) *Socket {
	return &Socket{base{name: name, runner: r}}
}

func (*Socket) Type() Type { return TypeSocket }

// Generic is a unit of any other type. Registries use it for types
// registered without a dedicated variant, and listings of all units use it
// for types that are not registered at all.
type Generic struct {
	base
	typ Type
}

// NewGeneric returns a handle for name whose type is typ.
func NewGeneric(name string, typ Type, r Runner) *Generic {
	return &Generic{base: base{name: name, runner: r}, typ: typ}
}

func (g *Generic) Type() Type { return g.typ }
