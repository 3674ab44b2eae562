package unit

import (
	"sort"
)

// Constructor builds the handle for one unit type.
type Constructor func(name string, r Runner) Unit

// Registry maps unit type suffixes to the variant built for them. It is the
// single source of truth for which types are supported.
//
// Register is not safe for concurrent use; populate the registry before
// sharing it.
type Registry struct {
	runner Runner
	ctors  map[Type]Constructor
}

// NewRegistry returns a registry for service, timer and socket units whose
// handles run through r.
func NewRegistry(r Runner) *Registry {
	reg := &Registry{
		runner: r,
		ctors:  make(map[Type]Constructor),
	}
	reg.Register(TypeService, func(name string, r Runner) Unit { return NewService(name, r) })
	reg.Register(TypeTimer, func(name string, r Runner) Unit { return NewTimer(name, r) })
	reg.Register(TypeSocket, func(name string, r Runner) Unit { return NewSocket(name, r) })
	return reg
}

// Register adds or replaces the constructor for typ.
func (reg *Registry) Register(typ Type, c Constructor) {
	reg.ctors[typ] = c
}

// RegisterGeneric supports typ with the Generic variant. Types that already
// have a constructor keep it.
func (reg *Registry) RegisterGeneric(types ...Type) {
	for _, typ := range types {
		if _, ok := reg.ctors[typ]; ok {
			continue
		}
		typ := typ
		reg.Register(typ, func(name string, r Runner) Unit { return NewGeneric(name, typ, r) })
	}
}

// Unregister drops typ.
func (reg *Registry) Unregister(typ Type) {
	delete(reg.ctors, typ)
}

// Supported reports whether typ is registered.
func (reg *Registry) Supported(typ Type) bool {
	_, ok := reg.ctors[typ]
	return ok
}

// Types returns the registered types in lexical order.
func (reg *Registry) Types() []Type {
	types := make([]Type, 0, len(reg.ctors))
	for typ := range reg.ctors {
		types = append(types, typ)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// FromSuffix returns the handle for name built by the variant registered for
// suffix.
func (reg *Registry) FromSuffix(suffix, name string) (Unit, error) {
	c, ok := reg.ctors[Type(suffix)]
	if !ok {
		return nil, &UnsupportedTypeError{Suffix: suffix, Name: name}
	}
	return c(name, reg.runner), nil
}

// FromName derives the suffix from name and calls FromSuffix.
func (reg *Registry) FromName(name string) (Unit, error) {
	_, typ, ok := SplitName(name)
	if !ok {
		return nil, &UnsupportedTypeError{Name: name}
	}
	return reg.FromSuffix(string(typ), name)
}

// Lookup is FromName for listings of every unit: a well-formed name of an
// unregistered type yields a Generic handle instead of an error.
func (reg *Registry) Lookup(name string) (Unit, bool) {
	_, typ, ok := SplitName(name)
	if !ok {
		return nil, false
	}
	if u, err := reg.FromSuffix(string(typ), name); err == nil {
		return u, true
	}
	return NewGeneric(name, typ, reg.runner), true
}
