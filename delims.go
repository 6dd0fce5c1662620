package cprint

import "reflect"

// Delimiters is the triple of strings wrapped around and between a
// container's elements.
type Delimiters struct {
	Prefix    string
	Separator string
	Suffix    string
}

// Shape defaults. Initialized once, never mutated.
var defaults = map[Shape]Delimiters{
	ShapeSeq:   {"[", ", ", "]"},
	ShapeSet:   {"{", ", ", "}"},
	ShapePair:  {"(", ", ", ")"},
	ShapeTuple: {"<", ", ", ">"},
}

// registered holds per-concrete-type overrides. Written only by [Register],
// which is documented as init-time; lookups afterwards are read-only.
var registered = map[reflect.Type]Delimiters{}

// Delimited lets a type carry its own delimiter triple. It takes precedence
// over both [Register] overrides and the shape default.
type Delimited interface {
	Delims() Delimiters
}

// Register installs a delimiter override for the concrete type T, selected
// in preference to T's shape default. Call it during package initialization,
// before any printing or parsing; the registry is not synchronized.
func Register[T any](d Delimiters) {
	registered[reflect.TypeFor[T]()] = d
}

// DelimsFor returns the delimiter triple that printing a value of type T
// would use: the type's own [Delimited] triple if implemented, else a
// [Register] override, else the default for T's shape.
func DelimsFor[T any]() Delimiters {
	var zero T
	if d, ok := any(zero).(Delimited); ok {
		return d.Delims()
	}
	return lookupDelims(reflect.TypeFor[T]())
}

func lookupDelims(t reflect.Type) Delimiters {
	if d, ok := registered[t]; ok {
		return d
	}
	return defaults[shapeOf(t)]
}

// delimsOf resolves delimiters for a concrete value, honoring Delimited
// implementations when the value can be unboxed.
func delimsOf(rv reflect.Value) Delimiters {
	t := rv.Type()
	if t.Implements(delimitedType) && rv.CanInterface() {
		return rv.Interface().(Delimited).Delims()
	}
	return lookupDelims(t)
}

var delimitedType = reflect.TypeOf((*Delimited)(nil)).Elem()
