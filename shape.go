package cprint

import (
	"iter"
	"reflect"
)

// Shape is the structural classification of a type. Every type maps to
// exactly one Shape; classification depends only on static type information,
// never on a value's contents.
type Shape int

const (
	ShapeNone  Shape = iota // not printable as a container
	ShapeSeq                // generic iterable: slices, arrays, maps, Iterable types
	ShapeSet                // map[K]struct{}
	ShapePair               // Pairer types
	ShapeTuple              // Tupler types
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeSeq:
		return "seq"
	case ShapeSet:
		return "set"
	case ShapePair:
		return "pair"
	case ShapeTuple:
		return "tuple"
	default:
		return "none"
	}
}

// --- Capability Interfaces ---

// Pairer provides the two halves of a product type. Required for the pair
// rendering strategy. Implemented by [Pair] and by any user type that wants
// parenthesized two-element output.
type Pairer interface {
	Pair() (first, second any)
}

// Tupler provides a fixed-length heterogeneous record. Required for the
// tuple rendering strategy. Implemented by [Tuple]. The returned slice's
// length is the tuple's arity; zero arity is valid.
type Tupler interface {
	Tuple() []any
}

// Iterable exposes iteration order and emptiness. Types that implement it
// render as generic iterables even when reflection cannot see inside them.
// A type that embeds an Iterable implementation qualifies through the
// promoted methods, so wrappers of iterable types are detected too.
type Iterable interface {
	Seq() iter.Seq[any]
	Empty() bool
}

var (
	pairerType   = reflect.TypeOf((*Pairer)(nil)).Elem()
	tuplerType   = reflect.TypeOf((*Tupler)(nil)).Elem()
	iterableType = reflect.TypeOf((*Iterable)(nil)).Elem()
	emptyStruct  = reflect.TypeOf(struct{}{})
)

// shapeOf classifies t. The rules apply in priority order, first match wins:
// text-like types are excluded before anything else, then Pairer, then
// Tupler, then slices and non-character arrays, then maps, then Iterable.
// Classification never fails; unmatched types are ShapeNone.
func shapeOf(t reflect.Type) Shape {
	if t == nil || isText(t) {
		return ShapeNone
	}
	if t.Implements(pairerType) {
		return ShapePair
	}
	if t.Implements(tuplerType) {
		return ShapeTuple
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return ShapeSeq
	case reflect.Map:
		if t.Elem() == emptyStruct {
			return ShapeSet
		}
		return ShapeSeq
	}
	if t.Implements(iterableType) {
		return ShapeSeq
	}
	return ShapeNone
}

// isText reports whether t is a string-like type: the string kind, or a
// slice or fixed-size array of character-width elements. byte and rune are
// identical to uint8 and int32, so sequences of those kinds are always
// treated as text rather than as containers of numbers.
func isText(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.String:
		return true
	case reflect.Slice, reflect.Array:
		switch t.Elem().Kind() {
		case reflect.Uint8, reflect.Int32:
			return true
		}
	}
	return false
}

// ShapeFor returns the shape classification of type T.
func ShapeFor[T any]() Shape {
	return shapeOf(reflect.TypeFor[T]())
}

// IsPrintable reports whether values of type T qualify for container
// printing, i.e. whether [Write] will accept them.
func IsPrintable[T any]() bool {
	return shapeOf(reflect.TypeFor[T]()) != ShapeNone
}

// IsParseable reports whether [Read] can populate a value of type T.
// Sequences, sets, maps, and pairs qualify when their element types do;
// leaves must be bool, integer, float, or string kinds. Tuples are not
// parseable: element types are erased at runtime, so there is nothing to
// direct the parse. Iterable-interface types are not parseable either,
// since the interface has no insertion surface.
func IsParseable[T any]() bool {
	return isParseable(reflect.TypeFor[T]())
}

func isParseable(t reflect.Type) bool {
	return parseableWalk(t, map[reflect.Type]bool{})
}

// parseableWalk is isParseable with cycle detection. active holds the types
// on the current descent; a self-referential type (type T []T) revisits
// itself and answers false rather than recursing without bound. Entries are
// removed on the way out so sibling branches can share a type.
func parseableWalk(t reflect.Type, active map[reflect.Type]bool) bool {
	if active[t] {
		return false
	}
	active[t] = true
	defer delete(active, t)
	switch shapeOf(t) {
	case ShapeSet:
		return scannableWalk(t.Key(), active)
	case ShapePair:
		f, s, ok := pairFields(t)
		return ok && scannableWalk(f.Type, active) && scannableWalk(s.Type, active)
	case ShapeSeq:
		switch t.Kind() {
		case reflect.Slice, reflect.Array:
			return scannableWalk(t.Elem(), active)
		case reflect.Map:
			return scannableWalk(t.Key(), active) && scannableWalk(t.Elem(), active)
		}
	}
	return false
}

// scannableWalk reports whether t can appear as an element in parsed input:
// either a scalar leaf strconv can handle, or a parseable container.
func scannableWalk(t reflect.Type, active map[reflect.Type]bool) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return parseableWalk(t, active)
}

// pairFields returns the First and Second struct fields of a Pairer type.
// Parsing writes through these fields, so only struct-backed pairs with
// both fields exported are parseable.
func pairFields(t reflect.Type) (first, second reflect.StructField, ok bool) {
	if t.Kind() != reflect.Struct {
		return first, second, false
	}
	first, fok := t.FieldByName("First")
	second, sok := t.FieldByName("Second")
	if !fok || !sok || !first.IsExported() || !second.IsExported() {
		return first, second, false
	}
	return first, second, true
}
