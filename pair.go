package cprint

import (
	"fmt"
	"io"
	"reflect"
)

// Pair is a two-element product type. It renders as "(First, Second)" and,
// when both element types are parseable, reads back the same way. Map
// entries are boxed as Pair[any, any] during printing, so registering
// delimiters for that type restyles map entries as well.
type Pair[F, S any] struct {
	First  F
	Second S
}

// Pair implements [Pairer].
func (p Pair[F, S]) Pair() (first, second any) { return p.First, p.Second }

// MkPair returns a Pair of its arguments.
func MkPair[F, S any](first F, second S) Pair[F, S] {
	return Pair[F, S]{First: first, Second: second}
}

// writePair emits prefix, first element, separator, second element, suffix.
func writePair(w io.Writer, rv reflect.Value, f Formatter) error {
	first, second, err := pairElems(rv)
	if err != nil {
		return err
	}
	if err := f.Prefix(w); err != nil {
		return err
	}
	if err := f.Element(w, first); err != nil {
		return err
	}
	if err := f.Separator(w); err != nil {
		return err
	}
	if err := f.Element(w, second); err != nil {
		return err
	}
	return f.Suffix(w)
}

func pairElems(rv reflect.Value) (first, second any, err error) {
	if rv.CanInterface() {
		first, second = rv.Interface().(Pairer).Pair()
		return first, second, nil
	}
	// Reflection-only path for values reflect refuses to unbox.
	if f, s, ok := pairFields(rv.Type()); ok {
		return rv.FieldByIndex(f.Index), rv.FieldByIndex(s.Index), nil
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrNotPrintable, rv.Type())
}
