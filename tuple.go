package cprint

import (
	"fmt"
	"io"
	"reflect"
)

// Tuple is a fixed-length heterogeneous record. It renders as
// "<e0, e1, ...>" in element order; the zero-length tuple renders as "<>".
// Tuples print but do not parse: the element types are erased, so [Read]
// rejects them.
type Tuple []any

// Tuple implements [Tupler].
func (t Tuple) Tuple() []any { return t }

// writeTuple emits prefix, the unpacked elements, suffix.
func writeTuple(w io.Writer, rv reflect.Value, f Formatter) error {
	if !rv.CanInterface() {
		return fmt.Errorf("%w: %s", ErrNotPrintable, rv.Type())
	}
	elems := rv.Interface().(Tupler).Tuple()
	if err := f.Prefix(w); err != nil {
		return err
	}
	if err := unpack(w, elems, f); err != nil {
		return err
	}
	return f.Suffix(w)
}

// unpack recurses on the leading sub-record before emitting the final
// element, inserting a separator ahead of every element except the first.
// Elements therefore reach the sink in left-to-right order.
func unpack(w io.Writer, elems []any, f Formatter) error {
	n := len(elems)
	if n == 0 {
		return nil
	}
	if err := unpack(w, elems[:n-1], f); err != nil {
		return err
	}
	if n > 1 {
		if err := f.Separator(w); err != nil {
			return err
		}
	}
	return f.Element(w, elems[n-1])
}
