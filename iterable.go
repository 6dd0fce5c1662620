package cprint

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"reflect"
	"slices"
)

// writeIterable emits prefix, the elements with separators between adjacent
// pairs, and suffix. Emptiness comes from the container's own predicate, so
// an empty container yields exactly prefix+suffix.
func writeIterable(w io.Writer, f Formatter, empty bool, elems iter.Seq[any]) error {
	if err := f.Prefix(w); err != nil {
		return err
	}
	if empty {
		return f.Suffix(w)
	}
	first := true
	for e := range elems {
		if !first {
			if err := f.Separator(w); err != nil {
				return err
			}
		}
		first = false
		if err := f.Element(w, e); err != nil {
			return err
		}
	}
	return f.Suffix(w)
}

// elementsOf produces the element sequence for an iterable-shaped value
// along with its emptiness. Slices and arrays iterate in index order (an
// array's emptiness is its compile-time length being zero). Sets yield
// their keys and maps yield entries boxed as [Pair], both in sorted key
// order since Go map iteration has no stable order of its own. Iterable
// implementations supply their own order and emptiness.
func elementsOf(rv reflect.Value, shape Shape) (empty bool, elems iter.Seq[any]) {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len() == 0, func(yield func(any) bool) {
			for i := range rv.Len() {
				if !yield(boxed(rv.Index(i))) {
					return
				}
			}
		}
	case reflect.Map:
		keys := sortedKeys(rv)
		if shape == ShapeSet {
			return rv.Len() == 0, func(yield func(any) bool) {
				for _, k := range keys {
					if !yield(boxed(k)) {
						return
					}
				}
			}
		}
		return rv.Len() == 0, func(yield func(any) bool) {
			for _, k := range keys {
				entry := MkPair(boxed(k), boxed(rv.MapIndex(k)))
				if !yield(entry) {
					return
				}
			}
		}
	default:
		if !rv.CanInterface() {
			// Unreachable through exported entry points; avoids a
			// reflect panic on read-only values.
			return true, func(func(any) bool) {}
		}
		it := rv.Interface().(Iterable)
		return it.Empty(), it.Seq()
	}
}

// sortedKeys returns rv's map keys in ascending order.
func sortedKeys(rv reflect.Value) []reflect.Value {
	keys := rv.MapKeys()
	slices.SortFunc(keys, compareValues)
	return keys
}

// compareValues orders map keys. Ordered kinds compare natively; anything
// else falls back to comparing formatted text, which is arbitrary but
// stable, keeping repeated prints byte-identical.
func compareValues(a, b reflect.Value) int {
	for a.Kind() == reflect.Interface && !a.IsNil() {
		a = a.Elem()
	}
	for b.Kind() == reflect.Interface && !b.IsNil() {
		b = b.Elem()
	}
	if a.Kind() != b.Kind() {
		return cmp.Compare(int(a.Kind()), int(b.Kind()))
	}
	switch a.Kind() {
	case reflect.Bool:
		x, y := 0, 0
		if a.Bool() {
			x = 1
		}
		if b.Bool() {
			y = 1
		}
		return cmp.Compare(x, y)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	default:
		return cmp.Compare(fmt.Sprintf("%v", boxed(a)), fmt.Sprintf("%v", boxed(b)))
	}
}
