package cprint

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
)

// Formatter controls how a container's pieces reach the sink. The Dispatcher
// calls the four operations in strict left-to-right output order; swapping
// the Formatter changes presentation only, never which elements are visited.
// Write errors from the sink propagate unmodified.
type Formatter interface {
	Prefix(w io.Writer) error
	Element(w io.Writer, v any) error
	Separator(w io.Writer) error
	Suffix(w io.Writer) error
}

// defaultFormatter wires the structural operations to a resolved delimiter
// triple and element output to [WriteElement].
type defaultFormatter struct {
	delims Delimiters
}

func (f defaultFormatter) Prefix(w io.Writer) error {
	_, err := io.WriteString(w, f.delims.Prefix)
	return err
}

func (f defaultFormatter) Separator(w io.Writer) error {
	_, err := io.WriteString(w, f.delims.Separator)
	return err
}

func (f defaultFormatter) Suffix(w io.Writer) error {
	_, err := io.WriteString(w, f.delims.Suffix)
	return err
}

func (f defaultFormatter) Element(w io.Writer, v any) error {
	return WriteElement(w, v)
}

// WriteElement writes a single element the way the default formatter does:
// container values re-enter [Write]'s dispatch with default formatting,
// strings are Go-quoted, and everything else renders with fmt's %v verb.
// Custom [Formatter] implementations can call it to decorate elements
// without re-implementing recursion.
func WriteElement(w io.Writer, v any) error {
	rv := toValue(v)
	if !rv.IsValid() {
		_, err := io.WriteString(w, "<nil>")
		return err
	}
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	t := rv.Type()
	if shapeOf(t) != ShapeNone {
		return writeValue(w, rv, nil)
	}
	if t.Kind() == reflect.String {
		_, err := io.WriteString(w, strconv.Quote(rv.String()))
		return err
	}
	_, err := fmt.Fprintf(w, "%v", boxed(rv))
	return err
}

// toValue unboxes v, unwrapping interface indirection so that elements of
// []any and map[string]any dispatch on their dynamic types.
func toValue(v any) reflect.Value {
	rv, ok := v.(reflect.Value)
	if !ok {
		rv = reflect.ValueOf(v)
	}
	for rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}
	return rv
}

// boxed converts rv back to a plain value for formatter consumption. Values
// reflect refuses to unbox (unexported struct fields) stay wrapped; fmt
// prints a reflect.Value as the value it holds, so output is unaffected.
func boxed(rv reflect.Value) any {
	if rv.CanInterface() {
		return rv.Interface()
	}
	return rv
}
