package cprint

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNotPrintable = errors.New("type not printable as a container")
	ErrNotParseable = errors.New("type not parseable as a container")
	ErrSyntax       = errors.New("malformed container text")
)

// Write renders v to w in bracketed, delimiter-separated form. v must
// classify as a container (see [IsPrintable]); anything else returns
// [ErrNotPrintable]. Output is written strictly left-to-right and any sink
// error is returned as-is.
func Write(w io.Writer, v any) error {
	return WriteWith(w, v, nil)
}

// WriteWith is [Write] with a caller-supplied [Formatter]. The formatter
// applies to the outermost container; nested containers reached through
// [WriteElement] render with default formatting, so a custom formatter
// changes presentation without altering traversal. A nil formatter means
// the default.
func WriteWith(w io.Writer, v any, f Formatter) error {
	rv := toValue(v)
	if !rv.IsValid() || shapeOf(rv.Type()) == ShapeNone {
		return fmt.Errorf("%w: %T", ErrNotPrintable, v)
	}
	return writeValue(w, rv, f)
}

// Marshal renders v and returns the bytes.
func Marshal(v any) ([]byte, error) {
	return MarshalWith(v, nil)
}

// MarshalWith is [Marshal] with a caller-supplied [Formatter].
func MarshalWith(v any, f Formatter) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteWith(&buf, v, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeValue dispatches rv to the strategy its shape demands. rv has been
// unboxed by the caller and classifies as printable.
func writeValue(w io.Writer, rv reflect.Value, f Formatter) error {
	shape := shapeOf(rv.Type())
	if f == nil {
		f = defaultFormatter{delims: delimsOf(rv)}
	}
	switch shape {
	case ShapePair:
		return writePair(w, rv, f)
	case ShapeTuple:
		return writeTuple(w, rv, f)
	case ShapeSet, ShapeSeq:
		empty, elems := elementsOf(rv, shape)
		return writeIterable(w, f, empty, elems)
	default:
		return fmt.Errorf("%w: %s", ErrNotPrintable, rv.Type())
	}
}
