package cprint

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Read parses bracketed container text from r into the value v points to.
// The accepted grammar is exactly what [Write] emits for v's type, resolved
// through the same delimiter registry, with arbitrary whitespace tolerated
// around tokens. v must be a non-nil pointer to a parseable type (see
// [IsParseable]); otherwise [ErrNotParseable] is returned. The destination
// is assigned only after a fully successful parse, so a partial read leaves
// *v untouched. Malformed input returns an error wrapping [ErrSyntax].
func Read(r io.Reader, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: %T is not a non-nil pointer", ErrNotParseable, v)
	}
	target := rv.Elem()
	if !isParseable(target.Type()) {
		return fmt.Errorf("%w: %s", ErrNotParseable, target.Type())
	}
	s := &scanner{r: bufio.NewReader(r)}
	parsed := reflect.New(target.Type()).Elem()
	if err := parseContainer(s, parsed); err != nil {
		return err
	}
	target.Set(parsed)
	return nil
}

// Unmarshal parses bracketed container text from data into the value v
// points to. It is a thin wrapper around [Read].
func Unmarshal(data []byte, v any) error {
	return Read(bytes.NewReader(data), v)
}

// parseContainer dispatches on rv's shape. rv is a settable scratch value.
func parseContainer(s *scanner, rv reflect.Value) error {
	t := rv.Type()
	switch shapeOf(t) {
	case ShapePair:
		return parsePair(s, rv)
	case ShapeSet:
		return parseSet(s, rv)
	case ShapeSeq:
		switch t.Kind() {
		case reflect.Slice:
			return parseSlice(s, rv)
		case reflect.Array:
			return parseArray(s, rv)
		case reflect.Map:
			return parseMap(s, rv)
		}
	}
	return fmt.Errorf("%w: %s", ErrNotParseable, t)
}

// parseElement parses one element: containers recurse, leaves scan a token
// bounded by stops (the enclosing container's separator and suffix runes).
func parseElement(s *scanner, rv reflect.Value, stops string) error {
	if isParseable(rv.Type()) {
		return parseContainer(s, rv)
	}
	return scanLeaf(s, rv, stops)
}

func parsePair(s *scanner, rv reflect.Value) error {
	d := delimsOf(rv)
	first, second, _ := pairFields(rv.Type())
	if err := s.expectLit(d.Prefix); err != nil {
		return err
	}
	stops := stopRunes(d)
	if err := parseElement(s, rv.FieldByIndex(first.Index), stops); err != nil {
		return err
	}
	if err := s.expectLit(d.Separator); err != nil {
		return err
	}
	if err := parseElement(s, rv.FieldByIndex(second.Index), stops); err != nil {
		return err
	}
	return s.expectLit(d.Suffix)
}

func parseSlice(s *scanner, rv reflect.Value) error {
	t := rv.Type()
	out := reflect.MakeSlice(t, 0, 0)
	err := parseList(s, delimsOf(rv), func(s *scanner, stops string) error {
		elem := reflect.New(t.Elem()).Elem()
		if err := parseElement(s, elem, stops); err != nil {
			return err
		}
		out = reflect.Append(out, elem)
		return nil
	})
	if err != nil {
		return err
	}
	rv.Set(out)
	return nil
}

func parseArray(s *scanner, rv reflect.Value) error {
	t := rv.Type()
	i := 0
	err := parseList(s, delimsOf(rv), func(s *scanner, stops string) error {
		if i >= t.Len() {
			return fmt.Errorf("%w: more than %d elements for %s", ErrSyntax, t.Len(), t)
		}
		if err := parseElement(s, rv.Index(i), stops); err != nil {
			return err
		}
		i++
		return nil
	})
	if err != nil {
		return err
	}
	if i != t.Len() {
		return fmt.Errorf("%w: %d elements for %s", ErrSyntax, i, t)
	}
	return nil
}

func parseMap(s *scanner, rv reflect.Value) error {
	t := rv.Type()
	out := reflect.MakeMap(t)
	// Entries read back through the same pair delimiters they print with.
	entry := lookupDelims(reflect.TypeFor[Pair[any, any]]())
	err := parseList(s, delimsOf(rv), func(s *scanner, _ string) error {
		k := reflect.New(t.Key()).Elem()
		v := reflect.New(t.Elem()).Elem()
		if err := s.expectLit(entry.Prefix); err != nil {
			return err
		}
		stops := stopRunes(entry)
		if err := parseElement(s, k, stops); err != nil {
			return err
		}
		if err := s.expectLit(entry.Separator); err != nil {
			return err
		}
		if err := parseElement(s, v, stops); err != nil {
			return err
		}
		if err := s.expectLit(entry.Suffix); err != nil {
			return err
		}
		out.SetMapIndex(k, v)
		return nil
	})
	if err != nil {
		return err
	}
	rv.Set(out)
	return nil
}

func parseSet(s *scanner, rv reflect.Value) error {
	t := rv.Type()
	out := reflect.MakeMap(t)
	member := reflect.ValueOf(struct{}{})
	err := parseList(s, delimsOf(rv), func(s *scanner, stops string) error {
		k := reflect.New(t.Key()).Elem()
		if err := parseElement(s, k, stops); err != nil {
			return err
		}
		out.SetMapIndex(k, member)
		return nil
	})
	if err != nil {
		return err
	}
	rv.Set(out)
	return nil
}

// parseList drives the shared prefix / element / separator / suffix loop,
// calling each for every element. The next delimiter is detected by its
// lead rune, then consumed in full by expectLit.
func parseList(s *scanner, d Delimiters, each func(s *scanner, stops string) error) error {
	if err := s.expectLit(d.Prefix); err != nil {
		return err
	}
	suf, ok := leadRune(d.Suffix)
	if !ok {
		return fmt.Errorf("%w: empty suffix delimiter", ErrSyntax)
	}
	sep, hasSep := leadRune(d.Separator)
	stops := stopRunes(d)
	for {
		if err := s.skipSpace(); err != nil {
			return err
		}
		ch, err := s.peek()
		if err != nil {
			return unexpected(err)
		}
		if ch == suf {
			return s.expectLit(d.Suffix)
		}
		if err := each(s, stops); err != nil {
			return err
		}
		if err := s.skipSpace(); err != nil {
			return err
		}
		ch, err = s.peek()
		if err != nil {
			return unexpected(err)
		}
		switch {
		case ch == suf:
			// Consumed on the next pass.
		case !hasSep:
			// Whitespace-only separator: tokens are already split on
			// whitespace, so this rune starts the next element.
		case ch == sep:
			if err := s.expectLit(d.Separator); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: got %q, want %q or %q", ErrSyntax, ch, sep, suf)
		}
	}
}

// scanLeaf parses a scalar into rv using strconv by kind. Strings accept a
// Go-quoted token (what [Write] emits) or a bare token.
func scanLeaf(s *scanner, rv reflect.Value, stops string) error {
	if err := s.skipSpace(); err != nil {
		return err
	}
	if rv.Kind() == reflect.String {
		ch, err := s.peek()
		if err != nil {
			return unexpected(err)
		}
		if ch == '"' {
			raw, err := s.readQuoted()
			if err != nil {
				return err
			}
			str, err := strconv.Unquote(raw)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrSyntax, raw, err)
			}
			rv.SetString(str)
			return nil
		}
	}
	tok, err := s.readToken(stops)
	if err != nil {
		return err
	}
	switch rv.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(tok)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrSyntax, tok, err)
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(tok, 10, rv.Type().Bits())
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrSyntax, tok, err)
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(tok, 10, rv.Type().Bits())
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrSyntax, tok, err)
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(tok, rv.Type().Bits())
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrSyntax, tok, err)
		}
		rv.SetFloat(n)
	case reflect.String:
		rv.SetString(tok)
	default:
		return fmt.Errorf("%w: %s", ErrNotParseable, rv.Type())
	}
	return nil
}

// --- Scanner ---

type scanner struct {
	r *bufio.Reader
}

func (s *scanner) skipSpace() error {
	for {
		ch, _, err := s.r.ReadRune()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !unicode.IsSpace(ch) {
			return s.r.UnreadRune()
		}
	}
}

func (s *scanner) peek() (rune, error) {
	ch, _, err := s.r.ReadRune()
	if err != nil {
		return 0, err
	}
	return ch, s.r.UnreadRune()
}

// expectLit skips whitespace and consumes the whitespace-trimmed body of
// lit, rune by rune. A delimiter that is all whitespace matches trivially.
func (s *scanner) expectLit(lit string) error {
	trimmed := strings.TrimSpace(lit)
	if trimmed == "" {
		return nil
	}
	if err := s.skipSpace(); err != nil {
		return err
	}
	for _, want := range trimmed {
		ch, _, err := s.r.ReadRune()
		if err != nil {
			return unexpected(err)
		}
		if ch != want {
			return fmt.Errorf("%w: got %q, want %q", ErrSyntax, ch, trimmed)
		}
	}
	return nil
}

// readToken accumulates runes until whitespace, EOF, or a stop rune.
func (s *scanner) readToken(stops string) (string, error) {
	var sb strings.Builder
	for {
		ch, _, err := s.r.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		if unicode.IsSpace(ch) || strings.ContainsRune(stops, ch) {
			if err := s.r.UnreadRune(); err != nil {
				return "", err
			}
			break
		}
		sb.WriteRune(ch)
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: expected a value", ErrSyntax)
	}
	return sb.String(), nil
}

// readQuoted consumes a double-quoted token, quotes and escapes included.
func (s *scanner) readQuoted() (string, error) {
	var sb strings.Builder
	ch, _, err := s.r.ReadRune()
	if err != nil {
		return "", unexpected(err)
	}
	sb.WriteRune(ch)
	escaped := false
	for {
		ch, _, err := s.r.ReadRune()
		if err != nil {
			return "", unexpected(err)
		}
		sb.WriteRune(ch)
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' {
			escaped = true
			continue
		}
		if ch == '"' {
			return sb.String(), nil
		}
	}
}

// leadRune returns the first rune of lit after trimming whitespace.
func leadRune(lit string) (rune, bool) {
	trimmed := strings.TrimSpace(lit)
	if trimmed == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(trimmed)
	return r, true
}

// stopRunes collects the runes that terminate a bare leaf token inside a
// container: the separator and suffix lead runes.
func stopRunes(d Delimiters) string {
	var sb strings.Builder
	if r, ok := leadRune(d.Separator); ok {
		sb.WriteRune(r)
	}
	if r, ok := leadRune(d.Suffix); ok {
		sb.WriteRune(r)
	}
	return sb.String()
}

func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s", ErrSyntax, io.ErrUnexpectedEOF)
	}
	return err
}
