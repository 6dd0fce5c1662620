package cprint

import (
	"bufio"
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTextKinds(t *testing.T) {
	t.Parallel()
	assert.True(t, isText(reflect.TypeFor[string]()))
	assert.True(t, isText(reflect.TypeFor[[]byte]()))
	assert.True(t, isText(reflect.TypeFor[[8]byte]()))
	assert.True(t, isText(reflect.TypeFor[[]rune]()))
	// byte and rune are uint8 and int32; sequences of those kinds are
	// indistinguishable from text.
	assert.True(t, isText(reflect.TypeFor[[]uint8]()))
	assert.True(t, isText(reflect.TypeFor[[4]int32]()))
	assert.False(t, isText(reflect.TypeFor[[]int]()))
	assert.False(t, isText(reflect.TypeFor[[]int64]()))
	assert.False(t, isText(reflect.TypeFor[[]string]()))
}

func TestShapeOfNilType(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ShapeNone, shapeOf(nil))
}

func TestCompareValues(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		a, b any
		want int
	}{
		"int less":     {a: 1, b: 2, want: -1},
		"int equal":    {a: 3, b: 3, want: 0},
		"int greater":  {a: 5, b: 4, want: 1},
		"uint":         {a: uint(1), b: uint(9), want: -1},
		"float":        {a: 2.5, b: 1.5, want: 1},
		"string":       {a: "apple", b: "banana", want: -1},
		"bool":         {a: false, b: true, want: -1},
		"struct keys":  {a: Pair[int, int]{1, 2}, b: Pair[int, int]{1, 3}, want: -1},
		"mixed kinds":  {a: 1, b: "x", want: -1},
		"string equal": {a: "x", b: "x", want: 0},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := compareValues(reflect.ValueOf(tc.a), reflect.ValueOf(tc.b))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSortedKeysStable(t *testing.T) {
	t.Parallel()
	m := map[string]int{"b": 2, "a": 1, "c": 3}
	rv := reflect.ValueOf(m)
	var first, second []string
	for _, k := range sortedKeys(rv) {
		first = append(first, k.String())
	}
	for _, k := range sortedKeys(rv) {
		second = append(second, k.String())
	}
	assert.Equal(t, []string{"a", "b", "c"}, first)
	assert.Equal(t, first, second)
}

func TestLeadRune(t *testing.T) {
	t.Parallel()
	r, ok := leadRune(", ")
	assert.True(t, ok)
	assert.Equal(t, ',', r)

	r, ok = leadRune("<<")
	assert.True(t, ok)
	assert.Equal(t, '<', r)

	_, ok = leadRune("   ")
	assert.False(t, ok)
}

func TestStopRunes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ",]", stopRunes(Delimiters{Prefix: "[", Separator: ", ", Suffix: "]"}))
	// A whitespace separator contributes no stop rune; elements split on
	// whitespace alone.
	assert.Equal(t, "|", stopRunes(Delimiters{Prefix: "|", Separator: " ", Suffix: "|"}))
}

func TestScannerReadToken(t *testing.T) {
	t.Parallel()
	s := &scanner{r: bufio.NewReader(strings.NewReader("123, 456]"))}
	tok, err := s.readToken(",]")
	require.NoError(t, err)
	assert.Equal(t, "123", tok)
}

func TestScannerReadQuoted(t *testing.T) {
	t.Parallel()
	s := &scanner{r: bufio.NewReader(strings.NewReader(`"a\"b" rest`))}
	raw, err := s.readQuoted()
	require.NoError(t, err)
	assert.Equal(t, `"a\"b"`, raw)
}

func TestScannerExpectLitMultiRune(t *testing.T) {
	t.Parallel()
	s := &scanner{r: bufio.NewReader(strings.NewReader("  <<1"))}
	require.NoError(t, s.expectLit("<<"))
	ch, err := s.peek()
	require.NoError(t, err)
	assert.Equal(t, '1', ch)
}

func TestUnpackSeparatorPlacement(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	f := defaultFormatter{delims: defaults[ShapeTuple]}
	require.NoError(t, unpack(&buf, []any{1, 2, 3}, f))
	assert.Equal(t, "1, 2, 3", buf.String())

	buf.Reset()
	require.NoError(t, unpack(&buf, nil, f))
	assert.Empty(t, buf.String())
}
