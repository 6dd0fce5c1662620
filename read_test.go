package cprint_test

import (
	"strings"
	"testing"

	"github.com/bjaus/cprint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSlice(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  []int
	}{
		"basic":      {input: "[1, 2, 3, 4]", want: []int{1, 2, 3, 4}},
		"empty":      {input: "[]", want: []int{}},
		"whitespace": {input: "  [ 1 ,2,  3 ]  ", want: []int{1, 2, 3}},
		"negative":   {input: "[-1, -2]", want: []int{-1, -2}},
		"single":     {input: "[42]", want: []int{42}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var got []int
			err := cprint.Read(strings.NewReader(tc.input), &got)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadSet(t *testing.T) {
	t.Parallel()
	var got map[int]struct{}
	err := cprint.Read(strings.NewReader("{1, 2, 3}"), &got)
	require.NoError(t, err)
	assert.Equal(t, map[int]struct{}{1: {}, 2: {}, 3: {}}, got)
}

func TestReadPair(t *testing.T) {
	t.Parallel()
	var got cprint.Pair[int, int]
	err := cprint.Read(strings.NewReader("(10, 100)"), &got)
	require.NoError(t, err)
	assert.Equal(t, cprint.MkPair(10, 100), got)

	var mixed cprint.Pair[string, float64]
	err = cprint.Read(strings.NewReader(`("pi", 3.14)`), &mixed)
	require.NoError(t, err)
	assert.Equal(t, cprint.MkPair("pi", 3.14), mixed)
}

func TestReadMap(t *testing.T) {
	t.Parallel()
	var got map[int]string
	err := cprint.Read(strings.NewReader(`[(1, "Template"), (2, "Meta"), (3, "Programming")]`), &got)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "Template", 2: "Meta", 3: "Programming"}, got)
}

func TestReadNested(t *testing.T) {
	t.Parallel()
	var got [][]int
	err := cprint.Read(strings.NewReader("[[1, 2], [], [3]]"), &got)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {}, {3}}, got)
}

func TestReadArray(t *testing.T) {
	t.Parallel()
	var got [4]int
	err := cprint.Read(strings.NewReader("[1, 2, 3, 4]"), &got)
	require.NoError(t, err)
	assert.Equal(t, [4]int{1, 2, 3, 4}, got)
}

func TestReadArrayLengthMismatch(t *testing.T) {
	t.Parallel()
	var short [4]int
	err := cprint.Read(strings.NewReader("[1, 2]"), &short)
	require.ErrorIs(t, err, cprint.ErrSyntax)

	var long [2]int
	err = cprint.Read(strings.NewReader("[1, 2, 3]"), &long)
	require.ErrorIs(t, err, cprint.ErrSyntax)
}

func TestReadQuotedStrings(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  []string
	}{
		"spaces":  {input: `["a b", "c"]`, want: []string{"a b", "c"}},
		"escapes": {input: `["a\"b", "tab\there"]`, want: []string{`a"b`, "tab\there"}},
		"bare":    {input: `[one, two]`, want: []string{"one", "two"}},
		"empty":   {input: `[""]`, want: []string{""}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var got []string
			err := cprint.Read(strings.NewReader(tc.input), &got)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadScalarKinds(t *testing.T) {
	t.Parallel()
	var bools []bool
	require.NoError(t, cprint.Read(strings.NewReader("[true, false]"), &bools))
	assert.Equal(t, []bool{true, false}, bools)

	var floats []float64
	require.NoError(t, cprint.Read(strings.NewReader("[1.5, -2.25]"), &floats))
	assert.Equal(t, []float64{1.5, -2.25}, floats)

	var uints []uint8
	require.NoError(t, cprint.Read(strings.NewReader("[0, 255]"), &uints))
	assert.Equal(t, []uint8{0, 255}, uints)
}

func TestReadRegisteredDelimiters(t *testing.T) {
	t.Parallel()
	// idSet is registered with << >> in cprint_test.go; parsing honors the
	// same override as printing.
	var got idSet
	err := cprint.Read(strings.NewReader("<<1, 2, 3>>"), &got)
	require.NoError(t, err)
	assert.Equal(t, idSet{1: {}, 2: {}, 3: {}}, got)
}

func TestReadWhitespaceSeparator(t *testing.T) {
	t.Parallel()
	// bars separates elements with a space only; reading accepts exactly
	// what writing emits.
	data, err := cprint.Marshal(bars{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, "|1 2 3|", string(data))

	var got bars
	require.NoError(t, cprint.Unmarshal(data, &got))
	assert.Equal(t, bars{1, 2, 3}, got)

	var empty bars
	require.NoError(t, cprint.Unmarshal([]byte("||"), &empty))
	assert.Empty(t, empty)
}

func TestReadSyntaxErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"missing prefix":   "1, 2]",
		"missing suffix":   "[1, 2",
		"missing sep":      "[1 2]",
		"wrong bracket":    "{1, 2]",
		"bad int":          "[1, two]",
		"int overflow":     "[300]",
		"trailing escape":  `["abc]`,
		"empty input":      "",
		"bare separator":   "[,]",
		"unclosed nesting": "[[1, 2]",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var got []int
			dst := any(&got)
			if name == "trailing escape" {
				var s []string
				dst = &s
			}
			if name == "int overflow" {
				var b []int8
				dst = &b
			}
			err := cprint.Read(strings.NewReader(input), dst)
			require.ErrorIs(t, err, cprint.ErrSyntax)
		})
	}
}

func TestReadLeavesDestinationOnError(t *testing.T) {
	t.Parallel()
	got := []int{9, 9}
	err := cprint.Read(strings.NewReader("[1, 2"), &got)
	require.ErrorIs(t, err, cprint.ErrSyntax)
	assert.Equal(t, []int{9, 9}, got)
}

func TestReadRejectsUnparseable(t *testing.T) {
	t.Parallel()
	var tup cprint.Tuple
	require.ErrorIs(t, cprint.Read(strings.NewReader("<1>"), &tup), cprint.ErrNotParseable)

	var str string
	require.ErrorIs(t, cprint.Read(strings.NewReader("x"), &str), cprint.ErrNotParseable)

	var ringDst ring
	require.ErrorIs(t, cprint.Read(strings.NewReader("[1]"), &ringDst), cprint.ErrNotParseable)

	var rec recList
	require.ErrorIs(t, cprint.Read(strings.NewReader("[[]]"), &rec), cprint.ErrNotParseable)

	require.ErrorIs(t, cprint.Read(strings.NewReader("[1]"), []int{}), cprint.ErrNotParseable)
	require.ErrorIs(t, cprint.Read(strings.NewReader("[1]"), (*[]int)(nil)), cprint.ErrNotParseable)
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()
	var got []int
	require.NoError(t, cprint.Unmarshal([]byte("[5, 6]"), &got))
	assert.Equal(t, []int{5, 6}, got)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	value := map[string][]int{"a": {1, 2}, "b": {3}}
	data, err := cprint.Marshal(value)
	require.NoError(t, err)

	var got map[string][]int
	require.NoError(t, cprint.Unmarshal(data, &got))
	assert.Equal(t, value, got)
}
