// Package cprint renders container values in bracketed, delimiter-separated
// form, and parses that form back.
//
// The central entry points are [Write] and [Marshal], which accept any value
// that classifies as a container: slices, arrays, maps, sets
// (map[K]struct{}), the [Pair] and [Tuple] product types, and any type that
// implements [Iterable]. Each shape has its own bracket style:
//
//	cprint.Write(os.Stdout, []int{1, 2, 3, 4})          // [1, 2, 3, 4]
//	cprint.Write(os.Stdout, map[int]struct{}{1: {}})     // {1}
//	cprint.Write(os.Stdout, cprint.MkPair(10, 100))      // (10, 100)
//	cprint.Write(os.Stdout, cprint.Tuple{1, 2, 3})       // <1, 2, 3>
//
// Maps render as pairs inside generic brackets, in sorted key order:
//
//	cprint.Write(os.Stdout, map[int]string{1: "a"})      // [(1, "a")]
//
// Elements that are themselves containers recurse through the same pipeline,
// so nested containers compose. Strings and byte/rune sequences never
// classify as containers; as elements they render Go-quoted.
//
// # Classification
//
// Whether a type qualifies is a pure function of the type, decided by a
// fixed rule order: text-like types are excluded first, then [Pairer], then
// [Tupler], then slices and non-character arrays, then maps, then
// [Iterable]. Use [IsPrintable], [IsParseable], or [ShapeFor] to check:
//
//	if cprint.IsPrintable[MyRing]() { ... }
//
// Capability interfaces are satisfied structurally, so a type that embeds an
// Iterable implementation qualifies through the promoted methods. Adapters
// that hide iteration, like a stack exposing only Push and Pop, do not
// qualify and are rejected with [ErrNotPrintable].
//
// # Delimiters
//
// Each shape carries a default triple: "[", ", ", "]" for generic
// iterables, braces for sets, parentheses for pairs, angle brackets for
// tuples. Override per concrete type with [Register] during init, or have
// the type implement [Delimited]; [DelimsFor] reports the resolved triple.
//
// # Custom formatting
//
// [WriteWith] swaps the element formatter. A [Formatter] receives the four
// emit operations and controls presentation only; traversal and element
// order never change. [WriteElement] provides the default element behavior,
// recursion included, for formatters that only want to decorate:
//
//	cprint.WriteWith(os.Stdout, []int{1, 2}, myFormatter)
//
// # Parsing
//
// [Read] and [Unmarshal] accept the same grammar [Write] emits, resolved
// through the same delimiter registry, with whitespace tolerated around
// tokens. The destination is assigned only after a fully successful parse.
// Tuples do not parse: their element types are erased at runtime.
//
// # Streaming
//
// [WriteSeq] prints the items of an [iter.Seq] as a generic iterable,
// writing each item as it arrives; [WriteChan] does the same for channels
// and [WriteSeqWith] takes a custom [Formatter].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrNotPrintable] — the value's type does not classify as a container
//   - [ErrNotParseable] — the destination type cannot be parsed into
//   - [ErrSyntax] — malformed container text
//
// Sink write errors propagate unmodified. Values that reference themselves
// through pointers or interfaces are not detected and will recurse without
// bound.
package cprint
