package cprint

import (
	"io"
	"iter"
)

// WriteSeq prints the items of an iterator as a generic iterable, writing
// each item as it arrives. Since emptiness is unknown up front, separators
// are placed ahead of every item after the first; an exhausted iterator
// yields exactly prefix+suffix.
func WriteSeq[T any](w io.Writer, seq iter.Seq[T]) error {
	return WriteSeqWith(w, seq, nil)
}

// WriteSeqWith is [WriteSeq] with a caller-supplied [Formatter]. A nil
// formatter means the default.
func WriteSeqWith[T any](w io.Writer, seq iter.Seq[T], f Formatter) error {
	if f == nil {
		f = defaultFormatter{delims: defaults[ShapeSeq]}
	}
	if err := f.Prefix(w); err != nil {
		return err
	}
	first := true
	var seqErr error
	seq(func(item T) bool {
		if !first {
			if err := f.Separator(w); err != nil {
				seqErr = err
				return false
			}
		}
		first = false
		if err := f.Element(w, item); err != nil {
			seqErr = err
			return false
		}
		return true
	})
	if seqErr != nil {
		return seqErr
	}
	return f.Suffix(w)
}

// WriteChan prints the items of a channel as a generic iterable.
// It is a thin wrapper around [WriteSeq].
func WriteChan[T any](w io.Writer, ch <-chan T) error {
	return WriteSeq(w, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
