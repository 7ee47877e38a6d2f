package iter

import (
	"iter"

	"golang.org/x/exp/constraints"

	ranges "github.com/brynbellomy/go-ranges"
	"github.com/brynbellomy/go-ranges/tuple"
	"github.com/brynbellomy/go-ranges/zip"
)

// Zip yields pairs of elements from a and b until either sequence ends. Each sequence is
// pulled at most one element past the shorter one's length.
func Zip[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		ra, rb := ranges.FromSeq(a), ranges.FromSeq(b)
		defer ra.Stop()
		defer rb.Stop()

		for x, y := range zip.Input2(ra, rb).All() {
			if !yield(x, y) {
				return
			}
		}
	}
}

func Zip3[A, B, C any](a iter.Seq[A], b iter.Seq[B], c iter.Seq[C]) iter.Seq[tuple.T3[A, B, C]] {
	return func(yield func(tuple.T3[A, B, C]) bool) {
		ra, rb, rc := ranges.FromSeq(a), ranges.FromSeq(b), ranges.FromSeq(c)
		defer ra.Stop()
		defer rb.Stop()
		defer rc.Stop()

		for t := range zip.Input3(ra, rb, rc).All() {
			if !yield(t) {
				return
			}
		}
	}
}

// ZipN yields one slice per step holding the current element of every sequence. With no
// sequences it yields nothing.
func ZipN[T any](seqs ...iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		erased := make([]ranges.Erased[T], len(seqs))
		for i, seq := range seqs {
			pull := ranges.FromSeq(seq)
			defer pull.Stop()
			erased[i] = ranges.Erase[T, int](pull)
		}

		for row := range zip.N(erased...).All() {
			if !yield(row) {
				return
			}
		}
	}
}

// ZipSlices yields pairs of elements of a and b up to the shorter length.
func ZipSlices[A, B any](a []A, b []B) iter.Seq2[A, B] {
	return zip.RandomAccess2(ranges.Borrow(a), ranges.Borrow(b)).All()
}

func Map[T, Out any](s iter.Seq[T], fn func(x T) Out) iter.Seq[Out] {
	return func(yield func(Out) bool) {
		for v := range s {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Range yields the integers in [start, end).
func Range[Elem constraints.Integer](start, end Elem) iter.Seq[Elem] {
	return ranges.All(ranges.NewIota(start, end))
}

func Slice[T any](slice []T) iter.Seq[T] {
	return ranges.All(ranges.Borrow(slice))
}

// Collect2 splits a paired sequence into two slices.
func Collect2[A, B any](seq iter.Seq2[A, B]) ([]A, []B) {
	var as []A
	var bs []B
	for a, b := range seq {
		as = append(as, a)
		bs = append(bs, b)
	}
	return as, bs
}
