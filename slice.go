package ranges

import "slices"

// Slice is a random-access range over a Go slice. Positions are indices.
type Slice[T any] struct {
	elems []T
}

// Borrow returns a range that aliases s. Writes to s's elements are visible through the
// range; the range's length is fixed at len(s).
func Borrow[T any](s []T) *Slice[T] {
	return &Slice[T]{elems: s}
}

// Own returns a range over a copy of s. Later writes to s are not visible through it.
func Own[T any](s []T) *Slice[T] {
	return &Slice[T]{elems: slices.Clone(s)}
}

// Of returns a range owning the given values.
func Of[T any](vals ...T) *Slice[T] {
	return Own(vals)
}

func (s *Slice[T]) Begin() int          { return 0 }
func (s *Slice[T]) End() int            { return len(s.elems) }
func (s *Slice[T]) Next(p int) int      { return p + 1 }
func (s *Slice[T]) Prev(p int) int      { return p - 1 }
func (s *Slice[T]) Offset(p, n int) int { return p + n }
func (s *Slice[T]) Get(p int) T         { return s.elems[p] }
func (s *Slice[T]) Len() int            { return len(s.elems) }
func (s *Slice[T]) Multipass()          {}

// Refs is a random-access range whose elements are pointers into a borrowed slice, so
// callers can write through the values they read.
type Refs[T any] struct {
	elems []T
}

// BorrowRefs returns a range of pointers to the elements of s.
func BorrowRefs[T any](s []T) *Refs[T] {
	return &Refs[T]{elems: s}
}

func (r *Refs[T]) Begin() int          { return 0 }
func (r *Refs[T]) End() int            { return len(r.elems) }
func (r *Refs[T]) Next(p int) int      { return p + 1 }
func (r *Refs[T]) Prev(p int) int      { return p - 1 }
func (r *Refs[T]) Offset(p, n int) int { return p + n }
func (r *Refs[T]) Get(p int) *T        { return &r.elems[p] }
func (r *Refs[T]) Len() int            { return len(r.elems) }
func (r *Refs[T]) Multipass()          {}
