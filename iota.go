package ranges

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Iota is a random-access range over the integers in [start, end). Positions are the
// integers themselves.
type Iota[I constraints.Integer] struct {
	start, end I
}

// NewIota returns the range [start, end). If end < start the range is empty.
func NewIota[I constraints.Integer](start, end I) *Iota[I] {
	if end < start {
		end = start
	}
	return &Iota[I]{start: start, end: end}
}

func (r *Iota[I]) Begin() I            { return r.start }
func (r *Iota[I]) End() I              { return r.end }
func (r *Iota[I]) Next(p I) I          { return p + 1 }
func (r *Iota[I]) Prev(p I) I          { return p - 1 }
func (r *Iota[I]) Offset(p I, n int) I { return p + I(n) }
func (r *Iota[I]) Get(p I) I           { return p }
func (r *Iota[I]) Multipass()          {}

// Len returns the number of elements. Spans wider than int saturate at math.MaxInt.
func (r *Iota[I]) Len() int {
	// Unsigned subtraction gives the exact span for signed and unsigned I, since end >= start.
	n := uint64(r.end) - uint64(r.start)
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}
