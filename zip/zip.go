// Package zip combines several ranges into one range of tuples. The i-th element of a
// zip is the tuple of the i-th elements of its inputs, and a zip ends as soon as its
// shortest input ends.
//
// Shortest-input termination is not computed from lengths. Zip cursors compare equal
// when ANY of their per-range positions are equal, so a cursor equals End() as soon as
// one input reaches its end.
//
// The operations a zip cursor offers depend on the weakest input, and are chosen by the
// constructor:
//
//	Input2, Input3                  Get, Next, Equal
//	Forward2, Forward3              + PostNext
//	Bidirectional2, Bidirectional3  + Prev, PostPrev
//	RandomAccess2, RandomAccess3    + At
//
// Passing a range that lacks the constructor's tier does not compile. N zips any number
// of type-erased ranges sharing an element type and checks the tier at run time instead.
package zip

import (
	"iter"

	ranges "github.com/brynbellomy/go-ranges"
	"github.com/brynbellomy/go-ranges/tuple"
)

// lane is one input range of a zip together with a position in it.
type lane[T any, P comparable] struct {
	r ranges.Range[T, P]
	p P
}

func beginLane[T any, P comparable](r ranges.Range[T, P]) lane[T, P] {
	return lane[T, P]{r: r, p: r.Begin()}
}

func endLane[T any, P comparable](r ranges.Range[T, P]) lane[T, P] {
	return lane[T, P]{r: r, p: r.End()}
}

func (l lane[T, P]) get() T { return l.r.Get(l.p) }

func (l *lane[T, P]) next() { l.p = l.r.Next(l.p) }

// prev and at are only reachable through cursors whose constructors required the tier.
func (l *lane[T, P]) prev() {
	l.p = l.r.(ranges.BidirectionalRange[T, P]).Prev(l.p)
}

func (l lane[T, P]) at(n int) T {
	rr := l.r.(ranges.RandomAccessRange[T, P])
	return rr.Get(rr.Offset(l.p, n))
}

// View0 is the zip of no ranges. It has no elements.
type View0 struct{}

// Empty returns the zip of no ranges. Its element type is the empty tuple.
func Empty() View0 {
	return View0{}
}

func (View0) Begin() Cursor0 { return Cursor0{} }
func (View0) End() Cursor0   { return Cursor0{} }

func (v View0) All() iter.Seq[tuple.T0] {
	return func(yield func(tuple.T0) bool) {
		for c, end := v.Begin(), v.End(); !c.Equal(end); c.Next() {
			if !yield(c.Get()) {
				return
			}
		}
	}
}

// Cursor0 is the only cursor of View0. Every Cursor0 equals every other.
type Cursor0 struct{}

func (Cursor0) Get() tuple.T0            { return tuple.T0{} }
func (*Cursor0) Next()                   {}
func (*Cursor0) Prev()                   {}
func (c *Cursor0) PostNext() Cursor0     { return *c }
func (c *Cursor0) PostPrev() Cursor0     { return *c }
func (Cursor0) At(n int) tuple.T0        { return tuple.T0{} }
func (Cursor0) Equal(other Cursor0) bool { return true }
