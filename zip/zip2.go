package zip

import (
	"iter"

	ranges "github.com/brynbellomy/go-ranges"
	"github.com/brynbellomy/go-ranges/tuple"
)

// View2 zips two ranges. Its cursors support the input-tier operations.
type View2[A, B any, PA, PB comparable] struct {
	a ranges.Range[A, PA]
	b ranges.Range[B, PB]
}

func Input2[A, B any, PA, PB comparable](a ranges.Range[A, PA], b ranges.Range[B, PB]) *View2[A, B, PA, PB] {
	return &View2[A, B, PA, PB]{a: a, b: b}
}

func (v *View2[A, B, PA, PB]) Begin() Cursor2[A, B, PA, PB] {
	return Cursor2[A, B, PA, PB]{a: beginLane(v.a), b: beginLane(v.b)}
}

func (v *View2[A, B, PA, PB]) End() Cursor2[A, B, PA, PB] {
	return Cursor2[A, B, PA, PB]{a: endLane(v.a), b: endLane(v.b)}
}

// All walks the zip from Begin until a cursor equals End.
func (v *View2[A, B, PA, PB]) All() iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		for c, end := v.Begin(), v.End(); !c.Equal(end); c.Next() {
			if !yield(c.a.get(), c.b.get()) {
				return
			}
		}
	}
}

type Cursor2[A, B any, PA, PB comparable] struct {
	a lane[A, PA]
	b lane[B, PB]
}

// Get returns the current element of each range. c must not equal End.
func (c Cursor2[A, B, PA, PB]) Get() tuple.T2[A, B] {
	return tuple.New2(c.a.get(), c.b.get())
}

// Next advances every range by one.
func (c *Cursor2[A, B, PA, PB]) Next() {
	c.a.next()
	c.b.next()
}

// Equal reports whether any of the per-range positions are equal.
func (c Cursor2[A, B, PA, PB]) Equal(other Cursor2[A, B, PA, PB]) bool {
	return c.a.p == other.a.p || c.b.p == other.b.p
}

type ForwardView2[A, B any, PA, PB comparable] struct {
	View2[A, B, PA, PB]
}

func Forward2[A, B any, PA, PB comparable](a ranges.ForwardRange[A, PA], b ranges.ForwardRange[B, PB]) *ForwardView2[A, B, PA, PB] {
	return &ForwardView2[A, B, PA, PB]{View2[A, B, PA, PB]{a: a, b: b}}
}

func (v *ForwardView2[A, B, PA, PB]) Begin() ForwardCursor2[A, B, PA, PB] {
	return ForwardCursor2[A, B, PA, PB]{v.View2.Begin()}
}

func (v *ForwardView2[A, B, PA, PB]) End() ForwardCursor2[A, B, PA, PB] {
	return ForwardCursor2[A, B, PA, PB]{v.View2.End()}
}

type ForwardCursor2[A, B any, PA, PB comparable] struct {
	Cursor2[A, B, PA, PB]
}

// PostNext advances c and returns its position from before the call.
func (c *ForwardCursor2[A, B, PA, PB]) PostNext() ForwardCursor2[A, B, PA, PB] {
	prior := *c
	c.Next()
	return prior
}

func (c ForwardCursor2[A, B, PA, PB]) Equal(other ForwardCursor2[A, B, PA, PB]) bool {
	return c.Cursor2.Equal(other.Cursor2)
}

type BidirectionalView2[A, B any, PA, PB comparable] struct {
	View2[A, B, PA, PB]
}

func Bidirectional2[A, B any, PA, PB comparable](a ranges.BidirectionalRange[A, PA], b ranges.BidirectionalRange[B, PB]) *BidirectionalView2[A, B, PA, PB] {
	return &BidirectionalView2[A, B, PA, PB]{View2[A, B, PA, PB]{a: a, b: b}}
}

func (v *BidirectionalView2[A, B, PA, PB]) Begin() BidirectionalCursor2[A, B, PA, PB] {
	return BidirectionalCursor2[A, B, PA, PB]{ForwardCursor2[A, B, PA, PB]{v.View2.Begin()}}
}

func (v *BidirectionalView2[A, B, PA, PB]) End() BidirectionalCursor2[A, B, PA, PB] {
	return BidirectionalCursor2[A, B, PA, PB]{ForwardCursor2[A, B, PA, PB]{v.View2.End()}}
}

type BidirectionalCursor2[A, B any, PA, PB comparable] struct {
	ForwardCursor2[A, B, PA, PB]
}

// Prev moves every range back by one.
func (c *BidirectionalCursor2[A, B, PA, PB]) Prev() {
	c.a.prev()
	c.b.prev()
}

func (c *BidirectionalCursor2[A, B, PA, PB]) PostNext() BidirectionalCursor2[A, B, PA, PB] {
	prior := *c
	c.Next()
	return prior
}

// PostPrev moves c back and returns its position from before the call.
func (c *BidirectionalCursor2[A, B, PA, PB]) PostPrev() BidirectionalCursor2[A, B, PA, PB] {
	prior := *c
	c.Prev()
	return prior
}

func (c BidirectionalCursor2[A, B, PA, PB]) Equal(other BidirectionalCursor2[A, B, PA, PB]) bool {
	return c.Cursor2.Equal(other.Cursor2)
}

type RandomAccessView2[A, B any, PA, PB comparable] struct {
	View2[A, B, PA, PB]
}

func RandomAccess2[A, B any, PA, PB comparable](a ranges.RandomAccessRange[A, PA], b ranges.RandomAccessRange[B, PB]) *RandomAccessView2[A, B, PA, PB] {
	return &RandomAccessView2[A, B, PA, PB]{View2[A, B, PA, PB]{a: a, b: b}}
}

func (v *RandomAccessView2[A, B, PA, PB]) Begin() RandomAccessCursor2[A, B, PA, PB] {
	return RandomAccessCursor2[A, B, PA, PB]{BidirectionalCursor2[A, B, PA, PB]{ForwardCursor2[A, B, PA, PB]{v.View2.Begin()}}}
}

func (v *RandomAccessView2[A, B, PA, PB]) End() RandomAccessCursor2[A, B, PA, PB] {
	return RandomAccessCursor2[A, B, PA, PB]{BidirectionalCursor2[A, B, PA, PB]{ForwardCursor2[A, B, PA, PB]{v.View2.End()}}}
}

type RandomAccessCursor2[A, B any, PA, PB comparable] struct {
	BidirectionalCursor2[A, B, PA, PB]
}

// At returns the element n steps from c without moving c. n may be negative.
func (c RandomAccessCursor2[A, B, PA, PB]) At(n int) tuple.T2[A, B] {
	return tuple.New2(c.a.at(n), c.b.at(n))
}

func (c *RandomAccessCursor2[A, B, PA, PB]) PostNext() RandomAccessCursor2[A, B, PA, PB] {
	prior := *c
	c.Next()
	return prior
}

func (c *RandomAccessCursor2[A, B, PA, PB]) PostPrev() RandomAccessCursor2[A, B, PA, PB] {
	prior := *c
	c.Prev()
	return prior
}

func (c RandomAccessCursor2[A, B, PA, PB]) Equal(other RandomAccessCursor2[A, B, PA, PB]) bool {
	return c.Cursor2.Equal(other.Cursor2)
}
