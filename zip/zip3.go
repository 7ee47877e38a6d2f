package zip

import (
	"iter"

	ranges "github.com/brynbellomy/go-ranges"
	"github.com/brynbellomy/go-ranges/tuple"
)

// View3 zips three ranges. See View2; only the tuple arity differs.
type View3[A, B, C any, PA, PB, PC comparable] struct {
	a ranges.Range[A, PA]
	b ranges.Range[B, PB]
	c ranges.Range[C, PC]
}

func Input3[A, B, C any, PA, PB, PC comparable](a ranges.Range[A, PA], b ranges.Range[B, PB], c ranges.Range[C, PC]) *View3[A, B, C, PA, PB, PC] {
	return &View3[A, B, C, PA, PB, PC]{a: a, b: b, c: c}
}

func (v *View3[A, B, C, PA, PB, PC]) Begin() Cursor3[A, B, C, PA, PB, PC] {
	return Cursor3[A, B, C, PA, PB, PC]{a: beginLane(v.a), b: beginLane(v.b), c: beginLane(v.c)}
}

func (v *View3[A, B, C, PA, PB, PC]) End() Cursor3[A, B, C, PA, PB, PC] {
	return Cursor3[A, B, C, PA, PB, PC]{a: endLane(v.a), b: endLane(v.b), c: endLane(v.c)}
}

// All yields one tuple per step until the shortest range ends.
func (v *View3[A, B, C, PA, PB, PC]) All() iter.Seq[tuple.T3[A, B, C]] {
	return func(yield func(tuple.T3[A, B, C]) bool) {
		for cur, end := v.Begin(), v.End(); !cur.Equal(end); cur.Next() {
			if !yield(cur.Get()) {
				return
			}
		}
	}
}

type Cursor3[A, B, C any, PA, PB, PC comparable] struct {
	a lane[A, PA]
	b lane[B, PB]
	c lane[C, PC]
}

func (c Cursor3[A, B, C, PA, PB, PC]) Get() tuple.T3[A, B, C] {
	return tuple.New3(c.a.get(), c.b.get(), c.c.get())
}

func (c *Cursor3[A, B, C, PA, PB, PC]) Next() {
	c.a.next()
	c.b.next()
	c.c.next()
}

func (c Cursor3[A, B, C, PA, PB, PC]) Equal(other Cursor3[A, B, C, PA, PB, PC]) bool {
	return c.a.p == other.a.p || c.b.p == other.b.p || c.c.p == other.c.p
}

type ForwardView3[A, B, C any, PA, PB, PC comparable] struct {
	View3[A, B, C, PA, PB, PC]
}

func Forward3[A, B, C any, PA, PB, PC comparable](a ranges.ForwardRange[A, PA], b ranges.ForwardRange[B, PB], c ranges.ForwardRange[C, PC]) *ForwardView3[A, B, C, PA, PB, PC] {
	return &ForwardView3[A, B, C, PA, PB, PC]{View3[A, B, C, PA, PB, PC]{a: a, b: b, c: c}}
}

func (v *ForwardView3[A, B, C, PA, PB, PC]) Begin() ForwardCursor3[A, B, C, PA, PB, PC] {
	return ForwardCursor3[A, B, C, PA, PB, PC]{v.View3.Begin()}
}

func (v *ForwardView3[A, B, C, PA, PB, PC]) End() ForwardCursor3[A, B, C, PA, PB, PC] {
	return ForwardCursor3[A, B, C, PA, PB, PC]{v.View3.End()}
}

type ForwardCursor3[A, B, C any, PA, PB, PC comparable] struct {
	Cursor3[A, B, C, PA, PB, PC]
}

func (c *ForwardCursor3[A, B, C, PA, PB, PC]) PostNext() ForwardCursor3[A, B, C, PA, PB, PC] {
	prior := *c
	c.Next()
	return prior
}

func (c ForwardCursor3[A, B, C, PA, PB, PC]) Equal(other ForwardCursor3[A, B, C, PA, PB, PC]) bool {
	return c.Cursor3.Equal(other.Cursor3)
}

type BidirectionalView3[A, B, C any, PA, PB, PC comparable] struct {
	View3[A, B, C, PA, PB, PC]
}

func Bidirectional3[A, B, C any, PA, PB, PC comparable](a ranges.BidirectionalRange[A, PA], b ranges.BidirectionalRange[B, PB], c ranges.BidirectionalRange[C, PC]) *BidirectionalView3[A, B, C, PA, PB, PC] {
	return &BidirectionalView3[A, B, C, PA, PB, PC]{View3[A, B, C, PA, PB, PC]{a: a, b: b, c: c}}
}

func (v *BidirectionalView3[A, B, C, PA, PB, PC]) Begin() BidirectionalCursor3[A, B, C, PA, PB, PC] {
	return BidirectionalCursor3[A, B, C, PA, PB, PC]{ForwardCursor3[A, B, C, PA, PB, PC]{v.View3.Begin()}}
}

func (v *BidirectionalView3[A, B, C, PA, PB, PC]) End() BidirectionalCursor3[A, B, C, PA, PB, PC] {
	return BidirectionalCursor3[A, B, C, PA, PB, PC]{ForwardCursor3[A, B, C, PA, PB, PC]{v.View3.End()}}
}

type BidirectionalCursor3[A, B, C any, PA, PB, PC comparable] struct {
	ForwardCursor3[A, B, C, PA, PB, PC]
}

func (c *BidirectionalCursor3[A, B, C, PA, PB, PC]) Prev() {
	c.a.prev()
	c.b.prev()
	c.c.prev()
}

func (c *BidirectionalCursor3[A, B, C, PA, PB, PC]) PostNext() BidirectionalCursor3[A, B, C, PA, PB, PC] {
	prior := *c
	c.Next()
	return prior
}

func (c *BidirectionalCursor3[A, B, C, PA, PB, PC]) PostPrev() BidirectionalCursor3[A, B, C, PA, PB, PC] {
	prior := *c
	c.Prev()
	return prior
}

func (c BidirectionalCursor3[A, B, C, PA, PB, PC]) Equal(other BidirectionalCursor3[A, B, C, PA, PB, PC]) bool {
	return c.Cursor3.Equal(other.Cursor3)
}

type RandomAccessView3[A, B, C any, PA, PB, PC comparable] struct {
	View3[A, B, C, PA, PB, PC]
}

func RandomAccess3[A, B, C any, PA, PB, PC comparable](a ranges.RandomAccessRange[A, PA], b ranges.RandomAccessRange[B, PB], c ranges.RandomAccessRange[C, PC]) *RandomAccessView3[A, B, C, PA, PB, PC] {
	return &RandomAccessView3[A, B, C, PA, PB, PC]{View3[A, B, C, PA, PB, PC]{a: a, b: b, c: c}}
}

func (v *RandomAccessView3[A, B, C, PA, PB, PC]) Begin() RandomAccessCursor3[A, B, C, PA, PB, PC] {
	return RandomAccessCursor3[A, B, C, PA, PB, PC]{BidirectionalCursor3[A, B, C, PA, PB, PC]{ForwardCursor3[A, B, C, PA, PB, PC]{v.View3.Begin()}}}
}

func (v *RandomAccessView3[A, B, C, PA, PB, PC]) End() RandomAccessCursor3[A, B, C, PA, PB, PC] {
	return RandomAccessCursor3[A, B, C, PA, PB, PC]{BidirectionalCursor3[A, B, C, PA, PB, PC]{ForwardCursor3[A, B, C, PA, PB, PC]{v.View3.End()}}}
}

type RandomAccessCursor3[A, B, C any, PA, PB, PC comparable] struct {
	BidirectionalCursor3[A, B, C, PA, PB, PC]
}

// At returns the element n steps from c without moving c. n may be negative.
func (c RandomAccessCursor3[A, B, C, PA, PB, PC]) At(n int) tuple.T3[A, B, C] {
	return tuple.New3(c.a.at(n), c.b.at(n), c.c.at(n))
}

func (c *RandomAccessCursor3[A, B, C, PA, PB, PC]) PostNext() RandomAccessCursor3[A, B, C, PA, PB, PC] {
	prior := *c
	c.Next()
	return prior
}

func (c *RandomAccessCursor3[A, B, C, PA, PB, PC]) PostPrev() RandomAccessCursor3[A, B, C, PA, PB, PC] {
	prior := *c
	c.Prev()
	return prior
}

func (c RandomAccessCursor3[A, B, C, PA, PB, PC]) Equal(other RandomAccessCursor3[A, B, C, PA, PB, PC]) bool {
	return c.Cursor3.Equal(other.Cursor3)
}
