// Package ranges models ordered sequences as ranges: a pair of Begin/End positions plus
// the operations that step between positions and read the element at one.
//
// A position is a small comparable value (an index, a list element, a byte offset). The
// range interprets it, so positions copy freely and compare with ==. What a range can do
// is expressed by which interface it satisfies:
//
//	Range               single pass: Begin, End, Next, Get
//	ForwardRange        positions may be revisited
//	BidirectionalRange  + Prev
//	RandomAccessRange   + Offset
package ranges

import "iter"

type Range[T any, P comparable] interface {
	// Begin returns the position of the first element, or End() if the range is empty.
	Begin() P
	// End returns the one-past-last position.
	End() P
	// Next returns the position after p. p must not be End().
	Next(p P) P
	// Get returns the element at p. p must not be End().
	Get(p P) T
}

type ForwardRange[T any, P comparable] interface {
	Range[T, P]
	// Multipass marks ranges whose positions stay valid after being stepped past.
	Multipass()
}

type BidirectionalRange[T any, P comparable] interface {
	ForwardRange[T, P]
	// Prev returns the position before p. Prev(End()) is the last element.
	Prev(p P) P
}

type RandomAccessRange[T any, P comparable] interface {
	BidirectionalRange[T, P]
	// Offset returns the position n steps from p in constant time. n may be negative.
	Offset(p P, n int) P
}

// Tier is the strongest traversal guarantee a range provides.
type Tier uint8

const (
	TierInput Tier = iota
	TierForward
	TierBidirectional
	TierRandomAccess
)

func (t Tier) String() string {
	switch t {
	case TierInput:
		return "input"
	case TierForward:
		return "forward"
	case TierBidirectional:
		return "bidirectional"
	case TierRandomAccess:
		return "random-access"
	default:
		return "unknown"
	}
}

// MinTier returns the weakest of the given tiers. With no tiers it returns TierRandomAccess,
// since an empty set of ranges places no restriction.
func MinTier(tiers ...Tier) Tier {
	weakest := TierRandomAccess
	for _, t := range tiers {
		if t < weakest {
			weakest = t
		}
	}
	return weakest
}

// TierOf reports the strongest interface r satisfies.
func TierOf[T any, P comparable](r Range[T, P]) Tier {
	switch r.(type) {
	case RandomAccessRange[T, P]:
		return TierRandomAccess
	case BidirectionalRange[T, P]:
		return TierBidirectional
	case ForwardRange[T, P]:
		return TierForward
	default:
		return TierInput
	}
}

// All returns an iter.Seq over the elements of r from Begin to End.
func All[T any, P comparable](r Range[T, P]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for p, end := r.Begin(), r.End(); p != end; p = r.Next(p) {
			if !yield(r.Get(p)) {
				return
			}
		}
	}
}

// Collect reads every element of r into a new slice.
func Collect[T any, P comparable](r Range[T, P]) []T {
	var out []T
	for v := range All(r) {
		out = append(out, v)
	}
	return out
}
