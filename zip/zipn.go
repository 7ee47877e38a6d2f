package zip

import (
	"iter"
	"slices"

	ranges "github.com/brynbellomy/go-ranges"
	"github.com/brynbellomy/go-ranges/errors"
)

// ViewN zips any number of ranges with a common element type. Its tier is the weakest
// tier among its ranges, fixed when the view is created; cursor operations above that
// tier return errors.ErrUnsupported.
type ViewN[T any] struct {
	rs   []ranges.Erased[T]
	tier ranges.Tier
}

func N[T any](rs ...ranges.Erased[T]) *ViewN[T] {
	tiers := make([]ranges.Tier, len(rs))
	for i, r := range rs {
		tiers[i] = r.Tier()
	}
	return &ViewN[T]{rs: slices.Clone(rs), tier: ranges.MinTier(tiers...)}
}

func (v *ViewN[T]) Tier() ranges.Tier { return v.tier }
func (v *ViewN[T]) Arity() int        { return len(v.rs) }

func (v *ViewN[T]) Begin() CursorN[T] {
	ps := make([]any, len(v.rs))
	for i, r := range v.rs {
		ps[i] = r.Begin()
	}
	return CursorN[T]{view: v, ps: ps}
}

func (v *ViewN[T]) End() CursorN[T] {
	ps := make([]any, len(v.rs))
	for i, r := range v.rs {
		ps[i] = r.End()
	}
	return CursorN[T]{view: v, ps: ps}
}

func (v *ViewN[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for c, end := v.Begin(), v.End(); !c.Equal(end); c.Next() {
			if !yield(c.Get()) {
				return
			}
		}
	}
}

func (v *ViewN[T]) require(op string, tier ranges.Tier) error {
	if v.tier >= tier {
		return nil
	}
	return errors.With(errors.ErrUnsupported, "zip: %s", op).
		Fields("tier", v.tier.String(), "required", tier.String(), "arity", len(v.rs)).
		Err()
}

// CursorN is a position in a ViewN. Moving a cursor replaces its position slice rather
// than writing into it, so copies of a cursor stay independent.
type CursorN[T any] struct {
	view *ViewN[T]
	ps   []any
}

func (c CursorN[T]) Get() []T {
	out := make([]T, len(c.ps))
	for i, p := range c.ps {
		out[i] = c.view.rs[i].Get(p)
	}
	return out
}

func (c *CursorN[T]) Next() {
	ps := make([]any, len(c.ps))
	for i, p := range c.ps {
		ps[i] = c.view.rs[i].Next(p)
	}
	c.ps = ps
}

func (c *CursorN[T]) PostNext() (CursorN[T], error) {
	if err := c.view.require("PostNext", ranges.TierForward); err != nil {
		return CursorN[T]{}, err
	}
	prior := *c
	c.Next()
	return prior, nil
}

func (c *CursorN[T]) Prev() error {
	if err := c.view.require("Prev", ranges.TierBidirectional); err != nil {
		return err
	}
	ps := make([]any, len(c.ps))
	for i, p := range c.ps {
		prev, err := c.view.rs[i].Prev(p)
		if err != nil {
			return errors.WithFields(err, "lane", i)
		}
		ps[i] = prev
	}
	c.ps = ps
	return nil
}

func (c *CursorN[T]) PostPrev() (CursorN[T], error) {
	prior := *c
	if err := c.Prev(); err != nil {
		return CursorN[T]{}, err
	}
	return prior, nil
}

// At returns the elements n steps from c without moving c.
func (c CursorN[T]) At(n int) ([]T, error) {
	if err := c.view.require("At", ranges.TierRandomAccess); err != nil {
		return nil, err
	}
	out := make([]T, len(c.ps))
	for i, p := range c.ps {
		q, err := c.view.rs[i].Offset(p, n)
		if err != nil {
			return nil, errors.WithFields(err, "lane", i)
		}
		out[i] = c.view.rs[i].Get(q)
	}
	return out, nil
}

// Equal reports whether any per-range positions are equal. Cursors over no ranges are
// always equal, which makes an empty zip end where it begins.
func (c CursorN[T]) Equal(other CursorN[T]) bool {
	if len(c.ps) == 0 {
		return true
	}
	for i := range c.ps {
		if c.ps[i] == other.ps[i] {
			return true
		}
	}
	return false
}
