package ranges

import "github.com/brynbellomy/go-ranges/errors"

// Erased hides a range's position type so that ranges with the same element type but
// different position types can be stored together. Its traversal tier is recorded when
// it is created; Prev and Offset report errors.ErrUnsupported when the tier lacks them.
type Erased[T any] struct {
	tier   Tier
	begin  func() any
	end    func() any
	next   func(any) any
	get    func(any) T
	prev   func(any) any
	offset func(any, int) any
}

func Erase[T any, P comparable](r Range[T, P]) Erased[T] {
	e := Erased[T]{
		tier:  TierOf(r),
		begin: func() any { return r.Begin() },
		end:   func() any { return r.End() },
		next:  func(p any) any { return r.Next(p.(P)) },
		get:   func(p any) T { return r.Get(p.(P)) },
	}
	if br, ok := r.(BidirectionalRange[T, P]); ok {
		e.prev = func(p any) any { return br.Prev(p.(P)) }
	}
	if rr, ok := r.(RandomAccessRange[T, P]); ok {
		e.offset = func(p any, n int) any { return rr.Offset(p.(P), n) }
	}
	return e
}

// EraseAny hides both the position and the element type of r, so that ranges of different
// element types can be zipped together by zip.N[any]. The tier is kept.
func EraseAny[T any, P comparable](r Range[T, P]) Erased[any] {
	e := Erase[T, P](r)
	return Erased[any]{
		tier:   e.tier,
		begin:  e.begin,
		end:    e.end,
		next:   e.next,
		get:    func(p any) any { return e.get(p) },
		prev:   e.prev,
		offset: e.offset,
	}
}

func (e Erased[T]) Tier() Tier     { return e.tier }
func (e Erased[T]) Begin() any     { return e.begin() }
func (e Erased[T]) End() any       { return e.end() }
func (e Erased[T]) Next(p any) any { return e.next(p) }
func (e Erased[T]) Get(p any) T    { return e.get(p) }

func (e Erased[T]) Prev(p any) (any, error) {
	if e.prev == nil {
		return nil, e.unsupported("Prev", TierBidirectional)
	}
	return e.prev(p), nil
}

func (e Erased[T]) Offset(p any, n int) (any, error) {
	if e.offset == nil {
		return nil, e.unsupported("Offset", TierRandomAccess)
	}
	return e.offset(p, n), nil
}

func (e Erased[T]) unsupported(op string, required Tier) error {
	return errors.With(errors.ErrUnsupported, "ranges: %s", op).
		Fields("tier", e.tier.String(), "required", required.String()).
		Err()
}
