package bsync

import (
	"context"

	"github.com/brynbellomy/go-ranges/errors"
	"github.com/brynbellomy/go-ranges/zip"
)

const chanEnd = -1

// Chan is a single-pass range over the values received from a channel. It ends when the
// channel closes or ctx is done, whichever comes first. Receiving blocks inside Begin and
// Next, never inside Get.
type Chan[T any] struct {
	ctx     context.Context
	ch      <-chan T
	cur     T
	pos     int
	started bool
	done    bool
	err     error
}

func FromChan[T any](ctx context.Context, ch <-chan T) *Chan[T] {
	return &Chan[T]{ctx: ctx, ch: ch, pos: chanEnd}
}

func (r *Chan[T]) Begin() int {
	if !r.started {
		r.started = true
		r.receive()
	}
	return r.pos
}

func (r *Chan[T]) End() int { return chanEnd }

func (r *Chan[T]) Next(p int) int {
	if r.done {
		panic(errors.Wrap(errors.ErrExhausted, "bsync: Next past end of channel"))
	}
	r.receive()
	return r.pos
}

func (r *Chan[T]) Get(p int) T {
	if r.done {
		panic(errors.Wrap(errors.ErrExhausted, "bsync: Get past end of channel"))
	} else if p != r.pos {
		panic(errors.Errorf("bsync: value %d was already received (current %d)", p, r.pos))
	}
	return r.cur
}

// Err returns the context's error if the range ended because ctx was done. It stays nil
// when the range ended because the channel closed.
func (r *Chan[T]) Err() error {
	return r.err
}

func (r *Chan[T]) receive() {
	select {
	case <-r.ctx.Done():
		r.finish(r.ctx.Err())
		return
	default:
	}

	select {
	case item, open := <-r.ch:
		if !open {
			r.finish(nil)
			return
		}
		r.cur = item
		r.pos++
	case <-r.ctx.Done():
		r.finish(r.ctx.Err())
	}
}

func (r *Chan[T]) finish(err error) {
	var zero T
	r.cur = zero
	r.err = err
	r.done = true
	r.pos = chanEnd
}

// CollectChan collects up to n items from a channel, stopping early if the channel closes
// or the context is cancelled. It never receives more than n items.
func CollectChan[T any](ctx context.Context, n int, ch <-chan T) []T {
	items := make([]T, 0, max(n, 0))
	if n <= 0 {
		return items
	}

	r := FromChan(ctx, ch)
	for p := r.Begin(); p != r.End(); p = r.Next(p) {
		items = append(items, r.Get(p))
		if len(items) == n {
			break
		}
	}
	return items
}

// ZipChans pairs values received from a and b until either channel closes or ctx is done.
// The value received from the other channel in the final step is dropped.
func ZipChans[A, B any](ctx context.Context, a <-chan A, b <-chan B) ([]A, []B) {
	var as []A
	var bs []B
	for x, y := range zip.Input2(FromChan(ctx, a), FromChan(ctx, b)).All() {
		as = append(as, x)
		bs = append(bs, y)
	}
	return as, bs
}
