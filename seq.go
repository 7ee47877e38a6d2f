package ranges

import (
	"iter"

	"github.com/brynbellomy/go-ranges/errors"
)

const pullEnd = -1

// Pull is a single-pass range over an iter.Seq. Positions are element ordinals and only
// the current position may be read. Callers that stop before the sequence is exhausted
// must call Stop to release the underlying iterator.
type Pull[T any] struct {
	next    func() (T, bool)
	stop    func()
	cur     T
	pos     int
	started bool
	done    bool
}

func FromSeq[T any](seq iter.Seq[T]) *Pull[T] {
	next, stop := iter.Pull(seq)
	return &Pull[T]{next: next, stop: stop, pos: pullEnd}
}

// Begin pulls the first element on its first call. Later calls return the current
// position, since a single-pass range cannot rewind.
func (r *Pull[T]) Begin() int {
	if !r.started {
		r.started = true
		r.pull()
	}
	return r.pos
}

func (r *Pull[T]) End() int { return pullEnd }

func (r *Pull[T]) Next(p int) int {
	if r.done {
		panic(errors.Wrap(errors.ErrExhausted, "ranges: Next past end of pulled sequence"))
	}
	r.pull()
	return r.pos
}

func (r *Pull[T]) Get(p int) T {
	if r.done {
		panic(errors.Wrap(errors.ErrExhausted, "ranges: Get past end of pulled sequence"))
	} else if p != r.pos {
		panic(errors.Errorf("ranges: position %d of pulled sequence was already consumed (current %d)", p, r.pos))
	}
	return r.cur
}

// Stop releases the underlying iterator. It is safe to call more than once.
func (r *Pull[T]) Stop() {
	r.started = true
	r.done = true
	r.pos = pullEnd
	r.stop()
}

func (r *Pull[T]) pull() {
	v, ok := r.next()
	if !ok {
		var zero T
		r.cur = zero
		r.Stop()
		return
	}
	r.cur = v
	r.pos++
}
