package ranges

import "container/list"

// List is a bidirectional range over a container/list. Positions are list elements; the
// end position is nil. Element values must hold a T.
type List[T any] struct {
	l *list.List
}

func FromList[T any](l *list.List) *List[T] {
	return &List[T]{l: l}
}

func (r *List[T]) Begin() *list.Element { return r.l.Front() }
func (r *List[T]) End() *list.Element   { return nil }

func (r *List[T]) Next(e *list.Element) *list.Element {
	return e.Next()
}

func (r *List[T]) Prev(e *list.Element) *list.Element {
	if e == nil {
		return r.l.Back()
	}
	return e.Prev()
}

func (r *List[T]) Get(e *list.Element) T {
	return e.Value.(T)
}

func (r *List[T]) Multipass() {}
