package bcoll

import (
	"cmp"
	"fmt"
	"iter"

	ranges "github.com/brynbellomy/go-ranges"
)

type SortedSet[K cmp.Ordered] KeySortedMap[K, struct{}]

func NewSortedSet[K cmp.Ordered]() *SortedSet[K] {
	return &SortedSet[K]{}
}

func (ss *SortedSet[K]) Clear() {
	(*KeySortedMap[K, struct{}])(ss).Clear()
}

func (ss *SortedSet[K]) Len() int {
	return (*KeySortedMap[K, struct{}])(ss).Len()
}

func (ss *SortedSet[K]) Insert(key K) {
	(*KeySortedMap[K, struct{}])(ss).Insert(key, struct{}{})
}

func (ss *SortedSet[K]) Has(key K) bool {
	_, ok := (*KeySortedMap[K, struct{}])(ss).Get(key)
	return ok
}

func (ss *SortedSet[K]) Iter() iter.Seq[K] {
	return ranges.All(ss.Range())
}

func (ss *SortedSet[K]) ReverseIter() iter.Seq[K] {
	return func(yield func(k K) bool) {
		for k := range (*KeySortedMap[K, struct{}])(ss).ReverseIter() {
			if !yield(k) {
				return
			}
		}
	}
}

func (ss *SortedSet[K]) Slice() []K {
	return (*KeySortedMap[K, struct{}])(ss).Keys()
}

// Range returns a bidirectional range over the set's keys in ascending order.
func (ss *SortedSet[K]) Range() *KeyRange[K] {
	return &KeyRange[K]{entries: (*KeySortedMap[K, struct{}])(ss).Range()}
}

type KeyRange[K cmp.Ordered] struct {
	entries *EntryRange[K, struct{}]
}

func (r *KeyRange[K]) Begin() *node[K, struct{}]                    { return r.entries.Begin() }
func (r *KeyRange[K]) End() *node[K, struct{}]                      { return nil }
func (r *KeyRange[K]) Next(n *node[K, struct{}]) *node[K, struct{}] { return r.entries.Next(n) }
func (r *KeyRange[K]) Prev(n *node[K, struct{}]) *node[K, struct{}] { return r.entries.Prev(n) }
func (r *KeyRange[K]) Get(n *node[K, struct{}]) K                   { return n.key }
func (r *KeyRange[K]) Multipass()                                   {}

func (ss *SortedSet[K]) String() string {
	return fmt.Sprint(ss.Slice())
}
