package bcoll

import (
	"cmp"
	"iter"

	"github.com/brynbellomy/go-ranges/tuple"
)

// KeySortedMap is a map that maintains keys in sorted order.
type KeySortedMap[K cmp.Ordered, V any] struct {
	root   *node[K, V]
	length int
}

type node[K cmp.Ordered, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}

func NewKeySortedMap[K cmp.Ordered, V any]() *KeySortedMap[K, V] {
	return &KeySortedMap[K, V]{}
}

func (sm *KeySortedMap[K, V]) Clear() {
	sm.root = nil
	sm.length = 0
}

func (sm *KeySortedMap[K, V]) Len() int {
	return sm.length
}

func (sm *KeySortedMap[K, V]) Insert(key K, value V) {
	sm.length++

	if sm.root == nil {
		sm.root = &node[K, V]{key: key, value: value}
		return
	}
	current := sm.root
	for {
		if key < current.key {
			if current.left == nil {
				current.left = &node[K, V]{key: key, value: value}
				return
			}
			current = current.left
		} else if key > current.key {
			if current.right == nil {
				current.right = &node[K, V]{key: key, value: value}
				return
			}
			current = current.right
		} else {
			// Key already exists, update the value.
			sm.length--
			current.value = value
			return
		}
	}
}

func (sm *KeySortedMap[K, V]) Get(key K) (V, bool) {
	current := sm.root
	for current != nil {
		if key < current.key {
			current = current.left
		} else if key > current.key {
			current = current.right
		} else {
			return current.value, true
		}
	}
	var zero V
	return zero, false
}

// Iter yields the entries in ascending key order.
func (sm *KeySortedMap[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(k K, v V) bool) {
		r := sm.Range()
		for n := r.Begin(); n != nil; n = r.Next(n) {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// ReverseIter yields the entries in descending key order.
func (sm *KeySortedMap[K, V]) ReverseIter() iter.Seq2[K, V] {
	return func(yield func(k K, v V) bool) {
		r := sm.Range()
		for n := r.Prev(r.End()); n != nil; n = r.Prev(n) {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

func (sm *KeySortedMap[K, V]) Keys() []K {
	xs := make([]K, 0, sm.length)
	for x := range sm.Iter() {
		xs = append(xs, x)
	}
	return xs
}

// Range returns a bidirectional range over the map's entries in key order. Positions are
// tree nodes and the end position is nil. Inserting a new key does not invalidate
// positions, but the range reflects the map as it is when each step is taken.
func (sm *KeySortedMap[K, V]) Range() *EntryRange[K, V] {
	return &EntryRange[K, V]{m: sm}
}

type EntryRange[K cmp.Ordered, V any] struct {
	m *KeySortedMap[K, V]
}

func (r *EntryRange[K, V]) Begin() *node[K, V] {
	current := r.m.root
	for current != nil && current.left != nil {
		current = current.left
	}
	return current
}

func (r *EntryRange[K, V]) End() *node[K, V] { return nil }

// Next returns the node holding the smallest key greater than n's.
func (r *EntryRange[K, V]) Next(n *node[K, V]) *node[K, V] {
	var succ *node[K, V]
	for current := r.m.root; current != nil; {
		if n.key < current.key {
			succ = current
			current = current.left
		} else {
			current = current.right
		}
	}
	return succ
}

// Prev returns the node holding the largest key smaller than n's, or the last node when
// n is the end position.
func (r *EntryRange[K, V]) Prev(n *node[K, V]) *node[K, V] {
	if n == nil {
		current := r.m.root
		for current != nil && current.right != nil {
			current = current.right
		}
		return current
	}

	var pred *node[K, V]
	for current := r.m.root; current != nil; {
		if n.key > current.key {
			pred = current
			current = current.right
		} else {
			current = current.left
		}
	}
	return pred
}

func (r *EntryRange[K, V]) Get(n *node[K, V]) tuple.T2[K, V] {
	return tuple.New2(n.key, n.value)
}

func (r *EntryRange[K, V]) Multipass() {}
