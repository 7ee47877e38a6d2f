package bcoll

import (
	"fmt"
	"slices"
	"strings"

	ranges "github.com/brynbellomy/go-ranges"
)

// InsertionOrderedSet is a set whose elements keep the order they were first added in.
type InsertionOrderedSet[T comparable] struct {
	elements []T
	set      map[T]struct{}
}

func NewInsertionOrderedSet[T comparable](elements ...T) *InsertionOrderedSet[T] {
	s := &InsertionOrderedSet[T]{set: make(map[T]struct{}, len(elements))}
	for _, element := range elements {
		s.Add(element)
	}
	return s
}

// Add appends element unless it is already present.
func (s *InsertionOrderedSet[T]) Add(element T) {
	if _, exists := s.set[element]; !exists {
		s.elements = append(s.elements, element)
		s.set[element] = struct{}{}
	}
}

func (s *InsertionOrderedSet[T]) Remove(element T) {
	if _, exists := s.set[element]; !exists {
		return
	}
	delete(s.set, element)
	i := slices.Index(s.elements, element)
	s.elements = slices.Delete(s.elements, i, i+1)
}

func (s *InsertionOrderedSet[T]) Contains(element T) bool {
	_, exists := s.set[element]
	return exists
}

// Position returns element's position in Range, or false if it is absent.
func (s *InsertionOrderedSet[T]) Position(element T) (int, bool) {
	if !s.Contains(element) {
		return 0, false
	}
	return slices.Index(s.elements, element), true
}

func (s *InsertionOrderedSet[T]) Size() int {
	return len(s.elements)
}

func (s *InsertionOrderedSet[T]) Clear() {
	s.elements = nil
	clear(s.set)
}

// Elements returns a copy of the elements in insertion order.
func (s *InsertionOrderedSet[T]) Elements() []T {
	return ranges.Collect(ranges.Own(s.elements))
}

// Range returns a random-access range over the elements in insertion order. The range
// borrows the set's storage: it sees the elements as they are at the time of the call,
// and must not be used after the set is modified.
func (s *InsertionOrderedSet[T]) Range() *ranges.Slice[T] {
	return ranges.Borrow(s.elements)
}

func (s *InsertionOrderedSet[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for p, element := range slices.All(s.elements) {
		if p > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", element)
	}
	sb.WriteString("]")
	return sb.String()
}
