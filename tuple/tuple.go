// Package tuple provides the fixed-arity values produced when several ranges are zipped.
package tuple

import "fmt"

// T0 is the empty tuple. It is the element type of a zip over no ranges.
type T0 struct{}

func (T0) String() string { return "()" }

// T2 is a 2-tuple.
type T2[A, B any] struct {
	A A
	B B
}

// New2 creates a T2 from its values.
func New2[A, B any](a A, b B) T2[A, B] {
	return T2[A, B]{A: a, B: b}
}

// Unpack returns the values contained in the tuple.
func (t T2[A, B]) Unpack() (A, B) {
	return t.A, t.B
}

func (t T2[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t.A, t.B)
}

// T3 is a 3-tuple.
type T3[A, B, C any] struct {
	A A
	B B
	C C
}

// New3 creates a T3 from its values.
func New3[A, B, C any](a A, b B, c C) T3[A, B, C] {
	return T3[A, B, C]{A: a, B: b, C: c}
}

// Unpack returns the values contained in the tuple.
func (t T3[A, B, C]) Unpack() (A, B, C) {
	return t.A, t.B, t.C
}

func (t T3[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.A, t.B, t.C)
}
