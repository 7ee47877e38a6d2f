package sqlrange

import (
	"database/sql"
	"database/sql/driver"

	"github.com/lib/pq"

	ranges "github.com/brynbellomy/go-ranges"
	"github.com/brynbellomy/go-ranges/errors"
)

// Elem lists the element types with a Postgres array codec.
type Elem interface {
	int64 | float64 | string | bool
}

// Array is a one-dimensional Postgres array column. It scans from and encodes to the
// array literal form ("{1,2,3}"), so it also works against drivers that store the
// literal as text.
type Array[T Elem] struct {
	Elems []T
}

func (a *Array[T]) Scan(src any) error {
	var elems []T
	if err := codec(&elems).Scan(src); err != nil {
		return errors.With(err, "sqlrange: scan array").Err()
	}
	a.Elems = elems
	return nil
}

func (a Array[T]) Value() (driver.Value, error) {
	return codec(&a.Elems).Value()
}

// Range borrows the array's elements.
func (a *Array[T]) Range() *ranges.Slice[T] {
	return ranges.Borrow(a.Elems)
}

// ParseArray parses a Postgres array literal into a range that owns its elements.
func ParseArray[T Elem](literal string) (*ranges.Slice[T], error) {
	var a Array[T]
	if err := a.Scan(literal); err != nil {
		return nil, errors.WithFields(err, "literal", literal)
	}
	return ranges.Borrow(a.Elems), nil
}

type scanValuer interface {
	sql.Scanner
	driver.Valuer
}

func codec[T Elem](elems *[]T) scanValuer {
	switch p := any(elems).(type) {
	case *[]int64:
		return (*pq.Int64Array)(p)
	case *[]float64:
		return (*pq.Float64Array)(p)
	case *[]string:
		return (*pq.StringArray)(p)
	case *[]bool:
		return (*pq.BoolArray)(p)
	default:
		panic("unreachable")
	}
}
