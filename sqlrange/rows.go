// Package sqlrange exposes query results and Postgres array values as ranges, so they can
// be zipped with other ranges.
package sqlrange

import (
	"context"
	"database/sql"
	"log/slog"
	"reflect"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/brynbellomy/go-ranges/errors"
)

const rowsEnd = -1

// Rows is a single-pass range over the rows of a query. Struct element types are scanned
// with sqlx's StructScan, everything else with a plain Scan of the first column. The
// result set is closed when the range reaches its end; callers that stop early must call
// Close. A scan or driver error ends the range and is reported by Err.
type Rows[T any] struct {
	rows    *sqlx.Rows
	scan    func(*sqlx.Rows, *T) error
	cur     T
	pos     int
	started bool
	done    bool
	err     error
}

// Query runs query and returns its rows as a range.
func Query[T any](ctx context.Context, q sqlx.QueryerContext, query string, args ...any) (*Rows[T], error) {
	rows, err := q.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, errors.With(err, "sqlrange: query").Fields("query", query).Err()
	}
	return NewRows[T](rows), nil
}

func NewRows[T any](rows *sqlx.Rows) *Rows[T] {
	return &Rows[T]{rows: rows, scan: scannerFor[T](), pos: rowsEnd}
}

func (r *Rows[T]) Begin() int {
	if !r.started {
		r.started = true
		r.advance()
	}
	return r.pos
}

func (r *Rows[T]) End() int { return rowsEnd }

func (r *Rows[T]) Next(p int) int {
	if r.done {
		panic(errors.Wrap(errors.ErrExhausted, "sqlrange: Next past last row"))
	}
	r.advance()
	return r.pos
}

func (r *Rows[T]) Get(p int) T {
	if r.done {
		panic(errors.Wrap(errors.ErrExhausted, "sqlrange: Get past last row"))
	} else if p != r.pos {
		panic(errors.Errorf("sqlrange: row %d was already consumed (current %d)", p, r.pos))
	}
	return r.cur
}

// Err returns the error that ended the range early, if any.
func (r *Rows[T]) Err() error {
	return r.err
}

// Close releases the result set. It is safe to call more than once.
func (r *Rows[T]) Close() (err error) {
	defer errors.Annotate(&err, "sqlrange: close rows")

	r.started = true
	if r.done {
		return nil
	}
	r.done = true
	r.pos = rowsEnd
	return r.rows.Close()
}

func (r *Rows[T]) advance() {
	if !r.rows.Next() {
		r.finish(r.rows.Err())
		return
	}

	var v T
	if err := r.scan(r.rows, &v); err != nil {
		r.finish(errors.With(err, "sqlrange: scan").Fields("row", r.pos+1).Err())
		return
	}
	r.cur = v
	r.pos++
}

func (r *Rows[T]) finish(err error) {
	var zero T
	r.cur = zero
	r.err = err

	closeErr := r.Close()
	if closeErr == nil {
		return
	}
	slog.Error("sqlrange: failed to close rows", "err", closeErr)
	if r.err == nil {
		r.err = closeErr
	} else {
		r.err = errors.With(r.err).Cause(closeErr).Err()
	}
}

var (
	scannerType = reflect.TypeFor[sql.Scanner]()
	timeType    = reflect.TypeFor[time.Time]()
)

func scannerFor[T any]() func(*sqlx.Rows, *T) error {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Struct && t != timeType && !reflect.PointerTo(t).Implements(scannerType) {
		return func(rows *sqlx.Rows, v *T) error { return rows.StructScan(v) }
	}
	return func(rows *sqlx.Rows, v *T) error { return rows.Scan(v) }
}
