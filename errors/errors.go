package errors

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Sentinel errors shared by the range and zip packages.
var (
	// ErrUnsupported indicates that a range does not support the requested traversal operation.
	ErrUnsupported = errors.New("unsupported")
	// ErrExhausted indicates that a single-pass range was read after its last element.
	ErrExhausted = errors.New("range exhausted")
)

// Re-exported functions from github.com/pkg/errors and standard library for convenience.
var (
	// New returns an error that formats as the given text. Each call to New returns
	// a distinct error value even if the text is identical.
	New = errors.New
	// Errorf formats according to a format specifier and returns the string as a
	// value that satisfies error.
	Errorf = errors.Errorf
	// Wrap returns an error annotating err with a stack trace at the point Wrap is called,
	// and the supplied message. If err is nil, Wrap returns nil.
	Wrap = errors.Wrap
	// Cause returns the underlying cause of the error, if possible.
	Cause = errors.Cause
	Is    = stderrors.Is
	As    = stderrors.As
)

// Annotate wraps the error pointed to by err with the formatted message if err is non-nil.
// Meant for defer statements:
//
//	func (r *Rows[T]) Close() (err error) {
//	    defer Annotate(&err, "closing rows")
//	    ...
//	}
func Annotate(err *error, msg string, args ...any) {
	if *err != nil {
		*err = errors.Wrapf(*err, msg, args...)
	}
}

// WithCause wraps an error with an explicit root cause. Cause() returns the cause,
// Unwrap() returns err.
func WithCause(err error, cause error) error {
	return &withCause{err, cause}
}

type withCause struct {
	error
	cause error
}

func (w *withCause) Error() string { return w.error.Error() + ": " + w.cause.Error() }

func (w *withCause) Cause() error { return w.cause }

func (w *withCause) Unwrap() error { return w.error }

func (w *withCause) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%+v\n", w.Cause())
			io.WriteString(s, w.error.Error())
			return
		}
		fallthrough
	case 's', 'q':
		io.WriteString(s, w.Error())
	}
}
