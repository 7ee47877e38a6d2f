package errors_test

import (
	stderrors "errors"
	"fmt"
	"io"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/brynbellomy/go-ranges/errors"
)

func TestBuilderWithFields(t *testing.T) {
	errfields := errors.Fields{"tier", "input"}
	cause := errors.New("blah")
	err := errors.With(errors.ErrUnsupported, "cannot step backward").Cause(cause).Fields(errfields).Err()

	require.True(t, stderrors.Is(err, errors.ErrUnsupported))
	tier, ok := errors.GetField(err, "tier")
	require.True(t, ok)
	require.Equal(t, "input", tier)
}

func TestBuilderNilParent(t *testing.T) {
	b := errors.With(nil, "ignored")
	require.Nil(t, b)
	require.Nil(t, b.Cause(io.EOF).Fields("a", 1).Err())
}

func TestBuilderPanicsOnNonStringMessage(t *testing.T) {
	require.Panics(t, func() {
		errors.With(errors.ErrExhausted, 42)
	})
}

func TestWithCause(t *testing.T) {
	original := pkgerrors.New("original error")
	cause := pkgerrors.New("root cause")

	result := errors.WithCause(original, cause)
	require.NotNil(t, result)
	require.Equal(t, "original error: root cause", result.Error())

	causer, ok := result.(interface{ Cause() error })
	require.True(t, ok)
	require.Equal(t, cause, causer.Cause())

	// Unwrap returns the wrapper to keep the chain intact
	require.Equal(t, original, pkgerrors.Unwrap(result))
}

func TestWithCause_Format(t *testing.T) {
	withCauseErr := errors.WithCause(pkgerrors.New("original error"), pkgerrors.New("root cause"))

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{"SimpleString", "%s", "original error: root cause"},
		{"Verb_v", "%v", "original error: root cause"},
		{"Quote", "%q", "original error: root cause"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, fmt.Sprintf(tt.format, withCauseErr))
		})
	}

	verbose := fmt.Sprintf("%+v", withCauseErr)
	require.Contains(t, verbose, "root cause")
	require.Contains(t, verbose, "original error")
}

func TestWithFields(t *testing.T) {
	baseErr := pkgerrors.New("base error")
	fields := errors.Fields{"tier", "forward", "arity", 2}

	result := errors.WithFields(baseErr, fields)
	require.Equal(t, "base error", result.Error())
	require.Equal(t, baseErr, pkgerrors.Unwrap(result))
	require.Equal(t, fields, errors.GetFields(result))
}

func TestWithFields_Nesting(t *testing.T) {
	baseErr := pkgerrors.New("base error")
	err1 := errors.WithFields(baseErr, "level", 1)
	err2 := errors.WithFields(err1, "level", 2, "lane", 0)

	require.Equal(t, errors.Fields{"level", 2, "lane", 0, "level", 1}, errors.GetFields(err2))

	level, ok := errors.GetField(err2, "level")
	require.True(t, ok)
	require.Equal(t, 2, level)

	_, ok = errors.GetField(err2, "missing")
	require.False(t, ok)
}

func TestWithFields_FlattensFields(t *testing.T) {
	err := errors.WithFields(errors.New("x"), errors.Fields{"a", 1}, "b", 2)
	require.Equal(t, errors.Fields{"a", 1, "b", 2}, errors.GetFields(err))
}

func TestWithFields_NilParent(t *testing.T) {
	require.Nil(t, errors.WithFields(nil, "key", "value"))
	require.Nil(t, errors.GetFields(nil))
}

func TestWithFields_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		format   string
		expected string
	}{
		{
			name:     "SimpleFields",
			err:      errors.WithFields(errors.New("step failed"), "lane", 1, "tier", "input"),
			format:   "%s",
			expected: "step failed lane=1 tier=input",
		},
		{
			name:     "StringRequiringQuotes",
			err:      errors.WithFields(errors.New("scan failed"), "query", "select id from t", "row", 3),
			format:   "%s",
			expected: `scan failed query="select id from t" row=3`,
		},
		{
			name:     "Verb_v",
			err:      errors.WithFields(errors.New("base error"), "key", "value"),
			format:   "%v",
			expected: "base error key=value",
		},
		{
			name:     "QuoteOmitsFields",
			err:      errors.WithFields(errors.New("base error"), "key", "value"),
			format:   "%q",
			expected: `"base error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, fmt.Sprintf(tt.format, tt.err))
		})
	}
}

func TestAnnotate(t *testing.T) {
	fn := func(fail bool) (err error) {
		defer errors.Annotate(&err, "reading lane %d", 2)
		if fail {
			return io.ErrUnexpectedEOF
		}
		return nil
	}

	require.NoError(t, fn(false))

	err := fn(true)
	require.EqualError(t, err, "reading lane 2: unexpected EOF")
	require.True(t, stderrors.Is(err, io.ErrUnexpectedEOF))
}

func TestBuilderCauseKeepsFields(t *testing.T) {
	scanErr := errors.With(io.ErrUnexpectedEOF, "scan").Fields("row", 4).Err()
	err := errors.With(scanErr).Cause(io.ErrClosedPipe).Err()

	require.EqualError(t, err, "scan: unexpected EOF: io: read/write on closed pipe")
	require.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	require.Equal(t, io.ErrClosedPipe, errors.Cause(err))

	row, ok := errors.GetField(err, "row")
	require.True(t, ok)
	require.Equal(t, 4, row)
}

func TestSentinelsAreDistinct(t *testing.T) {
	require.False(t, errors.Is(errors.ErrUnsupported, errors.ErrExhausted))
	require.Equal(t, "unsupported", errors.ErrUnsupported.Error())
}
