package errors

import "fmt"

type Builder struct {
	error
}

func With(parent error, args ...any) *Builder {
	if parent == nil {
		return nil
	} else if len(args) == 0 {
		return &Builder{error: parent}
	}

	if msg, isStr := args[0].(string); !isStr {
		panic(fmt.Sprintf("invariant violation: got %T, expected string", args[0]))
	} else {
		if len(args) > 1 {
			msg = fmt.Sprintf(msg, args[1:]...)
		}
		return &Builder{error: Wrap(parent, msg)}
	}
}

func (b *Builder) Err() error {
	if b == nil {
		return nil
	}
	return b.error
}

func (b *Builder) Cause(cause error) *Builder {
	if b == nil {
		return nil
	}
	b.error = WithCause(b.error, cause)
	return b
}

func (b *Builder) Fields(fields ...any) *Builder {
	if b == nil {
		return nil
	}
	b.error = WithFields(b.error, fields...)
	return b
}
