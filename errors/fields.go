package errors

import (
	"fmt"
	"io"
)

// Fields represents structured key-value pairs attached to an error. Fields are formatted
// as logfmt when the error is printed: "error message key1=value1 key2="quoted value"".
// Use %s or %v to include fields in output; %q outputs only the error message.
type Fields []any

type withFields struct {
	parent error
	fields Fields
}

// WithFields attaches key-value pairs to err. Fields values passed as items are flattened.
func WithFields(err error, items ...any) error {
	if err == nil {
		return nil
	}

	var fields Fields
	for _, item := range items {
		if fs, ok := item.(Fields); ok {
			fields = append(fields, fs...)
		} else {
			fields = append(fields, item)
		}
	}
	return &withFields{parent: err, fields: fields}
}

func (wf *withFields) Error() string {
	return wf.parent.Error()
}

func (wf *withFields) Unwrap() error {
	return wf.parent
}

func (wf *withFields) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%+v", wf.parent)
		} else {
			io.WriteString(s, wf.Error())
		}
		writeFields(s, GetFields(wf))
	case 's':
		io.WriteString(s, wf.Error())
		writeFields(s, GetFields(wf))
	case 'q':
		fmt.Fprintf(s, "%q", wf.Error())
	}
}

// GetFields collects the fields of every withFields wrapper in err's chain, outermost first.
func GetFields(err error) Fields {
	var fields Fields
	for err != nil {
		wf := &withFields{}
		if !As(err, &wf) {
			break
		}
		fields = append(fields, wf.fields...)
		err = wf.parent
	}
	return fields
}

// GetField returns the value of the first field named key in err's chain.
func GetField(err error, key string) (any, bool) {
	fields := GetFields(err)
	for i := 0; i+1 < len(fields); i += 2 {
		if fmt.Sprint(fields[i]) == key {
			return fields[i+1], true
		}
	}
	return nil, false
}

func writeFields(w io.Writer, fields Fields) {
	if len(fields) == 0 {
		return
	}
	io.WriteString(w, " ")
	for i := 0; i < len(fields); i += 2 {
		if i > 0 {
			io.WriteString(w, " ")
		}
		io.WriteString(w, fmt.Sprint(fields[i]))
		io.WriteString(w, "=")

		if i+1 < len(fields) {
			switch v := fields[i+1].(type) {
			case string:
				if needsQuoting(v) {
					fmt.Fprintf(w, "%q", v)
				} else {
					io.WriteString(w, v)
				}
			default:
				fmt.Fprint(w, v)
			}
		}
	}
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r == ' ' || r == '=' || r == '"' || r == '\n' || r == '\t' || r == '\r' {
			return true
		}
	}
	return false
}
