package junit

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is the kind of ParseError returned for unreadable XML.
	ErrMalformed = errors.New("malformed report")
	// ErrEmpty is the kind of ParseError returned for a report with no suites.
	ErrEmpty = errors.New("report contains no test suites")
)

// ParseError describes why a report could not be parsed.
//
// errors.Is matches a ParseError against its Kind, so callers can test for
// ErrMalformed or ErrEmpty without unwrapping.
type ParseError struct {
	Kind   error
	Source string
	// Line and Column point at the decoder position when the error was
	// detected. Both are zero when no position is known.
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	msg := e.Source
	if e.Line > 0 {
		msg = fmt.Sprintf("%s:%d:%d", msg, e.Line, e.Column)
	}

	msg = fmt.Sprintf("%s: %v", msg, e.Kind)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return msg
}

// Is reports whether target is the error kind.
func (e *ParseError) Is(target error) bool {
	return target == e.Kind
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
