package gcode

import (
	"errors"
	"fmt"
)

// Error kinds. Match with errors.Is against the error returned by any parse
// entry point.
var (
	// ErrUnmatchedDelimiter is a closing ) or ] outside any comment.
	ErrUnmatchedDelimiter = errors.New("unmatched comment delimiter")

	// ErrUnexpectedToken is a token that cannot start or complete a chunk,
	// such as a trailing bare letter with no value after it.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrUnknownAddressLetter is a word letter outside the classified set.
	ErrUnknownAddressLetter = errors.New("unknown address letter")

	// ErrNumberFormat is a numeric token that fails integer or float
	// conversion for its letter's kind.
	ErrNumberFormat = errors.New("malformed number")
)

// ParseError locates a failure in the source. Line is 1-based and 0 when the
// input was a single line with no line context. Exactly one of Column
// (1-based, lex errors) or Token (parse errors) is meaningful.
type ParseError struct {
	Line   int
	Column int
	Token  string
	Err    error
}

func (e *ParseError) Error() string {
	var at string
	switch {
	case e.Line > 0 && e.Column > 0:
		at = fmt.Sprintf("line %d, col %d: ", e.Line, e.Column)
	case e.Line > 0:
		at = fmt.Sprintf("line %d: ", e.Line)
	case e.Column > 0:
		at = fmt.Sprintf("col %d: ", e.Column)
	}
	if e.Token != "" {
		return fmt.Sprintf("%s%v %q", at, e.Err, e.Token)
	}
	return at + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// onLine stamps the source line onto a ParseError coming up from the lexer
// or token parser, leaving other errors untouched.
func onLine(err error, line int) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Line == 0 {
		pe.Line = line
	}
	return err
}
