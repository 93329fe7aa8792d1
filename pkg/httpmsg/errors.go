package httpmsg

import (
	"fmt"

	"github.com/shapestone/shape-httpmsg/internal/spanparser"
)

var (
	// ErrEmptyMessage is returned by strict parsing of empty or
	// all-whitespace text.
	ErrEmptyMessage = spanparser.ErrEmptyMessage

	// ErrMissingSeparator is returned by strict parsing of a message with no
	// blank line after its headers.
	ErrMissingSeparator = spanparser.ErrMissingSeparator
)

// MissingRequiredError names the request-line field ("method", "target" or
// "version") that a strict parse or a conversion needed but did not find.
type MissingRequiredError = spanparser.MissingFieldError

// SpanError reports a caller-supplied span that is out of bounds, inverted
// or out of order. Spans computed by this package never produce one.
type SpanError = spanparser.SpanError

// InvalidTargetError reports a request target that is not an absolute URI.
type InvalidTargetError struct {
	Target string
	Err    error
}

// Error implements the error interface.
func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("httpmsg: invalid request target %q: %v", e.Target, e.Err)
}

// Unwrap returns the underlying URI parse error.
func (e *InvalidTargetError) Unwrap() error { return e.Err }

// ParseError reports a malformed line of an otherwise located message.
type ParseError struct {
	Message string // human-readable error message
	Line    int    // 1-indexed line number where error occurred (0 if unknown)
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("httpmsg: parse error at line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("httpmsg: %s", e.Message)
}

func newParseError(msg string, line int) *ParseError {
	return &ParseError{Message: msg, Line: line}
}
