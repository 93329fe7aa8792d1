package spanparser

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// SpanError reports a span that is out of bounds, inverted, cut through a
// UTF-8 sequence, or out of order relative to the spans before it.
type SpanError struct {
	Field  string // "method", "target", "version", "header[2]", "separator", "body"
	Span   Span
	Reason string
}

// Error implements the error interface.
func (e *SpanError) Error() string {
	return fmt.Sprintf("httpmsg: invalid %s span %s: %s", e.Field, e.Span, e.Reason)
}

// Verify checks every present span of l against text: in bounds, non-empty,
// on code-point boundaries, and ordered method < target < version < headers
// < separator < body. Absent (zero) spans are skipped.
func Verify(text string, l *Layout) error {
	v := verifier{text: text}
	v.check("method", l.Method)
	v.check("target", l.Target)
	v.check("version", l.Version)
	for i, h := range l.Headers {
		if h.IsZero() {
			v.fail("header["+strconv.Itoa(i)+"]", h, "header span is absent")
			continue
		}
		v.check("header["+strconv.Itoa(i)+"]", h)
	}
	v.check("separator", l.Separator)
	v.check("body", l.Body)
	return v.err
}

// MustVerify is Verify for layouts produced by Extract. A failure means the
// pipeline itself is broken, so it panics with the *SpanError.
func MustVerify(text string, l *Layout) {
	if err := Verify(text, l); err != nil {
		panic(err)
	}
}

type verifier struct {
	text    string
	prevEnd int
	prev    string
	err     error
}

func (v *verifier) fail(field string, s Span, reason string) {
	if v.err == nil {
		v.err = &SpanError{Field: field, Span: s, Reason: reason}
	}
}

func (v *verifier) check(field string, s Span) {
	if v.err != nil || s.IsZero() {
		return
	}
	switch {
	case s.Start < 0 || s.End > len(v.text):
		v.fail(field, s, fmt.Sprintf("outside of message bounds 0..%d", len(v.text)))
	case s.Start >= s.End:
		v.fail(field, s, "start is not before end")
	case !onBoundary(v.text, s.Start) || !onBoundary(v.text, s.End):
		v.fail(field, s, "splits a UTF-8 sequence")
	case s.Start < v.prevEnd:
		v.fail(field, s, fmt.Sprintf("overlaps or precedes %s ending at %d", v.prev, v.prevEnd))
	default:
		v.prevEnd = s.End
		v.prev = field
	}
}

// onBoundary reports whether i does not fall inside a well-formed UTF-8
// sequence. Stray bytes of malformed input are their own boundaries, the
// same way the request-line tokenizer steps over them.
func onBoundary(text string, i int) bool {
	if i <= 0 || i >= len(text) || utf8.RuneStart(text[i]) {
		return true
	}
	for j := i - 1; j >= 0 && j > i-utf8.UTFMax; j-- {
		if utf8.RuneStart(text[j]) {
			r, size := utf8.DecodeRuneInString(text[j:])
			return (r == utf8.RuneError && size == 1) || j+size <= i
		}
	}
	return true
}
