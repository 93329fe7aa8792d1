package httpmsg

import (
	"strings"

	"github.com/shapestone/shape-httpmsg/internal/spanparser"
)

// Span is a half-open byte range [Start, End) into a view's message. The
// zero Span means absent.
type Span = spanparser.Span

// view holds the message text and the spans located in it. It is shared by
// LenientView and StrictView and never modified after construction.
type view struct {
	text   string
	layout spanparser.Layout
}

// Message returns the original message text.
func (v *view) Message() string { return v.text }

// String reproduces the original message byte for byte.
func (v *view) String() string { return v.text }

// HeaderSpans returns the span of every header line in order. Each span
// includes the line's terminator when it has one.
func (v *view) HeaderSpans() []Span {
	if len(v.layout.Headers) == 0 {
		return nil
	}
	out := make([]Span, len(v.layout.Headers))
	copy(out, v.layout.Headers)
	return out
}

// HeaderLines returns the text of every header line in order.
func (v *view) HeaderLines() []string {
	if len(v.layout.Headers) == 0 {
		return nil
	}
	lines := make([]string, len(v.layout.Headers))
	for i, s := range v.layout.Headers {
		lines[i] = s.Slice(v.text)
	}
	return lines
}

// HeaderSpan returns the span of the first header line starting with
// key + ":". The match is exact and case-sensitive.
func (v *view) HeaderSpan(key string) (Span, bool) {
	prefix := key + ":"
	for _, s := range v.layout.Headers {
		if strings.HasPrefix(s.Slice(v.text), prefix) {
			return s, true
		}
	}
	return Span{}, false
}

// HeaderLine returns the full text of the header line matched by HeaderSpan.
func (v *view) HeaderLine(key string) (string, bool) {
	s, ok := v.HeaderSpan(key)
	if !ok {
		return "", false
	}
	return s.Slice(v.text), true
}

// HasSeparator reports whether the message has a blank line after its
// headers.
func (v *view) HasSeparator() bool { return v.layout.HasSeparator() }

// BodySpan returns the span of the body, if the message has one.
func (v *view) BodySpan() (Span, bool) {
	return v.layout.Body, !v.layout.Body.IsZero()
}

// Body returns the body text, if the message has one.
func (v *view) Body() (string, bool) {
	return v.optional(v.layout.Body)
}

func (v *view) optional(s Span) (string, bool) {
	if s.IsZero() {
		return "", false
	}
	return s.Slice(v.text), true
}

// LenientView is a located request message in which method, target and
// version are each optional.
type LenientView struct {
	view
}

// MethodSpan returns the span of the method token, if present.
func (v *LenientView) MethodSpan() (Span, bool) {
	return v.layout.Method, !v.layout.Method.IsZero()
}

// Method returns the method token, if present.
func (v *LenientView) Method() (string, bool) { return v.optional(v.layout.Method) }

// TargetSpan returns the span of the request target, if present.
func (v *LenientView) TargetSpan() (Span, bool) {
	return v.layout.Target, !v.layout.Target.IsZero()
}

// Target returns the request target, if present.
func (v *LenientView) Target() (string, bool) { return v.optional(v.layout.Target) }

// VersionSpan returns the span of the version token, if present.
func (v *LenientView) VersionSpan() (Span, bool) {
	return v.layout.Version, !v.layout.Version.IsZero()
}

// Version returns the version token, if present.
func (v *LenientView) Version() (string, bool) { return v.optional(v.layout.Version) }

// StrictView is a located request message with a complete request line, a
// valid target and well-formed header lines.
type StrictView struct {
	view
	req *Request
}

// MethodSpan returns the span of the method token.
func (v *StrictView) MethodSpan() Span { return v.layout.Method }

// Method returns the method token.
func (v *StrictView) Method() string { return v.layout.Method.Slice(v.text) }

// TargetSpan returns the span of the request target.
func (v *StrictView) TargetSpan() Span { return v.layout.Target }

// Target returns the request target.
func (v *StrictView) Target() string { return v.layout.Target.Slice(v.text) }

// VersionSpan returns the span of the version token.
func (v *StrictView) VersionSpan() Span { return v.layout.Version }

// Version returns the version token.
func (v *StrictView) Version() string { return v.layout.Version.Slice(v.text) }
