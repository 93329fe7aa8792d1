// Package spanparser locates the request line, header lines and body of a raw
// HTTP request message as byte ranges over the original text.
//
// Nothing in this package copies or rewrites the message. Every result is a
// Span, a half-open [Start, End) offset pair that is resolved against the
// buffer it was computed from.
package spanparser

import "fmt"

// Span is a half-open byte range [Start, End) into one message buffer.
// The zero Span means "absent": a present span always has Start < End.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by s.
func (s Span) Len() int { return s.End - s.Start }

// IsZero reports whether s is the absent span.
func (s Span) IsZero() bool { return s.Start == 0 && s.End == 0 }

// Slice returns the text covered by s. The span must already be verified
// against text.
func (s Span) Slice(text string) string { return text[s.Start:s.End] }

func (s Span) String() string { return fmt.Sprintf("%d..%d", s.Start, s.End) }

// Layout is the full set of spans extracted from one message.
type Layout struct {
	Method  Span
	Target  Span
	Version Span
	Headers []Span
	Body    Span

	// Separator is the blank line between headers and body, zero if the
	// message has none.
	Separator Span
}

// HasSeparator reports whether a blank-line separator was found.
func (l *Layout) HasSeparator() bool { return !l.Separator.IsZero() }
