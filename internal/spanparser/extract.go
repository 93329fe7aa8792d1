package spanparser

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyMessage is returned by a policy that rejects empty or
	// all-whitespace input.
	ErrEmptyMessage = errors.New("httpmsg: empty HTTP message")

	// ErrMissingSeparator is returned by a policy that requires the blank
	// line between headers and body.
	ErrMissingSeparator = errors.New("httpmsg: missing blank line after headers")
)

// MissingFieldError names a request-line field that is absent.
type MissingFieldError struct {
	Field string // "method", "target" or "version"
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("httpmsg: missing required field %q", e.Field)
}

// Policy decides what the shared pipeline tolerates.
type Policy struct {
	// AllowEmpty turns empty or all-whitespace input into an empty layout
	// instead of ErrEmptyMessage.
	AllowEmpty bool

	// RequireRequestLine makes an absent method, target or version a
	// *MissingFieldError.
	RequireRequestLine bool

	// RequireSeparator makes a missing blank line ErrMissingSeparator.
	RequireSeparator bool
}

var (
	// Lenient accepts anything, including partial and templated messages.
	Lenient = Policy{AllowEmpty: true}

	// Strict requires a request line, headers, blank line and body.
	Strict = Policy{RequireRequestLine: true, RequireSeparator: true}
)

// Extract runs the scanner, request-line tokenizer and section splitter over
// text and returns the verified layout.
func Extract(text string, p Policy) (*Layout, error) {
	if strings.TrimSpace(text) == "" {
		if !p.AllowEmpty {
			return nil, ErrEmptyMessage
		}
		return &Layout{}, nil
	}

	lines := ScanLines(text)

	l := &Layout{}
	l.Method, l.Target, l.Version = TokenizeRequestLine(text, lines[0])
	if p.RequireRequestLine {
		if err := RequireRequestLine(l); err != nil {
			return nil, err
		}
	}

	blank := FirstBlankLine(text, lines)
	if blank >= 0 {
		l.Separator = lines[blank]
	} else if p.RequireSeparator {
		return nil, ErrMissingSeparator
	}
	l.Headers, l.Body = SplitSections(lines, blank, len(text))

	MustVerify(text, l)
	return l, nil
}

// RequireRequestLine returns a *MissingFieldError for the first absent
// request-line field, checked method, target, version.
func RequireRequestLine(l *Layout) error {
	switch {
	case l.Method.IsZero():
		return &MissingFieldError{Field: "method"}
	case l.Target.IsZero():
		return &MissingFieldError{Field: "target"}
	case l.Version.IsZero():
		return &MissingFieldError{Field: "version"}
	}
	return nil
}
