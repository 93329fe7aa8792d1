package httpmsg

import (
	"bytes"
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httpmsg/internal/spanparser"
)

// ParseLenient locates the parts of text. It never fails: empty or blank
// text yields a view with every part absent.
func ParseLenient(text string) *LenientView {
	// The lenient policy has no failure mode.
	layout, _ := spanparser.Extract(text, spanparser.Lenient)
	return &LenientView{view: view{text: text, layout: *layout}}
}

// ParseStrict locates the parts of text and validates them.
//
// It returns ErrEmptyMessage for empty or blank text, a
// *MissingRequiredError when the request line lacks a method, target or
// version, ErrMissingSeparator when there is no blank line after the
// headers, an *InvalidTargetError when the target is not an absolute URI,
// and a *ParseError for a header line without a colon.
func ParseStrict(text string) (*StrictView, error) {
	layout, err := spanparser.Extract(text, spanparser.Strict)
	if err != nil {
		return nil, err
	}
	return newStrictView(view{text: text, layout: *layout})
}

// NewLenientView builds a view from caller-supplied spans. Pass the zero
// Span for absent parts. Unlike ParseLenient, the spans are untrusted, so a
// bad one is reported as a *SpanError instead of a panic.
func NewLenientView(text string, method, target, version Span, headers []Span, body Span) (*LenientView, error) {
	v, err := newView(text, method, target, version, headers, body)
	if err != nil {
		return nil, err
	}
	return &LenientView{view: v}, nil
}

// NewStrictView builds a strict view from caller-supplied spans. Method,
// target and version must be present, and a blank line must follow the
// request line and headers, or ErrMissingSeparator is returned.
func NewStrictView(text string, method, target, version Span, headers []Span, body Span) (*StrictView, error) {
	for _, f := range []struct {
		name string
		span Span
	}{{"method", method}, {"target", target}, {"version", version}} {
		if f.span.IsZero() {
			return nil, &SpanError{Field: f.name, Span: f.span, Reason: "required span is absent"}
		}
	}
	v, err := newView(text, method, target, version, headers, body)
	if err != nil {
		return nil, err
	}
	if !v.layout.HasSeparator() {
		return nil, ErrMissingSeparator
	}
	return newStrictView(v)
}

func newView(text string, method, target, version Span, headers []Span, body Span) (view, error) {
	layout := spanparser.Layout{
		Method:  method,
		Target:  target,
		Version: version,
		Body:    body,
	}
	if len(headers) > 0 {
		layout.Headers = append([]Span(nil), headers...)
	}
	layout.Separator = findSeparator(text, &layout)
	if err := spanparser.Verify(text, &layout); err != nil {
		return view{}, err
	}
	return view{text: text, layout: layout}, nil
}

// findSeparator returns the first blank line after the request line that
// starts at or after the last request-line or header span and ends at or
// before the body, or the zero Span.
func findSeparator(text string, l *spanparser.Layout) Span {
	after := 0
	for _, s := range append([]Span{l.Method, l.Target, l.Version}, l.Headers...) {
		if s.End > after {
			after = s.End
		}
	}
	lines := spanparser.ScanLines(text)
	for i := 1; i < len(lines); i++ {
		line := lines[i]
		if !l.Body.IsZero() && line.End > l.Body.Start {
			break
		}
		if line.Start >= after && spanparser.IsBlankLine(text, line) {
			return line
		}
	}
	return Span{}
}

func newStrictView(v view) (*StrictView, error) {
	req, err := v.request()
	if err != nil {
		return nil, err
	}
	return &StrictView{view: v, req: req}, nil
}

// Parse parses a complete request message into an AST. The node has the
// shape documented on RequestToNode and fails the same way ParseStrict does.
func Parse(text string) (ast.SchemaNode, error) {
	v, err := ParseStrict(text)
	if err != nil {
		return nil, err
	}
	return RequestToNode(v.req), nil
}

// ParseReader reads all of r and parses it with Parse.
func ParseReader(r io.Reader) (ast.SchemaNode, error) {
	text, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(text)
}

// ReadLenient reads all of r and parses it with ParseLenient.
func ReadLenient(r io.Reader) (*LenientView, error) {
	text, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return ParseLenient(text), nil
}

// ReadStrict reads all of r and parses it with ParseStrict.
func ReadStrict(r io.Reader) (*StrictView, error) {
	text, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return ParseStrict(text)
}

func readAll(r io.Reader) (string, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return "", err
	}
	return buf.String(), nil
}
