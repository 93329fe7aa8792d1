// Package httpmsg parses raw HTTP request message text into views that
// locate the request line, headers and body as byte spans over the original
// text, and converts those views into owned, typed requests.
//
// # Modes
//
// ParseLenient never fails. It accepts partial and templated messages: any
// of method, target and version may be missing, and the blank line between
// headers and body is optional. ParseStrict requires a request line with all
// three tokens, header lines, a blank line, and an optional body.
//
// Both modes share one pipeline and differ only in policy. Lines end with a
// single LF; a CR before it stays part of the line.
//
// # Thread Safety
//
// Views and requests are immutable after construction and safe for
// concurrent reads. No function in this package holds shared mutable state.
package httpmsg

import (
	"fmt"
	"strings"
)

// Request is the owned, typed form of a request message. It holds no
// reference to the text it was converted from.
type Request struct {
	Method  Method
	Target  *URI
	Version Version
	Headers Headers // ordered, duplicates preserved
	Body    []byte  // nil if the message has no body
}

// NewGet builds a GET request with the default version and no body.
func NewGet(target string, headers Headers) (*Request, error) {
	uri, err := ParseURI(target)
	if err != nil {
		return nil, err
	}
	return &Request{Method: MethodGet, Target: uri, Version: DefaultVersion, Headers: headers}, nil
}

// NewPost builds a POST request with the default version.
func NewPost(target string, headers Headers, body []byte) (*Request, error) {
	uri, err := ParseURI(target)
	if err != nil {
		return nil, err
	}
	return &Request{Method: MethodPost, Target: uri, Version: DefaultVersion, Headers: headers, Body: body}, nil
}

// HasBody reports whether the request carries a body.
func (r *Request) HasBody() bool { return r.Body != nil }

// Clone returns a deep copy of r.
func (r *Request) Clone() *Request {
	c := *r
	c.Headers = r.Headers.Clone()
	if r.Body != nil {
		c.Body = append([]byte{}, r.Body...)
	}
	return &c
}

// Header is a single header key-value pair.
type Header struct {
	Key   string
	Value string
}

// ParseHeader splits a "key: value" line on its first colon. The key is
// kept verbatim and the value is trimmed of surrounding whitespace,
// including the line terminator.
func ParseHeader(line string) (Header, error) {
	h, err := parseHeader(line)
	if err != nil {
		return Header{}, err
	}
	return h, nil
}

func parseHeader(line string) (Header, *ParseError) {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return Header{}, newParseError(fmt.Sprintf("malformed header (no colon): %q", strings.TrimRight(line, "\r\n")), 0)
	}
	return Header{Key: line[:colon], Value: strings.TrimSpace(line[colon+1:])}, nil
}

func (h Header) String() string { return h.Key + ": " + h.Value }

// Headers is an ordered, repeatable list of headers. Keys are matched
// exactly, the same way view lookups match the "key:" prefix.
type Headers []Header

// Get returns the first value for key, or "" if there is none.
func (h Headers) Get(key string) string {
	for _, hdr := range h {
		if hdr.Key == key {
			return hdr.Value
		}
	}
	return ""
}

// Lookup is Get that also reports whether key was present.
func (h Headers) Lookup(key string) (string, bool) {
	for _, hdr := range h {
		if hdr.Key == key {
			return hdr.Value, true
		}
	}
	return "", false
}

// Values returns every value for key in order.
func (h Headers) Values(key string) []string {
	var vals []string
	for _, hdr := range h {
		if hdr.Key == key {
			vals = append(vals, hdr.Value)
		}
	}
	return vals
}

// Set makes key single-valued: the first header with key takes value, its
// position is kept and every later header with the same key is removed. If
// key is absent the header is appended. Use Add to keep duplicates; parsing
// and conversion never call Set, so parsed duplicates are always preserved.
func (h *Headers) Set(key, value string) {
	for i, hdr := range *h {
		if hdr.Key == key {
			(*h)[i].Value = value
			j := i + 1
			for j < len(*h) {
				if (*h)[j].Key == key {
					*h = append((*h)[:j], (*h)[j+1:]...)
				} else {
					j++
				}
			}
			return
		}
	}
	*h = append(*h, Header{Key: key, Value: value})
}

// Add appends a header without replacing existing ones.
func (h *Headers) Add(key, value string) {
	*h = append(*h, Header{Key: key, Value: value})
}

// Del removes all headers with key.
func (h *Headers) Del(key string) {
	j := 0
	for _, hdr := range *h {
		if hdr.Key != key {
			(*h)[j] = hdr
			j++
		}
	}
	*h = (*h)[:j]
}

// Clone returns a copy of the headers.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	clone := make(Headers, len(h))
	copy(clone, h)
	return clone
}
