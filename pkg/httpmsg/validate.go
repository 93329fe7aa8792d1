package httpmsg

import (
	"github.com/shapestone/shape-httpmsg/internal/spanparser"
)

// Request converts the view into an owned request.
//
// It fails with a *MissingRequiredError naming the first absent field,
// checked method, target, version; with an *InvalidTargetError if the
// target is not an absolute URI; or with a *ParseError for a header line
// that has no colon.
func (v *LenientView) Request() (*Request, error) {
	return v.request()
}

// Request returns the owned request. It cannot fail: everything it needs
// was validated when the view was built.
func (v *StrictView) Request() *Request {
	return v.req.Clone()
}

// Validate reports whether text is a complete request message: it parses
// under ParseStrict and converts to a Request.
func Validate(text string) error {
	_, err := ParseStrict(text)
	return err
}

func (v *view) request() (*Request, error) {
	l := &v.layout
	if err := spanparser.RequireRequestLine(l); err != nil {
		return nil, err
	}

	target, err := ParseURI(l.Target.Slice(v.text))
	if err != nil {
		return nil, err
	}

	headers, err := v.headers()
	if err != nil {
		return nil, err
	}

	req := &Request{
		Method:  ParseMethod(l.Method.Slice(v.text)),
		Target:  target,
		Version: ParseVersion(l.Version.Slice(v.text)),
		Headers: headers,
	}
	if !l.Body.IsZero() {
		req.Body = []byte(l.Body.Slice(v.text))
	}
	return req, nil
}

func (v *view) headers() (Headers, error) {
	if len(v.layout.Headers) == 0 {
		return nil, nil
	}
	headers := make(Headers, 0, len(v.layout.Headers))
	for _, s := range v.layout.Headers {
		h, perr := parseHeader(s.Slice(v.text))
		if perr != nil {
			perr.Line = lineNumber(v.text, s.Start)
			return nil, perr
		}
		headers = append(headers, h)
	}
	return headers, nil
}
