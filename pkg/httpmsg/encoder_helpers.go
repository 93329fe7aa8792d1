package httpmsg

import "strings"

// appendRequest serializes req. It appends "METHOD TARGET VERSION\n",
// the headers, a blank line and the body.
func appendRequest(buf []byte, req *Request) ([]byte, error) {
	method := req.Method.String()
	if method == "" || strings.ContainsAny(method, " \t\n") {
		return nil, newParseError("request method is empty or contains whitespace", 0)
	}
	if req.Target == nil {
		return nil, newParseError("request target is empty", 0)
	}
	version := req.Version
	if version == "" {
		version = DefaultVersion
	}

	buf = appendRequestLine(buf, method, req.Target.String(), version.String())
	for _, h := range req.Headers {
		if strings.ContainsRune(h.Key, ':') || strings.ContainsRune(h.Key, '\n') || strings.ContainsRune(h.Value, '\n') {
			return nil, newParseError("header "+h.Key+" cannot be written on one line", 0)
		}
		buf = appendHeader(buf, h)
	}
	buf = appendLF(buf)
	if len(req.Body) > 0 {
		buf = append(buf, req.Body...)
	}
	return buf, nil
}

// appendLF appends the line terminator to buf.
func appendLF(buf []byte) []byte {
	return append(buf, '\n')
}

// appendRequestLine appends "METHOD TARGET VERSION\n" to buf.
func appendRequestLine(buf []byte, method, target, version string) []byte {
	buf = append(buf, method...)
	buf = append(buf, ' ')
	buf = append(buf, target...)
	buf = append(buf, ' ')
	buf = append(buf, version...)
	return appendLF(buf)
}

// appendHeader appends "Key: Value\n" to buf.
func appendHeader(buf []byte, h Header) []byte {
	buf = append(buf, h.Key...)
	buf = append(buf, ':', ' ')
	buf = append(buf, h.Value...)
	return appendLF(buf)
}
