package spanparser

// SplitSections partitions lines into header lines and a body span.
//
// blank is the index of the separator line as returned by FirstBlankLine.
// Headers are the lines strictly between the request line and the
// separator, or every line after the request line if blank < 0. The body
// runs from the end of the separator to textLen; an empty body is absent.
func SplitSections(lines []Span, blank, textLen int) (headers []Span, body Span) {
	if len(lines) <= 1 {
		return nil, Span{}
	}
	if blank < 0 {
		return cloneSpans(lines[1:]), Span{}
	}

	headers = cloneSpans(lines[1:blank])
	body = Span{Start: lines[blank].End, End: textLen}
	if body.Len() <= 0 {
		body = Span{}
	}
	return headers, body
}

func cloneSpans(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}
	out := make([]Span, len(spans))
	copy(out, spans)
	return out
}
