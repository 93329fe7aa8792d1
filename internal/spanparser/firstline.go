package spanparser

import (
	"unicode"
	"unicode/utf8"
)

// maxRequestLineTokens is the number of request-line tokens that carry
// meaning: method, target, version. Later tokens are ignored.
const maxRequestLineTokens = 3

// TokenizeRequestLine splits the request line covered by line into up to
// three whitespace-delimited tokens. Returned spans are offsets into text,
// not into the line. Runs of any Unicode whitespace separate tokens, so a
// trailing "\r\n" never ends up inside the last token.
func TokenizeRequestLine(text string, line Span) (method, target, version Span) {
	var tokens [maxRequestLineTokens]Span
	n := 0

	tokStart := -1
	for i := line.Start; i < line.End && n < maxRequestLineTokens; {
		r, size := utf8.DecodeRuneInString(text[i:line.End])
		if unicode.IsSpace(r) {
			if tokStart >= 0 {
				tokens[n] = Span{Start: tokStart, End: i}
				n++
				tokStart = -1
			}
		} else if tokStart < 0 {
			tokStart = i
		}
		i += size
	}
	if tokStart >= 0 && n < maxRequestLineTokens {
		tokens[n] = Span{Start: tokStart, End: line.End}
	}

	return tokens[0], tokens[1], tokens[2]
}
