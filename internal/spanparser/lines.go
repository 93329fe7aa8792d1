package spanparser

// ScanLines splits text into one span per line. Each span includes its
// trailing '\n'. A final line without a terminator gets a span of its own.
// Carriage returns are ordinary content.
func ScanLines(text string) []Span {
	var lines []Span
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, Span{Start: start, End: i + 1})
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, Span{Start: start, End: len(text)})
	}
	return lines
}

// IsBlankLine reports whether line holds nothing but its terminator. An
// unterminated one-byte final line is content, not a blank line.
func IsBlankLine(text string, line Span) bool {
	return line.Len() == 1 && text[line.Start] == '\n'
}

// FirstBlankLine returns the index of the first blank line after the request
// line, or -1. The request line itself never acts as the separator.
func FirstBlankLine(text string, lines []Span) int {
	for i := 1; i < len(lines); i++ {
		if IsBlankLine(text, lines[i]) {
			return i
		}
	}
	return -1
}
