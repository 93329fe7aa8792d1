package httpmsg

import (
	"fmt"
	"strings"

	"github.com/shapestone/shape-httpmsg/internal/spanparser"
	"github.com/shapestone/shape-httpmsg/internal/tokenizer"
)

// Diagnose reports problems a strict parse or a conversion would trip over,
// plus constructs that parse but are probably unintended. It never fails;
// a clean message yields no warnings.
//
// Warnings are formatted "line N: message" when they belong to a line.
func (v *view) Diagnose() []string {
	var d diagnostics
	if strings.TrimSpace(v.text) == "" {
		d.add(0, "empty message")
		return d.warnings
	}

	lines := spanparser.ScanLines(v.text)
	d.requestLine(v.text, lines[0], &v.layout)
	for _, s := range v.layout.Headers {
		d.headerLine(lineNumber(v.text, s.Start), s.Slice(v.text))
	}
	if !v.layout.HasSeparator() {
		d.add(0, "missing blank line after headers")
	}
	return d.warnings
}

type diagnostics struct {
	warnings []string
}

func (d *diagnostics) add(line int, msg string) {
	if line > 0 {
		d.warnings = append(d.warnings, fmt.Sprintf("line %d: %s", line, msg))
	} else {
		d.warnings = append(d.warnings, msg)
	}
}

func (d *diagnostics) requestLine(text string, line spanparser.Span, l *spanparser.Layout) {
	switch {
	case l.Method.IsZero():
		d.add(1, "empty request line")
		return
	case l.Target.IsZero():
		d.add(1, "request line has only a method, no target or version")
	case l.Version.IsZero():
		d.add(1, "missing HTTP version in request line")
	default:
		version := l.Version.Slice(text)
		tokens, _ := tokenizer.Lex(tokenizer.NewRequestLineTokenizer(), version)
		if len(tokens) != 1 || tokens[0].Kind() != tokenizer.TokenVersion {
			d.add(1, fmt.Sprintf("version %q is not of the form HTTP/x.y", version))
		}
	}

	tokens, _ := tokenizer.Lex(tokenizer.NewRequestLineTokenizer(), line.Slice(text))
	// A word is a run of lexemes between whitespace, so "HTTP/1.1x" is one.
	words, inWord := 0, false
	for _, tok := range tokens {
		switch tok.Kind() {
		case tokenizer.TokenWS, tokenizer.TokenLF:
			inWord = false
		case tokenizer.TokenCR:
			inWord = false
			d.add(1, "carriage return kept as line content")
		default:
			if !inWord {
				words++
				inWord = true
			}
		}
	}
	if words > 3 {
		d.add(1, fmt.Sprintf("%d extra tokens after version ignored", words-3))
	}
}

func (d *diagnostics) headerLine(n int, line string) {
	tokens, _ := tokenizer.Lex(tokenizer.NewHeaderTokenizer(), line)
	kinds := tokenizer.Kinds(tokens)

	colon := -1
	for i, k := range kinds {
		if k == tokenizer.TokenHeaderColon {
			colon = i
			break
		}
	}
	switch {
	case colon < 0:
		d.add(n, fmt.Sprintf("malformed header (no colon): %s", strings.TrimRight(line, "\r\n")))
	case colon == 0:
		d.add(n, "empty header name")
	case kinds[colon-1] == tokenizer.TokenWS:
		d.add(n, "whitespace before colon in header name, key lookups will not match")
	}
	for _, k := range kinds {
		if k == tokenizer.TokenCR {
			d.add(n, "carriage return kept as line content")
			break
		}
	}
}

func lineNumber(text string, offset int) int {
	return 1 + strings.Count(text[:offset], "\n")
}
