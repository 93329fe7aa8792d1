package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewRequestLineTokenizer creates a tokenizer for the first line of a
// request. Colons are not structural here: targets such as
// "https://example.com:8080" lex as one Text token.
func NewRequestLineTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		LFMatcher(),
		CRMatcher(),
		WSMatcher(),
		VersionMatcher(),
		TextMatcher(false),
	)
}

// NewHeaderTokenizer creates a tokenizer for a single header line.
func NewHeaderTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		LFMatcher(),
		CRMatcher(),
		WSMatcher(),
		tokenizer.StringMatcherFunc(TokenHeaderColon, ":"),
		TextMatcher(true),
	)
}

// Lex runs tok over line and returns the tokens and whether the whole line
// was consumed.
func Lex(tok tokenizer.Tokenizer, line string) ([]tokenizer.Token, bool) {
	tok.Initialize(line)
	return tok.Tokenize()
}

// Kinds returns the kind of every token, in order.
func Kinds(tokens []tokenizer.Token) []string {
	kinds := make([]string, len(tokens))
	for i, t := range tokens {
		kinds[i] = t.Kind()
	}
	return kinds
}

// LFMatcher matches a line feed.
func LFMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != '\n' {
			return nil
		}
		stream.NextChar()
		return tokenizer.NewToken(TokenLF, []rune{'\n'})
	}
}

// CRMatcher matches a carriage return.
func CRMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != '\r' {
			return nil
		}
		stream.NextChar()
		return tokenizer.NewToken(TokenCR, []rune{'\r'})
	}
}

// WSMatcher matches one or more SP or HTAB characters.
func WSMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok || (r != ' ' && r != '\t') {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenWS, value)
	}
}

// VersionMatcher matches "HTTP/" followed by digits and dots.
func VersionMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for _, expected := range "HTTP/" {
			r, ok := stream.PeekChar()
			if !ok || r != expected {
				return nil
			}
			stream.NextChar()
			value = append(value, r)
		}

		for {
			r, ok := stream.PeekChar()
			if !ok || !((r >= '0' && r <= '9') || r == '.') {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		return tokenizer.NewToken(TokenVersion, value)
	}
}

// TextMatcher matches characters up to whitespace, a line ending or end of
// input. With stopAtColon it also stops at ':'.
func TextMatcher(stopAtColon bool) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok {
				break
			}
			if r == ' ' || r == '\t' || r == '\r' || r == '\n' || (stopAtColon && r == ':') {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenText, value)
	}
}
