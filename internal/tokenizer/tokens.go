// Package tokenizer lexes request lines and header lines using Shape's
// tokenizer framework.
package tokenizer

// Token kinds. Messages are LF-terminated; a carriage return is lexed as
// its own token so callers can report it.
const (
	TokenText        = "Text"        // method, target, header name or value word
	TokenVersion     = "Version"     // HTTP/1.0, HTTP/1.1, HTTP/2
	TokenWS          = "WS"          // run of SP and HTAB
	TokenHeaderColon = "HeaderColon" // ':' in a header line
	TokenCR          = "CR"          // '\r'
	TokenLF          = "LF"          // '\n'
)
