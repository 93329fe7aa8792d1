package httpmsg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnose_Clean(t *testing.T) {
	v := ParseLenient("GET https://example.com HTTP/1.1\nx-key: 123\n\nbody")
	assert.Empty(t, v.Diagnose())

	s, err := ParseStrict("GET https://example.com HTTP/1.1\n\n")
	assert.NoError(t, err)
	assert.Empty(t, s.Diagnose())
}

func TestDiagnose(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", " \n", []string{"empty message"}},
		{"no version", "GET https://example.com\n\n", []string{
			"line 1: missing HTTP version in request line",
		}},
		{"method only", "GET\n\n", []string{
			"line 1: request line has only a method, no target or version",
		}},
		{"empty request line", "\n\nbody", []string{
			"line 1: empty request line",
		}},
		{"bad version", "GET https://example.com 1.1\n\n", []string{
			`line 1: version "1.1" is not of the form HTTP/x.y`,
		}},
		{"extra tokens", "GET https://example.com HTTP/1.1 x y\n\n", []string{
			"line 1: 2 extra tokens after version ignored",
		}},
		{"text glued to version", "GET https://example.com HTTP/1.1x\n\n", []string{
			`line 1: version "HTTP/1.1x" is not of the form HTTP/x.y`,
		}},
		{"no separator", "GET https://example.com HTTP/1.1\na: b", []string{
			"missing blank line after headers",
		}},
		{"header without colon", "GET https://example.com HTTP/1.1\nbogus\n\n", []string{
			"line 2: malformed header (no colon): bogus",
		}},
		{"empty header name", "GET https://example.com HTTP/1.1\n: v\n\n", []string{
			"line 2: empty header name",
		}},
		{"space before colon", "GET https://example.com HTTP/1.1\nok: 1\nx-key : v\n\n", []string{
			"line 3: whitespace before colon in header name, key lookups will not match",
		}},
		{"crlf", "GET https://example.com HTTP/1.1\r\na: b\r\n\r\n", []string{
			"line 1: carriage return kept as line content",
			"line 2: carriage return kept as line content",
			"line 3: malformed header (no colon): ",
			"line 3: carriage return kept as line content",
			"missing blank line after headers",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLenient(tt.text).Diagnose())
		})
	}
}
