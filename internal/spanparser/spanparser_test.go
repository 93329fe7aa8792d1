package spanparser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanLines(t *testing.T) {
	text := "hello\nworld\nlast"
	lines := ScanLines(text)
	assert.Equal(t, []Span{{0, 6}, {6, 12}, {12, 16}}, lines)
	assert.Equal(t, "hello\n", lines[0].Slice(text))
	assert.Equal(t, "last", lines[2].Slice(text))
}

func TestScanLines_TrailingNewline(t *testing.T) {
	assert.Equal(t, []Span{{0, 4}, {4, 8}}, ScanLines("one\ntwo\n"))
}

func TestScanLines_Empty(t *testing.T) {
	assert.Empty(t, ScanLines(""))
}

func TestScanLines_CRLFIsContent(t *testing.T) {
	text := "a\r\n\r\nb"
	lines := ScanLines(text)
	assert.Equal(t, []Span{{0, 3}, {3, 5}, {5, 6}}, lines)
	assert.False(t, IsBlankLine(text, lines[1]), "\\r\\n is not a blank line")
}

func TestFirstBlankLine(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"GET / HTTP/1.1\nA: b\n\nbody", 2},
		{"GET / HTTP/1.1\nA: b", -1},
		{"\n\nGET", 1},
		{"GET\n\n\n", 1},
		{"GET / HTTP/1.1\nA", -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FirstBlankLine(tt.text, ScanLines(tt.text)), tt.text)
	}
}

func TestTokenizeRequestLine(t *testing.T) {
	tests := []struct {
		name                    string
		text                    string
		method, target, version Span
	}{
		{"full", "GET https://example.com HTTP/1.1\n", Span{0, 3}, Span{4, 23}, Span{24, 32}},
		{"no version", "GET https://example.com\nx-key: 123", Span{0, 3}, Span{4, 23}, Span{}},
		{"extra spaces", "GET  https://example.com   HTTP/1.1", Span{0, 3}, Span{5, 24}, Span{27, 35}},
		{"leading whitespace", "  \tGET /", Span{3, 6}, Span{7, 8}, Span{}},
		{"fourth token ignored", "GET / HTTP/1.1 extra\n", Span{0, 3}, Span{4, 5}, Span{6, 14}},
		{"crlf", "GET / HTTP/1.1\r\n", Span{0, 3}, Span{4, 5}, Span{6, 14}},
		{"multibyte space", "GET\u00a0/x HTTP/1.1", Span{0, 3}, Span{5, 7}, Span{8, 16}},
		{"blank", " \n", Span{}, Span{}, Span{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := ScanLines(tt.text)[0]
			m, u, v := TokenizeRequestLine(tt.text, line)
			assert.Equal(t, tt.method, m)
			assert.Equal(t, tt.target, u)
			assert.Equal(t, tt.version, v)

			m2, u2, v2 := TokenizeRequestLine(tt.text, line)
			assert.Equal(t, []Span{m, u, v}, []Span{m2, u2, v2}, "tokenizing twice must agree")
		})
	}
}

func TestSplitSections(t *testing.T) {
	text := "GET / HTTP/1.1\nA: 1\nB: 2\n\nbody"
	lines := ScanLines(text)
	headers, body := SplitSections(lines, FirstBlankLine(text, lines), len(text))
	require.Len(t, headers, 2)
	assert.Equal(t, "A: 1\n", headers[0].Slice(text))
	assert.Equal(t, "B: 2\n", headers[1].Slice(text))
	assert.Equal(t, "body", body.Slice(text))
}

func TestSplitSections_NoSeparator(t *testing.T) {
	text := "GET /\nA: 1\nB: 2"
	lines := ScanLines(text)
	headers, body := SplitSections(lines, FirstBlankLine(text, lines), len(text))
	assert.Len(t, headers, 2)
	assert.True(t, body.IsZero())
}

func TestSplitSections_EmptyBodyIsAbsent(t *testing.T) {
	text := "GET / HTTP/1.1\nA: 1\n\n"
	lines := ScanLines(text)
	headers, body := SplitSections(lines, FirstBlankLine(text, lines), len(text))
	assert.Len(t, headers, 1)
	assert.True(t, body.IsZero())
}

func TestExtract_Lenient(t *testing.T) {
	text := "GET https://example.com\nx-key: 123"
	l, err := Extract(text, Lenient)
	require.NoError(t, err)
	assert.Equal(t, Span{0, 3}, l.Method)
	assert.Equal(t, Span{4, 23}, l.Target)
	assert.True(t, l.Version.IsZero())
	assert.Equal(t, []Span{{24, 34}}, l.Headers)
	assert.True(t, l.Body.IsZero())
	assert.False(t, l.HasSeparator())
}

func TestExtract_LenientBlank(t *testing.T) {
	for _, text := range []string{"", "\n", "   \n\t \n"} {
		l, err := Extract(text, Lenient)
		require.NoError(t, err)
		assert.Equal(t, &Layout{}, l, "%q", text)
	}
}

func TestExtract_Strict(t *testing.T) {
	text := "POST https://example.com HTTP/1.1\nx-key: 123\n\n{\"id\": 100}"
	l, err := Extract(text, Strict)
	require.NoError(t, err)
	assert.Equal(t, Span{0, 4}, l.Method)
	assert.Equal(t, Span{5, 24}, l.Target)
	assert.Equal(t, Span{25, 33}, l.Version)
	assert.Equal(t, []Span{{34, 45}}, l.Headers)
	assert.Equal(t, Span{45, 46}, l.Separator)
	assert.Equal(t, `{"id": 100}`, l.Body.Slice(text))
}

func TestExtract_StrictErrors(t *testing.T) {
	_, err := Extract(" \n ", Strict)
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = Extract("GET https://example.com HTTP/1.1\nA: b", Strict)
	assert.ErrorIs(t, err, ErrMissingSeparator)

	_, err = Extract("GET https://example.com\n\n", Strict)
	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "version", missing.Field)

	_, err = Extract("GET\n\n", Strict)
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "target", missing.Field)
}

func TestVerify(t *testing.T) {
	text := "GET https://example.com HTTP/1.1\nA: b\n\nbody"
	tests := []struct {
		name   string
		layout Layout
		field  string
	}{
		{"out of bounds method", Layout{Method: Span{1, 200}}, "method"},
		{"inverted method", Layout{Method: Span{2, 1}}, "method"},
		{"empty non-zero span", Layout{Target: Span{3, 3}}, "target"},
		{"negative start", Layout{Version: Span{-1, 2}}, "version"},
		{"method overlaps target", Layout{Method: Span{0, 3}, Target: Span{2, 10}}, "target"},
		{"version before target", Layout{Target: Span{4, 23}, Version: Span{0, 3}}, "version"},
		{"header before request line", Layout{Version: Span{24, 32}, Headers: []Span{{0, 3}}}, "header[0]"},
		{"absent header", Layout{Headers: []Span{{33, 38}, {}}}, "header[1]"},
		{"headers out of order", Layout{Headers: []Span{{33, 38}, {33, 38}}}, "header[1]"},
		{"body before header", Layout{Headers: []Span{{33, 38}}, Body: Span{0, 3}}, "body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(text, &tt.layout)
			var spanErr *SpanError
			require.True(t, errors.As(err, &spanErr), "got %v", err)
			assert.Equal(t, tt.field, spanErr.Field)
			assert.Panics(t, func() { MustVerify(text, &tt.layout) })
		})
	}
}

func TestVerify_UTF8Boundary(t *testing.T) {
	text := "GET /café HTTP/1.1"
	err := Verify(text, &Layout{Target: Span{4, 9}})
	var spanErr *SpanError
	require.True(t, errors.As(err, &spanErr))
	assert.Contains(t, spanErr.Error(), "UTF-8")

	assert.NoError(t, Verify(text, &Layout{Target: Span{4, 10}}))
}

func TestVerify_Valid(t *testing.T) {
	text := "GET https://example.com HTTP/1.1\nA: b\n\nbody"
	l, err := Extract(text, Strict)
	require.NoError(t, err)
	assert.NoError(t, Verify(text, l))
	assert.NotPanics(t, func() { MustVerify(text, l) })
}

func TestExtract_MalformedUTF8(t *testing.T) {
	for _, text := range []string{"\x80GET /\n\n\x80", "GET \xc3 HTTP/1.1\n\xff: v\n\n\xbf", "\xe2\x82"} {
		assert.NotPanics(t, func() {
			_, err := Extract(text, Lenient)
			assert.NoError(t, err)
		}, "%q", text)
	}
}
