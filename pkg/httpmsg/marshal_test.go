package httpmsg

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal(t *testing.T) {
	req, err := NewPost("https://example.com/api", Headers{
		{"x-api-key", "abc123"},
		{"content-type", "application/json"},
	}, []byte(`{"id": 100}`))
	require.NoError(t, err)

	data, err := Marshal(req)
	require.NoError(t, err)
	assert.Equal(t, "POST https://example.com/api HTTP/1.1\n"+
		"x-api-key: abc123\n"+
		"content-type: application/json\n"+
		"\n"+
		`{"id": 100}`, string(data))
}

func TestMarshal_NoBodyKeepsSeparator(t *testing.T) {
	req, err := NewGet("https://example.com", nil)
	require.NoError(t, err)
	data, err := Marshal(req)
	require.NoError(t, err)
	assert.Equal(t, "GET https://example.com HTTP/1.1\n\n", string(data))
}

func TestMarshal_DefaultsVersion(t *testing.T) {
	uri, err := ParseURI("https://example.com")
	require.NoError(t, err)
	data, err := Marshal(&Request{Method: MethodHead, Target: uri})
	require.NoError(t, err)
	assert.Equal(t, "HEAD https://example.com HTTP/1.1\n\n", string(data))
}

func TestMarshal_Errors(t *testing.T) {
	uri, err := ParseURI("https://example.com")
	require.NoError(t, err)

	tests := []struct {
		name string
		req  *Request
	}{
		{"nil", nil},
		{"empty method", &Request{Target: uri}},
		{"method with space", &Request{Method: ParseMethod("BAD METHOD"), Target: uri}},
		{"no target", &Request{Method: MethodGet}},
		{"colon in key", &Request{Method: MethodGet, Target: uri, Headers: Headers{{"a:b", "c"}}}},
		{"newline in value", &Request{Method: MethodGet, Target: uri, Headers: Headers{{"a", "b\nc"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Marshal(tt.req)
			assert.Error(t, err)
			assert.Nil(t, data)
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	texts := []string{
		"GET https://example.com HTTP/1.1\n\n",
		"POST https://example.com HTTP/1.1\nx-key: 123\n\n{\"id\": 100}",
		"DELETE https://example.com/items/7 HTTP/2\na: 1\na: 2\nb: 3\n\nbody\nwith\nlines\n",
		"PROPFIND https://bücher.example HTTP/1.0\n\n",
	}
	for _, text := range texts {
		v, err := ParseStrict(text)
		require.NoError(t, err, text)
		req := v.Request()

		data, err := Marshal(req)
		require.NoError(t, err)

		again, err := ParseStrict(string(data))
		require.NoError(t, err, string(data))
		assert.Equal(t, req.Method, again.Request().Method)
		assert.Equal(t, req.Target.String(), again.Request().Target.String())
		assert.Equal(t, req.Version, again.Request().Version)
		assert.Equal(t, req.Headers, again.Request().Headers)
		assert.Equal(t, req.Body, again.Request().Body)
	}
}

func TestEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	a, err := NewGet("https://example.com/a", nil)
	require.NoError(t, err)
	b, err := NewGet("https://example.com/b", Headers{{"k", "v"}})
	require.NoError(t, err)

	require.NoError(t, enc.Encode(a))
	require.NoError(t, enc.Encode(b))
	assert.Equal(t, "GET https://example.com/a HTTP/1.1\n\nGET https://example.com/b HTTP/1.1\nk: v\n\n", buf.String())

	assert.Error(t, enc.Encode(&Request{}))
}

func TestEncoder_WriteError(t *testing.T) {
	req, err := NewGet("https://example.com", nil)
	require.NoError(t, err)
	want := errors.New("disk full")
	err = NewEncoder(&errWriter{err: want}).Encode(req)
	assert.ErrorIs(t, err, want)
}

type errWriter struct {
	err error
}

func (w *errWriter) Write([]byte) (int, error) {
	return 0, w.err
}
