package httpmsg

import "strings"

// Version is a normalized protocol version, always "HTTP/" prefixed.
type Version string

const (
	HTTP10 Version = "HTTP/1.0"
	HTTP11 Version = "HTTP/1.1"
	HTTP2  Version = "HTTP/2"

	// DefaultVersion is used when a request is built without one.
	DefaultVersion = HTTP11
)

const versionPrefix = "HTTP/"

var versions = map[string]Version{
	"HTTP/1.0": HTTP10, "HTTP/1.1": HTTP11,
	"HTTP/2": HTTP2, "HTTP/2.0": HTTP2,
}

// ParseVersion normalizes s: a bare "1.1" becomes "HTTP/1.1" and "HTTP/2.0"
// becomes "HTTP/2". Any other text is kept behind the prefix.
func ParseVersion(s string) Version {
	if !strings.HasPrefix(s, versionPrefix) {
		s = versionPrefix + s
	}
	if v, ok := versions[s]; ok {
		return v
	}
	return Version(s)
}

// IsKnown reports whether v is one of the standard versions.
func (v Version) IsKnown() bool {
	_, ok := versions[string(v)]
	return ok
}

func (v Version) String() string { return string(v) }
