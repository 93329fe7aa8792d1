package httpmsg

import (
	"errors"
	"net"
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

var errRelativeURI = errors.New("not an absolute URI")

// hostProfile maps internationalized hosts for lookup without the STD3
// restrictions, so names such as "my_service" stay valid.
var hostProfile = idna.New(idna.MapForLookup(), idna.StrictDomainName(false))

// URI is a validated absolute request target.
type URI struct {
	u *url.URL
}

// ParseURI parses s as an absolute URI. The host, if any, is normalized to
// its lower-case ASCII (punycode) form. ASCII hosts are only lower-cased.
func ParseURI(s string) (*URI, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, &InvalidTargetError{Target: s, Err: err}
	}
	if u.Scheme == "" {
		return nil, &InvalidTargetError{Target: s, Err: errRelativeURI}
	}
	if u.Host != "" {
		host, err := normalizeHost(u)
		if err != nil {
			return nil, &InvalidTargetError{Target: s, Err: err}
		}
		u.Host = host
	}
	return &URI{u: u}, nil
}

func normalizeHost(u *url.URL) (string, error) {
	name := u.Hostname()
	if net.ParseIP(name) != nil {
		return u.Host, nil
	}
	ascii := strings.ToLower(name)
	if !isASCII(name) {
		var err error
		if ascii, err = hostProfile.ToASCII(name); err != nil {
			return "", err
		}
	}
	if port := u.Port(); port != "" {
		return net.JoinHostPort(ascii, port), nil
	}
	return ascii, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// URL returns a copy of the parsed URL.
func (u *URI) URL() *url.URL {
	c := *u.u
	return &c
}

// Scheme returns the URI scheme.
func (u *URI) Scheme() string { return u.u.Scheme }

// Host returns the normalized host, including any port.
func (u *URI) Host() string { return u.u.Host }

func (u *URI) String() string {
	if u == nil {
		return ""
	}
	return u.u.String()
}
