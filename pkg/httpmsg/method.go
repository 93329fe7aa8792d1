package httpmsg

// MethodKind is the closed set of request methods with a fallback.
type MethodKind uint8

const (
	MethodKindOther MethodKind = iota
	MethodKindGet
	MethodKindPost
	MethodKindPut
	MethodKindPatch
	MethodKindDelete
	MethodKindHead
	MethodKindOptions
)

// Method is a request method. Methods outside the closed set keep their
// literal text in Other.
type Method struct {
	Kind  MethodKind
	Other string
}

var (
	MethodGet     = Method{Kind: MethodKindGet}
	MethodPost    = Method{Kind: MethodKindPost}
	MethodPut     = Method{Kind: MethodKindPut}
	MethodPatch   = Method{Kind: MethodKindPatch}
	MethodDelete  = Method{Kind: MethodKindDelete}
	MethodHead    = Method{Kind: MethodKindHead}
	MethodOptions = Method{Kind: MethodKindOptions}
)

var methodNames = [...]string{
	MethodKindGet:     "GET",
	MethodKindPost:    "POST",
	MethodKindPut:     "PUT",
	MethodKindPatch:   "PATCH",
	MethodKindDelete:  "DELETE",
	MethodKindHead:    "HEAD",
	MethodKindOptions: "OPTIONS",
}

// methods maps known names to their kind. Matching is case-sensitive.
var methods = map[string]MethodKind{
	"GET":     MethodKindGet,
	"POST":    MethodKindPost,
	"PUT":     MethodKindPut,
	"PATCH":   MethodKindPatch,
	"DELETE":  MethodKindDelete,
	"HEAD":    MethodKindHead,
	"OPTIONS": MethodKindOptions,
}

// ParseMethod maps s onto the closed set, falling back to Other.
func ParseMethod(s string) Method {
	if k, ok := methods[s]; ok {
		return Method{Kind: k}
	}
	return Method{Kind: MethodKindOther, Other: s}
}

// IsOther reports whether m is outside the closed set.
func (m Method) IsOther() bool { return m.Kind == MethodKindOther }

func (m Method) String() string {
	if m.Kind == MethodKindOther {
		return m.Other
	}
	return methodNames[m.Kind]
}
