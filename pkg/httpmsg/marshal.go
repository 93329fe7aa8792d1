package httpmsg

import (
	"errors"
	"sync"
)

// bufPool pools []byte slices for Marshal.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 2048)
		return &b
	},
}

// Marshal returns the message text for req: request line, one "Key: Value"
// line per header, a blank line, then the body. Lines end with LF, so the
// output parses back under ParseStrict.
func Marshal(req *Request) ([]byte, error) {
	if req == nil {
		return nil, errors.New("httpmsg: Marshal(nil)")
	}

	bp := bufPool.Get().(*[]byte)
	buf, err := appendRequest((*bp)[:0], req)
	if err != nil {
		bufPool.Put(bp)
		return nil, err
	}

	result := make([]byte, len(buf))
	copy(result, buf)
	*bp = buf
	bufPool.Put(bp)
	return result, nil
}
