package model

import (
	"net/http"
)

type Method string

// MethodGet is the only method the server understands.
const MethodGet Method = "GET"

// ProtoHTTP11 is the protocol tag every response carries.
const ProtoHTTP11 = "HTTP/1.1"

type Request struct {
	Method Method
	Path   string // verbatim, not percent-decoded, query included
	Proto  string // not validated
	Header http.Header
}

type Header struct {
	Key string
	Val string
}

type Response struct {
	Proto      string
	StatusCode int
	Headers    []Header // wire order, duplicates kept
	Body       []byte
}

// Get returns the value of the first header matching key exactly.
func (r *Response) Get(key string) (string, bool) {
	for _, h := range r.Headers {
		if h.Key == key {
			return h.Val, true
		}
	}
	return "", false
}
