package transport

import (
	"io"

	"github.com/frankli0324/go-httpd/internal/model"
)

// DefaultMaxRequestSize bounds a request when no limit is configured.
const DefaultMaxRequestSize = 8 << 10

type Framing int

const (
	FramingLF Framing = iota
	FramingCRLF
)

func (f Framing) EOL() string {
	if f == FramingCRLF {
		return "\r\n"
	}
	return "\n"
}

func (f Framing) String() string {
	if f == FramingCRLF {
		return "crlf"
	}
	return "lf"
}

type Transport interface {
	Read(r io.Reader) ([]byte, error)
	Parse(buf []byte) (*model.Request, error)
	Write(w io.Writer, resp *model.Response) (int, error)
}

// HTTP1 returns a Transport reading requests of at most maxRequest bytes
// and writing responses with the given line framing.
func HTTP1(framing Framing, maxRequest int) Transport {
	if maxRequest <= 0 {
		maxRequest = DefaultMaxRequestSize
	}
	return &http1{framing: framing, maxRequest: maxRequest}
}
