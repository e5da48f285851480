package transport

import (
	"bufio"
	"bytes"
	"io"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/frankli0324/go-httpd/internal/errors"
	"github.com/frankli0324/go-httpd/internal/model"
)

type http1 struct {
	framing    Framing
	maxRequest int
}

func (t *http1) Read(r io.Reader) ([]byte, error) {
	return ReadRequest(r, t.maxRequest)
}

func (t *http1) Parse(buf []byte) (*model.Request, error) {
	return ParseRequest(buf)
}

func (t *http1) Write(w io.Writer, resp *model.Response) (int, error) {
	return WriteResponse(w, resp, t.framing)
}

// ReadRequest reads from r until the request head is terminated by an empty
// line, r reaches EOF, or max bytes have been read. Filling max bytes without
// seeing the terminator is reported as [errors.ErrRequestTooLarge].
//
// A read error (deadlines included) after a complete request line has been
// received is not fatal: the bytes read so far are returned, since the request
// line is all the server needs.
func ReadRequest(r io.Reader, max int) ([]byte, error) {
	buf := make([]byte, 0, max)
	for len(buf) < max {
		n, err := r.Read(buf[len(buf):max])
		buf = buf[:len(buf)+n]
		if headEnd(buf) {
			return buf, nil
		}
		if err != nil {
			if bytes.IndexByte(buf, '\n') >= 0 || (err == io.EOF && len(buf) > 0) {
				return buf, nil
			}
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, errors.ErrReadFailure.Wrap(err)
		}
	}
	return buf, errors.ErrRequestTooLarge
}

// headEnd reports whether buf holds an empty line, either "\n\n" or
// "\r\n\r\n" (and the mixed forms, all of which contain "\n\r\n").
func headEnd(buf []byte) bool {
	return bytes.Contains(buf, []byte("\n\n")) || bytes.Contains(buf, []byte("\n\r\n"))
}

// ParseRequest parses the request line
//
//	GET /index.html HTTP/1.1\n
//
// tokenizing on the first two spaces and the following newline. The path is
// kept verbatim. Header lines after the request line are collected on a best
// effort basis and never fail the parse.
func ParseRequest(buf []byte) (*model.Request, error) {
	method, rest, ok := strings.Cut(string(buf), " ")
	if !ok || method == "" {
		return nil, errors.ErrMissingMethod
	}
	if model.Method(method) != model.MethodGet {
		return nil, errors.ErrUnsupportedMethod
	}

	path, rest, ok := strings.Cut(rest, " ")
	if !ok || path == "" {
		return nil, errors.ErrMissingPath
	}

	proto, rest, ok := strings.Cut(rest, "\n")
	proto = strings.TrimSuffix(proto, "\r")
	if !ok || proto == "" {
		return nil, errors.ErrMissingProtocol
	}

	return &model.Request{
		Method: model.MethodGet,
		Path:   path,
		Proto:  proto,
		Header: parseHeader(rest),
	}, nil
}

func parseHeader(s string) http.Header {
	tp := textproto.NewReader(bufio.NewReader(strings.NewReader(s)))
	// a malformed line ends the header block, what came before is kept
	mimeHeader, _ := tp.ReadMIMEHeader()
	if mimeHeader == nil {
		return http.Header{}
	}
	return http.Header(mimeHeader)
}

// Serialize renders resp into its wire form, e.g.:
//
//	HTTP/1.1 200 OK\n
//	Content-Type: text/html\n
//	Content-Length: 3\n
//	\n
//	hi\n
func Serialize(resp *model.Response, framing Framing) ([]byte, error) {
	status, ok := model.StatusText(resp.StatusCode)
	if !ok {
		return nil, errors.StatusError{Code: resp.StatusCode}
	}
	eol := framing.EOL()

	var b bytes.Buffer
	b.Grow(len(resp.Proto) + len(status) + 64*len(resp.Headers) + len(resp.Body))
	b.WriteString(resp.Proto)
	b.WriteByte(' ')
	b.WriteString(status)
	b.WriteString(eol)
	for _, h := range resp.Headers {
		b.WriteString(h.Key)
		b.WriteString(": ")
		b.WriteString(h.Val)
		b.WriteString(eol)
	}
	b.WriteString(eol)
	b.Write(resp.Body)
	return b.Bytes(), nil
}

// WriteResponse serializes resp and writes it to w, returning the number of
// bytes written. Nothing is written when resp can not be serialized.
func WriteResponse(w io.Writer, resp *model.Response, framing Framing) (int, error) {
	b, err := Serialize(resp, framing)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	if err == nil && n != len(b) {
		err = io.ErrShortWrite
	}
	return n, err
}

