package internal

import (
	"bytes"
	stderrors "errors"
	"io"
	"time"

	"github.com/frankli0324/go-httpd/internal/errors"
	"github.com/frankli0324/go-httpd/internal/model"
)

type deadliner interface {
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
}

// exchange is one request/response cycle, owned by a single connection.
type exchange struct {
	s  *Server
	rw io.ReadWriter

	raw     []byte
	req     *model.Request
	err     error // first failure, decides the error response
	resp    *model.Response
	written int
	werr    error
}

type stateFunc func(*exchange) stateFunc

// ServeConn runs one request/response cycle on rw: read, parse, resolve,
// build and write. Every failure before the write still produces a
// response. rw is not closed.
func (s *Server) ServeConn(rw io.ReadWriter) {
	start := time.Now()
	x := &exchange{s: s, rw: rw}
	for state := readRequest; state != nil; {
		state = state(x)
	}
	s.logAccess(x, time.Since(start))
}

func readRequest(x *exchange) stateFunc {
	var r io.Reader = x.rw
	if d, ok := x.rw.(deadliner); ok {
		var deadline time.Time
		if x.s.ReadTimeout > 0 {
			deadline = time.Now().Add(x.s.ReadTimeout)
			d.SetReadDeadline(deadline)
		}
		// The read only ends early on an empty line, so a client sending
		// the request line alone would wait out ReadTimeout.
		if x.s.HeadWait > 0 {
			r = &lineReader{Reader: x.rw, d: d, wait: x.s.HeadWait, deadline: deadline}
		}
	}
	raw, err := x.s.transport.Read(r)
	if err != nil {
		x.err = err
		return respondError
	}
	x.raw = raw
	return parseRequest
}

// lineReader moves the read deadline to wait from now once a newline has
// been read, unless the current deadline is sooner.
type lineReader struct {
	io.Reader
	d        deadliner
	wait     time.Duration
	deadline time.Time
	seen     bool
}

func (l *lineReader) Read(p []byte) (int, error) {
	n, err := l.Reader.Read(p)
	if !l.seen && bytes.IndexByte(p[:n], '\n') >= 0 {
		l.seen = true
		if t := time.Now().Add(l.wait); l.deadline.IsZero() || t.Before(l.deadline) {
			l.d.SetReadDeadline(t)
		}
	}
	return n, err
}

func parseRequest(x *exchange) stateFunc {
	req, err := x.s.transport.Parse(x.raw)
	if err != nil {
		x.err = err
		return respondError
	}
	x.req = req
	return resolvePath
}

func resolvePath(x *exchange) stateFunc {
	content, err := x.s.resolver.Resolve(x.req.Path)
	if err != nil {
		x.err = err
		return respondError
	}
	x.resp = BuildResponse(model.StatusOK, content)
	return writeResponse
}

func respondError(x *exchange) stateFunc {
	x.resp = BuildError(x.err)
	return writeResponse
}

func writeResponse(x *exchange) stateFunc {
	if d, ok := x.rw.(deadliner); ok && x.s.WriteTimeout > 0 {
		d.SetWriteDeadline(time.Now().Add(x.s.WriteTimeout))
	}
	n, err := x.s.transport.Write(x.rw, x.resp)
	x.written += n
	if stderrors.Is(err, errors.ErrUnknownStatus) {
		x.s.logger.Error().Err(err).Int("status", x.resp.StatusCode).Msg("response dropped")
		x.err = err
		return respondError
	}
	x.werr = err
	return nil
}
