package internal

import (
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/ua-parser/uap-go/uaparser"

	"github.com/frankli0324/go-httpd/internal/model"
)

// UserAgentParser returns a short name for a User-Agent header value.
type UserAgentParser func(ua string) string

var (
	uapOnce   sync.Once
	uapParser *uaparser.Parser
)

// UserAgentFamily names the client family of ua, e.g. "Firefox" or "curl".
// The regex set is compiled on first use.
func UserAgentFamily(ua string) string {
	if ua == "" {
		return ""
	}
	uapOnce.Do(func() {
		uapParser = uaparser.NewFromSaved()
	})
	return uapParser.ParseUserAgent(ua).Family
}

type remoteAddrer interface {
	RemoteAddr() net.Addr
}

func (s *Server) logAccess(x *exchange, d time.Duration) {
	var ev *zerolog.Event
	status := model.StatusInternalServerError
	if x.resp != nil {
		status = x.resp.StatusCode
	}
	switch {
	case x.werr != nil || status >= model.StatusInternalServerError:
		ev = s.logger.Error()
	case status >= model.StatusBadRequest:
		ev = s.logger.Warn()
	default:
		ev = s.logger.Info()
	}
	if !ev.Enabled() {
		return
	}

	if ra, ok := x.rw.(remoteAddrer); ok && ra.RemoteAddr() != nil {
		ev = ev.Str("remote", ra.RemoteAddr().String())
	}
	if x.req != nil {
		ev = ev.Str("method", string(x.req.Method)).
			Str("path", x.req.Path).
			Str("proto", x.req.Proto)
		if family := s.uaParser(x.req.Header.Get("User-Agent")); family != "" {
			ev = ev.Str("ua", family)
		}
	}
	if x.err != nil {
		ev = ev.AnErr("cause", x.err)
	}
	if x.werr != nil {
		ev = ev.Err(x.werr)
	}
	ev.Int("status", status).
		Int("bytes", x.written).
		Dur("duration", d).
		Msg("request")
}
