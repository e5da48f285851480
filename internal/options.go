package internal

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/frankli0324/go-httpd/internal/transport"
)

// Option is a functional option applied to a Server at creation time
type Option func(*Server)

// WithAddr sets the address ListenAndServe binds to, ":8000" by default.
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.Addr = addr
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// WithMaxRequestSize bounds the bytes read for a single request head.
// Larger requests are answered with 400.
func WithMaxRequestSize(n int) Option {
	return func(s *Server) {
		s.MaxRequestSize = n
	}
}

// WithTimeouts sets the read and write deadlines of every connection.
// Zero disables the respective deadline.
func WithTimeouts(read, write time.Duration) Option {
	return func(s *Server) {
		s.ReadTimeout, s.WriteTimeout = read, write
	}
}

// WithHeadWait bounds how long the rest of a request head is waited for
// once its request line arrived. What was read by then is served. Zero
// waits for the empty line until the read deadline.
func WithHeadWait(d time.Duration) Option {
	return func(s *Server) {
		s.HeadWait = d
	}
}

// WithMaxConns bounds the number of connections served at once, zero
// means unbounded.
func WithMaxConns(n int) Option {
	return func(s *Server) {
		s.MaxConns = n
	}
}

// WithSequential serves connections one at a time on the accept loop.
func WithSequential(sequential bool) Option {
	return func(s *Server) {
		s.Sequential = sequential
	}
}

func WithFraming(f transport.Framing) Option {
	return func(s *Server) {
		s.Framing = f
	}
}

// WithConfinement controls whether paths leaving the root, by climbing with
// ".." or by lacking a leading "/", are rejected. It is on by default.
func WithConfinement(confine bool) Option {
	return func(s *Server) {
		s.Confine = confine
	}
}

// WithShutdownTimeout sets how long Serve waits for in-flight connections
// once its context is done, before closing them.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.ShutdownTimeout = d
	}
}

// WithUserAgentParser replaces how the access log names a client's
// User-Agent. The default uses the ua-parser regexes.
func WithUserAgentParser(fn UserAgentParser) Option {
	return func(s *Server) {
		s.uaParser = fn
	}
}
