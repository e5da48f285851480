package internal

import (
	"context"
	stderrors "errors"
	"net"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/netutil"

	"github.com/frankli0324/go-httpd/internal/resolve"
	"github.com/frankli0324/go-httpd/internal/transport"
	"github.com/frankli0324/go-httpd/utils/netpool"
	"github.com/frankli0324/go-httpd/utils/nettools"
)

const (
	DefaultAddr            = ":8000"
	DefaultTimeout         = 10 * time.Second
	DefaultHeadWait        = 500 * time.Millisecond
	DefaultMaxConns        = 64
	DefaultShutdownTimeout = 5 * time.Second
)

// Server serves the files and directories under Root.
// Fields are read when Serve starts and must not change afterwards.
type Server struct {
	Root string
	Addr string

	MaxRequestSize            int
	ReadTimeout, WriteTimeout time.Duration
	HeadWait                  time.Duration
	MaxConns                  int
	Sequential                bool
	Framing                   transport.Framing
	Confine                   bool
	ShutdownTimeout           time.Duration

	logger    zerolog.Logger
	uaParser  UserAgentParser
	transport transport.Transport
	resolver  *resolve.Resolver
	conns     *netpool.Group
}

func New(root string, opts ...Option) *Server {
	s := &Server{
		Root:            root,
		Addr:            DefaultAddr,
		MaxRequestSize:  transport.DefaultMaxRequestSize,
		ReadTimeout:     DefaultTimeout,
		WriteTimeout:    DefaultTimeout,
		HeadWait:        DefaultHeadWait,
		MaxConns:        DefaultMaxConns,
		Framing:         transport.FramingLF,
		Confine:         true,
		ShutdownTimeout: DefaultShutdownTimeout,

		logger:   zerolog.Nop(),
		uaParser: UserAgentFamily,
		conns:    netpool.NewGroup(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.transport = transport.HTTP1(s.Framing, s.MaxRequestSize)
	s.resolver = &resolve.Resolver{Root: s.Root, Confine: s.Confine}
	return s
}

// ListenAndServe listens on s.Addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := nettools.Listen(ctx, "tcp", s.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then waits up to
// s.ShutdownTimeout for connections in flight before closing them. ln is
// closed when Serve returns. A nil error is returned on a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	if s.MaxConns > 0 {
		ln = netutil.LimitListener(ln, s.MaxConns)
	}
	defer ln.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			ln.Close()
		case <-stop:
		}
	}()

	s.logger.Info().
		Str("addr", ln.Addr().String()).
		Str("root", s.Root).
		Bool("sequential", s.Sequential).
		Stringer("framing", s.Framing).
		Msg("listening")

	var tempDelay time.Duration
	for {
		c, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.drain()
				return nil
			}
			if stderrors.Is(err, net.ErrClosed) {
				s.drain()
				return err
			}
			// back off on transient errors such as EMFILE, like net/http does
			if tempDelay == 0 {
				tempDelay = 5 * time.Millisecond
			} else if tempDelay *= 2; tempDelay > time.Second {
				tempDelay = time.Second
			}
			s.logger.Error().Err(err).Dur("retry_in", tempDelay).Msg("accept")
			time.Sleep(tempDelay)
			continue
		}
		tempDelay = 0

		conn := s.conns.Track(c)
		if s.Sequential {
			s.serve(conn)
			continue
		}
		go s.serve(conn)
	}
}

func (s *Server) serve(c netpool.Conn) {
	defer c.Close()
	s.ServeConn(c)
}

// drain waits for tracked connections, closing them once the shutdown
// timeout runs out.
func (s *Server) drain() {
	done := make(chan struct{})
	go func() {
		s.conns.Wait()
		close(done)
	}()
	select {
	case <-done:
		return
	case <-time.After(s.ShutdownTimeout):
	}
	s.logger.Warn().Int("conns", s.conns.Len()).Msg("shutdown timeout, closing connections")
	s.conns.CloseAll()
	<-done
}
