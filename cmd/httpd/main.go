package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	httpd "github.com/frankli0324/go-httpd"
)

type config struct {
	port            int
	dir             string
	host            string
	maxRequest      int
	readTimeout     time.Duration
	headWait        time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration
	maxConns        int
	sequential      bool
	crlf            bool
	allowTraversal  bool
	logLevel        string
	logFormat       string
}

func parseFlags(args []string, output io.Writer) (*config, error) {
	c := &config{}
	fs := flag.NewFlagSet("httpd", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: httpd [flags] [port]\n\nserves the files under a directory over HTTP/1.1\n\n")
		fs.PrintDefaults()
	}

	fs.IntVar(&c.port, "port", 8000, "bind to this port")
	fs.IntVar(&c.port, "p", 8000, "alias for -port")
	fs.StringVar(&c.dir, "directory", "", "serve this directory (default: current directory)")
	fs.StringVar(&c.dir, "d", "", "alias for -directory")
	fs.StringVar(&c.host, "addr", "0.0.0.0", "bind to this host")
	fs.IntVar(&c.maxRequest, "max-request", 8<<10, "largest request head accepted, in bytes")
	fs.DurationVar(&c.readTimeout, "read-timeout", 10*time.Second, "deadline for reading a request, 0 disables")
	fs.DurationVar(&c.headWait, "head-wait", 500*time.Millisecond, "how long to wait for headers after the request line, 0 waits for the empty line")
	fs.DurationVar(&c.writeTimeout, "write-timeout", 10*time.Second, "deadline for writing a response, 0 disables")
	fs.DurationVar(&c.shutdownTimeout, "shutdown-timeout", 5*time.Second, "how long to wait for connections in flight on shutdown")
	fs.IntVar(&c.maxConns, "max-conns", 64, "connections served at once, 0 is unbounded")
	fs.BoolVar(&c.sequential, "sequential", false, "serve one connection at a time")
	fs.BoolVar(&c.crlf, "crlf", false, "terminate response lines with CRLF instead of LF")
	fs.BoolVar(&c.allowTraversal, "allow-traversal", false, "let \"..\" in request paths climb above the served directory")
	fs.StringVar(&c.logLevel, "log-level", "info", "one of trace, debug, info, warn, error")
	fs.StringVar(&c.logFormat, "log-format", "console", "console or json")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		port, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			return nil, fmt.Errorf("invalid port %q", fs.Arg(0))
		}
		c.port = port
	default:
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args()[1:])
	}
	if c.port < 0 || c.port > 65535 {
		return nil, fmt.Errorf("port %d out of range", c.port)
	}
	return c, nil
}

// root resolves the served directory against cwd and checks it exists.
func (c *config) root(cwd string) (string, error) {
	root := cwd
	if c.dir != "" {
		root = c.dir
		if !filepath.IsAbs(root) {
			root = filepath.Join(cwd, root)
		}
	}
	root = filepath.Clean(root)
	fi, err := os.Stat(root)
	if err != nil {
		return "", err
	}
	if !fi.IsDir() {
		return "", fmt.Errorf("%s is not a directory", root)
	}
	return root, nil
}

func (c *config) options(logger zerolog.Logger) []httpd.Option {
	framing := httpd.FramingLF
	if c.crlf {
		framing = httpd.FramingCRLF
	}
	return []httpd.Option{
		httpd.WithAddr(net.JoinHostPort(c.host, strconv.Itoa(c.port))),
		httpd.WithLogger(logger),
		httpd.WithMaxRequestSize(c.maxRequest),
		httpd.WithTimeouts(c.readTimeout, c.writeTimeout),
		httpd.WithHeadWait(c.headWait),
		httpd.WithShutdownTimeout(c.shutdownTimeout),
		httpd.WithMaxConns(c.maxConns),
		httpd.WithSequential(c.sequential),
		httpd.WithFraming(framing),
		httpd.WithConfinement(!c.allowTraversal),
	}
}

func newLogger(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	switch format {
	case "json":
	case "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", format)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

func main() {
	c, err := parseFlags(os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(os.Stderr, c.logLevel, c.logFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cwd, err := os.Getwd()
	if err != nil {
		logger.Fatal().Err(err).Msg("getwd")
	}
	root, err := c.root(cwd)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid directory")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := httpd.New(root, c.options(logger)...)
	if err := s.ListenAndServe(ctx); err != nil {
		logger.Fatal().Err(err).Str("addr", s.Addr).Msg("serve")
	}
	logger.Info().Msg("stopped")
}
