// Package httpd is a small HTTP/1.1 server for the files and directory
// listings under a root directory. It understands GET only and answers
// every request, malformed or not, before closing the connection.
package httpd

import (
	"github.com/frankli0324/go-httpd/internal"
	"github.com/frankli0324/go-httpd/internal/model"
	"github.com/frankli0324/go-httpd/internal/transport"
)

type Server = internal.Server
type Option = internal.Option
type UserAgentParser = internal.UserAgentParser

type Request = model.Request
type Response = model.Response
type Header = model.Header

type Framing = transport.Framing

const (
	FramingLF   = transport.FramingLF
	FramingCRLF = transport.FramingCRLF
)
