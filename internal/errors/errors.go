// package errors holds the error kinds produced while serving a single
// connection. Kinds are compared by message, so errors.Is matches any
// wrapped instance of a kind regardless of the underlying cause.
package errors

import (
	"strconv"
)

// ParseError is a malformed or unsupported request line.
type ParseError struct {
	msg string
	error
}

func (e ParseError) Error() string {
	return format("parse", e.msg, e.error)
}

func (e ParseError) Wrap(err error) ParseError {
	if err == nil {
		return e
	}
	return ParseError{e.msg, err}
}

func (e ParseError) Unwrap() error {
	return e.error
}

func (e ParseError) Is(err error) bool {
	if err, ok := err.(ParseError); ok {
		return e.msg == err.msg
	}
	return false
}

// ResolveError is a request path that could not be turned into content.
type ResolveError struct {
	msg string
	error
}

func (e ResolveError) Error() string {
	return format("resolve", e.msg, e.error)
}

func (e ResolveError) Wrap(err error) ResolveError {
	if err == nil {
		return e
	}
	return ResolveError{e.msg, err}
}

func (e ResolveError) Unwrap() error {
	return e.error
}

func (e ResolveError) Is(err error) bool {
	if err, ok := err.(ResolveError); ok {
		return e.msg == err.msg
	}
	return false
}

// TransportError is a failure reading the request off the connection.
type TransportError struct {
	msg string
	error
}

func (e TransportError) Error() string {
	return format("transport", e.msg, e.error)
}

func (e TransportError) Wrap(err error) TransportError {
	if err == nil {
		return e
	}
	return TransportError{e.msg, err}
}

func (e TransportError) Unwrap() error {
	return e.error
}

func (e TransportError) Is(err error) bool {
	if err, ok := err.(TransportError); ok {
		return e.msg == err.msg
	}
	return false
}

// StatusError reports a response whose status code has no status text.
type StatusError struct {
	Code int
}

func (e StatusError) Error() string {
	return "serialize: unknown status code " + strconv.Itoa(e.Code)
}

func (e StatusError) Is(err error) bool {
	_, ok := err.(StatusError)
	return ok
}

func format(class, msg string, err error) string {
	msg = class + ": " + msg
	if err != nil {
		msg += ", error: " + err.Error()
	}
	return msg
}

var (
	ErrMissingMethod     = ParseError{msg: "expected HTTP method"}
	ErrUnsupportedMethod = ParseError{msg: "unsupported HTTP method"}
	ErrMissingPath       = ParseError{msg: "expected HTTP path"}
	ErrMissingProtocol   = ParseError{msg: "expected HTTP protocol"}

	ErrNotFound        = ResolveError{msg: "no such file or directory"}
	ErrIOFailure       = ResolveError{msg: "read failed"}
	ErrUnsupportedType = ResolveError{msg: "unsupported file type"}
	ErrOutsideRoot     = ResolveError{msg: "path escapes root"}

	ErrReadFailure     = TransportError{msg: "read request failed"}
	ErrRequestTooLarge = TransportError{msg: "request too large"}

	ErrUnknownStatus = StatusError{}
)
