package internal_test

import (
	stderrors "errors"
	"strconv"
	"testing"

	"github.com/frankli0324/go-httpd/internal"
	"github.com/frankli0324/go-httpd/internal/errors"
	"github.com/frankli0324/go-httpd/internal/model"
)

func TestStatusFor(t *testing.T) {
	cases := map[string]struct {
		err  error
		want int
	}{
		"Nil":               {nil, 200},
		"MissingMethod":     {errors.ErrMissingMethod, 400},
		"UnsupportedMethod": {errors.ErrUnsupportedMethod, 400},
		"MissingPath":       {errors.ErrMissingPath, 400},
		"MissingProtocol":   {errors.ErrMissingProtocol, 400},
		"TooLarge":          {errors.ErrRequestTooLarge, 400},
		"NotFound":          {errors.ErrNotFound.Wrap(stderrors.New("stat")), 404},
		"IOFailure":         {errors.ErrIOFailure, 404},
		"UnsupportedType":   {errors.ErrUnsupportedType, 404},
		"OutsideRoot":       {errors.ErrOutsideRoot, 404},
		"ReadFailure":       {errors.ErrReadFailure, 500},
		"UnknownStatus":     {errors.StatusError{Code: 302}, 500},
		"Other":             {stderrors.New("boom"), 500},
	}
	for name, cas := range cases {
		tCase := cas
		t.Run(name, func(t *testing.T) {
			if got := internal.StatusFor(tCase.err); got != tCase.want {
				t.Errorf("got %d, want %d", got, tCase.want)
			}
		})
	}
}

func TestBuildResponse(t *testing.T) {
	resp := internal.BuildResponse(model.StatusOK, []byte("héllo"))
	if resp.Proto != "HTTP/1.1" || resp.StatusCode != 200 {
		t.Errorf("got %s %d", resp.Proto, resp.StatusCode)
	}
	if len(resp.Headers) != 2 {
		t.Fatalf("got %d headers, want 2", len(resp.Headers))
	}
	ExpectEqual(t, "Content-Type", resp.Headers[0].Key)
	ExpectEqual(t, "text/html", resp.Headers[0].Val)
	ExpectEqual(t, "Content-Length", resp.Headers[1].Key)
	ExpectEqual(t, "6", resp.Headers[1].Val) // bytes, not runes
}

func TestBuildError(t *testing.T) {
	for err, want := range map[error]string{
		errors.ErrMissingPath: "Bad request",
		errors.ErrNotFound:    "Not found",
		errors.ErrReadFailure: "Internal server error",
	} {
		resp := internal.BuildError(err)
		ExpectEqual(t, want, string(resp.Body))
		if cl, _ := resp.Get("Content-Length"); cl != strconv.Itoa(len(want)) {
			t.Errorf("%v: Content-Length %s for %q", err, cl, want)
		}
	}
}
