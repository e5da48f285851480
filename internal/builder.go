package internal

import (
	stderrors "errors"
	"strconv"

	"github.com/frankli0324/go-httpd/internal/errors"
	"github.com/frankli0324/go-httpd/internal/model"
)

const contentType = "text/html"

var (
	bodyBadRequest    = []byte("Bad request")
	bodyNotFound      = []byte("Not found")
	bodyInternalError = []byte("Internal server error")
)

// BuildResponse returns a response carrying body, with exactly the two
// headers every response has: Content-Type, then Content-Length.
func BuildResponse(status int, body []byte) *model.Response {
	return &model.Response{
		Proto:      model.ProtoHTTP11,
		StatusCode: status,
		Headers: []model.Header{
			{Key: "Content-Type", Val: contentType},
			{Key: "Content-Length", Val: strconv.Itoa(len(body))},
		},
		Body: body,
	}
}

// BuildError maps a failure of any stage to the response the client sees.
func BuildError(err error) *model.Response {
	switch status := StatusFor(err); status {
	case model.StatusBadRequest:
		return BuildResponse(status, bodyBadRequest)
	case model.StatusNotFound:
		return BuildResponse(status, bodyNotFound)
	default:
		return BuildResponse(model.StatusInternalServerError, bodyInternalError)
	}
}

// StatusFor returns the status code err is reported with:
// parse errors and oversized requests are 400, resolve errors are 404 and
// anything else, read failures included, is 500.
func StatusFor(err error) int {
	var (
		pe errors.ParseError
		re errors.ResolveError
	)
	switch {
	case err == nil:
		return model.StatusOK
	case stderrors.As(err, &pe), stderrors.Is(err, errors.ErrRequestTooLarge):
		return model.StatusBadRequest
	case stderrors.As(err, &re):
		return model.StatusNotFound
	default:
		return model.StatusInternalServerError
	}
}
