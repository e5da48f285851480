package model

const (
	StatusOK                  = 200
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusInternalServerError = 500
)

var statusText = map[int]string{
	StatusOK:                  "200 OK",
	StatusBadRequest:          "400 BAD_REQUEST",
	StatusNotFound:            "404 NOT_FOUND",
	StatusInternalServerError: "500 INTERNAL_SERVER_ERROR",
}

// StatusText returns the status-line text for code, e.g. "404 NOT_FOUND".
// ok is false for any code outside of the four the server produces.
func StatusText(code int) (text string, ok bool) {
	text, ok = statusText[code]
	return
}
