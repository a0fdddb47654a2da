package httpx

import (
	"encoding/json"
	"net/http"
)

// Error is an HTTP error response. It is sent as {"error": Description}.
type Error struct {
	StatusCode  int
	Description string
}

type errorRsp struct {
	Error string `json:"error"`
}

func (e *Error) Error() string {
	return e.Description
}

// Send writes the error to w.
func (e *Error) Send(w http.ResponseWriter) {
	b, _ := json.Marshal(errorRsp{Error: e.Description})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_, _ = w.Write(b)
}

func newError(code int, fallback string, msg []string) *Error {
	d := fallback
	if len(msg) > 0 && msg[0] != "" {
		d = msg[0]
	}
	return &Error{StatusCode: code, Description: d}
}

func ErrInvalidRequest(msg ...string) *Error {
	return newError(http.StatusBadRequest, "invalid request", msg)
}

func ErrUnableToReadRequest() *Error {
	return newError(http.StatusBadRequest, "unable to read request", nil)
}

func ErrNotFound(msg ...string) *Error {
	return newError(http.StatusNotFound, "not found", msg)
}

func ErrMethodNotAllowed() *Error {
	return newError(http.StatusMethodNotAllowed, "method not allowed", nil)
}

func ErrApplicationError(msg ...string) *Error {
	return newError(http.StatusInternalServerError, "internal server error", msg)
}
