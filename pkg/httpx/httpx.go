// Package httpx contains the JSON request/response plumbing shared by the
// HTTP handlers.
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Response is what a RequestHandler returns on success.
type Response struct {
	StatusCode int
	Location   string
	Response   any
}

// RequestHandler handles a request and returns either a response or an error.
type RequestHandler func(r *http.Request) (*Response, error)

// WrapHttpRsp adapts a RequestHandler to an http.HandlerFunc. Errors that are
// not *Error are reported as a generic 500.
func WrapHttpRsp(handler RequestHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rsp, err := handler(r)
		if err != nil {
			var httpErr *Error
			if !errors.As(err, &httpErr) {
				log.Ctx(r.Context()).Error().Err(err).Msg("unhandled error")
				httpErr = ErrApplicationError()
			}
			httpErr.Send(w)
			return
		}
		if rsp == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if rsp.Location != "" {
			w.Header().Set("Location", rsp.Location)
		}
		SendJsonRsp(r.Context(), w, rsp.StatusCode, rsp.Response)
	}
}

// SendJsonRsp writes v as a JSON body with the given status code.
func SendJsonRsp(ctx context.Context, w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	if v == nil {
		w.WriteHeader(statusCode)
		return
	}
	var (
		b   []byte
		err error
	)
	if raw, ok := v.(json.RawMessage); ok {
		b = raw
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("unable to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}
	w.WriteHeader(statusCode)
	if _, err := w.Write(b); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("unable to write response")
	}
}
