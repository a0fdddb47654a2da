package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func serve(h RequestHandler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	WrapHttpRsp(h).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	return rr
}

func TestWrapHttpRsp(t *testing.T) {
	rr := serve(func(r *http.Request) (*Response, error) {
		return &Response{
			StatusCode: http.StatusCreated,
			Location:   "/api/beer/1",
			Response:   map[string]string{"message": "ok"},
		}, nil
	})
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/api/beer/1", rr.Header().Get("Location"))
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message": "ok"}`, rr.Body.String())

	rr = serve(func(r *http.Request) (*Response, error) {
		return &Response{StatusCode: http.StatusOK, Response: json.RawMessage(`[1,2]`)}, nil
	})
	assert.Equal(t, "[1,2]", rr.Body.String())

	rr = serve(func(r *http.Request) (*Response, error) {
		return nil, nil
	})
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestWrapHttpRspErrors(t *testing.T) {
	rr := serve(func(r *http.Request) (*Response, error) {
		return nil, ErrNotFound("beer not found")
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error": "beer not found"}`, rr.Body.String())

	rr = serve(func(r *http.Request) (*Response, error) {
		return nil, errors.New("connection string with a password")
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error": "internal server error"}`, rr.Body.String())

	rr = serve(func(r *http.Request) (*Response, error) {
		return nil, ErrInvalidRequest()
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "invalid request"}`, rr.Body.String())
}
