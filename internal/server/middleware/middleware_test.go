package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mugiliam/brewcatalogsrv/internal/db"
	"github.com/mugiliam/brewcatalogsrv/internal/db/memdb"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestRequestLogger(t *testing.T) {
	var sawLogger bool
	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawLogger = log.Ctx(r.Context()).GetLevel() != zerolog.Disabled
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/beers", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(RequestIdHeader))
	assert.True(t, sawLogger)

	req := httptest.NewRequest(http.MethodGet, "/api/beers", nil)
	req.Header.Set(RequestIdHeader, "abc-123")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "abc-123", rr.Header().Get(RequestIdHeader))
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.True(t, gjson.Get(rr.Body.String(), "error").Exists())
}

func TestLoadDB(t *testing.T) {
	store := memdb.NewMemCatalogDb()
	var got db.DB_
	h := LoadDB(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = db.DB(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Same(t, store, got)
}
