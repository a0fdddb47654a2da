package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mugiliam/brewcatalogsrv/internal/config"
	"github.com/mugiliam/brewcatalogsrv/internal/db"
	"github.com/mugiliam/brewcatalogsrv/internal/db/memdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg config.ServerConfig, store db.DB_) *BrewCatalogServer {
	if store == nil {
		store = memdb.NewMemCatalogDb()
	}
	s, err := CreateNewServer(cfg, store)
	require.NoError(t, err, "create new server")

	// Mount Handlers
	s.MountHandlers()
	return s
}

func executeTestRequest(t *testing.T, s *BrewCatalogServer, req *http.Request) *httptest.ResponseRecorder {
	if s == nil {
		s = newTestServer(t, config.Default().Server, nil)
	}
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	return rr
}

func checkHeader(t *testing.T, h http.Header) {
	expected := "application/json"
	got := h.Get("Content-Type")
	assert.Equal(t, expected, got, "Content-Type expected %s, got %s", expected, got)
	assert.NotEmpty(t, h.Get("X-Request-ID"), "No Request Id")
}

func compareJson(t *testing.T, expected any, actual string) {
	j, err := json.Marshal(expected)
	assert.NoError(t, err, "json marshal")
	assert.JSONEq(t, string(j), actual, "Expected: %v\n Got: %v\n", expected, actual)
}

func setRequestBody(t *testing.T, req *http.Request, jsonData []byte) {
	req.Body = io.NopCloser(bytes.NewReader(jsonData))
	req.ContentLength = int64(len(jsonData))
	req.Header.Set("Content-Type", "application/json")
}
