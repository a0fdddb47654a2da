package server

import (
	"net/http"
	"testing"

	"github.com/mugiliam/brewcatalogsrv/pkg/api"
	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	// Create a New Request
	req, _ := http.NewRequest("GET", "/api/version", nil)

	// Execute Request
	response := executeTestRequest(t, nil, req)

	// Check the response code
	require.Equal(t, http.StatusOK, response.Code)

	// Check headers
	checkHeader(t, response.Result().Header)

	compareJson(t,
		&api.GetVersionRsp{
			ServerVersion: api.ServerVersion,
			ApiVersion:    api.ApiVersion_1_0,
		}, response.Body.String())
}
