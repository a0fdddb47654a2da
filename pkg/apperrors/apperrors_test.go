package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorChain(t *testing.T) {
	root := New("root")
	notFound := root.Msg("not found").SetStatusCode(http.StatusNotFound)
	specific := notFound.Msg("beer not found")

	assert.ErrorIs(t, specific, notFound)
	assert.ErrorIs(t, specific, root)
	assert.False(t, errors.Is(notFound, specific))
	assert.Equal(t, http.StatusNotFound, specific.StatusCode())
	assert.Equal(t, "beer not found", specific.Error())
}

func TestErrWrapsCauses(t *testing.T) {
	root := New("db error")
	cause := fmt.Errorf("connection refused")
	err := root.Err(cause, nil)

	assert.ErrorIs(t, err, root)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "db error", err.Error())
	assert.Equal(t, "db error", err.ErrorAll())

	expanded := root.SetExpandError(true).Err(cause)
	assert.Equal(t, "db error: connection refused", expanded.ErrorAll())
}

func TestAs(t *testing.T) {
	root := New("root").SetStatusCode(http.StatusBadRequest)
	wrapped := fmt.Errorf("wrapped: %w", root.Msg("child"))

	ae, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, ae.StatusCode())

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}
