package errx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorUnwraps(t *testing.T) {
	base := errors.New("boom")
	wrapped := fmt.Errorf("checkout: %w", Conflict(base, "Email sudah terdaftar"))

	var e *Error
	require.ErrorAs(t, wrapped, &e)
	assert.Equal(t, http.StatusConflict, e.Status)
	assert.Equal(t, "Email sudah terdaftar", e.Message)
	assert.ErrorIs(t, wrapped, base)
	assert.Equal(t, "Email sudah terdaftar", New(nil, http.StatusConflict, "Email sudah terdaftar").Error())
}

func TestWrapStorage(t *testing.T) {
	assert.NoError(t, WrapStorage(nil))

	err := WrapStorage(errors.New("connection refused"))
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, http.StatusBadGateway, e.Status)
	assert.Equal(t, StorageErrorMessage, e.Message)
	assert.Equal(t, "storage operation failed: connection refused", err.Error())
}
