package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performHealthRequest(t *testing.T, handler *Handler) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Handle(c))
	return rec
}

func Test_Handler_AllChecksHealthy(t *testing.T) {
	// Arrange
	handler := NewHandler()
	handler.RegisterChecker("store", NewSimpleChecker("store", func() error { return nil }))

	// Act
	rec := performHealthRequest(t, handler)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)

	var response Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, StatusHealthy, response.Status)
	assert.Equal(t, StatusHealthy, response.Checks["store"].Status)
}

func Test_Handler_UnhealthyCheckYields503(t *testing.T) {
	// Arrange
	handler := NewHandler()
	handler.RegisterChecker("store", NewSimpleChecker("store", func() error {
		return errors.New("connection refused")
	}))

	// Act
	rec := performHealthRequest(t, handler)

	// Assert
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var response Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, StatusUnhealthy, response.Status)
	assert.Equal(t, "connection refused", response.Checks["store"].Message)
}

func Test_Handler_NoCheckersIsHealthy(t *testing.T) {
	// Arrange
	handler := NewHandler()

	// Act
	rec := performHealthRequest(t, handler)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
}
