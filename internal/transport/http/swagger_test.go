package http

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterSwaggerServesJSON(t *testing.T) {
	specPath := filepath.Join(t.TempDir(), "swagger.yaml")
	require.NoError(t, os.WriteFile(specPath, []byte("swagger: \"2.0\"\ninfo:\n  title: Travel Booking API\n"), 0o600))

	e := echo.New()
	RegisterSwagger(e, specPath)

	rec := serve(e, http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"swagger":"2.0","info":{"title":"Travel Booking API"}}`, rec.Body.String())
}

func TestRegisterSwaggerMissingFile(t *testing.T) {
	e := echo.New()
	RegisterSwagger(e, filepath.Join(t.TempDir(), "missing.yaml"))

	rec := serve(e, http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSwaggerDocumentParses(t *testing.T) {
	e := echo.New()
	RegisterSwagger(e, filepath.Join("..", "..", "..", "docs", "swagger.yaml"))

	rec := serve(e, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/api/bookings/{id}"`)
}
