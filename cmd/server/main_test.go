package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"spg-be/internal/auth"
	"spg-be/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		JWTSecret:   "secret",
		SessionTTL:  time.Hour,
		ImageDir:    t.TempDir(),
		CORSOrigins: []string{"http://localhost:3000"},
	}
}

func TestNewApp(t *testing.T) {
	gin.SetMode(gin.TestMode)

	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	a, err := newApp(testConfig(t), database, auth.NopRevoker{}, nil)
	require.NoError(t, err)
	h := a.server.Handler(nil)

	t.Run("Health", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})

	t.Run("Swagger", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Solidarity Purchase Group API")
	})

	t.Run("Manager route without session", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewAppRequiresSecret(t *testing.T) {
	database, _, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	cfg := testConfig(t)
	cfg.JWTSecret = ""

	_, err = newApp(cfg, database, auth.NopRevoker{}, nil)
	assert.ErrorIs(t, err, auth.ErrSecretNotSet)
}
