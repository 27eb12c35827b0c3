package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sakthirv/portfolio-backend/database"
	"github.com/sakthirv/portfolio-backend/models"
)

const testJWTSecret = "test-secret"

// newTestRouter wires the full router over an in-memory database so handler
// tests exercise routing, auth and persistence together.
func newTestRouter(t *testing.T, extraConfig map[string]string) (*chi.Mux, database.Database) {
	t.Helper()

	dsn := fmt.Sprintf("file:api_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Project{}, &models.User{}))

	cfg := map[string]string{
		"JWT_SECRET": testJWTSecret,
	}
	for key, value := range extraConfig {
		cfg[key] = value
	}

	currentDB := database.New(db)
	router := newRouter(currentDB, withConfig(cfg), withStartupTime(time.Now()))
	return router, currentDB
}

// bearerToken issues a token the auth middleware accepts.
func bearerToken(t *testing.T) string {
	t.Helper()

	claims := jwt.MapClaims{
		"userId": uuid.NewString(),
		"exp":    time.Now().Add(time.Hour).Unix(),
		"iat":    time.Now().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func newJSONRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func authedRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()

	req := newJSONRequest(t, method, target, body)
	req.Header.Set("Authorization", bearerToken(t))
	return req
}
