//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	invrepo "github.com/avoronin/stockpile-backend/internal/adapter/postgres/inventory"
	"github.com/avoronin/stockpile-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/avoronin/stockpile-backend/internal/adapter/postgres/user"
	authpkg "github.com/avoronin/stockpile-backend/internal/auth"
	"github.com/avoronin/stockpile-backend/internal/config"
	authsvc "github.com/avoronin/stockpile-backend/internal/service/auth"
	invsvc "github.com/avoronin/stockpile-backend/internal/service/inventory"
	"github.com/avoronin/stockpile-backend/internal/transport/middleware"
	"github.com/avoronin/stockpile-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	items := invrepo.New(pool)
	users := userrepo.New(pool)

	tokens := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)
	hasher := authpkg.NewPasswordHasher(4) // low bcrypt cost keeps tests fast

	authService := authsvc.NewService(logger, users, tokens, hasher)
	inventoryService := invsvc.NewService(logger, items)

	router := rest.NewRouter(
		rest.NewAuthHandler(authService, logger),
		rest.NewInventoryHandler(inventoryService, logger),
		rest.NewHealthHandler(pool, "test-version"),
	)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// apiRequest sends a JSON request and returns status + decoded body.
func (ts *testServer) apiRequest(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "marshal request body")
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err, "create request")

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err, "do request")
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		// Some error paths (middleware 401s) write plain text.
		return resp.StatusCode, nil
	}
	return resp.StatusCode, result
}

// registerTestUser registers a fresh user through the API and returns
// a valid token for it. Emails are unique per call.
func registerTestUser(t *testing.T, ts *testServer) string {
	t.Helper()

	status, result := ts.apiRequest(t, http.MethodPost, "/api/auth/register", map[string]any{
		"name":     "Test User",
		"email":    fmt.Sprintf("test-%s@example.com", uuid.New().String()[:8]),
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, status, "register test user: %v", result)

	data, ok := result["data"].(map[string]any)
	require.True(t, ok, "expected data in register response")

	token, ok := data["token"].(string)
	require.True(t, ok, "expected token string")
	require.NotEmpty(t, token)

	return token
}

// apiData extracts the "data" map from an envelope response.
func apiData(t *testing.T, result map[string]any) map[string]any {
	t.Helper()
	data, ok := result["data"].(map[string]any)
	require.True(t, ok, "expected data object in response: %v", result)
	return data
}

// apiItems extracts the "data" array from an envelope response.
func apiItems(t *testing.T, result map[string]any) []any {
	t.Helper()
	items, ok := result["data"].([]any)
	require.True(t, ok, "expected data array in response: %v", result)
	return items
}

// uniqueSKU generates a valid, collision-free SKU for explicit-SKU tests.
func uniqueSKU() string {
	return "TST-" + strings.ToUpper(uuid.New().String()[:8])
}
