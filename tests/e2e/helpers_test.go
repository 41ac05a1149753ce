//go:build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/storefront-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/storefront-backend/internal/app"
	"github.com/heartmarshall/storefront-backend/internal/auth"
	"github.com/heartmarshall/storefront-backend/internal/config"
)

const testJWTSecret = "e2e-secret-that-is-at-least-32-characters"

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	jwt    *auth.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      testJWTSecret,
			JWTIssuer:      "storefront-e2e",
			AccessTokenTTL: time.Hour,
		},
		Log:  config.LogConfig{Level: "debug", Format: "text"},
		CORS: config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,PUT,PATCH,DELETE", AllowedHeaders: "Authorization,Content-Type"},
		Roadmap: config.RoadmapConfig{
			DefaultTheme:       "midnight",
			DefaultCardOpacity: 100,
			DefaultExpanded:    true,
		},
		RateLimit: config.RateLimitConfig{SubmitPerMinute: 100, CleanupInterval: time.Minute},
		WebSocket: config.WebSocketConfig{
			PingInterval:   time.Second,
			WriteTimeout:   time.Second,
			MaxMessageSize: 1 << 16,
			SendBuffer:     32,
		},
	}
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	srv := app.NewServer(cfg, pool, logger)
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(func() {
		srv.Close()
		ts.Close()
	})

	return &testServer{
		URL:    ts.URL,
		Client: ts.Client(),
		jwt:    auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
	}
}

// token signs an access token for userID.
func (ts *testServer) token(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	tok, err := ts.jwt.GenerateAccessToken(userID)
	require.NoError(t, err)
	return tok
}

// do sends a request, authenticated as user unless it is uuid.Nil.
func (ts *testServer) do(t *testing.T, method, path string, user uuid.UUID, body string) *http.Response {
	t.Helper()

	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.URL+path, rdr)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != uuid.Nil {
		req.Header.Set("Authorization", "Bearer "+ts.token(t, user))
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}
