package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traveloka/gsuite-go/internal/google"
)

func testServerContext(t *testing.T) *ServerContext {
	t.Helper()

	cfg := &google.Config{
		Mode:            google.AuthModeServerSide,
		CredentialsFile: "/nonexistent/credentials.json",
		LocalServerPort: 8089,
	}

	sc, err := NewServerContext(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sc.Shutdown()
	})
	return sc
}

func TestLivenessHandler(t *testing.T) {
	hc := NewHealthChecker(testServerContext(t))

	rec := httptest.NewRecorder()
	hc.LivenessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestReadinessHandler(t *testing.T) {
	hc := NewHealthChecker(testServerContext(t))

	rec := httptest.NewRecorder()
	hc.ReadinessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "ok", resp.Checks["ready"])
	assert.Equal(t, "ok", resp.Checks["shutdown"])
}

func TestReadinessHandler_NotReady(t *testing.T) {
	hc := NewHealthChecker(testServerContext(t))
	hc.SetReady(false)

	rec := httptest.NewRecorder()
	hc.ReadinessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not ready", resp.Status)
	assert.Equal(t, "not ready", resp.Checks["ready"])
}

func TestReadinessHandler_AfterShutdown(t *testing.T) {
	sc := testServerContext(t)
	hc := NewHealthChecker(sc)
	require.NoError(t, sc.Shutdown())

	rec := httptest.NewRecorder()
	hc.ReadinessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "shutting down", resp.Checks["shutdown"])
}

func TestDetailedHealthHandler(t *testing.T) {
	hc := NewHealthChecker(testServerContext(t))

	rec := httptest.NewRecorder()
	hc.DetailedHealthHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz/detailed", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp DetailedHealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.Uptime)
}

func TestRegisterHealthEndpoints(t *testing.T) {
	hc := NewHealthChecker(testServerContext(t))

	mux := http.NewServeMux()
	hc.RegisterHealthEndpoints(mux)

	for _, path := range []string{"/healthz", "/readyz", "/healthz/detailed"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, "endpoint %s", path)
	}
}
