package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/redtestlab/portal/internal/pkg/circuitbreaker"
	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

type stubConn bool

func (s stubConn) IsConnected() bool { return bool(s) }

type stubBreaker string

func (s stubBreaker) BreakerStats() circuitbreaker.Stats {
	return circuitbreaker.Stats{Name: "lab-api", State: string(s), ConsecutiveFailures: 5}
}

func newServer(service *HealthService) *echo.Echo {
	e := echo.New()
	RegisterHealthEndpoints(e, "redlab-portal", "1.0.0", service)
	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestNewPingHandler(t *testing.T) {
	t.Setenv("VERSION", "2.3.4")
	t.Setenv("GIT_COMMIT", "abc123")

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/ping", nil), rec)

	require.NoError(t, NewPingHandler("redlab-portal")(c))

	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "redlab-portal", info.ServiceName)
	assert.Equal(t, "2.3.4", info.Version)
	assert.Equal(t, "abc123", info.GitCommit)
	assert.Equal(t, "unknown", info.BuildTime)
	assert.False(t, info.ServerTime.IsZero())

	hostname, _ := os.Hostname()
	if hostname != "" {
		assert.Equal(t, hostname, info.Hostname)
	}
}

func TestLivenessEndpoints(t *testing.T) {
	e := newServer(NewHealthService(logger.NewNopLogger()))

	for _, path := range []string{"/health", "/healthz"} {
		rec := get(e, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "OK", rec.Body.String(), path)
	}
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name       string
		redisErr   error
		nats       bool
		breaker    string
		wantStatus int
		wantHealth string
	}{
		{"all healthy", nil, true, "CLOSED", http.StatusOK, StatusHealthy},
		{"redis down", errors.New("connection refused"), true, "CLOSED", http.StatusServiceUnavailable, StatusUnhealthy},
		{"nats down only degrades", nil, false, "CLOSED", http.StatusOK, StatusDegraded},
		{"lab api breaker open", nil, true, "OPEN", http.StatusServiceUnavailable, StatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewHealthService(logger.NewNopLogger())
			service.AddChecker("redis", NewRedisHealthChecker(stubPinger{err: tt.redisErr}))
			service.AddChecker("lab_api", NewUpstreamHealthChecker(stubBreaker(tt.breaker)))
			service.AddOptionalChecker("nats", NewNATSHealthChecker(stubConn(tt.nats)))

			e := newServer(service)

			assert.Equal(t, tt.wantStatus, get(e, "/ready").Code)

			rec := get(e, "/health/detailed")
			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantHealth, resp.Status)
			assert.Equal(t, "1.0.0", resp.Version)
			assert.Len(t, resp.Dependencies, 3)
		})
	}
}
