package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redtestlab/portal/internal/pkg/circuitbreaker"
	"github.com/redtestlab/portal/internal/pkg/logger"
)

const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to HealthChecker
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// Pinger is satisfied by the Redis client
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewRedisHealthChecker checks the session store
func NewRedisHealthChecker(client Pinger) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Ping(ctx)
	})
}

// Connection is satisfied by the NATS producer
type Connection interface {
	IsConnected() bool
}

// NewNATSHealthChecker checks the event bus connection
func NewNATSHealthChecker(conn Connection) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		if !conn.IsConnected() {
			return errors.New("nats not connected")
		}
		return nil
	})
}

// BreakerReporter is satisfied by the lab API client
type BreakerReporter interface {
	BreakerStats() circuitbreaker.Stats
}

// NewUpstreamHealthChecker fails while the lab API circuit breaker is open
func NewUpstreamHealthChecker(client BreakerReporter) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		stats := client.BreakerStats()
		if stats.State == circuitbreaker.StateOpen.String() {
			return fmt.Errorf("circuit breaker %s is open after %d failures", stats.Name, stats.ConsecutiveFailures)
		}
		return nil
	})
}

type registration struct {
	name     string
	checker  HealthChecker
	critical bool
}

// HealthService manages health checks for multiple dependencies
type HealthService struct {
	checkers []registration
	logger   *logger.ZapLogger
}

// NewHealthService creates a new health service
func NewHealthService(log *logger.ZapLogger) *HealthService {
	return &HealthService{logger: log}
}

// AddChecker registers a dependency the portal cannot serve without
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.checkers = append(h.checkers, registration{name: name, checker: checker, critical: true})
}

// AddOptionalChecker registers a dependency whose failure only degrades the portal
func (h *HealthService) AddOptionalChecker(name string, checker HealthChecker) {
	h.checkers = append(h.checkers, registration{name: name, checker: checker})
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// CheckAllHealth performs health checks on all registered dependencies
func (h *HealthService) CheckAllHealth(ctx context.Context) HealthResponse {
	response := HealthResponse{
		Status:       StatusHealthy,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(h.checkers)),
	}

	for _, reg := range h.checkers {
		err := reg.checker.CheckHealth(ctx)
		if err == nil {
			response.Dependencies[reg.name] = DependencyInfo{Status: StatusHealthy}
			continue
		}

		h.logger.Warn("Health check failed",
			logger.String("dependency", reg.name),
			logger.Bool("critical", reg.critical),
			logger.Err(err))

		response.Dependencies[reg.name] = DependencyInfo{Status: StatusUnhealthy, Error: err.Error()}
		if reg.critical {
			response.Status = StatusUnhealthy
		} else if response.Status == StatusHealthy {
			response.Status = StatusDegraded
		}
	}

	return response
}
