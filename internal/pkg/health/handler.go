package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prospecta/backend/internal/pkg/database"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	Name() string
	CheckHealth(ctx context.Context) error
}

// PostgresHealthChecker checks PostgreSQL connection health
type PostgresHealthChecker struct {
	client *database.PostgresClient
}

// NewPostgresHealthChecker creates a new PostgreSQL health checker
func NewPostgresHealthChecker(client *database.PostgresClient) *PostgresHealthChecker {
	return &PostgresHealthChecker{client: client}
}

func (p *PostgresHealthChecker) Name() string { return "postgres" }

// CheckHealth checks if PostgreSQL is healthy
func (p *PostgresHealthChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.GetDB().PingContext(ctx)
}

// RedisHealthChecker checks Redis connection health
type RedisHealthChecker struct {
	client *database.RedisClient
}

// NewRedisHealthChecker creates a new Redis health checker
func NewRedisHealthChecker(client *database.RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

func (r *RedisHealthChecker) Name() string { return "redis" }

// CheckHealth checks if Redis is healthy
func (r *RedisHealthChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Client.Ping(ctx).Err()
}

type healthStatus struct {
	Status       string            `json:"status"`
	Service      string            `json:"service"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// RegisterHealthEndpoints registers the health endpoints on the router.
// /health reports dependency status; /health/live only proves the process
// is serving.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, checkers ...HealthChecker) {
	e.GET("/health/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, healthStatus{Status: "alive", Service: serviceName})
	})

	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		status := healthStatus{
			Status:       "healthy",
			Service:      serviceName,
			Dependencies: make(map[string]string),
		}
		code := http.StatusOK

		for _, checker := range checkers {
			if err := checker.CheckHealth(ctx); err != nil {
				status.Status = "unhealthy"
				status.Dependencies[checker.Name()] = err.Error()
				code = http.StatusServiceUnavailable
			} else {
				status.Dependencies[checker.Name()] = "ok"
			}
		}

		return c.JSON(code, status)
	})
}
