package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/limpia-app/dispatch/internal/pkg/database"
	"github.com/limpia-app/dispatch/internal/pkg/logger"
	natspkg "github.com/limpia-app/dispatch/internal/pkg/nats"
)

// Checker probes one dependency of the service
type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to the Checker interface
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Check(ctx context.Context) error { return f(ctx) }

// NewPostgresChecker probes the Postgres connection
func NewPostgresChecker(client *database.PostgresClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.GetDB().PingContext(ctx)
	})
}

// NewRedisChecker probes the Redis connection
func NewRedisChecker(client *database.RedisClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.GetClient().Ping(ctx).Err()
	})
}

// NewNATSChecker probes the NATS connection
func NewNATSChecker(client *natspkg.Client) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if !client.IsConnected() {
			return ErrNotConnected
		}
		return nil
	})
}

// ErrNotConnected is returned when a dependency has no live connection
var ErrNotConnected = errNotConnected{}

type errNotConnected struct{}

func (errNotConnected) Error() string { return "not connected" }

// Service aggregates dependency checkers
type Service struct {
	mu       sync.RWMutex
	logger   *logger.ZapLogger
	checkers map[string]Checker
}

// NewService creates a new health service
func NewService(zapLogger *logger.ZapLogger) *Service {
	return &Service{
		logger:   zapLogger,
		checkers: make(map[string]Checker),
	}
}

// AddChecker registers a named dependency checker
func (s *Service) AddChecker(name string, checker Checker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers[name] = checker
}

// Status runs all checkers and reports per-dependency health
func (s *Service) Status(ctx context.Context) (bool, map[string]string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	healthy := true
	results := make(map[string]string, len(s.checkers))

	for name, checker := range s.checkers {
		checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := checker.Check(checkCtx)
		cancel()

		if err != nil {
			healthy = false
			results[name] = err.Error()
			s.logger.Warn("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
		} else {
			results[name] = "ok"
		}
	}

	return healthy, results
}

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// RegisterEndpoints registers the health check endpoints
func RegisterEndpoints(e *echo.Echo, serviceName, version string, svc *Service) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, BuildInfo{
			Version:     version,
			ServiceName: serviceName,
			GoVersion:   runtime.Version(),
			Hostname:    hostname,
			ServerTime:  time.Now(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		healthy, results := svc.Status(c.Request().Context())
		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, map[string]interface{}{
			"healthy":      healthy,
			"dependencies": results,
		})
	})

	e.GET("/ready", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
