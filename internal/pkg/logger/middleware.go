package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
)

// ZapEchoMiddleware logs every HTTP request with latency and status,
// attaching New Relic attributes when a transaction is present.
func ZapEchoMiddleware(zl *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())

			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			if raw != "" {
				path = path + "?" + raw
			}
			requestID := c.Response().Header().Get("X-Request-ID")

			if txn != nil {
				txn.AddAttribute("request_id", requestID)
				txn.AddAttribute("response_time_ms", latency.Milliseconds())
				if err != nil {
					txn.NoticeError(err)
				}
			}

			entry := zl.With(
				zap.Int("status", statusCode),
				zap.String("latency", latency.String()),
				zap.Int64("latency_ms", latency.Milliseconds()),
				zap.String("client_ip", c.RealIP()),
				zap.String("method", c.Request().Method),
				zap.String("path", path),
				zap.String("request_id", requestID),
				zap.String("service", zl.serviceName),
			)

			switch {
			case statusCode >= 500:
				if err != nil {
					entry.Error("Server error", zap.Error(err))
				} else {
					entry.Error("Server error")
				}
			case statusCode >= 400:
				entry.Warn("Client error")
			default:
				entry.Info("Request processed")
			}

			return err
		}
	}
}
