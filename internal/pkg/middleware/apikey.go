package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/limpia-app/dispatch/internal/pkg/models"
	"github.com/limpia-app/dispatch/internal/utils"
)

const APIKeyHeader = "X-API-Key"

// APIKeyMiddleware validates API keys for operator and service callers
type APIKeyMiddleware struct {
	keys map[string]string
}

// NewAPIKeyMiddleware creates middleware from the configured key set
func NewAPIKeyMiddleware(cfg *models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		keys: map[string]string{
			"dispatch-service": cfg.DispatchService,
			"admin-portal":     cfg.AdminPortal,
		},
	}
}

// Validate checks the request API key against the allowed caller names
func (m *APIKeyMiddleware) Validate(allowedCallers ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			for _, caller := range allowedCallers {
				expected := m.keys[caller]
				if expected != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) == 1 {
					return next(c)
				}
			}

			return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
		}
	}
}
