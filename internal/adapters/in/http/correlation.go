package http

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CorrelationIDHeader is the header carrying the request correlation ID.
// Inbound values are propagated unchanged; absent ones are generated.
const CorrelationIDHeader = "X-Correlation-Id"

type correlationIDKey struct{}

// CorrelationIDFromContext returns the correlation ID stored by the
// middleware, or an empty string when the context carries none.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// CorrelationIDMiddleware ensures every request carries a correlation ID.
// The ID is echoed back on the response and attached to the request
// context so downstream log entries can reference it.
func CorrelationIDMiddleware(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			correlationID := c.Request().Header.Get(CorrelationIDHeader)
			if correlationID == "" {
				correlationID = uuid.NewString()
			}

			c.Response().Header().Set(CorrelationIDHeader, correlationID)

			ctx := context.WithValue(c.Request().Context(), correlationIDKey{}, correlationID)
			c.SetRequest(c.Request().WithContext(ctx))

			logger.InfoContext(ctx, "handling request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"correlationId", correlationID,
			)

			return next(c)
		}
	}
}
