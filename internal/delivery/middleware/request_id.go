package middleware

import (
	"log/slog"

	deliverycontext "todo/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware tags each request with an id and a logger carrying it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process honours a client supplied X-Request-Id when it is short enough,
// otherwise mints a fresh one.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := deliverycontext.ResolveRequestID(c.Request().Header.Get(deliverycontext.HeaderXRequestID))

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("requestId", requestID))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(c.Request().Context(), reqLogger)))

		return next(c)
	}
}
