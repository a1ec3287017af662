// Package context carries per-request values between the HTTP layer and the
// services: the request id, a logger tagged with it, and the authenticated
// token subject.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
	subjectKey
)

const (
	// HeaderXRequestID is echoed back on every response.
	HeaderXRequestID = echo.HeaderXRequestID

	// MaxRequestIDLength caps client supplied ids before they reach the logs.
	MaxRequestIDLength = 128

	echoRequestIDKey = "requestId"
)

// ResolveRequestID keeps a usable client id and mints a new one otherwise.
func ResolveRequestID(incoming string) string {
	if incoming == "" || len(incoming) > MaxRequestIDLength {
		return uuid.NewString()
	}

	return incoming
}

// SetRequestID stores id on the echo context and on the request context.
func SetRequestID(c echo.Context, id string) {
	c.Set(echoRequestIDKey, id)
	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), id)))
}

// GetRequestID returns the id set by SetRequestID, or "" outside a request.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return RequestIDFromContext(c.Request().Context())
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext returns the request-scoped logger, or nil.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault prefers the request-scoped logger so service and
// repository logs carry the request id.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := LoggerFromContext(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithSubject records the email a verified bearer token was issued to.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)

	return subject, ok && subject != ""
}
