package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestResolveRequestID(t *testing.T) {
	assert.Equal(t, "abc-123", ResolveRequestID("abc-123"))
	assert.NotEmpty(t, ResolveRequestID(""))

	long := strings.Repeat("x", MaxRequestIDLength+1)
	assert.NotEqual(t, long, ResolveRequestID(long))
	assert.Len(t, ResolveRequestID(strings.Repeat("y", MaxRequestIDLength)), MaxRequestIDLength)
}

func TestSetRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Empty(t, GetRequestID(c))

	SetRequestID(c, "req-1")

	assert.Equal(t, "req-1", GetRequestID(c))
	assert.Equal(t, "req-1", RequestIDFromContext(c.Request().Context()))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)
	scoped := slog.New(slog.DiscardHandler).With("requestId", "req-1")

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestSubjectFromContext(t *testing.T) {
	_, ok := SubjectFromContext(context.Background())
	assert.False(t, ok)

	_, ok = SubjectFromContext(WithSubject(context.Background(), ""))
	assert.False(t, ok)

	subject, ok := SubjectFromContext(WithSubject(context.Background(), "ann@example.com"))
	assert.True(t, ok)
	assert.Equal(t, "ann@example.com", subject)
}
