package middleware

import (
	"log/slog"
	"time"

	"todo/config"
	deliverycontext "todo/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access record per request. Successful requests
// are only logged in debug mode; 4xx and 5xx are always logged.
type LoggerMiddleware struct {
	logger    *slog.Logger
	debug     bool
	skipPaths map[string]struct{}
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config, skipPaths ...string) *LoggerMiddleware {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return &LoggerMiddleware{
		logger:    logger,
		debug:     config.Env.Debug,
		skipPaths: skip,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := m.skipPaths[c.Request().URL.Path]; ok {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	status := res.Status
	if err != nil {
		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
		}
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	case !m.debug:
		return
	}

	// Query strings are never logged: reset and login payloads stay out of
	// the access log.
	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).
		LogAttrs(req.Context(), level, "HTTP Request", fields...)
}
