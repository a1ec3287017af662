package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"todo/config"
	deliverycontext "todo/internal/delivery/context"
	"todo/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes gorm output to slog. Bound values are never logged:
// the users, otps and password_reset_tickets tables hold password hashes,
// codes and token hashes.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

var (
	_ logger.Interface = (*gormSlogLogger)(nil)
	_ gorm.ParamsFilter = (*gormSlogLogger)(nil)
)

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) *gormSlogLogger {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

// ParamsFilter drops the bound values so statements are logged with
// placeholders only.
func (l *gormSlogLogger) ParamsFilter(_ context.Context, sql string, _ ...any) (string, []any) {
	return sql, nil
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < threshold {
		return
	}

	l.scoped(ctx).LogAttrs(ctx, level, "GORM message", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		level, msg, extra = slog.LevelError, "GORM query failed", slog.String("error", err.Error())
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		level, msg, extra = slog.LevelWarn, "GORM slow query", slog.Duration("slowThreshold", l.slowThreshold)
	case l.level >= logger.Info:
		level, msg = slog.LevelInfo, "GORM query"
	default:
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	l.scoped(ctx).LogAttrs(ctx, level, msg, attrs...)
}

// scoped prefers the request logger so queries carry the request id.
func (l *gormSlogLogger) scoped(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}
