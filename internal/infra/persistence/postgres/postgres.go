package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"todo/config"
	"todo/internal/domain/lifecycle"
	"todo/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolMonitorInterval = 5 * time.Second
	poolWaitWarnAfter   = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the Postgres pool backing the users, otps and
// password_reset_tickets tables. Replicas from config are registered by the
// connector and serve reads outside transactions.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Unique violations surface as gorm.ErrDuplicatedKey.
	db.Config.TranslateError = true
	db = db.Session(&gorm.Session{
		// Multi-step work goes through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := &poolMonitor{logger: params.Logger, warnAfter: poolWaitWarnAfter}
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			params.Logger.Info("Connected to PostgreSQL", slog.Int("replicas", len(params.Config.Postgres.Replicas)))

			go monitor.run(monitorCtx, sqlDB, poolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolMonitor reports time spent waiting for a free connection. Reset,
// verify and change hold theirs for the length of a locked transaction.
type poolMonitor struct {
	logger    *slog.Logger
	warnAfter time.Duration
	prev      sql.DBStats
}

func (m *poolMonitor) run(ctx context.Context, sqlDB *sql.DB, interval time.Duration) {
	if m.logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.prev = sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.observe(ctx, sqlDB.Stats())
		}
	}
}

// observe logs the waits accumulated since the previous sample.
func (m *poolMonitor) observe(ctx context.Context, cur sql.DBStats) {
	waits := cur.WaitCount - m.prev.WaitCount
	waited := cur.WaitDuration - m.prev.WaitDuration
	m.prev = cur

	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if waited >= m.warnAfter {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
	)
}
