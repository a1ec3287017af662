// Command migrate creates or updates the auth tables in Postgres.
package main

import (
	"log/slog"
	"os"

	"todo/config"
	"todo/internal/errors"
	logs "todo/internal/infra/log"
	"todo/internal/infra/persistence/model"
	"todo/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(migrate),
	)
	if err := app.Err(); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func migrate(db *gorm.DB, logger *slog.Logger) error {
	models := model.All()
	if err := db.AutoMigrate(models...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	logger.Info("Migrations applied", slog.Int("tables", len(models)))

	return nil
}
