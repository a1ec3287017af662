package main

import (
	"context"
	"log/slog"
	"os"

	"todo/config"
	"todo/internal/delivery"
	"todo/internal/delivery/api"
	"todo/internal/delivery/api/middleware"
	"todo/internal/delivery/api/router/handler"
	"todo/internal/delivery/scheduler"
	"todo/internal/infra/auth"
	"todo/internal/infra/auth/google"
	logs "todo/internal/infra/log"
	"todo/internal/infra/mail"
	"todo/internal/infra/persistence/memory"
	"todo/internal/infra/persistence/postgres"
	"todo/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		injectRepo(cfg.Storage.Driver),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
			func(*scheduler.OtpCleanupScheduler) {},
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
	)
}

// injectRepo binds the repositories of the configured storage driver.
func injectRepo(driver string) fx.Option {
	if driver == config.StorageDriverMemory {
		return fx.Provide(
			memory.NewStore,
			memory.NewUserRepository,
			memory.NewOtpRepository,
			memory.NewResetTicketRepository,
			memory.NewTransactionManager,
		)
	}

	return fx.Provide(
		postgres.New,
		postgres.NewUserRepository,
		postgres.NewOtpRepository,
		postgres.NewResetTicketRepository,
		postgres.NewTransactionManager,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewSecretGenerator,
			google.NewClient,
			mail.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewOtpCleanupService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			scheduler.NewOtpCleanupScheduler,
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
