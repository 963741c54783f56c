package main

import (
	"context"
	"log/slog"
	"os"

	"pesantren/config"
	"pesantren/internal/delivery"
	"pesantren/internal/delivery/worker"
	"pesantren/internal/delivery/worker/handler"
	"pesantren/internal/domain/repository"
	logs "pesantren/internal/infra/log"
	"pesantren/internal/infra/persistence/postgres"
	"pesantren/internal/infra/resilience"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			newEntitlementRepository,
			handler.NewPushHandler,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(startServer),
	).Run()
}

func newEntitlementRepository(db *gorm.DB, cfg *config.Config, logger *slog.Logger) repository.EntitlementRepository {
	return resilience.NewBreakerEntitlementRepository(postgres.NewEntitlementRepository(db), cfg, logger)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
