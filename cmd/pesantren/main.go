package main

import (
	"context"
	"log/slog"
	"os"

	"pesantren/config"
	"pesantren/internal/delivery"
	"pesantren/internal/delivery/api"
	"pesantren/internal/delivery/api/middleware"
	"pesantren/internal/delivery/api/router/handler"
	"pesantren/internal/domain/repository"
	"pesantren/internal/domain/service"
	"pesantren/internal/infra/auth"
	logs "pesantren/internal/infra/log"
	"pesantren/internal/infra/payment"
	"pesantren/internal/infra/persistence/postgres"
	"pesantren/internal/infra/pubsub"
	"pesantren/internal/infra/qrcode"
	"pesantren/internal/infra/reference"
	"pesantren/internal/infra/resilience"
	"pesantren/internal/usecase/impl"

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
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCourseRepository,
			postgres.NewLessonRepository,
			newEntitlementRepository,
			postgres.NewTransactionManager,
		),
	)
}

// newEntitlementRepository guards the entitlement store with a circuit breaker
func newEntitlementRepository(db *gorm.DB, cfg *config.Config, logger *slog.Logger) repository.EntitlementRepository {
	return resilience.NewBreakerEntitlementRepository(postgres.NewEntitlementRepository(db), cfg, logger)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			auth.NewIdentityProvider,
			payment.NewStubConfirmer,
			reference.NewGenerator,
			newReceiptService,
		),
		pubsub.Module,
	)
}

// newReceiptService creates the QR receipt renderer with dependency injection
func newReceiptService(cfg *config.Config) service.ReceiptService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccessService,
			impl.NewCourseService,
			impl.NewLessonService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewDisplayMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCourseHandler,
			handler.NewLessonHandler,
			handler.NewAccessHandler,
			handler.NewEntitlementHandler,
			handler.NewDisplayHandler,
			handler.NewTestHandler,
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
