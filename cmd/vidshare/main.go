package main

import (
	"context"
	"log/slog"
	"os"

	"vidshare/config"
	"vidshare/internal/delivery"
	"vidshare/internal/delivery/api"
	apimiddleware "vidshare/internal/delivery/api/middleware"
	"vidshare/internal/delivery/api/router/handler"
	"vidshare/internal/infra/auth"
	"vidshare/internal/infra/auth/google"
	"vidshare/internal/infra/cache"
	"vidshare/internal/infra/imagekit"
	logs "vidshare/internal/infra/log"
	"vidshare/internal/infra/persistence/postgres"
	"vidshare/internal/infra/pubsub"
	"vidshare/internal/infra/qrcode"
	"vidshare/internal/usecase/impl"

	"go.uber.org/fx"
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
		cache.NewRedisClient,
		postgres.NewConnector,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewVideoRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewProviderHTTPClient,
			auth.NewIdentityProviders,
			auth.NewOAuthStateStore,
			google.NewAuthService,
			imagekit.NewUploadSigner,
			pubsub.NewEventPublisher,
			qrcode.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewVideoService,
			impl.NewUploadService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthGate,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewVideoHandler,
			handler.NewUploadHandler,
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
