package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/antoniopd1/mercado-local-mex/config"
	"github.com/antoniopd1/mercado-local-mex/internal/delivery"
	"github.com/antoniopd1/mercado-local-mex/internal/delivery/worker"
	"github.com/antoniopd1/mercado-local-mex/internal/delivery/worker/handler"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/service"
	"github.com/antoniopd1/mercado-local-mex/internal/infra/identity/firebase"
	logs "github.com/antoniopd1/mercado-local-mex/internal/infra/log"
	"github.com/antoniopd1/mercado-local-mex/internal/infra/metrics"
	"github.com/antoniopd1/mercado-local-mex/internal/infra/persistence/postgres"
	"github.com/antoniopd1/mercado-local-mex/internal/infra/pubsub"
	"github.com/antoniopd1/mercado-local-mex/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectHandler(),
		injectDelivery(),
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
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(service.MetricsRecorder)),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			firebase.NewAuthClient,
			firebase.NewIdentityProvider,
			pubsub.NewEventPublisher,
			impl.NewClaimsService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
