package main

import (
	"context"
	"log/slog"
	"os"
	_ "time/tzdata"

	"github.com/antoniopd1/mercado-local-mex/config"
	"github.com/antoniopd1/mercado-local-mex/internal/delivery"
	"github.com/antoniopd1/mercado-local-mex/internal/delivery/api"
	"github.com/antoniopd1/mercado-local-mex/internal/delivery/api/middleware"
	"github.com/antoniopd1/mercado-local-mex/internal/delivery/api/router/handler"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/service"
	"github.com/antoniopd1/mercado-local-mex/internal/infra/identity/firebase"
	logs "github.com/antoniopd1/mercado-local-mex/internal/infra/log"
	"github.com/antoniopd1/mercado-local-mex/internal/infra/metrics"
	"github.com/antoniopd1/mercado-local-mex/internal/infra/payment/stripe"
	"github.com/antoniopd1/mercado-local-mex/internal/infra/persistence/postgres"
	"github.com/antoniopd1/mercado-local-mex/internal/infra/pubsub"
	"github.com/antoniopd1/mercado-local-mex/internal/infra/qrcode"
	"github.com/antoniopd1/mercado-local-mex/internal/usecase/impl"

	"go.uber.org/fx"
)

const (
	defaultQRCodeSize  = 256
	defaultQRCodeLevel = "M"
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
			postgres.NewBusinessRepository,
			postgres.NewOfferRepository,
			postgres.NewWebhookEventRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			firebase.NewAuthClient,
			firebase.NewIdentityProvider,
			stripe.NewPaymentGateway,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService builds storefront QR codes pointing at the frontend
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	var baseURL string
	if cfg.Stripe != nil {
		baseURL = cfg.Stripe.FrontendDomain
	}

	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(baseURL, defaultQRCodeSize, defaultQRCodeLevel)
	}

	return qrcode.NewQRCodeService(baseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewClaimsService,
			impl.NewEntitlementService,
			impl.NewPaymentEventService,
			impl.NewCheckoutService,
			impl.NewBusinessService,
			impl.NewOfferService,
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
			handler.NewBusinessHandler,
			handler.NewOfferHandler,
			handler.NewPaymentHandler,
			handler.NewAccountHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
