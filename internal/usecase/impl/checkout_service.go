package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/antoniopd1/mercado-local-mex/config"
	deliverycontext "github.com/antoniopd1/mercado-local-mex/internal/delivery/context"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
	domainerrors "github.com/antoniopd1/mercado-local-mex/internal/domain/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/repository"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/service"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/usecase"

	"go.uber.org/fx"
)

const (
	checkoutSuccessPath = "/subscription/success?session_id={CHECKOUT_SESSION_ID}"
	checkoutCancelPath  = "/subscription/canceled"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	userRepo repository.UserRepository
	gateway  service.PaymentGateway
	stripe   *config.StripeConfig
	logger   *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Gateway  service.PaymentGateway
	Config   *config.Config
	Logger   *slog.Logger
}

// NewCheckoutService creates the checkout service.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		userRepo: params.UserRepo,
		gateway:  params.Gateway,
		stripe:   stripeConfig(params.Config),
		logger:   params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCheckoutSession opens a monthly subscription checkout for user.
// Processor failures surface as ErrUpstreamProcessor.
func (srv *checkoutService) CreateCheckoutSession(ctx context.Context, user *entity.User) (string, error) {
	if user == nil {
		return "", domainerrors.ErrInvalidCredential
	}

	logger := srv.log(ctx).With(slog.String("user_id", user.ID.String()))

	customerID, err := srv.ensureCustomer(ctx, logger, user)
	if err != nil {
		return "", err
	}

	domain := strings.TrimRight(srv.stripe.FrontendDomain, "/")
	sessionID, err := srv.gateway.CreateCheckoutSession(ctx, service.CheckoutSessionParams{
		CustomerID: customerID,
		PriceID:    srv.stripe.MonthlyPriceID,
		SuccessURL: domain + checkoutSuccessPath,
		CancelURL:  domain + checkoutCancelPath,
		Reference:  user.ID.String(),
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create checkout session", slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrUpstreamProcessor, err.Error())
	}

	logger.InfoContext(ctx, "Checkout session created", slog.String("session_id", sessionID))

	return sessionID, nil
}

// ensureCustomer returns a live customer id for user, creating and storing a new
// one when none is linked or the linked one no longer exists upstream.
func (srv *checkoutService) ensureCustomer(ctx context.Context, logger *slog.Logger, user *entity.User) (string, error) {
	if user.HasPaymentCustomer() {
		err := srv.gateway.RetrieveCustomer(ctx, user.PaymentCustomerID)
		if err == nil {
			return user.PaymentCustomerID, nil
		}
		if !errors.Is(err, service.ErrCustomerMissing) {
			logger.ErrorContext(ctx, "Failed to verify payment customer", slog.Any("error", err))

			return "", errors.Wrap(domainerrors.ErrUpstreamProcessor, err.Error())
		}

		logger.WarnContext(ctx, "Stored payment customer is gone, creating a new one",
			slog.String("customer_id", user.PaymentCustomerID),
		)
	}

	customerID, err := srv.gateway.CreateCustomer(ctx, service.CustomerParams{
		LocalUserID: user.ID,
		Email:       user.Email,
		Name:        user.Username,
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create payment customer", slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrUpstreamProcessor, err.Error())
	}

	if err := srv.userRepo.SetPaymentCustomerID(ctx, user.ID, customerID); err != nil {
		return "", errors.Wrap(err, "failed to store payment customer id")
	}
	user.PaymentCustomerID = customerID

	logger.InfoContext(ctx, "Payment customer linked", slog.String("customer_id", customerID))

	return customerID, nil
}

func stripeConfig(cfg *config.Config) *config.StripeConfig {
	if cfg == nil || cfg.Stripe == nil {
		return &config.StripeConfig{}
	}

	return cfg.Stripe
}
