package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/antoniopd1/mercado-local-mex/internal/delivery/context"
	domainerrors "github.com/antoniopd1/mercado-local-mex/internal/domain/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/service"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/usecase"

	"go.uber.org/fx"
)

// paymentEventService implements the PaymentEventUsecase interface.
type paymentEventService struct {
	gateway     service.PaymentGateway
	entitlement usecase.EntitlementUsecase
	metrics     service.MetricsRecorder
	logger      *slog.Logger
}

// PaymentEventServiceParams holds dependencies for PaymentEventService, injected by Fx.
type PaymentEventServiceParams struct {
	fx.In

	Gateway     service.PaymentGateway
	Entitlement usecase.EntitlementUsecase
	Metrics     service.MetricsRecorder
	Logger      *slog.Logger
}

// NewPaymentEventService creates the payment event processor.
func NewPaymentEventService(params PaymentEventServiceParams) usecase.PaymentEventUsecase {
	return &paymentEventService{
		gateway:     params.Gateway,
		entitlement: params.Entitlement,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
}

func (srv *paymentEventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleWebhook verifies and dispatches one payment event.
//
// Errors map to delivery semantics: ErrInvalidWebhook for payloads that must not be
// retried, ErrUnknownCustomer for events that need investigation, anything else is
// transient and the processor redelivers.
func (srv *paymentEventService) HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) (*usecase.WebhookResult, error) {
	logger := srv.log(ctx)

	event, err := srv.gateway.ParseWebhookEvent(payload, signatureHeader)
	if err != nil {
		srv.metrics.WebhookEvent("invalid", service.OutcomeFailure)
		logger.WarnContext(ctx, "Rejected payment webhook", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidWebhook
	}

	result := &usecase.WebhookResult{EventID: event.ID, EventType: event.Type}

	granted, handled := entitlementFor(event)
	if !handled {
		result.Outcome = service.OutcomeIgnored
		srv.metrics.WebhookEvent(event.Type, result.Outcome)
		logger.InfoContext(ctx, "Ignoring payment event",
			slog.String("event_id", event.ID),
			slog.String("event_type", event.Type),
			slog.String("subscription_status", event.SubscriptionStatus),
		)

		return result, nil
	}

	if event.CustomerID == "" {
		srv.metrics.WebhookEvent(event.Type, service.OutcomeFailure)
		logger.WarnContext(ctx, "Payment event has no customer id",
			slog.String("event_id", event.ID),
			slog.String("event_type", event.Type),
		)

		return nil, domainerrors.ErrInvalidWebhook.WithDetails("event has no customer id")
	}

	applied, err := srv.entitlement.SetEntitlement(ctx, usecase.EntitlementChange{
		CustomerID: event.CustomerID,
		Granted:    granted,
		EventID:    event.ID,
		EventType:  event.Type,
		OccurredAt: event.Created,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnknownCustomer) {
			srv.metrics.WebhookEvent(event.Type, service.OutcomeUnknown)
			logger.WarnContext(ctx, "Payment event for unknown customer",
				slog.String("event_id", event.ID),
				slog.String("customer_id", event.CustomerID),
			)

			return nil, err
		}

		srv.metrics.WebhookEvent(event.Type, service.OutcomeFailure)
		logger.ErrorContext(ctx, "Failed to apply payment event",
			slog.String("event_id", event.ID),
			slog.String("event_type", event.Type),
			slog.Any("error", err),
		)

		return nil, errors.Wrapf(err, "failed to apply %s", event.Type)
	}

	result.Outcome = service.OutcomeSuccess
	if applied.Duplicate {
		result.Outcome = service.OutcomeDuplicate
	}
	srv.metrics.WebhookEvent(event.Type, result.Outcome)

	return result, nil
}

// entitlementFor maps an event to the entitlement it implies. handled is false for
// event kinds and subscription statuses that do not change entitlement.
func entitlementFor(event *service.PaymentEvent) (granted, handled bool) {
	switch event.Type {
	case service.EventCheckoutSessionCompleted:
		return true, true
	case service.EventCustomerSubscriptionDeleted:
		return false, true
	case service.EventCustomerSubscriptionUpdated:
		switch event.SubscriptionStatus {
		case "active", "trialing":
			return true, true
		case "canceled", "unpaid", "incomplete_expired":
			return false, true
		}
	}

	return false, false
}
