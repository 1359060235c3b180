// Package stripe adapts the Stripe API to the payment-gateway port.
package stripe

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/antoniopd1/mercado-local-mex/config"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/service"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/infra/resilience"

	"github.com/google/uuid"
	stripeapi "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/fx"
)

const (
	breakerName       = "stripe"
	metadataLocalUser = "local_user_id"
	createRetries     = 1
	createBackoff     = 200 * time.Millisecond
)

// customerAPI is the subset of the Stripe customer client the gateway uses.
type customerAPI interface {
	Get(id string, params *stripeapi.CustomerParams) (*stripeapi.Customer, error)
	New(params *stripeapi.CustomerParams) (*stripeapi.Customer, error)
}

// checkoutSessionAPI is the subset of the Stripe checkout session client the gateway uses.
type checkoutSessionAPI interface {
	New(params *stripeapi.CheckoutSessionParams) (*stripeapi.CheckoutSession, error)
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type gateway struct {
	customers     customerAPI
	sessions      checkoutSessionAPI
	webhookSecret string
	breaker       *resilience.Breaker
	logger        *slog.Logger
}

// NewPaymentGateway builds the Stripe-backed gateway.
func NewPaymentGateway(params Params) (service.PaymentGateway, error) {
	cfg := params.Config.Stripe
	if cfg == nil {
		return nil, errors.New("stripe configuration is required")
	}

	sc := &client.API{}
	sc.Init(cfg.SecretKey, nil)

	return &gateway{
		customers:     sc.Customers,
		sessions:      sc.CheckoutSessions,
		webhookSecret: cfg.WebhookSecret,
		breaker:       resilience.NewBreaker(breakerName, cfg.Breaker, cfg.Timeout, params.Logger, isClientError),
		logger:        params.Logger,
	}, nil
}

// RetrieveCustomer checks that customerID still resolves to a live customer.
func (g *gateway) RetrieveCustomer(ctx context.Context, customerID string) error {
	customer, err := resilience.Do(ctx, g.breaker, func(ctx context.Context) (*stripeapi.Customer, error) {
		params := &stripeapi.CustomerParams{}
		params.Context = ctx

		return g.customers.Get(customerID, params)
	})
	if err != nil {
		if isMissingResource(err) {
			return errors.Wrap(service.ErrCustomerMissing, customerID)
		}

		return errors.Wrap(err, "failed to retrieve customer")
	}

	if customer == nil || customer.Deleted {
		return errors.Wrap(service.ErrCustomerMissing, customerID)
	}

	return nil
}

// CreateCustomer creates a customer tagged with the local user id. One retry
// is attempted for transient failures, reusing the idempotency key so Stripe
// never creates two customers.
func (g *gateway) CreateCustomer(ctx context.Context, params service.CustomerParams) (string, error) {
	idempotencyKey := uuid.NewString()

	var customer *stripeapi.Customer
	err := resilience.RetryWithBackoff(ctx, resilience.RetryConfig{MaxRetries: createRetries, InitialBackoff: createBackoff}, isRetryable, func() error {
		var callErr error
		customer, callErr = resilience.Do(ctx, g.breaker, func(ctx context.Context) (*stripeapi.Customer, error) {
			p := &stripeapi.CustomerParams{
				Email: stripeapi.String(params.Email),
				Name:  stripeapi.String(params.Name),
			}
			p.Context = ctx
			p.SetIdempotencyKey(idempotencyKey)
			p.AddMetadata(metadataLocalUser, params.LocalUserID.String())

			return g.customers.New(p)
		})
		if callErr != nil {
			g.logger.WarnContext(ctx, "Stripe customer creation attempt failed",
				slog.String("localUserID", params.LocalUserID.String()),
				slog.Any("error", callErr),
			)
		}

		return callErr
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to create customer")
	}

	return customer.ID, nil
}

// CreateCheckoutSession creates a subscription-mode checkout session.
func (g *gateway) CreateCheckoutSession(ctx context.Context, params service.CheckoutSessionParams) (string, error) {
	session, err := resilience.Do(ctx, g.breaker, func(ctx context.Context) (*stripeapi.CheckoutSession, error) {
		p := &stripeapi.CheckoutSessionParams{
			Customer: stripeapi.String(params.CustomerID),
			Mode:     stripeapi.String(string(stripeapi.CheckoutSessionModeSubscription)),
			LineItems: []*stripeapi.CheckoutSessionLineItemParams{
				{
					Price:    stripeapi.String(params.PriceID),
					Quantity: stripeapi.Int64(1),
				},
			},
			PaymentMethodTypes: stripeapi.StringSlice([]string{"card"}),
			SuccessURL:         stripeapi.String(params.SuccessURL),
			CancelURL:          stripeapi.String(params.CancelURL),
		}
		if params.Reference != "" {
			p.ClientReferenceID = stripeapi.String(params.Reference)
		}
		p.Context = ctx

		return g.sessions.New(p)
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to create checkout session")
	}

	return session.ID, nil
}

// ParseWebhookEvent verifies the Stripe-Signature header with the SDK's default
// tolerance and reduces the event to the fields reconciliation needs.
func (g *gateway) ParseWebhookEvent(payload []byte, signatureHeader string) (*service.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidSignature, err.Error())
	}

	return toPaymentEvent(event)
}

func toPaymentEvent(event stripeapi.Event) (*service.PaymentEvent, error) {
	paymentEvent := &service.PaymentEvent{
		ID:      event.ID,
		Type:    string(event.Type),
		Created: time.Unix(event.Created, 0).UTC(),
	}

	if event.Data == nil {
		return paymentEvent, nil
	}

	switch event.Type {
	case stripeapi.EventTypeCheckoutSessionCompleted:
		var session stripeapi.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, errors.Wrap(service.ErrMalformedEvent, err.Error())
		}
		if session.Customer != nil {
			paymentEvent.CustomerID = session.Customer.ID
		}
	case stripeapi.EventTypeCustomerSubscriptionDeleted, stripeapi.EventTypeCustomerSubscriptionUpdated:
		var subscription stripeapi.Subscription
		if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
			return nil, errors.Wrap(service.ErrMalformedEvent, err.Error())
		}
		if subscription.Customer != nil {
			paymentEvent.CustomerID = subscription.Customer.ID
		}
		paymentEvent.SubscriptionStatus = string(subscription.Status)
	}

	return paymentEvent, nil
}

// isMissingResource reports whether a customer lookup was rejected because the
// id cannot be used any more. Stripe answers ids from the other mode or from a
// rotated account with a plain invalid_request error, so any invalid request on
// the retrieve path means the stored id is stale.
func isMissingResource(err error) bool {
	stripeErr, ok := errors.AsType[*stripeapi.Error](err)
	if !ok {
		return false
	}

	return stripeErr.Code == stripeapi.ErrorCodeResourceMissing ||
		stripeErr.HTTPStatusCode == http.StatusNotFound ||
		stripeErr.Type == stripeapi.ErrorTypeInvalidRequest
}

// isClientError reports whether Stripe rejected the request itself. Such errors
// do not count against the breaker.
func isClientError(err error) bool {
	stripeErr, ok := errors.AsType[*stripeapi.Error](err)
	if !ok {
		return false
	}

	return stripeErr.Type == stripeapi.ErrorTypeInvalidRequest ||
		stripeErr.Type == stripeapi.ErrorTypeCard
}

func isRetryable(err error) bool {
	return !isClientError(err) && !resilience.IsOpen(err)
}
