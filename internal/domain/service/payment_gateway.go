package service

import (
	"context"
	"time"

	"github.com/antoniopd1/mercado-local-mex/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrCustomerMissing is returned when a stored customer id no longer resolves upstream.
	ErrCustomerMissing = errors.New("payment customer missing")
	// ErrInvalidSignature is returned when a webhook payload fails signature verification.
	ErrInvalidSignature = errors.New("invalid webhook signature")
	// ErrMalformedEvent is returned when a verified event cannot be decoded.
	ErrMalformedEvent = errors.New("malformed payment event")
)

// Payment event types the processor delivers.
const (
	EventCheckoutSessionCompleted    = "checkout.session.completed"
	EventCustomerSubscriptionDeleted = "customer.subscription.deleted"
	EventCustomerSubscriptionUpdated = "customer.subscription.updated"
)

// PaymentEvent is a verified payment-processor event reduced to the fields
// entitlement reconciliation needs.
type PaymentEvent struct {
	ID                 string
	Type               string
	CustomerID         string
	SubscriptionStatus string
	Created            time.Time
}

// CustomerParams describes a customer to create upstream.
type CustomerParams struct {
	LocalUserID uuid.UUID
	Email       string
	Name        string
}

// CheckoutSessionParams describes a subscription checkout session.
type CheckoutSessionParams struct {
	CustomerID string
	PriceID    string
	SuccessURL string
	CancelURL  string
	Reference  string
}

// PaymentGateway is the external payment processor.
type PaymentGateway interface {
	// RetrieveCustomer checks that customerID still resolves to a live customer.
	// Returns ErrCustomerMissing when it was deleted or never existed.
	RetrieveCustomer(ctx context.Context, customerID string) error

	// CreateCustomer creates a customer and returns its id.
	CreateCustomer(ctx context.Context, params CustomerParams) (string, error)

	// CreateCheckoutSession creates a subscription checkout session and returns its id.
	CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (string, error)

	// ParseWebhookEvent verifies the signature header over the raw payload and decodes the event.
	ParseWebhookEvent(payload []byte, signatureHeader string) (*PaymentEvent, error)
}
