package usecase

import (
	"context"
)

// WebhookResult summarizes how a payment event was handled.
type WebhookResult struct {
	EventID   string
	EventType string
	Outcome   string
}

// PaymentEventUsecase consumes payment-processor webhooks.
type PaymentEventUsecase interface {
	// HandleWebhook verifies the raw payload against its signature header and applies the event.
	HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) (*WebhookResult, error)
}
