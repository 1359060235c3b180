package repository

import (
	"context"

	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"
)

// ErrDuplicateWebhookEvent is returned when an event id is already in the ledger.
var ErrDuplicateWebhookEvent = errors.New("webhook event already processed")

// WebhookEventRepository is the dedupe ledger of processed payment-processor events.
type WebhookEventRepository interface {
	// Exists reports whether the event id has already been processed.
	Exists(ctx context.Context, eventID string) (bool, error)

	// Record stores a processed event. Returns ErrDuplicateWebhookEvent on a repeated id.
	Record(ctx context.Context, event *entity.ProcessedWebhookEvent) error
}
