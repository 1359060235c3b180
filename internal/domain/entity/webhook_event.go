package entity

import "time"

// WebhookOutcome is the recorded result of a processed payment event.
type WebhookOutcome string

const (
	WebhookOutcomeGranted WebhookOutcome = "granted"
	WebhookOutcomeRevoked WebhookOutcome = "revoked"
)

// ProcessedWebhookEvent is a dedupe ledger entry for a payment-processor event.
type ProcessedWebhookEvent struct {
	EventID     string
	EventType   string
	CustomerID  string
	Outcome     WebhookOutcome
	ProcessedAt time.Time
}

// OutcomeFor maps an entitlement value to its ledger outcome.
func OutcomeFor(granted bool) WebhookOutcome {
	if granted {
		return WebhookOutcomeGranted
	}

	return WebhookOutcomeRevoked
}
