package service

// Outcome labels shared by the metrics recorder.
const (
	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeDuplicate = "duplicate"
	OutcomeIgnored   = "ignored"
	OutcomeSkipped   = "skipped"
	OutcomeEnqueued  = "enqueued"
	OutcomeUnknown   = "unknown_customer"
)

// MetricsRecorder counts reconciliation outcomes.
type MetricsRecorder interface {
	WebhookEvent(eventType, outcome string)
	ClaimsSync(outcome string)
	IdentityProvisioned(outcome string)
}
