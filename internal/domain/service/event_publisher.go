package service

import (
	"context"
)

// ClaimsSyncEvent asks the worker to push a user's current entitlement to the identity provider.
type ClaimsSyncEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	UserID    string `json:"user_id"`
	Reason    string `json:"reason,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishClaimsSyncEvent enqueues a claims resync for async processing
	PublishClaimsSyncEvent(ctx context.Context, event *ClaimsSyncEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
