package usecase

import (
	"context"

	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"

	"github.com/google/uuid"
)

// Reasons attached to queued claims resyncs
const (
	ClaimsReasonEntitlementChanged = "entitlement_changed"
	ClaimsReasonDuplicateEvent     = "duplicate_event"
	ClaimsReasonAdminGrant         = "admin_grant"
)

// ClaimsUsecase mirrors local entitlement into identity-provider custom claims.
type ClaimsUsecase interface {
	// Sync pushes user.IsBusinessOwner to the identity provider and revokes refresh sessions.
	// Users without a linked identity are skipped.
	Sync(ctx context.Context, user *entity.User) error

	// SyncOrEnqueue runs Sync and queues a retry when it fails. It never returns an error.
	SyncOrEnqueue(ctx context.Context, user *entity.User, reason string)

	// Resync reloads the user and syncs its current entitlement.
	Resync(ctx context.Context, userID uuid.UUID) error
}
