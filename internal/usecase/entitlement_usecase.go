package usecase

import (
	"context"
	"time"

	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"

	"github.com/google/uuid"
)

// EntitlementChange is a request to set a customer's entitlement.
type EntitlementChange struct {
	CustomerID string
	Granted    bool
	// EventID and EventType identify the payment event behind the change; empty for direct calls.
	EventID    string
	EventType  string
	OccurredAt time.Time
}

// EntitlementResult reports the user state after SetEntitlement.
type EntitlementResult struct {
	User *entity.User
	// Duplicate is true when the event had already been applied and nothing was written.
	Duplicate bool
}

// EntitlementUsecase is the single writer of user entitlement and the business membership snapshot.
type EntitlementUsecase interface {
	// SetEntitlement writes the entitlement of the user linked to change.CustomerID, then
	// pushes it to the identity provider. Returns ErrUnknownCustomer when no user is linked.
	SetEntitlement(ctx context.Context, change EntitlementChange) (*EntitlementResult, error)

	// GrantAdministratively lets staff set a user's entitlement without a payment event.
	GrantAdministratively(ctx context.Context, actor *entity.User, userID uuid.UUID, granted bool) (*entity.User, error)
}
