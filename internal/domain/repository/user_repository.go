// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when an external identity or payment customer id is already linked.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the persistence operations of the identity and entitlement aggregate.
type UserRepository interface {
	// FindByID retrieves a single user by their local ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByExternalIdentityID retrieves the user linked to an identity-provider UID.
	FindByExternalIdentityID(ctx context.Context, externalID string) (*entity.User, error)

	// FindByPaymentCustomerIDForUpdate retrieves and row-locks the user linked to a
	// payment-processor customer. Must be called inside a transaction.
	FindByPaymentCustomerIDForUpdate(ctx context.Context, customerID string) (*entity.User, error)

	// FindByIDForUpdate retrieves and row-locks a user by local ID.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Create persists a new user. Returns ErrDuplicateUser on unique violations.
	Create(ctx context.Context, user *entity.User) error

	// SetPaymentCustomerID links the user to a payment-processor customer.
	SetPaymentCustomerID(ctx context.Context, id uuid.UUID, customerID string) error

	// UpdateEntitlement writes the entitlement pair and its provenance.
	UpdateEntitlement(ctx context.Context, user *entity.User) error
}
