package repository

import (
	"context"

	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrBusinessNotFound is returned when no business matches the lookup.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrDuplicateBusiness is returned when the owning user already has a business.
	ErrDuplicateBusiness = errors.New("business already exists")
)

// BusinessListQuery selects a page of businesses.
type BusinessListQuery struct {
	Filter entity.ListFilter
	Page   entity.PageRequest
	// OnlyEntitledOwners restricts the result to businesses whose owner is currently a business owner.
	OnlyEntitledOwners bool
}

// BusinessRepository defines the persistence operations for storefronts.
type BusinessRepository interface {
	// List returns one page of businesses ordered by name.
	List(ctx context.Context, query BusinessListQuery) (*entity.Page[*entity.Business], error)

	// FindByID retrieves a business with its owner loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindByUserID retrieves the business owned by a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Business, error)

	// Create persists a new business. Returns ErrDuplicateBusiness when the user already owns one.
	Create(ctx context.Context, business *entity.Business) error

	// Update writes the editable fields. The membership snapshot is never written here.
	Update(ctx context.Context, business *entity.Business) error

	// Delete removes a business and, through the foreign key, its offers.
	Delete(ctx context.Context, id uuid.UUID) error

	// UpdateMembership writes the membership snapshot of the business owned by userID.
	// Returns ErrBusinessNotFound when the user has no business.
	UpdateMembership(ctx context.Context, userID uuid.UUID, membership entity.Membership) error
}
