package repository

import (
	"context"

	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"

	"github.com/google/uuid"
)

// ErrOfferNotFound is returned when no offer matches the lookup.
var ErrOfferNotFound = errors.New("offer not found")

// OfferListQuery selects a page of offers.
type OfferListQuery struct {
	Filter entity.ListFilter
	Page   entity.PageRequest
	// PublicOn, when set, applies the public visibility rule for that day:
	// active, not ended, and owned by a currently entitled user.
	PublicOn *entity.Date
	// BusinessID, when set, restricts the result to one business.
	BusinessID *uuid.UUID
}

// OfferRepository defines the persistence operations for offers.
type OfferRepository interface {
	// List returns one page of offers, newest first, with their business loaded.
	List(ctx context.Context, query OfferListQuery) (*entity.Page[*entity.Offer], error)

	// FindByID retrieves an offer with its business and the business owner loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// Create persists a new offer.
	Create(ctx context.Context, offer *entity.Offer) error

	// Update writes the editable fields of an offer.
	Update(ctx context.Context, offer *entity.Offer) error

	// Delete removes an offer.
	Delete(ctx context.Context, id uuid.UUID) error
}
