package usecase

import (
	"context"

	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OfferInput carries writable offer fields. Nil means "not provided".
type OfferInput struct {
	Title         *string
	Description   *string
	OriginalPrice *decimal.Decimal
	// ClearOriginalPrice sets the original price to NULL.
	ClearOriginalPrice bool
	DiscountPrice      *decimal.Decimal
	ImageURL           *string
	StartDate          *entity.Date
	EndDate            *entity.Date
	IsActive           *bool
}

// OfferUsecase serves the offer collection.
type OfferUsecase interface {
	// List returns the public offers: active, not ended, from currently entitled owners.
	List(ctx context.Context, actor *entity.User, filter entity.ListFilter, page entity.PageRequest) (*entity.Page[*entity.Offer], error)
	// MyOffers returns every offer of the actor's business, or an empty page.
	MyOffers(ctx context.Context, actor *entity.User, filter entity.ListFilter, page entity.PageRequest) (*entity.Page[*entity.Offer], error)
	Get(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Offer, error)
	Create(ctx context.Context, actor *entity.User, input OfferInput) (*entity.Offer, error)
	Update(ctx context.Context, actor *entity.User, id uuid.UUID, input OfferInput, partial bool) (*entity.Offer, error)
	Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error
}
