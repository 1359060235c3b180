package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Offer is a time-bounded promotion published by a Business.
type Offer struct {
	ID            uuid.UUID        `json:"id"`
	BusinessID    uuid.UUID        `json:"business_id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	OriginalPrice *decimal.Decimal `json:"original_price"`
	DiscountPrice decimal.Decimal  `json:"discount_price"`
	ImageURL      *string          `json:"image"`
	StartDate     Date             `json:"start_date"`
	EndDate       Date             `json:"end_date"`
	IsActive      bool             `json:"is_active"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`

	// Business is populated by queries that join the owning business.
	Business *Business `json:"business,omitempty"`
}

// OwnedBy reports whether userID owns the business this offer belongs to.
// Business must be loaded.
func (o *Offer) OwnedBy(userID uuid.UUID) bool {
	return o != nil && o.Business.OwnedBy(userID)
}

// IsPubliclyVisible applies the public listing rule: active, not yet ended,
// and published by a business whose owner is currently entitled.
func (o *Offer) IsPubliclyVisible(ownerIsBusinessOwner bool, today Date) bool {
	return o.IsActive && !o.EndDate.Before(today) && ownerIsBusinessOwner
}
