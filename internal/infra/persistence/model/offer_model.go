package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OfferModel mirrors the 'offers' table.
type OfferModel struct {
	ID            uuid.UUID           `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID    uuid.UUID           `gorm:"type:uuid;not null;index"`
	Title         string              `gorm:"type:varchar(200);not null"`
	Description   string              `gorm:"type:text;not null"`
	OriginalPrice decimal.NullDecimal `gorm:"type:numeric(10,2);check:chk_offers_original_price,original_price >= 0"`
	DiscountPrice decimal.Decimal     `gorm:"type:numeric(10,2);not null;default:0.00;check:chk_offers_discount_price,discount_price >= 0"`
	ImageURL      *string             `gorm:"type:varchar(500)"`
	StartDate     time.Time           `gorm:"type:date;not null"`
	EndDate       time.Time           `gorm:"type:date;not null;index;check:chk_offers_window,end_date >= start_date"`
	IsActive      bool                `gorm:"not null;index"`
	CreatedAt     time.Time           `gorm:"index"`
	UpdatedAt     time.Time

	Business *BusinessModel `gorm:"foreignKey:BusinessID"`
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}
