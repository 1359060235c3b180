// Package model holds the GORM persistence structs.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ExternalIdentityID    *string   `gorm:"type:varchar(128);uniqueIndex"`
	Username              string    `gorm:"type:varchar(150);not null"`
	Email                 string    `gorm:"type:varchar(255)"`
	PaymentCustomerID     *string   `gorm:"type:varchar(255);uniqueIndex"`
	IsBusinessOwner       bool      `gorm:"not null;default:false;index"`
	HasActiveSubscription bool      `gorm:"not null;default:false"`
	IsStaff               bool      `gorm:"not null;default:false"`
	EntitlementSource     string    `gorm:"type:varchar(32);not null;default:'none'"`
	EntitlementUpdatedAt  *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time

	Business *BusinessModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
