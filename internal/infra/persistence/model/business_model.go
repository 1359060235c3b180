package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessModel mirrors the 'businesses' table. One row per owning user.
type BusinessModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name                string    `gorm:"type:varchar(200);not null;index"`
	WhatTheySell        string    `gorm:"type:text;not null"`
	Hours               string    `gorm:"type:varchar(255);not null"`
	Municipality        string    `gorm:"type:varchar(100);not null;index"`
	StreetAddress       string    `gorm:"type:varchar(255);not null"`
	LocationType        string    `gorm:"type:varchar(50);not null"`
	ContactPhone        *string   `gorm:"type:varchar(20)"`
	FacebookUsername    *string   `gorm:"type:varchar(100)"`
	InstagramUsername   *string   `gorm:"type:varchar(100)"`
	TiktokUsername      *string   `gorm:"type:varchar(100)"`
	LogoURL             *string   `gorm:"type:varchar(500)"`
	BusinessType        *string   `gorm:"type:varchar(100);index"`
	IsPaidMember        bool      `gorm:"not null;default:false"`
	MembershipExpiresAt *time.Time
	LastPaymentDate     *time.Time `gorm:"type:date"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	User   *UserModel    `gorm:"foreignKey:UserID"`
	Offers []*OfferModel `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
