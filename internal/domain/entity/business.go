package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business is a merchant storefront, owned one-to-one by a User.
type Business struct {
	ID                uuid.UUID     `json:"id"`
	UserID            uuid.UUID     `json:"user_id"`
	Name              string        `json:"name"`
	WhatTheySell      string        `json:"what_they_sell"`
	Hours             string        `json:"hours"`
	Municipality      Municipality  `json:"municipality"`
	StreetAddress     string        `json:"street_address"`
	LocationType      LocationType  `json:"location_type"`
	ContactPhone      *string       `json:"contact_phone"`
	FacebookUsername  *string       `json:"social_media_facebook_username"`
	InstagramUsername *string       `json:"social_media_instagram_username"`
	TiktokUsername    *string       `json:"social_media_tiktok_username"`
	LogoURL           *string       `json:"logo"`
	BusinessType      *BusinessType `json:"business_type"`
	Membership        Membership    `json:"membership"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`

	// Owner is populated by queries that join the owning user.
	Owner *User `json:"-"`
}

// Membership is the denormalized paid-membership snapshot of a Business.
// Only the entitlement store writes it.
type Membership struct {
	IsPaidMember        bool       `json:"is_paid_member"`
	MembershipExpiresAt *time.Time `json:"membership_expires_at"`
	LastPaymentDate     *Date      `json:"last_payment_date"`
}

// ApplyEntitlement updates the snapshot to mirror a user entitlement change at time at.
func (m *Membership) ApplyEntitlement(granted bool, at time.Time) {
	m.IsPaidMember = granted
	if granted {
		paid := NewDate(at)
		m.LastPaymentDate = &paid
		m.MembershipExpiresAt = nil

		return
	}

	expired := at
	m.MembershipExpiresAt = &expired
}

// OwnedBy reports whether userID owns the business.
func (b *Business) OwnedBy(userID uuid.UUID) bool {
	return b != nil && b.UserID == userID
}
