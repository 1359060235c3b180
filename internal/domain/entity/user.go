// Package entity contains the core business objects of the marketplace,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity and entitlement aggregate.
type User struct {
	ID                    uuid.UUID         `json:"id"`
	ExternalIdentityID    string            `json:"uid,omitempty"` // Identity-provider UID, empty until first verified credential.
	Username              string            `json:"username"`
	Email                 string            `json:"email,omitempty"`
	PaymentCustomerID     string            `json:"-"` // Payment-processor customer id, set on first checkout.
	IsBusinessOwner       bool              `json:"is_business_owner"`
	HasActiveSubscription bool              `json:"has_active_subscription"`
	IsStaff               bool              `json:"is_staff"`
	EntitlementSource     EntitlementSource `json:"entitlement_source"`
	EntitlementUpdatedAt  *time.Time        `json:"entitlement_updated_at,omitempty"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
}

// HasLinkedIdentity reports whether claims can be pushed to the identity provider for this user.
func (u *User) HasLinkedIdentity() bool {
	return u != nil && u.ExternalIdentityID != ""
}

// HasPaymentCustomer reports whether the user is linked to a payment-processor customer.
func (u *User) HasPaymentCustomer() bool {
	return u != nil && u.PaymentCustomerID != ""
}

// EntitlementProvenanceValid reports whether a granted entitlement can be explained:
// either a payment customer exists or the grant was made administratively.
func (u *User) EntitlementProvenanceValid() bool {
	if u == nil || !u.IsBusinessOwner {
		return true
	}

	return u.HasPaymentCustomer() || u.EntitlementSource == EntitlementSourceAdmin
}

// ApplyEntitlement sets both entitlement flags together and stamps the provenance.
func (u *User) ApplyEntitlement(granted bool, source EntitlementSource, at time.Time) {
	u.IsBusinessOwner = granted
	u.HasActiveSubscription = granted
	u.EntitlementSource = source
	u.EntitlementUpdatedAt = &at
}
