package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogSizes(t *testing.T) {
	assert.Len(t, MunicipalityChoices(), 47)
	assert.Len(t, LocationTypeChoices(), 6)
	assert.Len(t, BusinessTypeChoices(), 34)
}

func TestParseMunicipality(t *testing.T) {
	m, ok := ParseMunicipality(" leon ")
	require.True(t, ok)
	assert.Equal(t, MunicipalityLeon, m)
	assert.Equal(t, "León", m.Label())

	_, ok = ParseMunicipality("QUERETARO")
	assert.False(t, ok)
	assert.Equal(t, "QUERETARO", Municipality("QUERETARO").Label())
}

func TestBusinessTypeIsValid(t *testing.T) {
	assert.True(t, BusinessTypeOtros.IsValid())
	assert.True(t, LocationTypeOnline.IsValid())
	assert.False(t, BusinessType("").IsValid())
}

func TestUserApplyEntitlement(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	u := &User{}

	u.ApplyEntitlement(true, EntitlementSourceWebhook, at)
	assert.True(t, u.IsBusinessOwner)
	assert.True(t, u.HasActiveSubscription)
	assert.Equal(t, EntitlementSourceWebhook, u.EntitlementSource)
	require.NotNil(t, u.EntitlementUpdatedAt)
	assert.Equal(t, at, *u.EntitlementUpdatedAt)

	// webhook grant without a customer id breaks provenance
	assert.False(t, u.EntitlementProvenanceValid())
	u.PaymentCustomerID = "cus_123"
	assert.True(t, u.EntitlementProvenanceValid())

	u.ApplyEntitlement(false, EntitlementSourceWebhook, at)
	assert.False(t, u.IsBusinessOwner)
	assert.False(t, u.HasActiveSubscription)
}

func TestMembershipApplyEntitlement(t *testing.T) {
	at := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC)
	var m Membership

	m.ApplyEntitlement(true, at)
	assert.True(t, m.IsPaidMember)
	assert.Nil(t, m.MembershipExpiresAt)
	require.NotNil(t, m.LastPaymentDate)
	assert.Equal(t, "2026-03-01", m.LastPaymentDate.String())

	m.ApplyEntitlement(false, at.Add(time.Hour))
	assert.False(t, m.IsPaidMember)
	require.NotNil(t, m.MembershipExpiresAt)
	assert.Equal(t, at.Add(time.Hour), *m.MembershipExpiresAt)
	assert.Equal(t, "2026-03-01", m.LastPaymentDate.String())
}

func TestOfferIsPubliclyVisible(t *testing.T) {
	today := NewDate(time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name    string
		offer   Offer
		owner   bool
		visible bool
	}{
		{name: "active and current", offer: Offer{IsActive: true, EndDate: today.AddDays(3)}, owner: true, visible: true},
		{name: "ends today", offer: Offer{IsActive: true, EndDate: today}, owner: true, visible: true},
		{name: "ended yesterday", offer: Offer{IsActive: true, EndDate: today.AddDays(-1)}, owner: true, visible: false},
		{name: "inactive", offer: Offer{IsActive: false, EndDate: today.AddDays(3)}, owner: true, visible: false},
		{name: "owner not entitled", offer: Offer{IsActive: true, EndDate: today.AddDays(3)}, owner: false, visible: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.visible, tt.offer.IsPubliclyVisible(tt.owner, today))
		})
	}
}

func TestOfferOwnedBy(t *testing.T) {
	owner := uuid.New()
	o := &Offer{Business: &Business{UserID: owner}}

	assert.True(t, o.OwnedBy(owner))
	assert.False(t, o.OwnedBy(uuid.New()))
	assert.False(t, (&Offer{}).OwnedBy(owner))
}

func TestDateJSON(t *testing.T) {
	d, err := ParseDate("2026-01-31")
	require.NoError(t, err)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2026-01-31"`, string(raw))

	var back Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-02-07"`), &back))
	assert.Equal(t, "2026-02-07", back.String())
	assert.Equal(t, "2026-02-14", back.AddDays(7).String())

	require.NoError(t, json.Unmarshal([]byte(`null`), &back))
	assert.True(t, back.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"31/01/2026"`), &back))
}

func TestPageHasNext(t *testing.T) {
	p := Page[int]{Total: 45, Page: 2, PageSize: 20}
	assert.True(t, p.HasNext())
	p.Page = 3
	assert.False(t, p.HasNext())
	assert.Equal(t, 40, PageRequest{Page: 3, PageSize: 20}.Offset())
	assert.Equal(t, 0, PageRequest{Page: 0, PageSize: 20}.Offset())
}
