package entity

// EntitlementSource records which path last changed a user's entitlement.
type EntitlementSource string

const (
	// EntitlementSourceNone marks a user whose entitlement was never changed.
	EntitlementSourceNone EntitlementSource = "none"
	// EntitlementSourceWebhook marks a change driven by a payment-processor event.
	EntitlementSourceWebhook EntitlementSource = "webhook"
	// EntitlementSourceAdmin marks a change made by staff.
	EntitlementSourceAdmin EntitlementSource = "admin"
)

// String returns the string representation of the source.
func (s EntitlementSource) String() string {
	return string(s)
}

// IsValid checks if the source is a known value.
func (s EntitlementSource) IsValid() bool {
	switch s {
	case EntitlementSourceNone, EntitlementSourceWebhook, EntitlementSourceAdmin:
		return true
	default:
		return false
	}
}
