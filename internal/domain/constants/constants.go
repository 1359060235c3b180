package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers for the claims-sync retry queue
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// ClaimIsBusinessOwner is the custom claim carried on identity-provider tokens.
const ClaimIsBusinessOwner = "isBusinessOwner"

// Pagination
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// DefaultOfferDurationDays is added to an offer's start date when no end date is given.
const DefaultOfferDurationDays = 7
