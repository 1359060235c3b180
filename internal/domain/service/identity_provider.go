package service

import (
	"context"
	"time"

	"github.com/antoniopd1/mercado-local-mex/internal/errors"
)

var (
	// ErrTokenInvalid is returned for malformed, expired, revoked or badly signed tokens.
	ErrTokenInvalid = errors.New("identity token invalid")
	// ErrTokenTooEarly is returned when a token is rejected only because it was issued in the future.
	ErrTokenTooEarly = errors.New("identity token used too early")
)

// VerifiedIdentity is what a verified ID token asserts about its holder.
type VerifiedIdentity struct {
	UID      string
	Email    string
	IssuedAt time.Time
	Claims   map[string]any
}

// IdentityProvider is the external identity system that issues ID tokens and
// caches custom claims on them.
type IdentityProvider interface {
	// VerifyIDToken verifies signature, expiry and revocation of a raw ID token.
	VerifyIDToken(ctx context.Context, idToken string) (*VerifiedIdentity, error)

	// GetCustomClaims returns the custom claims currently stored for uid.
	GetCustomClaims(ctx context.Context, uid string) (map[string]any, error)

	// SetCustomClaims replaces the custom claims stored for uid.
	SetCustomClaims(ctx context.Context, uid string, claims map[string]any) error

	// RevokeRefreshTokens invalidates every refresh session of uid.
	RevokeRefreshTokens(ctx context.Context, uid string) error
}
