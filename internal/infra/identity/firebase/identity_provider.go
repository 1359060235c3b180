package firebase

import (
	"context"
	"log/slog"
	"maps"
	"net"
	"time"

	"github.com/antoniopd1/mercado-local-mex/config"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/service"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/infra/resilience"

	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/fx"
)

const breakerName = "firebase-auth"

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Client AuthClient
}

type identityProvider struct {
	client    AuthClient
	breaker   *resilience.Breaker
	clockSkew time.Duration
	now       func() time.Time
}

// NewIdentityProvider wraps the Firebase Auth client with clock-skew checks,
// a bounded timeout and a circuit breaker.
func NewIdentityProvider(params Params) service.IdentityProvider {
	identityCfg := params.Config.Identity
	if identityCfg == nil {
		identityCfg = &config.IdentityConfig{}
	}

	return &identityProvider{
		client:    params.Client,
		breaker:   resilience.NewBreaker(breakerName, identityCfg.Breaker, identityCfg.Timeout, params.Logger, isCallerError),
		clockSkew: identityCfg.ClockSkew,
		now:       time.Now,
	}
}

// VerifyIDToken verifies the token and checks that it has not been revoked.
func (p *identityProvider) VerifyIDToken(ctx context.Context, idToken string) (*service.VerifiedIdentity, error) {
	times, err := readTokenTimes(idToken)
	if err != nil {
		return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}

	now := p.now()
	if times.issuedInFuture(now, p.clockSkew) {
		return nil, errors.Wrapf(service.ErrTokenTooEarly, "token issued at %s", times.issuedAt.Format(time.RFC3339))
	}

	token, err := resilience.Do(ctx, p.breaker, func(ctx context.Context) (*auth.Token, error) {
		return p.client.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	})
	if err != nil {
		if !isCallerError(err) {
			return nil, errors.Wrap(err, "identity provider unavailable")
		}
		// The provider may reject a token whose iat lies ahead of its own clock.
		if times.issuedInFuture(now, 0) {
			return nil, errors.Wrap(service.ErrTokenTooEarly, err.Error())
		}

		return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}

	identity := &service.VerifiedIdentity{
		UID:      token.UID,
		IssuedAt: time.Unix(token.IssuedAt, 0),
		Claims:   token.Claims,
	}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}

	return identity, nil
}

// GetCustomClaims returns a copy of the custom claims stored for uid.
func (p *identityProvider) GetCustomClaims(ctx context.Context, uid string) (map[string]any, error) {
	user, err := resilience.Do(ctx, p.breaker, func(ctx context.Context) (*auth.UserRecord, error) {
		return p.client.GetUser(ctx, uid)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get identity user")
	}

	claims := make(map[string]any, len(user.CustomClaims)+1)
	maps.Copy(claims, user.CustomClaims)

	return claims, nil
}

// SetCustomClaims replaces the custom claims stored for uid.
func (p *identityProvider) SetCustomClaims(ctx context.Context, uid string, claims map[string]any) error {
	err := resilience.Run(ctx, p.breaker, func(ctx context.Context) error {
		return p.client.SetCustomUserClaims(ctx, uid, claims)
	})

	return errors.Wrap(err, "failed to set custom claims")
}

// RevokeRefreshTokens invalidates every refresh session of uid.
func (p *identityProvider) RevokeRefreshTokens(ctx context.Context, uid string) error {
	err := resilience.Run(ctx, p.breaker, func(ctx context.Context) error {
		return p.client.RevokeRefreshTokens(ctx, uid)
	})

	return errors.Wrap(err, "failed to revoke refresh tokens")
}

type tokenTimes struct {
	issuedAt  time.Time
	notBefore time.Time
}

func (t tokenTimes) issuedInFuture(now time.Time, skew time.Duration) bool {
	limit := now.Add(skew)

	return t.issuedAt.After(limit) || t.notBefore.After(limit)
}

// readTokenTimes reads iat and nbf without verifying the signature. The
// signature is checked afterwards by the provider.
func readTokenTimes(idToken string) (tokenTimes, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return tokenTimes{}, errors.Wrap(err, "malformed token")
	}

	var times tokenTimes

	iat, err := claims.GetIssuedAt()
	if err != nil {
		return tokenTimes{}, errors.Wrap(err, "malformed iat claim")
	}
	if iat != nil {
		times.issuedAt = iat.Time
	}

	nbf, err := claims.GetNotBefore()
	if err != nil {
		return tokenTimes{}, errors.Wrap(err, "malformed nbf claim")
	}
	if nbf != nil {
		times.notBefore = nbf.Time
	}

	return times, nil
}

// isCallerError reports whether err is a verdict on the token rather than a
// failure to reach the provider.
func isCallerError(err error) bool {
	if err == nil {
		return true
	}
	if resilience.IsOpen(err) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		auth.IsCertificateFetchFailed(err) {
		return false
	}

	_, isNetErr := errors.AsType[net.Error](err)

	return !isNetErr
}
