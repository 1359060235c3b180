package firebase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/antoniopd1/mercado-local-mex/config"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/service"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"

	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthClient struct {
	token       *auth.Token
	verifyErr   error
	user        *auth.UserRecord
	getUserErr  error
	setClaims   map[string]any
	setErr      error
	revokedUIDs []string
	verifyCalls int
}

func (f *fakeAuthClient) VerifyIDTokenAndCheckRevoked(_ context.Context, _ string) (*auth.Token, error) {
	f.verifyCalls++

	return f.token, f.verifyErr
}

func (f *fakeAuthClient) GetUser(_ context.Context, _ string) (*auth.UserRecord, error) {
	return f.user, f.getUserErr
}

func (f *fakeAuthClient) SetCustomUserClaims(_ context.Context, _ string, claims map[string]interface{}) error {
	f.setClaims = claims

	return f.setErr
}

func (f *fakeAuthClient) RevokeRefreshTokens(_ context.Context, uid string) error {
	f.revokedUIDs = append(f.revokedUIDs, uid)

	return nil
}

var fixedNow = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func newTestProvider(client AuthClient) *identityProvider {
	cfg := &config.Config{Identity: &config.IdentityConfig{ClockSkew: 10 * time.Second, Timeout: time.Second}}
	p := NewIdentityProvider(Params{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Client: client,
	}).(*identityProvider)
	p.now = func() time.Time { return fixedNow }

	return p
}

func signToken(t *testing.T, iat time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "uid-1",
		"iat": iat.Unix(),
	})
	raw, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return raw
}

func TestVerifyIDToken_Success(t *testing.T) {
	client := &fakeAuthClient{token: &auth.Token{
		UID:      "uid-1",
		IssuedAt: fixedNow.Add(-time.Minute).Unix(),
		Claims:   map[string]interface{}{"email": "vendor@example.com", "isBusinessOwner": true},
	}}
	p := newTestProvider(client)

	identity, err := p.VerifyIDToken(context.Background(), signToken(t, fixedNow.Add(-time.Minute)))
	require.NoError(t, err)
	assert.Equal(t, "uid-1", identity.UID)
	assert.Equal(t, "vendor@example.com", identity.Email)
	assert.Equal(t, 1, client.verifyCalls)
}

func TestVerifyIDToken_WithinSkewIsAccepted(t *testing.T) {
	client := &fakeAuthClient{token: &auth.Token{UID: "uid-1"}}
	p := newTestProvider(client)

	_, err := p.VerifyIDToken(context.Background(), signToken(t, fixedNow.Add(8*time.Second)))
	require.NoError(t, err)
}

func TestVerifyIDToken_TooEarlyBeyondSkew(t *testing.T) {
	client := &fakeAuthClient{}
	p := newTestProvider(client)

	_, err := p.VerifyIDToken(context.Background(), signToken(t, fixedNow.Add(time.Minute)))
	require.ErrorIs(t, err, service.ErrTokenTooEarly)
	assert.Equal(t, 0, client.verifyCalls)
}

func TestVerifyIDToken_ProviderRejectsFutureToken(t *testing.T) {
	client := &fakeAuthClient{verifyErr: errors.New("ID token issued at future timestamp")}
	p := newTestProvider(client)

	_, err := p.VerifyIDToken(context.Background(), signToken(t, fixedNow.Add(5*time.Second)))
	assert.ErrorIs(t, err, service.ErrTokenTooEarly)
}

func TestVerifyIDToken_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
		err   error
	}{
		{name: "malformed", token: "not-a-jwt"},
		{name: "rejected by provider", token: "", err: errors.New("ID token has expired")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProvider(&fakeAuthClient{verifyErr: tt.err})

			token := tt.token
			if token == "" {
				token = signToken(t, fixedNow.Add(-time.Hour))
			}

			_, err := p.VerifyIDToken(context.Background(), token)
			require.ErrorIs(t, err, service.ErrTokenInvalid)
		})
	}
}

func TestVerifyIDToken_ProviderUnavailable(t *testing.T) {
	p := newTestProvider(&fakeAuthClient{verifyErr: context.DeadlineExceeded})

	_, err := p.VerifyIDToken(context.Background(), signToken(t, fixedNow.Add(-time.Minute)))
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrTokenInvalid)
	assert.NotErrorIs(t, err, service.ErrTokenTooEarly)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCustomClaims(t *testing.T) {
	client := &fakeAuthClient{user: &auth.UserRecord{CustomClaims: map[string]interface{}{"role": "vendor"}}}
	p := newTestProvider(client)

	claims, err := p.GetCustomClaims(context.Background(), "uid-1")
	require.NoError(t, err)
	claims["isBusinessOwner"] = true

	assert.NotContains(t, client.user.CustomClaims, "isBusinessOwner", "returned claims must be a copy")

	require.NoError(t, p.SetCustomClaims(context.Background(), "uid-1", claims))
	assert.Equal(t, map[string]any{"role": "vendor", "isBusinessOwner": true}, client.setClaims)

	require.NoError(t, p.RevokeRefreshTokens(context.Background(), "uid-1"))
	assert.Equal(t, []string{"uid-1"}, client.revokedUIDs)
}

func TestSetCustomClaims_Error(t *testing.T) {
	client := &fakeAuthClient{setErr: errors.New("quota exceeded")}
	p := newTestProvider(client)

	err := p.SetCustomClaims(context.Background(), "uid-1", map[string]any{})
	assert.ErrorContains(t, err, "failed to set custom claims")
}
