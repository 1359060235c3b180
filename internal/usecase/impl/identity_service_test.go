package impl

import (
	"context"
	"log/slog"
	"testing"

	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
	domainerrors "github.com/antoniopd1/mercado-local-mex/internal/domain/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/repository"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/service"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"
	mockRepo "github.com/antoniopd1/mercado-local-mex/internal/mocks/repository"
	mockSvc "github.com/antoniopd1/mercado-local-mex/internal/mocks/service"
	"github.com/antoniopd1/mercado-local-mex/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// identityServiceFixtures holds all test dependencies for identity service tests.
type identityServiceFixtures struct {
	service  usecase.IdentityUsecase
	userRepo *mockRepo.MockUserRepository
	provider *mockSvc.MockIdentityProvider
	metrics  *mockSvc.MockMetricsRecorder
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	provider := mockSvc.NewMockIdentityProvider(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	service := NewIdentityService(IdentityServiceParams{
		UserRepo: userRepo,
		Provider: provider,
		Metrics:  metrics,
		Logger:   testLogger(),
	})

	return identityServiceFixtures{
		service:  service,
		userRepo: userRepo,
		provider: provider,
		metrics:  metrics,
	}
}

func TestParseBearer(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "standard", header: "Bearer abc.def", want: "abc.def"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "extra whitespace", header: "  Bearer   abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "token only", header: "abc", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "too many parts", header: "Bearer abc def", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseBearer(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrInvalidCredential)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdentityService_Resolve_ExistingUser(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), ExternalIdentityID: "uid-1", Username: "ana"}

	fx.provider.EXPECT().
		VerifyIDToken(ctx, "token-1").
		Return(&service.VerifiedIdentity{UID: "uid-1", Email: "ana@example.com"}, nil)

	fx.userRepo.EXPECT().
		FindByExternalIdentityID(ctx, "uid-1").
		Return(existing, nil)

	user, err := fx.service.Resolve(ctx, "Bearer token-1")
	require.NoError(t, err)
	assert.Equal(t, existing, user)
}

func TestIdentityService_Resolve_MalformedHeaderSkipsProvider(t *testing.T) {
	fx := createTestIdentityService(t)

	user, err := fx.service.Resolve(context.Background(), "Token abc")
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredential)
}

func TestIdentityService_Resolve_VerifyErrors(t *testing.T) {
	tests := []struct {
		name      string
		verifyErr error
		want      error
	}{
		{name: "invalid token", verifyErr: errors.Wrap(service.ErrTokenInvalid, "expired"), want: domainerrors.ErrInvalidCredential},
		{name: "issued in the future", verifyErr: service.ErrTokenTooEarly, want: domainerrors.ErrTooEarly},
		{name: "provider down", verifyErr: errors.New("connection refused"), want: domainerrors.ErrIdentityUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestIdentityService(t)
			ctx := context.Background()

			fx.provider.EXPECT().
				VerifyIDToken(ctx, "tok").
				Return(nil, tt.verifyErr)

			user, err := fx.service.Resolve(ctx, "Bearer tok")
			require.Error(t, err)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestIdentityService_Resolve_ProvisionsNewUser(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	newID := uuid.New()

	fx.provider.EXPECT().
		VerifyIDToken(ctx, "tok").
		Return(&service.VerifiedIdentity{UID: "uid-new", Email: "new@example.com"}, nil)

	fx.userRepo.EXPECT().
		FindByExternalIdentityID(ctx, "uid-new").
		Return(nil, repository.ErrUserNotFound)

	fx.userRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = newID

			return nil
		})

	fx.metrics.EXPECT().IdentityProvisioned(service.OutcomeSuccess).Return()

	user, err := fx.service.Resolve(ctx, "Bearer tok")
	require.NoError(t, err)
	assert.Equal(t, newID, user.ID)
	assert.Equal(t, "uid-new", user.ExternalIdentityID)
	assert.Equal(t, "uid-new", user.Username)
	assert.Equal(t, "new@example.com", user.Email)
	assert.False(t, user.IsBusinessOwner)
	assert.False(t, user.HasActiveSubscription)
	assert.Equal(t, entity.EntitlementSourceNone, user.EntitlementSource)
}

func TestIdentityService_Resolve_ProvisioningOutlivesCallerCancellation(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	newID := uuid.New()

	fx.provider.EXPECT().
		VerifyIDToken(ctx, "tok").
		Return(&service.VerifiedIdentity{UID: "uid-gone"}, nil)

	fx.userRepo.EXPECT().
		FindByExternalIdentityID(ctx, "uid-gone").
		Return(nil, repository.ErrUserNotFound)

	liveCtx := mock.MatchedBy(func(c context.Context) bool {
		_, hasDeadline := c.Deadline()

		return c.Err() == nil && hasDeadline
	})
	fx.userRepo.EXPECT().
		Create(liveCtx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = newID

			return nil
		})

	fx.metrics.EXPECT().IdentityProvisioned(service.OutcomeSuccess).Return()

	user, err := fx.service.Resolve(ctx, "Bearer tok")
	require.NoError(t, err)
	assert.Equal(t, newID, user.ID)
}

func TestIdentityService_Resolve_ConcurrentInsertFallsBackToExisting(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), ExternalIdentityID: "uid-race"}

	fx.provider.EXPECT().
		VerifyIDToken(ctx, "tok").
		Return(&service.VerifiedIdentity{UID: "uid-race"}, nil)

	fx.userRepo.EXPECT().
		FindByExternalIdentityID(ctx, "uid-race").
		Return(nil, repository.ErrUserNotFound).
		Once()

	fx.userRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUser)

	fx.userRepo.EXPECT().
		FindByExternalIdentityID(mock.Anything, "uid-race").
		Return(existing, nil).
		Once()

	fx.metrics.EXPECT().IdentityProvisioned(service.OutcomeDuplicate).Return()

	user, err := fx.service.Resolve(ctx, "Bearer tok")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, user.ID)
}

func TestIdentityService_Resolve_ProvisioningFailure(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()

	fx.provider.EXPECT().
		VerifyIDToken(ctx, "tok").
		Return(&service.VerifiedIdentity{UID: "uid-x"}, nil)

	fx.userRepo.EXPECT().
		FindByExternalIdentityID(ctx, "uid-x").
		Return(nil, repository.ErrUserNotFound)

	fx.userRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.User")).
		Return(errors.New("db down"))

	fx.metrics.EXPECT().IdentityProvisioned(service.OutcomeFailure).Return()

	user, err := fx.service.Resolve(ctx, "Bearer tok")
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrIdentityProvisioningFailed)
}

func TestIdentityService_Resolve_LookupError(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()

	fx.provider.EXPECT().
		VerifyIDToken(ctx, "tok").
		Return(&service.VerifiedIdentity{UID: "uid-y"}, nil)

	fx.userRepo.EXPECT().
		FindByExternalIdentityID(ctx, "uid-y").
		Return(nil, errors.New("db down"))

	user, err := fx.service.Resolve(ctx, "Bearer tok")
	require.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "failed to find user by external identity")
}
