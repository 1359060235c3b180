package impl

import (
	"context"
	"testing"

	"github.com/antoniopd1/mercado-local-mex/internal/domain/constants"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
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

// claimsServiceFixtures holds all test dependencies for claims service tests.
type claimsServiceFixtures struct {
	service   usecase.ClaimsUsecase
	userRepo  *mockRepo.MockUserRepository
	provider  *mockSvc.MockIdentityProvider
	publisher *mockSvc.MockEventPublisher
	metrics   *mockSvc.MockMetricsRecorder
}

func createTestClaimsService(t *testing.T) claimsServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	provider := mockSvc.NewMockIdentityProvider(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	service := NewClaimsService(ClaimsServiceParams{
		UserRepo:  userRepo,
		Provider:  provider,
		Publisher: publisher,
		Metrics:   metrics,
		Logger:    testLogger(),
	})

	return claimsServiceFixtures{
		service:   service,
		userRepo:  userRepo,
		provider:  provider,
		publisher: publisher,
		metrics:   metrics,
	}
}

func TestClaimsService_Sync_MergesClaimAndRevokes(t *testing.T) {
	fx := createTestClaimsService(t)

	user := &entity.User{ID: uuid.New(), ExternalIdentityID: "uid-1", IsBusinessOwner: true}

	fx.provider.EXPECT().
		GetCustomClaims(mock.Anything, "uid-1").
		Return(map[string]any{"role": "beta", constants.ClaimIsBusinessOwner: false}, nil)

	fx.provider.EXPECT().
		SetCustomClaims(mock.Anything, "uid-1", map[string]any{"role": "beta", constants.ClaimIsBusinessOwner: true}).
		Return(nil)

	fx.provider.EXPECT().
		RevokeRefreshTokens(mock.Anything, "uid-1").
		Return(nil)

	fx.metrics.EXPECT().ClaimsSync(service.OutcomeSuccess).Return()

	err := fx.service.Sync(context.Background(), user)
	require.NoError(t, err)
}

func TestClaimsService_Sync_NoExistingClaims(t *testing.T) {
	fx := createTestClaimsService(t)

	user := &entity.User{ID: uuid.New(), ExternalIdentityID: "uid-2"}

	fx.provider.EXPECT().
		GetCustomClaims(mock.Anything, "uid-2").
		Return(nil, nil)

	fx.provider.EXPECT().
		SetCustomClaims(mock.Anything, "uid-2", map[string]any{constants.ClaimIsBusinessOwner: false}).
		Return(nil)

	fx.provider.EXPECT().
		RevokeRefreshTokens(mock.Anything, "uid-2").
		Return(nil)

	fx.metrics.EXPECT().ClaimsSync(service.OutcomeSuccess).Return()

	require.NoError(t, fx.service.Sync(context.Background(), user))
}

func TestClaimsService_Sync_SkipsUnlinkedUser(t *testing.T) {
	fx := createTestClaimsService(t)

	fx.metrics.EXPECT().ClaimsSync(service.OutcomeSkipped).Return()

	err := fx.service.Sync(context.Background(), &entity.User{ID: uuid.New()})
	require.NoError(t, err)
}

func TestClaimsService_Sync_ProviderFailure(t *testing.T) {
	fx := createTestClaimsService(t)

	user := &entity.User{ID: uuid.New(), ExternalIdentityID: "uid-3"}

	fx.provider.EXPECT().
		GetCustomClaims(mock.Anything, "uid-3").
		Return(map[string]any{}, nil)

	fx.provider.EXPECT().
		SetCustomClaims(mock.Anything, "uid-3", mock.Anything).
		Return(errors.New("quota exceeded"))

	fx.metrics.EXPECT().ClaimsSync(service.OutcomeFailure).Return()

	err := fx.service.Sync(context.Background(), user)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write custom claims")
}

func TestClaimsService_SyncOrEnqueue_PublishesRetryOnFailure(t *testing.T) {
	fx := createTestClaimsService(t)

	user := &entity.User{ID: uuid.New(), ExternalIdentityID: "uid-4", IsBusinessOwner: true}

	fx.provider.EXPECT().
		GetCustomClaims(mock.Anything, "uid-4").
		Return(nil, errors.New("unavailable"))

	fx.metrics.EXPECT().ClaimsSync(service.OutcomeFailure).Return()

	fx.publisher.EXPECT().
		PublishClaimsSyncEvent(mock.Anything, &service.ClaimsSyncEvent{
			UserID: user.ID.String(),
			Reason: usecase.ClaimsReasonEntitlementChanged,
		}).
		Return(nil)

	fx.metrics.EXPECT().ClaimsSync(service.OutcomeEnqueued).Return()

	fx.service.SyncOrEnqueue(context.Background(), user, usecase.ClaimsReasonEntitlementChanged)
}

func TestClaimsService_SyncOrEnqueue_IgnoresCallerCancellation(t *testing.T) {
	fx := createTestClaimsService(t)

	user := &entity.User{ID: uuid.New(), ExternalIdentityID: "uid-5"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fx.provider.EXPECT().
		GetCustomClaims(mock.Anything, "uid-5").
		RunAndReturn(func(ctx context.Context, _ string) (map[string]any, error) {
			return nil, ctx.Err()
		})

	fx.provider.EXPECT().
		SetCustomClaims(mock.Anything, "uid-5", mock.Anything).
		Return(nil)

	fx.provider.EXPECT().
		RevokeRefreshTokens(mock.Anything, "uid-5").
		Return(nil)

	fx.metrics.EXPECT().ClaimsSync(service.OutcomeSuccess).Return()

	fx.service.SyncOrEnqueue(ctx, user, usecase.ClaimsReasonAdminGrant)
}

func TestClaimsService_SyncOrEnqueue_PublishFailureIsSwallowed(t *testing.T) {
	fx := createTestClaimsService(t)

	user := &entity.User{ID: uuid.New(), ExternalIdentityID: "uid-6"}

	fx.provider.EXPECT().
		GetCustomClaims(mock.Anything, "uid-6").
		Return(nil, errors.New("unavailable"))

	fx.metrics.EXPECT().ClaimsSync(service.OutcomeFailure).Return()

	fx.publisher.EXPECT().
		PublishClaimsSyncEvent(mock.Anything, mock.AnythingOfType("*service.ClaimsSyncEvent")).
		Return(errors.New("topic missing"))

	assert.NotPanics(t, func() {
		fx.service.SyncOrEnqueue(context.Background(), user, usecase.ClaimsReasonDuplicateEvent)
	})
}

func TestClaimsService_Resync_ReadsCurrentEntitlement(t *testing.T) {
	fx := createTestClaimsService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.User{ID: userID, ExternalIdentityID: "uid-7", IsBusinessOwner: false}

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(stored, nil)

	fx.provider.EXPECT().
		GetCustomClaims(mock.Anything, "uid-7").
		Return(map[string]any{constants.ClaimIsBusinessOwner: true}, nil)

	fx.provider.EXPECT().
		SetCustomClaims(mock.Anything, "uid-7", map[string]any{constants.ClaimIsBusinessOwner: false}).
		Return(nil)

	fx.provider.EXPECT().
		RevokeRefreshTokens(mock.Anything, "uid-7").
		Return(nil)

	fx.metrics.EXPECT().ClaimsSync(service.OutcomeSuccess).Return()

	require.NoError(t, fx.service.Resync(ctx, userID))
}

func TestClaimsService_Resync_UserMissing(t *testing.T) {
	fx := createTestClaimsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	err := fx.service.Resync(ctx, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
