package impl

import (
	"context"
	"log/slog"
	"maps"
	"time"

	"github.com/antoniopd1/mercado-local-mex/config"
	deliverycontext "github.com/antoniopd1/mercado-local-mex/internal/delivery/context"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/constants"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/repository"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/service"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultClaimsSyncTimeout = 5 * time.Second

// claimsService implements the ClaimsUsecase interface.
type claimsService struct {
	userRepo  repository.UserRepository
	provider  service.IdentityProvider
	publisher service.EventPublisher
	metrics   service.MetricsRecorder
	timeout   time.Duration
	logger    *slog.Logger
}

// ClaimsServiceParams holds dependencies for ClaimsService, injected by Fx.
type ClaimsServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	Provider  service.IdentityProvider
	Publisher service.EventPublisher
	Metrics   service.MetricsRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewClaimsService creates the claims synchronizer.
func NewClaimsService(params ClaimsServiceParams) usecase.ClaimsUsecase {
	timeout := defaultClaimsSyncTimeout
	if params.Config != nil && params.Config.Identity != nil && params.Config.Identity.Timeout > 0 {
		timeout = params.Config.Identity.Timeout
	}

	return &claimsService{
		userRepo:  params.UserRepo,
		provider:  params.Provider,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		timeout:   timeout,
		logger:    params.Logger,
	}
}

func (srv *claimsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Sync merges isBusinessOwner into the stored custom claims, keeping every other
// key, and revokes refresh sessions so clients pick up the new claim.
func (srv *claimsService) Sync(ctx context.Context, user *entity.User) error {
	if !user.HasLinkedIdentity() {
		srv.metrics.ClaimsSync(service.OutcomeSkipped)
		srv.log(ctx).WarnContext(ctx, "Skipping claims sync for user without linked identity",
			slog.String("user_id", user.ID.String()),
		)

		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, srv.timeout)
	defer cancel()

	uid := user.ExternalIdentityID

	current, err := srv.provider.GetCustomClaims(ctx, uid)
	if err != nil {
		srv.metrics.ClaimsSync(service.OutcomeFailure)

		return errors.Wrap(err, "failed to read custom claims")
	}

	claims := make(map[string]any, len(current)+1)
	maps.Copy(claims, current)
	claims[constants.ClaimIsBusinessOwner] = user.IsBusinessOwner

	if err := srv.provider.SetCustomClaims(ctx, uid, claims); err != nil {
		srv.metrics.ClaimsSync(service.OutcomeFailure)

		return errors.Wrap(err, "failed to write custom claims")
	}

	if err := srv.provider.RevokeRefreshTokens(ctx, uid); err != nil {
		srv.metrics.ClaimsSync(service.OutcomeFailure)

		return errors.Wrap(err, "failed to revoke refresh tokens")
	}

	srv.metrics.ClaimsSync(service.OutcomeSuccess)
	srv.log(ctx).InfoContext(ctx, "Custom claims synced",
		slog.String("user_id", user.ID.String()),
		slog.Bool(constants.ClaimIsBusinessOwner, user.IsBusinessOwner),
	)

	return nil
}

// SyncOrEnqueue runs Sync detached from caller cancellation and queues a retry on failure.
func (srv *claimsService) SyncOrEnqueue(ctx context.Context, user *entity.User, reason string) {
	ctx = context.WithoutCancel(ctx)
	logger := srv.log(ctx)

	err := srv.Sync(ctx, user)
	if err == nil {
		return
	}

	logger.WarnContext(ctx, "Claims sync failed, queueing retry",
		slog.String("user_id", user.ID.String()),
		slog.String("reason", reason),
		slog.Any("error", err),
	)

	event := &service.ClaimsSyncEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UserID:    user.ID.String(),
		Reason:    reason,
	}
	if err := srv.publisher.PublishClaimsSyncEvent(ctx, event); err != nil {
		// Claims stay stale until the next entitlement change or re-login.
		logger.ErrorContext(ctx, "Failed to queue claims sync retry",
			slog.String("user_id", user.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	srv.metrics.ClaimsSync(service.OutcomeEnqueued)
}

// Resync loads the current entitlement from the database, so a retry never replays a stale value.
func (srv *claimsService) Resync(ctx context.Context, userID uuid.UUID) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return errors.Wrapf(err, "failed to load user %s for claims resync", userID)
	}

	return srv.Sync(ctx, user)
}
