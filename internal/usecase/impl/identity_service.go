// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "github.com/antoniopd1/mercado-local-mex/internal/delivery/context"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
	domainerrors "github.com/antoniopd1/mercado-local-mex/internal/domain/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/repository"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/service"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const (
	bearerScheme = "bearer"

	// provisionTimeout bounds a shared provisioning run once it is detached from its first caller.
	provisionTimeout = 10 * time.Second
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	userRepo repository.UserRepository
	provider service.IdentityProvider
	metrics  service.MetricsRecorder
	logger   *slog.Logger

	// provisioning collapses concurrent first requests for the same identity
	provisioning singleflight.Group
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Provider service.IdentityProvider
	Metrics  service.MetricsRecorder
	Logger   *slog.Logger
}

// NewIdentityService creates the identity resolver.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		userRepo: params.UserRepo,
		provider: params.Provider,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve verifies the bearer credential and returns the linked local user.
func (srv *identityService) Resolve(ctx context.Context, authorizationHeader string) (*entity.User, error) {
	token, err := parseBearer(authorizationHeader)
	if err != nil {
		return nil, err
	}

	identity, err := srv.provider.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, srv.classifyVerifyError(ctx, err)
	}

	user, err := srv.userRepo.FindByExternalIdentityID(ctx, identity.UID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by external identity")
	}

	return srv.provision(ctx, identity)
}

// provision creates the local user for a verified identity seen for the first time.
func (srv *identityService) provision(ctx context.Context, identity *service.VerifiedIdentity) (*entity.User, error) {
	result, err, shared := srv.provisioning.Do(identity.UID, func() (any, error) {
		// Other callers wait on this run, so the first caller's cancellation must not abort it.
		runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), provisionTimeout)
		defer cancel()

		return srv.createOrReload(runCtx, identity)
	})
	if err != nil {
		return nil, err
	}

	user, _ := result.(*entity.User)
	if shared {
		// Each caller gets its own copy of the shared result.
		clone := *user
		user = &clone
	}

	return user, nil
}

func (srv *identityService) createOrReload(ctx context.Context, identity *service.VerifiedIdentity) (*entity.User, error) {
	logger := srv.log(ctx)

	user := &entity.User{
		ExternalIdentityID: identity.UID,
		Username:           identity.UID,
		Email:              identity.Email,
		EntitlementSource:  entity.EntitlementSourceNone,
	}

	err := srv.userRepo.Create(ctx, user)
	if err == nil {
		srv.metrics.IdentityProvisioned(service.OutcomeSuccess)
		logger.InfoContext(ctx, "Provisioned local user for new identity",
			slog.String("user_id", user.ID.String()),
			slog.String("uid", identity.UID),
		)

		return user, nil
	}

	if !errors.Is(err, repository.ErrDuplicateUser) {
		srv.metrics.IdentityProvisioned(service.OutcomeFailure)
		logger.ErrorContext(ctx, "Failed to provision local user",
			slog.String("uid", identity.UID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrIdentityProvisioningFailed, err.Error())
	}

	// Another process created the row first.
	existing, findErr := srv.userRepo.FindByExternalIdentityID(ctx, identity.UID)
	if findErr != nil {
		srv.metrics.IdentityProvisioned(service.OutcomeFailure)
		logger.ErrorContext(ctx, "User vanished after duplicate insert",
			slog.String("uid", identity.UID),
			slog.Any("error", findErr),
		)

		return nil, errors.Wrap(domainerrors.ErrIdentityProvisioningFailed, findErr.Error())
	}

	srv.metrics.IdentityProvisioned(service.OutcomeDuplicate)

	return existing, nil
}

func (srv *identityService) classifyVerifyError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrTokenTooEarly):
		srv.log(ctx).InfoContext(ctx, "Rejected token issued in the future", slog.Any("error", err))

		return domainerrors.ErrTooEarly
	case errors.Is(err, service.ErrTokenInvalid):
		srv.log(ctx).InfoContext(ctx, "Rejected identity token", slog.Any("error", err))

		return domainerrors.ErrInvalidCredential
	default:
		srv.log(ctx).WarnContext(ctx, "Identity provider unavailable", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrIdentityUnavailable, err.Error())
	}
}

// parseBearer extracts the token from an Authorization header of exactly two
// whitespace-separated parts with a case-insensitive "Bearer" scheme.
func parseBearer(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) != 2 || strings.ToLower(parts[0]) != bearerScheme {
		return "", domainerrors.ErrInvalidCredential
	}

	return parts[1], nil
}
