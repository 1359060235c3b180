package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "github.com/antoniopd1/mercado-local-mex/internal/delivery/context"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
	domainerrors "github.com/antoniopd1/mercado-local-mex/internal/domain/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/repository"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// entitlementService implements the EntitlementUsecase interface. It is the only
// writer of the entitlement pair and of the business membership snapshot.
type entitlementService struct {
	txManager repository.TransactionManager
	claims    usecase.ClaimsUsecase
	now       func() time.Time
	logger    *slog.Logger
}

// EntitlementServiceParams holds dependencies for EntitlementService, injected by Fx.
type EntitlementServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Claims    usecase.ClaimsUsecase
	Logger    *slog.Logger
}

// NewEntitlementService creates the entitlement store.
func NewEntitlementService(params EntitlementServiceParams) usecase.EntitlementUsecase {
	return &entitlementService{
		txManager: params.TxManager,
		claims:    params.Claims,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *entitlementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SetEntitlement locks the customer's user row, applies the change unless the event
// was already processed, and syncs claims after commit. Re-applying the current
// value is not an error and still syncs.
func (srv *entitlementService) SetEntitlement(ctx context.Context, change usecase.EntitlementChange) (*usecase.EntitlementResult, error) {
	if change.CustomerID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("customer id is required")
	}

	occurredAt := change.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = srv.now()
	}

	var result *usecase.EntitlementResult
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		users := repoFactory.NewUserRepository()
		ledger := repoFactory.NewWebhookEventRepository()

		user, err := users.FindByPaymentCustomerIDForUpdate(ctx, change.CustomerID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUnknownCustomer
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock user by payment customer")
		}

		if change.EventID != "" {
			seen, err := ledger.Exists(ctx, change.EventID)
			if err != nil {
				return errors.Wrap(err, "failed to check webhook ledger")
			}
			if seen {
				result = &usecase.EntitlementResult{User: user, Duplicate: true}

				return nil
			}
		}

		if err := srv.apply(ctx, users, repoFactory.NewBusinessRepository(), user, change.Granted, entity.EntitlementSourceWebhook, occurredAt); err != nil {
			return err
		}

		if change.EventID != "" {
			if err := ledger.Record(ctx, &entity.ProcessedWebhookEvent{
				EventID:     change.EventID,
				EventType:   change.EventType,
				CustomerID:  change.CustomerID,
				Outcome:     entity.OutcomeFor(change.Granted),
				ProcessedAt: srv.now(),
			}); err != nil {
				return errors.Wrap(err, "failed to record webhook event")
			}
		}

		result = &usecase.EntitlementResult{User: user}

		return nil
	})
	if err != nil {
		return nil, err
	}

	reason := usecase.ClaimsReasonEntitlementChanged
	if result.Duplicate {
		reason = usecase.ClaimsReasonDuplicateEvent
		srv.log(ctx).InfoContext(ctx, "Payment event already applied",
			slog.String("event_id", change.EventID),
			slog.String("user_id", result.User.ID.String()),
		)
	} else {
		srv.log(ctx).InfoContext(ctx, "Entitlement updated",
			slog.String("user_id", result.User.ID.String()),
			slog.Bool("granted", change.Granted),
			slog.String("event_type", change.EventType),
		)
	}

	srv.claims.SyncOrEnqueue(ctx, result.User, reason)

	return result, nil
}

// GrantAdministratively sets entitlement without a payment event. Staff only.
func (srv *entitlementService) GrantAdministratively(ctx context.Context, actor *entity.User, userID uuid.UUID, granted bool) (*entity.User, error) {
	if actor == nil || !actor.IsStaff {
		return nil, domainerrors.ErrStaffOnly
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		users := repoFactory.NewUserRepository()

		var err error
		user, err = users.FindByIDForUpdate(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock user")
		}

		return srv.apply(ctx, users, repoFactory.NewBusinessRepository(), user, granted, entity.EntitlementSourceAdmin, srv.now())
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).InfoContext(ctx, "Entitlement set by staff",
		slog.String("user_id", user.ID.String()),
		slog.String("actor_id", actor.ID.String()),
		slog.Bool("granted", granted),
	)

	srv.claims.SyncOrEnqueue(ctx, user, usecase.ClaimsReasonAdminGrant)

	return user, nil
}

// apply writes the entitlement pair and mirrors it into the user's business, if any.
func (srv *entitlementService) apply(
	ctx context.Context,
	users repository.UserRepository,
	businesses repository.BusinessRepository,
	user *entity.User,
	granted bool,
	source entity.EntitlementSource,
	at time.Time,
) error {
	user.ApplyEntitlement(granted, source, srv.now())
	if err := users.UpdateEntitlement(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update entitlement")
	}

	business, err := businesses.FindByUserID(ctx, user.ID)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to load business for membership update")
	}

	membership := business.Membership
	membership.ApplyEntitlement(granted, at)
	if err := businesses.UpdateMembership(ctx, user.ID, membership); err != nil && !errors.Is(err, repository.ErrBusinessNotFound) {
		return errors.Wrap(err, "failed to update membership")
	}

	return nil
}
