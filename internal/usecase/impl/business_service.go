package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/antoniopd1/mercado-local-mex/config"
	deliverycontext "github.com/antoniopd1/mercado-local-mex/internal/delivery/context"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
	domainerrors "github.com/antoniopd1/mercado-local-mex/internal/domain/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/policy"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/repository"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/service"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// businessService implements the BusinessUsecase interface.
type businessService struct {
	businessRepo repository.BusinessRepository
	qrcode       service.QRCodeService
	limits       pageLimits
	logger       *slog.Logger
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	BusinessRepo  repository.BusinessRepository
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewBusinessService creates the business service.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: params.BusinessRepo,
		qrcode:       params.QRCodeService,
		limits:       pageLimitsFrom(params.Config),
		logger:       params.Logger,
	}
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func businessKey(action policy.Action) policy.Key {
	return policy.Key{Resource: policy.ResourceBusiness, Action: action}
}

// List returns every business to staff and only businesses of entitled owners to everyone else.
func (srv *businessService) List(ctx context.Context, actor *entity.User, filter entity.ListFilter, page entity.PageRequest) (*entity.Page[*entity.Business], error) {
	if err := policy.Authorize(policy.SubjectOf(actor), businessKey(policy.ActionList), nil); err != nil {
		return nil, err
	}

	result, err := srv.businessRepo.List(ctx, repository.BusinessListQuery{
		Filter:             filter,
		Page:               srv.limits.clamp(page),
		OnlyEntitledOwners: !actor.IsStaff,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	return result, nil
}

// Get returns a business from the actor's visible set.
func (srv *businessService) Get(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Business, error) {
	if err := policy.Authorize(policy.SubjectOf(actor), businessKey(policy.ActionRetrieve), nil); err != nil {
		return nil, err
	}

	business, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !businessVisibleTo(actor, business) {
		return nil, domainerrors.ErrBusinessNotFound
	}

	return business, nil
}

// MyBusiness returns the actor's own business.
func (srv *businessService) MyBusiness(ctx context.Context, actor *entity.User) (*entity.Business, error) {
	if err := policy.Authorize(policy.SubjectOf(actor), businessKey(policy.ActionMyBusiness), nil); err != nil {
		return nil, err
	}

	business, err := srv.businessRepo.FindByUserID(ctx, actor.ID)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, domainerrors.ErrBusinessNotFound.WithDetails("no business found for this user")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find business by user")
	}

	return business, nil
}

// Create registers the actor's storefront. A user owns at most one.
func (srv *businessService) Create(ctx context.Context, actor *entity.User, input usecase.BusinessInput) (*entity.Business, error) {
	if err := policy.Authorize(policy.SubjectOf(actor), businessKey(policy.ActionCreate), nil); err != nil {
		return nil, err
	}

	if err := requireBusinessFields(input); err != nil {
		return nil, err
	}

	business := &entity.Business{UserID: actor.ID}
	if err := applyBusinessInput(business, input); err != nil {
		return nil, err
	}

	if err := srv.businessRepo.Create(ctx, business); err != nil {
		if errors.Is(err, repository.ErrDuplicateBusiness) {
			return nil, domainerrors.ErrBusinessAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create business")
	}
	business.Owner = actor

	srv.log(ctx).InfoContext(ctx, "Business created",
		slog.String("business_id", business.ID.String()),
		slog.String("user_id", actor.ID.String()),
	)

	return business, nil
}

// Update edits a business the actor owns. The membership snapshot is never touched here.
func (srv *businessService) Update(ctx context.Context, actor *entity.User, id uuid.UUID, input usecase.BusinessInput, partial bool) (*entity.Business, error) {
	action := policy.ActionUpdate
	if partial {
		action = policy.ActionPartialUpdate
	}

	business, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(policy.SubjectOf(actor), businessKey(action), business); err != nil {
		return nil, err
	}

	if !partial {
		if err := requireBusinessFields(input); err != nil {
			return nil, err
		}
	}

	if err := applyBusinessInput(business, input); err != nil {
		return nil, err
	}

	if err := srv.businessRepo.Update(ctx, business); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to update business")
	}

	srv.log(ctx).InfoContext(ctx, "Business updated",
		slog.String("business_id", business.ID.String()),
		slog.Bool("partial", partial),
	)

	return business, nil
}

// Delete removes a business the actor owns, together with its offers.
func (srv *businessService) Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	business, err := srv.find(ctx, id)
	if err != nil {
		return err
	}

	if err := policy.Authorize(policy.SubjectOf(actor), businessKey(policy.ActionDestroy), business); err != nil {
		return err
	}

	if err := srv.businessRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return domainerrors.ErrBusinessNotFound
		}

		return errors.Wrap(err, "failed to delete business")
	}

	srv.log(ctx).InfoContext(ctx, "Business deleted", slog.String("business_id", id.String()))

	return nil
}

// StorefrontQR renders the storefront link of a visible business.
func (srv *businessService) StorefrontQR(ctx context.Context, actor *entity.User, id uuid.UUID) ([]byte, error) {
	business, err := srv.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateStorefrontQR(business.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate storefront QR code")
	}

	return png, nil
}

func (srv *businessService) find(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, domainerrors.ErrBusinessNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find business")
	}

	return business, nil
}

// businessVisibleTo mirrors the listing rule for single reads. Owners always see their own.
func businessVisibleTo(actor *entity.User, business *entity.Business) bool {
	switch {
	case actor.IsStaff:
		return true
	case business.OwnedBy(actor.ID):
		return true
	default:
		return business.Owner != nil && business.Owner.IsBusinessOwner
	}
}

// requireBusinessFields checks the fields a full write must carry.
func requireBusinessFields(input usecase.BusinessInput) error {
	required := []struct {
		name  string
		value *string
	}{
		{"name", input.Name},
		{"what_they_sell", input.WhatTheySell},
		{"hours", input.Hours},
		{"municipality", input.Municipality},
		{"street_address", input.StreetAddress},
		{"location_type", input.LocationType},
	}

	var missing []string
	for _, field := range required {
		if field.value == nil || strings.TrimSpace(*field.value) == "" {
			missing = append(missing, field.name)
		}
	}

	if len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("required: " + strings.Join(missing, ", "))
	}

	return nil
}

// applyBusinessInput copies the provided fields onto business, normalizing enumeration codes.
func applyBusinessInput(business *entity.Business, input usecase.BusinessInput) error {
	for _, field := range []struct {
		name string
		src  *string
		dst  *string
	}{
		{"name", input.Name, &business.Name},
		{"what_they_sell", input.WhatTheySell, &business.WhatTheySell},
		{"hours", input.Hours, &business.Hours},
		{"street_address", input.StreetAddress, &business.StreetAddress},
	} {
		if field.src == nil {
			continue
		}
		value := strings.TrimSpace(*field.src)
		if value == "" {
			return domainerrors.ErrValidationFailed.WithDetails(field.name + ": may not be blank")
		}
		*field.dst = value
	}

	if input.Municipality != nil {
		municipality, ok := entity.ParseMunicipality(*input.Municipality)
		if !ok {
			return domainerrors.ErrValidationFailed.WithDetails("municipality: unknown code " + *input.Municipality)
		}
		business.Municipality = municipality
	}

	if input.LocationType != nil {
		locationType, ok := entity.ParseLocationType(*input.LocationType)
		if !ok {
			return domainerrors.ErrValidationFailed.WithDetails("location_type: unknown code " + *input.LocationType)
		}
		business.LocationType = locationType
	}

	if input.BusinessType != nil {
		if strings.TrimSpace(*input.BusinessType) == "" {
			business.BusinessType = nil
		} else {
			businessType, ok := entity.ParseBusinessType(*input.BusinessType)
			if !ok {
				return domainerrors.ErrValidationFailed.WithDetails("business_type: unknown code " + *input.BusinessType)
			}
			business.BusinessType = &businessType
		}
	}

	applyOptional(&business.ContactPhone, input.ContactPhone)
	applyOptional(&business.FacebookUsername, input.FacebookUsername)
	applyOptional(&business.InstagramUsername, input.InstagramUsername)
	applyOptional(&business.TiktokUsername, input.TiktokUsername)
	applyOptional(&business.LogoURL, input.LogoURL)

	return nil
}

// applyOptional sets dst from src when provided. Blank clears the field.
func applyOptional(dst **string, src *string) {
	if src == nil {
		return
	}

	value := strings.TrimSpace(*src)
	if value == "" {
		*dst = nil

		return
	}
	*dst = &value
}
