package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/antoniopd1/mercado-local-mex/config"
	deliverycontext "github.com/antoniopd1/mercado-local-mex/internal/delivery/context"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/constants"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
	domainerrors "github.com/antoniopd1/mercado-local-mex/internal/domain/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/policy"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/repository"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// Prices are numeric(10,2).
var maxPrice = decimal.New(1, 8)

// offerService implements the OfferUsecase interface.
type offerService struct {
	offerRepo    repository.OfferRepository
	businessRepo repository.BusinessRepository
	limits       pageLimits
	location     *time.Location
	now          func() time.Time
	logger       *slog.Logger
}

// OfferServiceParams holds dependencies for OfferService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	OfferRepo    repository.OfferRepository
	BusinessRepo repository.BusinessRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewOfferService creates the offer service. "Today" is evaluated in the configured time zone.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	var location *time.Location
	if params.Config != nil {
		location = params.Config.App.Location()
	} else {
		location = time.UTC
	}

	return &offerService{
		offerRepo:    params.OfferRepo,
		businessRepo: params.BusinessRepo,
		limits:       pageLimitsFrom(params.Config),
		location:     location,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *offerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *offerService) today() entity.Date {
	return entity.NewDate(srv.now().In(srv.location))
}

func offerKey(action policy.Action) policy.Key {
	return policy.Key{Resource: policy.ResourceOffer, Action: action}
}

// List returns the public offers. Entitlement is checked live against the owning user.
func (srv *offerService) List(ctx context.Context, actor *entity.User, filter entity.ListFilter, page entity.PageRequest) (*entity.Page[*entity.Offer], error) {
	if err := policy.Authorize(policy.SubjectOf(actor), offerKey(policy.ActionList), nil); err != nil {
		return nil, err
	}

	today := srv.today()
	result, err := srv.offerRepo.List(ctx, repository.OfferListQuery{
		Filter:   filter,
		Page:     srv.limits.clamp(page),
		PublicOn: &today,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	return result, nil
}

// MyOffers returns every offer of the actor's business regardless of window or state.
// Callers who are not currently business owners, or have no business, get an empty page.
func (srv *offerService) MyOffers(ctx context.Context, actor *entity.User, filter entity.ListFilter, page entity.PageRequest) (*entity.Page[*entity.Offer], error) {
	req := srv.limits.clamp(page)

	decision := policy.Evaluate(policy.SubjectOf(actor), offerKey(policy.ActionMyOffers), nil)
	if !decision.Allowed {
		if decision.Reason == policy.ReasonNotBusinessOwner {
			return emptyPage[*entity.Offer](req), nil
		}

		return nil, decision.Err(policy.ResourceOffer)
	}

	business, err := srv.businessRepo.FindByUserID(ctx, actor.ID)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return emptyPage[*entity.Offer](req), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find business by user")
	}

	result, err := srv.offerRepo.List(ctx, repository.OfferListQuery{
		Filter:     filter,
		Page:       req,
		BusinessID: &business.ID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own offers")
	}

	return result, nil
}

// Get returns any existing offer to an authenticated actor. Unlike List it is not
// narrowed to public offers, so inactive and ended offers stay readable by id.
func (srv *offerService) Get(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Offer, error) {
	if err := policy.Authorize(policy.SubjectOf(actor), offerKey(policy.ActionRetrieve), nil); err != nil {
		return nil, err
	}

	return srv.find(ctx, id)
}

// Create publishes an offer for the actor's business. Missing dates default to
// today and one week later.
func (srv *offerService) Create(ctx context.Context, actor *entity.User, input usecase.OfferInput) (*entity.Offer, error) {
	if err := policy.Authorize(policy.SubjectOf(actor), offerKey(policy.ActionCreate), nil); err != nil {
		return nil, err
	}

	business, err := srv.businessRepo.FindByUserID(ctx, actor.ID)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, domainerrors.ErrNoBusinessRegistered
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find business by user")
	}

	if err := requireOfferFields(input); err != nil {
		return nil, err
	}

	zero := decimal.Zero
	offer := &entity.Offer{
		BusinessID:    business.ID,
		OriginalPrice: &zero,
		DiscountPrice: decimal.Zero,
		StartDate:     srv.today(),
		IsActive:      true,
		Business:      business,
	}
	if input.EndDate == nil {
		start := offer.StartDate
		if input.StartDate != nil {
			start = *input.StartDate
		}
		offer.EndDate = start.AddDays(constants.DefaultOfferDurationDays)
	}

	if err := applyOfferInput(offer, input); err != nil {
		return nil, err
	}

	if err := srv.offerRepo.Create(ctx, offer); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrNoBusinessRegistered
		}

		return nil, errors.Wrap(err, "failed to create offer")
	}

	srv.log(ctx).InfoContext(ctx, "Offer created",
		slog.String("offer_id", offer.ID.String()),
		slog.String("business_id", business.ID.String()),
	)

	return offer, nil
}

// Update edits an offer of the actor's business.
func (srv *offerService) Update(ctx context.Context, actor *entity.User, id uuid.UUID, input usecase.OfferInput, partial bool) (*entity.Offer, error) {
	action := policy.ActionUpdate
	if partial {
		action = policy.ActionPartialUpdate
	}

	offer, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(policy.SubjectOf(actor), offerKey(action), offer); err != nil {
		return nil, err
	}

	if !partial {
		if err := requireOfferFields(input); err != nil {
			return nil, err
		}
	}

	if err := applyOfferInput(offer, input); err != nil {
		return nil, err
	}

	if err := srv.offerRepo.Update(ctx, offer); err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, domainerrors.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to update offer")
	}

	srv.log(ctx).InfoContext(ctx, "Offer updated",
		slog.String("offer_id", offer.ID.String()),
		slog.Bool("partial", partial),
	)

	return offer, nil
}

// Delete removes an offer of the actor's business.
func (srv *offerService) Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	offer, err := srv.find(ctx, id)
	if err != nil {
		return err
	}

	if err := policy.Authorize(policy.SubjectOf(actor), offerKey(policy.ActionDestroy), offer); err != nil {
		return err
	}

	if err := srv.offerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return domainerrors.ErrOfferNotFound
		}

		return errors.Wrap(err, "failed to delete offer")
	}

	srv.log(ctx).InfoContext(ctx, "Offer deleted", slog.String("offer_id", id.String()))

	return nil
}

func (srv *offerService) find(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	offer, err := srv.offerRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrOfferNotFound) {
		return nil, domainerrors.ErrOfferNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find offer")
	}

	return offer, nil
}

// requireOfferFields checks the fields a full write must carry.
func requireOfferFields(input usecase.OfferInput) error {
	var missing []string
	if input.Title == nil || strings.TrimSpace(*input.Title) == "" {
		missing = append(missing, "title")
	}
	if input.Description == nil || strings.TrimSpace(*input.Description) == "" {
		missing = append(missing, "description")
	}

	if len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("required: " + strings.Join(missing, ", "))
	}

	return nil
}

// applyOfferInput copies the provided fields onto offer and checks prices and the date window.
func applyOfferInput(offer *entity.Offer, input usecase.OfferInput) error {
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return domainerrors.ErrValidationFailed.WithDetails("title: may not be blank")
		}
		offer.Title = title
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return domainerrors.ErrValidationFailed.WithDetails("description: may not be blank")
		}
		offer.Description = description
	}

	switch {
	case input.ClearOriginalPrice:
		offer.OriginalPrice = nil
	case input.OriginalPrice != nil:
		if err := validatePrice("original_price", *input.OriginalPrice); err != nil {
			return err
		}
		price := *input.OriginalPrice
		offer.OriginalPrice = &price
	}

	if input.DiscountPrice != nil {
		if err := validatePrice("discount_price", *input.DiscountPrice); err != nil {
			return err
		}
		offer.DiscountPrice = *input.DiscountPrice
	}

	applyOptional(&offer.ImageURL, input.ImageURL)

	if input.StartDate != nil {
		offer.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		offer.EndDate = *input.EndDate
	}
	if offer.EndDate.Before(offer.StartDate) {
		return domainerrors.ErrValidationFailed.WithDetails("end_date: must not be before start_date")
	}

	if input.IsActive != nil {
		offer.IsActive = *input.IsActive
	}

	return nil
}

// validatePrice enforces numeric(10,2): non-negative, at most two decimals, below 10^8.
func validatePrice(field string, price decimal.Decimal) error {
	switch {
	case price.IsNegative():
		return domainerrors.ErrValidationFailed.WithDetails(field + ": must not be negative")
	case !price.Equal(price.Round(2)):
		return domainerrors.ErrValidationFailed.WithDetails(field + ": at most two decimal places")
	case price.GreaterThanOrEqual(maxPrice):
		return domainerrors.ErrValidationFailed.WithDetails(field + ": too large")
	}

	return nil
}
