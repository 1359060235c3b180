package impl

import (
	"context"
	"testing"
	"time"

	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
	domainerrors "github.com/antoniopd1/mercado-local-mex/internal/domain/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/repository"
	mockRepo "github.com/antoniopd1/mercado-local-mex/internal/mocks/repository"
	"github.com/antoniopd1/mercado-local-mex/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 03:00 UTC on the 14th is still the 13th in central Mexico.
var offerNow = time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC)

func offerToday() entity.Date {
	return entity.NewDate(time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC))
}

// offerServiceFixtures holds all test dependencies for offer service tests.
type offerServiceFixtures struct {
	service      usecase.OfferUsecase
	offerRepo    *mockRepo.MockOfferRepository
	businessRepo *mockRepo.MockBusinessRepository
}

func createTestOfferService(t *testing.T) offerServiceFixtures {
	offerRepo := mockRepo.NewMockOfferRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)

	srv := NewOfferService(OfferServiceParams{
		OfferRepo:    offerRepo,
		BusinessRepo: businessRepo,
		Logger:       testLogger(),
	}).(*offerService)
	srv.location = time.FixedZone("CST", -6*60*60)
	srv.now = func() time.Time { return offerNow }

	return offerServiceFixtures{
		service:      srv,
		offerRepo:    offerRepo,
		businessRepo: businessRepo,
	}
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)

	return &d
}

func boolPtr(b bool) *bool {
	return &b
}

func datePtr(s string) *entity.Date {
	d, err := entity.ParseDate(s)
	if err != nil {
		panic(err)
	}

	return &d
}

func TestOfferService_List_UsesLocalToday(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()

	fx.offerRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(q repository.OfferListQuery) bool {
			return q.PublicOn != nil && q.PublicOn.String() == "2026-03-13" &&
				q.BusinessID == nil && q.Page.Page == 1 && q.Page.PageSize == 20
		})).
		Return(&entity.Page[*entity.Offer]{}, nil)

	_, err := fx.service.List(ctx, &entity.User{ID: uuid.New()}, entity.ListFilter{}, entity.PageRequest{})
	require.NoError(t, err)
}

func TestOfferService_MyOffers(t *testing.T) {
	t.Run("not entitled gets empty page", func(t *testing.T) {
		fx := createTestOfferService(t)

		page, err := fx.service.MyOffers(context.Background(), &entity.User{ID: uuid.New()}, entity.ListFilter{}, entity.PageRequest{Page: 3})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.NotNil(t, page.Items)
		assert.Equal(t, 3, page.Page)
		assert.Zero(t, page.Total)
	})

	t.Run("anonymous is rejected", func(t *testing.T) {
		fx := createTestOfferService(t)

		_, err := fx.service.MyOffers(context.Background(), nil, entity.ListFilter{}, entity.PageRequest{})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredential)
	})

	t.Run("no business gets empty page", func(t *testing.T) {
		fx := createTestOfferService(t)
		ctx := context.Background()
		actor := entitledOwner()

		fx.businessRepo.EXPECT().FindByUserID(ctx, actor.ID).Return(nil, repository.ErrBusinessNotFound)

		page, err := fx.service.MyOffers(ctx, actor, entity.ListFilter{}, entity.PageRequest{})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
	})

	t.Run("lists every own offer", func(t *testing.T) {
		fx := createTestOfferService(t)
		ctx := context.Background()
		actor := entitledOwner()
		business := &entity.Business{ID: uuid.New(), UserID: actor.ID}
		expired := &entity.Offer{ID: uuid.New(), BusinessID: business.ID, EndDate: offerToday().AddDays(-5)}

		fx.businessRepo.EXPECT().FindByUserID(ctx, actor.ID).Return(business, nil)
		fx.offerRepo.EXPECT().
			List(ctx, repository.OfferListQuery{
				Page:       entity.PageRequest{Page: 1, PageSize: 20},
				BusinessID: &business.ID,
			}).
			Return(&entity.Page[*entity.Offer]{Items: []*entity.Offer{expired}, Total: 1}, nil)

		page, err := fx.service.MyOffers(ctx, actor, entity.ListFilter{}, entity.PageRequest{})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, expired.ID, page.Items[0].ID)
	})
}

func TestOfferService_Get_ReturnsAnyExistingOffer(t *testing.T) {
	owner := &entity.User{ID: uuid.New()}
	business := &entity.Business{ID: uuid.New(), UserID: owner.ID, Owner: owner}
	entitledBusiness := &entity.Business{ID: uuid.New(), UserID: uuid.New(), Owner: entitledOwner()}

	tests := []struct {
		name  string
		offer *entity.Offer
		actor *entity.User
	}{
		{
			name:  "public offer",
			offer: &entity.Offer{ID: uuid.New(), IsActive: true, EndDate: offerToday(), Business: entitledBusiness},
			actor: &entity.User{ID: uuid.New()},
		},
		{
			name:  "ended yesterday",
			offer: &entity.Offer{ID: uuid.New(), IsActive: true, EndDate: offerToday().AddDays(-1), Business: entitledBusiness},
			actor: &entity.User{ID: uuid.New()},
		},
		{
			name:  "inactive offer of another owner",
			offer: &entity.Offer{ID: uuid.New(), EndDate: offerToday(), Business: entitledBusiness},
			actor: &entity.User{ID: uuid.New()},
		},
		{
			name:  "owner lapsed",
			offer: &entity.Offer{ID: uuid.New(), IsActive: true, EndDate: offerToday(), Business: business},
			actor: &entity.User{ID: uuid.New()},
		},
		{
			name:  "lapsed owner sees own",
			offer: &entity.Offer{ID: uuid.New(), EndDate: offerToday().AddDays(-30), Business: business},
			actor: owner,
		},
		{
			name:  "staff",
			offer: &entity.Offer{ID: uuid.New(), Business: business},
			actor: &entity.User{ID: uuid.New(), IsStaff: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOfferService(t)
			ctx := context.Background()

			fx.offerRepo.EXPECT().FindByID(ctx, tt.offer.ID).Return(tt.offer, nil)

			offer, err := fx.service.Get(ctx, tt.actor, tt.offer.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.offer.ID, offer.ID)
		})
	}
}

func TestOfferService_Get_Missing(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.offerRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrOfferNotFound)

	offer, err := fx.service.Get(ctx, &entity.User{ID: uuid.New()}, id)
	require.Error(t, err)
	assert.Nil(t, offer)
	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
}

func TestOfferService_Create_Defaults(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	actor := entitledOwner()
	business := &entity.Business{ID: uuid.New(), UserID: actor.ID}

	fx.businessRepo.EXPECT().FindByUserID(ctx, actor.ID).Return(business, nil)
	fx.offerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Offer")).Return(nil)

	offer, err := fx.service.Create(ctx, actor, usecase.OfferInput{
		Title:       strPtr("2x1 en mezclilla"),
		Description: strPtr("Solo esta semana"),
	})
	require.NoError(t, err)
	assert.Equal(t, business.ID, offer.BusinessID)
	assert.Equal(t, "2026-03-13", offer.StartDate.String())
	assert.Equal(t, "2026-03-20", offer.EndDate.String())
	assert.True(t, offer.IsActive)
	require.NotNil(t, offer.OriginalPrice)
	assert.True(t, offer.OriginalPrice.IsZero())
	assert.True(t, offer.DiscountPrice.IsZero())
}

func TestOfferService_Create_EndDefaultsFromGivenStart(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	actor := entitledOwner()
	business := &entity.Business{ID: uuid.New(), UserID: actor.ID}

	fx.businessRepo.EXPECT().FindByUserID(ctx, actor.ID).Return(business, nil)
	fx.offerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Offer")).Return(nil)

	offer, err := fx.service.Create(ctx, actor, usecase.OfferInput{
		Title:         strPtr("Rebajas"),
		Description:   strPtr("Fin de temporada"),
		StartDate:     datePtr("2026-04-01"),
		OriginalPrice: decPtr("350.00"),
		DiscountPrice: decPtr("299.99"),
		IsActive:      boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-04-08", offer.EndDate.String())
	assert.Equal(t, "350", offer.OriginalPrice.String())
	assert.Equal(t, "299.99", offer.DiscountPrice.String())
	assert.False(t, offer.IsActive)
}

func TestOfferService_Create_Rejections(t *testing.T) {
	valid := func() usecase.OfferInput {
		return usecase.OfferInput{Title: strPtr("t"), Description: strPtr("d")}
	}

	tests := []struct {
		name   string
		mutate func(*usecase.OfferInput)
	}{
		{name: "missing title", mutate: func(in *usecase.OfferInput) { in.Title = nil }},
		{name: "negative price", mutate: func(in *usecase.OfferInput) { in.DiscountPrice = decPtr("-1") }},
		{name: "three decimals", mutate: func(in *usecase.OfferInput) { in.OriginalPrice = decPtr("10.001") }},
		{name: "too large", mutate: func(in *usecase.OfferInput) { in.DiscountPrice = decPtr("100000000") }},
		{
			name: "end before start",
			mutate: func(in *usecase.OfferInput) {
				in.StartDate = datePtr("2026-05-10")
				in.EndDate = datePtr("2026-05-09")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOfferService(t)
			ctx := context.Background()
			actor := entitledOwner()

			fx.businessRepo.EXPECT().
				FindByUserID(ctx, actor.ID).
				Return(&entity.Business{ID: uuid.New(), UserID: actor.ID}, nil)

			input := valid()
			tt.mutate(&input)

			_, err := fx.service.Create(ctx, actor, input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestOfferService_Create_WithoutBusiness(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	actor := entitledOwner()

	fx.businessRepo.EXPECT().FindByUserID(ctx, actor.ID).Return(nil, repository.ErrBusinessNotFound)

	_, err := fx.service.Create(ctx, actor, usecase.OfferInput{Title: strPtr("t"), Description: strPtr("d")})
	assert.ErrorIs(t, err, domainerrors.ErrNoBusinessRegistered)
}

func TestOfferService_Create_RequiresEntitlement(t *testing.T) {
	fx := createTestOfferService(t)

	_, err := fx.service.Create(context.Background(), &entity.User{ID: uuid.New()}, usecase.OfferInput{})
	assert.ErrorIs(t, err, domainerrors.ErrNotBusinessOwner)
}

func TestOfferService_Update(t *testing.T) {
	actor := entitledOwner()
	business := &entity.Business{ID: uuid.New(), UserID: actor.ID}

	t.Run("partial clears original price", func(t *testing.T) {
		fx := createTestOfferService(t)
		ctx := context.Background()
		offer := &entity.Offer{
			ID:            uuid.New(),
			BusinessID:    business.ID,
			Title:         "Old",
			OriginalPrice: decPtr("20"),
			StartDate:     offerToday(),
			EndDate:       offerToday().AddDays(7),
			Business:      business,
		}

		fx.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)
		fx.offerRepo.EXPECT().Update(ctx, offer).Return(nil)

		updated, err := fx.service.Update(ctx, actor, offer.ID, usecase.OfferInput{ClearOriginalPrice: true}, true)
		require.NoError(t, err)
		assert.Nil(t, updated.OriginalPrice)
		assert.Equal(t, "Old", updated.Title)
	})

	t.Run("other owner is rejected", func(t *testing.T) {
		fx := createTestOfferService(t)
		ctx := context.Background()
		offer := &entity.Offer{ID: uuid.New(), Business: &entity.Business{ID: uuid.New(), UserID: uuid.New()}}

		fx.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)

		_, err := fx.service.Update(ctx, actor, offer.ID, usecase.OfferInput{Title: strPtr("x")}, true)
		assert.ErrorIs(t, err, domainerrors.ErrNotOfferObjectOwner)
	})

	t.Run("moving start past end is rejected", func(t *testing.T) {
		fx := createTestOfferService(t)
		ctx := context.Background()
		offer := &entity.Offer{
			ID:        uuid.New(),
			StartDate: offerToday(),
			EndDate:   offerToday().AddDays(2),
			Business:  business,
		}

		fx.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)

		_, err := fx.service.Update(ctx, actor, offer.ID, usecase.OfferInput{StartDate: datePtr("2026-03-20")}, true)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestOfferService_Delete(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	actor := entitledOwner()
	offer := &entity.Offer{ID: uuid.New(), Business: &entity.Business{ID: uuid.New(), UserID: actor.ID}}

	fx.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)
	fx.offerRepo.EXPECT().Delete(ctx, offer.ID).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, actor, offer.ID))
}

func TestValidatePrice(t *testing.T) {
	assert.NoError(t, validatePrice("p", decimal.RequireFromString("0")))
	assert.NoError(t, validatePrice("p", decimal.RequireFromString("99999999.99")))
	assert.NoError(t, validatePrice("p", decimal.RequireFromString("12.50")))
	assert.Error(t, validatePrice("p", decimal.RequireFromString("100000000.00")))
	assert.Error(t, validatePrice("p", decimal.RequireFromString("0.125")))
	assert.Error(t, validatePrice("p", decimal.RequireFromString("-0.01")))
}
