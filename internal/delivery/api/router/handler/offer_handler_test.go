package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
	domainerrors "github.com/antoniopd1/mercado-local-mex/internal/domain/errors"
	mockUC "github.com/antoniopd1/mercado-local-mex/internal/mocks/usecase"
	"github.com/antoniopd1/mercado-local-mex/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOfferHandler(t *testing.T) (*OfferHandler, *mockUC.MockOfferUsecase) {
	offerUC := mockUC.NewMockOfferUsecase(t)

	return NewOfferHandler(OfferHandlerParams{OfferUC: offerUC}), offerUC
}

func TestOfferRequest_ToInput(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantClear bool
		wantPrice *decimal.Decimal
	}{
		{name: "absent original price", body: `{"title":"2x1"}`},
		{name: "explicit null clears", body: `{"original_price":null}`, wantClear: true},
		{name: "string price", body: `{"original_price":"350.50"}`, wantPrice: decPtr("350.50")},
		{name: "numeric price", body: `{"original_price":120}`, wantPrice: decPtr("120")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req OfferRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			input := req.toInput()
			assert.Equal(t, tt.wantClear, input.ClearOriginalPrice)
			if tt.wantPrice == nil {
				assert.Nil(t, input.OriginalPrice)

				return
			}
			require.NotNil(t, input.OriginalPrice)
			assert.True(t, tt.wantPrice.Equal(*input.OriginalPrice))
		})
	}
}

func TestOfferHandler_Create(t *testing.T) {
	h, offerUC := createTestOfferHandler(t)
	user := testOwner()
	body := `{"title":"Rebajas","discount_price":"99.90","start_date":"2026-04-01","is_active":true}`
	c, rec := newTestContext(t, http.MethodPost, "/api/offers/", body, user)

	start, err := entity.ParseDate("2026-04-01")
	require.NoError(t, err)

	offerUC.EXPECT().
		Create(c.Request().Context(), user, mock.MatchedBy(func(in usecase.OfferInput) bool {
			return *in.Title == "Rebajas" &&
				in.DiscountPrice.Equal(decimal.RequireFromString("99.90")) &&
				in.StartDate.Equal(start.Time) &&
				in.EndDate == nil &&
				*in.IsActive &&
				!in.ClearOriginalPrice
		})).
		Return(&entity.Offer{ID: uuid.New(), Title: "Rebajas", StartDate: start, EndDate: start.AddDays(7)}, nil)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var offer struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &offer))
	assert.Equal(t, "2026-04-01", offer.StartDate)
	assert.Equal(t, "2026-04-08", offer.EndDate)
}

func TestOfferHandler_Create_InvalidDate(t *testing.T) {
	h, _ := createTestOfferHandler(t)
	c, rec := newTestContext(t, http.MethodPost, "/api/offers/", `{"title":"x","start_date":"01/04/2026"}`, testOwner())

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOfferHandler_Create_NoBusinessRegistered(t *testing.T) {
	h, offerUC := createTestOfferHandler(t)
	c, rec := newTestContext(t, http.MethodPost, "/api/offers/", `{"title":"x","discount_price":"1"}`, testOwner())

	offerUC.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNoBusinessRegistered)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "NO_BUSINESS_REGISTERED", decodeEnvelope(t, rec).Error.Code)
}

func TestOfferHandler_MyOffers(t *testing.T) {
	h, offerUC := createTestOfferHandler(t)
	user := testOwner()
	c, rec := newTestContext(t, http.MethodGet, "/api/offers/my_offers/?page=3", "", user)

	offerUC.EXPECT().
		MyOffers(c.Request().Context(), user, entity.ListFilter{}, entity.PageRequest{Page: 3}).
		Return(&entity.Page[*entity.Offer]{Page: 3, PageSize: 20}, nil)

	require.NoError(t, h.MyOffers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"has_next":false`)
}

func TestOfferHandler_PartialUpdate_ClearsOriginalPrice(t *testing.T) {
	h, offerUC := createTestOfferHandler(t)
	user := testOwner()
	id := uuid.New()
	c, rec := newTestContext(t, http.MethodPatch, "/api/offers/"+id.String()+"/", `{"original_price":null}`, user)
	withID(c, id.String())

	offerUC.EXPECT().
		Update(c.Request().Context(), user, id, usecase.OfferInput{ClearOriginalPrice: true}, true).
		Return(&entity.Offer{ID: id}, nil)

	require.NoError(t, h.PartialUpdate(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOfferHandler_Get_InactiveOffer(t *testing.T) {
	h, offerUC := createTestOfferHandler(t)
	user := testOwner()
	id := uuid.New()
	c, rec := newTestContext(t, http.MethodGet, "/api/offers/"+id.String()+"/", "", user)
	withID(c, id.String())

	offerUC.EXPECT().Get(c.Request().Context(), user, id).Return(&entity.Offer{ID: id, Title: "Fin de temporada"}, nil)

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var offer struct {
		ID       uuid.UUID `json:"id"`
		IsActive bool      `json:"is_active"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &offer))
	assert.Equal(t, id, offer.ID)
	assert.False(t, offer.IsActive)
}

func TestOfferHandler_Get_Missing(t *testing.T) {
	h, offerUC := createTestOfferHandler(t)
	id := uuid.New()
	c, rec := newTestContext(t, http.MethodGet, "/api/offers/"+id.String()+"/", "", testOwner())
	withID(c, id.String())

	offerUC.EXPECT().Get(mock.Anything, mock.Anything, id).Return(nil, domainerrors.ErrOfferNotFound)

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "OFFER_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestOfferHandler_Delete_MalformedID(t *testing.T) {
	h, _ := createTestOfferHandler(t)
	c, rec := newTestContext(t, http.MethodDelete, "/api/offers/42/", "", testOwner())
	withID(c, "42")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)

	return &d
}
