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
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestBusinessHandler(t *testing.T) (*BusinessHandler, *mockUC.MockBusinessUsecase) {
	businessUC := mockUC.NewMockBusinessUsecase(t)

	return NewBusinessHandler(BusinessHandlerParams{BusinessUC: businessUC}), businessUC
}

func TestBusinessHandler_List(t *testing.T) {
	h, businessUC := createTestBusinessHandler(t)
	user := testOwner()
	c, rec := newTestContext(t, http.MethodGet, "/api/businesses/?search=pan&municipality=LEON&page=2&page_size=5", "", user)

	business := &entity.Business{ID: uuid.New(), UserID: user.ID, Name: "Panadería Lupita"}
	businessUC.EXPECT().
		List(c.Request().Context(), user,
			entity.ListFilter{Search: "pan", Municipality: "LEON"},
			entity.PageRequest{Page: 2, PageSize: 5}).
		Return(&entity.Page[*entity.Business]{Items: []*entity.Business{business}, Total: 11, Page: 2, PageSize: 5}, nil)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Items    []entity.Business `json:"items"`
		Count    int64             `json:"count"`
		Page     int               `json:"page"`
		PageSize int               `json:"page_size"`
		HasNext  bool              `json:"has_next"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
	require.Len(t, data.Items, 1)
	assert.Equal(t, "Panadería Lupita", data.Items[0].Name)
	assert.Equal(t, int64(11), data.Count)
	assert.Equal(t, 2, data.Page)
	assert.Equal(t, 5, data.PageSize)
	assert.True(t, data.HasNext)
}

func TestBusinessHandler_List_EmptyPageRendersEmptyArray(t *testing.T) {
	h, businessUC := createTestBusinessHandler(t)
	user := testOwner()
	c, rec := newTestContext(t, http.MethodGet, "/api/businesses/", "", user)

	businessUC.EXPECT().
		List(c.Request().Context(), user, entity.ListFilter{}, entity.PageRequest{}).
		Return(&entity.Page[*entity.Business]{Page: 1, PageSize: 20}, nil)

	require.NoError(t, h.List(c))
	assert.Contains(t, rec.Body.String(), `"items":[]`)
}

func TestBusinessHandler_List_InvalidPage(t *testing.T) {
	h, _ := createTestBusinessHandler(t)
	c, rec := newTestContext(t, http.MethodGet, "/api/businesses/?page=abc", "", testOwner())

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Equal(t, "page must be a positive integer", env.Error.Details)
}

func TestBusinessHandler_Create(t *testing.T) {
	h, businessUC := createTestBusinessHandler(t)
	user := testOwner()
	body := `{"name":"Tienda Lupita","what_they_sell":"Ropa","hours":"9-18","municipality":"moroleon",` +
		`"street_address":"Calle 1","location_type":"PLAZA_TEXTIL","business_type":"CALZADO"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/businesses/", body, user)

	businessUC.EXPECT().
		Create(c.Request().Context(), user, mock.MatchedBy(func(in usecase.BusinessInput) bool {
			return *in.Name == "Tienda Lupita" &&
				*in.Municipality == "moroleon" &&
				*in.BusinessType == "CALZADO" &&
				in.ContactPhone == nil
		})).
		Return(&entity.Business{ID: uuid.New(), UserID: user.ID, Name: "Tienda Lupita"}, nil)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestBusinessHandler_Create_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantDetails string
	}{
		{
			name:        "unknown municipality",
			body:        `{"name":"Tienda","municipality":"MONTERREY"}`,
			wantDetails: "municipality is not a valid municipality",
		},
		{
			name:        "unknown location type",
			body:        `{"name":"Tienda","location_type":"KIOSKO"}`,
			wantDetails: "location_type is not a valid location type",
		},
		{
			name:        "invalid logo url",
			body:        `{"logo":"not a url"}`,
			wantDetails: "logo must be a valid URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := createTestBusinessHandler(t)
			c, rec := newTestContext(t, http.MethodPost, "/api/businesses/", tt.body, testOwner())

			require.NoError(t, h.Create(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			env := decodeEnvelope(t, rec)
			assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
			assert.Equal(t, tt.wantDetails, env.Error.Details)
		})
	}
}

func TestBusinessHandler_Create_MalformedJSON(t *testing.T) {
	h, _ := createTestBusinessHandler(t)
	c, rec := newTestContext(t, http.MethodPost, "/api/businesses/", `{"name":`, testOwner())

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, rec).Error.Code)
}

func TestBusinessHandler_Create_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "not entitled", err: domainerrors.ErrNotBusinessOwner, wantStatus: http.StatusForbidden, wantCode: "NOT_BUSINESS_OWNER"},
		{name: "already exists", err: domainerrors.ErrBusinessAlreadyExists, wantStatus: http.StatusConflict, wantCode: "BUSINESS_ALREADY_EXISTS"},
		{
			name:       "missing fields",
			err:        domainerrors.ErrValidationFailed.WithDetails("required: name, hours"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, businessUC := createTestBusinessHandler(t)
			c, rec := newTestContext(t, http.MethodPost, "/api/businesses/", `{"name":"Tienda"}`, testOwner())

			businessUC.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			require.NoError(t, h.Create(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestBusinessHandler_Get_MalformedID(t *testing.T) {
	h, _ := createTestBusinessHandler(t)
	c, rec := newTestContext(t, http.MethodGet, "/api/businesses/abc/", "", testOwner())
	withID(c, "abc")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "BUSINESS_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestBusinessHandler_MyBusiness_NotFound(t *testing.T) {
	h, businessUC := createTestBusinessHandler(t)
	user := testOwner()
	c, rec := newTestContext(t, http.MethodGet, "/api/businesses/my_business/", "", user)

	businessUC.EXPECT().
		MyBusiness(c.Request().Context(), user).
		Return(nil, domainerrors.ErrNotFound.WithDetails("no business found for this user"))

	require.NoError(t, h.MyBusiness(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
	assert.Equal(t, "no business found for this user", env.Error.Details)
}

func TestBusinessHandler_Update(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		call        func(h *BusinessHandler, c echo.Context) error
		wantPartial bool
	}{
		{name: "put is a full update", method: http.MethodPut, call: (*BusinessHandler).Update},
		{name: "patch is partial", method: http.MethodPatch, call: (*BusinessHandler).PartialUpdate, wantPartial: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, businessUC := createTestBusinessHandler(t)
			user := testOwner()
			id := uuid.New()
			c, rec := newTestContext(t, tt.method, "/api/businesses/"+id.String()+"/", `{"hours":"10-20"}`, user)
			withID(c, id.String())

			businessUC.EXPECT().
				Update(c.Request().Context(), user, id, usecase.BusinessInput{Hours: strPtr("10-20")}, tt.wantPartial).
				Return(&entity.Business{ID: id, UserID: user.ID, Hours: "10-20"}, nil)

			require.NoError(t, tt.call(h, c))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestBusinessHandler_Update_NotObjectOwner(t *testing.T) {
	h, businessUC := createTestBusinessHandler(t)
	id := uuid.New()
	c, rec := newTestContext(t, http.MethodPatch, "/api/businesses/"+id.String()+"/", `{"hours":"10-20"}`, testOwner())
	withID(c, id.String())

	businessUC.EXPECT().
		Update(mock.Anything, mock.Anything, id, mock.Anything, true).
		Return(nil, domainerrors.ErrNotBusinessObjectOwner)

	require.NoError(t, h.PartialUpdate(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "NOT_OBJECT_OWNER", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestBusinessHandler_Delete(t *testing.T) {
	h, businessUC := createTestBusinessHandler(t)
	user := testOwner()
	id := uuid.New()
	c, rec := newTestContext(t, http.MethodDelete, "/api/businesses/"+id.String()+"/", "", user)
	withID(c, id.String())

	businessUC.EXPECT().Delete(c.Request().Context(), user, id).Return(nil)

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestBusinessHandler_StorefrontQR(t *testing.T) {
	h, businessUC := createTestBusinessHandler(t)
	user := testOwner()
	id := uuid.New()
	c, rec := newTestContext(t, http.MethodGet, "/api/businesses/"+id.String()+"/qr", "", user)
	withID(c, id.String())

	png := []byte{0x89, 'P', 'N', 'G'}
	businessUC.EXPECT().StorefrontQR(c.Request().Context(), user, id).Return(png, nil)

	require.NoError(t, h.StorefrontQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestBusinessHandler_UnexpectedErrorIsReturned(t *testing.T) {
	h, businessUC := createTestBusinessHandler(t)
	user := testOwner()
	id := uuid.New()
	c, _ := newTestContext(t, http.MethodGet, "/api/businesses/"+id.String()+"/", "", user)
	withID(c, id.String())

	businessUC.EXPECT().Get(c.Request().Context(), user, id).Return(nil, assert.AnError)

	err := h.Get(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
