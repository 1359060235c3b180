package handler

import (
	"log/slog"
	"net/http"

	"github.com/antoniopd1/mercado-local-mex/internal/delivery/api/middleware"
	"github.com/antoniopd1/mercado-local-mex/internal/delivery/api/response"
	domainerrors "github.com/antoniopd1/mercado-local-mex/internal/domain/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
	Logger     *slog.Logger
}

// BusinessHandler serves /api/businesses.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
	logger     *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		businessUC: params.BusinessUC,
		logger:     params.Logger,
	}
}

// BusinessRequest is the writable representation of a business.
// Absent fields are left untouched on PATCH; an empty string clears an optional field.
type BusinessRequest struct {
	Name              *string `json:"name" validate:"omitempty,max=200"`
	WhatTheySell      *string `json:"what_they_sell" validate:"omitempty,max=255"`
	Hours             *string `json:"hours" validate:"omitempty,max=100"`
	Municipality      *string `json:"municipality" validate:"omitempty,municipality"`
	StreetAddress     *string `json:"street_address" validate:"omitempty,max=255"`
	LocationType      *string `json:"location_type" validate:"omitempty,location_type"`
	ContactPhone      *string `json:"contact_phone" validate:"omitempty,max=20"`
	FacebookUsername  *string `json:"social_media_facebook_username" validate:"omitempty,max=100"`
	InstagramUsername *string `json:"social_media_instagram_username" validate:"omitempty,max=100"`
	TiktokUsername    *string `json:"social_media_tiktok_username" validate:"omitempty,max=100"`
	LogoURL           *string `json:"logo" validate:"omitempty,url"`
	BusinessType      *string `json:"business_type" validate:"omitempty,business_type"`
}

func (r *BusinessRequest) toInput() usecase.BusinessInput {
	return usecase.BusinessInput{
		Name:              r.Name,
		WhatTheySell:      r.WhatTheySell,
		Hours:             r.Hours,
		Municipality:      r.Municipality,
		StreetAddress:     r.StreetAddress,
		LocationType:      r.LocationType,
		ContactPhone:      r.ContactPhone,
		FacebookUsername:  r.FacebookUsername,
		InstagramUsername: r.InstagramUsername,
		TiktokUsername:    r.TiktokUsername,
		LogoURL:           r.LogoURL,
		BusinessType:      r.BusinessType,
	}
}

// List handles GET /api/businesses/
func (h *BusinessHandler) List(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	filter, page, err := listParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.businessUC.List(c.Request().Context(), user, filter, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, result)
}

// Get handles GET /api/businesses/:id/
func (h *BusinessHandler) Get(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	id, err := pathID(c, domainerrors.ErrBusinessNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	business, err := h.businessUC.Get(c.Request().Context(), user, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, business)
}

// MyBusiness handles GET /api/businesses/my_business/
func (h *BusinessHandler) MyBusiness(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	business, err := h.businessUC.MyBusiness(c.Request().Context(), user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, business)
}

// Create handles POST /api/businesses/
func (h *BusinessHandler) Create(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	var req BusinessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid business input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	business, err := h.businessUC.Create(c.Request().Context(), user, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, business)
}

// Update handles PUT /api/businesses/:id/
func (h *BusinessHandler) Update(c echo.Context) error {
	return h.update(c, false)
}

// PartialUpdate handles PATCH /api/businesses/:id/
func (h *BusinessHandler) PartialUpdate(c echo.Context) error {
	return h.update(c, true)
}

func (h *BusinessHandler) update(c echo.Context, partial bool) error {
	user, _ := middleware.GetUser(c)

	id, err := pathID(c, domainerrors.ErrBusinessNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req BusinessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid business input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	business, err := h.businessUC.Update(c.Request().Context(), user, id, req.toInput(), partial)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, business)
}

// Delete handles DELETE /api/businesses/:id/
func (h *BusinessHandler) Delete(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	id, err := pathID(c, domainerrors.ErrBusinessNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.businessUC.Delete(c.Request().Context(), user, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// StorefrontQR handles GET /api/businesses/:id/qr and returns a PNG.
func (h *BusinessHandler) StorefrontQR(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	id, err := pathID(c, domainerrors.ErrBusinessNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.businessUC.StorefrontQR(c.Request().Context(), user, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="storefront-`+id.String()+`.png"`)

	return c.Blob(http.StatusOK, "image/png", png)
}
