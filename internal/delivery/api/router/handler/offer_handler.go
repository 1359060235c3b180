package handler

import (
	"log/slog"
	"net/http"

	"github.com/antoniopd1/mercado-local-mex/internal/delivery/api/middleware"
	"github.com/antoniopd1/mercado-local-mex/internal/delivery/api/response"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
	domainerrors "github.com/antoniopd1/mercado-local-mex/internal/domain/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC usecase.OfferUsecase
	Logger  *slog.Logger
}

// OfferHandler serves /api/offers.
type OfferHandler struct {
	offerUC usecase.OfferUsecase
	logger  *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		offerUC: params.OfferUC,
		logger:  params.Logger,
	}
}

// nullableDecimal tells an explicit null apart from an absent field.
type nullableDecimal struct {
	Set   bool
	Value *decimal.Decimal
}

func (n *nullableDecimal) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil

		return nil
	}

	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return errors.WithStack(err)
	}
	n.Value = &d

	return nil
}

// OfferRequest is the writable representation of an offer. Prices accept
// JSON numbers or strings; original_price may be null to clear it.
type OfferRequest struct {
	Title         *string          `json:"title" validate:"omitempty,max=200"`
	Description   *string          `json:"description"`
	OriginalPrice nullableDecimal  `json:"original_price" validate:"-"`
	DiscountPrice *decimal.Decimal `json:"discount_price" validate:"-"`
	ImageURL      *string          `json:"image" validate:"omitempty,url"`
	StartDate     *entity.Date     `json:"start_date" validate:"-"`
	EndDate       *entity.Date     `json:"end_date" validate:"-"`
	IsActive      *bool            `json:"is_active"`
}

func (r *OfferRequest) toInput() usecase.OfferInput {
	return usecase.OfferInput{
		Title:              r.Title,
		Description:        r.Description,
		OriginalPrice:      r.OriginalPrice.Value,
		ClearOriginalPrice: r.OriginalPrice.Set && r.OriginalPrice.Value == nil,
		DiscountPrice:      r.DiscountPrice,
		ImageURL:           r.ImageURL,
		StartDate:          r.StartDate,
		EndDate:            r.EndDate,
		IsActive:           r.IsActive,
	}
}

// List handles GET /api/offers/
func (h *OfferHandler) List(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	filter, page, err := listParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.offerUC.List(c.Request().Context(), user, filter, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, result)
}

// MyOffers handles GET /api/offers/my_offers/
func (h *OfferHandler) MyOffers(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	filter, page, err := listParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.offerUC.MyOffers(c.Request().Context(), user, filter, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, result)
}

// Get handles GET /api/offers/:id/
func (h *OfferHandler) Get(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	id, err := pathID(c, domainerrors.ErrOfferNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := h.offerUC.Get(c.Request().Context(), user, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offer)
}

// Create handles POST /api/offers/
func (h *OfferHandler) Create(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	var req OfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid offer input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	offer, err := h.offerUC.Create(c.Request().Context(), user, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, offer)
}

// Update handles PUT /api/offers/:id/
func (h *OfferHandler) Update(c echo.Context) error {
	return h.update(c, false)
}

// PartialUpdate handles PATCH /api/offers/:id/
func (h *OfferHandler) PartialUpdate(c echo.Context) error {
	return h.update(c, true)
}

func (h *OfferHandler) update(c echo.Context, partial bool) error {
	user, _ := middleware.GetUser(c)

	id, err := pathID(c, domainerrors.ErrOfferNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req OfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid offer input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	offer, err := h.offerUC.Update(c.Request().Context(), user, id, req.toInput(), partial)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offer)
}

// Delete handles DELETE /api/offers/:id/
func (h *OfferHandler) Delete(c echo.Context) error {
	user, _ := middleware.GetUser(c)

	id, err := pathID(c, domainerrors.ErrOfferNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.offerUC.Delete(c.Request().Context(), user, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
