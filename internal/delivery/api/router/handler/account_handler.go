package handler

import (
	"log/slog"
	"net/http"

	"github.com/antoniopd1/mercado-local-mex/internal/delivery/api/middleware"
	"github.com/antoniopd1/mercado-local-mex/internal/delivery/api/response"
	domainerrors "github.com/antoniopd1/mercado-local-mex/internal/domain/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	EntitlementUC usecase.EntitlementUsecase
	Logger        *slog.Logger
}

// AccountHandler serves the caller's own record and staff entitlement grants.
type AccountHandler struct {
	entitlementUC usecase.EntitlementUsecase
	logger        *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		entitlementUC: params.EntitlementUC,
		logger:        params.Logger,
	}
}

// GrantEntitlementRequest is the body of an administrative grant.
type GrantEntitlementRequest struct {
	Granted *bool `json:"granted" validate:"required"`
}

// Me handles GET /api/me
func (h *AccountHandler) Me(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidCredential)
	}

	return response.Success(c, http.StatusOK, user)
}

// GrantEntitlement handles PUT /api/admin/users/:id/entitlement
func (h *AccountHandler) GrantEntitlement(c echo.Context) error {
	actor, _ := middleware.GetUser(c)

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrUserNotFound)
	}

	var req GrantEntitlementRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid entitlement input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	user, err := h.entitlementUC.GrantAdministratively(c.Request().Context(), actor, userID, *req.Granted)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}
