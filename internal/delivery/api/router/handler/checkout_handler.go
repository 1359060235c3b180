package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/antoniopd1/mercado-local-mex/internal/delivery/api/middleware"
	"github.com/antoniopd1/mercado-local-mex/internal/delivery/api/response"
	domainerrors "github.com/antoniopd1/mercado-local-mex/internal/domain/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderStripeSignature carries the webhook signature of the payment processor.
const HeaderStripeSignature = "Stripe-Signature"

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	CheckoutUC     usecase.CheckoutUsecase
	PaymentEventUC usecase.PaymentEventUsecase
	Logger         *slog.Logger
}

// PaymentHandler serves checkout creation and the payment webhook.
type PaymentHandler struct {
	checkoutUC     usecase.CheckoutUsecase
	paymentEventUC usecase.PaymentEventUsecase
	logger         *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		checkoutUC:     params.CheckoutUC,
		paymentEventUC: params.PaymentEventUC,
		logger:         params.Logger,
	}
}

// CheckoutSessionResponse is the body of a created checkout session.
type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
}

// WebhookResponse acknowledges a processed payment event.
type WebhookResponse struct {
	EventID   string `json:"event_id"`
	EventType string `json:"event_type"`
	Outcome   string `json:"outcome"`
}

// CreateCheckoutSession handles POST /api/create-checkout-session/
func (h *PaymentHandler) CreateCheckoutSession(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidCredential)
	}

	sessionID, err := h.checkoutUC.CreateCheckoutSession(c.Request().Context(), user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CheckoutSessionResponse{SessionID: sessionID})
}

// Webhook handles POST /api/stripe-webhook/. The raw body is needed for
// signature verification, so it is never bound.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidWebhook.WithDetails("unreadable body"))
	}

	result, err := h.paymentEventUC.HandleWebhook(
		c.Request().Context(),
		payload,
		c.Request().Header.Get(HeaderStripeSignature),
	)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, WebhookResponse{
		EventID:   result.EventID,
		EventType: result.EventType,
		Outcome:   result.Outcome,
	})
}
