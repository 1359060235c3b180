package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/antoniopd1/mercado-local-mex/config"
	deliverycontext "github.com/antoniopd1/mercado-local-mex/internal/delivery/context"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/constants"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/repository"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/service"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// errMalformedMessage marks messages that no redelivery can fix.
var errMalformedMessage = errors.New("malformed claims sync message")

// tokenVerifier validates the OIDC token of a push request.
type tokenVerifier func(req *http.Request) error

// PushHandler applies queued claims resyncs delivered by Pub/Sub push.
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    tokenVerifier
	logger         *slog.Logger
	claimsUC       usecase.ClaimsUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	ClaimsUC usecase.ClaimsUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Push requests carry an OIDC token only when Google delivers them
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		claimsUC:       params.ClaimsUC,
	}
}

// HandlePush answers 200 to acknowledge a message and 503 to have Pub/Sub redeliver it.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	event, userID, err := decodeClaimsSyncEvent(&pushMsg)
	if err != nil {
		logger.Error("[Worker] Dropping claims sync message",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing claims sync",
		slog.String("user_id", event.UserID),
		slog.String("reason", event.Reason),
	)

	if err := h.claimsUC.Resync(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			reqLogger.Warn("[Worker] User no longer exists, dropping claims sync",
				slog.String("user_id", event.UserID),
			)

			return c.NoContent(http.StatusOK)
		}

		reqLogger.Error("[Worker] Claims sync failed, requesting redelivery",
			slog.String("user_id", event.UserID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Claims sync applied", slog.String("user_id", event.UserID))

	return c.NoContent(http.StatusOK)
}

func decodeClaimsSyncEvent(pushMsg *PubSubMessage) (*service.ClaimsSyncEvent, uuid.UUID, error) {
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return nil, uuid.Nil, errors.Wrap(errMalformedMessage, err.Error())
	}

	var event service.ClaimsSyncEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, uuid.Nil, errors.Wrap(errMalformedMessage, err.Error())
	}

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return nil, uuid.Nil, errors.Wrapf(errMalformedMessage, "user_id %q", event.UserID)
	}

	return &event, userID, nil
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.ClaimsSyncEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
