package handler

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/antoniopd1/mercado-local-mex/config"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/constants"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/repository"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/service"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"
	mockUC "github.com/antoniopd1/mercado-local-mex/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockClaimsUsecase) {
	claimsUC := mockUC.NewMockClaimsUsecase(t)
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop

	return NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.DiscardHandler),
		ClaimsUC: claimsUC,
	}), claimsUC
}

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/claims-sync-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func encodeEvent(t *testing.T, event service.ClaimsSyncEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func newPushContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	userID := uuid.New()
	data := func(t *testing.T) string {
		return encodeEvent(t, service.ClaimsSyncEvent{UserID: userID.String(), Reason: "entitlement_changed"})
	}

	tests := []struct {
		name       string
		data       func(t *testing.T) string
		resyncErr  error
		expectCall bool
		wantStatus int
	}{
		{name: "applied", data: data, expectCall: true, wantStatus: http.StatusOK},
		{name: "user deleted is acknowledged", data: data, resyncErr: errors.Wrap(repository.ErrUserNotFound, "load"), expectCall: true, wantStatus: http.StatusOK},
		{name: "provider failure is redelivered", data: data, resyncErr: errors.New("firebase unavailable"), expectCall: true, wantStatus: http.StatusServiceUnavailable},
		{name: "bad base64 is dropped", data: func(*testing.T) string { return "%%%" }, wantStatus: http.StatusOK},
		{
			name: "bad user id is dropped",
			data: func(t *testing.T) string {
				return encodeEvent(t, service.ClaimsSyncEvent{UserID: "not-a-uuid"})
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, claimsUC := createTestPushHandler(t)
			c, rec := newPushContext(pushBody(t, tt.data(t), nil))

			if tt.expectCall {
				claimsUC.EXPECT().Resync(mock.Anything, userID).Return(tt.resyncErr)
			}

			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _ := createTestPushHandler(t)
	c, _ := newPushContext("")

	t.Run("attribute wins", func(t *testing.T) {
		var msg PubSubMessage
		msg.Message.Attributes = map[string]string{"request_id": "from-attr"}

		got := h.extractRequestID(c.Request().Context(), &msg, &service.ClaimsSyncEvent{RequestID: "from-event"})
		assert.Equal(t, "from-attr", got)
	})

	t.Run("event field", func(t *testing.T) {
		got := h.extractRequestID(c.Request().Context(), &PubSubMessage{}, &service.ClaimsSyncEvent{RequestID: "from-event"})
		assert.Equal(t, "from-event", got)
	})

	t.Run("generated", func(t *testing.T) {
		got := h.extractRequestID(c.Request().Context(), &PubSubMessage{}, &service.ClaimsSyncEvent{})
		_, err := uuid.Parse(got)
		assert.NoError(t, err)
	})
}

func TestPushHandler_RejectsUnverifiedPush(t *testing.T) {
	h, _ := createTestPushHandler(t)
	h.verifyPushAuth = true
	h.verifyToken = func(*http.Request) error { return errors.New("bad token") }

	c, rec := newPushContext(pushBody(t, "", nil))

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_VerifiesOnlyGooglePushOutsideDevelop(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		provider string
		want     bool
	}{
		{name: "google in production", env: constants.EnvProduction, provider: constants.PubSubProviderGoogle, want: true},
		{name: "google in develop", env: constants.EnvDevelop, provider: constants.PubSubProviderGoogle},
		{name: "local in production", env: constants.EnvProduction, provider: constants.PubSubProviderLocal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: tt.provider}}
			cfg.Env.Env = tt.env

			h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.New(slog.DiscardHandler)})
			assert.Equal(t, tt.want, h.verifyPushAuth)
		})
	}
}
