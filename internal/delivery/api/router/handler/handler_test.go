package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/antoniopd1/mercado-local-mex/internal/delivery/api/middleware"
	"github.com/antoniopd1/mercado-local-mex/internal/delivery/api/response"
	"github.com/antoniopd1/mercado-local-mex/internal/delivery/api/validator"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// envelope mirrors the response body for assertions.
type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

// newTestContext builds an echo context for a request, optionally authenticated as user.
func newTestContext(t *testing.T, method, target, body string, user *entity.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if user != nil {
		middleware.SetUser(c, user)
	}

	return c, rec
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)

	return c
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func testOwner() *entity.User {
	return &entity.User{
		ID:                    uuid.New(),
		Username:              "lupita",
		IsBusinessOwner:       true,
		HasActiveSubscription: true,
		EntitlementSource:     entity.EntitlementSourceWebhook,
	}
}

func strPtr(s string) *string {
	return &s
}

