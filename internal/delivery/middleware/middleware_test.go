package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/antoniopd1/mercado-local-mex/config"
	deliverycontext "github.com/antoniopd1/mercado-local-mex/internal/delivery/context"
	domainerrors "github.com/antoniopd1/mercado-local-mex/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggerTestServer(t *testing.T, debug bool, buf *bytes.Buffer) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg, "/health").Handle)

	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/boom", func(c echo.Context) error { return domainerrors.ErrInternalError })

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	e := newLoggerTestServer(t, false, &bytes.Buffer{})

	t.Run("reuses client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-req-1")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, "client-req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("mints id when missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("quiet outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		e := newLoggerTestServer(t, false, &buf)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Empty(t, buf.String())
	})

	t.Run("server errors always logged", func(t *testing.T) {
		var buf bytes.Buffer
		e := newLoggerTestServer(t, false, &buf)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

		require.Contains(t, buf.String(), "HTTP Request")
		assert.Contains(t, buf.String(), `"status":500`)
		assert.Contains(t, buf.String(), `"request_id"`)
	})

	t.Run("debug logs requests but skips probes", func(t *testing.T) {
		var buf bytes.Buffer
		e := newLoggerTestServer(t, true, &buf)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Empty(t, buf.String())

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
		assert.Contains(t, buf.String(), `"route":"/ok"`)
	})
}
