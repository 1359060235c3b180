package middleware

import (
	"log/slog"

	"github.com/antoniopd1/mercado-local-mex/internal/delivery/api/response"
	deliverycontext "github.com/antoniopd1/mercado-local-mex/internal/delivery/context"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
	domainerrors "github.com/antoniopd1/mercado-local-mex/internal/domain/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const contextKeyUser = "user"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	Logger     *slog.Logger
}

// AuthMiddleware resolves bearer credentials into local users.
type AuthMiddleware struct {
	identityUC usecase.IdentityUsecase
	logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		identityUC: params.IdentityUC,
		logger:     params.Logger,
	}
}

// Authenticate verifies the Authorization header and stores the resolved user on the context.
// The request-scoped logger is extended with the user id.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx := req.Context()

		user, err := m.identityUC.Resolve(ctx, req.Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(contextKeyUser, user)

		c.SetRequest(req.WithContext(deliverycontext.WithUserID(ctx, user.ID, m.logger)))

		return next(c)
	}
}

// RequireStaff rejects non-staff users. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := GetUser(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrInvalidCredential)
		}
		if !user.IsStaff {
			return response.HandleAppError(c, domainerrors.ErrStaffOnly)
		}

		return next(c)
	}
}

// GetUser returns the user set by Authenticate.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(contextKeyUser).(*entity.User)

	return user, ok && user != nil
}

// SetUser stores user on the context as Authenticate does.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(contextKeyUser, user)
}
