// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/antoniopd1/mercado-local-mex/config"
	"github.com/antoniopd1/mercado-local-mex/internal/delivery/api/middleware"
	"github.com/antoniopd1/mercado-local-mex/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BusinessHandler *handler.BusinessHandler
	OfferHandler    *handler.OfferHandler
	PaymentHandler  *handler.PaymentHandler
	AccountHandler  *handler.AccountHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	businessHandler *handler.BusinessHandler
	offerHandler    *handler.OfferHandler
	paymentHandler  *handler.PaymentHandler
	accountHandler  *handler.AccountHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		businessHandler: params.BusinessHandler,
		offerHandler:    params.OfferHandler,
		paymentHandler:  params.PaymentHandler,
		accountHandler:  params.AccountHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Collection and action routes answer with and without the trailing slash.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public routes
	api.GET("/catalog", handler.GetCatalog)
	slashed(api.POST, "/stripe-webhook", r.paymentHandler.Webhook)

	// Authenticated routes
	authed := api.Group("", r.authMiddleware.Authenticate)
	{
		authed.GET("/me", r.accountHandler.Me)
		slashed(authed.POST, "/create-checkout-session", r.paymentHandler.CreateCheckoutSession)
	}

	businesses := authed.Group("/businesses")
	{
		slashed(businesses.GET, "", r.businessHandler.List)
		slashed(businesses.POST, "", r.businessHandler.Create)
		slashed(businesses.GET, "/my_business", r.businessHandler.MyBusiness)
		slashed(businesses.GET, "/:id", r.businessHandler.Get)
		slashed(businesses.PUT, "/:id", r.businessHandler.Update)
		slashed(businesses.PATCH, "/:id", r.businessHandler.PartialUpdate)
		slashed(businesses.DELETE, "/:id", r.businessHandler.Delete)
		businesses.GET("/:id/qr", r.businessHandler.StorefrontQR)
	}

	offers := authed.Group("/offers")
	{
		slashed(offers.GET, "", r.offerHandler.List)
		slashed(offers.POST, "", r.offerHandler.Create)
		slashed(offers.GET, "/my_offers", r.offerHandler.MyOffers)
		slashed(offers.GET, "/:id", r.offerHandler.Get)
		slashed(offers.PUT, "/:id", r.offerHandler.Update)
		slashed(offers.PATCH, "/:id", r.offerHandler.PartialUpdate)
		slashed(offers.DELETE, "/:id", r.offerHandler.Delete)
	}

	// Staff routes
	admin := authed.Group("/admin", r.authMiddleware.RequireStaff)
	{
		admin.PUT("/users/:id/entitlement", r.accountHandler.GrantEntitlement)
	}
}

type routeFunc func(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route

func slashed(add routeFunc, path string, h echo.HandlerFunc) {
	add(path, h)
	add(path+"/", h)
}
