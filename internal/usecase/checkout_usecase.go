package usecase

import (
	"context"

	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
)

// CheckoutUsecase starts subscription payments.
type CheckoutUsecase interface {
	// CreateCheckoutSession ensures the user has a payment customer and opens a
	// subscription checkout session for it. Returns the session id.
	CreateCheckoutSession(ctx context.Context, user *entity.User) (string, error)
}
