// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
)

// IdentityUsecase turns an incoming credential into a local user.
type IdentityUsecase interface {
	// Resolve verifies the "Bearer <token>" header value and returns the linked user,
	// creating it on the first verified request for that identity.
	Resolve(ctx context.Context, authorizationHeader string) (*entity.User, error)
}
