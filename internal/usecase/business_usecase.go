package usecase

import (
	"context"

	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"

	"github.com/google/uuid"
)

// BusinessInput carries writable business fields. Nil means "not provided";
// an empty string clears an optional field.
type BusinessInput struct {
	Name              *string
	WhatTheySell      *string
	Hours             *string
	Municipality      *string
	StreetAddress     *string
	LocationType      *string
	ContactPhone      *string
	FacebookUsername  *string
	InstagramUsername *string
	TiktokUsername    *string
	LogoURL           *string
	BusinessType      *string
}

// BusinessUsecase serves the business collection.
type BusinessUsecase interface {
	List(ctx context.Context, actor *entity.User, filter entity.ListFilter, page entity.PageRequest) (*entity.Page[*entity.Business], error)
	Get(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Business, error)
	MyBusiness(ctx context.Context, actor *entity.User) (*entity.Business, error)
	Create(ctx context.Context, actor *entity.User, input BusinessInput) (*entity.Business, error)
	// Update applies input. With partial false every required field must be present.
	Update(ctx context.Context, actor *entity.User, id uuid.UUID, input BusinessInput, partial bool) (*entity.Business, error)
	Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error
	// StorefrontQR renders a QR code linking to a visible business.
	StorefrontQR(ctx context.Context, actor *entity.User, id uuid.UUID) ([]byte, error)
}
