package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders QR codes that link to public storefront pages
type QRCodeService interface {
	// GenerateStorefrontQR returns a PNG QR code pointing at the business storefront
	GenerateStorefrontQR(businessID uuid.UUID) ([]byte, error)

	// StorefrontURL returns the URL encoded by GenerateStorefrontQR
	StorefrontURL(businessID uuid.UUID) string
}
