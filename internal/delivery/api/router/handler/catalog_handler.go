package handler

import (
	"net/http"

	"github.com/antoniopd1/mercado-local-mex/internal/delivery/api/response"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// Catalog lists the closed enumerations accepted by the API.
type Catalog struct {
	Municipalities []entity.Choice `json:"municipalities"`
	LocationTypes  []entity.Choice `json:"location_types"`
	BusinessTypes  []entity.Choice `json:"business_types"`
}

// GetCatalog handles GET /api/catalog
func GetCatalog(c echo.Context) error {
	return response.Success(c, http.StatusOK, Catalog{
		Municipalities: entity.MunicipalityChoices(),
		LocationTypes:  entity.LocationTypeChoices(),
		BusinessTypes:  entity.BusinessTypeChoices(),
	})
}

// HealthCheck handles GET /health
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
