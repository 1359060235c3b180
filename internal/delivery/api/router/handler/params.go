package handler

import (
	"strconv"

	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
	domainerrors "github.com/antoniopd1/mercado-local-mex/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// listParams reads the search/filter and pagination query parameters.
// Missing page values are left at zero so the usecase applies its defaults.
func listParams(c echo.Context) (entity.ListFilter, entity.PageRequest, error) {
	filter := entity.ListFilter{
		Search:       c.QueryParam("search"),
		BusinessType: c.QueryParam("business_type"),
		Municipality: c.QueryParam("municipality"),
	}

	var page entity.PageRequest
	var err error
	if page.Page, err = queryInt(c, "page"); err != nil {
		return filter, page, err
	}
	if page.PageSize, err = queryInt(c, "page_size"); err != nil {
		return filter, page, err
	}

	return filter, page, nil
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a positive integer")
	}

	return n, nil
}

// pathID parses the :id path parameter. Malformed ids cannot match any row.
func pathID(c echo.Context, notFound *domainerrors.BaseError) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, notFound
	}

	return id, nil
}
