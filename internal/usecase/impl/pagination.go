package impl

import (
	"github.com/antoniopd1/mercado-local-mex/config"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/constants"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
	"github.com/antoniopd1/mercado-local-mex/internal/util"
)

type pageLimits struct {
	defaultSize int
	maxSize     int
}

func pageLimitsFrom(cfg *config.Config) pageLimits {
	limits := pageLimits{defaultSize: constants.DefaultPageSize, maxSize: constants.MaxPageSize}
	if cfg == nil || cfg.App == nil {
		return limits
	}
	if cfg.App.DefaultPageSize > 0 {
		limits.defaultSize = cfg.App.DefaultPageSize
	}
	if cfg.App.MaxPageSize > 0 {
		limits.maxSize = cfg.App.MaxPageSize
	}

	return limits
}

func (l pageLimits) clamp(req entity.PageRequest) entity.PageRequest {
	page, size := util.ClampPage(req.Page, req.PageSize, l.defaultSize, l.maxSize)

	return entity.PageRequest{Page: page, PageSize: size}
}

func emptyPage[T any](req entity.PageRequest) *entity.Page[T] {
	return &entity.Page[T]{Items: []T{}, Page: req.Page, PageSize: req.PageSize}
}
