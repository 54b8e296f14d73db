package app

import (
	"github.com/penelope-tex/penelope-backend/internal/platform/logger"
	"github.com/penelope-tex/penelope-backend/internal/services"
)

type Services struct {
	Wovens   services.WovenService
	Variants services.VariantService
	Stock    services.StockService
	Pantone  services.PantoneService
	Filters  services.FiltersService
}

func wireServices(log *logger.Logger, cfg Config, r Repos) Services {
	pag := services.Pagination{
		DefaultPageSize: cfg.DefaultPageSize,
		MaxPageSize:     cfg.MaxPageSize,
	}
	return Services{
		Wovens:   services.NewWovenService(log, r.Wovens, pag),
		Variants: services.NewVariantService(log, r.Variants, r.Stock, pag),
		Stock:    services.NewStockService(log, r.Stock, pag),
		Pantone:  services.NewPantoneService(log, r.Pantone, r.Variants, r.Stock),
		Filters:  services.NewFiltersService(log, r.Wovens),
	}
}
