package app

import (
	"github.com/penelope-tex/penelope-backend/internal/data/db"
	"github.com/penelope-tex/penelope-backend/internal/http/handlers"
	"github.com/penelope-tex/penelope-backend/internal/platform/logger"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Wovens   *handlers.WovenHandler
	Variants *handlers.VariantHandler
	Stock    *handlers.StockHandler
	Pantone  *handlers.PantoneHandler
	Filters  *handlers.FiltersHandler
}

func wireHandlers(log *logger.Logger, pg *db.PostgresService, s Services) Handlers {
	return Handlers{
		Health:   handlers.NewHealthHandler(pg),
		Wovens:   handlers.NewWovenHandler(log, s.Wovens),
		Variants: handlers.NewVariantHandler(log, s.Variants),
		Stock:    handlers.NewStockHandler(log, s.Stock),
		Pantone:  handlers.NewPantoneHandler(log, s.Pantone),
		Filters:  handlers.NewFiltersHandler(log, s.Filters),
	}
}
