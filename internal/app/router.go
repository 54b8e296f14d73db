package app

import (
	"github.com/gin-gonic/gin"

	"github.com/penelope-tex/penelope-backend/internal/http"
	"github.com/penelope-tex/penelope-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		Log:         log,
		ServiceName: serviceName,
		CORSOrigins: cfg.CORSOrigins,

		HealthHandler:  handlers.Health,
		WovenHandler:   handlers.Wovens,
		VariantHandler: handlers.Variants,
		StockHandler:   handlers.Stock,
		PantoneHandler: handlers.Pantone,
		FiltersHandler: handlers.Filters,
	})
}
