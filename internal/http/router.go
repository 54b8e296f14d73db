package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/penelope-tex/penelope-backend/internal/http/handlers"
	httpMW "github.com/penelope-tex/penelope-backend/internal/http/middleware"
	"github.com/penelope-tex/penelope-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	CORSOrigins []string

	HealthHandler  *httpH.HealthHandler
	WovenHandler   *httpH.WovenHandler
	VariantHandler *httpH.VariantHandler
	StockHandler   *httpH.StockHandler
	PantoneHandler *httpH.PantoneHandler
	FiltersHandler *httpH.FiltersHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(cfg.ServiceName))
	r.Use(httpMW.AttachTraceContext())
	if cfg.Log != nil {
		r.Use(httpMW.RequestLogger(cfg.Log))
	}
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	if cfg.HealthHandler != nil {
		r.GET("/", cfg.HealthHandler.Root)
		r.GET("/health", cfg.HealthHandler.HealthCheck)
	}

	if cfg.WovenHandler != nil {
		r.GET("/wovens", cfg.WovenHandler.ListWovens)
		r.GET("/wovens/:id", cfg.WovenHandler.GetWoven)
	}

	if cfg.VariantHandler != nil {
		r.GET("/variants", cfg.VariantHandler.ListVariants)
		r.GET("/variants/:id", cfg.VariantHandler.GetVariant)
	}

	if cfg.StockHandler != nil {
		r.GET("/stock", cfg.StockHandler.ListStock)
	}

	if cfg.PantoneHandler != nil {
		r.GET("/pantone-colors", cfg.PantoneHandler.ListPantoneColors)
		r.GET("/pantone-colors/detail", cfg.PantoneHandler.GetPantoneColor)
	}

	if cfg.FiltersHandler != nil {
		filters := r.Group("/filters")
		{
			filters.GET("/colors", cfg.FiltersHandler.GetColors)
			filters.GET("/categories", cfg.FiltersHandler.GetCategories)
			filters.GET("/references", cfg.FiltersHandler.GetReferences)
			filters.GET("/draws", cfg.FiltersHandler.GetDraws)
		}
	}

	return r
}
