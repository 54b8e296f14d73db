package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/penelope-tex/penelope-backend/internal/http/response"
)

type Pinger interface {
	Ping() error
}

type HealthHandler struct {
	store Pinger
}

func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if h.store != nil {
		if err := h.store.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "disconnected",
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

// Root handles GET / with a small endpoint index.
func (h *HealthHandler) Root(c *gin.Context) {
	response.RespondOK(c, gin.H{
		"name":    "Penelope Dataset API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"wovens": gin.H{
				"list":   "GET /wovens",
				"detail": "GET /wovens/:id",
			},
			"variants": gin.H{
				"list":   "GET /variants",
				"detail": "GET /variants/:id",
			},
			"stock": gin.H{
				"list": "GET /stock",
			},
			"pantone_colors": gin.H{
				"list":   "GET /pantone-colors",
				"detail": "GET /pantone-colors/detail?name={name}",
			},
			"filters": gin.H{
				"colors":     "GET /filters/colors",
				"categories": "GET /filters/categories",
				"references": "GET /filters/references",
				"draws":      "GET /filters/draws",
			},
		},
	})
}
