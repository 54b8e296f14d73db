package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/penelope-tex/penelope-backend/internal/http/response"
	"github.com/penelope-tex/penelope-backend/internal/platform/logger"
	"github.com/penelope-tex/penelope-backend/internal/services"
)

type FiltersHandler struct {
	log     *logger.Logger
	filters services.FiltersService
}

func NewFiltersHandler(log *logger.Logger, filters services.FiltersService) *FiltersHandler {
	return &FiltersHandler{
		log:     log.With("handler", "FiltersHandler"),
		filters: filters,
	}
}

// GetColors handles GET /filters/colors
func (h *FiltersHandler) GetColors(c *gin.Context) {
	response.RespondOK(c, h.filters.AvailableColors())
}

// GetCategories handles GET /filters/categories
func (h *FiltersHandler) GetCategories(c *gin.Context) {
	response.RespondOK(c, h.filters.AvailableCategories())
}

// GetReferences handles GET /filters/references
func (h *FiltersHandler) GetReferences(c *gin.Context) {
	refs, err := h.filters.References(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, refs)
}

// GetDraws handles GET /filters/draws
func (h *FiltersHandler) GetDraws(c *gin.Context) {
	draws, err := h.filters.Draws(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, draws)
}
