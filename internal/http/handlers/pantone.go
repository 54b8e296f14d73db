package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/penelope-tex/penelope-backend/internal/http/response"
	"github.com/penelope-tex/penelope-backend/internal/platform/apierr"
	"github.com/penelope-tex/penelope-backend/internal/platform/logger"
	"github.com/penelope-tex/penelope-backend/internal/services"
)

type PantoneHandler struct {
	log     *logger.Logger
	pantone services.PantoneService
}

func NewPantoneHandler(log *logger.Logger, pantone services.PantoneService) *PantoneHandler {
	return &PantoneHandler{
		log:     log.With("handler", "PantoneHandler"),
		pantone: pantone,
	}
}

// ListPantoneColors handles GET /pantone-colors
func (h *PantoneHandler) ListPantoneColors(c *gin.Context) {
	result, err := h.pantone.ListPantoneColors(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, result)
}

// GetPantoneColor handles GET /pantone-colors/detail?name=PANTONE Yellow C
// Pantone names contain spaces and slashes, hence the query parameter.
func (h *PantoneHandler) GetPantoneColor(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		respondServiceError(c, apierr.InvalidFilter("name is required"))
		return
	}

	detail, err := h.pantone.GetPantoneColor(c.Request.Context(), name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, detail)
}
