package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/penelope-tex/penelope-backend/internal/data/repos"
	"github.com/penelope-tex/penelope-backend/internal/http/response"
	"github.com/penelope-tex/penelope-backend/internal/platform/logger"
	"github.com/penelope-tex/penelope-backend/internal/services"
)

type VariantHandler struct {
	log      *logger.Logger
	variants services.VariantService
}

func NewVariantHandler(log *logger.Logger, variants services.VariantService) *VariantHandler {
	return &VariantHandler{
		log:      log.With("handler", "VariantHandler"),
		variants: variants,
	}
}

// ListVariants handles
// GET /variants?page=&page_size=&color_name=&category=&reference=&draw=&in_stock=
// color_name is repeatable and conjunctive.
func (h *VariantHandler) ListVariants(c *gin.Context) {
	page, pageSize, apiErr := pageParams(c)
	if apiErr != nil {
		respondServiceError(c, apiErr)
		return
	}

	inStock, apiErr := boolQuery(c, "in_stock")
	if apiErr != nil {
		respondServiceError(c, apiErr)
		return
	}

	f := repos.VariantFilter{
		ColorNames: repeatedQuery(c, "color_name"),
		Category:   stringQuery(c, "category"),
		Reference:  stringQuery(c, "reference"),
		Draw:       stringQuery(c, "draw"),
		InStock:    inStock,
	}

	result, err := h.variants.ListVariants(c.Request.Context(), f, page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, result)
}

// GetVariant handles GET /variants/:id
func (h *VariantHandler) GetVariant(c *gin.Context) {
	id, apiErr := idParam(c, "id")
	if apiErr != nil {
		respondServiceError(c, apiErr)
		return
	}

	detail, err := h.variants.GetVariant(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, detail)
}
