package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/penelope-tex/penelope-backend/internal/data/repos"
	"github.com/penelope-tex/penelope-backend/internal/http/response"
	"github.com/penelope-tex/penelope-backend/internal/platform/logger"
	"github.com/penelope-tex/penelope-backend/internal/services"
)

type StockHandler struct {
	log   *logger.Logger
	stock services.StockService
}

func NewStockHandler(log *logger.Logger, stock services.StockService) *StockHandler {
	return &StockHandler{
		log:   log.With("handler", "StockHandler"),
		stock: stock,
	}
}

// ListStock handles
// GET /stock?page=&page_size=&variant_id=&perfect_match=&min_quantity=&description=
func (h *StockHandler) ListStock(c *gin.Context) {
	page, pageSize, apiErr := pageParams(c)
	if apiErr != nil {
		respondServiceError(c, apiErr)
		return
	}

	variantID, apiErr := int64Query(c, "variant_id")
	if apiErr != nil {
		respondServiceError(c, apiErr)
		return
	}
	perfectMatch, apiErr := boolQuery(c, "perfect_match")
	if apiErr != nil {
		respondServiceError(c, apiErr)
		return
	}
	minQuantity, apiErr := floatQuery(c, "min_quantity")
	if apiErr != nil {
		respondServiceError(c, apiErr)
		return
	}

	f := repos.StockFilter{
		VariantID:    variantID,
		PerfectMatch: perfectMatch,
		MinQuantity:  minQuantity,
		Description:  stringQuery(c, "description"),
	}

	result, err := h.stock.ListStock(c.Request.Context(), f, page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, result)
}
