package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/penelope-tex/penelope-backend/internal/data/repos"
	"github.com/penelope-tex/penelope-backend/internal/http/response"
	"github.com/penelope-tex/penelope-backend/internal/platform/logger"
	"github.com/penelope-tex/penelope-backend/internal/services"
)

type WovenHandler struct {
	log    *logger.Logger
	wovens services.WovenService
}

func NewWovenHandler(log *logger.Logger, wovens services.WovenService) *WovenHandler {
	return &WovenHandler{
		log:    log.With("handler", "WovenHandler"),
		wovens: wovens,
	}
}

// ListWovens handles GET /wovens?page=&page_size=&reference=&draw=
func (h *WovenHandler) ListWovens(c *gin.Context) {
	page, pageSize, apiErr := pageParams(c)
	if apiErr != nil {
		respondServiceError(c, apiErr)
		return
	}

	f := repos.WovenFilter{
		Reference: stringQuery(c, "reference"),
		Draw:      stringQuery(c, "draw"),
	}

	result, err := h.wovens.ListWovens(c.Request.Context(), f, page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, result)
}

// GetWoven handles GET /wovens/:id
func (h *WovenHandler) GetWoven(c *gin.Context) {
	id, apiErr := idParam(c, "id")
	if apiErr != nil {
		respondServiceError(c, apiErr)
		return
	}

	detail, err := h.wovens.GetWoven(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, detail)
}
