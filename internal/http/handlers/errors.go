package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/penelope-tex/penelope-backend/internal/platform/apierr"
	"github.com/penelope-tex/penelope-backend/internal/http/response"
)

// respondServiceError maps service errors onto the structured error envelope.
// Store failures are reported generically; the detail stays in the logs.
func respondServiceError(c *gin.Context, err error) {
	var ae *apierr.Error
	if errors.As(err, &ae) {
		if ae.Code == apierr.CodeUnavailable {
			response.RespondError(c, ae.Status, ae.Code, errors.New("catalog store unavailable"))
			return
		}
		response.RespondError(c, ae.Status, ae.Code, ae.Err)
		return
	}
	response.RespondError(c, http.StatusInternalServerError, "internal", errors.New("an unexpected error occurred"))
}
