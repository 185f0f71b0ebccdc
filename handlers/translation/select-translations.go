package TranslationHandler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/okanay/backend-translate-lingua/types"
)

// SelectTranslations lists the caller's translation history, newest first,
// with pagination and optional filters.
func (h *Handler) SelectTranslations(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	options := types.TranslationQueryOptions{
		UserID:         userID,
		OnlyFavorites:  c.Query("favorites") == "true",
		TargetLanguage: c.Query("targetLanguage"),
		Search:         c.Query("search"),
		Page:           page,
		Limit:          limit,
	}

	response, err := h.TranslationRepository.SelectTranslations(options)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while listing translations.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    response,
	})
}
