package TranslationHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) SelectTranslationByID(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	translationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_id",
			"message": "Invalid translation id.",
		})
		return
	}

	translation, err := h.TranslationRepository.SelectTranslationByID(translationID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "not_found",
			"message": "Translation not found.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    translation,
	})
}
