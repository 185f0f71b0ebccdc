package TranslationHandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	TranslationRepository "github.com/okanay/backend-translate-lingua/repositories/translation"
)

func (h *Handler) DeleteTranslation(c *gin.Context) {
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

	err = h.TranslationRepository.DeleteTranslationByID(translationID, userID)
	if err != nil {
		if errors.Is(err, TranslationRepository.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "not_found",
				"message": "Translation not found.",
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while deleting the translation.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Translation deleted.",
	})
}
