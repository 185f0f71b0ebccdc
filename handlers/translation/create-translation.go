package TranslationHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/okanay/backend-translate-lingua/types"
	"github.com/okanay/backend-translate-lingua/utils"
)

// CreateTranslation translates the submitted text and persists the result
// on the caller's history.
func (h *Handler) CreateTranslation(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var request types.TranslationCreateRequest
	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	result, err := h.AIService.Translate(
		c.Request.Context(),
		request.Text,
		request.SourceLanguage,
		request.TargetLanguage,
		request.Options(),
	)

	// Report token usage for the AI rate limiter even on failure
	c.Set("tokens_used", result.TokensUsed)

	if err != nil {
		respondTranslateError(c, err)
		return
	}

	translation, err := h.TranslationRepository.CreateTranslation(types.TranslationCreateDBRequest{
		UserID:         userID,
		SourceText:     request.Text,
		TranslatedText: result.TranslatedText,
		SourceLanguage: result.SourceLanguage,
		TargetLanguage: request.TargetLanguage,
		Options:        request.Options(),
		TokensUsed:     result.TokensUsed,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "save_failed",
			"message": "The translation succeeded but could not be saved.",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"translation": translation,
			"tokensUsed":  result.TokensUsed,
			"cost":        utils.CalculateAICost(result.TokensUsed),
		},
	})
}
