package TranslationHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/okanay/backend-translate-lingua/types"
	"github.com/okanay/backend-translate-lingua/utils"
)

// DetectLanguage classifies the language of the submitted text without
// translating or persisting anything.
func (h *Handler) DetectLanguage(c *gin.Context) {
	var request types.DetectLanguageRequest
	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	language, tokensUsed, err := h.AIService.DetectLanguage(c.Request.Context(), request.Text)

	c.Set("tokens_used", tokensUsed)

	if err != nil {
		respondTranslateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": types.DetectLanguageResponse{
			Language:   language,
			TokensUsed: tokensUsed,
		},
	})
}
