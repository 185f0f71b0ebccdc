package TranslationHandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	TranslationRepository "github.com/okanay/backend-translate-lingua/repositories/translation"
	AIService "github.com/okanay/backend-translate-lingua/services/ai"
)

type Handler struct {
	TranslationRepository *TranslationRepository.Repository
	AIService             *AIService.AIService
}

func NewHandler(tr *TranslationRepository.Repository, ai *AIService.AIService) *Handler {
	return &Handler{
		TranslationRepository: tr,
		AIService:             ai,
	}
}

// respondTranslateError maps the AI service error taxonomy onto HTTP
// responses. Unclassified errors fall through as 500.
func respondTranslateError(c *gin.Context, err error) {
	var translateErr *AIService.TranslateError
	if !errors.As(err, &translateErr) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An unexpected error occurred.",
		})
		return
	}

	status := http.StatusInternalServerError
	switch translateErr.Code {
	case AIService.ErrCodeValidation:
		status = http.StatusBadRequest
	case AIService.ErrCodeDetection:
		status = http.StatusUnprocessableEntity
	case AIService.ErrCodeRateLimit:
		status = http.StatusTooManyRequests
	case AIService.ErrCodeAuth:
		status = http.StatusBadGateway
	case AIService.ErrCodeUnavailable:
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"success": false,
		"error":   string(translateErr.Code),
		"message": translateErr.Message,
	})
}
