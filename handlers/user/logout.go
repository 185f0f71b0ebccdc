package UserHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/okanay/backend-translate-lingua/configs"
)

func (h *Handler) Logout(c *gin.Context) {
	// Revoke the refresh token if the cookie is still present
	if refreshToken, err := c.Cookie(configs.REFRESH_TOKEN_NAME); err == nil && refreshToken != "" {
		if err := h.TokenRepository.RevokeRefreshToken(refreshToken, "user logout"); err != nil {
			// Cookie clearing below still ends the session on this client
		}
	}

	// Clear cookies
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(configs.ACCESS_TOKEN_NAME, "", -1, "/", "", false, true)
	c.SetCookie(configs.REFRESH_TOKEN_NAME, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logout successful.",
	})
}
