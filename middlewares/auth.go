package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/okanay/backend-translate-lingua/configs"
	TokenRepository "github.com/okanay/backend-translate-lingua/repositories/token"
	UserRepository "github.com/okanay/backend-translate-lingua/repositories/user"
	"github.com/okanay/backend-translate-lingua/types"
	"github.com/okanay/backend-translate-lingua/utils"
)

func AuthMiddleware(ur *UserRepository.Repository, tr *TokenRepository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Check access token
		accessToken, err := c.Cookie(configs.ACCESS_TOKEN_NAME)
		if err != nil {
			// If there is no access token, check the refresh token
			handleTokenRenewal(c, ur, tr)
			return
		}

		// 2. Validate the access token
		claims, err := utils.ValidateAccessToken(accessToken)
		if err != nil {
			// If the access token is invalid or expired, check the refresh token
			expired, _ := utils.IsTokenExpired(accessToken)
			if expired {
				handleTokenRenewal(c, ur, tr)
				return
			}

			// Invalid for a reason other than expiry, terminate the session
			handleUnauthorized(c, "Invalid session.")
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			handleUnauthorized(c, "Invalid session.")
			return
		}

		// 3. Token is valid, add user information to the context
		c.Set("user_id", userID)
		c.Set("username", claims.Username)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)

		// 4. Continue processing
		c.Next()
	}
}

func handleTokenRenewal(c *gin.Context, ur *UserRepository.Repository, tr *TokenRepository.Repository) {
	// 1. Retrieve the refresh token
	refreshToken, err := c.Cookie(configs.REFRESH_TOKEN_NAME)
	if err != nil {
		handleUnauthorized(c, "Session not found.")
		return
	}

	// 2. Check the refresh token in the database
	dbToken, err := tr.SelectRefreshTokenByToken(refreshToken)
	if err != nil {
		handleUnauthorized(c, "Session is invalid.")
		return
	}

	// 3. Validate the refresh token
	if dbToken.IsRevoked {
		handleUnauthorized(c, "Session has been revoked.")
		return
	}

	if dbToken.ExpiresAt.Before(time.Now()) {
		handleUnauthorized(c, "Session has expired.")
		return
	}

	// 4. Retrieve the user from the database
	user, err := ur.SelectUserByUsername(dbToken.UserUsername)
	if err != nil {
		handleUnauthorized(c, "User not found.")
		return
	}

	// 5. Check the user's status
	if user.Status != types.UserStatusActive {
		handleUnauthorized(c, "Your account is not active.")
		return
	}

	// 6. Create token claims
	tokenClaims := types.TokenClaims{
		UserID:   user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Membership,
	}

	// 7. Generate a new access token
	newAccessToken, err := utils.GenerateAccessToken(tokenClaims)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "token_generation_failed",
			"message": "An error occurred while renewing the session.",
		})
		c.Abort()
		return
	}

	// 8. Update the last used time of the refresh token
	err = tr.UpdateRefreshTokenLastUsed(refreshToken)
	if err != nil {
		// Not fatal for the request, the session continues
	}

	// 9. Set the new access token cookie
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		configs.ACCESS_TOKEN_NAME,
		newAccessToken,
		int(configs.ACCESS_TOKEN_DURATION.Seconds()),
		"/",
		"",
		false,
		true,
	)

	// 10. Add user information to the context
	c.Set("user_id", user.ID)
	c.Set("username", user.Username)
	c.Set("email", user.Email)
	c.Set("role", user.Membership)

	// 11. Continue processing
	c.Next()
}

func handleUnauthorized(c *gin.Context, message string) {
	// Clear cookies
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(configs.ACCESS_TOKEN_NAME, "", -1, "/", "", false, true)
	c.SetCookie(configs.REFRESH_TOKEN_NAME, "", -1, "/", "", false, true)

	// Return error
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   "unauthorized",
		"message": message,
	})
	c.Abort()
}
