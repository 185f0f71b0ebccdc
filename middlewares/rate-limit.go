package middlewares

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/okanay/backend-translate-lingua/configs"
	cache "github.com/okanay/backend-translate-lingua/services/cache"
	"github.com/okanay/backend-translate-lingua/utils"
)

// RateLimit is the global per-IP limiter used on the public auth routes.
func RateLimit(c *cache.Cache) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ip := utils.GetTrueClientIP(ctx)
		cacheKey := fmt.Sprintf("rate_limit:%s", ip)

		count := 0
		if data, exists := c.Get(cacheKey); exists {
			if parsed, err := strconv.Atoi(string(data)); err == nil {
				count = parsed
			}
		}

		if count >= configs.RATE_LIMIT_MAX_REQUESTS {
			retryAfter := int(configs.RATE_LIMIT_WINDOW.Seconds())
			ctx.Header("Retry-After", strconv.Itoa(retryAfter))
			ctx.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "rate_limit_exceeded",
				"message": "Too many requests. Please try again later.",
			})
			ctx.Abort()
			return
		}

		c.SetWithTTL(cacheKey, []byte(strconv.Itoa(count+1)), configs.RATE_LIMIT_WINDOW)

		ctx.Header("X-RateLimit-Limit", strconv.Itoa(configs.RATE_LIMIT_MAX_REQUESTS))
		ctx.Header("X-RateLimit-Remaining", strconv.Itoa(configs.RATE_LIMIT_MAX_REQUESTS-count-1))

		ctx.Next()
	}
}
