package middlewares

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/okanay/backend-translate-lingua/configs"
	cache "github.com/okanay/backend-translate-lingua/services/cache"
	"github.com/okanay/backend-translate-lingua/types"
)

// AIRateLimitMiddleware limits AI usage per user: a rolling request window,
// a per-minute burst counter and a token budget. Handlers report actual
// token usage through the "tokens_used" context key.
type AIRateLimitMiddleware struct {
	cache *cache.Cache
}

func NewAIRateLimitMiddleware(cache *cache.Cache) *AIRateLimitMiddleware {
	return &AIRateLimitMiddleware{
		cache: cache,
	}
}

func (m *AIRateLimitMiddleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDInterface, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "unauthorized",
				"message": "User identity not found.",
			})
			c.Abort()
			return
		}

		userID, ok := userIDInterface.(uuid.UUID)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "internal_error",
				"message": "User identity has an invalid format.",
			})
			c.Abort()
			return
		}

		now := time.Now()
		rateInfo, minuteCount := m.getRateLimitInfo(userID.String())

		minuteResetTime := now.Add(1 * time.Minute).Truncate(time.Minute)
		windowResetDuration := rateInfo.WindowResetAt.Sub(now)
		minuteResetDuration := minuteResetTime.Sub(now)

		// Rate limit headers
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", configs.AI_RATE_LIMIT_MAX_REQUESTS))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", configs.AI_RATE_LIMIT_MAX_REQUESTS-rateInfo.RequestCount))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", rateInfo.WindowResetAt.Unix()))
		c.Header("X-RateLimit-Minute-Limit", fmt.Sprintf("%d", configs.AI_RATE_LIMIT_REQ_PER_MINUTE))
		c.Header("X-RateLimit-Minute-Remaining", fmt.Sprintf("%d", configs.AI_RATE_LIMIT_REQ_PER_MINUTE-minuteCount))

		isMinuteLimitExceeded := minuteCount >= configs.AI_RATE_LIMIT_REQ_PER_MINUTE
		isTotalLimitExceeded := rateInfo.RequestCount >= configs.AI_RATE_LIMIT_MAX_REQUESTS
		isTokenLimitExceeded := rateInfo.TokensUsed >= configs.AI_RATE_LIMIT_MAX_TOKENS

		if isMinuteLimitExceeded || isTotalLimitExceeded || isTokenLimitExceeded {
			limitType := "window"
			retryAfter := int(windowResetDuration.Seconds())
			if isMinuteLimitExceeded && !isTotalLimitExceeded && !isTokenLimitExceeded {
				limitType = "minute"
				retryAfter = int(minuteResetDuration.Seconds())
			} else if isTokenLimitExceeded {
				limitType = "tokens"
			}
			if retryAfter < 0 {
				retryAfter = 0
			}

			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))

			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "rate_limit_exceeded",
				"message": "AI request limit reached. Please try again later.",
				"data": gin.H{
					"limitType":       limitType,
					"totalLimit":      configs.AI_RATE_LIMIT_MAX_REQUESTS,
					"totalRemaining":  configs.AI_RATE_LIMIT_MAX_REQUESTS - rateInfo.RequestCount,
					"minuteLimit":     configs.AI_RATE_LIMIT_REQ_PER_MINUTE,
					"minuteRemaining": configs.AI_RATE_LIMIT_REQ_PER_MINUTE - minuteCount,
					"tokenLimit":      configs.AI_RATE_LIMIT_MAX_TOKENS,
					"tokenRemaining":  configs.AI_RATE_LIMIT_MAX_TOKENS - rateInfo.TokensUsed,
					"retryAfter":      retryAfter,
				},
			})
			c.Abort()
			return
		}

		// Count the request up front
		m.incrementRequestCount(userID.String(), rateInfo)

		c.Next()

		// After a successful request, charge the actual token usage the
		// handler reported
		if c.Writer.Status() == http.StatusOK || c.Writer.Status() == http.StatusCreated {
			if tokensUsed := c.GetInt("tokens_used"); tokensUsed > 0 {
				m.updateTokenUsage(userID.String(), tokensUsed)
			}
		}
	}
}

// getRateLimitInfo loads the current window state and the per-minute
// counter, starting a fresh window when none exists or it has lapsed.
func (m *AIRateLimitMiddleware) getRateLimitInfo(userID string) (*types.RateLimitInfo, int) {
	cacheKey := fmt.Sprintf("ai_rate_limit:%s", userID)
	minuteKey := fmt.Sprintf("ai_rate_limit_minute:%s", userID)

	now := time.Now()
	rateInfo := &types.RateLimitInfo{
		UserID:        userID,
		FirstRequest:  now,
		LastRequest:   now,
		WindowResetAt: now.Add(configs.AI_RATE_LIMIT_WINDOW),
	}

	if data, exists := m.cache.Get(cacheKey); exists {
		var stored types.RateLimitInfo
		if err := json.Unmarshal(data, &stored); err == nil && now.Before(stored.WindowResetAt) {
			rateInfo = &stored
		}
	}

	minuteCount := 0
	if minuteData, exists := m.cache.Get(minuteKey); exists {
		if count, err := strconv.Atoi(string(minuteData)); err == nil {
			minuteCount = count
		}
	}

	return rateInfo, minuteCount
}

func (m *AIRateLimitMiddleware) incrementRequestCount(userID string, rateInfo *types.RateLimitInfo) {
	cacheKey := fmt.Sprintf("ai_rate_limit:%s", userID)
	minuteKey := fmt.Sprintf("ai_rate_limit_minute:%s", userID)

	now := time.Now()

	rateInfo.RequestCount++
	rateInfo.LastRequest = now

	if jsonData, err := json.Marshal(rateInfo); err == nil {
		remainingTime := rateInfo.WindowResetAt.Sub(now)
		if remainingTime <= 0 {
			remainingTime = configs.AI_RATE_LIMIT_WINDOW
		}
		m.cache.SetWithTTL(cacheKey, jsonData, remainingTime)
	}

	minuteCount := 1
	if minuteData, exists := m.cache.Get(minuteKey); exists {
		if count, err := strconv.Atoi(string(minuteData)); err == nil {
			minuteCount = count + 1
		}
	}
	m.cache.SetWithTTL(minuteKey, []byte(strconv.Itoa(minuteCount)), 1*time.Minute)
}

func (m *AIRateLimitMiddleware) updateTokenUsage(userID string, tokensUsed int) {
	cacheKey := fmt.Sprintf("ai_rate_limit:%s", userID)

	data, exists := m.cache.Get(cacheKey)
	if !exists {
		return
	}

	var rateInfo types.RateLimitInfo
	if err := json.Unmarshal(data, &rateInfo); err != nil {
		return
	}

	now := time.Now()
	rateInfo.TokensUsed += tokensUsed

	if jsonData, err := json.Marshal(&rateInfo); err == nil {
		remainingTime := rateInfo.WindowResetAt.Sub(now)
		if remainingTime <= 0 {
			remainingTime = configs.AI_RATE_LIMIT_WINDOW
		}
		m.cache.SetWithTTL(cacheKey, jsonData, remainingTime)
	}
}
