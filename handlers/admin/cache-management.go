package AdminHandler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetCacheStats reports a point-in-time summary of the shared cache.
func (h *Handler) GetCacheStats(c *gin.Context) {
	stats := h.Cache.GetStats()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}

// ClearAllCache clears the cache while protecting the rate limit keys, so
// a cache flush cannot be used to reset usage limits. Extra prefixes can
// be protected with the protect query parameter.
func (h *Handler) ClearAllCache(c *gin.Context) {
	protectedPrefixes := []string{"ai_rate_limit:", "ai_rate_limit_minute:", "rate_limit:"}

	if additionalProtected := c.Query("protect"); additionalProtected != "" {
		for _, prefix := range strings.Split(additionalProtected, ",") {
			protectedPrefixes = append(protectedPrefixes, strings.TrimSpace(prefix))
		}
	}

	h.Cache.ClearExceptPrefixes(protectedPrefixes)

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"message":            "Cache cleared (protected prefixes kept).",
		"protected_prefixes": protectedPrefixes,
	})
}

// ClearCacheWithPrefix clears every cache key under the given prefix.
func (h *Handler) ClearCacheWithPrefix(c *gin.Context) {
	prefix := c.Query("prefix")
	if prefix == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "missing_parameter",
			"message": "The prefix parameter is required.",
		})
		return
	}

	h.Cache.ClearPrefix(prefix)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Cache keys with prefix '%s' cleared.", prefix),
	})
}
