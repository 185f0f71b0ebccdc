package types

import (
	"time"
)

// RateLimitInfo holds a single user's AI usage inside the current window
type RateLimitInfo struct {
	UserID        string    `json:"userId"`
	RequestCount  int       `json:"requestCount"`
	TokensUsed    int       `json:"tokensUsed"`
	FirstRequest  time.Time `json:"firstRequest"`
	LastRequest   time.Time `json:"lastRequest"`
	WindowResetAt time.Time `json:"windowResetAt"`
}
