package AdminHandler

import (
	cache "github.com/okanay/backend-translate-lingua/services/cache"
)

type Handler struct {
	Cache *cache.Cache
}

func NewHandler(c *cache.Cache) *Handler {
	return &Handler{
		Cache: c,
	}
}
