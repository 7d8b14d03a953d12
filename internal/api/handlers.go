package api

import (
	"fmt"
	"time"
)

// Handlers groups all HTTP handlers around the shared dependencies.
type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{deps: deps}
}

// detailCacheTTL bounds staleness of cached detail lookups. Harambee
// entries are additionally invalidated on every contribution.
const detailCacheTTL = 60 * time.Second

func (h *Handlers) cacheGet(key string) (string, bool) {
	if h.deps.Services.Cache == nil {
		return "", false
	}
	value, found := h.deps.Services.Cache.Get(key)
	if h.deps.Metrics != nil {
		pattern := keyPattern(key)
		if found {
			h.deps.Metrics.CacheHitsTotal.WithLabelValues(pattern).Inc()
		} else {
			h.deps.Metrics.CacheMissesTotal.WithLabelValues(pattern).Inc()
		}
	}
	if !found {
		return "", false
	}
	body, ok := value.(string)
	return body, ok
}

func (h *Handlers) cacheSet(key, body string) {
	if h.deps.Services.Cache != nil {
		h.deps.Services.Cache.Set(key, body, detailCacheTTL)
	}
}

func keyPattern(key string) string {
	for i := 0; i < len(key); i++ {
		if key[i] == ':' {
			return key[:i]
		}
	}
	return key
}

func eventCacheKey(id int) string {
	return fmt.Sprintf("event:%d", id)
}

func harambeeCacheKey(id int) string {
	return fmt.Sprintf("harambee:%d", id)
}
