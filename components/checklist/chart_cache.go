package checklist

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/patrickmn/go-cache"
)

// RenderCache memoizes rendered chart HTML so repeated summary renders are cheap.
type RenderCache interface {
	GetOrRender(key string, render func() (string, error)) (string, error)
}

// ChartCache is an expiring in-memory cache for rendered charts. A non-positive
// TTL disables caching.
type ChartCache struct {
	ttl     time.Duration
	entries *cache.Cache
}

// NewChartCache builds a cache with the provided TTL.
func NewChartCache(ttl time.Duration) *ChartCache {
	cleanup := ttl * 2
	if cleanup <= 0 {
		cleanup = time.Minute
	}
	return &ChartCache{
		ttl:     ttl,
		entries: cache.New(ttl, cleanup),
	}
}

// GetOrRender returns a cached entry or renders/stores a new one.
func (c *ChartCache) GetOrRender(key string, render func() (string, error)) (string, error) {
	if c == nil || c.ttl <= 0 {
		return render()
	}
	if x, ok := c.entries.Get(key); ok {
		return x.(string), nil
	}
	html, err := render()
	if err != nil {
		return "", err
	}
	c.entries.Set(key, html, c.ttl)
	return html, nil
}

// contentHash returns a deterministic hash of any JSON-encodable value.
func contentHash(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "invalid"
	}
	sum := sha1.Sum(b)
	return hex.EncodeToString(sum[:])
}
