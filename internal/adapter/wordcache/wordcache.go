// Package wordcache provides an in-memory TTL cache of successful lookups,
// keyed by normalized headword, so repeating a recent search skips the
// remote call.
package wordcache

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/pr-poehali-dev/word-definition-bot-1/internal/domain"
)

// Cache wraps patrickmn/go-cache for domain.Word values.
type Cache struct {
	c *cache.Cache
}

// New creates a Cache with the given TTL and cleanup interval.
func New(ttl, cleanupInterval time.Duration) *Cache {
	return &Cache{c: cache.New(ttl, cleanupInterval)}
}

// Get returns the cached Word for a headword, if present and not expired.
func (c *Cache) Get(word string) (*domain.Word, bool) {
	v, ok := c.c.Get(domain.NormalizeWord(word))
	if !ok {
		return nil, false
	}
	w, ok := v.(*domain.Word)
	return w, ok
}

// Set stores a Word under its normalized headword for the default TTL.
// Words are immutable once received, so the pointer is shared safely.
func (c *Cache) Set(word string, w *domain.Word) {
	if w == nil {
		return
	}
	c.c.SetDefault(domain.NormalizeWord(word), w)
}
