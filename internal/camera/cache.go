package camera

import (
	"image"
	"sync"
)

// Cache is a concurrency-safe image cache. Every card in a batch shares
// the same body photo, so the decode happens once even with a worker pool.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
}

type cacheEntry struct {
	img *image.NRGBA
	err error
}

// NewCache creates an empty image cache.
func NewCache() *Cache {
	return &Cache{items: make(map[string]*cacheEntry)}
}

// Resolve loads and caches an image by path. Failures are cached too, so
// a bad photo is read at most once per run and every caller sees the same
// error. An empty path means no photo is configured and is not an error.
func (c *Cache) Resolve(path string) (*image.NRGBA, error) {
	if path == "" {
		return nil, nil
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.img, entry.err
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	img, err := LoadImage(path)

	// Write lock with double-check
	c.mu.Lock()
	if entry, exists := c.items[path]; exists {
		c.mu.Unlock()
		return entry.img, entry.err
	}
	c.items[path] = &cacheEntry{img: img, err: err}
	c.mu.Unlock()

	return img, err
}
