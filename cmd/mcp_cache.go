package cmd

import (
	"image"
	"sync"
	"time"

	"github.com/uiproof/uiproof/internal/config"
	"github.com/uiproof/uiproof/internal/golden"
)

// goldenCacheKey identifies one golden artifact path.
type goldenCacheKey struct {
	TestName string
	Config   config.CaptureConfig
}

// goldenCacheEntry holds a decoded golden with its load time.
type goldenCacheEntry struct {
	img       image.Image
	timestamp time.Time
}

// goldenCache provides a TTL-based cache of decoded golden rasters for the
// MCP session. The engine itself stays cache-free; this only spares an MCP
// client repeated decodes while iterating on one screen.
type goldenCache struct {
	mu      sync.Mutex
	entries map[goldenCacheKey]goldenCacheEntry
	ttl     time.Duration
}

// newGoldenCache creates a new cache. A ttl of 0 disables caching.
func newGoldenCache(ttl time.Duration) *goldenCache {
	return &goldenCache{
		entries: make(map[goldenCacheKey]goldenCacheEntry),
		ttl:     ttl,
	}
}

// load returns a cached golden if within TTL, otherwise loads fresh.
func (c *goldenCache) load(store *golden.Store, testName string, cfg config.CaptureConfig) (image.Image, error) {
	if c.ttl == 0 {
		return store.Load(testName, cfg)
	}

	key := goldenCacheKey{TestName: testName, Config: cfg}

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok && time.Since(entry.timestamp) < c.ttl {
		img := entry.img
		c.mu.Unlock()
		return img, nil
	}
	c.mu.Unlock()

	img, err := store.Load(testName, cfg)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = goldenCacheEntry{img: img, timestamp: time.Now()}
	c.mu.Unlock()

	return img, nil
}

// invalidate removes the cache entry for one golden path.
func (c *goldenCache) invalidate(testName string, cfg config.CaptureConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, goldenCacheKey{TestName: testName, Config: cfg})
}

// invalidateAll clears the entire cache.
func (c *goldenCache) invalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[goldenCacheKey]goldenCacheEntry)
}
