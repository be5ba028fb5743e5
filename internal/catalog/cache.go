package catalog

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Ycine_Go/internal/domain"
)

// CacheConfig sizes the video cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// listKey holds the full catalog listing; video ids never start with '*'
const listKey = "*all"

type cacheEntry struct {
	video  *domain.Video
	videos []domain.Video
}

// videoCache is an LRU with time-based expiration for catalog lookups.
// Only hits are cached; unknown ids always reach the store.
type videoCache struct {
	lru    *expirable.LRU[string, cacheEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

func newVideoCache(cfg CacheConfig) *videoCache {
	size := cfg.Size
	if size <= 0 {
		size = 1
	}
	return &videoCache{
		lru: expirable.NewLRU[string, cacheEntry](size, nil, cfg.TTL),
	}
}

func (c *videoCache) getVideo(id string) (*domain.Video, bool) {
	entry, ok := c.lru.Get(id)
	if !ok || entry.video == nil {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	v := *entry.video
	return &v, true
}

func (c *videoCache) setVideo(v *domain.Video) {
	cp := *v
	c.lru.Add(v.ID, cacheEntry{video: &cp})
}

func (c *videoCache) getList() ([]domain.Video, bool) {
	entry, ok := c.lru.Get(listKey)
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return append([]domain.Video(nil), entry.videos...), true
}

func (c *videoCache) setList(videos []domain.Video) {
	c.lru.Add(listKey, cacheEntry{videos: append([]domain.Video(nil), videos...)})
	for i := range videos {
		c.setVideo(&videos[i])
	}
}

func (c *videoCache) stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}

func (c *videoCache) clear() {
	c.lru.Purge()
}
