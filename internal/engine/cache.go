package engine

// #region cache

import (
	"sync"

	"github.com/danielpatrickdp/affective-state/go-engine/internal/providers"
)

// classifyCache is a bounded FIFO cache for classification
// distributions. It only ever short-circuits the classifier call; state
// updates always run regardless of cache hits.
type classifyCache struct {
	mu    sync.Mutex
	max   int
	order []string
	items map[string]providers.Distribution
}

func newClassifyCache(max int) *classifyCache {
	if max <= 0 {
		max = 1
	}
	return &classifyCache{
		max:   max,
		items: make(map[string]providers.Distribution, max),
	}
}

func (c *classifyCache) get(key string) (providers.Distribution, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.items[key]
	return d, ok
}

func (c *classifyCache) put(key string, d providers.Distribution) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; ok {
		return
	}
	if len(c.order) >= c.max {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.items, oldest)
	}
	c.order = append(c.order, key)
	c.items[key] = d
}

// #endregion cache
