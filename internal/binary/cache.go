package binary

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Loader produces the document; satisfied by (*Fetcher).Fetch and by
// closures over LoadFile.
type Loader func(ctx context.Context) (Document, error)

// Cache is a load-once, read-many view of the binary-system document.
//
// The first EnsureLoaded triggers the load; concurrent callers share that
// single in-flight request. A failed load resolves to an empty cache so
// lookups degrade to the estimated-companion path, and a later EnsureLoaded
// may retry. After a successful load the document is never mutated, so Get
// is a plain map read.
type Cache struct {
	load Loader

	mu     sync.RWMutex
	doc    Document
	loaded bool

	group singleflight.Group
}

// NewCache creates a cache over the given loader.
func NewCache(load Loader) *Cache {
	return &Cache{load: load}
}

// EnsureLoaded loads the document if it has not been loaded yet. Concurrent
// calls share one fetch. The returned error is informational: the cache is
// usable (empty) even when the load fails.
func (c *Cache) EnsureLoaded(ctx context.Context) error {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if loaded {
		return nil
	}

	_, err, _ := c.group.Do("load", func() (interface{}, error) {
		doc, err := c.load(ctx)

		c.mu.Lock()
		defer c.mu.Unlock()
		if err != nil {
			// Degrade to an empty cache; callers fall back to
			// estimated companions. Leave loaded=false so a later
			// call can retry.
			c.doc = Document{}
			return nil, err
		}
		c.doc = doc
		c.loaded = true
		return nil, nil
	})
	return err
}

// Get returns the entry for a host name. Safe to call before EnsureLoaded;
// it simply misses.
func (c *Cache) Get(host string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.doc[host]
	return e, ok
}

// Loaded reports whether a document load has succeeded.
func (c *Cache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.doc)
}
