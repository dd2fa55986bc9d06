package cache

import (
	"context"
	"image"
	"log"
	"sync"

	"github.com/swipekit/photo-carousel/internal/model"
)

// Default window sizing
const (
	DefaultRadius = 1
	DefaultSlack  = 1
)

// Fetcher resolves an item's payload asynchronously. Implementations decode
// off the UI thread; the cache only depends on the success/failure outcome.
type Fetcher interface {
	Fetch(ctx context.Context, item model.Item, target image.Point) (image.Image, error)
}

// entry is the cached state for one item
type entry struct {
	status model.LoadStatus
	img    image.Image
}

// WindowCache keeps per-item pixel payloads for indices near the current
// one and releases everything else. It is safe for the fetch goroutines
// that deliver completions; all other callers are expected to be the UI
// goroutine.
type WindowCache struct {
	mu      sync.Mutex
	fetcher Fetcher
	radius  int
	slack   int
	target  image.Point

	entries map[string]*entry
	window  map[string]bool

	onLoaded func(id string)
}

// NewWindowCache creates a cache retaining radius+slack items each side of
// the current index. target is the decode size hint passed to the fetcher.
func NewWindowCache(fetcher Fetcher, radius, slack int, target image.Point) *WindowCache {
	if radius < 0 {
		radius = DefaultRadius
	}
	if slack < 0 {
		slack = DefaultSlack
	}
	return &WindowCache{
		fetcher: fetcher,
		radius:  radius,
		slack:   slack,
		target:  target,
		entries: make(map[string]*entry),
		window:  make(map[string]bool),
	}
}

// SetOnLoaded sets the callback invoked after a payload is stored. It runs
// on the fetch goroutine; UI callers marshal to their own thread.
func (c *WindowCache) SetOnLoaded(callback func(id string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onLoaded = callback
}

// OnWindowChanged records the new retention window around current and
// synchronously evicts every loaded payload outside it. Eviction does not
// wait for in-flight loads; completions for evicted items are discarded
// when they arrive.
func (c *WindowCache) OnWindowChanged(g *model.Gallery, current int) {
	reach := c.radius + c.slack
	lo, hi := current-reach, current+reach

	c.mu.Lock()
	defer c.mu.Unlock()

	c.window = make(map[string]bool, hi-lo+1)
	for i := lo; i <= hi; i++ {
		if item, ok := g.ItemAt(i); ok {
			c.window[item.ID] = true
		}
	}

	for id, e := range c.entries {
		if c.window[id] {
			continue
		}
		if e.status == model.StatusLoaded {
			// Purge, not mark: the payload memory goes with the entry.
			delete(c.entries, id)
		}
		// Loading entries stay so a duplicate EnsureLoaded is still a
		// no-op; the completion re-check drops the result.
	}
}

// EnsureLoaded starts an asynchronous fetch for the item unless a payload
// is already resident or in flight. A failed fetch leaves the item
// unloaded; the next render pass retries by calling EnsureLoaded again.
func (c *WindowCache) EnsureLoaded(ctx context.Context, item model.Item) {
	c.mu.Lock()
	if e, exists := c.entries[item.ID]; exists {
		if e.status == model.StatusLoaded || e.status == model.StatusLoading {
			c.mu.Unlock()
			return
		}
	}
	c.entries[item.ID] = &entry{status: model.StatusLoading}
	c.mu.Unlock()

	go c.fetch(ctx, item)
}

// fetch runs one load and applies its completion
func (c *WindowCache) fetch(ctx context.Context, item model.Item) {
	img, err := c.fetcher.Fetch(ctx, item, c.target)

	c.mu.Lock()
	e, exists := c.entries[item.ID]
	if !exists || e.status != model.StatusLoading {
		// Entry was replaced or force-cleared while we were fetching.
		c.mu.Unlock()
		return
	}

	if err != nil {
		delete(c.entries, item.ID)
		c.mu.Unlock()
		log.Printf("Image load failed for item %s: %v", item.ID, err)
		return
	}

	// Membership is re-checked now, not trusted from request time: a load
	// completing after its index left the window must not resurrect the
	// entry.
	if !c.window[item.ID] {
		delete(c.entries, item.ID)
		c.mu.Unlock()
		return
	}

	e.status = model.StatusLoaded
	e.img = img
	callback := c.onLoaded
	c.mu.Unlock()

	if callback != nil {
		callback(item.ID)
	}
}

// Image returns the resident payload for the item, if any
func (c *WindowCache) Image(id string) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, exists := c.entries[id]
	if !exists || e.status != model.StatusLoaded {
		return nil, false
	}
	return e.img, true
}

// Status returns the load state for the item
func (c *WindowCache) Status(id string) model.LoadStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, exists := c.entries[id]
	if !exists {
		return model.StatusUnloaded
	}
	return e.status
}

// LoadedCount returns the number of resident payloads
func (c *WindowCache) LoadedCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.entries {
		if e.status == model.StatusLoaded {
			n++
		}
	}
	return n
}

// Clear drops every entry, resident or in flight. Used when the carousel
// unmounts.
func (c *WindowCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
	c.window = make(map[string]bool)
}
