package model

// Gallery is the ordered, append-only item collection the carousel pages
// through. It is confined to the UI thread; no internal locking.
type Gallery struct {
	items []Item
}

// NewGallery creates a gallery with the given initial items
func NewGallery(items ...Item) *Gallery {
	g := &Gallery{}
	g.items = append(g.items, items...)
	return g
}

// Len returns the number of items
func (g *Gallery) Len() int {
	return len(g.items)
}

// ItemAt returns the item at index i. Out-of-range indices report false,
// never an error: gesture math can transiently run one past each end and
// callers render nothing for such slots.
func (g *Gallery) ItemAt(i int) (Item, bool) {
	if i < 0 || i >= len(g.items) {
		return Item{}, false
	}
	return g.items[i], true
}

// Append adds items to the end of the gallery
func (g *Gallery) Append(items ...Item) {
	g.items = append(g.items, items...)
}

// AppendBatches adds items in chunks of batchSize, invoking onBatch after
// each chunk. The yield point lets callers interleave UI work during bulk
// loads instead of relying on wall-clock delays.
func (g *Gallery) AppendBatches(items []Item, batchSize int, onBatch func(appended int)) {
	if batchSize <= 0 {
		batchSize = len(items)
	}
	for len(items) > 0 {
		n := batchSize
		if n > len(items) {
			n = len(items)
		}
		g.items = append(g.items, items[:n]...)
		items = items[n:]
		if onBatch != nil {
			onBatch(n)
		}
	}
}
