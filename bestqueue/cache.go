package bestqueue

import "sort"

// DefaultCapacity is the cache's default entry cap ("e.g. 10,000").
const DefaultCapacity = 10000

// entry pairs a label arena index with the score it had when inserted.
type entry struct {
	LabelIndex int
	Score float64
}

// Cache is the bounded best-labels priority cache: at most Capacity
// (label_index, score) entries in descending-score order.
type Cache struct {
	capacity int
	entries []entry
}

// NewCache creates a Cache with the given capacity (DefaultCapacity if <= 0).
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{capacity: capacity, entries: make([]entry, 0, capacity)}
}

// Capacity returns the cache's maximum entry count.
func (c *Cache) Capacity() int { return c.capacity }

// Len returns the current entry count.
func (c *Cache) Len() int { return len(c.entries) }

// Empty reports whether the cache currently holds no entries.
func (c *Cache) Empty() bool { return len(c.entries) == 0 }

// Insert inserts (labelIndex, score) in descending-score sorted position.
// If the cache is full, the entry is inserted only if score exceeds the
// current worst entry, evicting that worst entry.
func (c *Cache) Insert(labelIndex int, score float64) {
	if len(c.entries) >= c.capacity && score <= c.entries[len(c.entries)-1].Score {
		return
	}

	pos := sort.Search(len(c.entries), func(i int) bool { return c.entries[i].Score < score })
	c.entries = append(c.entries, entry{})
	copy(c.entries[pos+1:], c.entries[pos:])
	c.entries[pos] = entry{LabelIndex: labelIndex, Score: score}

	if len(c.entries) > c.capacity {
		c.entries = c.entries[:c.capacity]
	}
}

// Remove deletes labelIndex's entry, if present, via linear scan: the cache
// is small, so a linear scan beats keeping a reverse index.
func (c *Cache) Remove(labelIndex int) {
	for i, e := range c.entries {
		if e.LabelIndex == labelIndex {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

// PopFront removes and returns the best (highest-score) entry. ok is false
// if the cache is empty.
func (c *Cache) PopFront() (labelIndex int, ok bool) {
	if len(c.entries) == 0 {
		return 0, false
	}
	best := c.entries[0]
	c.entries = c.entries[1:]
	return best.LabelIndex, true
}

// Reset clears the cache, used by a caller about to refill it by scanning
// the label arena ("refill by scanning every live slot").
func (c *Cache) Reset() {
	c.entries = c.entries[:0]
}
