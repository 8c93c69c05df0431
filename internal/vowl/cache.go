// File: internal/vowl/cache.go
package vowl

import "math"

// DefaultIndexLimit is the number of distinct identifiers an Index can address.
const DefaultIndexLimit uint64 = math.MaxUint32 + 1

// Entry is one cache row. Secondary is reserved for a later secondary index
// and is always nil.
type Entry struct {
	ID        string `json:"id"`
	Index     Index  `json:"index"`
	Secondary *Index `json:"secondary,omitempty"`
}

// Cache maps raw identifiers to dense indices in first-observed order.
// It is append-only: an index, once given, is never reassigned or removed.
//
// A Cache is not safe for concurrent use; Resolve is a read followed by a
// conditional insert.
type Cache struct {
	index map[string]Index
	ids   []string
	limit uint64
}

// NewCache returns an empty cache bounded to limit identifiers. A zero limit
// or one above DefaultIndexLimit means DefaultIndexLimit.
func NewCache(limit uint64) *Cache {
	if limit == 0 || limit > DefaultIndexLimit {
		limit = DefaultIndexLimit
	}
	return &Cache{index: make(map[string]Index), limit: limit}
}

// Resolve returns the index of id, assigning the next free one if id is new.
// inserted is true only on the call that assigned the index. When the cache is
// full, a new id yields an *ExhaustedError and no index.
func (c *Cache) Resolve(id string) (inserted bool, idx Index, err error) {
	if idx, ok := c.index[id]; ok {
		return false, idx, nil
	}
	if uint64(len(c.ids)) >= c.limit {
		return false, 0, &ExhaustedError{ID: id, Limit: c.limit}
	}
	idx = Index(len(c.ids))
	c.index[id] = idx
	c.ids = append(c.ids, id)
	return true, idx, nil
}

// Lookup returns the index of id without inserting it.
func (c *Cache) Lookup(id string) (Index, bool) {
	idx, ok := c.index[id]
	return idx, ok
}

// ID returns the identifier at idx.
func (c *Cache) ID(idx Index) (string, bool) {
	if uint64(idx) >= uint64(len(c.ids)) {
		return "", false
	}
	return c.ids[idx], true
}

// Len returns the number of identifiers held.
func (c *Cache) Len() int {
	return len(c.ids)
}

// Entries returns the cache contents ordered by index.
func (c *Cache) Entries() []Entry {
	out := make([]Entry, len(c.ids))
	for i, id := range c.ids {
		out[i] = Entry{ID: id, Index: Index(i)}
	}
	return out
}
