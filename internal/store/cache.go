package store

// cacheRecord is what a Cache remembers about one key: either "I read
// this key and it didn't exist / was removed" (known == true, value ==
// nil) or "I read or wrote this key and it holds a value at this
// revision" (known == true, value != nil). known == false (the zero
// value, i.e. absence from the map) means "never observed — the next
// read must go to the Store."
type cacheRecord[T any] struct {
	rev   Rev
	value *T
}

// Stats counts the operations a Cache has observed, for scenario authors
// inspecting why a plan behaved as it did. Adapted from the teacher's
// shard package's atomic-counters-plus-Stats() idiom; purely additive
// instrumentation, not part of any invariant.
type Stats struct {
	Reads     int
	Writes    int
	Conflicts int
}

// Cache is one client's read-through, write-through view of a Store. It
// is NOT safe for concurrent use — a plan's execution, and every Cache
// created for it, is confined to a single goroutine (see package doc).
type Cache[T any] struct {
	store *Store[T]
	local map[string]cacheRecord[T]
	known map[string]bool
	stats Stats
}

// NewCache creates a Cache backed by store. The cache starts empty; every
// key is fetched from store on first read.
func NewCache[T any](s *Store[T]) *Cache[T] {
	return &Cache[T]{
		store: s,
		local: make(map[string]cacheRecord[T]),
		known: make(map[string]bool),
	}
}

// Read returns the cached value for key, fetching from the Store on a
// first read for that key and remembering the result (including a
// "doesn't exist" result — spec.md §8's "cached miss is sticky": once a
// miss is recorded, a concurrent external write to the Store is not
// observed until the cache is invalidated for that key, e.g. by a
// conflicting write through this same cache).
func (c *Cache[T]) Read(key string) (T, bool) {
	c.stats.Reads++

	if !c.known[key] {
		rev, value, ok := c.store.Read(key)
		if ok {
			v := value
			c.local[key] = cacheRecord[T]{rev: rev, value: &v}
		} else {
			c.local[key] = cacheRecord[T]{}
		}
		c.known[key] = true
	}

	rec := c.local[key]
	if rec.value == nil {
		var zero T
		return zero, false
	}
	return *rec.value, true
}

// Write writes value at key through to the Store, using this cache's
// last-observed revision for key (or 0 if the cache has never read or
// written this key) as the expected revision. On success the new
// revision and value are recorded locally and true is returned. On
// conflict the key is evicted from the cache — forcing a fresh Store read
// on the next access — and false is returned.
func (c *Cache[T]) Write(key string, value T) bool {
	c.stats.Writes++

	expected := c.revOf(key)
	newRev, ok := c.store.Write(key, expected, value)
	if !ok {
		c.stats.Conflicts++
		c.evict(key)
		return false
	}

	v := value
	c.local[key] = cacheRecord[T]{rev: newRev, value: &v}
	c.known[key] = true
	return true
}

// Remove removes key through to the Store, with the same revision-check
// and eviction-on-conflict behavior as Write.
func (c *Cache[T]) Remove(key string) bool {
	c.stats.Writes++

	expected := c.revOf(key)
	newRev, ok := c.store.Remove(key, expected)
	if !ok {
		c.stats.Conflicts++
		c.evict(key)
		return false
	}

	c.local[key] = cacheRecord[T]{rev: newRev, value: nil}
	c.known[key] = true
	return true
}

func (c *Cache[T]) revOf(key string) Rev {
	if !c.known[key] {
		return 0
	}
	return c.local[key].rev
}

func (c *Cache[T]) evict(key string) {
	delete(c.local, key)
	delete(c.known, key)
}

// Stats returns a snapshot of this cache's operation counters.
func (c *Cache[T]) Stats() Stats {
	return c.stats
}
