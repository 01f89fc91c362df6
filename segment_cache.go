package dotmap

import (
	"strings"
	"sync"
)

///////////////////////////////////////////////////////////////////////////////
// Segment Cache
///////////////////////////////////////////////////////////////////////////////

// SegmentCache memoizes the result of splitting path strings into their
// segments. Splitting is deterministic, so a cached segment sequence can be
// handed out to every caller that asks for the same path string.
//
// The cache is bounded: once capacity is reached, the entry inserted
// earliest among those still present is evicted to make room (FIFO, not
// LRU — re-reading an entry does not refresh its position).
//
// A Map uses the package-global cache unless it was constructed with its
// own. The cache is safe for concurrent use.
type SegmentCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string][]string
	order    []string
}

// NewSegmentCache creates a cache holding at most capacity entries.
// A non-positive capacity falls back to DefaultSegmentCacheCapacity.
func NewSegmentCache(capacity int) *SegmentCache {
	if capacity <= 0 {
		capacity = DefaultSegmentCacheCapacity
	}
	return &SegmentCache{
		capacity: capacity,
		entries:  make(map[string][]string, capacity),
	}
}

// Resolve returns the segment sequence for path, computing and caching it
// on first sight. Splitting is on PathDelimiter only; the empty path yields
// a single empty segment. Callers must not mutate the returned slice.
func (sc *SegmentCache) Resolve(path string) []string {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if segments, exists := sc.entries[path]; exists {
		return segments
	}

	segments := strings.Split(path, PathDelimiter)

	if len(sc.entries) >= sc.capacity {
		oldest := sc.order[0]
		sc.order = sc.order[1:]
		delete(sc.entries, oldest)
	}

	sc.entries[path] = segments
	sc.order = append(sc.order, path)

	return segments
}

// Clear removes every cached entry.
func (sc *SegmentCache) Clear() {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.entries = make(map[string][]string, sc.capacity)
	sc.order = nil
}

// Len reports the number of cached entries.
func (sc *SegmentCache) Len() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	return len(sc.entries)
}

// contains reports whether path currently has a cached entry.
func (sc *SegmentCache) contains(path string) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	_, exists := sc.entries[path]
	return exists
}

///////////////////////////////////////////////////////////////////////////////
// Global Singleton and Package Functions
///////////////////////////////////////////////////////////////////////////////

var _globalSegmentCache *SegmentCache

func init() {
	_globalSegmentCache = NewSegmentCache(DefaultSegmentCacheCapacity)
}

// ParsePath splits path into its segments using the global segment cache.
func ParsePath(path string) []string {
	return _globalSegmentCache.Resolve(path)
}

// ClearPathCache empties the global segment cache.
//
// The global cache is shared by every Map that was not given its own, so
// clearing it affects all of them.
func ClearPathCache() {
	_globalSegmentCache.Clear()
}
