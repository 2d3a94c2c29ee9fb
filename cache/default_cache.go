package cache

import "sync"
import "sync/atomic"

// The default glyph mask cache. It is concurrent-safe and can be
// shared by all the renders of a process (or an HTTP server). Its
// size is bounded, and when it's full, new masks evict the coldest
// entry from a small random sample (see [cachedMaskEntry.Hotness]()).
type DefaultCache struct {
	mutex sync.Mutex
	entries map[[3]uint64]*cachedMaskEntry
	capacity int
	usedBytes int
	peakBytes int
	evictions uint64
	hits atomic.Uint64
	misses atomic.Uint64
}

// Usage statistics for a [DefaultCache].
type CacheStats struct {
	Entries   int    `json:"entries"`
	Bytes     int    `json:"bytes"` // approximate
	PeakBytes int    `json:"peak_bytes"` // approximate
	Capacity  int    `json:"capacity"`
	Hits      uint64 `json:"hits"`
	Misses    uint64 `json:"misses"`
	Evictions uint64 `json:"evictions"`
}

// Creates a new cache bounded by the given size in bytes. Negative
// values will panic.
//
// Stroked caption masks are big, so a few MiBs are generally
// preferable. Below 32KiB, the cache will barely hold a caption.
func NewDefaultCache(maxByteSize int) *DefaultCache {
	if maxByteSize < 0 { panic("maxByteSize < 0") }
	return &DefaultCache {
		entries: make(map[[3]uint64]*cachedMaskEntry, 128),
		capacity: maxByteSize,
	}
}

// Gets the mask associated to the given key.
func (self *DefaultCache) GetMask(key [3]uint64) (GlyphMask, bool) {
	self.mutex.Lock()
	entry, found := self.entries[key]
	self.mutex.Unlock()
	if !found {
		self.misses.Add(1)
		return nil, false
	}
	self.hits.Add(1)
	entry.IncreaseAccessCount()
	return entry.Mask, true
}

// Stores the given mask with the given key. Masks already present
// are not replaced, and masks that can't make room for themselves
// without evicting hotter entries are dropped.
func (self *DefaultCache) PassMask(key [3]uint64, mask GlyphMask) {
	const MaxEvictionsPerPass = 2

	entry, instant := newCachedMaskEntry(mask)
	size := int(entry.ByteSize)
	if size > self.capacity { return }

	self.mutex.Lock()
	defer self.mutex.Unlock()
	if _, found := self.entries[key]; found { return }

	hotness := entry.Hotness(instant)
	for evicted := 0; self.usedBytes + size > self.capacity; evicted++ {
		if evicted == MaxEvictionsPerPass { return }
		if !self.evictColderThan(hotness, instant) { return }
	}

	self.entries[key] = entry
	self.usedBytes += size
	if self.usedBytes > self.peakBytes { self.peakBytes = self.usedBytes }
}

// Samples a few entries and removes the coldest one if it's colder
// than the given hotness. Returns whether an entry was removed. Must
// be called with the mutex held.
func (self *DefaultCache) evictColderThan(hotness uint32, instant uint32) bool {
	const SampleSize = 10

	var coldestKey [3]uint64
	var coldest *cachedMaskEntry
	coldestHotness := hotness
	samples := 0
	for key, entry := range self.entries { // map order is random enough
		entryHotness := entry.Hotness(instant)
		if entryHotness < coldestHotness {
			coldestKey, coldest, coldestHotness = key, entry, entryHotness
		}
		samples += 1
		if samples == SampleSize { break }
	}
	if coldest == nil { return false }

	delete(self.entries, coldestKey)
	self.usedBytes -= int(coldest.ByteSize)
	self.evictions += 1
	return true
}

// Returns an approximation of the number of bytes taken by the
// glyph masks currently stored in the cache.
func (self *DefaultCache) ApproxByteSize() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.usedBytes
}

// Returns an approximation of the maximum amount of bytes that the
// cache has been filled with at any point of its life. Useful to
// size caches for a given workload.
func (self *DefaultCache) PeakSize() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.peakBytes
}

// Returns the number of masks currently stored in the cache.
func (self *DefaultCache) NumEntries() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return len(self.entries)
}

// Returns the current usage statistics.
func (self *DefaultCache) Stats() CacheStats {
	self.mutex.Lock()
	stats := CacheStats {
		Entries: len(self.entries),
		Bytes: self.usedBytes,
		PeakBytes: self.peakBytes,
		Capacity: self.capacity,
		Evictions: self.evictions,
	}
	self.mutex.Unlock()
	stats.Hits = self.hits.Load()
	stats.Misses = self.misses.Load()
	return stats
}

// Returns a new cache handler for the current cache. While the cache
// is concurrent-safe, handlers are not, so each render creates its own.
func (self *DefaultCache) NewHandler() *DefaultCacheHandler {
	return &DefaultCacheHandler{ cache: self }
}
