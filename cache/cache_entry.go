package cache

import "time"
import "sync/atomic"

// A stored glyph mask plus the usage data needed for eviction.
// All fields but accessCount are set on creation and never change.
type cachedMaskEntry struct {
	Mask GlyphMask
	ByteSize uint32
	CreationInstant uint32 // see cacheEntryInstant()
	accessCount atomic.Uint32
}

// Records an access to the entry. Concurrent-safe.
func (self *cachedMaskEntry) IncreaseAccessCount() {
	self.accessCount.Add(1)
}

// Bytes served per unit of time since the entry was created, plus a
// base cost so that new entries don't get evicted right away. The
// entry with the lowest value is the best eviction candidate.
func (self *cachedMaskEntry) Hotness(instant uint32) uint32 {
	const BaseEvictionCost = 1000
	served := self.ByteSize*self.accessCount.Load()
	age := instant - self.CreationInstant
	if age == 0 { age = 1 }
	return (BaseEvictionCost + served)/age
}

var clockOrigin = time.Now()

// Moves the cache clock forward in tests, in nanoseconds.
var testInstantNanosHack int64

// Monotonic time since the process started, in units of 2^27
// nanoseconds (~134ms). Wraps around after ~18 years.
func cacheEntryInstant() uint32 {
	elapsed := time.Since(clockOrigin).Nanoseconds() + atomic.LoadInt64(&testInstantNanosHack)
	return uint32(elapsed >> 27)
}

func newCachedMaskEntry(mask GlyphMask) (*cachedMaskEntry, uint32) {
	instant := cacheEntryInstant()
	entry := &cachedMaskEntry {
		Mask: mask,
		ByteSize: GlyphMaskByteSize(mask),
		CreationInstant: instant,
	}
	entry.accessCount.Store(1)
	return entry, instant
}
