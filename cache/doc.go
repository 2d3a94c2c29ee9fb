// The cache subpackage defines the [GlyphCacheHandler] interface used
// by the meme renderer and provides a default cache implementation.
//
// Glyph rasterization is an expensive CPU process, and stroked glyphs
// are even more expensive, as the masks have to be dilated or hollowed
// after rasterization. Captions tend to reuse the same few dozen glyphs
// at a handful of sizes, so caching pays off quickly on servers and
// batch runs.
//
// Masks are cached per font, rasterizer signature, size, fractional
// position and glyph index. To give a size reference, a 40px caption
// glyph with a 1.2px exterior stroke is around 32x44 pixels, or 1.4KiB.
// Upper case captions in a couple fonts and sizes fit comfortably in
// 1MiB, and the hosts in this module default to 8MiB, which is enough
// for several fonts at high density output scales.
//
// The [DefaultCache.PeakSize]() function can be used to measure the
// actual usage of a cache in a given workload.
package cache
