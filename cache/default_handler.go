package cache

import "unsafe"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/memetxt/fract"
import "github.com/tinne26/memetxt/mask"

var _ GlyphCacheHandler = (*DefaultCacheHandler)(nil)

// Layout of the third key word.
const (
	keySizeBits  uint64 = 0xFFFFFFFF00000000 // text size, fract.Unit
	keyFractBits uint64 = 0x000000000FFF0000 // fract Y (bits 16-21), fract X (bits 22-27)
	keyGlyphBits uint64 = 0x000000000000FFFF // glyph index
)

// The [GlyphCacheHandler] for a [DefaultCache].
//
// Keys are composed of the font pointer, the rasterizer signature and
// a last word packing the size, the fractional position and the glyph
// index. Stroked and plain passes of the same caption use different
// rasterizer signatures, so their masks never collide.
type DefaultCacheHandler struct {
	cache *DefaultCache
	key [3]uint64
}

func (self *DefaultCacheHandler) setKeyBits(mask uint64, bits uint64) {
	self.key[2] = (self.key[2] &^ mask) | (bits & mask)
}

// Implements [GlyphCacheHandler].NotifyFontChange(...)
func (self *DefaultCacheHandler) NotifyFontChange(font *sfnt.Font) {
	self.key[0] = uint64(uintptr(unsafe.Pointer(font)))
}

// Implements [GlyphCacheHandler].NotifyRasterizerChange(...)
func (self *DefaultCacheHandler) NotifyRasterizerChange(rasterizer mask.Rasterizer) {
	self.key[1] = rasterizer.Signature()
}

// Implements [GlyphCacheHandler].NotifySizeChange(...)
func (self *DefaultCacheHandler) NotifySizeChange(size fract.Unit) {
	self.setKeyBits(keySizeBits, uint64(uint32(size)) << 32)
}

// Implements [GlyphCacheHandler].NotifyFractChange(...)
func (self *DefaultCacheHandler) NotifyFractChange(position fract.Point) {
	fx, fy := uint64(position.X.FractShift()), uint64(position.Y.FractShift())
	self.setKeyBits(keyFractBits, fx << 22 | fy << 16)
}

// Implements [GlyphCacheHandler].GetMask(...)
func (self *DefaultCacheHandler) GetMask(index sfnt.GlyphIndex) (GlyphMask, bool) {
	self.setKeyBits(keyGlyphBits, uint64(index))
	return self.cache.GetMask(self.key)
}

// Implements [GlyphCacheHandler].PassMask(...)
func (self *DefaultCacheHandler) PassMask(index sfnt.GlyphIndex, mask GlyphMask) {
	self.setKeyBits(keyGlyphBits, uint64(index))
	self.cache.PassMask(self.key, mask)
}

// Returns the underlying [DefaultCache].
func (self *DefaultCacheHandler) Cache() *DefaultCache {
	return self.cache
}
