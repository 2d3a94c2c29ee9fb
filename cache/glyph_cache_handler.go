package cache

import "golang.org/x/image/font/sfnt"
import "github.com/tinne26/memetxt/fract"
import "github.com/tinne26/memetxt/mask"

// A [GlyphCacheHandler] acts as an intermediator between a glyph cache
// and the meme renderer, abstracting the details of the underlying
// cache keys.
//
// Glyph cache handlers can't be used concurrently unless the concrete
// implementation explicitly says otherwise.
type GlyphCacheHandler interface {

	// --- configuration notification methods ---
	// Update methods (called only if required so overhead can be low).
	// Passed values must always be non-nil.

	// Notifies that the font in use has changed.
	NotifyFontChange(*sfnt.Font)

	// Notifies that the text size (in pixels) has changed.
	NotifySizeChange(fract.Unit)

	// Notifies that the rasterizer has changed. Typically, the
	// rasterizer's Signature() will be used to tell them apart.
	NotifyRasterizerChange(mask.Rasterizer) // called on config changes too

	// Notifies that the fractional drawing position has changed. 
	// Only the 6 bits corresponding to the non-integer part of each 
	// coordinate are considered.
	NotifyFractChange(fract.Point)

	// --- cache access methods ---

	// Gets the mask image for the given glyph index and current configuration.
	// The bool indicates whether the mask has been found (as it may be nil).
	GetMask(sfnt.GlyphIndex) (GlyphMask, bool)

	// Passes a mask image for the given glyph index and current
	// configuration to the underlying cache. PassMask should only
	// be called after GetMask() fails.
	//
	// Given a specific configuration, the contents of the mask image
	// must always be consistent. This implies that passed masks may be
	// ignored if a mask is already cached under that configuration, as
	// it will be considered superfluous. In other words: passing different
	// masks for the same configuration may cause inconsistent results.
	PassMask(sfnt.GlyphIndex, GlyphMask)
}
