package cache

import "image"

// Glyph masks are alpha images, as generated by mask rasterizers.
type GlyphMask = *image.Alpha

// Approximate overhead of an *image.Alpha, excluding its pixels.
const constMaskSizeFactor = 56

// Returns the approximate amount of memory taken by the given mask.
func GlyphMaskByteSize(mask GlyphMask) uint32 {
	if mask == nil {
		return constMaskSizeFactor
	}
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	return maskDimsByteSize(w, h)
}

func maskDimsByteSize(width, height int) uint32 {
	return uint32(width*height) + constMaskSizeFactor
}

// used for testing purposes
func newEmptyGlyphMask(width, height int) GlyphMask {
	return GlyphMask(image.NewAlpha(image.Rect(0, 0, width, height)))
}
