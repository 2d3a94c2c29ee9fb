package sizer

import . "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font"
import "github.com/tinne26/memetxt/fract"

const hintingNone = font.HintingNone

// When laying out a caption, we need some information related to
// the "font metrics". For example, how much we need to advance after
// drawing a glyph or what's the kerning between a specific pair of
// glyphs.
//
// Sizers are the interface that the meme renderer uses to obtain that
// information. Sizers may cache values between NotifyChange() calls,
// so a single sizer must not be shared between concurrent renders.
type Sizer interface {
	// Returns the ascent of the given font, at the given size,
	// as an absolute value.
	//
	// The given font and size must be consistent with the
	// latest NotifyChange() call.
	Ascent(*Font, *Buffer, fract.Unit) fract.Unit

	// Returns the descent of the given font, at the given size,
	// as an absolute value.
	Descent(*Font, *Buffer, fract.Unit) fract.Unit

	// Returns the line gap of the given font, at the given size,
	// as an absolute value.
	LineGap(*Font, *Buffer, fract.Unit) fract.Unit

	// Utility method equivalent to Ascent() + Descent() + LineGap().
	// Used as the distance between consecutive caption lines.
	LineHeight(*Font, *Buffer, fract.Unit) fract.Unit

	// Returns the advance of the given glyph for the given font
	// and size.
	GlyphAdvance(*Font, *Buffer, fract.Unit, GlyphIndex) fract.Unit

	// Returns the kerning value between two glyphs of the given font
	// and size.
	Kern(*Font, *Buffer, fract.Unit, GlyphIndex, GlyphIndex) fract.Unit

	// Must be called to sync the state of the sizer and allow it
	// to do any caching it may want to do in relation to the given
	// active font or size.
	NotifyChange(*Font, *Buffer, fract.Unit)
}
