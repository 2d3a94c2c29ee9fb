package sizer

import "fmt"

import . "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"
import "github.com/tinne26/memetxt/fract"

var _ Sizer = (*DefaultSizer)(nil)

// The default [Sizer] used by the meme renderer. Vertical metrics
// are computed once per NotifyChange() call, while advances and
// kerning are forwarded to the font on each request.
//
// Fonts that fail to report metrics are considered corrupt, so
// the sizer panics instead of returning errors.
type DefaultSizer struct {
	metrics font.Metrics // zero value if no font or size is set
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) Ascent(*Font, *Buffer, fract.Unit) fract.Unit {
	return fract.Unit(self.metrics.Ascent)
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) Descent(*Font, *Buffer, fract.Unit) fract.Unit {
	return fract.Unit(self.metrics.Descent)
}

// Satisfies the [Sizer] interface. The value is derived from the
// font's line height, so it can be negative for some fonts.
func (self *DefaultSizer) LineGap(*Font, *Buffer, fract.Unit) fract.Unit {
	return fract.Unit(self.metrics.Height - self.metrics.Ascent - self.metrics.Descent)
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) LineHeight(*Font, *Buffer, fract.Unit) fract.Unit {
	return fract.Unit(self.metrics.Height)
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) GlyphAdvance(sfont *Font, buffer *Buffer, size fract.Unit, index GlyphIndex) fract.Unit {
	advance, err := sfont.GlyphAdvance(buffer, index, fixed.Int26_6(size), hintingNone)
	if err != nil { panicOnFontErr("GlyphAdvance", err, index) }
	return fract.Unit(advance)
}

// Satisfies the [Sizer] interface. Missing kerning pairs are zero.
func (self *DefaultSizer) Kern(sfont *Font, buffer *Buffer, size fract.Unit, prev, curr GlyphIndex) fract.Unit {
	kern, err := sfont.Kern(buffer, prev, curr, fixed.Int26_6(size), hintingNone)
	switch err {
	case nil:
		return fract.Unit(kern)
	case ErrNotFound:
		return 0
	default:
		panicOnFontErr("Kern", err, prev, curr)
		return 0
	}
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) NotifyChange(sfont *Font, buffer *Buffer, size fract.Unit) {
	if sfont == nil || size == 0 {
		self.metrics = font.Metrics{}
		return
	}

	var err error
	self.metrics, err = sfont.Metrics(buffer, fixed.Int26_6(size), hintingNone)
	if err != nil { panicOnFontErr("Metrics", err) }
}

func panicOnFontErr(method string, err error, indices ...GlyphIndex) {
	if len(indices) == 0 {
		panic(fmt.Sprintf("sfnt.Font.%s error: %s", method, err))
	}
	panic(fmt.Sprintf("sfnt.Font.%s error for glyph indices %v: %s", method, indices, err))
}
