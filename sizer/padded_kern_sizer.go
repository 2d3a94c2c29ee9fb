package sizer

import . "golang.org/x/image/font/sfnt"
import "github.com/tinne26/memetxt/fract"

var _ Sizer = (*PaddedKernSizer)(nil)

// A [Sizer] that behaves like the default one, but with a configurable
// horizontal padding that's added to the kern between glyphs. Used
// for caption letter tracking.
type PaddedKernSizer struct {
	DefaultSizer
	padding fract.Unit
}

// Sets the configurable horizontal kern padding value.
func (self *PaddedKernSizer) SetPadding(value fract.Unit) {
	self.padding = value
}

// Returns the configurable horizontal kern padding value.
func (self *PaddedKernSizer) GetPadding() fract.Unit {
	return self.padding
}

// Satisfies the [Sizer] interface.
func (self *PaddedKernSizer) Kern(font *Font, buffer *Buffer, size fract.Unit, g1, g2 GlyphIndex) fract.Unit {
	return self.DefaultSizer.Kern(font, buffer, size, g1, g2) + self.padding
}
