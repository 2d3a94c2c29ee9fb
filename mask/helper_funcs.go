package mask

import "image"
import "math"

import "github.com/tinne26/memetxt/fract"

// Computes the integer size of the canvas needed to rasterize a glyph
// with the given bounds at the given subpixel origin (only the fractional
// part of the origin is used). Also returns the shift that moves the
// outline into the canvas and the offset that moves the resulting mask
// back to glyph coordinates.
func figureOutBounds(bounds fract.Rect, origin fract.Point) (int, int, fract.Point, image.Point) {
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	shift := fract.Point{
		X: origin.X.FractShift() - minX,
		Y: origin.Y.FractShift() - minY,
	}
	width  := (bounds.Max.X + shift.X).Ceil().ToIntFloor()
	height := (bounds.Max.Y + shift.Y).Ceil().ToIntFloor()
	return width, height, shift, image.Pt(minX.ToIntFloor(), minY.ToIntFloor())
}

// Multiplies two alpha values, both in [0, 255].
func mulAlpha(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127)/255)
}

// Approximate coverage of a pixel by a source pixel grown by the
// given radius, where distance is measured between pixel centers.
func discCoverage(radius, distance float64) uint8 {
	coverage := radius + 1 - distance
	if coverage <= 0 { return 0 }
	if coverage >= 1 { return 255 }
	return uint8(math.Round(coverage*255))
}
