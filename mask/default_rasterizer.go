package mask

import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/font/sfnt"
import "github.com/tinne26/memetxt/fract"

var _ Rasterizer = (*DefaultRasterizer)(nil)

// The DefaultRasterizer fills glyph outlines with a
// [golang.org/x/image/vector.Rasterizer]. Its masks are the plain
// fill of a caption, which the [StrokeRasterizer] later expands
// or hollows.
//
// The vector rasterizer only accepts coordinates inside its canvas,
// so outlines are shifted into the positive quadrant while tracing
// and the resulting mask is shifted back afterwards.
type DefaultRasterizer struct {
	rasterizer vector.Rasterizer
	shift fract.Point // applied to every traced point
	onChange func(Rasterizer)
}

// Satisfies the [Rasterizer] interface.
func (self *DefaultRasterizer) SetOnChangeFunc(onChange func(Rasterizer)) {
	self.onChange = onChange
}

// Satisfies the [Rasterizer] interface. Always zero, as the default
// rasterizer has no configuration.
func (self *DefaultRasterizer) Signature() uint64 { return 0 }

func (self *DefaultRasterizer) local(point fract.Point) (float32, float32) {
	return point.AddPoint(self.shift).ToFloat32s()
}

// Moves the current position to the given point.
func (self *DefaultRasterizer) MoveTo(point fract.Point) {
	self.rasterizer.MoveTo(self.local(point))
}

// Traces a straight segment to the given point.
func (self *DefaultRasterizer) LineTo(point fract.Point) {
	self.rasterizer.LineTo(self.local(point))
}

// Traces a quadratic Bézier curve to the given target.
func (self *DefaultRasterizer) QuadTo(control, target fract.Point) {
	cx, cy := self.local(control)
	tx, ty := self.local(target)
	self.rasterizer.QuadTo(cx, cy, tx, ty)
}

// Traces a cubic Bézier curve to the given target.
func (self *DefaultRasterizer) CubeTo(controlA, controlB, target fract.Point) {
	ax, ay := self.local(controlA)
	bx, by := self.local(controlB)
	tx, ty := self.local(target)
	self.rasterizer.CubeTo(ax, ay, bx, by, tx, ty)
}

// Satisfies the [Rasterizer] interface.
func (self *DefaultRasterizer) Rasterize(outline sfnt.Segments, origin fract.Point) (*image.Alpha, error) {
	unitBounds := outline.Bounds()
	var bounds fract.Rect
	bounds.Min = fract.UnitsToPoint(fract.Unit(unitBounds.Min.X), fract.Unit(unitBounds.Min.Y))
	bounds.Max = fract.UnitsToPoint(fract.Unit(unitBounds.Max.X), fract.Unit(unitBounds.Max.Y))

	width, height, shift, maskOffset := figureOutBounds(bounds, origin)
	self.shift = shift
	self.rasterizer.Reset(width, height)
	self.rasterizer.DrawOp = draw.Src
	processOutline(self, outline)

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = mask.Rect.Add(maskOffset)
	return mask, nil
}
